package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitsOnePointFive32(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"bits", "1.5", "--width", "32"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "0x3fc00000")
	assert.Contains(t, output, "sign:     0")
	assert.Contains(t, output, "exponent: 01111111")
	assert.Contains(t, output, "mantissa: 10000000000000000000000")
}

func TestBitsNegativeZeroDefaultWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	// "--" keeps the flag parser from eating the leading dash.
	cmd.SetArgs([]string{"bits", "--", "-0"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "0x8000000000000000")
	assert.Contains(t, output, "sign:     1")
}

func TestBitsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json", "bits", "nan", "--width", "64"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var result BitsResult
	require.NoError(t, json.Unmarshal(resp.Data, &result))
	assert.Equal(t, "Float64", result.Kind)
	assert.Equal(t, "11111111111", result.Exponent)
	assert.NotEqual(t, "0000000000000000000000000000000000000000000000000000", result.Mantissa)
}

func TestBitsBadValue(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"bits", "not-a-float"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, buf.String(), "E002")
}

func TestBitsBadWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"bits", "1.0", "--width", "16"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, buf.String(), "unsupported width 16")
}
