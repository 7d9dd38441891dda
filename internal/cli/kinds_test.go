package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsText(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"kinds"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Float32")
	assert.Contains(t, output, "Float64")
	assert.Contains(t, output, "Rational")
	assert.Contains(t, output, "RoundMode")
}

func TestKindsJSON(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--format", "json", "kinds"})

	err := cmd.Execute()
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)

	var infos []KindInfo
	require.NoError(t, json.Unmarshal(resp.Data, &infos))
	require.NotEmpty(t, infos)

	byName := make(map[string]KindInfo, len(infos))
	for _, i := range infos {
		byName[i.Name] = i
	}
	assert.Equal(t, 8, byName["Float32"].ExponentBits)
	assert.Equal(t, 23, byName["Float32"].MantissaBits)
	assert.Equal(t, 11, byName["Float64"].ExponentBits)
	assert.Equal(t, 52, byName["Float64"].MantissaBits)
	assert.False(t, byName["RoundMode"].HasNativeEval)
}
