// Package bits links floats to their raw IEEE-754 bit patterns.
//
// Because NaN has many valid encodings, the float-to-bits linkage is a
// constraint, not a function: BitsEqual relates a float to a same-width
// unsigned word, and Decompose relates a float to caller-supplied sign,
// exponent, and mantissa bit values by recombining them into a word and
// asserting BitsEqual. The pure bit-casts FromBits and ToBits carry no
// validity guard in either direction.
//
// Width contracts (1/8/23 for float32, 1/11/52 for float64) are enforced
// fatally: a mismatch is caller misuse, never a graph failure.
package bits
