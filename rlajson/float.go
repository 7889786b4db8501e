package rlajson

import (
	"math"
	"strconv"
)

// appendDecimal formats v as a base-10 JSON number with at least six
// significant digits, switching to exponential form the same way
// encoding/json does for very small or very large magnitudes so that
// precision near zero (a near-exhausted risk measure, say) is not lost
// to a long run of leading zeroes. Adapted from the float formatting
// used across the retrieved pack's jsonenc package; risk and kmin
// values in this domain are always finite, so the NaN/Inf string forms
// jsonenc guards against are dead code here and intentionally dropped.
func appendDecimal(dst []byte, v float64) []byte {
	fmtByte := byte('f')
	if abs := math.Abs(v); abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtByte = 'e'
	}
	dst = strconv.AppendFloat(dst, v, fmtByte, -1, 64)
	if fmtByte == 'e' {
		// strconv emits e-09 style exponents; JSON numeric syntax
		// neither requires nor forbids the leading zero, but drop it
		// for parity with encoding/json's own output.
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst
}

// formatDecimal is appendDecimal for a fresh buffer, returned as a
// string suitable for embedding in hand-built JSON or for use as a
// json.Number.
func formatDecimal(v float64) string {
	return string(appendDecimal(nil, v))
}
