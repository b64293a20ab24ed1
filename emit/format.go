// SPDX-License-Identifier: MIT

package emit

import (
	"math"
	"strconv"
	"strings"
)

// FormatFloat renders v the way Python's repr (and NumPy's str) does:
//   - the shortest digit string that round-trips;
//   - positional notation for 1e-4 <= |v| < 1e16, with ".0" on integral values;
//   - otherwise d.ddde±XX with at least two exponent digits;
//   - "inf", "-inf", "nan".
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "nan"
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	case v == 0:
		if math.Signbit(v) {
			return "-0.0"
		}
		return "0.0"
	}

	// strconv gives "-d.ddde±XX" with the shortest round-trip digits.
	s := strconv.FormatFloat(v, 'e', -1, 64)
	sign := ""
	if s[0] == '-' {
		sign, s = "-", s[1:]
	}
	mant, expStr, _ := strings.Cut(s, "e")
	exp, _ := strconv.Atoi(expStr)
	digits := strings.Replace(mant, ".", "", 1)

	if exp < -4 || exp >= 16 {
		return sign + scientific(digits, exp)
	}

	return sign + positional(digits, exp+1)
}

// scientific writes d[.ddd]e±XX.
func scientific(digits string, exp int) string {
	var sb strings.Builder
	sb.WriteByte(digits[0])
	if len(digits) > 1 {
		sb.WriteByte('.')
		sb.WriteString(digits[1:])
	}
	sb.WriteByte('e')
	if exp < 0 {
		sb.WriteByte('-')
		exp = -exp
	} else {
		sb.WriteByte('+')
	}
	if exp < 10 {
		sb.WriteByte('0')
	}
	sb.WriteString(strconv.Itoa(exp))

	return sb.String()
}

// positional places the decimal point decpt digits into digits.
func positional(digits string, decpt int) string {
	switch {
	case decpt <= 0:
		return "0." + strings.Repeat("0", -decpt) + digits
	case decpt >= len(digits):
		return digits + strings.Repeat("0", decpt-len(digits)) + ".0"
	default:
		return digits[:decpt] + "." + digits[decpt:]
	}
}
