package mrz

import (
	"strconv"

	"passportmrz/pkg/serrors"
)

// Filler pads MRZ fields to their fixed width. It counts as zero in check
// digit calculations.
const Filler = '<'

// weights cycle over the character positions of a check digit span.
var weights = [...]int{7, 3, 1} //nolint: gochecknoglobals

// charValue maps an MRZ character to its check digit value.
func charValue(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'Z':
		return int(c-'A') + 10, true
	case c == Filler:
		return 0, true
	default:
		return 0, false
	}
}

// IsMRZChar reports whether c belongs to the MRZ alphabet [A-Z0-9<].
func IsMRZChar(c byte) bool {
	_, ok := charValue(c)

	return ok
}

// CheckDigit computes the ICAO-9303 check digit of data, the span of an MRZ
// field without its trailing check character. Each character value is
// multiplied by a weight cycling through 7, 3, 1 and the sum modulo 10 is
// returned as a single decimal character. Empty data yields "0".
//
// A character outside [A-Z0-9<] fails with ErrInvalidCharacter.
func CheckDigit(data string) (string, error) {
	sum := 0
	for i := range len(data) {
		v, ok := charValue(data[i])
		if !ok {
			return "", serrors.With(ErrInvalidCharacter, "invalid character %q at position %d", data[i], i)
		}
		sum += v * weights[i%len(weights)]
	}

	return strconv.Itoa(sum % 10), nil
}
