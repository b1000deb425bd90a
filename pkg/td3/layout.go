// Package td3 reads passport-sized (TD3) machine readable zones: it splits the
// fixed-width layout into mrz.Fields and runs its own checksum verification
// producing an mrz.CheckerReport. It stands in for an OCR pipeline's field
// extraction and code checker when a caller only has the raw MRZ text.
package td3

import "strings"

// span is a half-open column range of one MRZ line.
type span struct{ from, to int }

func (s span) of(line string) string { return line[s.from:s.to] }

// line 1
var (
	docTypeSpan = span{0, 2}
	countrySpan = span{2, 5}
	namesSpan   = span{5, 44}
)

// line 2
var (
	numberSpan      = span{0, 9}
	numberCheck     = 9
	nationalitySpan = span{10, 13}
	birthSpan       = span{13, 19}
	birthCheck      = 19
	sexColumn       = 20
	expirySpan      = span{21, 27}
	expiryCheck     = 27
	optionalSpan    = span{28, 42}
	optionalCheck   = 42
	compositeCheck  = 43
)

// composite returns the data protected by the final check digit.
func composite(line2 string) string {
	return line2[0:10] + line2[13:20] + line2[21:43]
}

func stripFillers(s string) string {
	return strings.Trim(s, "<")
}
