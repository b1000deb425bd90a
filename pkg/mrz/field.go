package mrz

import (
	"passportmrz/pkg/serrors"
)

// ValidateField reports whether check is the check digit of data.
func ValidateField(data, check string) (bool, error) {
	want, err := CheckDigit(data)
	if err != nil {
		return false, err
	}

	return want == check, nil
}

// ReformatDate converts an ISO "YYYY-MM-DD" date into the "DD.MM.YYYY" form
// shown to reviewers. Any other shape fails with ErrDateFormat. The calendar
// is not consulted, so "2030-02-31" is reformatted as is.
func ReformatDate(iso string) (string, error) {
	if !isISODate(iso) {
		return "", serrors.With(ErrDateFormat, "date %q is not in YYYY-MM-DD format", iso)
	}

	return iso[8:10] + "." + iso[5:7] + "." + iso[0:4], nil
}

func isISODate(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i := range len(s) {
		if i == 4 || i == 7 {
			continue
		}
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// CountryLookup answers membership queries for 3-letter country codes.
// countrycode.Registry is the production implementation.
type CountryLookup interface {
	Contains(code string) bool
}
