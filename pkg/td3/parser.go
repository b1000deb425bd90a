package td3

import (
	"strings"
	"time"

	"passportmrz/pkg/mrz"
	"passportmrz/pkg/serrors"
)

// Parse splits a TD3 MRZ into its fields as of today. See ParseAt.
func Parse(raw string) (mrz.Fields, error) {
	return ParseAt(raw, time.Now())
}

// ParseAt splits a TD3 MRZ into its fields. Fillers are stripped, the primary
// and secondary identifiers are split at the first "<<" and dates are
// expanded from YYMMDD to YYYY-MM-DD. Birth years later than now's two-digit
// year are placed in the previous century; expiry years are always 20YY.
//
// Structural problems fail with mrz.ErrStructural and non-numeric dates with
// mrz.ErrDateFormat.
func ParseAt(raw string, now time.Time) (mrz.Fields, error) {
	line1, line2, err := mrz.SplitLines(raw)
	if err != nil {
		return mrz.Fields{}, err
	}

	birth, err := expandDate(birthSpan.of(line2), birthCentury(birthSpan.of(line2), now))
	if err != nil {
		return mrz.Fields{}, err
	}
	expiry, err := expandDate(expirySpan.of(line2), "20")
	if err != nil {
		return mrz.Fields{}, err
	}
	surname, given := splitNames(namesSpan.of(line1))

	return mrz.Fields{
		DocumentType:   stripFillers(docTypeSpan.of(line1)),
		CountryCode:    stripFillers(countrySpan.of(line1)),
		Surname:        surname,
		GivenName:      given,
		DocumentNumber: stripFillers(numberSpan.of(line2)),
		Nationality:    stripFillers(nationalitySpan.of(line2)),
		DateOfBirth:    birth,
		Sex:            string(line2[sexColumn]),
		DateOfExpiry:   expiry,
		OptionalData:   stripFillers(optionalSpan.of(line2)),
	}, nil
}

func splitNames(names string) (string, string) {
	primary, secondary, _ := strings.Cut(strings.TrimRight(names, "<"), "<<")

	return joinName(primary), joinName(secondary)
}

func joinName(part string) string {
	return strings.Join(strings.FieldsFunc(part, func(r rune) bool { return r == '<' }), " ")
}

func birthCentury(yymmdd string, now time.Time) string {
	if yymmdd[:2] > now.Format("06") {
		return "19"
	}

	return "20"
}

func expandDate(yymmdd, century string) (string, error) {
	if !isDigits(yymmdd) {
		return "", serrors.With(mrz.ErrDateFormat, "date %q is not in YYMMDD format", yymmdd)
	}

	return century + yymmdd[0:2] + "-" + yymmdd[2:4] + "-" + yymmdd[4:6], nil
}

func isDigits(s string) bool {
	for i := range len(s) {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return s != ""
}
