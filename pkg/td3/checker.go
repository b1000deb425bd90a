package td3

import (
	"strconv"
	"strings"
	"time"

	"passportmrz/pkg/mrz"
)

// Names of the checks reported in mrz.CheckerReport.Failed.
const (
	CheckDocumentType       = "document type"
	CheckCountry            = "country"
	CheckDocumentNumber     = "document number"
	CheckDocumentNumberHash = "document number hash"
	CheckNationality        = "nationality"
	CheckBirthDate          = "birth date"
	CheckBirthDateHash      = "birth date hash"
	CheckSex                = "sex"
	CheckExpiryDate         = "expiry date"
	CheckExpiryDateHash     = "expiry date hash"
	CheckOptionalDataHash   = "optional data hash"
	CheckFinalHash          = "final hash"
)

// Options tunes Check.
type Options struct {
	// CheckExpiry fails the expiry date check for documents expired at Now.
	CheckExpiry bool
	// Countries, when set, must contain the issuing state and nationality.
	Countries mrz.CountryLookup
	// Now defaults to time.Now.
	Now func() time.Time
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}

// Check verifies a TD3 MRZ and reports the check characters it read and the
// checks that failed, in layout order. A structurally invalid MRZ fails with
// mrz.ErrStructural; every other problem is reported as a failed check.
func Check(raw string, opts Options) (mrz.CheckerReport, error) {
	line1, line2, err := mrz.SplitLines(raw)
	if err != nil {
		return mrz.CheckerReport{}, err
	}

	report := mrz.CheckerReport{
		DocumentNumberHash: string(line2[numberCheck]),
		BirthDateHash:      string(line2[birthCheck]),
		ExpiryDateHash:     string(line2[expiryCheck]),
		OptionalDataHash:   string(line2[optionalCheck]),
		FinalHash:          string(line2[compositeCheck]),
	}
	fail := func(name string, failed bool) {
		if failed {
			report.Failed = append(report.Failed, name)
		}
	}

	now := opts.now()
	birth, birthOK := parseDate(birthSpan.of(line2), now, true)
	expiry, expiryOK := parseDate(expirySpan.of(line2), now, false)
	optional := optionalSpan.of(line2)

	fail(CheckDocumentType, line1[0] != 'P' || !isLetterOrFiller(line1[1]))
	fail(CheckCountry, !validCode(countrySpan.of(line1), opts.Countries))
	fail(CheckDocumentNumber, stripFillers(numberSpan.of(line2)) == "")
	fail(CheckDocumentNumberHash, !matches(numberSpan.of(line2), line2[numberCheck]))
	fail(CheckNationality, !validCode(nationalitySpan.of(line2), opts.Countries))
	fail(CheckBirthDate, !birthOK || birth.After(now))
	fail(CheckBirthDateHash, !matches(birthSpan.of(line2), line2[birthCheck]))
	fail(CheckSex, !strings.ContainsRune("MFX<", rune(line2[sexColumn])))
	fail(CheckExpiryDate, !expiryOK || (opts.CheckExpiry && expiry.Before(now)))
	fail(CheckExpiryDateHash, !matches(expirySpan.of(line2), line2[expiryCheck]))
	fail(CheckOptionalDataHash, !matches(optional, line2[optionalCheck]))
	fail(CheckFinalHash, !matches(composite(line2), line2[compositeCheck]))

	return report, nil
}

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// checksum is the 7-3-1 weighted sum modulo 10, or -1 when data holds a
// character outside the MRZ alphabet.
func checksum(data string) int {
	weights := [3]int{7, 3, 1}
	sum := 0
	for i := range len(data) {
		v := 0
		if data[i] != '<' {
			v = strings.IndexByte(alphabet, data[i])
			if v < 0 {
				return -1
			}
		}
		sum += v * weights[i%3]
	}

	return sum % 10
}

func matches(data string, check byte) bool {
	sum := checksum(data)

	return sum >= 0 && strconv.Itoa(sum) == string(check)
}

func isLetterOrFiller(c byte) bool {
	return c == '<' || (c >= 'A' && c <= 'Z')
}

func validCode(code string, countries mrz.CountryLookup) bool {
	if code[0] == '<' {
		return false
	}
	for i := range len(code) {
		if !isLetterOrFiller(code[i]) {
			return false
		}
	}
	if countries == nil {
		return true
	}

	return countries.Contains(stripFillers(code))
}

func parseDate(yymmdd string, now time.Time, birth bool) (time.Time, bool) {
	century := "20"
	if birth {
		century = birthCentury(yymmdd, now)
	}
	if !isDigits(yymmdd) {
		return time.Time{}, false
	}
	t, err := time.Parse("20060102", century+yymmdd)

	return t, err == nil
}
