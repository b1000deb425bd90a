package mrz

import "strings"

// Keywords matched against the failed-check names of the external checker.
const (
	KeywordDocumentType       = "document type"
	KeywordDocumentNumber     = "document number"
	KeywordDocumentNumberHash = "document number hash"
	KeywordNationality        = "nationality"
	KeywordBirthDate          = "birth"
	KeywordBirthDateHash      = "birth date hash"
	KeywordSex                = "sex"
	KeywordExpiryDate         = "expiry date"
	KeywordExpiryDateHash     = "expiry date hash"
	KeywordFinalHash          = "final hash"
)

// Correlator maps the free-text failed-check names of an external checker
// onto output fields.
//
// Matching is by substring: a failed "birth date hash" taints "birth",
// "date" and "hash" alike, so one failure can invalidate several fields
// whose keywords overlap.
type Correlator struct {
	failed []string
}

// NewCorrelator returns a Correlator over a copy of failed.
func NewCorrelator(failed []string) Correlator {
	return Correlator{failed: append([]string(nil), failed...)}
}

// IsClean reports whether no failed check name contains keyword.
func (c Correlator) IsClean(keyword string) bool {
	for _, name := range c.failed {
		if strings.Contains(name, keyword) {
			return false
		}
	}

	return true
}
