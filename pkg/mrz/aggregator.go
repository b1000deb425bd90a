package mrz

import (
	"strings"
)

// Aggregator builds Reports. It only holds its country lookup, which must be
// safe for concurrent reads, so one Aggregator can serve parallel calls.
type Aggregator struct {
	countries CountryLookup
}

// NewAggregator returns an Aggregator validating issuer and nationality codes
// against countries.
func NewAggregator(countries CountryLookup) *Aggregator {
	return &Aggregator{countries: countries}
}

// Aggregate validates raw, fields and checker together and returns the
// unified report.
//
// It fails as a whole, without a partial report, when raw is not a
// structurally valid TD3 MRZ, a required field or check character is
// missing, a checked span contains a non-MRZ character, or a date is not in
// YYYY-MM-DD form.
func (a *Aggregator) Aggregate(raw string, fields Fields, checker CheckerReport) (*Report, error) {
	line1, line2, err := SplitLines(raw)
	if err != nil {
		return nil, err
	}
	if err := fields.requireFields(); err != nil {
		return nil, err
	}
	if err := checker.requireHashes(); err != nil {
		return nil, err
	}

	birthDate, err := ReformatDate(fields.DateOfBirth)
	if err != nil {
		return nil, err
	}
	expiryDate, err := ReformatDate(fields.DateOfExpiry)
	if err != nil {
		return nil, err
	}

	numberOK, err := ValidateField(fields.DocumentNumber, checker.DocumentNumberHash)
	if err != nil {
		return nil, err
	}
	optDataOK, err := ValidateField(fields.OptionalData, checker.OptionalDataHash)
	if err != nil {
		return nil, err
	}

	clean := NewCorrelator(checker.Failed).IsClean
	issuerOK := a.contains(fields.CountryCode)
	// the whole-MRZ and per-line verdicts tie the document number check to
	// the issuing state
	documentOK := numberOK && issuerOK

	return &Report{
		FullMRZ:      FieldStatus{Value: raw, Valid: documentOK},
		BirthDate:    FieldStatus{Value: birthDate, Valid: clean(KeywordBirthDate)},
		CDBirthDate:  FieldStatus{Value: checker.BirthDateHash, Valid: clean(KeywordBirthDateHash)},
		CDComposite:  FieldStatus{Value: checker.FinalHash, Valid: clean(KeywordFinalHash)},
		CDExpiryDate: FieldStatus{Value: checker.ExpiryDateHash, Valid: clean(KeywordExpiryDateHash)},
		CDNumber:     FieldStatus{Value: checker.DocumentNumberHash, Valid: clean(KeywordDocumentNumberHash)},
		CDOptData2:   FieldStatus{Value: checker.OptionalDataHash, Valid: optDataOK},
		DocTypeCode:  FieldStatus{Value: fields.DocumentType, Valid: clean(KeywordDocumentType)},
		ExpiryDate:   FieldStatus{Value: expiryDate, Valid: clean(KeywordExpiryDate)},
		Gender:       FieldStatus{Value: fields.Sex, Valid: clean(KeywordSex)},
		Issuer:       FieldStatus{Value: fields.CountryCode, Valid: clean(KeywordNationality) && issuerOK},
		LastName:     FieldStatus{Value: fields.Surname, Valid: true},
		Line1:        FieldStatus{Value: line1, Valid: documentOK},
		Line2:        FieldStatus{Value: line2, Valid: documentOK},
		Name:         FieldStatus{Value: fields.GivenName, Valid: true},
		Nationality: FieldStatus{
			Value: fields.Nationality,
			Valid: clean(KeywordNationality) && a.contains(fields.Nationality),
		},
		Number: FieldStatus{
			Value: fields.DocumentNumber,
			Valid: clean(KeywordDocumentNumber) && numberOK,
		},
		OptData2: FieldStatus{Value: fields.OptionalData, Valid: true},
	}, nil
}

func (a *Aggregator) contains(code string) bool {
	if a.countries == nil {
		return false
	}

	return a.countries.Contains(strings.ToUpper(code))
}
