package mrz

import (
	"passportmrz/pkg/serrors"
)

// Extraction keys of Fields, as produced by the field-extraction step.
const (
	KeyDocumentType   = "document_type"
	KeyCountryCode    = "country_code"
	KeySurname        = "surname"
	KeyGivenName      = "given_name"
	KeyDocumentNumber = "document_number"
	KeyNationality    = "nationality"
	KeyDateOfBirth    = "date_of_birth"
	KeySex            = "sex"
	KeyDateOfExpiry   = "date_of_expiry"
	KeyOptionalData   = "optional_data"
)

// Fields holds the semantic values extracted from a TD3 MRZ. Dates are in
// YYYY-MM-DD form. Fillers are expected to be stripped already.
type Fields struct {
	DocumentType   string `json:"document_type"`
	CountryCode    string `json:"country_code"`
	Surname        string `json:"surname"`
	GivenName      string `json:"given_name"`
	DocumentNumber string `json:"document_number"`
	Nationality    string `json:"nationality"`
	DateOfBirth    string `json:"date_of_birth"`
	Sex            string `json:"sex"`
	DateOfExpiry   string `json:"date_of_expiry"`
	OptionalData   string `json:"optional_data"`
}

// FieldsFromMap builds Fields from an extraction dictionary. Every key must
// be present; values may be empty. A missing key fails with ErrMissingField.
func FieldsFromMap(m map[string]string) (Fields, error) {
	var f Fields
	for _, slot := range f.slots() {
		v, ok := m[slot.key]
		if !ok {
			return Fields{}, serrors.With(ErrMissingField, "extracted field %q is missing", slot.key)
		}
		*slot.value = v
	}

	return f, nil
}

type stringSlot struct {
	key   string
	value *string
}

func (f *Fields) slots() []stringSlot {
	return []stringSlot{
		{KeyDocumentType, &f.DocumentType},
		{KeyCountryCode, &f.CountryCode},
		{KeySurname, &f.Surname},
		{KeyGivenName, &f.GivenName},
		{KeyDocumentNumber, &f.DocumentNumber},
		{KeyNationality, &f.Nationality},
		{KeyDateOfBirth, &f.DateOfBirth},
		{KeySex, &f.Sex},
		{KeyDateOfExpiry, &f.DateOfExpiry},
		{KeyOptionalData, &f.OptionalData},
	}
}

// requireFields checks the values the aggregator cannot work without. Names
// and optional data are legitimately empty on some documents.
func (f Fields) requireFields() error {
	required := []stringSlot{
		{KeyDocumentType, &f.DocumentType},
		{KeyCountryCode, &f.CountryCode},
		{KeyDocumentNumber, &f.DocumentNumber},
		{KeyNationality, &f.Nationality},
		{KeyDateOfBirth, &f.DateOfBirth},
		{KeySex, &f.Sex},
		{KeyDateOfExpiry, &f.DateOfExpiry},
	}
	for _, slot := range required {
		if *slot.value == "" {
			return serrors.With(ErrMissingField, "extracted field %q is missing", slot.key)
		}
	}

	return nil
}

// CheckerReport is the output of an independent TD3 checksum checker: the
// check characters it read and the names of the checks it judged failed.
type CheckerReport struct {
	DocumentNumberHash string   `json:"document_number_hash"`
	BirthDateHash      string   `json:"birth_date_hash"`
	ExpiryDateHash     string   `json:"expiry_date_hash"`
	FinalHash          string   `json:"final_hash"`
	OptionalDataHash   string   `json:"optional_data_hash"`
	Failed             []string `json:"failed,omitempty"`
}

func (c CheckerReport) requireHashes() error {
	hashes := []stringSlot{
		{"document_number_hash", &c.DocumentNumberHash},
		{"birth_date_hash", &c.BirthDateHash},
		{"expiry_date_hash", &c.ExpiryDateHash},
		{"final_hash", &c.FinalHash},
		{"optional_data_hash", &c.OptionalDataHash},
	}
	for _, slot := range hashes {
		if *slot.value == "" {
			return serrors.With(ErrMissingField, "check character %q is missing", slot.key)
		}
	}

	return nil
}
