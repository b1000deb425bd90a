package mrz

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// Report field identifiers, in encoding order.
const (
	FieldFullMRZ      = "full_mrz"
	FieldBirthDate    = "mrz_birth_date"
	FieldCDBirthDate  = "mrz_cd_birth_date"
	FieldCDComposite  = "mrz_cd_composite"
	FieldCDExpiryDate = "mrz_cd_expiry_date"
	FieldCDNumber     = "mrz_cd_number"
	FieldCDOptData2   = "mrz_cd_opt_data_2"
	FieldDocTypeCode  = "mrz_doc_type_code"
	FieldExpiryDate   = "mrz_expiry_date"
	FieldGender       = "mrz_gender"
	FieldIssuer       = "mrz_issuer"
	FieldLastName     = "mrz_last_name"
	FieldLine1        = "mrz_line1"
	FieldLine2        = "mrz_line2"
	FieldName         = "mrz_name"
	FieldNationality  = "mrz_nationality"
	FieldNumber       = "mrz_number"
	FieldOptData2     = "mrz_opt_data_2"
)

// FieldStatus is the verdict for one MRZ field. Value is always populated,
// even when Valid is false, so a reviewer can see what was read.
type FieldStatus struct {
	Value string
	Valid bool
}

// Encode encodes FieldStatus as {"value": ..., "status": ...}.
func (s FieldStatus) Encode(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("value")
	e.Str(s.Value)
	e.FieldStart("status")
	e.Bool(s.Valid)
	e.ObjEnd()
}

// Decode decodes FieldStatus from json.
func (s *FieldStatus) Decode(d *jx.Decoder) error {
	if s == nil {
		return errors.New("invalid: unable to decode FieldStatus to nil")
	}

	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		switch string(k) {
		case "value":
			v, err := d.Str()
			if err != nil {
				return errors.Wrap(err, "decode field \"value\"")
			}
			s.Value = v
		case "status":
			v, err := d.Bool()
			if err != nil {
				return errors.Wrap(err, "decode field \"status\"")
			}
			s.Valid = v
		default:
			return d.Skip()
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode FieldStatus")
	}

	return nil
}

// Report is the unified verdict over the 18 tracked fields of a TD3 MRZ.
type Report struct {
	FullMRZ      FieldStatus
	BirthDate    FieldStatus
	CDBirthDate  FieldStatus
	CDComposite  FieldStatus
	CDExpiryDate FieldStatus
	CDNumber     FieldStatus
	CDOptData2   FieldStatus
	DocTypeCode  FieldStatus
	ExpiryDate   FieldStatus
	Gender       FieldStatus
	Issuer       FieldStatus
	LastName     FieldStatus
	Line1        FieldStatus
	Line2        FieldStatus
	Name         FieldStatus
	Nationality  FieldStatus
	Number       FieldStatus
	OptData2     FieldStatus
}

// Entry pairs a report field identifier with its status.
type Entry struct {
	Field  string
	Status FieldStatus
}

type statusSlot struct {
	field  string
	status *FieldStatus
}

func (r *Report) slots() []statusSlot {
	return []statusSlot{
		{FieldFullMRZ, &r.FullMRZ},
		{FieldBirthDate, &r.BirthDate},
		{FieldCDBirthDate, &r.CDBirthDate},
		{FieldCDComposite, &r.CDComposite},
		{FieldCDExpiryDate, &r.CDExpiryDate},
		{FieldCDNumber, &r.CDNumber},
		{FieldCDOptData2, &r.CDOptData2},
		{FieldDocTypeCode, &r.DocTypeCode},
		{FieldExpiryDate, &r.ExpiryDate},
		{FieldGender, &r.Gender},
		{FieldIssuer, &r.Issuer},
		{FieldLastName, &r.LastName},
		{FieldLine1, &r.Line1},
		{FieldLine2, &r.Line2},
		{FieldName, &r.Name},
		{FieldNationality, &r.Nationality},
		{FieldNumber, &r.Number},
		{FieldOptData2, &r.OptData2},
	}
}

// Entries returns every field of the report in encoding order.
func (r Report) Entries() []Entry {
	slots := r.slots()
	out := make([]Entry, len(slots))
	for i, slot := range slots {
		out[i] = Entry{Field: slot.field, Status: *slot.status}
	}

	return out
}

// Valid reports whether every field of the report is valid.
func (r Report) Valid() bool {
	return len(r.InvalidFields()) == 0
}

// InvalidFields returns the identifiers of the fields whose status is false.
func (r Report) InvalidFields() []string {
	var out []string
	for _, entry := range r.Entries() {
		if !entry.Status.Valid {
			out = append(out, entry.Field)
		}
	}

	return out
}

// Encode encodes the report as a json object keyed by field identifier.
func (r Report) Encode(e *jx.Encoder) {
	e.ObjStart()
	for _, entry := range r.Entries() {
		e.FieldStart(entry.Field)
		entry.Status.Encode(e)
	}
	e.ObjEnd()
}

// Decode decodes a report from json. All 18 fields must be present.
func (r *Report) Decode(d *jx.Decoder) error {
	if r == nil {
		return errors.New("invalid: unable to decode Report to nil")
	}

	byField := make(map[string]*FieldStatus, 18)
	for _, slot := range r.slots() {
		byField[slot.field] = slot.status
	}

	seen := make(map[string]bool, len(byField))
	if err := d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		status, ok := byField[string(k)]
		if !ok {
			return d.Skip()
		}
		if err := status.Decode(d); err != nil {
			return errors.Wrapf(err, "decode field %q", k)
		}
		seen[string(k)] = true

		return nil
	}); err != nil {
		return errors.Wrap(err, "decode Report")
	}

	for field := range byField {
		if !seen[field] {
			return errors.Errorf("decode Report: field %q is missing", field)
		}
	}

	return nil
}

// MarshalJSON implements json.Marshaler.
func (r Report) MarshalJSON() ([]byte, error) {
	e := jx.Encoder{}
	r.Encode(&e)

	return e.Bytes(), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (r *Report) UnmarshalJSON(data []byte) error {
	d := jx.DecodeBytes(data)

	return r.Decode(d)
}
