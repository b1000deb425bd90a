package mrz_test

import (
	"passportmrz/pkg/countrycode"
	"passportmrz/pkg/mrz"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAggregate_SpecimenAllValid(t *testing.T) {
	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), specimenChecker())
	require.NoError(t, err)

	entries := report.Entries()
	require.Len(t, entries, 18)
	for _, entry := range entries {
		require.True(t, entry.Status.Valid, "field %s", entry.Field)
	}
	require.True(t, report.Valid())
	require.Empty(t, report.InvalidFields())

	require.Equal(t, specimenMRZ, report.FullMRZ.Value)
	require.Equal(t, specimenLine1, report.Line1.Value)
	require.Equal(t, specimenLine2, report.Line2.Value)
	require.Equal(t, "12.08.1974", report.BirthDate.Value)
	require.Equal(t, "15.04.2012", report.ExpiryDate.Value)
	require.Equal(t, "L898902C3", report.Number.Value)
	require.Equal(t, "6", report.CDNumber.Value)
	require.Equal(t, "2", report.CDBirthDate.Value)
	require.Equal(t, "9", report.CDExpiryDate.Value)
	require.Equal(t, "0", report.CDComposite.Value)
	require.Equal(t, "1", report.CDOptData2.Value)
	require.Equal(t, "ZE184226B", report.OptData2.Value)
	require.Equal(t, "P", report.DocTypeCode.Value)
	require.Equal(t, "F", report.Gender.Value)
	require.Equal(t, "UTO", report.Issuer.Value)
	require.Equal(t, "UTO", report.Nationality.Value)
	require.Equal(t, "ERIKSSON", report.LastName.Value)
	require.Equal(t, "ANNA MARIA", report.Name.Value)
}

func TestAggregate_AlteredDocumentNumberCheck(t *testing.T) {
	raw := specimenLine1 + "\n" + strings.Replace(specimenLine2, "L898902C36", "L898902C35", 1)
	checker := specimenChecker()
	checker.DocumentNumberHash = "5"

	report, err := newAggregator().Aggregate(raw, specimenFields(), checker)
	require.NoError(t, err)

	require.False(t, report.Number.Valid)
	require.False(t, report.FullMRZ.Valid)
	require.False(t, report.Line1.Valid)
	require.False(t, report.Line2.Valid)
	require.True(t, report.Gender.Valid)
	require.True(t, report.BirthDate.Valid)
	require.True(t, report.Issuer.Valid)
	// nothing in the external report, so the reported check character stands
	require.True(t, report.CDNumber.Valid)
	require.Equal(t, "5", report.CDNumber.Value)
	require.False(t, report.Valid())
	require.ElementsMatch(t,
		[]string{mrz.FieldFullMRZ, mrz.FieldLine1, mrz.FieldLine2, mrz.FieldNumber},
		report.InvalidFields())
}

func TestAggregate_ExternalFailures(t *testing.T) {
	cases := []struct {
		name    string
		failed  []string
		invalid []string
	}{
		{
			name:    "birth date hash taints both birth fields",
			failed:  []string{"birth date hash"},
			invalid: []string{mrz.FieldBirthDate, mrz.FieldCDBirthDate},
		},
		{
			name:    "document number hash taints number and its check",
			failed:  []string{"document number hash"},
			invalid: []string{mrz.FieldCDNumber, mrz.FieldNumber},
		},
		{
			name:    "expiry date taints only the date",
			failed:  []string{"expiry date"},
			invalid: []string{mrz.FieldExpiryDate},
		},
		{
			name:    "expiry date hash taints date and check",
			failed:  []string{"expiry date hash"},
			invalid: []string{mrz.FieldExpiryDate, mrz.FieldCDExpiryDate},
		},
		{
			name:    "nationality taints issuer and nationality",
			failed:  []string{"nationality"},
			invalid: []string{mrz.FieldIssuer, mrz.FieldNationality},
		},
		{
			name:    "final hash",
			failed:  []string{"final hash"},
			invalid: []string{mrz.FieldCDComposite},
		},
		{
			name:    "document type and sex",
			failed:  []string{"document type", "sex"},
			invalid: []string{mrz.FieldDocTypeCode, mrz.FieldGender},
		},
		{
			name:    "unknown check name",
			failed:  []string{"identifier"},
			invalid: nil,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checker := specimenChecker()
			checker.Failed = tc.failed

			report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), checker)
			require.NoError(t, err)
			require.ElementsMatch(t, tc.invalid, report.InvalidFields())
		})
	}
}

func TestAggregate_CountryCodes(t *testing.T) {
	t.Run("unknown issuer", func(t *testing.T) {
		fields := specimenFields()
		fields.CountryCode = "ZZZ"

		report, err := newAggregator().Aggregate(specimenMRZ, fields, specimenChecker())
		require.NoError(t, err)
		require.ElementsMatch(t,
			[]string{mrz.FieldFullMRZ, mrz.FieldLine1, mrz.FieldLine2, mrz.FieldIssuer},
			report.InvalidFields())
	})

	t.Run("unknown nationality", func(t *testing.T) {
		fields := specimenFields()
		fields.Nationality = "ZZZ"

		report, err := newAggregator().Aggregate(specimenMRZ, fields, specimenChecker())
		require.NoError(t, err)
		require.Equal(t, []string{mrz.FieldNationality}, report.InvalidFields())
	})

	t.Run("lookup is case insensitive", func(t *testing.T) {
		fields := specimenFields()
		fields.CountryCode = "uto"
		fields.Nationality = "Uto"

		report, err := newAggregator().Aggregate(specimenMRZ, fields, specimenChecker())
		require.NoError(t, err)
		require.True(t, report.Valid())
		require.Equal(t, "uto", report.Issuer.Value)
	})

	t.Run("empty registry rejects every code", func(t *testing.T) {
		report, err := mrz.NewAggregator(countrycode.Empty()).
			Aggregate(specimenMRZ, specimenFields(), specimenChecker())
		require.NoError(t, err)
		require.ElementsMatch(t,
			[]string{mrz.FieldFullMRZ, mrz.FieldLine1, mrz.FieldLine2, mrz.FieldIssuer, mrz.FieldNationality},
			report.InvalidFields())
	})

	t.Run("nil lookup rejects every code", func(t *testing.T) {
		report, err := mrz.NewAggregator(nil).Aggregate(specimenMRZ, specimenFields(), specimenChecker())
		require.NoError(t, err)
		require.False(t, report.Issuer.Valid)
		require.False(t, report.Nationality.Valid)
	})
}

func TestAggregate_OptionalDataCheck(t *testing.T) {
	checker := specimenChecker()
	checker.OptionalDataHash = "7"

	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), checker)
	require.NoError(t, err)
	require.Equal(t, []string{mrz.FieldCDOptData2}, report.InvalidFields())
	require.True(t, report.OptData2.Valid)
	require.Equal(t, "7", report.CDOptData2.Value)
}

func TestAggregate_UnconditionalFields(t *testing.T) {
	fields := specimenFields()
	fields.Surname = "ériksson 42!"
	fields.GivenName = ""
	fields.OptionalData = "<<<<<<<<<<<<<<"
	checker := specimenChecker()
	checker.OptionalDataHash = "0"
	checker.Failed = []string{"identifier", "final hash", "sex"}

	report, err := newAggregator().Aggregate(specimenMRZ, fields, checker)
	require.NoError(t, err)
	require.True(t, report.LastName.Valid)
	require.True(t, report.Name.Valid)
	require.True(t, report.OptData2.Valid)
	require.Equal(t, "ériksson 42!", report.LastName.Value)
	require.Empty(t, report.Name.Value)
}

func TestAggregate_ContractViolations(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		fields  func(f *mrz.Fields)
		checker func(c *mrz.CheckerReport)
		kind    error
	}{
		{name: "empty mrz", raw: "", kind: mrz.ErrStructural},
		{name: "single line", raw: specimenLine1, kind: mrz.ErrStructural},
		{name: "lowercase line", raw: strings.ToLower(specimenMRZ), kind: mrz.ErrStructural},
		{
			name:   "missing document number",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.DocumentNumber = "" },
			kind:   mrz.ErrMissingField,
		},
		{
			name:   "missing sex",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.Sex = "" },
			kind:   mrz.ErrMissingField,
		},
		{
			name:    "missing check character",
			raw:     specimenMRZ,
			checker: func(c *mrz.CheckerReport) { c.FinalHash = "" },
			kind:    mrz.ErrMissingField,
		},
		{
			name:   "malformed birth date",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.DateOfBirth = "1974/08/12" },
			kind:   mrz.ErrDateFormat,
		},
		{
			name:   "malformed expiry date",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.DateOfExpiry = "120415" },
			kind:   mrz.ErrDateFormat,
		},
		{
			name:   "non mrz character in document number",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.DocumentNumber = "l898902c3" },
			kind:   mrz.ErrInvalidCharacter,
		},
		{
			name:   "non mrz character in optional data",
			raw:    specimenMRZ,
			fields: func(f *mrz.Fields) { f.OptionalData = "ZE 184226B" },
			kind:   mrz.ErrInvalidCharacter,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fields := specimenFields()
			if tc.fields != nil {
				tc.fields(&fields)
			}
			checker := specimenChecker()
			if tc.checker != nil {
				tc.checker(&checker)
			}

			report, err := newAggregator().Aggregate(tc.raw, fields, checker)
			require.ErrorIs(t, err, tc.kind)
			require.Nil(t, report)
		})
	}
}

func TestAggregate_ConcurrentCalls(t *testing.T) {
	agg := newAggregator()
	want, err := agg.Aggregate(specimenMRZ, specimenFields(), specimenChecker())
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*mrz.Report, 32)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = agg.Aggregate(specimenMRZ, specimenFields(), specimenChecker())
		}()
	}
	wg.Wait()

	for _, got := range results {
		require.Equal(t, want, got)
	}
}
