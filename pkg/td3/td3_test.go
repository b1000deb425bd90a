package td3_test

import (
	"passportmrz/pkg/countrycode"
	"passportmrz/pkg/mrz"
	"passportmrz/pkg/td3"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const (
	specimenLine1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	specimenLine2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"
	specimenMRZ   = specimenLine1 + "\n" + specimenLine2

	// specimen data with expiry moved to 2034-04-15
	currentLine2 = "L898902C36UTO7408122F3404159ZE184226B<<<<<16"

	// specimen data without optional data, with a "0" or a filler check character
	emptyOptionalLine2 = "L898902C36UTO7408122F1204159<<<<<<<<<<<<<<08"
	fillerCheckLine2   = "L898902C36UTO7408122F1204159<<<<<<<<<<<<<<<8"
)

var today = time.Date(2026, time.October, 14, 0, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return today }

func TestParseAt_Specimen(t *testing.T) {
	fields, err := td3.ParseAt(specimenMRZ, today)
	require.NoError(t, err)
	require.Equal(t, mrz.Fields{
		DocumentType:   "P",
		CountryCode:    "UTO",
		Surname:        "ERIKSSON",
		GivenName:      "ANNA MARIA",
		DocumentNumber: "L898902C3",
		Nationality:    "UTO",
		DateOfBirth:    "1974-08-12",
		Sex:            "F",
		DateOfExpiry:   "2012-04-15",
		OptionalData:   "ZE184226B",
	}, fields)
}

func TestParseAt_BirthCenturyPivot(t *testing.T) {
	line2 := strings.Replace(specimenLine2, "740812", "150812", 1)
	fields, err := td3.ParseAt(specimenLine1+"\n"+line2, today)
	require.NoError(t, err)
	require.Equal(t, "2015-08-12", fields.DateOfBirth)

	line2 = strings.Replace(specimenLine2, "740812", "270812", 1)
	fields, err = td3.ParseAt(specimenLine1+"\n"+line2, today)
	require.NoError(t, err)
	require.Equal(t, "1927-08-12", fields.DateOfBirth)
}

func TestParseAt_MissingGivenName(t *testing.T) {
	line1 := "P<UTOERIKSSON<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<<"
	fields, err := td3.ParseAt(line1+"\n"+specimenLine2, today)
	require.NoError(t, err)
	require.Equal(t, "ERIKSSON", fields.Surname)
	require.Empty(t, fields.GivenName)
}

func TestParseAt_Errors(t *testing.T) {
	_, err := td3.ParseAt(specimenLine1, today)
	require.ErrorIs(t, err, mrz.ErrStructural)

	line2 := strings.Replace(specimenLine2, "740812", "74<812", 1)
	_, err = td3.ParseAt(specimenLine1+"\n"+line2, today)
	require.ErrorIs(t, err, mrz.ErrDateFormat)
}

func TestParse_FeedsAggregator(t *testing.T) {
	fields, err := td3.Parse(specimenMRZ)
	require.NoError(t, err)
	checker, err := td3.Check(specimenMRZ, td3.Options{})
	require.NoError(t, err)

	report, err := mrz.NewAggregator(countrycode.Default()).Aggregate(specimenMRZ, fields, checker)
	require.NoError(t, err)
	require.True(t, report.Valid(), report.InvalidFields())
}

func TestCheck_Specimen(t *testing.T) {
	report, err := td3.Check(specimenMRZ, td3.Options{Now: fixedClock})
	require.NoError(t, err)
	require.Equal(t, mrz.CheckerReport{
		DocumentNumberHash: "6",
		BirthDateHash:      "2",
		ExpiryDateHash:     "9",
		FinalHash:          "0",
		OptionalDataHash:   "1",
	}, report)
}

func TestCheck_Expiry(t *testing.T) {
	report, err := td3.Check(specimenMRZ, td3.Options{CheckExpiry: true, Now: fixedClock})
	require.NoError(t, err)
	require.Equal(t, []string{td3.CheckExpiryDate}, report.Failed)

	report, err = td3.Check(specimenLine1+"\n"+currentLine2, td3.Options{CheckExpiry: true, Now: fixedClock})
	require.NoError(t, err)
	require.Empty(t, report.Failed)
	require.Equal(t, "9", report.ExpiryDateHash)
	require.Equal(t, "6", report.FinalHash)
}

func TestCheck_Failures(t *testing.T) {
	cases := []struct {
		name   string
		line1  string
		line2  string
		failed []string
	}{
		{
			name:   "altered document number check digit",
			line2:  strings.Replace(specimenLine2, "L898902C36", "L898902C35", 1),
			failed: []string{td3.CheckDocumentNumberHash, td3.CheckFinalHash},
		},
		{
			name:   "altered birth date",
			line2:  strings.Replace(specimenLine2, "7408122", "7408132", 1),
			failed: []string{td3.CheckBirthDateHash, td3.CheckFinalHash},
		},
		{
			name:   "impossible birth date",
			line2:  strings.Replace(specimenLine2, "740812", "741312", 1),
			failed: []string{td3.CheckBirthDate, td3.CheckBirthDateHash, td3.CheckFinalHash},
		},
		{
			name:   "unknown sex",
			line2:  strings.Replace(specimenLine2, "2F1", "2Q1", 1),
			failed: []string{td3.CheckSex},
		},
		{
			name:   "altered optional data",
			line2:  strings.Replace(specimenLine2, "ZE184226B", "ZE184226C", 1),
			failed: []string{td3.CheckOptionalDataHash, td3.CheckFinalHash},
		},
		{
			name:   "not a passport",
			line1:  "V" + specimenLine1[1:],
			failed: []string{td3.CheckDocumentType},
		},
		{
			name:   "numeric country",
			line1:  strings.Replace(specimenLine1, "UTO", "U7O", 1),
			failed: []string{td3.CheckCountry},
		},
		{
			name:   "blank document number",
			line2:  "<<<<<<<<<0" + specimenLine2[10:],
			failed: []string{td3.CheckDocumentNumber, td3.CheckFinalHash},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			line1, line2 := specimenLine1, specimenLine2
			if tc.line1 != "" {
				line1 = tc.line1
			}
			if tc.line2 != "" {
				line2 = tc.line2
			}

			report, err := td3.Check(line1+"\n"+line2, td3.Options{Now: fixedClock})
			require.NoError(t, err)
			require.Equal(t, tc.failed, report.Failed)
		})
	}
}

func TestCheck_EmptyOptionalData(t *testing.T) {
	report, err := td3.Check(specimenLine1+"\n"+emptyOptionalLine2, td3.Options{Now: fixedClock})
	require.NoError(t, err)
	require.Empty(t, report.Failed)

	// a filler check character over empty optional data is not a check digit
	report, err = td3.Check(specimenLine1+"\n"+fillerCheckLine2, td3.Options{Now: fixedClock})
	require.NoError(t, err)
	require.Equal(t, []string{td3.CheckOptionalDataHash}, report.Failed)
	require.Equal(t, "<", report.OptionalDataHash)
}

func TestCheck_EmptyOptionalDataAgreesWithAggregator(t *testing.T) {
	aggregator := mrz.NewAggregator(countrycode.New("UTO"))

	for line2, valid := range map[string]bool{emptyOptionalLine2: true, fillerCheckLine2: false} {
		raw := specimenLine1 + "\n" + line2
		fields, err := td3.ParseAt(raw, today)
		require.NoError(t, err)
		require.Empty(t, fields.OptionalData)
		checker, err := td3.Check(raw, td3.Options{Now: fixedClock})
		require.NoError(t, err)

		report, err := aggregator.Aggregate(raw, fields, checker)
		require.NoError(t, err)
		require.Equal(t, valid, report.CDOptData2.Valid, line2)
		require.Equal(t, !valid, slices.Contains(checker.Failed, td3.CheckOptionalDataHash), line2)
		if valid {
			require.Empty(t, report.InvalidFields(), line2)
		} else {
			require.Equal(t, []string{mrz.FieldCDOptData2}, report.InvalidFields(), line2)
		}
	}
}

func TestCheck_Countries(t *testing.T) {
	report, err := td3.Check(specimenMRZ, td3.Options{Now: fixedClock, Countries: countrycode.New("SWE")})
	require.NoError(t, err)
	require.Equal(t, []string{td3.CheckCountry, td3.CheckNationality}, report.Failed)
}

func TestCheck_Structural(t *testing.T) {
	_, err := td3.Check(strings.ToLower(specimenMRZ), td3.Options{})
	require.ErrorIs(t, err, mrz.ErrStructural)
}
