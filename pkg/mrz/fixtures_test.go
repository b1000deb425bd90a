package mrz_test

import (
	"passportmrz/pkg/countrycode"
	"passportmrz/pkg/mrz"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ICAO 9303 part 4 specimen.
const (
	specimenLine1 = "P<UTOERIKSSON<<ANNA<MARIA<<<<<<<<<<<<<<<<<<<"
	specimenLine2 = "L898902C36UTO7408122F1204159ZE184226B<<<<<10"
	specimenMRZ   = specimenLine1 + "\n" + specimenLine2
)

func specimenFields() mrz.Fields {
	return mrz.Fields{
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
	}
}

func specimenChecker() mrz.CheckerReport {
	return mrz.CheckerReport{
		DocumentNumberHash: "6",
		BirthDateHash:      "2",
		ExpiryDateHash:     "9",
		FinalHash:          "0",
		OptionalDataHash:   "1",
	}
}

func newAggregator() *mrz.Aggregator {
	return mrz.NewAggregator(countrycode.New("UTO", "SWE", "DEU"))
}
