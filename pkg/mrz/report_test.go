package mrz_test

import (
	"encoding/json"
	"passportmrz/pkg/mrz"
	"strings"
	"testing"

	"github.com/go-faster/jx"
	"github.com/stretchr/testify/require"
)

func TestReport_EncodeKeepsFieldOrder(t *testing.T) {
	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), specimenChecker())
	require.NoError(t, err)

	e := jx.Encoder{}
	report.Encode(&e)

	var keys []string
	d := jx.DecodeBytes(e.Bytes())
	require.NoError(t, d.ObjBytes(func(d *jx.Decoder, k []byte) error {
		keys = append(keys, string(k))
		return d.Skip()
	}))

	require.Equal(t, []string{
		mrz.FieldFullMRZ,
		mrz.FieldBirthDate,
		mrz.FieldCDBirthDate,
		mrz.FieldCDComposite,
		mrz.FieldCDExpiryDate,
		mrz.FieldCDNumber,
		mrz.FieldCDOptData2,
		mrz.FieldDocTypeCode,
		mrz.FieldExpiryDate,
		mrz.FieldGender,
		mrz.FieldIssuer,
		mrz.FieldLastName,
		mrz.FieldLine1,
		mrz.FieldLine2,
		mrz.FieldName,
		mrz.FieldNationality,
		mrz.FieldNumber,
		mrz.FieldOptData2,
	}, keys)
}

func TestFieldStatus_Encode(t *testing.T) {
	e := jx.Encoder{}
	mrz.FieldStatus{Value: "12.08.1974", Valid: false}.Encode(&e)
	require.JSONEq(t, `{"value":"12.08.1974","status":false}`, e.String())
}

func TestReport_JSONRoundTripThroughStdlib(t *testing.T) {
	checker := specimenChecker()
	checker.Failed = []string{"final hash"}
	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), checker)
	require.NoError(t, err)

	data, err := json.Marshal(report)
	require.NoError(t, err)

	var decoded mrz.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, *report, decoded)
	require.Equal(t, []string{mrz.FieldCDComposite}, decoded.InvalidFields())
}

func TestReport_DecodeRejectsMissingField(t *testing.T) {
	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), specimenChecker())
	require.NoError(t, err)

	data, err := report.MarshalJSON()
	require.NoError(t, err)
	trimmed := strings.Replace(string(data), `"mrz_gender":{"value":"F","status":true},`, "", 1)
	require.NotEqual(t, string(data), trimmed)

	var decoded mrz.Report
	err = decoded.UnmarshalJSON([]byte(trimmed))
	require.ErrorContains(t, err, mrz.FieldGender)
}

func TestReport_DecodeSkipsUnknownFields(t *testing.T) {
	report, err := newAggregator().Aggregate(specimenMRZ, specimenFields(), specimenChecker())
	require.NoError(t, err)

	data, err := report.MarshalJSON()
	require.NoError(t, err)
	extended := `{"reviewer":{"id":7},` + string(data[1:])

	var decoded mrz.Report
	require.NoError(t, decoded.UnmarshalJSON([]byte(extended)))
	require.Equal(t, *report, decoded)
}
