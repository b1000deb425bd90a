package mrz_test

import (
	"math/rand/v2"
	"passportmrz/pkg/mrz"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCheckDigit(t *testing.T) {
	cases := []struct {
		name string
		in   string
		out  string
	}{
		{name: "icao document number", in: "L898902C3", out: "6"},
		{name: "icao birth date", in: "740812", out: "2"},
		{name: "icao expiry date", in: "120415", out: "9"},
		{name: "icao optional data", in: "ZE184226B<<<<<", out: "1"},
		{name: "icao composite", in: "L898902C3674081221204159ZE184226B<<<<<1", out: "0"},
		{name: "empty", in: "", out: "0"},
		{name: "only fillers", in: "<<<<<<<<<<<<<<", out: "0"},
		{name: "single letter", in: "A", out: "0"},
		{name: "single digit", in: "9", out: "3"},
		{name: "trailing fillers add nothing", in: "ZE184226B", out: "1"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := mrz.CheckDigit(tc.in)
			require.NoError(t, err)
			require.Equal(t, tc.out, got)
		})
	}
}

func TestCheckDigit_InvalidCharacter(t *testing.T) {
	for _, in := range []string{"l898902c3", "L898 902", "L898-902", "É", "\n", "12\t3"} {
		_, err := mrz.CheckDigit(in)
		require.ErrorIs(t, err, mrz.ErrInvalidCharacter, "input %q", in)
	}
}

func TestCheckDigit_DeterministicAndTotal(t *testing.T) {
	const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ<"
	rnd := rand.New(rand.NewPCG(9303, 3)) //nolint: gosec

	for range 500 {
		buf := make([]byte, rnd.IntN(40))
		for i := range buf {
			buf[i] = alphabet[rnd.IntN(len(alphabet))]
		}
		in := string(buf)

		first, err := mrz.CheckDigit(in)
		require.NoError(t, err)
		require.Len(t, first, 1)
		require.GreaterOrEqual(t, first[0], byte('0'))
		require.LessOrEqual(t, first[0], byte('9'))

		second, err := mrz.CheckDigit(in)
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}
