package mrz

import "passportmrz/pkg/serrors"

// Error kinds returned by this package. Match them with errors.Is.
var (
	// ErrStructural marks raw MRZ text that is not two 44-character lines of
	// the MRZ alphabet.
	ErrStructural = serrors.NewKind("MRZ_STRUCTURE")
	// ErrInvalidCharacter marks a character outside [A-Z0-9<] reaching the
	// check digit calculation.
	ErrInvalidCharacter = serrors.NewKind("MRZ_INVALID_CHARACTER")
	// ErrMissingField marks an extracted field or check character that the
	// caller did not provide.
	ErrMissingField = serrors.NewKind("MRZ_MISSING_FIELD")
	// ErrDateFormat marks a date that is not in YYYY-MM-DD form.
	ErrDateFormat = serrors.NewKind("MRZ_DATE_FORMAT")
)
