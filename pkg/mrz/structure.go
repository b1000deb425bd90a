package mrz

import (
	"strings"

	"passportmrz/pkg/serrors"
)

const (
	// LineLength is the width of a TD3 MRZ line.
	LineLength = 44
	// LineCount is the number of lines in a TD3 MRZ.
	LineCount = 2
)

// ValidateStructure reports whether raw is exactly two newline separated
// lines of LineLength characters drawn from [A-Z0-9<].
func ValidateStructure(raw string) bool {
	return RequireStructure(raw) == nil
}

// RequireStructure is ValidateStructure returning the first violated rule as
// an ErrStructural error. Rules are checked in order: line count, line
// length, alphabet.
func RequireStructure(raw string) error {
	if raw == "" {
		return serrors.With(ErrStructural, "MRZ is empty")
	}

	lines := strings.Split(raw, "\n")
	if len(lines) != LineCount {
		return serrors.With(ErrStructural, "MRZ has %d lines, want %d", len(lines), LineCount)
	}

	for i, line := range lines {
		if len(line) != LineLength {
			return serrors.With(ErrStructural, "line %d has %d characters, want %d", i+1, len(line), LineLength)
		}
	}

	for i, line := range lines {
		for col := range len(line) {
			if !IsMRZChar(line[col]) {
				return serrors.With(ErrStructural, "line %d has invalid character %q at column %d",
					i+1, line[col], col+1)
			}
		}
	}

	return nil
}

// SplitLines returns both lines of a structurally valid MRZ.
func SplitLines(raw string) (string, string, error) {
	if err := RequireStructure(raw); err != nil {
		return "", "", err
	}
	line1, line2, _ := strings.Cut(raw, "\n")

	return line1, line2, nil
}
