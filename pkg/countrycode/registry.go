// Package countrycode holds the table of 3-letter codes accepted as issuing
// state and nationality of a travel document.
package countrycode

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/go-faster/errors"
)

// CodeColumn is the CSV header naming the column read by Read.
const CodeColumn = "alpha-3"

//go:embed data/countries.csv
var defaultTable []byte

// Registry is an immutable set of upper-case country codes. It is safe for
// concurrent use. A nil *Registry contains nothing.
type Registry struct {
	codes map[string]struct{}
}

// New returns a registry holding codes.
func New(codes ...string) *Registry {
	r := &Registry{codes: make(map[string]struct{}, len(codes))}
	for _, code := range codes {
		r.add(code)
	}

	return r
}

// Empty returns a registry that rejects every code.
func Empty() *Registry {
	return New()
}

// Default returns the embedded ISO 3166-1 table extended with the ICAO 9303
// special codes (UTO, XXA, EUE, GBD, ...).
func Default() *Registry {
	r, err := Read(bytes.NewReader(defaultTable))
	if err != nil {
		panic(errors.Wrap(err, "embedded country table"))
	}

	return r
}

// Read parses a CSV table with a header row and collects the CodeColumn
// values. Rows with an empty code are skipped.
func Read(in io.Reader) (*Registry, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "could not read header")
	}
	column := slices.Index(header, CodeColumn)
	if column < 0 {
		return nil, errors.Errorf("column %q not found in header", CodeColumn)
	}

	r := New()
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "could not read record")
		}
		if column < len(record) {
			r.add(record[column])
		}
	}

	return r, nil
}

// Open reads the CSV table at path.
func Open(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not open country table")
	}
	defer f.Close() //nolint: errcheck

	r, err := Read(f)
	if err != nil {
		return nil, errors.Wrapf(err, "could not parse %s", path)
	}

	return r, nil
}

// Load opens the table at path, or returns Default when path is empty.
func Load(path string) (*Registry, error) {
	if path == "" {
		return Default(), nil
	}

	return Open(path)
}

// Contains reports whether code is in the registry, ignoring case and
// surrounding whitespace.
func (r *Registry) Contains(code string) bool {
	if r == nil {
		return false
	}
	_, ok := r.codes[normalize(code)]

	return ok
}

// Len returns the number of codes in the registry.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}

	return len(r.codes)
}

// Codes returns the registry contents sorted.
func (r *Registry) Codes() []string {
	if r == nil {
		return nil
	}
	out := make([]string, 0, len(r.codes))
	for code := range r.codes {
		out = append(out, code)
	}
	slices.Sort(out)

	return out
}

func (r *Registry) add(code string) {
	if code = normalize(code); code != "" {
		r.codes[code] = struct{}{}
	}
}

func normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
