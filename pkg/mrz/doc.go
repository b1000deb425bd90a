// Package mrz validates the machine-readable zone of TD3 (passport) travel
// documents.
//
// Field values are produced elsewhere (OCR / field extraction) and handed in
// as Fields together with the raw two-line text and the CheckerReport of an
// independent checksum checker. The package re-computes ICAO-9303 check
// digits, reconciles its own verdict with the external one and returns a
// Report with one FieldStatus per tracked MRZ field.
//
// Checksum mismatches are ordinary results (FieldStatus.Valid == false).
// Errors are reserved for contract violations: malformed raw text, a
// character outside the MRZ alphabet, a missing required field or a date that
// is not in YYYY-MM-DD form.
package mrz
