// Package metrics defines the OpenTelemetry instruments recorded by the
// verification service.
package metrics

import (
	"context"
	"passportmrz/pkg/mrz"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// InstrumentationName is the meter name used for every instrument.
const InstrumentationName = "passportmrz"

// Verification outcomes.
const (
	OutcomeValid   = "valid"
	OutcomeInvalid = "invalid"
	OutcomeError   = "error"
)

// Verification sources.
const (
	SourceSync  = "sync"
	SourceAsync = "async"
)

// Verification records verification results. A nil *Verification records
// nothing.
type Verification struct {
	total         metric.Int64Counter
	invalidFields metric.Int64Counter
	duration      metric.Float64Histogram
}

// NewVerification creates the verification instruments on mp.
func NewVerification(mp metric.MeterProvider) (*Verification, error) {
	meter := mp.Meter(InstrumentationName)

	total, err := meter.Int64Counter("mrz.verifications",
		metric.WithDescription("MRZ verifications by outcome and source."))
	if err != nil {
		return nil, errors.Wrap(err, "could not create verifications counter")
	}
	invalidFields, err := meter.Int64Counter("mrz.invalid_fields",
		metric.WithDescription("Report fields that failed validation."))
	if err != nil {
		return nil, errors.Wrap(err, "could not create invalid fields counter")
	}
	duration, err := meter.Float64Histogram("mrz.verification.duration",
		metric.WithUnit("s"),
		metric.WithDescription("Time spent building a verification report."),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, errors.Wrap(err, "could not create duration histogram")
	}

	return &Verification{
		total:         total,
		invalidFields: invalidFields,
		duration:      duration,
	}, nil
}

// Record counts one verification. report is nil when err is set.
func (v *Verification) Record(ctx context.Context, source string, report *mrz.Report, err error, elapsed time.Duration) {
	if v == nil {
		return
	}

	outcome := OutcomeError
	if err == nil && report != nil {
		outcome = OutcomeInvalid
		if report.Valid() {
			outcome = OutcomeValid
		}
		for _, field := range report.InvalidFields() {
			v.invalidFields.Add(ctx, 1, metric.WithAttributes(attribute.String("field", field)))
		}
	}

	attrs := metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("source", source),
	)
	v.total.Add(ctx, 1, attrs)
	v.duration.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("source", source)))
}
