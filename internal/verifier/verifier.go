// Package verifier coordinates MRZ verification: the synchronous report
// builder, the persisted asynchronous flow and the job that completes it.
package verifier

import (
	"context"
	"passportmrz/internal/config"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/logger"
	"passportmrz/pkg/metrics"
	"passportmrz/pkg/mrz"
	"passportmrz/pkg/serrors"
	"passportmrz/pkg/storage"
	"passportmrz/pkg/td3"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const (
	// DefaultPageSize is used when a listing asks for no explicit limit.
	DefaultPageSize = 20
	// MaxPageSize caps a single listing page.
	MaxPageSize = 100
)

var tracer = otel.Tracer("passportmrz/internal/verifier") //nolint: gochecknoglobals

// Options configure verification and its background processing.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker should
	// make when processing a verification before marking it failed.
	MaxAttempts int
	// CheckExpiry makes the built-in checker fail documents that are expired.
	CheckExpiry bool
	// Now defaults to time.Now.
	Now func() time.Time
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts: cfg.Verification.MaxAttempts,
		CheckExpiry: !cfg.Verification.AllowExpired,
	}
}

func (o Options) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}

	return o.Now()
}

// verifier is the concrete implementation of the Verifier interface.
type verifier struct {
	options    Options
	storage    storage.Storage
	countries  mrz.CountryLookup
	aggregator *mrz.Aggregator
	metrics    *metrics.Verification
}

// Normalize trims surrounding whitespace, converts CRLF line breaks to LF and
// uppercases raw MRZ text.
func Normalize(raw string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(raw), "\r\n", "\n"))
}

// Verify builds the report for input without persisting anything. Fields and
// checker output missing from input are derived from the MRZ itself.
func (s *verifier) Verify(ctx context.Context, input domain.VerificationInput) (report *mrz.Report, err error) {
	ctx, span := tracer.Start(ctx, "verifier.Verify")
	defer func() { endSpan(span, err) }()

	return s.verify(ctx, input, metrics.SourceSync)
}

func (s *verifier) verify(ctx context.Context, input domain.VerificationInput, source string) (*mrz.Report, error) {
	start := time.Now()
	report, err := s.build(input)
	s.metrics.Record(ctx, source, report, err, time.Since(start))
	if err != nil {
		return nil, err
	}

	trace.SpanFromContext(ctx).SetAttributes(
		attribute.Bool("mrz.valid", report.Valid()),
		attribute.Int("mrz.invalid_fields", len(report.InvalidFields())),
	)

	return report, nil
}

func (s *verifier) build(input domain.VerificationInput) (*mrz.Report, error) {
	raw := Normalize(input.MRZ)
	if raw == "" {
		return nil, serrors.With(serrors.ErrBadRequest, "mrz is required")
	}

	var fields mrz.Fields
	if input.Fields != nil {
		fields = *input.Fields
	} else {
		parsed, err := td3.ParseAt(raw, s.options.now())
		if err != nil {
			return nil, badRequest(err, "could not extract MRZ fields")
		}
		fields = parsed
	}

	var checker mrz.CheckerReport
	if input.Checker != nil {
		checker = *input.Checker
	} else {
		checked, err := td3.Check(raw, td3.Options{
			CheckExpiry: s.options.CheckExpiry,
			Countries:   s.countries,
			Now:         s.options.now,
		})
		if err != nil {
			return nil, badRequest(err, "could not check MRZ")
		}
		checker = checked
	}

	report, err := s.aggregator.Aggregate(raw, fields, checker)
	if err != nil {
		return nil, badRequest(err, "invalid MRZ")
	}

	return report, nil
}

// Submit stores a pending verification for userID and enqueues the job that
// processes it, both in one transaction. Structurally invalid MRZ text is
// rejected before anything is stored.
func (s *verifier) Submit(ctx context.Context,
	userID domain.UserID,
	input domain.VerificationInput) (*domain.Verification, error) {
	input.MRZ = Normalize(input.MRZ)
	if err := mrz.RequireStructure(input.MRZ); err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid MRZ")
	}

	var verification *domain.Verification
	if err := s.storage.WithTx(ctx, func(tx storage.AllStorage) error {
		res, err := tx.StoreVerifications(ctx, domain.Verification{
			UserID: userID,
			Input:  input,
			Status: domain.VerificationStatusPending,
		})
		if err != nil {
			return errors.Wrap(err, "could not store verification")
		}
		verification = &res[0]

		if _, err := tx.AddJob(ctx, JobArgs{
			ID:          verification.ID,
			maxAttempts: s.options.MaxAttempts,
		}, nil); err != nil {
			return errors.Wrap(err, "could not add job")
		}

		return nil
	}); err != nil {
		return nil, errors.Wrap(err, "could not submit verification")
	}

	return verification, nil
}

// Process builds and stores the report of a pending verification. It is the
// entrypoint of the background job.
//
// A verification whose input violates the MRZ contract is marked failed at
// once and a bad request error is returned. Storage errors count as a failed
// attempt and the verification is marked failed once MaxAttempts is reached.
func (s *verifier) Process(ctx context.Context, ID domain.VerificationID) (processed *domain.Verification, err error) {
	ctx, span := tracer.Start(ctx, "verifier.Process",
		trace.WithAttributes(attribute.String("verification.id", ID.String())))
	defer func() { endSpan(span, err) }()

	verification, err := s.storage.VerificationByID(ctx, ID)
	if err != nil {
		return nil, errors.Wrap(err, "could not get verification")
	}
	if verification == nil {
		return nil, serrors.With(serrors.ErrNotFound, "verification not found")
	}
	if verification.Status != domain.VerificationStatusPending {
		return nil, serrors.With(serrors.ErrConflict, "verification is already %s", verification.Status)
	}

	report, err := s.verify(ctx, verification.Input, metrics.SourceAsync)
	if err != nil {
		msg := err.Error()
		updated, uerr := s.storage.UpdatePendingVerificationByID(ctx, ID, storage.VerificationUpdates{
			Status:    domain.VerificationStatusFailed,
			LastError: &msg,
		})
		if uerr != nil {
			return nil, errors.Wrap(uerr, "could not mark verification failed")
		}
		if updated == nil {
			return nil, serrors.With(serrors.ErrConflict, "verification is no longer pending")
		}
		logger.Info(ctx, "verification failed", zap.String("reason", msg))

		return nil, err
	}

	noError := ""
	updated, err := s.storage.UpdatePendingVerificationByID(ctx, ID, storage.VerificationUpdates{
		Status:    domain.VerificationStatusCompleted,
		Report:    report,
		LastError: &noError,
	})
	if err != nil {
		s.recordAttempt(ctx, ID, err)

		return nil, errors.Wrap(err, "could not store report")
	}
	if updated == nil {
		return nil, serrors.With(serrors.ErrConflict, "verification is no longer pending")
	}

	logger.Info(ctx, "verification completed", zap.Bool("valid", report.Valid()))

	return updated, nil
}

// recordAttempt counts a failed processing attempt. The verification stays
// pending until MaxAttempts is reached.
func (s *verifier) recordAttempt(ctx context.Context, ID domain.VerificationID, cause error) {
	msg := cause.Error()
	if _, err := s.storage.UpdatePendingVerificationByID(ctx, ID, storage.VerificationUpdates{
		Status:      domain.VerificationStatusFailed,
		LastError:   &msg,
		MaxAttempts: s.options.MaxAttempts,
	}); err != nil {
		logger.Warn(ctx, "could not record failed attempt", zap.Error(err))
	}
}

// UserVerifications returns a page of verifications for the given user
// filtered by status. It supports cursor-based pagination using an RFC3339
// timestamp string and returns the next cursor when more results are
// available.
func (s *verifier) UserVerifications(ctx context.Context,
	userID domain.UserID,
	status domain.VerificationStatus,
	cursor string,
	limit uint) ([]domain.Verification, string, error) {
	var cursorTime time.Time
	if cursor != "" {
		t, err := time.Parse(time.RFC3339Nano, cursor)
		if err != nil {
			return nil, "", serrors.Wrap(serrors.ErrBadRequest, err, "invalid cursor")
		}
		cursorTime = t
	}
	if limit == 0 {
		limit = DefaultPageSize
	}
	limit = min(limit, MaxPageSize)

	page, err := s.storage.UserVerifications(ctx, userID, status, cursorTime, limit)
	if err != nil {
		return nil, "", errors.Wrap(err, "could not get user verifications")
	}

	var next string
	if page.NextCursor != nil {
		next = page.NextCursor.Format(time.RFC3339Nano)
	}

	return page.Verifications, next, nil
}

// Result fetches a single verification by ID for the given user. It returns a
// not-found error when no matching verification exists.
func (s *verifier) Result(ctx context.Context,
	userID domain.UserID,
	ID domain.VerificationID) (*domain.Verification, error) {
	res, err := s.storage.UserVerificationByID(ctx, userID, ID)
	if err != nil {
		return nil, errors.Wrap(err, "could not get verification")
	}
	if res == nil {
		return nil, serrors.With(serrors.ErrNotFound, "verification not found")
	}

	return res, nil
}

// Delete soft-deletes a verification belonging to the given user. A pending
// job for it is left in the queue and cancels itself once it finds the row
// gone.
func (s *verifier) Delete(ctx context.Context, userID domain.UserID, ID domain.VerificationID) error {
	res, err := s.storage.DeleteVerification(ctx, userID, ID)
	if err != nil {
		return errors.Wrap(err, "could not delete verification")
	}
	if res == nil {
		return serrors.With(serrors.ErrNotFound, "verification not found")
	}

	return nil
}

// IsContractViolation reports whether err stems from input that can never
// produce a report.
func IsContractViolation(err error) bool {
	return errors.Is(err, mrz.ErrStructural) ||
		errors.Is(err, mrz.ErrInvalidCharacter) ||
		errors.Is(err, mrz.ErrMissingField) ||
		errors.Is(err, mrz.ErrDateFormat)
}

func badRequest(err error, msg string) error {
	if IsContractViolation(err) {
		return serrors.Wrap(serrors.ErrBadRequest, err, "%s", msg)
	}

	return errors.Wrap(err, msg)
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// New creates a Verifier backed by storage that validates country codes
// against countries. m may be nil.
func New(storage storage.Storage,
	countries mrz.CountryLookup,
	m *metrics.Verification,
	options Options) Verifier {
	return &verifier{
		options:    options,
		storage:    storage,
		countries:  countries,
		aggregator: mrz.NewAggregator(countries),
		metrics:    m,
	}
}
