package storage

import (
	"context"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/mrz"
	"time"
)

// VerificationUpdates describes a set of optional fields that can be applied
// to an existing verification during an update. Only non-nil fields will be
// updated.
type VerificationUpdates struct {
	// Status is the new status to set for the verification.
	Status domain.VerificationStatus
	// Report, when provided, replaces the stored report payload.
	Report *mrz.Report
	// LastError, when provided, sets the last error text. An empty string value
	// indicates the error should be cleared (set to NULL).
	LastError *string
	// MaxAttempts, when provided alongside a Failed status, ensures that status
	// is only updated to Failed if the current attempts after increment would
	// reach this threshold. A value <= 0 disables this guard.
	MaxAttempts int
}

// UserVerifications groups a page of verifications returned for a user
// together with an optional NextCursor used for pagination.
type UserVerifications struct {
	// Verifications contains the current page of records.
	Verifications []domain.Verification
	// NextCursor points to the timestamp to be used as the cursor for fetching
	// the next page. It is nil when there is no next page.
	NextCursor *time.Time
}

// VerificationStorage defines CRUD and query operations related to
// verifications. Soft-deleted rows are invisible to every operation.
type VerificationStorage interface {
	// StoreVerifications inserts one or more verifications and returns the
	// stored rows as they exist in the database (including generated fields).
	StoreVerifications(ctx context.Context, verifications ...domain.Verification) ([]domain.Verification, error)
	// UpdatePendingVerificationByID updates a single pending verification and
	// returns the updated row, or nil when no pending row matched.
	// Notes:
	// - Attempts is incremented by 1 and updated_at is set automatically.
	// - If Status is Failed and MaxAttempts > 0, status is only set to Failed
	//   when the attempts after increment reach MaxAttempts; otherwise status
	//   remains Pending.
	UpdatePendingVerificationByID(ctx context.Context,
		ID domain.VerificationID,
		updates VerificationUpdates) (*domain.Verification, error)
	// VerificationByID fetches a verification regardless of its owner.
	// Returns nil when not found.
	VerificationByID(ctx context.Context, ID domain.VerificationID) (*domain.Verification, error)
	// UserVerificationByID fetches a verification owned by the given user.
	// Returns nil when not found.
	UserVerificationByID(ctx context.Context,
		userID domain.UserID,
		ID domain.VerificationID) (*domain.Verification, error)
	// DeleteVerification performs a soft delete for the given verification ID
	// and user ID and returns the deleted row, or nil if it was not found.
	DeleteVerification(ctx context.Context,
		userID domain.UserID,
		ID domain.VerificationID) (*domain.Verification, error)
	// UserVerifications returns a page of verifications for a user created
	// before the optional cursor time, limited by the given limit. If status is
	// non-empty, results are filtered to records with the given status.
	UserVerifications(ctx context.Context,
		userID domain.UserID,
		status domain.VerificationStatus,
		cursor time.Time,
		limit uint) (UserVerifications, error)
}
