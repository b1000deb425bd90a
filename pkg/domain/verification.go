package domain

import (
	"passportmrz/pkg/mrz"
	"time"

	"github.com/google/uuid"
)

// VerificationID uniquely identifies a verification request.
// It wraps uuid.UUID to provide type safety at the domain layer.
type VerificationID uuid.UUID

// String returns the canonical uuid form of the ID.
func (id VerificationID) String() string { return uuid.UUID(id).String() }

// MarshalText encodes the ID in its canonical uuid form.
func (id VerificationID) MarshalText() ([]byte, error) {
	return uuid.UUID(id).MarshalText() //nolint: wrapcheck
}

// UnmarshalText decodes an ID from any form accepted by uuid.Parse.
func (id *VerificationID) UnmarshalText(data []byte) error {
	return (*uuid.UUID)(id).UnmarshalText(data) //nolint: wrapcheck
}

// ParseVerificationID parses s as a VerificationID.
func ParseVerificationID(s string) (VerificationID, error) {
	id, err := uuid.Parse(s)

	return VerificationID(id), err //nolint: wrapcheck
}

// VerificationStatus represents the lifecycle state of a verification.
// It can be pending, completed, or failed.
type VerificationStatus string

const (
	// VerificationStatusPending indicates the verification has been enqueued but not processed yet.
	VerificationStatusPending VerificationStatus = "PENDING"
	// VerificationStatusCompleted indicates the MRZ was verified and a report is available.
	VerificationStatusCompleted VerificationStatus = "COMPLETED"
	// VerificationStatusFailed indicates the input could not be verified; see LastError for details.
	VerificationStatusFailed VerificationStatus = "FAILED"
)

// VerificationInput is what a caller submits for verification: the raw MRZ
// text and, optionally, fields and checker output produced upstream. Missing
// parts are derived from the MRZ itself.
type VerificationInput struct {
	MRZ     string             `json:"mrz"`
	Fields  *mrz.Fields        `json:"fields,omitempty"`
	Checker *mrz.CheckerReport `json:"checker,omitempty"`
}

// Verification represents a single MRZ verification request and its current state.
type Verification struct {
	// ID is the unique identifier of the verification.
	ID VerificationID `json:"id"`
	// UserID is the identifier of the user who requested the verification.
	UserID UserID `json:"userId"`

	// Input is the submitted MRZ data.
	Input VerificationInput `json:"input"`
	// Status is the current lifecycle state of the verification.
	Status VerificationStatus `json:"status"`
	// Report is the 18-field verdict, set once Status is completed.
	Report *mrz.Report `json:"report,omitempty"`

	// Attempts is the number of times the system has tried to process this verification.
	Attempts uint `json:"attempts"`
	// LastError stores the most recent error message, if any.
	LastError string `json:"-"`

	// CreatedAt is the time when the verification request was created.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the time when the verification was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
	// DeletedAt marks when the verification was soft-deleted; zero value means not deleted.
	DeletedAt time.Time `json:"-"`
}
