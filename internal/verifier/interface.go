package verifier

import (
	"context"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/mrz"
)

//go:generate mockgen -package mockverifier -source=interface.go -destination=mock/mockverifier.go *
type Verifier interface {
	Verify(ctx context.Context, input domain.VerificationInput) (*mrz.Report, error)
	Submit(ctx context.Context, userID domain.UserID, input domain.VerificationInput) (*domain.Verification, error)
	Process(ctx context.Context, ID domain.VerificationID) (*domain.Verification, error)
	UserVerifications(ctx context.Context,
		userID domain.UserID,
		status domain.VerificationStatus,
		cursor string,
		limit uint) ([]domain.Verification, string, error)
	Result(ctx context.Context, userID domain.UserID, ID domain.VerificationID) (*domain.Verification, error)
	Delete(ctx context.Context, userID domain.UserID, ID domain.VerificationID) error
}
