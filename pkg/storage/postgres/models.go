package postgres

import (
	"database/sql"
	"encoding/json"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/mrz"
	"time"

	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

type PgVerification struct {
	ID     uuid.UUID `db:"id"      goqu:"skipinsert"`
	UserID uuid.UUID `db:"user_id"`

	Input  json.RawMessage `db:"input"`
	Status string          `db:"status"`
	Report json.RawMessage `db:"report" goqu:"skipinsert"`
	Valid  sql.NullBool    `db:"valid"  goqu:"skipinsert"`

	Attempts  uint           `db:"attempts"   goqu:"skipinsert"`
	LastError sql.NullString `db:"last_error" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgVerification) ToDomain() (*domain.Verification, error) {
	var input domain.VerificationInput
	if err := json.Unmarshal(p.Input, &input); err != nil {
		return nil, errors.Wrap(err, "could not unmarshal verification input")
	}

	var report *mrz.Report
	if len(p.Report) > 0 && string(p.Report) != "null" {
		report = &mrz.Report{}
		if err := report.UnmarshalJSON(p.Report); err != nil {
			return nil, errors.Wrap(err, "could not unmarshal verification report")
		}
	}

	return &domain.Verification{
		ID:        domain.VerificationID(p.ID),
		UserID:    domain.UserID(p.UserID),
		Input:     input,
		Status:    domain.VerificationStatus(p.Status),
		Report:    report,
		Attempts:  p.Attempts,
		LastError: p.LastError.String,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt.Time,
		DeletedAt: p.DeletedAt.Time,
	}, nil
}

func (p *PgVerification) FromDomain(v domain.Verification) error {
	input, err := json.Marshal(v.Input)
	if err != nil {
		return errors.Wrap(err, "could not marshal verification input")
	}

	*p = PgVerification{
		ID:       uuid.UUID(v.ID),
		UserID:   uuid.UUID(v.UserID),
		Input:    input,
		Status:   string(v.Status),
		Attempts: v.Attempts,
		LastError: sql.NullString{
			String: v.LastError,
			Valid:  v.LastError != "",
		},
		CreatedAt: v.CreatedAt,
		UpdatedAt: sql.NullTime{
			Time:  v.UpdatedAt,
			Valid: !v.UpdatedAt.IsZero(),
		},
		DeletedAt: sql.NullTime{
			Time:  v.DeletedAt,
			Valid: !v.DeletedAt.IsZero(),
		},
	}
	if v.Report != nil {
		if p.Report, err = v.Report.MarshalJSON(); err != nil {
			return errors.Wrap(err, "could not marshal verification report")
		}
		p.Valid = sql.NullBool{Bool: v.Report.Valid(), Valid: true}
	}

	return nil
}

func domainVerificationsToPg(verifications []domain.Verification) ([]PgVerification, error) {
	out := make([]PgVerification, len(verifications))
	for i := range out {
		if err := out[i].FromDomain(verifications[i]); err != nil {
			return nil, err
		}
	}

	return out, nil
}

func pgVerificationsToDomain(rows []PgVerification) ([]domain.Verification, error) {
	out := make([]domain.Verification, 0, len(rows))
	for _, row := range rows {
		d, err := row.ToDomain()
		if err != nil {
			return nil, err
		}

		out = append(out, *d)
	}

	return out, nil
}
