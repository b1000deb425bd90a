package postgres

import (
	"context"
	"passportmrz/pkg/domain"
	"passportmrz/pkg/storage"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/go-faster/errors"
	"github.com/google/uuid"
)

const (
	verificationsTable = "verifications"
)

func (p *PgSQL) StoreVerifications(ctx context.Context,
	verifications ...domain.Verification) ([]domain.Verification, error) {
	if len(verifications) == 0 {
		return nil, nil
	}

	rows, err := domainVerificationsToPg(verifications)
	if err != nil {
		return nil, err
	}

	var result []PgVerification
	if err := p.Builder.Insert(verificationsTable).
		Rows(rows).
		Returning(&PgVerification{}).
		Executor().ScanStructsContext(ctx, &result); err != nil {
		return nil, errors.Wrap(err, "could not store verifications into pg")
	}

	return pgVerificationsToDomain(result)
}

// UpdatePendingVerificationByID updates a pending verification with the
// provided fields. Attempts is incremented by 1 and updated_at is set.
func (p *PgSQL) UpdatePendingVerificationByID(ctx context.Context,
	id domain.VerificationID,
	updates storage.VerificationUpdates) (*domain.Verification, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
		"attempts":   goqu.L("attempts + 1"),
	}
	switch {
	case updates.Status == domain.VerificationStatusFailed && updates.MaxAttempts > 0:
		// stays pending until the retry budget is spent
		rec["status"] = goqu.L("CASE WHEN attempts + 1 >= ? THEN ? ELSE status END",
			updates.MaxAttempts, string(domain.VerificationStatusFailed))
	case updates.Status != "":
		rec["status"] = string(updates.Status)
	}
	if updates.Report != nil {
		b, err := updates.Report.MarshalJSON()
		if err != nil {
			return nil, errors.Wrap(err, "could not marshal report")
		}

		rec["report"] = b
		rec["valid"] = updates.Report.Valid()
	}
	if updates.LastError != nil {
		if *updates.LastError == "" {
			// set to NULL when empty string provided
			rec["last_error"] = goqu.L("NULL")
		} else {
			rec["last_error"] = *updates.LastError
		}
	}

	var row PgVerification
	found, err := p.Builder.Update(verificationsTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("status").Eq(string(domain.VerificationStatusPending)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgVerification{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, errors.Wrap(err, "could not update verification in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// DeleteVerification performs a soft delete by setting deleted_at timestamp
// for a given verification id and user, returning the deleted record.
func (p *PgSQL) DeleteVerification(ctx context.Context,
	userID domain.UserID,
	id domain.VerificationID) (*domain.Verification, error) {
	var row PgVerification
	found, err := p.Builder.Update(verificationsTable).
		Set(goqu.Record{
			"deleted_at": goqu.L("CURRENT_TIMESTAMP"),
		}).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgVerification{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, errors.Wrap(err, "could not delete verification in pg")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}

// UserVerifications returns verifications of a user created before cursor,
// newest first. One extra row is fetched to tell whether a next page exists.
func (p *PgSQL) UserVerifications(ctx context.Context,
	userID domain.UserID,
	status domain.VerificationStatus,
	cursor time.Time,
	limit uint) (storage.UserVerifications, error) {
	w := []goqu.Expression{
		goqu.I("user_id").Eq(uuid.UUID(userID)),
		goqu.I("deleted_at").IsNull(),
	}
	if status != "" {
		w = append(w, goqu.I("status").Eq(string(status)))
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	ds := p.Builder.From(verificationsTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(limit + 1)

	var rows []PgVerification
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserVerifications{}, errors.Wrap(err, "could not fetch user verifications from pg")
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		rows = rows[:limit]
		if limit > 0 {
			nextCursor = &rows[len(rows)-1].CreatedAt
		}
	}

	verifications, err := pgVerificationsToDomain(rows)
	if err != nil {
		return storage.UserVerifications{}, err
	}

	return storage.UserVerifications{
		Verifications: verifications,
		NextCursor:    nextCursor,
	}, nil
}

// VerificationByID returns a verification by its ID, excluding soft-deleted rows.
func (p *PgSQL) VerificationByID(ctx context.Context, id domain.VerificationID) (*domain.Verification, error) {
	return p.verificationWhere(ctx, goqu.I("id").Eq(uuid.UUID(id)))
}

// UserVerificationByID returns a verification owned by userID, excluding
// soft-deleted rows.
func (p *PgSQL) UserVerificationByID(ctx context.Context,
	userID domain.UserID,
	id domain.VerificationID) (*domain.Verification, error) {
	return p.verificationWhere(ctx,
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("user_id").Eq(uuid.UUID(userID)),
	)
}

func (p *PgSQL) verificationWhere(ctx context.Context, where ...goqu.Expression) (*domain.Verification, error) {
	var row PgVerification
	found, err := p.Builder.From(verificationsTable).
		Where(append(where, goqu.I("deleted_at").IsNull())...).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch verification by id")
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain()
}
