package ledgerrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/pg"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{
		db: db,
	}
}

const ledgerColumns = `id, membership_id, type, points, note, source, branch_id, operator_id, idempotency_key, redemption_id, created_at`

// InsertOrFetch appends a ledger record, or hands back the already-stored one
// when the record's idempotency key has been used for this membership before.
// The bool reports whether a row was actually inserted. Losing an insert race
// resolves to the winner's row instead of a uniqueness error.
func (r *Repository) InsertOrFetch(ctx context.Context, record *domain.LedgerRecord) (*domain.LedgerRecord, bool, error) {
	query := `
        INSERT INTO ledger_records (membership_id, type, points, note, source, branch_id, operator_id, idempotency_key, redemption_id)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        ON CONFLICT (membership_id, idempotency_key) WHERE idempotency_key IS NOT NULL DO NOTHING
        RETURNING id, created_at
    `
	row := r.db.QueryRow(ctx, query,
		record.MembershipID, record.Type, record.Points, record.Note, record.Source,
		record.BranchID, record.OperatorID, record.IdempotencyKey, record.RedemptionID,
	)
	err := row.Scan(&record.ID, &record.CreatedAt)
	if err == nil {
		return record, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		zap.L().Error("can't insert ledger record", zap.Error(err))
		return nil, false, err
	}

	// conflict: the key was already spent, fetch the winner's record
	existing, err := r.FindByIdempotencyKey(ctx, record.MembershipID, *record.IdempotencyKey)
	if err != nil {
		return nil, false, err
	}
	if existing == nil {
		return nil, false, errors.New("ledger record conflict without stored record")
	}
	return existing, false, nil
}

func (r *Repository) FindByIdempotencyKey(ctx context.Context, membershipID int, key string) (*domain.LedgerRecord, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM ledger_records
        WHERE membership_id = $1 AND idempotency_key = $2
    `
	row := r.db.QueryRow(ctx, query, membershipID, key)
	var rec domain.LedgerRecord
	err := row.Scan(&rec.ID, &rec.MembershipID, &rec.Type, &rec.Points, &rec.Note, &rec.Source,
		&rec.BranchID, &rec.OperatorID, &rec.IdempotencyKey, &rec.RedemptionID, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find ledger record by idempotency key", zap.Error(err))
		return nil, err
	}
	return &rec, nil
}

func (r *Repository) FindByMembershipID(ctx context.Context, membershipID, limit, offset int) ([]domain.LedgerRecord, error) {
	query := `
        SELECT ` + ledgerColumns + `
        FROM ledger_records
        WHERE membership_id = $1
        ORDER BY created_at DESC, id DESC
        LIMIT $2 OFFSET $3
    `
	rows, err := r.db.Query(ctx, query, membershipID, limit, offset)
	if err != nil {
		zap.L().Error("can't get ledger records", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var records []domain.LedgerRecord
	for rows.Next() {
		var rec domain.LedgerRecord
		err := rows.Scan(&rec.ID, &rec.MembershipID, &rec.Type, &rec.Points, &rec.Note, &rec.Source,
			&rec.BranchID, &rec.OperatorID, &rec.IdempotencyKey, &rec.RedemptionID, &rec.CreatedAt)
		if err != nil {
			zap.L().Error("can't scan ledger record row", zap.Error(err))
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
