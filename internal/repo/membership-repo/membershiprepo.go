package membershiprepo

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

func (r *Repository) Create(ctx context.Context, membership *domain.Membership) (*domain.Membership, error) {
	query := `
        INSERT INTO memberships (business_id, customer_id, card_number, points_balance, status)
        VALUES ($1, $2, $3, 0, $4)
        ON CONFLICT (business_id, customer_id) DO NOTHING
        RETURNING id, points_balance, created_at
    `
	row := r.db.QueryRow(ctx, query, membership.BusinessID, membership.CustomerID, membership.CardNumber, membership.Status)
	err := row.Scan(&membership.ID, &membership.PointsBalance, &membership.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't create membership", zap.Error(err))
		return nil, err
	}
	return membership, nil
}

func (r *Repository) GetByID(ctx context.Context, membershipID, businessID int) (*domain.Membership, error) {
	query := `
        SELECT id, business_id, customer_id, card_number, points_balance, status, created_at
        FROM memberships
        WHERE id = $1 AND business_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, membershipID, businessID))
}

// GetForUpdate locks the membership row for the rest of the enclosing
// transaction. Every balance write must go through this lock.
func (r *Repository) GetForUpdate(ctx context.Context, membershipID, businessID int) (*domain.Membership, error) {
	query := `
        SELECT id, business_id, customer_id, card_number, points_balance, status, created_at
        FROM memberships
        WHERE id = $1 AND business_id = $2
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, membershipID, businessID))
}

func (r *Repository) UpdateBalance(ctx context.Context, membershipID, balance int) error {
	query := `
        UPDATE memberships
        SET points_balance = $1
        WHERE id = $2
    `
	if _, err := r.db.Exec(ctx, query, balance, membershipID); err != nil {
		zap.L().Error("can't update membership balance", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(&m.ID, &m.BusinessID, &m.CustomerID, &m.CardNumber, &m.PointsBalance, &m.Status, &m.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find membership", zap.Error(err))
		return nil, err
	}
	return &m, nil
}
