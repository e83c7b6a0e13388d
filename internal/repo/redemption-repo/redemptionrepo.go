package redemptionrepo

import (
	"context"
	"errors"
	"time"

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

const redemptionColumns = `id, business_id, membership_id, reward_id, redeem_code, status, points_cost, reward_name,
		issued_at, expires_at, redeemed_at, redeemed_by, redeemed_branch_id,
		cancelled_at, cancelled_by, cancel_source, cancel_reason_code, cancel_reason_text`

func (r *Repository) Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error) {
	query := `
        INSERT INTO redemptions (business_id, membership_id, reward_id, redeem_code, status, points_cost, reward_name, issued_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		redemption.BusinessID, redemption.MembershipID, redemption.RewardID,
		redemption.RedeemCode, redemption.Status, redemption.PointsCost, redemption.RewardName,
		redemption.IssuedAt, redemption.ExpiresAt,
	).Scan(&redemption.ID)
	if err != nil {
		zap.L().Error("can't create redemption", zap.Error(err))
		return nil, err
	}
	return redemption, nil
}

func (r *Repository) GetByID(ctx context.Context, redemptionID, businessID int) (*domain.Redemption, error) {
	query := `
        SELECT ` + redemptionColumns + `
        FROM redemptions
        WHERE id = $1 AND business_id = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, redemptionID, businessID))
}

func (r *Repository) GetByCode(ctx context.Context, businessID int, code string) (*domain.Redemption, error) {
	query := `
        SELECT ` + redemptionColumns + `
        FROM redemptions
        WHERE business_id = $1 AND redeem_code = $2
    `
	return r.scanOne(r.db.QueryRow(ctx, query, businessID, code))
}

// GetForUpdateByCode locks the redemption row so concurrent consume/cancel
// calls on the same code are strictly ordered.
func (r *Repository) GetForUpdateByCode(ctx context.Context, businessID int, code string) (*domain.Redemption, error) {
	query := `
        SELECT ` + redemptionColumns + `
        FROM redemptions
        WHERE business_id = $1 AND redeem_code = $2
        FOR UPDATE
    `
	return r.scanOne(r.db.QueryRow(ctx, query, businessID, code))
}

func (r *Repository) CodeExists(ctx context.Context, code string) (bool, error) {
	query := `
        SELECT EXISTS (SELECT 1 FROM redemptions WHERE redeem_code = $1)
    `
	var exists bool
	if err := r.db.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		zap.L().Error("can't check redeem code", zap.Error(err))
		return false, err
	}
	return exists, nil
}

func (r *Repository) MarkRedeemed(ctx context.Context, redemptionID, operatorID, branchID int, at time.Time) error {
	query := `
        UPDATE redemptions
        SET status = $1, redeemed_at = $2, redeemed_by = $3, redeemed_branch_id = $4
        WHERE id = $5
    `
	if _, err := r.db.Exec(ctx, query, domain.RedemptionRedeemed, at, operatorID, branchID, redemptionID); err != nil {
		zap.L().Error("can't mark redemption redeemed", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) MarkCancelled(ctx context.Context, redemption *domain.Redemption) error {
	query := `
        UPDATE redemptions
        SET status = $1, cancelled_at = $2, cancelled_by = $3, cancel_source = $4, cancel_reason_code = $5, cancel_reason_text = $6
        WHERE id = $7
    `
	_, err := r.db.Exec(ctx, query,
		domain.RedemptionCancelled, redemption.CancelledAt, redemption.CancelledBy,
		redemption.CancelSource, redemption.CancelReasonCode, redemption.CancelReasonText,
		redemption.ID,
	)
	if err != nil {
		zap.L().Error("can't mark redemption cancelled", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Redemption, error) {
	var red domain.Redemption
	err := row.Scan(
		&red.ID, &red.BusinessID, &red.MembershipID, &red.RewardID, &red.RedeemCode,
		&red.Status, &red.PointsCost, &red.RewardName, &red.IssuedAt, &red.ExpiresAt,
		&red.RedeemedAt, &red.RedeemedBy, &red.RedeemedBranchID,
		&red.CancelledAt, &red.CancelledBy, &red.CancelSource, &red.CancelReasonCode, &red.CancelReasonText,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find redemption", zap.Error(err))
		return nil, err
	}
	return &red, nil
}
