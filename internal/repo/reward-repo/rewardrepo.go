package rewardrepo

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

func (r *Repository) GetByID(ctx context.Context, rewardID, businessID int) (*domain.Reward, error) {
	query := `
        SELECT id, business_id, name, points_required, is_active, is_archived
        FROM rewards
        WHERE id = $1 AND business_id = $2
    `
	row := r.db.QueryRow(ctx, query, rewardID, businessID)
	var reward domain.Reward
	err := row.Scan(&reward.ID, &reward.BusinessID, &reward.Name, &reward.PointsRequired, &reward.IsActive, &reward.IsArchived)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find reward", zap.Error(err))
		return nil, err
	}
	return &reward, nil
}
