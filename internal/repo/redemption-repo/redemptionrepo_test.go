package redemptionrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/pointsward/loyalcore/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB)
	defer mockDB.Close()

	return repo, mockDB
}

var redemptionRowColumns = []string{
	"id", "business_id", "membership_id", "reward_id", "redeem_code", "status", "points_cost", "reward_name",
	"issued_at", "expires_at", "redeemed_at", "redeemed_by", "redeemed_branch_id",
	"cancelled_at", "cancelled_by", "cancel_source", "cancel_reason_code", "cancel_reason_text",
}

func issuedRow(now time.Time) []any {
	return []any{
		9, 2, 1, 5, "ABCD-2345", domain.RedemptionIssued, 300, "Free Coffee",
		now, now.Add(7 * 24 * time.Hour), nil, nil, nil,
		nil, nil, nil, nil, nil,
	}
}

func TestRepository_Create(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        INSERT INTO redemptions (business_id, membership_id, reward_id, redeem_code, status, points_cost, reward_name, issued_at, expires_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
        RETURNING id`)

	redemption := func() *domain.Redemption {
		return &domain.Redemption{
			BusinessID:   2,
			MembershipID: 1,
			RewardID:     5,
			RedeemCode:   "ABCD-2345",
			Status:       domain.RedemptionIssued,
			PointsCost:   300,
			RewardName:   "Free Coffee",
			IssuedAt:     now,
			ExpiresAt:    now.Add(7 * 24 * time.Hour),
		}
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Create redemption successfully",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(2, 1, 5, "ABCD-2345", domain.RedemptionIssued, 300, "Free Coffee", now, now.Add(7*24*time.Hour)).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(9))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(2, 1, 5, "ABCD-2345", domain.RedemptionIssued, 300, "Free Coffee", now, now.Add(7*24*time.Hour)).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.Create(ctx, redemption())

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 9, result.ID)
			}
		})
	}
}

func TestRepository_GetByCode(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        SELECT id, business_id, membership_id, reward_id, redeem_code, status, points_cost, reward_name,
			issued_at, expires_at, redeemed_at, redeemed_by, redeemed_branch_id,
			cancelled_at, cancelled_by, cancel_source, cancel_reason_code, cancel_reason_text
        FROM redemptions
        WHERE business_id = $1 AND redeem_code = $2`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Redemption found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(2, "ABCD-2345").
					WillReturnRows(pgxmock.NewRows(redemptionRowColumns).AddRow(issuedRow(now)...))
			},
			found: true,
		},
		{
			name: "Redemption not found",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(2, "ABCD-2345").
					WillReturnRows(pgxmock.NewRows(redemptionRowColumns))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs(2, "ABCD-2345").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.GetByCode(ctx, 2, "ABCD-2345")

			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.Equal(t, 9, result.ID)
				assert.Equal(t, domain.RedemptionIssued, result.Status)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_GetForUpdateByCode(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`
        SELECT id, business_id, membership_id, reward_id, redeem_code, status, points_cost, reward_name,
			issued_at, expires_at, redeemed_at, redeemed_by, redeemed_branch_id,
			cancelled_at, cancelled_by, cancel_source, cancel_reason_code, cancel_reason_text
        FROM redemptions
        WHERE business_id = $1 AND redeem_code = $2
        FOR UPDATE`)).
		WithArgs(2, "ABCD-2345").
		WillReturnRows(pgxmock.NewRows(redemptionRowColumns).AddRow(issuedRow(now)...))

	result, err := repo.GetForUpdateByCode(ctx, 2, "ABCD-2345")
	assert.NoError(t, err)
	assert.Equal(t, "ABCD-2345", result.RedeemCode)
}

func TestRepository_CodeExists(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)

	query := regexp.QuoteMeta(`
        SELECT EXISTS (SELECT 1 FROM redemptions WHERE redeem_code = $1)`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		exists    bool
	}{
		{
			name: "Code exists",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ABCD-2345").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(true))
			},
			exists: true,
		},
		{
			name: "Code is free",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ABCD-2345").
					WillReturnRows(pgxmock.NewRows([]string{"exists"}).AddRow(false))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(query).
					WithArgs("ABCD-2345").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			exists, err := repo.CodeExists(ctx, "ABCD-2345")

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.exists, exists)
			}
		})
	}
}

func TestRepository_MarkRedeemed(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()

	query := regexp.QuoteMeta(`
        UPDATE redemptions
        SET status = $1, redeemed_at = $2, redeemed_by = $3, redeemed_branch_id = $4
        WHERE id = $5`)

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Marked redeemed",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.RedemptionRedeemed, now, 7, 3, 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.RedemptionRedeemed, now, 7, 3, 9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkRedeemed(ctx, 9, 7, 3, now)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRepository_MarkCancelled(t *testing.T) {
	ctx := context.Background()
	repo, mock := NewMock(t)
	now := time.Now()
	source := domain.CancelManual
	reason := "customer_request"
	operator := 7

	query := regexp.QuoteMeta(`
        UPDATE redemptions
        SET status = $1, cancelled_at = $2, cancelled_by = $3, cancel_source = $4, cancel_reason_code = $5, cancel_reason_text = $6
        WHERE id = $7`)

	redemption := &domain.Redemption{
		ID:               9,
		CancelledAt:      &now,
		CancelledBy:      &operator,
		CancelSource:     &source,
		CancelReasonCode: &reason,
	}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Marked cancelled",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.RedemptionCancelled, &now, &operator, &source, &reason, (*string)(nil), 9).
					WillReturnResult(pgxmock.NewResult("UPDATE", 1))
			},
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectExec(query).
					WithArgs(domain.RedemptionCancelled, &now, &operator, &source, &reason, (*string)(nil), 9).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			err := repo.MarkCancelled(ctx, redemption)

			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
