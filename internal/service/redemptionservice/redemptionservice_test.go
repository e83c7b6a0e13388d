package redemptionservice

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/pg"
	"github.com/pointsward/loyalcore/internal/service/ledgerservice"
)

type serviceMocks struct {
	redemptionRepo *MockRedemptionRepo
	rewardRepo     *MockRewardRepo
	membershipRepo *MockMembershipRepo
	balance        *MockBalanceMutator
	notifier       *MockWalletNotifier
}

func NewMock(t *testing.T) (*Service, *serviceMocks) {
	ctrl := gomock.NewController(t)
	m := &serviceMocks{
		redemptionRepo: NewMockRedemptionRepo(ctrl),
		rewardRepo:     NewMockRewardRepo(ctrl),
		membershipRepo: NewMockMembershipRepo(ctrl),
		balance:        NewMockBalanceMutator(ctrl),
		notifier:       NewMockWalletNotifier(ctrl),
	}
	txManager := pg.NewMockTXManager(ctrl)
	txManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn pg.TransactionalFn) error {
			return fn(ctx)
		},
	).AnyTimes()
	service := New(m.redemptionRepo, m.rewardRepo, m.membershipRepo, m.balance, txManager, m.notifier)
	defer ctrl.Finish()
	return service, m
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestIssue(t *testing.T) {
	service, m := NewMock(t)

	reward := &domain.Reward{ID: 5, BusinessID: 2, Name: "Free Coffee", PointsRequired: 300, IsActive: true}
	member := &domain.Membership{ID: 1, BusinessID: 2, PointsBalance: 500, Status: domain.MembershipActive}

	tests := []struct {
		name           string
		idempotencyKey *string
		prepareMock    func()
		expectedID     int
		expectedError  error
	}{
		{
			name: "Reward not found",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(nil, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name: "Inactive reward",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(&domain.Reward{ID: 5, IsActive: false}, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name: "Archived reward",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(&domain.Reward{ID: 5, IsActive: true, IsArchived: true}, nil)
			},
			expectedError: ErrRewardNotFound,
		},
		{
			name: "Not a member",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(nil, nil)
			},
			expectedError: ErrNotAMember,
		},
		{
			name: "Blocked membership",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(&domain.Membership{
					ID: 1, BusinessID: 2, Status: domain.MembershipBlocked,
				}, nil)
			},
			expectedError: ledgerservice.ErrMembershipBlocked,
		},
		{
			name: "Insufficient points",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(&domain.Membership{
					ID: 1, BusinessID: 2, PointsBalance: 100, Status: domain.MembershipActive,
				}, nil)
			},
			expectedError: ledgerservice.ErrInsufficientPoints,
		},
		{
			name:           "Successful issuance deducts cost",
			idempotencyKey: strPtr("req-1"),
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(member, nil)
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Redemption) (*domain.Redemption, error) {
						assert.Equal(t, domain.RedemptionIssued, r.Status)
						assert.Equal(t, 300, r.PointsCost)
						assert.Equal(t, "Free Coffee", r.RewardName)
						assert.Equal(t, r.IssuedAt.Add(7*24*time.Hour), r.ExpiresAt)
						created := *r
						created.ID = 9
						return &created, nil
					})
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mv ledgerservice.Movement) (*domain.LedgerRecord, int, error) {
						assert.Equal(t, domain.RedeemMovement, mv.Type)
						assert.Equal(t, -300, mv.Points)
						assert.Equal(t, domain.SystemSource, mv.Source)
						require.NotNil(t, mv.IdempotencyKey)
						assert.Equal(t, "issue-req-1", *mv.IdempotencyKey)
						return &domain.LedgerRecord{ID: 70, RedemptionID: intPtr(9)}, 200, nil
					})
				m.notifier.EXPECT().NotifyBalance(1, 2, 200)
			},
			expectedID: 9,
		},
		{
			name:           "Replayed issuance returns the original",
			idempotencyKey: strPtr("req-1"),
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(member, nil)
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Redemption) (*domain.Redemption, error) {
						created := *r
						created.ID = 10
						return &created, nil
					})
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(
					&domain.LedgerRecord{ID: 70, RedemptionID: intPtr(9)}, 200, nil)
				m.redemptionRepo.EXPECT().GetByID(gomock.Any(), 9, 2).Return(&domain.Redemption{
					ID: 9, BusinessID: 2, MembershipID: 1, Status: domain.RedemptionIssued,
				}, nil)
			},
			expectedID: 9,
		},
		{
			name: "Deduction failure rolls the issuance back",
			prepareMock: func() {
				m.rewardRepo.EXPECT().GetByID(gomock.Any(), 5, 2).Return(reward, nil)
				m.membershipRepo.EXPECT().GetByID(gomock.Any(), 1, 2).Return(member, nil)
				m.redemptionRepo.EXPECT().CodeExists(gomock.Any(), gomock.Any()).Return(false, nil)
				m.redemptionRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&domain.Redemption{ID: 11}, nil)
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			redemption, err := service.Issue(context.Background(), 2, 1, 5, tt.idempotencyKey)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, redemption)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expectedID, redemption.ID)
			}
		})
	}
}

func TestConsume(t *testing.T) {
	service, m := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	issued := func(expiresAt time.Time) *domain.Redemption {
		return &domain.Redemption{
			ID:           9,
			BusinessID:   2,
			MembershipID: 1,
			RedeemCode:   "ABCD-2345",
			Status:       domain.RedemptionIssued,
			PointsCost:   300,
			RewardName:   "Free Coffee",
			IssuedAt:     expiresAt.Add(-7 * 24 * time.Hour),
			ExpiresAt:    expiresAt,
		}
	}

	tests := []struct {
		name          string
		prepareMock   func()
		wantConsumed  bool
		wantCancelled bool
		expectedError error
	}{
		{
			name: "Redemption not found",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(nil, nil)
			},
			expectedError: ErrRedemptionNotFound,
		},
		{
			name: "Already redeemed",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(&domain.Redemption{
					ID: 9, Status: domain.RedemptionRedeemed,
				}, nil)
			},
			expectedError: ErrAlreadyRedeemed,
		},
		{
			name: "Already cancelled",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(&domain.Redemption{
					ID: 9, Status: domain.RedemptionCancelled,
				}, nil)
			},
			expectedError: ErrAlreadyCancelled,
		},
		{
			name: "Valid code is redeemed",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(issued(now.Add(24*time.Hour)), nil)
				m.redemptionRepo.EXPECT().MarkRedeemed(gomock.Any(), 9, 7, 3, now).Return(nil)
			},
			wantConsumed: true,
		},
		{
			name: "Expired code is voided and refunded",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(issued(now.Add(-time.Hour)), nil)
				m.redemptionRepo.EXPECT().MarkCancelled(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Redemption) error {
						assert.Equal(t, domain.RedemptionCancelled, r.Status)
						require.NotNil(t, r.CancelSource)
						assert.Equal(t, domain.CancelAuto, *r.CancelSource)
						require.NotNil(t, r.CancelReasonCode)
						assert.Equal(t, domain.ExpiredReasonCode, *r.CancelReasonCode)
						assert.Nil(t, r.CancelledBy)
						return nil
					})
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mv ledgerservice.Movement) (*domain.LedgerRecord, int, error) {
						assert.Equal(t, domain.RefundMovement, mv.Type)
						assert.Equal(t, 300, mv.Points)
						assert.Equal(t, domain.SystemSource, mv.Source)
						require.NotNil(t, mv.IdempotencyKey)
						assert.Equal(t, "refund-9", *mv.IdempotencyKey)
						return &domain.LedgerRecord{ID: 71}, 500, nil
					})
				m.notifier.EXPECT().NotifyBalance(1, 2, 500)
			},
			wantCancelled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			result, err := service.Consume(context.Background(), 2, "ABCD-2345", 7, 3)
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantConsumed, result.Consumed)
			assert.Equal(t, tt.wantCancelled, result.AutoCancelled)
			if tt.wantConsumed {
				assert.Equal(t, domain.RedemptionRedeemed, result.Redemption.Status)
				assert.Equal(t, &now, result.Redemption.RedeemedAt)
				assert.Equal(t, intPtr(7), result.Redemption.RedeemedBy)
				assert.Equal(t, intPtr(3), result.Redemption.RedeemedBranchID)
			}
			if tt.wantCancelled {
				assert.Equal(t, domain.RedemptionCancelled, result.Redemption.Status)
			}
		})
	}
}

func TestCancel(t *testing.T) {
	service, m := NewMock(t)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	service.now = func() time.Time { return now }

	issued := &domain.Redemption{
		ID:           9,
		BusinessID:   2,
		MembershipID: 1,
		RedeemCode:   "ABCD-2345",
		Status:       domain.RedemptionIssued,
		PointsCost:   300,
		ExpiresAt:    now.Add(24 * time.Hour),
	}

	tests := []struct {
		name          string
		reasonCode    string
		reasonText    string
		prepareMock   func()
		expectedError error
	}{
		{
			name:          "Unknown reason code",
			reasonCode:    "changed_mind",
			expectedError: ErrInvalidReason,
		},
		{
			name:          "Reason other requires text",
			reasonCode:    ReasonOther,
			reasonText:    "  no ",
			expectedError: ErrReasonTextRequired,
		},
		{
			name:       "Cancelled on customer request",
			reasonCode: "customer_request",
			prepareMock: func() {
				fresh := *issued
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(&fresh, nil)
				m.redemptionRepo.EXPECT().MarkCancelled(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Redemption) error {
						require.NotNil(t, r.CancelSource)
						assert.Equal(t, domain.CancelManual, *r.CancelSource)
						assert.Equal(t, intPtr(7), r.CancelledBy)
						assert.Equal(t, strPtr("customer_request"), r.CancelReasonCode)
						assert.Nil(t, r.CancelReasonText)
						return nil
					})
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mv ledgerservice.Movement) (*domain.LedgerRecord, int, error) {
						assert.Equal(t, domain.RefundMovement, mv.Type)
						assert.Equal(t, 300, mv.Points)
						assert.Equal(t, domain.ManualSource, mv.Source)
						assert.Equal(t, intPtr(7), mv.OperatorID)
						assert.Equal(t, intPtr(3), mv.BranchID)
						require.NotNil(t, mv.IdempotencyKey)
						assert.Equal(t, "refund-9", *mv.IdempotencyKey)
						return &domain.LedgerRecord{ID: 72}, 500, nil
					})
				m.notifier.EXPECT().NotifyBalance(1, 2, 500)
			},
		},
		{
			name:       "Reason other keeps the text",
			reasonCode: ReasonOther,
			reasonText: " reward machine is broken ",
			prepareMock: func() {
				fresh := *issued
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(&fresh, nil)
				m.redemptionRepo.EXPECT().MarkCancelled(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, r *domain.Redemption) error {
						assert.Equal(t, strPtr("reward machine is broken"), r.CancelReasonText)
						return nil
					})
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(&domain.LedgerRecord{ID: 73}, 500, nil)
				m.notifier.EXPECT().NotifyBalance(1, 2, 500)
			},
		},
		{
			name:       "Refund failure aborts the cancellation",
			reasonCode: "out_of_stock",
			prepareMock: func() {
				fresh := *issued
				m.redemptionRepo.EXPECT().GetForUpdateByCode(gomock.Any(), 2, "ABCD-2345").Return(&fresh, nil)
				m.redemptionRepo.EXPECT().MarkCancelled(gomock.Any(), gomock.Any()).Return(nil)
				m.balance.EXPECT().ApplyMovement(gomock.Any(), gomock.Any()).Return(nil, 0, errors.New("db error"))
			},
			expectedError: errors.New("db error"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.prepareMock != nil {
				tt.prepareMock()
			}

			redemption, err := service.Cancel(context.Background(), 2, "ABCD-2345", 7, 3, tt.reasonCode, tt.reasonText)
			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError.Error(), err.Error())
				assert.Nil(t, redemption)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, domain.RedemptionCancelled, redemption.Status)
				assert.Equal(t, &now, redemption.CancelledAt)
			}
		})
	}
}

func TestGet(t *testing.T) {
	service, m := NewMock(t)

	tests := []struct {
		name          string
		prepareMock   func()
		expectedError error
	}{
		{
			name: "Found",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetByCode(gomock.Any(), 2, "ABCD-2345").Return(&domain.Redemption{
					ID: 9, RedeemCode: "ABCD-2345", Status: domain.RedemptionIssued,
				}, nil)
			},
		},
		{
			name: "Not found",
			prepareMock: func() {
				m.redemptionRepo.EXPECT().GetByCode(gomock.Any(), 2, "ABCD-2345").Return(nil, nil)
			},
			expectedError: ErrRedemptionNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepareMock()

			redemption, err := service.Get(context.Background(), 2, "ABCD-2345")
			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, redemption)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "ABCD-2345", redemption.RedeemCode)
			}
		})
	}
}
