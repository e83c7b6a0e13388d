package redemptionservice

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/pg"
	"github.com/pointsward/loyalcore/internal/service/ledgerservice"
)

type RedemptionRepo interface {
	Create(ctx context.Context, redemption *domain.Redemption) (*domain.Redemption, error)
	GetByID(ctx context.Context, redemptionID, businessID int) (*domain.Redemption, error)
	GetByCode(ctx context.Context, businessID int, code string) (*domain.Redemption, error)
	GetForUpdateByCode(ctx context.Context, businessID int, code string) (*domain.Redemption, error)
	CodeExists(ctx context.Context, code string) (bool, error)
	MarkRedeemed(ctx context.Context, redemptionID, operatorID, branchID int, at time.Time) error
	MarkCancelled(ctx context.Context, redemption *domain.Redemption) error
}

type RewardRepo interface {
	GetByID(ctx context.Context, rewardID, businessID int) (*domain.Reward, error)
}

type MembershipRepo interface {
	GetByID(ctx context.Context, membershipID, businessID int) (*domain.Membership, error)
}

// BalanceMutator is the ledger service. Called inside this service's
// transaction, so redemption state and balance move atomically.
type BalanceMutator interface {
	ApplyMovement(ctx context.Context, movement ledgerservice.Movement) (*domain.LedgerRecord, int, error)
}

type WalletNotifier interface {
	NotifyBalance(membershipID, businessID, balance int)
}

const (
	// redemptionTTL is the fixed validity window of an issued code.
	redemptionTTL = 7 * 24 * time.Hour

	maxCodeAttempts  = 5
	minReasonTextLen = 5

	// ReasonOther requires free-form text explaining the cancellation.
	ReasonOther = "other"
)

var manualReasonCodes = map[string]struct{}{
	"customer_request": {},
	"out_of_stock":     {},
	"operator_error":   {},
	ReasonOther:        {},
}

var (
	ErrRewardNotFound     = errors.New("reward not found")
	ErrNotAMember         = errors.New("membership not found in business")
	ErrRedemptionNotFound = errors.New("redemption not found")
	ErrAlreadyRedeemed    = errors.New("redemption already redeemed")
	ErrAlreadyCancelled   = errors.New("redemption already cancelled")
	ErrCodeGeneration     = errors.New("can't generate unique redeem code")
	ErrInvalidReason      = errors.New("invalid cancel reason")
	ErrReasonTextRequired = errors.New("cancel reason text is required")
)

// duplicateIssue signals that the deduction for this issuance was already
// written by an earlier attempt carrying the same idempotency key.
type duplicateIssue struct {
	originalID int
}

func (d *duplicateIssue) Error() string {
	return fmt.Sprintf("redemption %d already issued for this idempotency key", d.originalID)
}

type Service struct {
	redemptionRepo RedemptionRepo
	rewardRepo     RewardRepo
	membershipRepo MembershipRepo
	balance        BalanceMutator
	txManager      pg.TXManager
	notifier       WalletNotifier

	now func() time.Time
}

func New(redemptionRepo RedemptionRepo, rewardRepo RewardRepo, membershipRepo MembershipRepo, balance BalanceMutator, txManager pg.TXManager, notifier WalletNotifier) *Service {
	return &Service{
		redemptionRepo: redemptionRepo,
		rewardRepo:     rewardRepo,
		membershipRepo: membershipRepo,
		balance:        balance,
		txManager:      txManager,
		notifier:       notifier,
		now:            time.Now,
	}
}

// Issue creates an issued redemption and deducts the reward's cost in one
// transaction. A retry carrying the same idempotency key returns the
// redemption issued the first time instead of deducting again.
func (s *Service) Issue(ctx context.Context, businessID, membershipID, rewardID int, idempotencyKey *string) (*domain.Redemption, error) {
	reward, err := s.rewardRepo.GetByID(ctx, rewardID, businessID)
	if err != nil {
		return nil, err
	}
	if reward == nil || !reward.IsActive || reward.IsArchived {
		return nil, ErrRewardNotFound
	}

	membership, err := s.membershipRepo.GetByID(ctx, membershipID, businessID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrNotAMember
	}
	if membership.Status == domain.MembershipBlocked {
		return nil, ledgerservice.ErrMembershipBlocked
	}
	// fast pre-check; the mutator re-checks under the row lock
	if membership.PointsBalance < reward.PointsRequired {
		return nil, ledgerservice.ErrInsufficientPoints
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}

	var (
		issued  *domain.Redemption
		balance int
	)
	err = s.txManager.Begin(ctx, func(ctx context.Context) error {
		now := s.now()
		created, err := s.redemptionRepo.Create(ctx, &domain.Redemption{
			BusinessID:   businessID,
			MembershipID: membershipID,
			RewardID:     reward.ID,
			RedeemCode:   code,
			Status:       domain.RedemptionIssued,
			PointsCost:   reward.PointsRequired,
			RewardName:   reward.Name,
			IssuedAt:     now,
			ExpiresAt:    now.Add(redemptionTTL),
		})
		if err != nil {
			return err
		}

		key := fmt.Sprintf("issue-%d", created.ID)
		if idempotencyKey != nil {
			key = "issue-" + *idempotencyKey
		}
		record, newBalance, err := s.balance.ApplyMovement(ctx, ledgerservice.Movement{
			MembershipID:   membershipID,
			BusinessID:     businessID,
			Type:           domain.RedeemMovement,
			Points:         -reward.PointsRequired,
			Note:           "redemption of " + reward.Name,
			Source:         domain.SystemSource,
			IdempotencyKey: &key,
			RedemptionID:   &created.ID,
		})
		if err != nil {
			return err
		}
		if record.RedemptionID != nil && *record.RedemptionID != created.ID {
			// replayed issuance: roll back this redemption, keep the original
			return &duplicateIssue{originalID: *record.RedemptionID}
		}

		issued = created
		balance = newBalance
		return nil
	})
	if err != nil {
		var dup *duplicateIssue
		if errors.As(err, &dup) {
			zap.L().Info("issuance replayed", zap.Int("redemption_id", dup.originalID))
			original, err := s.redemptionRepo.GetByID(ctx, dup.originalID, businessID)
			if err != nil {
				return nil, err
			}
			if original == nil {
				return nil, ErrRedemptionNotFound
			}
			return original, nil
		}
		return nil, err
	}

	s.notify(membershipID, businessID, balance)
	return issued, nil
}

// ConsumeResult distinguishes a served redemption from a code that turned out
// to be expired: the latter is voided and refunded, not an error.
type ConsumeResult struct {
	Redemption    *domain.Redemption
	Consumed      bool
	AutoCancelled bool
}

// Consume marks an issued, unexpired redemption as redeemed. An expired code
// is auto-cancelled with reason expired_7d and its cost refunded.
func (s *Service) Consume(ctx context.Context, businessID int, code string, operatorID, branchID int) (*ConsumeResult, error) {
	var (
		result   *ConsumeResult
		balance  int
		refunded bool
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		redemption, err := s.lockIssued(ctx, businessID, code)
		if err != nil {
			return err
		}

		now := s.now()
		if now.After(redemption.ExpiresAt) {
			newBalance, err := s.cancelLocked(ctx, redemption, nil, nil, domain.ExpiredReasonCode, nil, domain.CancelAuto)
			if err != nil {
				return err
			}
			balance = newBalance
			refunded = true
			result = &ConsumeResult{Redemption: redemption, AutoCancelled: true}
			return nil
		}

		if err := s.redemptionRepo.MarkRedeemed(ctx, redemption.ID, operatorID, branchID, now); err != nil {
			return err
		}
		redemption.Status = domain.RedemptionRedeemed
		redemption.RedeemedAt = &now
		redemption.RedeemedBy = &operatorID
		redemption.RedeemedBranchID = &branchID
		result = &ConsumeResult{Redemption: redemption, Consumed: true}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if refunded {
		s.notify(result.Redemption.MembershipID, businessID, balance)
	}
	return result, nil
}

// Cancel voids an issued redemption on an operator's request and refunds its
// cost.
func (s *Service) Cancel(ctx context.Context, businessID int, code string, operatorID, branchID int, reasonCode, reasonText string) (*domain.Redemption, error) {
	if _, ok := manualReasonCodes[reasonCode]; !ok {
		return nil, ErrInvalidReason
	}
	reasonText = strings.TrimSpace(reasonText)
	if reasonCode == ReasonOther && utf8.RuneCountInString(reasonText) < minReasonTextLen {
		return nil, ErrReasonTextRequired
	}

	var (
		cancelled *domain.Redemption
		balance   int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		redemption, err := s.lockIssued(ctx, businessID, code)
		if err != nil {
			return err
		}

		var text *string
		if reasonCode == ReasonOther {
			text = &reasonText
		}
		newBalance, err := s.cancelLocked(ctx, redemption, &operatorID, &branchID, reasonCode, text, domain.CancelManual)
		if err != nil {
			return err
		}
		cancelled = redemption
		balance = newBalance
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notify(cancelled.MembershipID, businessID, balance)
	return cancelled, nil
}

// Get returns a redemption by code without changing its state.
func (s *Service) Get(ctx context.Context, businessID int, code string) (*domain.Redemption, error) {
	redemption, err := s.redemptionRepo.GetByCode(ctx, businessID, code)
	if err != nil {
		return nil, err
	}
	if redemption == nil {
		return nil, ErrRedemptionNotFound
	}
	return redemption, nil
}

// lockIssued locks the redemption row and rejects terminal states.
func (s *Service) lockIssued(ctx context.Context, businessID int, code string) (*domain.Redemption, error) {
	redemption, err := s.redemptionRepo.GetForUpdateByCode(ctx, businessID, code)
	if err != nil {
		return nil, err
	}
	if redemption == nil {
		return nil, ErrRedemptionNotFound
	}
	switch redemption.Status {
	case domain.RedemptionRedeemed:
		return nil, ErrAlreadyRedeemed
	case domain.RedemptionCancelled:
		return nil, ErrAlreadyCancelled
	}
	return redemption, nil
}

// cancelLocked is the shared cancellation routine for manual and automatic
// paths. The refund carries the refund-{id} idempotency key, so repeated
// cancellation attempts on one redemption can only ever refund once.
func (s *Service) cancelLocked(ctx context.Context, redemption *domain.Redemption, operatorID, branchID *int, reasonCode string, reasonText *string, source domain.CancelSource) (int, error) {
	now := s.now()
	redemption.Status = domain.RedemptionCancelled
	redemption.CancelledAt = &now
	redemption.CancelledBy = operatorID
	redemption.CancelSource = &source
	redemption.CancelReasonCode = &reasonCode
	redemption.CancelReasonText = reasonText
	if err := s.redemptionRepo.MarkCancelled(ctx, redemption); err != nil {
		return 0, err
	}

	movementSource := domain.SystemSource
	if source == domain.CancelManual {
		movementSource = domain.ManualSource
	}
	key := fmt.Sprintf("refund-%d", redemption.ID)
	_, balance, err := s.balance.ApplyMovement(ctx, ledgerservice.Movement{
		MembershipID:   redemption.MembershipID,
		BusinessID:     redemption.BusinessID,
		Type:           domain.RefundMovement,
		Points:         redemption.PointsCost,
		Note:           "refund for redemption " + redemption.RedeemCode,
		Source:         movementSource,
		BranchID:       branchID,
		OperatorID:     operatorID,
		IdempotencyKey: &key,
		RedemptionID:   &redemption.ID,
	})
	if err != nil {
		return 0, err
	}
	return balance, nil
}

func (s *Service) notify(membershipID, businessID, balance int) {
	if s.notifier != nil {
		s.notifier.NotifyBalance(membershipID, businessID, balance)
	}
}
