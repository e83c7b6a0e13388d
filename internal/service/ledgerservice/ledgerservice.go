package ledgerservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/internal/pg"
)

type MembershipRepo interface {
	GetForUpdate(ctx context.Context, membershipID, businessID int) (*domain.Membership, error)
	UpdateBalance(ctx context.Context, membershipID, balance int) error
}

type LedgerRepo interface {
	FindByIdempotencyKey(ctx context.Context, membershipID int, key string) (*domain.LedgerRecord, error)
	InsertOrFetch(ctx context.Context, record *domain.LedgerRecord) (*domain.LedgerRecord, bool, error)
}

// WalletNotifier pushes the new balance to the customer's wallet card.
// Best-effort: implementations must never block on or surface delivery errors.
type WalletNotifier interface {
	NotifyBalance(membershipID, businessID, balance int)
}

var (
	ErrInvalidMovement    = errors.New("invalid movement")
	ErrOperatorRequired   = errors.New("operator is required")
	ErrBranchRequired     = errors.New("branch is required")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrMembershipNotFound = errors.New("membership not found")
	ErrMembershipBlocked  = errors.New("membership is blocked")
)

// Movement describes one requested balance change.
type Movement struct {
	MembershipID   int
	BusinessID     int
	Type           domain.MovementType
	Points         int
	Note           string
	Source         domain.MovementSource
	BranchID       *int
	OperatorID     *int
	IdempotencyKey *string
	RedemptionID   *int
}

func (m Movement) validate() error {
	if m.Points == 0 || !m.Type.Valid() || !m.Source.Valid() {
		return ErrInvalidMovement
	}
	if (m.Type == domain.EarnMovement || m.Type == domain.RedeemMovement) && m.Source != domain.SystemSource {
		if m.OperatorID == nil {
			return ErrOperatorRequired
		}
		// per-branch statistics need the origin of every operator movement
		if m.BranchID == nil {
			return ErrBranchRequired
		}
	}
	return nil
}

// Service is the balance mutator: the only writer of ledger records and of
// the cached membership balance.
type Service struct {
	membershipRepo MembershipRepo
	ledgerRepo     LedgerRepo
	txManager      pg.TXManager
	notifier       WalletNotifier
}

func New(membershipRepo MembershipRepo, ledgerRepo LedgerRepo, txManager pg.TXManager, notifier WalletNotifier) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		ledgerRepo:     ledgerRepo,
		txManager:      txManager,
		notifier:       notifier,
	}
}

// ApplyMovement appends one ledger record and moves the cached balance, all
// under the membership row lock. A movement whose idempotency key was already
// spent is a no-op that returns the stored record and the current balance.
// The wallet push happens after commit and only when this call owns the
// transaction; when running inside a caller's transaction the caller notifies
// after its own commit.
func (s *Service) ApplyMovement(ctx context.Context, movement Movement) (*domain.LedgerRecord, int, error) {
	if err := movement.validate(); err != nil {
		return nil, 0, err
	}

	ownsTx := !pg.InTransaction(ctx)

	var (
		record  *domain.LedgerRecord
		balance int
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		membership, err := s.membershipRepo.GetForUpdate(ctx, movement.MembershipID, movement.BusinessID)
		if err != nil {
			return err
		}
		if membership == nil {
			return ErrMembershipNotFound
		}
		if membership.Status == domain.MembershipBlocked {
			return ErrMembershipBlocked
		}

		if movement.IdempotencyKey != nil {
			existing, err := s.ledgerRepo.FindByIdempotencyKey(ctx, movement.MembershipID, *movement.IdempotencyKey)
			if err != nil {
				return err
			}
			if existing != nil {
				record = existing
				balance = membership.PointsBalance
				return nil
			}
		}

		newBalance := membership.PointsBalance + movement.Points
		if newBalance < 0 {
			return ErrInsufficientPoints
		}

		stored, inserted, err := s.ledgerRepo.InsertOrFetch(ctx, &domain.LedgerRecord{
			MembershipID:   movement.MembershipID,
			Type:           movement.Type,
			Points:         movement.Points,
			Note:           movement.Note,
			Source:         movement.Source,
			BranchID:       movement.BranchID,
			OperatorID:     movement.OperatorID,
			IdempotencyKey: movement.IdempotencyKey,
			RedemptionID:   movement.RedemptionID,
		})
		if err != nil {
			zap.L().Error("can't append ledger record", zap.Error(err))
			return err
		}
		record = stored
		if !inserted {
			// lost an insert race on the key: the winner already moved the balance
			balance = membership.PointsBalance
			return nil
		}

		if err := s.membershipRepo.UpdateBalance(ctx, movement.MembershipID, newBalance); err != nil {
			return err
		}
		balance = newBalance
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	if ownsTx && s.notifier != nil {
		s.notifier.NotifyBalance(movement.MembershipID, movement.BusinessID, balance)
	}
	return record, balance, nil
}
