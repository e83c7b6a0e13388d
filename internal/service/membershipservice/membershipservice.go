package membershipservice

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/pointsward/loyalcore/internal/domain"
	"github.com/pointsward/loyalcore/pkg/validate"
)

type MembershipRepo interface {
	Create(ctx context.Context, membership *domain.Membership) (*domain.Membership, error)
	GetByID(ctx context.Context, membershipID, businessID int) (*domain.Membership, error)
}

type LedgerRepo interface {
	FindByMembershipID(ctx context.Context, membershipID, limit, offset int) ([]domain.LedgerRecord, error)
}

var (
	ErrAlreadyEnrolled    = errors.New("customer already enrolled")
	ErrInvalidCardNumber  = errors.New("invalid card number")
	ErrMembershipNotFound = errors.New("membership not found")
)

const defaultHistoryLimit = 50

type Service struct {
	membershipRepo MembershipRepo
	ledgerRepo     LedgerRepo
}

func New(membershipRepo MembershipRepo, ledgerRepo LedgerRepo) *Service {
	return &Service{
		membershipRepo: membershipRepo,
		ledgerRepo:     ledgerRepo,
	}
}

// Enroll creates an active zero-balance membership. The card number is
// optional; when present it must carry a valid Luhn check digit.
func (s *Service) Enroll(ctx context.Context, businessID, customerID int, cardNumber string) (*domain.Membership, error) {
	if cardNumber != "" && !validate.IsLuhn(cardNumber) {
		return nil, ErrInvalidCardNumber
	}

	membership, err := s.membershipRepo.Create(ctx, &domain.Membership{
		BusinessID: businessID,
		CustomerID: customerID,
		CardNumber: cardNumber,
		Status:     domain.MembershipActive,
	})
	if err != nil {
		zap.L().Error("can't enroll customer", zap.Error(err))
		return nil, err
	}
	if membership == nil {
		return nil, ErrAlreadyEnrolled
	}
	return membership, nil
}

func (s *Service) GetMembership(ctx context.Context, membershipID, businessID int) (*domain.Membership, error) {
	membership, err := s.membershipRepo.GetByID(ctx, membershipID, businessID)
	if err != nil {
		return nil, err
	}
	if membership == nil {
		return nil, ErrMembershipNotFound
	}
	return membership, nil
}

// GetLedger returns the newest-first movement history of a membership.
func (s *Service) GetLedger(ctx context.Context, membershipID, businessID, limit, offset int) ([]domain.LedgerRecord, error) {
	if _, err := s.GetMembership(ctx, membershipID, businessID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	records, err := s.ledgerRepo.FindByMembershipID(ctx, membershipID, limit, offset)
	if err != nil {
		zap.L().Error("can't fetch ledger history", zap.Error(err))
		return nil, err
	}
	return records, nil
}
