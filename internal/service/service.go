package service

import (
	"github.com/pointsward/loyalcore/internal/handlers/memberships"
	"github.com/pointsward/loyalcore/internal/handlers/points"
	"github.com/pointsward/loyalcore/internal/handlers/redemptions"

	"github.com/pointsward/loyalcore/internal/pg"
	"github.com/pointsward/loyalcore/internal/repo"
	"github.com/pointsward/loyalcore/internal/service/ledgerservice"
	"github.com/pointsward/loyalcore/internal/service/membershipservice"
	"github.com/pointsward/loyalcore/internal/service/redemptionservice"
)

type Services struct {
	MembershipService memberships.Service
	LedgerService     points.Service
	RedemptionService redemptions.Service
}

func New(repo *repo.Repositories, txManager pg.TXManager, notifier ledgerservice.WalletNotifier) *Services {
	ledgerService := ledgerservice.New(repo.Memberships, repo.Ledger, txManager, notifier)
	redemptionService := redemptionservice.New(repo.Redemptions, repo.Rewards, repo.Memberships, ledgerService, txManager, notifier)
	membershipService := membershipservice.New(repo.Memberships, repo.Ledger)

	return &Services{
		MembershipService: membershipService,
		LedgerService:     ledgerService,
		RedemptionService: redemptionService,
	}
}
