package repo

import (
	"github.com/pointsward/loyalcore/internal/pg"
	ledgerrepo "github.com/pointsward/loyalcore/internal/repo/ledger-repo"
	membershiprepo "github.com/pointsward/loyalcore/internal/repo/membership-repo"
	redemptionrepo "github.com/pointsward/loyalcore/internal/repo/redemption-repo"
	rewardrepo "github.com/pointsward/loyalcore/internal/repo/reward-repo"
)

// Repositories hold the data access layer. Transactions are owned by the
// services: a repo call joins whatever transaction the context carries.
type Repositories struct {
	Memberships *membershiprepo.Repository
	Ledger      *ledgerrepo.Repository
	Rewards     *rewardrepo.Repository
	Redemptions *redemptionrepo.Repository
}

func New(conn pg.Database) *Repositories {
	return &Repositories{
		Memberships: membershiprepo.New(conn),
		Ledger:      ledgerrepo.New(conn),
		Rewards:     rewardrepo.New(conn),
		Redemptions: redemptionrepo.New(conn),
	}
}
