package domain

import "time"

// MovementType classifies a single ledger movement.
type MovementType string

const (
	// EarnMovement adds points to a membership.
	EarnMovement MovementType = "earn"
	// RedeemMovement deducts points when a redemption is issued.
	RedeemMovement MovementType = "redeem"
	// RefundMovement returns points after a redemption is cancelled.
	RefundMovement MovementType = "refund"
	// AdjustMovement is a signed manual correction.
	AdjustMovement MovementType = "adjust"
)

func (t MovementType) Valid() bool {
	switch t {
	case EarnMovement, RedeemMovement, RefundMovement, AdjustMovement:
		return true
	}
	return false
}

// MovementSource records what initiated a ledger movement.
type MovementSource string

const (
	ManualSource MovementSource = "manual"
	QRSource     MovementSource = "qr"
	SystemSource MovementSource = "system"
)

func (s MovementSource) Valid() bool {
	switch s {
	case ManualSource, QRSource, SystemSource:
		return true
	}
	return false
}

type RedemptionStatus string

const (
	RedemptionIssued    RedemptionStatus = "issued"
	RedemptionRedeemed  RedemptionStatus = "redeemed"
	RedemptionCancelled RedemptionStatus = "cancelled"
)

type CancelSource string

const (
	CancelManual CancelSource = "manual"
	CancelAuto   CancelSource = "auto"
)

const (
	MembershipActive  = "active"
	MembershipBlocked = "blocked"
)

// ExpiredReasonCode marks redemptions voided by the validity window.
const ExpiredReasonCode = "expired_7d"

type Membership struct {
	ID            int       `db:"id"`
	BusinessID    int       `db:"business_id"`
	CustomerID    int       `db:"customer_id"`
	CardNumber    string    `db:"card_number"`
	PointsBalance int       `db:"points_balance"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
}

// LedgerRecord is one immutable, signed point movement. Rows are never
// updated or deleted; the membership balance is the running sum over them.
type LedgerRecord struct {
	ID             int            `db:"id"`
	MembershipID   int            `db:"membership_id"`
	Type           MovementType   `db:"type"`
	Points         int            `db:"points"`
	Note           string         `db:"note"`
	Source         MovementSource `db:"source"`
	BranchID       *int           `db:"branch_id"`
	OperatorID     *int           `db:"operator_id"`
	IdempotencyKey *string        `db:"idempotency_key"`
	RedemptionID   *int           `db:"redemption_id"`
	CreatedAt      time.Time      `db:"created_at"`
}

// Redemption is a code-bearing entitlement to claim a reward. Cost and name
// are frozen at issuance so later reward edits do not change what was sold.
type Redemption struct {
	ID               int              `db:"id"`
	BusinessID       int              `db:"business_id"`
	MembershipID     int              `db:"membership_id"`
	RewardID         int              `db:"reward_id"`
	RedeemCode       string           `db:"redeem_code"`
	Status           RedemptionStatus `db:"status"`
	PointsCost       int              `db:"points_cost"`
	RewardName       string           `db:"reward_name"`
	IssuedAt         time.Time        `db:"issued_at"`
	ExpiresAt        time.Time        `db:"expires_at"`
	RedeemedAt       *time.Time       `db:"redeemed_at"`
	RedeemedBy       *int             `db:"redeemed_by"`
	RedeemedBranchID *int             `db:"redeemed_branch_id"`
	CancelledAt      *time.Time       `db:"cancelled_at"`
	CancelledBy      *int             `db:"cancelled_by"`
	CancelSource     *CancelSource    `db:"cancel_source"`
	CancelReasonCode *string          `db:"cancel_reason_code"`
	CancelReasonText *string          `db:"cancel_reason_text"`
}

type Reward struct {
	ID             int    `db:"id"`
	BusinessID     int    `db:"business_id"`
	Name           string `db:"name"`
	PointsRequired int    `db:"points_required"`
	IsActive       bool   `db:"is_active"`
	IsArchived     bool   `db:"is_archived"`
}
