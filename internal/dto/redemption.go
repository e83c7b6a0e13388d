package dto

import "time"

type IssueRedemptionRequestDTO struct {
	MembershipID   int    `json:"membership_id" example:"1"`
	RewardID       int    `json:"reward_id" example:"7"`
	IdempotencyKey string `json:"idempotency_key,omitempty" example:"app-91b2-0017"`
}

type RedemptionResponseDTO struct {
	Code       string     `json:"code" example:"HK3M-Q7ZD"`
	Status     string     `json:"status" example:"issued"`
	RewardName string     `json:"reward_name" example:"Free Americano"`
	PointsCost int        `json:"points_cost" example:"60"`
	IssuedAt   time.Time  `json:"issued_at" example:"2024-12-09T16:09:57+03:00"`
	ExpiresAt  time.Time  `json:"expires_at" example:"2024-12-16T16:09:57+03:00"`
	RedeemedAt *time.Time `json:"redeemed_at,omitempty"`
}

type ConsumeRedemptionRequestDTO struct {
	BranchID int `json:"branch_id" example:"3"`
}

type ConsumeRedemptionResponseDTO struct {
	Consumed      bool                  `json:"consumed" example:"true"`
	AutoCancelled bool                  `json:"auto_cancelled" example:"false"`
	Reason        string                `json:"reason,omitempty" example:"expired_7d"`
	Redemption    RedemptionResponseDTO `json:"redemption"`
}

type CancelRedemptionRequestDTO struct {
	BranchID   int    `json:"branch_id" example:"3"`
	ReasonCode string `json:"reason_code" example:"customer_request"`
	ReasonText string `json:"reason_text,omitempty" example:"customer changed their mind"`
}
