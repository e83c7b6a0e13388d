package dto

import "time"

type ApplyMovementRequestDTO struct {
	MembershipID   int    `json:"membership_id" example:"1"`
	Type           string `json:"type" example:"earn"`
	Points         int    `json:"points" example:"100"`
	Note           string `json:"note,omitempty" example:"coffee purchase"`
	Source         string `json:"source" example:"manual"`
	BranchID       *int   `json:"branch_id,omitempty" example:"3"`
	IdempotencyKey string `json:"idempotency_key,omitempty" example:"pos-7f3a-0042"`
}

type MovementResponseDTO struct {
	RecordID  int       `json:"record_id" example:"12"`
	Type      string    `json:"type" example:"earn"`
	Points    int       `json:"points" example:"100"`
	Balance   int       `json:"balance" example:"250"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
