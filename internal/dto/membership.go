package dto

import "time"

type EnrollRequestDTO struct {
	CustomerID int    `json:"customer_id" example:"42"`
	CardNumber string `json:"card_number,omitempty" example:"2377225624"`
}

type MembershipResponseDTO struct {
	ID         int       `json:"id" example:"1"`
	CustomerID int       `json:"customer_id" example:"42"`
	CardNumber string    `json:"card_number,omitempty" example:"2377225624"`
	Balance    int       `json:"balance" example:"250"`
	Status     string    `json:"status" example:"active"`
	CreatedAt  time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}

type LedgerRecordResponseDTO struct {
	ID        int       `json:"id" example:"12"`
	Type      string    `json:"type" example:"earn"`
	Points    int       `json:"points" example:"100"`
	Source    string    `json:"source" example:"manual"`
	Note      string    `json:"note,omitempty" example:"coffee purchase"`
	CreatedAt time.Time `json:"created_at" example:"2024-12-09T16:09:57+03:00"`
}
