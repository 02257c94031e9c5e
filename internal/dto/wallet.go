package dto

import "time"

type WalletResponseDTO struct {
	Balance            int64 `json:"balance" example:"15000"`
	TotalEarnings      int64 `json:"total_earnings" example:"42000"`
	TotalWithdrawals   int64 `json:"total_withdrawals" example:"27000"`
	PendingWithdrawals int64 `json:"pending_withdrawals" example:"5000"`
	FreezeAmount       int64 `json:"freeze_amount" example:"0"`
	Available          int64 `json:"available" example:"10000"`
}

type TransactionResponseDTO struct {
	ID          string    `json:"id"`
	Type        string    `json:"type" example:"PURCHASE"`
	Status      string    `json:"status" example:"completed"`
	Amount      int64     `json:"amount" example:"800"`
	ReferenceID string    `json:"reference_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type WithdrawalCreateRequestDTO struct {
	Amount     int64  `json:"amount" example:"5000"`
	CardNumber string `json:"card_number" example:"6037998000000000"`
}

type WithdrawalResponseDTO struct {
	RequestID   string     `json:"request_id"`
	Amount      int64      `json:"amount" example:"5000"`
	CardNumber  string     `json:"card_number"`
	Status      string     `json:"status" example:"pending"`
	AdminNotes  string     `json:"admin_notes,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	ProcessedAt *time.Time `json:"processed_at,omitempty"`
}

type ProcessWithdrawalRequestDTO struct {
	Action     string `json:"action" example:"APPROVE"`
	AdminNotes string `json:"admin_notes" example:"paid via card transfer"`
}
