package dto

import "time"

type CreatePaymentRequestDTO struct {
	ExamID    int    `json:"exam_id" example:"10"`
	ReturnURL string `json:"return_url" example:"https://soaledu.ir/payment/return"`
}

type CreatePaymentResponseDTO struct {
	TransactionID string     `json:"transaction_id" example:"9f4b7c52-1f07-4cf1-b3a0-7c1287cbd1e2"`
	PaymentURL    string     `json:"payment_url" example:"https://gateway.example/pay/tok-1"`
	Amount        int64      `json:"amount" example:"800"`
	ExpiresAt     *time.Time `json:"expires_at"`
}

type VerifyPaymentRequestDTO struct {
	TransactionID string `json:"transaction_id" example:"9f4b7c52-1f07-4cf1-b3a0-7c1287cbd1e2"`
	Reference     string `json:"reference" example:"A1B2C3"`
}

type VerifyPaymentResponseDTO struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status" example:"completed"`
	ReferenceID   string `json:"reference_id" example:"GW-100500"`
	Amount        int64  `json:"amount" example:"800"`
}

type RefundResponseDTO struct {
	RefundID      string `json:"refund_id"`
	TransactionID string `json:"transaction_id"`
	Amount        int64  `json:"amount" example:"800"`
}
