package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	Role         string    `db:"role"`
	UserType     string    `db:"user_type"`
	CreatedAt    time.Time `db:"created_at"`
}

type Exam struct {
	ID            int       `db:"id"`
	Title         string    `db:"title"`
	DesignerID    int       `db:"designer_id"`
	QuestionCount int       `db:"question_count"`
	CreatedAt     time.Time `db:"created_at"`
}

type Flashcard struct {
	ID         int    `db:"id"`
	Title      string `db:"title"`
	DesignerID int    `db:"designer_id"`
	// Price is nil when the designer never set one; pricing falls back
	// to the configured default.
	Price *int64 `db:"price"`
}

type Transaction struct {
	ID           uuid.UUID  `db:"id"`
	UserID       int        `db:"user_id"`
	Type         string     `db:"type"`
	Status       string     `db:"status"`
	Amount       int64      `db:"amount"`
	ReferenceID  string     `db:"reference_id"`
	GatewayToken string     `db:"gateway_token"`
	ExamID       *int       `db:"exam_id"`
	DesignerID   *int       `db:"designer_id"`
	ExpiresAt    *time.Time `db:"expires_at"`
	CreatedAt    time.Time  `db:"created_at"`
}

type Wallet struct {
	ID                 int   `db:"id"`
	UserID             int   `db:"user_id"`
	Balance            int64 `db:"balance"`
	TotalEarnings      int64 `db:"total_earnings"`
	TotalWithdrawals   int64 `db:"total_withdrawals"`
	PendingWithdrawals int64 `db:"pending_withdrawals"`
	FreezeAmount       int64 `db:"freeze_amount"`
	Version            int   `db:"version"`
}

// Available is the spendable part of the balance: frozen funds and
// withdrawals awaiting admin review are excluded.
func (w *Wallet) Available() int64 {
	return w.Balance - w.FreezeAmount - w.PendingWithdrawals
}

type WithdrawalRequest struct {
	ID            uuid.UUID  `db:"id"`
	UserID        int        `db:"user_id"`
	TransactionID uuid.UUID  `db:"transaction_id"`
	Amount        int64      `db:"amount"`
	CardNumber    string     `db:"card_number"`
	Status        string     `db:"status"`
	AdminNotes    string     `db:"admin_notes"`
	CreatedAt     time.Time  `db:"created_at"`
	ProcessedAt   *time.Time `db:"processed_at"`
}

// RevenueSettings describes how a completed purchase amount is split
// between the exam designer and the platform. The two percents always
// sum to 100.
type RevenueSettings struct {
	DesignerSharePercent int `db:"designer_share_percent"`
	PlatformFeePercent   int `db:"platform_fee_percent"`
}

type Purchase struct {
	ID            int       `db:"id"`
	UserID        int       `db:"user_id"`
	ExamID        int       `db:"exam_id"`
	TransactionID uuid.UUID `db:"transaction_id"`
	CreatedAt     time.Time `db:"created_at"`
}
