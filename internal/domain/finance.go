package domain

const (
	// UserTypeRegular обычный пользователь без скидок.
	UserTypeRegular string = "regular"
	// UserTypeStudent студент, получает студенческую скидку.
	UserTypeStudent string = "student"
	// UserTypePremium премиум-аккаунт.
	UserTypePremium string = "premium"
)

const (
	RoleUser  string = "user"
	RoleAdmin string = "admin"
)

const (
	// PurchaseTransaction покупка экзамена покупателем.
	PurchaseTransaction string = "PURCHASE"
	// EarningTransaction доля дизайнера от завершённой покупки.
	EarningTransaction string = "EARNING"
	// WithdrawalTransaction вывод средств из кошелька.
	WithdrawalTransaction string = "WITHDRAWAL"
	// RefundTransaction компенсирующая запись при возврате.
	RefundTransaction string = "REFUND"
)

const (
	// PendingStatus транзакция создана, оплата не подтверждена.
	PendingStatus string = "pending"
	// CompletedStatus оплата подтверждена шлюзом.
	CompletedStatus string = "completed"
	// FailedStatus верификация не прошла или платёж истёк.
	FailedStatus string = "failed"
	// RefundedStatus завершённая покупка возвращена.
	RefundedStatus string = "refunded"
)

const (
	WithdrawalPending  string = "pending"
	WithdrawalApproved string = "approved"
	WithdrawalRejected string = "rejected"
)

const (
	FirstPurchaseDiscount string = "FIRST_PURCHASE"
	StudentDiscount       string = "STUDENT"
	BulkDiscount          string = "BULK"
	FlashcardBulkDiscount string = "FLASHCARD_BULK"
)

// Discount is one applied discount line inside a PricingResult.
type Discount struct {
	Type   string  `json:"type"`
	Rate   float64 `json:"rate"`
	Amount int64   `json:"amount"`
}

// PricingResult is the full breakdown of a price calculation. It is
// computed on demand and never persisted.
type PricingResult struct {
	BasePrice     int64      `json:"base_price"`
	Discounts     []Discount `json:"discounts"`
	TotalDiscount int64      `json:"total_discount"`
	FinalPrice    int64      `json:"final_price"`
	PriceCategory string     `json:"price_category,omitempty"`
}

// RevenueShare is the split of a completed purchase amount. DesignerShare
// plus PlatformFee always equals the original amount exactly.
type RevenueShare struct {
	Amount        int64 `json:"amount"`
	DesignerShare int64 `json:"designer_share"`
	PlatformFee   int64 `json:"platform_fee"`
}
