package dto

type CalculatePriceRequestDTO struct {
	QuestionCount   int    `json:"question_count" example:"25"`
	UserType        string `json:"user_type" example:"student"`
	IsFirstPurchase bool   `json:"is_first_purchase" example:"false"`
	BulkCount       int    `json:"bulk_count" example:"1"`
}

type CalculateFlashcardPriceRequestDTO struct {
	FlashcardIDs    []int  `json:"flashcard_ids" example:"1,2,3"`
	UserType        string `json:"user_type" example:"regular"`
	IsFirstPurchase bool   `json:"is_first_purchase" example:"false"`
}

type DiscountDTO struct {
	Type   string  `json:"type" example:"STUDENT"`
	Rate   float64 `json:"rate" example:"0.2"`
	Amount int64   `json:"amount" example:"200"`
}

type PricingResultDTO struct {
	BasePrice     int64         `json:"base_price" example:"1000"`
	Discounts     []DiscountDTO `json:"discounts"`
	TotalDiscount int64         `json:"total_discount" example:"200"`
	FinalPrice    int64         `json:"final_price" example:"800"`
	PriceCategory string        `json:"price_category" example:"B"`
}

type ExamPriceResponseDTO struct {
	ExamID  int              `json:"exam_id" example:"10"`
	Title   string           `json:"title" example:"Algebra midterm"`
	Pricing PricingResultDTO `json:"pricing"`
}
