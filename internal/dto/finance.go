package dto

type RevenueSettingsDTO struct {
	DesignerSharePercent int `json:"designer_share_percent" example:"70"`
	PlatformFeePercent   int `json:"platform_fee_percent" example:"30"`
}

type ExamSettingsResponseDTO struct {
	ExamID               int  `json:"exam_id" example:"10"`
	DesignerSharePercent int  `json:"designer_share_percent" example:"80"`
	PlatformFeePercent   int  `json:"platform_fee_percent" example:"20"`
	Overridden           bool `json:"overridden" example:"true"`
}

type CalculateSharingRequestDTO struct {
	Amount int64 `json:"amount" example:"1000"`
	ExamID *int  `json:"exam_id,omitempty" example:"10"`
}

type RevenueShareResponseDTO struct {
	Amount        int64 `json:"amount" example:"1000"`
	DesignerShare int64 `json:"designer_share" example:"700"`
	PlatformFee   int64 `json:"platform_fee" example:"300"`
}
