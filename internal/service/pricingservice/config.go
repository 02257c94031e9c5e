package pricingservice

// Tier maps a question-count bracket to a fixed base price.
type Tier struct {
	Category     string
	MinQuestions int
	MaxQuestions int
	BasePrice    int64
}

// Config holds every tunable of the pricing engine. It is injected at
// construction time so tests can substitute alternate tiers and rates
// without touching shared state.
type Config struct {
	Tiers []Tier

	FirstPurchaseRate float64
	StudentRate       float64
	BulkRate          float64
	FlashcardBulkRate float64

	BulkThreshold          int
	FlashcardBulkThreshold int

	MinPrice int64
	MaxPrice int64

	FlashcardDefaultPrice int64
	FlashcardMinPrice     int64
	FlashcardMaxPrice     int64
}

func DefaultConfig() Config {
	return Config{
		Tiers: []Tier{
			{Category: "A", MinQuestions: 10, MaxQuestions: 20, BasePrice: 800},
			{Category: "B", MinQuestions: 21, MaxQuestions: 30, BasePrice: 1000},
			{Category: "C", MinQuestions: 31, MaxQuestions: 50, BasePrice: 1200},
		},
		FirstPurchaseRate:      0.10,
		StudentRate:            0.20,
		BulkRate:               0.15,
		FlashcardBulkRate:      0.15,
		BulkThreshold:          5,
		FlashcardBulkThreshold: 10,
		MinPrice:               500,
		MaxPrice:               5000,
		FlashcardDefaultPrice:  100,
		FlashcardMinPrice:      200,
		FlashcardMaxPrice:      5000,
	}
}

// MinQuestionCount and MaxQuestionCount bound the valid exam sizes; counts
// outside the bounds are rejected at the handler before pricing runs.
func (c Config) MinQuestionCount() int {
	min := c.Tiers[0].MinQuestions
	for _, t := range c.Tiers[1:] {
		if t.MinQuestions < min {
			min = t.MinQuestions
		}
	}
	return min
}

func (c Config) MaxQuestionCount() int {
	max := c.Tiers[0].MaxQuestions
	for _, t := range c.Tiers[1:] {
		if t.MaxQuestions > max {
			max = t.MaxQuestions
		}
	}
	return max
}
