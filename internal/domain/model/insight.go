package model

// SentimentAnalysis is the analytics service's verdict on a piece of text.
type SentimentAnalysis struct {
	Sentiment     string   `json:"sentiment"`
	Score         float64  `json:"score"`
	Confidence    float64  `json:"confidence"`
	PositiveWords []string `json:"positiveWords"`
	NegativeWords []string `json:"negativeWords"`
	Suggestions   []string `json:"suggestions"`
	EmotionalTone string   `json:"emotionalTone"`
}

// Recommendation is a personalized earning or redemption suggestion.
type Recommendation struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Confidence     float64 `json:"confidence"`
	Priority       string  `json:"priority"`
	ActionRequired bool    `json:"actionRequired"`
	EstimatedValue float64 `json:"estimatedValue"`
	Category       string  `json:"category"`
}

// PredictiveInsight is a forward-looking behavioral prediction.
type PredictiveInsight struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Probability        float64  `json:"probability"`
	Timeframe          string   `json:"timeframe"`
	Actionable         bool     `json:"actionable"`
	RecommendedActions []string `json:"recommendedActions"`
	Impact             string   `json:"impact"`
}

// BehaviorPattern summarizes spending behavior in one category.
type BehaviorPattern struct {
	Category        string   `json:"category"`
	Frequency       float64  `json:"frequency"`
	AverageValue    float64  `json:"averageValue"`
	Trend           string   `json:"trend"`
	Seasonality     bool     `json:"seasonality"`
	PeakTimes       []string `json:"peakTimes"`
	Recommendations []string `json:"recommendations"`
}
