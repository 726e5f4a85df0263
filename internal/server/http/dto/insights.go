package dto

// SentimentRequest submits feedback text for analysis.
type SentimentRequest struct {
	Text string `json:"text" binding:"required"`
}

// InsightsRequest forwards opaque user data to the analytics service.
type InsightsRequest struct {
	UserData map[string]any `json:"userData"`
}

// FinetuneRequest kicks off a training run.
type FinetuneRequest struct {
	ModelType    string         `json:"modelType" binding:"required"`
	TrainingData map[string]any `json:"trainingData"`
}

// FinetuneResponse reports whether the run was accepted.
type FinetuneResponse struct {
	Success bool `json:"success"`
}
