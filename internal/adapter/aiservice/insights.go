package aiservice

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// Wire shapes. The service speaks snake_case; the rest of the system does
// not, so every response is remapped field by field.

type sentimentResponse struct {
	Sentiment     string   `json:"sentiment"`
	Score         float64  `json:"score"`
	Confidence    *float64 `json:"confidence"`
	PositiveWords []string `json:"positive_words"`
	NegativeWords []string `json:"negative_words"`
	Suggestions   []string `json:"suggestions"`
	EmotionalTone string   `json:"emotional_tone"`
}

type recommendationWire struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	Confidence     float64 `json:"confidence"`
	Priority       string  `json:"priority"`
	ActionRequired bool    `json:"action_required"`
	EstimatedValue float64 `json:"estimated_value"`
	Category       string  `json:"category"`
}

type insightWire struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Probability        float64  `json:"probability"`
	Timeframe          string   `json:"timeframe"`
	Actionable         bool     `json:"actionable"`
	RecommendedActions []string `json:"recommended_actions"`
	Impact             string   `json:"impact"`
}

type patternWire struct {
	Category        string   `json:"category"`
	Frequency       float64  `json:"frequency"`
	AverageValue    float64  `json:"average_value"`
	Trend           string   `json:"trend"`
	Seasonality     bool     `json:"seasonality"`
	PeakTimes       []string `json:"peak_times"`
	Recommendations []string `json:"recommendations"`
}

// AnalyzeSentiment scores a piece of feedback text.
func (c *Client) AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	ctx, cancel := context.WithTimeout(ctx, sentimentTimeout)
	defer cancel()

	body := map[string]any{
		"text":             text,
		"model":            "bert-finetuned",
		"include_analysis": true,
	}
	var data sentimentResponse
	if err := c.post(ctx, http.MethodPost, "/analyze-sentiment", body, &data); err != nil {
		return nil, err
	}
	// The service omits confidence for low-signal inputs.
	confidence := 0.85
	if data.Confidence != nil {
		confidence = *data.Confidence
	}
	tone := data.EmotionalTone
	if tone == "" {
		tone = "neutral"
	}
	return &model.SentimentAnalysis{
		Sentiment:     data.Sentiment,
		Score:         data.Score,
		Confidence:    confidence,
		PositiveWords: orEmpty(data.PositiveWords),
		NegativeWords: orEmpty(data.NegativeWords),
		Suggestions:   orEmpty(data.Suggestions),
		EmotionalTone: tone,
	}, nil
}

// Recommendations produces personalized earning and redemption suggestions.
func (c *Client) Recommendations(ctx context.Context, userID string, userData map[string]any) ([]model.Recommendation, error) {
	ctx, cancel := context.WithTimeout(ctx, recommendTimeout)
	defer cancel()

	body := map[string]any{
		"user_id":             userID,
		"user_data":           userData,
		"model":               "bert-recommendation",
		"max_recommendations": 5,
	}
	var data struct {
		Recommendations []recommendationWire `json:"recommendations"`
	}
	if err := c.post(ctx, http.MethodPost, "/generate-recommendations", body, &data); err != nil {
		return nil, err
	}
	if data.Recommendations == nil {
		return nil, fmt.Errorf("no recommendations in response")
	}

	recommendations := make([]model.Recommendation, 0, len(data.Recommendations))
	for _, rec := range data.Recommendations {
		recommendations = append(recommendations, model.Recommendation{
			ID:             rec.ID,
			Type:           rec.Type,
			Title:          rec.Title,
			Description:    rec.Description,
			Confidence:     rec.Confidence,
			Priority:       rec.Priority,
			ActionRequired: rec.ActionRequired,
			EstimatedValue: rec.EstimatedValue,
			Category:       rec.Category,
		})
	}
	return recommendations, nil
}

// PredictiveInsights forecasts user behavior over the next month.
func (c *Client) PredictiveInsights(ctx context.Context, userID string, userData map[string]any) ([]model.PredictiveInsight, error) {
	ctx, cancel := context.WithTimeout(ctx, predictTimeout)
	defer cancel()

	body := map[string]any{
		"user_id":            userID,
		"user_data":          userData,
		"model":              "bert-predictive",
		"prediction_horizon": "30_days",
	}
	var data struct {
		Insights []insightWire `json:"insights"`
	}
	if err := c.post(ctx, http.MethodPost, "/predictive-insights", body, &data); err != nil {
		return nil, err
	}
	if data.Insights == nil {
		return nil, fmt.Errorf("no insights in response")
	}

	insights := make([]model.PredictiveInsight, 0, len(data.Insights))
	for _, insight := range data.Insights {
		insights = append(insights, model.PredictiveInsight{
			ID:                 insight.ID,
			Type:               insight.Type,
			Title:              insight.Title,
			Description:        insight.Description,
			Probability:        insight.Probability,
			Timeframe:          insight.Timeframe,
			Actionable:         insight.Actionable,
			RecommendedActions: orEmpty(insight.RecommendedActions),
			Impact:             insight.Impact,
		})
	}
	return insights, nil
}

// BehaviorPatterns summarizes spending behavior by category.
func (c *Client) BehaviorPatterns(ctx context.Context, userID string, userData map[string]any) ([]model.BehaviorPattern, error) {
	ctx, cancel := context.WithTimeout(ctx, behaviorTimeout)
	defer cancel()

	body := map[string]any{
		"user_id":        userID,
		"user_data":      userData,
		"model":          "bert-behavior",
		"analysis_depth": "comprehensive",
	}
	var data struct {
		Patterns []patternWire `json:"patterns"`
	}
	if err := c.post(ctx, http.MethodPost, "/analyze-behavior", body, &data); err != nil {
		return nil, err
	}
	if data.Patterns == nil {
		return nil, fmt.Errorf("no behavior patterns in response")
	}

	patterns := make([]model.BehaviorPattern, 0, len(data.Patterns))
	for _, pattern := range data.Patterns {
		patterns = append(patterns, model.BehaviorPattern{
			Category:        pattern.Category,
			Frequency:       pattern.Frequency,
			AverageValue:    pattern.AverageValue,
			Trend:           pattern.Trend,
			Seasonality:     pattern.Seasonality,
			PeakTimes:       orEmpty(pattern.PeakTimes),
			Recommendations: orEmpty(pattern.Recommendations),
		})
	}
	return patterns, nil
}

// FinetuneModel kicks off a training run. Failures are reported as a false
// result, never an error: training is advisory and the caller has nothing to
// retry.
func (c *Client) FinetuneModel(ctx context.Context, modelType string, trainingData map[string]any) bool {
	ctx, cancel := context.WithTimeout(ctx, finetuneTimeout)
	defer cancel()

	body := map[string]any{
		"model_type":    modelType,
		"training_data": trainingData,
		"hyperparameters": map[string]any{
			"learning_rate": 0.00001,
			"batch_size":    16,
			"epochs":        3,
			"max_length":    512,
		},
	}
	if err := c.post(ctx, http.MethodPost, "/finetune-model", body, nil); err != nil {
		c.logger.Error("model finetuning failed", slog.String("model_type", modelType), slog.String("error", err.Error()))
		return false
	}
	return true
}

func orEmpty(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
