package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// Insights covers the analytics microservice surface. UserData is forwarded
// opaquely; the service decides what it can use.
type Insights interface {
	Named
	AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error)
	Recommendations(ctx context.Context, userID string, userData map[string]any) ([]model.Recommendation, error)
	PredictiveInsights(ctx context.Context, userID string, userData map[string]any) ([]model.PredictiveInsight, error)
	BehaviorPatterns(ctx context.Context, userID string, userData map[string]any) ([]model.BehaviorPattern, error)
}
