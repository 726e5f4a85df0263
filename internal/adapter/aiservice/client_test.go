package aiservice

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}

func TestNewClientValidatesURL(t *testing.T) {
	if _, err := NewClient("://bad", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewClient("/relative", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
}

func TestAnalyzeSentimentMapsFields(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/analyze-sentiment" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["model"] != "bert-finetuned" {
			t.Errorf("unexpected model: %v", body["model"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"sentiment":      "positive",
			"score":          0.8,
			"confidence":     0.95,
			"positive_words": []string{"great"},
			"negative_words": []string{},
			"emotional_tone": "joyful",
		})
	}))

	result, err := client.AnalyzeSentiment(context.Background(), "great service")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Sentiment != "positive" || result.Confidence != 0.95 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.EmotionalTone != "joyful" {
		t.Fatalf("expected mapped emotional tone, got %s", result.EmotionalTone)
	}
	if result.Suggestions == nil {
		t.Fatal("expected empty slice, not nil, for missing suggestions")
	}
}

func TestAnalyzeSentimentDefaults(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"sentiment": "neutral",
			"score":     0.5,
		})
	}))

	result, err := client.AnalyzeSentiment(context.Background(), "ok")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Confidence != 0.85 {
		t.Fatalf("expected default confidence 0.85, got %v", result.Confidence)
	}
	if result.EmotionalTone != "neutral" {
		t.Fatalf("expected default tone neutral, got %s", result.EmotionalTone)
	}
}

func TestRecommendationsMapSnakeCase(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["user_id"] != "u1" || body["max_recommendations"] != float64(5) {
			t.Errorf("unexpected body: %v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"recommendations": []map[string]any{{
				"id": "rec1", "type": "EARNING_TIP", "title": "T", "description": "D",
				"confidence": 0.9, "priority": "HIGH",
				"action_required": true, "estimated_value": 100.0, "category": "Dining",
			}},
		})
	}))

	recommendations, err := client.Recommendations(context.Background(), "u1", map[string]any{"visits": 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recommendations) != 1 {
		t.Fatalf("expected 1 recommendation, got %d", len(recommendations))
	}
	rec := recommendations[0]
	if !rec.ActionRequired || rec.EstimatedValue != 100 {
		t.Fatalf("snake_case fields not mapped: %+v", rec)
	}
}

func TestRecommendationsMissingKey(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{})
	}))

	if _, err := client.Recommendations(context.Background(), "u1", nil); err == nil {
		t.Fatal("expected error when recommendations key is absent")
	}
}

func TestPredictiveInsights(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		if body["prediction_horizon"] != "30_days" {
			t.Errorf("unexpected horizon: %v", body["prediction_horizon"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"insights": []map[string]any{{
				"id": "pi1", "type": "CHURN_RISK", "title": "T", "description": "D",
				"probability": 0.75, "timeframe": "Next 30 days", "actionable": true,
				"recommended_actions": []string{"Complete a quiz"}, "impact": "HIGH",
			}},
		})
	}))

	insights, err := client.PredictiveInsights(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(insights) != 1 || insights[0].RecommendedActions[0] != "Complete a quiz" {
		t.Fatalf("unexpected insights: %+v", insights)
	}
}

func TestBehaviorPatterns(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"patterns": []map[string]any{{
				"category": "Dining", "frequency": 2.0, "average_value": 75.0,
				"trend": "STABLE", "seasonality": true, "peak_times": []string{"Weekends"},
			}},
		})
	}))

	patterns, err := client.BehaviorPatterns(context.Background(), "u1", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(patterns) != 1 || patterns[0].AverageValue != 75 {
		t.Fatalf("unexpected patterns: %+v", patterns)
	}
	if patterns[0].Recommendations == nil {
		t.Fatal("expected empty slice for missing recommendations")
	}
}

func TestFinetuneModel(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		hyper, _ := body["hyperparameters"].(map[string]any)
		if hyper["batch_size"] != float64(16) || hyper["epochs"] != float64(3) {
			t.Errorf("unexpected hyperparameters: %v", hyper)
		}
		w.WriteHeader(http.StatusOK)
	}))

	if !client.FinetuneModel(context.Background(), "sentiment", map[string]any{"samples": 10}) {
		t.Fatal("expected training to report success")
	}
}

func TestFinetuneModelFailureIsFalseNotError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if client.FinetuneModel(context.Background(), "sentiment", nil) {
		t.Fatal("expected training failure to report false")
	}
}

func TestHealth(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	if err := client.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
