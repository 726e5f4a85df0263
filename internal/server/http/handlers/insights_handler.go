package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// InsightsHandler exposes the analytics surface.
type InsightsHandler struct {
	facade InsightsFacade
}

// NewInsightsHandler creates InsightsHandler instance.
func NewInsightsHandler(facade InsightsFacade) *InsightsHandler {
	return &InsightsHandler{facade: facade}
}

// Sentiment handles POST /api/insights/sentiment.
func (h *InsightsHandler) Sentiment(c *gin.Context) {
	var req dto.SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	analysis, err := h.facade.AnalyzeSentiment(c.Request.Context(), req.Text)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, analysis)
}

// Recommendations handles POST /api/insights/recommendations.
func (h *InsightsHandler) Recommendations(c *gin.Context) {
	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	recs, err := h.facade.Recommendations(c.Request.Context(), req.UserData)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, recs)
}

// Predictive handles POST /api/insights/predictive.
func (h *InsightsHandler) Predictive(c *gin.Context) {
	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	insights, err := h.facade.PredictiveInsights(c.Request.Context(), req.UserData)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, insights)
}

// Behavior handles POST /api/insights/behavior.
func (h *InsightsHandler) Behavior(c *gin.Context) {
	var req dto.InsightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	patterns, err := h.facade.BehaviorPatterns(c.Request.Context(), req.UserData)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// Finetune handles POST /api/insights/finetune.
func (h *InsightsHandler) Finetune(c *gin.Context) {
	var req dto.FinetuneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	ok := h.facade.FinetuneModel(c.Request.Context(), req.ModelType, req.TrainingData)
	c.JSON(http.StatusOK, dto.FinetuneResponse{Success: ok})
}
