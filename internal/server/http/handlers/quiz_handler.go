package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// QuizHandler serves quiz play: generation, submission, catalog lookups.
type QuizHandler struct {
	facade QuizFacade
}

// NewQuizHandler creates QuizHandler instance.
func NewQuizHandler(facade QuizFacade) *QuizHandler {
	return &QuizHandler{facade: facade}
}

// Generate handles POST /api/quiz/generate.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req dto.GenerateQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	questions, err := h.facade.GenerateQuiz(c.Request.Context(), provider.GenerateQuizParams{
		Category:       req.Category,
		Difficulty:     req.Difficulty,
		QuestionCount:  req.QuestionCount,
		PartnerContext: req.PartnerContext,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, dto.GenerateQuizResponse{Questions: questions})
}

// Submit handles POST /api/quiz/submit.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req dto.SubmitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	result, err := h.facade.SubmitQuiz(c.Request.Context(), provider.SubmitQuizParams{
		Questions:  req.Questions,
		Answers:    req.Answers,
		TimeTaken:  req.TimeTaken,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, result)
}

// Categories handles GET /api/quiz/categories.
func (h *QuizHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, dto.QuizCategoriesResponse{Categories: h.facade.QuizCategories(c.Request.Context())})
}

// DifficultyLevels handles GET /api/quiz/difficulty-levels.
func (h *QuizHandler) DifficultyLevels(c *gin.Context) {
	c.JSON(http.StatusOK, dto.QuizDifficultyResponse{DifficultyLevels: h.facade.QuizDifficultyLevels(c.Request.Context())})
}

// ByID handles GET /api/quizzes/:quizId.
func (h *QuizHandler) ByID(c *gin.Context) {
	quiz, err := h.facade.QuizByID(c.Request.Context(), c.Param("quizId"))
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, quiz)
}

// Questions handles GET /api/quizzes/:quizId/questions.
func (h *QuizHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.QuizQuestions(c.Request.Context(), c.Param("quizId")))
}
