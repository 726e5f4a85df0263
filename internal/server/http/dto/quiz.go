package dto

import "github.com/tnyamakura/loyaltylink/internal/domain/model"

// GenerateQuizRequest drives on-demand question generation.
type GenerateQuizRequest struct {
	Category       string `json:"category" binding:"required"`
	Difficulty     string `json:"difficulty" binding:"required"`
	QuestionCount  int    `json:"questionCount" binding:"required,gt=0"`
	PartnerContext string `json:"partnerContext"`
}

// GenerateQuizResponse wraps the generated question set.
type GenerateQuizResponse struct {
	Questions []model.QuizQuestion `json:"questions"`
}

// SubmitQuizRequest carries a finished quiz for scoring.
type SubmitQuizRequest struct {
	Questions  []model.QuizQuestion `json:"questions" binding:"required"`
	Answers    []int                `json:"answers" binding:"required"`
	TimeTaken  int                  `json:"timeTaken"`
	Category   string               `json:"category"`
	Difficulty string               `json:"difficulty"`
}

// QuizCategoriesResponse lists the playable categories.
type QuizCategoriesResponse struct {
	Categories []string `json:"categories"`
}

// QuizDifficultyResponse lists the playable difficulty levels.
type QuizDifficultyResponse struct {
	DifficultyLevels []string `json:"difficultyLevels"`
}
