package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// GenerateQuizParams drives on-demand question generation.
type GenerateQuizParams struct {
	Category       string
	Difficulty     string
	QuestionCount  int
	PartnerContext string
	UserID         string
}

// SubmitQuizParams carries a finished quiz back for scoring. Answers holds
// the picked option index per question, in question order.
type SubmitQuizParams struct {
	UserID     string
	Questions  []model.QuizQuestion
	Answers    []int
	TimeTaken  int
	Category   string
	Difficulty string
}

// Quiz covers quiz play: generation, submission, and catalog lookups.
type Quiz interface {
	Named
	GenerateQuiz(ctx context.Context, params GenerateQuizParams) ([]model.QuizQuestion, error)
	SubmitQuiz(ctx context.Context, params SubmitQuizParams) (*model.QuizResult, error)
	QuizCategories(ctx context.Context) ([]string, error)
	QuizDifficultyLevels(ctx context.Context) ([]string, error)
	QuizByID(ctx context.Context, quizID string) (*model.Quiz, error)
	QuizQuestions(ctx context.Context, quizID string) ([]model.QuizQuestion, error)
}
