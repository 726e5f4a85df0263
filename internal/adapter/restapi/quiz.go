package restapi

import (
	"context"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

type generateQuizResponse struct {
	Questions []model.QuizQuestion `json:"questions"`
}

type quizCategoriesResponse struct {
	Categories []string `json:"categories"`
}

type quizDifficultyResponse struct {
	DifficultyLevels []string `json:"difficultyLevels"`
}

// GenerateQuiz asks the backend to produce a fresh question set.
func (c *Client) GenerateQuiz(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error) {
	body := map[string]any{
		"category":       params.Category,
		"difficulty":     params.Difficulty,
		"questionCount":  params.QuestionCount,
		"partnerContext": params.PartnerContext,
		"userId":         params.UserID,
	}
	var data generateQuizResponse
	if err := c.do(ctx, http.MethodPost, "/api/quiz/generate", body, &data); err != nil {
		return nil, err
	}
	return data.Questions, nil
}

// SubmitQuiz sends a finished quiz for server-side scoring.
func (c *Client) SubmitQuiz(ctx context.Context, params provider.SubmitQuizParams) (*model.QuizResult, error) {
	body := map[string]any{
		"userId":     params.UserID,
		"questions":  params.Questions,
		"answers":    params.Answers,
		"timeTaken":  params.TimeTaken,
		"category":   params.Category,
		"difficulty": params.Difficulty,
	}
	var result model.QuizResult
	if err := c.do(ctx, http.MethodPost, "/api/quiz/submit", body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) QuizCategories(ctx context.Context) ([]string, error) {
	var data quizCategoriesResponse
	if err := c.do(ctx, http.MethodGet, "/api/quiz/categories", nil, &data); err != nil {
		return nil, err
	}
	return data.Categories, nil
}

func (c *Client) QuizDifficultyLevels(ctx context.Context) ([]string, error) {
	var data quizDifficultyResponse
	if err := c.do(ctx, http.MethodGet, "/api/quiz/difficulty-levels", nil, &data); err != nil {
		return nil, err
	}
	return data.DifficultyLevels, nil
}

func (c *Client) QuizByID(ctx context.Context, quizID string) (*model.Quiz, error) {
	var quiz model.Quiz
	if err := c.do(ctx, http.MethodGet, "/api/quizzes/"+quizID, nil, &quiz); err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (c *Client) QuizQuestions(ctx context.Context, quizID string) ([]model.QuizQuestion, error) {
	var questions []model.QuizQuestion
	if err := c.do(ctx, http.MethodGet, "/api/quizzes/"+quizID+"/questions", nil, &questions); err != nil {
		return nil, err
	}
	return questions, nil
}
