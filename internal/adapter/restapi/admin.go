package restapi

import (
	"context"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

func (c *Client) AdminOverview(ctx context.Context) (*model.AdminOverview, error) {
	var overview model.AdminOverview
	if err := c.do(ctx, http.MethodGet, "/api/admin/overview", nil, &overview); err != nil {
		return nil, err
	}
	return &overview, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := c.do(ctx, http.MethodGet, "/api/admin/users", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) AdminPartners(ctx context.Context) ([]model.Partner, error) {
	var partners []model.Partner
	if err := c.do(ctx, http.MethodGet, "/api/admin/partners", nil, &partners); err != nil {
		return nil, err
	}
	return partners, nil
}

func (c *Client) AdminQuizzes(ctx context.Context) ([]model.Quiz, error) {
	var quizzes []model.Quiz
	if err := c.do(ctx, http.MethodGet, "/api/admin/quizzes", nil, &quizzes); err != nil {
		return nil, err
	}
	return quizzes, nil
}

func (c *Client) AdminPromotions(ctx context.Context) ([]model.Promotion, error) {
	var promotions []model.Promotion
	if err := c.do(ctx, http.MethodGet, "/api/admin/promotions", nil, &promotions); err != nil {
		return nil, err
	}
	return promotions, nil
}

func (c *Client) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	var created model.User
	if err := c.do(ctx, http.MethodPost, "/api/admin/users", user, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateUser(ctx context.Context, id string, user model.User) (*model.User, error) {
	var updated model.User
	if err := c.do(ctx, http.MethodPut, "/api/admin/users/"+id, user, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteUser(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/users/"+id, nil, nil)
}

func (c *Client) CreatePartner(ctx context.Context, partner model.Partner) (*model.Partner, error) {
	var created model.Partner
	if err := c.do(ctx, http.MethodPost, "/api/admin/partners", partner, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePartner(ctx context.Context, id string, partner model.Partner) (*model.Partner, error) {
	var updated model.Partner
	if err := c.do(ctx, http.MethodPut, "/api/admin/partners/"+id, partner, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePartner(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/partners/"+id, nil, nil)
}

func (c *Client) CreateQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	var created model.Quiz
	if err := c.do(ctx, http.MethodPost, "/api/admin/quizzes", quiz, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateQuiz(ctx context.Context, id string, quiz model.Quiz) (*model.Quiz, error) {
	var updated model.Quiz
	if err := c.do(ctx, http.MethodPut, "/api/admin/quizzes/"+id, quiz, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteQuiz(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/quizzes/"+id, nil, nil)
}

func (c *Client) CreatePromotion(ctx context.Context, promo model.Promotion) (*model.Promotion, error) {
	var created model.Promotion
	if err := c.do(ctx, http.MethodPost, "/api/admin/promotions", promo, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePromotion(ctx context.Context, id string, promo model.Promotion) (*model.Promotion, error) {
	var updated model.Promotion
	if err := c.do(ctx, http.MethodPut, "/api/admin/promotions/"+id, promo, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeletePromotion(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/admin/promotions/"+id, nil, nil)
}

// RegenerateQuizQuestions asks the backend to rebuild a quiz's question set.
func (c *Client) RegenerateQuizQuestions(ctx context.Context, quizID string) error {
	return c.do(ctx, http.MethodPost, "/api/admin/quizzes/"+quizID+"/regenerate", nil, nil)
}
