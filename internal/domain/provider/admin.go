package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// Admin covers the management CRUD surface. Only the custom backend
// implements it for real; the guest provider serves fixtures.
type Admin interface {
	Named
	AdminOverview(ctx context.Context) (*model.AdminOverview, error)
	AdminUsers(ctx context.Context) ([]model.User, error)
	AdminPartners(ctx context.Context) ([]model.Partner, error)
	AdminQuizzes(ctx context.Context) ([]model.Quiz, error)
	AdminPromotions(ctx context.Context) ([]model.Promotion, error)

	CreateUser(ctx context.Context, user model.User) (*model.User, error)
	UpdateUser(ctx context.Context, id string, user model.User) (*model.User, error)
	DeleteUser(ctx context.Context, id string) error

	CreatePartner(ctx context.Context, partner model.Partner) (*model.Partner, error)
	UpdatePartner(ctx context.Context, id string, partner model.Partner) (*model.Partner, error)
	DeletePartner(ctx context.Context, id string) error

	CreateQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error)
	UpdateQuiz(ctx context.Context, id string, quiz model.Quiz) (*model.Quiz, error)
	DeleteQuiz(ctx context.Context, id string) error

	CreatePromotion(ctx context.Context, promo model.Promotion) (*model.Promotion, error)
	UpdatePromotion(ctx context.Context, id string, promo model.Promotion) (*model.Promotion, error)
	DeletePromotion(ctx context.Context, id string) error

	RegenerateQuizQuestions(ctx context.Context, quizID string) error
}
