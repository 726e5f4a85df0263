package handlers

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

// AuthFacade describes the session capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, email, password string) (*model.User, error)
	Signup(ctx context.Context, params provider.SignUpParams) (*model.User, error)
	Logout(ctx context.Context) error
	CurrentUser() *model.User
	ContinueAsGuest() error
	CompleteOnboarding() error
	OnboardingCompleted() bool
}

// PointsFacade provides ledger operations.
type PointsFacade interface {
	LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error)
	AddLoyaltyPoints(ctx context.Context, params provider.AddPointsParams) (int, error)
	Transactions(ctx context.Context, userID string) ([]model.Transaction, error)
}

// AdminFacade provides the management surface.
type AdminFacade interface {
	AdminOverview(ctx context.Context) *model.AdminOverview
	AdminUsers(ctx context.Context) []model.User
	AdminPartners(ctx context.Context) []model.Partner
	AdminQuizzes(ctx context.Context) []model.Quiz
	AdminPromotions(ctx context.Context) []model.Promotion
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

// QuizFacade provides quiz play operations.
type QuizFacade interface {
	GenerateQuiz(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error)
	SubmitQuiz(ctx context.Context, params provider.SubmitQuizParams) (*model.QuizResult, error)
	QuizCategories(ctx context.Context) []string
	QuizDifficultyLevels(ctx context.Context) []string
	QuizByID(ctx context.Context, quizID string) (*model.Quiz, error)
	QuizQuestions(ctx context.Context, quizID string) []model.QuizQuestion
}

// PartnerFacade provides the partner directory and engagement surface.
type PartnerFacade interface {
	NearbyPartners(ctx context.Context) []model.Partner
	PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error)
	CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error)
	VerifyLocation(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error)
	WatchAd(ctx context.Context, adID, adTitle string) (*model.OpResult, error)
	AdProgress(ctx context.Context) (*model.AdProgress, error)
	AvailableAds(ctx context.Context) ([]model.Ad, error)
}

// PaymentsFacade provides payment methods and subscriptions.
type PaymentsFacade interface {
	PaymentMethods(ctx context.Context) []model.PaymentMethod
	AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error)
	SubscriptionPlans(ctx context.Context) []model.SubscriptionPlan
	Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error)
}

// QRFacade provides QR code operations.
type QRFacade interface {
	GenerateQR(ctx context.Context, params provider.GenerateQRParams) (*model.QRCode, error)
	ScanQR(ctx context.Context, qrData string) (*model.OpResult, error)
	QRHistory(ctx context.Context) []model.QRCode
}

// InsightsFacade provides the analytics surface.
type InsightsFacade interface {
	AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error)
	Recommendations(ctx context.Context, userData map[string]any) ([]model.Recommendation, error)
	PredictiveInsights(ctx context.Context, userData map[string]any) ([]model.PredictiveInsight, error)
	BehaviorPatterns(ctx context.Context, userData map[string]any) ([]model.BehaviorPattern, error)
	FinetuneModel(ctx context.Context, modelType string, trainingData map[string]any) bool
}

// LoyaltyFacade aggregates the full set of operations used across handlers.
type LoyaltyFacade interface {
	AuthFacade
	PointsFacade
	AdminFacade
	QuizFacade
	PartnerFacade
	PaymentsFacade
	QRFacade
	InsightsFacade
}
