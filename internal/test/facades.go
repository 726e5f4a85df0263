package test

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/worker"
)

// AuthFacadeStub provides controllable behaviour for session endpoints.
type AuthFacadeStub struct {
	LoginFn           func(context.Context, string, string) (*model.User, error)
	SignupFn          func(context.Context, provider.SignUpParams) (*model.User, error)
	LogoutFn          func(context.Context) error
	CurrentUserFn     func() *model.User
	ContinueAsGuestFn func() error
	Onboarded         bool
}

// Login delegates to the provided function or returns a canned user.
func (s AuthFacadeStub) Login(ctx context.Context, email, password string) (*model.User, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, email, password)
	}
	return &model.User{ID: "u1", Email: email}, nil
}

// Signup delegates to the provided function or echoes the params.
func (s AuthFacadeStub) Signup(ctx context.Context, params provider.SignUpParams) (*model.User, error) {
	if s.SignupFn != nil {
		return s.SignupFn(ctx, params)
	}
	return &model.User{ID: "u1", Email: params.Email, FirstName: params.FirstName}, nil
}

// Logout runs the configured hook, defaulting to success.
func (s AuthFacadeStub) Logout(ctx context.Context) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx)
	}
	return nil
}

// CurrentUser returns the configured user, nil by default.
func (s AuthFacadeStub) CurrentUser() *model.User {
	if s.CurrentUserFn != nil {
		return s.CurrentUserFn()
	}
	return nil
}

// ContinueAsGuest runs the configured hook, defaulting to success.
func (s AuthFacadeStub) ContinueAsGuest() error {
	if s.ContinueAsGuestFn != nil {
		return s.ContinueAsGuestFn()
	}
	return nil
}

// CompleteOnboarding always succeeds.
func (s AuthFacadeStub) CompleteOnboarding() error { return nil }

// OnboardingCompleted reports the configured flag.
func (s AuthFacadeStub) OnboardingCompleted() bool { return s.Onboarded }

// PointsFacadeStub simulates ledger operations.
type PointsFacadeStub struct {
	PointsFn       func(context.Context, string) (*model.LoyaltyPoints, error)
	AddFn          func(context.Context, provider.AddPointsParams) (int, error)
	TransactionsFn func(context.Context, string) ([]model.Transaction, error)
}

// LoyaltyPoints returns the configured balance or default data.
func (s PointsFacadeStub) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	if s.PointsFn != nil {
		return s.PointsFn(ctx, userID)
	}
	return &model.LoyaltyPoints{UserID: userID, PointsBalance: 100, TotalEarned: 150, TotalRedeemed: 50}, nil
}

// AddLoyaltyPoints applies the configured accrual or adds to the default balance.
func (s PointsFacadeStub) AddLoyaltyPoints(ctx context.Context, params provider.AddPointsParams) (int, error) {
	if s.AddFn != nil {
		return s.AddFn(ctx, params)
	}
	return 100 + params.Points, nil
}

// Transactions returns configured history, empty by default.
func (s PointsFacadeStub) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{}, nil
}

// AdminFacadeStub simulates the management surface.
type AdminFacadeStub struct {
	OverviewFn   func(context.Context) *model.AdminOverview
	DeleteUserFn func(context.Context, string) error
}

func (s AdminFacadeStub) AdminOverview(ctx context.Context) *model.AdminOverview {
	if s.OverviewFn != nil {
		return s.OverviewFn(ctx)
	}
	return &model.AdminOverview{TotalUsers: 1}
}

func (s AdminFacadeStub) AdminUsers(context.Context) []model.User           { return []model.User{} }
func (s AdminFacadeStub) AdminPartners(context.Context) []model.Partner     { return []model.Partner{} }
func (s AdminFacadeStub) AdminQuizzes(context.Context) []model.Quiz         { return []model.Quiz{} }
func (s AdminFacadeStub) AdminPromotions(context.Context) []model.Promotion { return []model.Promotion{} }

func (s AdminFacadeStub) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	user.ID = "new-user"
	return &user, nil
}

func (s AdminFacadeStub) UpdateUser(ctx context.Context, id string, user model.User) (*model.User, error) {
	user.ID = id
	return &user, nil
}

func (s AdminFacadeStub) DeleteUser(ctx context.Context, id string) error {
	if s.DeleteUserFn != nil {
		return s.DeleteUserFn(ctx, id)
	}
	return nil
}

func (s AdminFacadeStub) CreatePartner(ctx context.Context, partner model.Partner) (*model.Partner, error) {
	partner.ID = "new-partner"
	return &partner, nil
}

func (s AdminFacadeStub) UpdatePartner(ctx context.Context, id string, partner model.Partner) (*model.Partner, error) {
	partner.ID = id
	return &partner, nil
}

func (s AdminFacadeStub) DeletePartner(context.Context, string) error { return nil }

func (s AdminFacadeStub) CreateQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	quiz.ID = "new-quiz"
	return &quiz, nil
}

func (s AdminFacadeStub) UpdateQuiz(ctx context.Context, id string, quiz model.Quiz) (*model.Quiz, error) {
	quiz.ID = id
	return &quiz, nil
}

func (s AdminFacadeStub) DeleteQuiz(context.Context, string) error { return nil }

func (s AdminFacadeStub) CreatePromotion(ctx context.Context, promo model.Promotion) (*model.Promotion, error) {
	promo.ID = "new-promotion"
	return &promo, nil
}

func (s AdminFacadeStub) UpdatePromotion(ctx context.Context, id string, promo model.Promotion) (*model.Promotion, error) {
	promo.ID = id
	return &promo, nil
}

func (s AdminFacadeStub) DeletePromotion(context.Context, string) error { return nil }

func (s AdminFacadeStub) RegenerateQuizQuestions(context.Context, string) error { return nil }

// QuizFacadeStub simulates quiz play.
type QuizFacadeStub struct {
	GenerateFn func(context.Context, provider.GenerateQuizParams) ([]model.QuizQuestion, error)
	SubmitFn   func(context.Context, provider.SubmitQuizParams) (*model.QuizResult, error)
}

func (s QuizFacadeStub) GenerateQuiz(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, params)
	}
	return []model.QuizQuestion{{ID: "q1", QuestionText: "stub?"}}, nil
}

func (s QuizFacadeStub) SubmitQuiz(ctx context.Context, params provider.SubmitQuizParams) (*model.QuizResult, error) {
	if s.SubmitFn != nil {
		return s.SubmitFn(ctx, params)
	}
	return &model.QuizResult{Score: 1, PointsEarned: 10}, nil
}

func (s QuizFacadeStub) QuizCategories(context.Context) []string       { return []string{"general"} }
func (s QuizFacadeStub) QuizDifficultyLevels(context.Context) []string { return []string{"easy"} }

func (s QuizFacadeStub) QuizByID(ctx context.Context, quizID string) (*model.Quiz, error) {
	return &model.Quiz{ID: quizID, Title: "stub quiz"}, nil
}

func (s QuizFacadeStub) QuizQuestions(context.Context, string) []model.QuizQuestion {
	return []model.QuizQuestion{}
}

// PartnerFacadeStub simulates partner engagement.
type PartnerFacadeStub struct {
	VerifyFn     func(context.Context, provider.VerifyLocationParams) (*model.OpResult, error)
	AdProgressFn func(context.Context) (*model.AdProgress, error)
}

func (s PartnerFacadeStub) NearbyPartners(context.Context) []model.Partner { return []model.Partner{} }

func (s PartnerFacadeStub) PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error) {
	return &model.Partner{ID: partnerID, Name: "stub partner"}, nil
}

func (s PartnerFacadeStub) CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error) {
	return &model.OpResult{Success: true, PointsEarned: 25}, nil
}

func (s PartnerFacadeStub) VerifyLocation(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error) {
	if s.VerifyFn != nil {
		return s.VerifyFn(ctx, params)
	}
	return &model.OpResult{Success: true}, nil
}

func (s PartnerFacadeStub) WatchAd(ctx context.Context, adID, adTitle string) (*model.OpResult, error) {
	return &model.OpResult{Success: true, PointsEarned: 10}, nil
}

func (s PartnerFacadeStub) AdProgress(ctx context.Context) (*model.AdProgress, error) {
	if s.AdProgressFn != nil {
		return s.AdProgressFn(ctx)
	}
	return &model.AdProgress{WatchedAds: 1, TotalAds: 10, Progress: 0.1}, nil
}

func (s PartnerFacadeStub) AvailableAds(context.Context) ([]model.Ad, error) {
	return []model.Ad{}, nil
}

// PaymentsFacadeStub simulates payment methods and subscriptions.
type PaymentsFacadeStub struct {
	SubscribeFn func(context.Context, string, string) (*model.OpResult, error)
}

func (s PaymentsFacadeStub) PaymentMethods(context.Context) []model.PaymentMethod {
	return []model.PaymentMethod{}
}

func (s PaymentsFacadeStub) AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error) {
	method.ID = "new-method"
	return &method, nil
}

func (s PaymentsFacadeStub) SubscriptionPlans(context.Context) []model.SubscriptionPlan {
	return []model.SubscriptionPlan{}
}

func (s PaymentsFacadeStub) Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error) {
	if s.SubscribeFn != nil {
		return s.SubscribeFn(ctx, planID, paymentMethodID)
	}
	return &model.OpResult{Success: true}, nil
}

// QRFacadeStub simulates QR code operations.
type QRFacadeStub struct {
	GenerateFn func(context.Context, provider.GenerateQRParams) (*model.QRCode, error)
	ScanFn     func(context.Context, string) (*model.OpResult, error)
}

func (s QRFacadeStub) GenerateQR(ctx context.Context, params provider.GenerateQRParams) (*model.QRCode, error) {
	if s.GenerateFn != nil {
		return s.GenerateFn(ctx, params)
	}
	return &model.QRCode{ID: "qr1", Type: params.Type, PointsAmount: params.PointsAmount}, nil
}

func (s QRFacadeStub) ScanQR(ctx context.Context, qrData string) (*model.OpResult, error) {
	if s.ScanFn != nil {
		return s.ScanFn(ctx, qrData)
	}
	return &model.OpResult{Success: true, PointsEarned: 25}, nil
}

func (s QRFacadeStub) QRHistory(context.Context) []model.QRCode { return []model.QRCode{} }

// InsightsFacadeStub simulates the analytics surface.
type InsightsFacadeStub struct {
	SentimentFn func(context.Context, string) (*model.SentimentAnalysis, error)
	FinetuneFn  func(context.Context, string, map[string]any) bool
}

func (s InsightsFacadeStub) AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	if s.SentimentFn != nil {
		return s.SentimentFn(ctx, text)
	}
	return &model.SentimentAnalysis{Sentiment: "neutral", Confidence: 0.5}, nil
}

func (s InsightsFacadeStub) Recommendations(context.Context, map[string]any) ([]model.Recommendation, error) {
	return []model.Recommendation{}, nil
}

func (s InsightsFacadeStub) PredictiveInsights(context.Context, map[string]any) ([]model.PredictiveInsight, error) {
	return []model.PredictiveInsight{}, nil
}

func (s InsightsFacadeStub) BehaviorPatterns(context.Context, map[string]any) ([]model.BehaviorPattern, error) {
	return []model.BehaviorPattern{}, nil
}

func (s InsightsFacadeStub) FinetuneModel(ctx context.Context, modelType string, trainingData map[string]any) bool {
	if s.FinetuneFn != nil {
		return s.FinetuneFn(ctx, modelType, trainingData)
	}
	return true
}

// LoyaltyFacadeStub aggregates the per-surface stubs into the full facade.
type LoyaltyFacadeStub struct {
	AuthFacadeStub
	PointsFacadeStub
	AdminFacadeStub
	QuizFacadeStub
	PartnerFacadeStub
	PaymentsFacadeStub
	QRFacadeStub
	InsightsFacadeStub
}

// SessionStateStub reports a fixed session state to middleware.
type SessionStateStub struct {
	Active bool
	ID     string
}

// Authenticated reports the configured flag.
func (s SessionStateStub) Authenticated() bool { return s.Active }

// UserID returns the configured identifier.
func (s SessionStateStub) UserID() string { return s.ID }

// HealthReporterStub returns a fixed probe snapshot.
type HealthReporterStub struct {
	Statuses []worker.Status
}

// Snapshot returns the configured statuses.
func (s HealthReporterStub) Snapshot() []worker.Status { return s.Statuses }
