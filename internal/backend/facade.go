// Package backend composes the backing services into one entry point. Every
// operation walks an ordered provider chain: the guest fixture provider
// first, then the managed provider where it implements the capability, then
// the custom REST backend.
package backend

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/validator/v10"

	"github.com/tnyamakura/loyaltylink/internal/adapter/aiservice"
	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/session"
)

// Chains holds the ordered provider lists, head tried first. The order is
// policy: guest fixtures shadow everything for guest sessions, the managed
// provider outranks the custom backend for the capabilities both serve.
type Chains struct {
	Auth       []provider.Auth
	Registrars []provider.Registrar
	Points     []provider.Points
	Ledgers    []provider.Ledger
	Admins     []provider.Admin
	Quizzes    []provider.Quiz
	Partners   []provider.Partner
	Payments   []provider.Payments
	QR         []provider.QR
	Insights   []provider.Insights
}

// Facade is the single entry point for all backend interaction.
type Facade struct {
	chains   Chains
	sessions *session.Store
	ai       *aiservice.Client
	validate *validator.Validate
	logger   *slog.Logger
}

// NewFacade wires the chains to the session store.
func NewFacade(chains Chains, sessions *session.Store, ai *aiservice.Client, logger *slog.Logger) *Facade {
	return &Facade{
		chains:   chains,
		sessions: sessions,
		ai:       ai,
		validate: validator.New(),
		logger:   logger,
	}
}

// chain walks providers in order until one succeeds. ErrNotGuest is the
// silent hand-off a provider uses to decline; anything else is logged before
// the next link is tried. The caller sees the last error when every link
// fails.
func chain[P provider.Named, T any](ctx context.Context, logger *slog.Logger, op string, providers []P, call func(P) (T, error)) (T, error) {
	var zero T
	var lastErr error
	for _, p := range providers {
		if ctx.Err() != nil {
			return zero, ctx.Err()
		}
		result, err := call(p)
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, domainErrors.ErrNotGuest) && !errors.Is(err, domainErrors.ErrUnsupported) {
			logger.Warn("provider failed, trying next",
				slog.String("op", op),
				slog.String("provider", p.Name()),
				slog.String("error", err.Error()),
			)
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("%s: %w", op, domainErrors.ErrUnsupported)
	}
	return zero, lastErr
}

type authOutcome struct {
	user *model.User
	sess *model.Session
}

// Login authenticates against the auth chain and caches the session.
func (f *Facade) Login(ctx context.Context, email, password string) (*model.User, error) {
	outcome, err := chain(ctx, f.logger, "login", f.chains.Auth, func(p provider.Auth) (authOutcome, error) {
		user, sess, err := p.SignIn(ctx, email, password)
		return authOutcome{user: user, sess: sess}, err
	})
	if err != nil {
		return nil, err
	}
	if err := f.sessions.Set(outcome.sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	f.logger.Info("login successful", slog.String("user_id", outcome.user.ID))
	return outcome.user, nil
}

type signupRequest struct {
	Email     string `validate:"required,email"`
	Password  string `validate:"required,min=6"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// Signup registers a new account and caches the resulting session.
func (f *Facade) Signup(ctx context.Context, params provider.SignUpParams) (*model.User, error) {
	request := signupRequest{
		Email:     params.Email,
		Password:  params.Password,
		FirstName: params.FirstName,
		LastName:  params.LastName,
	}
	if err := f.validate.Struct(request); err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrInvalidInput, err)
	}

	outcome, err := chain(ctx, f.logger, "signup", f.chains.Registrars, func(p provider.Registrar) (authOutcome, error) {
		user, sess, err := p.SignUp(ctx, params)
		return authOutcome{user: user, sess: sess}, err
	})
	if err != nil {
		return nil, err
	}
	if err := f.sessions.Set(outcome.sess); err != nil {
		return nil, fmt.Errorf("store session: %w", err)
	}
	f.logger.Info("signup successful", slog.String("user_id", outcome.user.ID))
	return outcome.user, nil
}

// Logout revokes the session best-effort and always clears the local cache.
// Calling it twice is harmless.
func (f *Facade) Logout(ctx context.Context) error {
	if token := f.sessions.Token(); token != "" {
		for _, p := range f.chains.Auth {
			if err := p.SignOut(ctx, token); err != nil {
				f.logger.Warn("sign out failed",
					slog.String("provider", p.Name()),
					slog.String("error", err.Error()),
				)
			}
		}
	}
	return f.sessions.Clear()
}

// CurrentUser reads the cached session without touching the network. Nil
// means no session is cached.
func (f *Facade) CurrentUser() *model.User {
	return f.sessions.User()
}

// CurrentUserID returns the cached user's id, or empty without a session.
func (f *Facade) CurrentUserID() string {
	user := f.sessions.User()
	if user == nil {
		return ""
	}
	return user.ID
}

// ContinueAsGuest starts a local guest session served entirely from
// fixtures.
func (f *Facade) ContinueAsGuest() error {
	return f.sessions.SetGuest()
}

// IsGuest reports whether the active session is a guest session.
func (f *Facade) IsGuest() bool {
	return f.sessions.IsGuest()
}

// CompleteOnboarding marks the one-time onboarding flow as finished.
func (f *Facade) CompleteOnboarding() error {
	return f.sessions.CompleteOnboarding()
}

// OnboardingCompleted reports the onboarding flag. It survives logout.
func (f *Facade) OnboardingCompleted() bool {
	return f.sessions.OnboardingCompleted()
}

// LoyaltyPoints fetches a user's ledger snapshot through the points chain.
func (f *Facade) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	return chain(ctx, f.logger, "loyalty points", f.chains.Points, func(p provider.Points) (*model.LoyaltyPoints, error) {
		return p.LoyaltyPoints(ctx, userID)
	})
}

// AddLoyaltyPoints credits points and returns the new balance. Mutations
// propagate failure so the caller can surface it.
func (f *Facade) AddLoyaltyPoints(ctx context.Context, params provider.AddPointsParams) (int, error) {
	points, err := chain(ctx, f.logger, "add points", f.chains.Points, func(p provider.Points) (*model.LoyaltyPoints, error) {
		return p.AddPoints(ctx, params)
	})
	if err != nil {
		return 0, err
	}
	return points.PointsBalance, nil
}

// Transactions lists a user's point history.
func (f *Facade) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	return chain(ctx, f.logger, "transactions", f.chains.Ledgers, func(p provider.Ledger) ([]model.Transaction, error) {
		return p.Transactions(ctx, userID)
	})
}

// degrade converts a list-read failure into an empty result so list views
// render empty instead of erroring.
func degrade[T any](logger *slog.Logger, op string, items []T, err error) []T {
	if err != nil {
		logger.Warn("read degraded to empty result",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
		return []T{}
	}
	return items
}

// AdminOverview aggregates dashboard numbers. A total failure degrades to a
// zeroed overview rather than an error.
func (f *Facade) AdminOverview(ctx context.Context) *model.AdminOverview {
	overview, err := chain(ctx, f.logger, "admin overview", f.chains.Admins, func(p provider.Admin) (*model.AdminOverview, error) {
		return p.AdminOverview(ctx)
	})
	if err != nil {
		f.logger.Warn("admin overview degraded to zeroes", slog.String("error", err.Error()))
		return &model.AdminOverview{}
	}
	return overview
}

func (f *Facade) AdminUsers(ctx context.Context) []model.User {
	users, err := chain(ctx, f.logger, "admin users", f.chains.Admins, func(p provider.Admin) ([]model.User, error) {
		return p.AdminUsers(ctx)
	})
	return degrade(f.logger, "admin users", users, err)
}

func (f *Facade) AdminPartners(ctx context.Context) []model.Partner {
	partners, err := chain(ctx, f.logger, "admin partners", f.chains.Admins, func(p provider.Admin) ([]model.Partner, error) {
		return p.AdminPartners(ctx)
	})
	return degrade(f.logger, "admin partners", partners, err)
}

func (f *Facade) AdminQuizzes(ctx context.Context) []model.Quiz {
	quizzes, err := chain(ctx, f.logger, "admin quizzes", f.chains.Admins, func(p provider.Admin) ([]model.Quiz, error) {
		return p.AdminQuizzes(ctx)
	})
	return degrade(f.logger, "admin quizzes", quizzes, err)
}

func (f *Facade) AdminPromotions(ctx context.Context) []model.Promotion {
	promotions, err := chain(ctx, f.logger, "admin promotions", f.chains.Admins, func(p provider.Admin) ([]model.Promotion, error) {
		return p.AdminPromotions(ctx)
	})
	return degrade(f.logger, "admin promotions", promotions, err)
}

func (f *Facade) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	return chain(ctx, f.logger, "create user", f.chains.Admins, func(p provider.Admin) (*model.User, error) {
		return p.CreateUser(ctx, user)
	})
}

func (f *Facade) UpdateUser(ctx context.Context, id string, user model.User) (*model.User, error) {
	return chain(ctx, f.logger, "update user", f.chains.Admins, func(p provider.Admin) (*model.User, error) {
		return p.UpdateUser(ctx, id, user)
	})
}

func (f *Facade) DeleteUser(ctx context.Context, id string) error {
	_, err := chain(ctx, f.logger, "delete user", f.chains.Admins, func(p provider.Admin) (struct{}, error) {
		return struct{}{}, p.DeleteUser(ctx, id)
	})
	return err
}

func (f *Facade) CreatePartner(ctx context.Context, partner model.Partner) (*model.Partner, error) {
	return chain(ctx, f.logger, "create partner", f.chains.Admins, func(p provider.Admin) (*model.Partner, error) {
		return p.CreatePartner(ctx, partner)
	})
}

func (f *Facade) UpdatePartner(ctx context.Context, id string, partner model.Partner) (*model.Partner, error) {
	return chain(ctx, f.logger, "update partner", f.chains.Admins, func(p provider.Admin) (*model.Partner, error) {
		return p.UpdatePartner(ctx, id, partner)
	})
}

func (f *Facade) DeletePartner(ctx context.Context, id string) error {
	_, err := chain(ctx, f.logger, "delete partner", f.chains.Admins, func(p provider.Admin) (struct{}, error) {
		return struct{}{}, p.DeletePartner(ctx, id)
	})
	return err
}

func (f *Facade) CreateQuiz(ctx context.Context, quiz model.Quiz) (*model.Quiz, error) {
	return chain(ctx, f.logger, "create quiz", f.chains.Admins, func(p provider.Admin) (*model.Quiz, error) {
		return p.CreateQuiz(ctx, quiz)
	})
}

func (f *Facade) UpdateQuiz(ctx context.Context, id string, quiz model.Quiz) (*model.Quiz, error) {
	return chain(ctx, f.logger, "update quiz", f.chains.Admins, func(p provider.Admin) (*model.Quiz, error) {
		return p.UpdateQuiz(ctx, id, quiz)
	})
}

func (f *Facade) DeleteQuiz(ctx context.Context, id string) error {
	_, err := chain(ctx, f.logger, "delete quiz", f.chains.Admins, func(p provider.Admin) (struct{}, error) {
		return struct{}{}, p.DeleteQuiz(ctx, id)
	})
	return err
}

func (f *Facade) CreatePromotion(ctx context.Context, promo model.Promotion) (*model.Promotion, error) {
	return chain(ctx, f.logger, "create promotion", f.chains.Admins, func(p provider.Admin) (*model.Promotion, error) {
		return p.CreatePromotion(ctx, promo)
	})
}

func (f *Facade) UpdatePromotion(ctx context.Context, id string, promo model.Promotion) (*model.Promotion, error) {
	return chain(ctx, f.logger, "update promotion", f.chains.Admins, func(p provider.Admin) (*model.Promotion, error) {
		return p.UpdatePromotion(ctx, id, promo)
	})
}

func (f *Facade) DeletePromotion(ctx context.Context, id string) error {
	_, err := chain(ctx, f.logger, "delete promotion", f.chains.Admins, func(p provider.Admin) (struct{}, error) {
		return struct{}{}, p.DeletePromotion(ctx, id)
	})
	return err
}

func (f *Facade) RegenerateQuizQuestions(ctx context.Context, quizID string) error {
	_, err := chain(ctx, f.logger, "regenerate quiz", f.chains.Admins, func(p provider.Admin) (struct{}, error) {
		return struct{}{}, p.RegenerateQuizQuestions(ctx, quizID)
	})
	return err
}

// GenerateQuiz produces a question set for the requested category and
// difficulty. The current user is attached for personalization.
func (f *Facade) GenerateQuiz(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error) {
	if params.UserID == "" {
		params.UserID = f.CurrentUserID()
	}
	return chain(ctx, f.logger, "generate quiz", f.chains.Quizzes, func(p provider.Quiz) ([]model.QuizQuestion, error) {
		return p.GenerateQuiz(ctx, params)
	})
}

func (f *Facade) SubmitQuiz(ctx context.Context, params provider.SubmitQuizParams) (*model.QuizResult, error) {
	if params.UserID == "" {
		params.UserID = f.CurrentUserID()
	}
	return chain(ctx, f.logger, "submit quiz", f.chains.Quizzes, func(p provider.Quiz) (*model.QuizResult, error) {
		return p.SubmitQuiz(ctx, params)
	})
}

func (f *Facade) QuizCategories(ctx context.Context) []string {
	categories, err := chain(ctx, f.logger, "quiz categories", f.chains.Quizzes, func(p provider.Quiz) ([]string, error) {
		return p.QuizCategories(ctx)
	})
	return degrade(f.logger, "quiz categories", categories, err)
}

func (f *Facade) QuizDifficultyLevels(ctx context.Context) []string {
	levels, err := chain(ctx, f.logger, "quiz difficulty levels", f.chains.Quizzes, func(p provider.Quiz) ([]string, error) {
		return p.QuizDifficultyLevels(ctx)
	})
	return degrade(f.logger, "quiz difficulty levels", levels, err)
}

func (f *Facade) QuizByID(ctx context.Context, quizID string) (*model.Quiz, error) {
	return chain(ctx, f.logger, "quiz by id", f.chains.Quizzes, func(p provider.Quiz) (*model.Quiz, error) {
		return p.QuizByID(ctx, quizID)
	})
}

func (f *Facade) QuizQuestions(ctx context.Context, quizID string) []model.QuizQuestion {
	questions, err := chain(ctx, f.logger, "quiz questions", f.chains.Quizzes, func(p provider.Quiz) ([]model.QuizQuestion, error) {
		return p.QuizQuestions(ctx, quizID)
	})
	return degrade(f.logger, "quiz questions", questions, err)
}

func (f *Facade) NearbyPartners(ctx context.Context) []model.Partner {
	partners, err := chain(ctx, f.logger, "nearby partners", f.chains.Partners, func(p provider.Partner) ([]model.Partner, error) {
		return p.NearbyPartners(ctx)
	})
	return degrade(f.logger, "nearby partners", partners, err)
}

func (f *Facade) PartnerDetails(ctx context.Context, partnerID string) (*model.Partner, error) {
	return chain(ctx, f.logger, "partner details", f.chains.Partners, func(p provider.Partner) (*model.Partner, error) {
		return p.PartnerDetails(ctx, partnerID)
	})
}

func (f *Facade) CheckIn(ctx context.Context, partnerID string) (*model.OpResult, error) {
	return chain(ctx, f.logger, "check in", f.chains.Partners, func(p provider.Partner) (*model.OpResult, error) {
		return p.CheckIn(ctx, partnerID)
	})
}

func (f *Facade) VerifyLocation(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error) {
	if params.UserID == "" {
		params.UserID = f.CurrentUserID()
	}
	return chain(ctx, f.logger, "verify location", f.chains.Partners, func(p provider.Partner) (*model.OpResult, error) {
		return p.VerifyLocation(ctx, params)
	})
}

func (f *Facade) WatchAd(ctx context.Context, adID, adTitle string) (*model.OpResult, error) {
	userID := f.CurrentUserID()
	return chain(ctx, f.logger, "watch ad", f.chains.Partners, func(p provider.Partner) (*model.OpResult, error) {
		return p.WatchAd(ctx, userID, adID, adTitle)
	})
}

func (f *Facade) AdProgress(ctx context.Context) (*model.AdProgress, error) {
	userID := f.CurrentUserID()
	if userID == "" {
		return nil, domainErrors.ErrNoSession
	}
	return chain(ctx, f.logger, "ad progress", f.chains.Partners, func(p provider.Partner) (*model.AdProgress, error) {
		return p.AdProgress(ctx, userID)
	})
}

func (f *Facade) AvailableAds(ctx context.Context) ([]model.Ad, error) {
	return chain(ctx, f.logger, "available ads", f.chains.Partners, func(p provider.Partner) ([]model.Ad, error) {
		return p.AvailableAds(ctx)
	})
}

func (f *Facade) PaymentMethods(ctx context.Context) []model.PaymentMethod {
	methods, err := chain(ctx, f.logger, "payment methods", f.chains.Payments, func(p provider.Payments) ([]model.PaymentMethod, error) {
		return p.PaymentMethods(ctx)
	})
	return degrade(f.logger, "payment methods", methods, err)
}

func (f *Facade) AddPaymentMethod(ctx context.Context, method model.PaymentMethod) (*model.PaymentMethod, error) {
	return chain(ctx, f.logger, "add payment method", f.chains.Payments, func(p provider.Payments) (*model.PaymentMethod, error) {
		return p.AddPaymentMethod(ctx, method)
	})
}

func (f *Facade) SubscriptionPlans(ctx context.Context) []model.SubscriptionPlan {
	plans, err := chain(ctx, f.logger, "subscription plans", f.chains.Payments, func(p provider.Payments) ([]model.SubscriptionPlan, error) {
		return p.SubscriptionPlans(ctx)
	})
	return degrade(f.logger, "subscription plans", plans, err)
}

func (f *Facade) Subscribe(ctx context.Context, planID, paymentMethodID string) (*model.OpResult, error) {
	return chain(ctx, f.logger, "subscribe", f.chains.Payments, func(p provider.Payments) (*model.OpResult, error) {
		return p.Subscribe(ctx, planID, paymentMethodID)
	})
}

func (f *Facade) GenerateQR(ctx context.Context, params provider.GenerateQRParams) (*model.QRCode, error) {
	return chain(ctx, f.logger, "generate qr", f.chains.QR, func(p provider.QR) (*model.QRCode, error) {
		return p.GenerateQR(ctx, params)
	})
}

func (f *Facade) ScanQR(ctx context.Context, qrData string) (*model.OpResult, error) {
	return chain(ctx, f.logger, "scan qr", f.chains.QR, func(p provider.QR) (*model.OpResult, error) {
		return p.ScanQR(ctx, qrData)
	})
}

func (f *Facade) QRHistory(ctx context.Context) []model.QRCode {
	history, err := chain(ctx, f.logger, "qr history", f.chains.QR, func(p provider.QR) ([]model.QRCode, error) {
		return p.QRHistory(ctx)
	})
	return degrade(f.logger, "qr history", history, err)
}

func (f *Facade) AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	return chain(ctx, f.logger, "analyze sentiment", f.chains.Insights, func(p provider.Insights) (*model.SentimentAnalysis, error) {
		return p.AnalyzeSentiment(ctx, text)
	})
}

func (f *Facade) Recommendations(ctx context.Context, userData map[string]any) ([]model.Recommendation, error) {
	userID := f.CurrentUserID()
	return chain(ctx, f.logger, "recommendations", f.chains.Insights, func(p provider.Insights) ([]model.Recommendation, error) {
		return p.Recommendations(ctx, userID, userData)
	})
}

func (f *Facade) PredictiveInsights(ctx context.Context, userData map[string]any) ([]model.PredictiveInsight, error) {
	userID := f.CurrentUserID()
	return chain(ctx, f.logger, "predictive insights", f.chains.Insights, func(p provider.Insights) ([]model.PredictiveInsight, error) {
		return p.PredictiveInsights(ctx, userID, userData)
	})
}

func (f *Facade) BehaviorPatterns(ctx context.Context, userData map[string]any) ([]model.BehaviorPattern, error) {
	userID := f.CurrentUserID()
	return chain(ctx, f.logger, "behavior patterns", f.chains.Insights, func(p provider.Insights) ([]model.BehaviorPattern, error) {
		return p.BehaviorPatterns(ctx, userID, userData)
	})
}

// FinetuneModel kicks off a training run on the analytics service. The
// result is advisory; a failed run reports false.
func (f *Facade) FinetuneModel(ctx context.Context, modelType string, trainingData map[string]any) bool {
	return f.ai.FinetuneModel(ctx, modelType, trainingData)
}
