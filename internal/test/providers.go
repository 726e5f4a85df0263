// Package test provides hand-written stubs shared across package tests.
package test

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

// AuthProviderStub provides controllable sign-in behaviour for chain tests.
type AuthProviderStub struct {
	NameVal   string
	SignInFn  func(context.Context, string, string) (*model.User, *model.Session, error)
	SignOutFn func(context.Context, string) error

	SignInCalls  int
	SignOutCalls int
}

func (s *AuthProviderStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "auth-stub"
}

func (s *AuthProviderStub) SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	s.SignInCalls++
	if s.SignInFn != nil {
		return s.SignInFn(ctx, email, password)
	}
	user := &model.User{ID: "u1", Email: email, Role: model.RoleUser, IsActive: true}
	return user, &model.Session{Token: "stub-token", UserID: user.ID, User: user}, nil
}

func (s *AuthProviderStub) SignOut(ctx context.Context, token string) error {
	s.SignOutCalls++
	if s.SignOutFn != nil {
		return s.SignOutFn(ctx, token)
	}
	return nil
}

// RegistrarStub provides controllable sign-up behaviour.
type RegistrarStub struct {
	NameVal  string
	SignUpFn func(context.Context, provider.SignUpParams) (*model.User, *model.Session, error)

	SignUpCalls int
}

func (s *RegistrarStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "registrar-stub"
}

func (s *RegistrarStub) SignUp(ctx context.Context, params provider.SignUpParams) (*model.User, *model.Session, error) {
	s.SignUpCalls++
	if s.SignUpFn != nil {
		return s.SignUpFn(ctx, params)
	}
	user := &model.User{
		ID:        "u1",
		Email:     params.Email,
		FirstName: params.FirstName,
		LastName:  params.LastName,
		Role:      model.RoleUser,
		IsActive:  true,
	}
	return user, &model.Session{Token: "stub-token", UserID: user.ID, User: user}, nil
}

// PointsProviderStub provides controllable ledger behaviour.
type PointsProviderStub struct {
	NameVal         string
	LoyaltyPointsFn func(context.Context, string) (*model.LoyaltyPoints, error)
	AddPointsFn     func(context.Context, provider.AddPointsParams) (*model.LoyaltyPoints, error)

	LoyaltyPointsCalls int
	AddPointsCalls     int
}

func (s *PointsProviderStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "points-stub"
}

func (s *PointsProviderStub) LoyaltyPoints(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
	s.LoyaltyPointsCalls++
	if s.LoyaltyPointsFn != nil {
		return s.LoyaltyPointsFn(ctx, userID)
	}
	return &model.LoyaltyPoints{ID: "lp1", UserID: userID, PointsBalance: 100, TotalEarned: 100}, nil
}

func (s *PointsProviderStub) AddPoints(ctx context.Context, params provider.AddPointsParams) (*model.LoyaltyPoints, error) {
	s.AddPointsCalls++
	if s.AddPointsFn != nil {
		return s.AddPointsFn(ctx, params)
	}
	return &model.LoyaltyPoints{ID: "lp1", UserID: params.UserID, PointsBalance: 100 + params.Points}, nil
}

// LedgerStub provides controllable transaction history behaviour.
type LedgerStub struct {
	NameVal        string
	TransactionsFn func(context.Context, string) ([]model.Transaction, error)

	TransactionsCalls int
}

func (s *LedgerStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "ledger-stub"
}

func (s *LedgerStub) Transactions(ctx context.Context, userID string) ([]model.Transaction, error) {
	s.TransactionsCalls++
	if s.TransactionsFn != nil {
		return s.TransactionsFn(ctx, userID)
	}
	return []model.Transaction{}, nil
}

// InsightsStub provides controllable analytics behaviour.
type InsightsStub struct {
	NameVal            string
	AnalyzeSentimentFn func(context.Context, string) (*model.SentimentAnalysis, error)

	AnalyzeSentimentCalls int
}

func (s *InsightsStub) Name() string {
	if s.NameVal != "" {
		return s.NameVal
	}
	return "insights-stub"
}

func (s *InsightsStub) AnalyzeSentiment(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
	s.AnalyzeSentimentCalls++
	if s.AnalyzeSentimentFn != nil {
		return s.AnalyzeSentimentFn(ctx, text)
	}
	return &model.SentimentAnalysis{Sentiment: "neutral", Score: 0.5}, nil
}

func (s *InsightsStub) Recommendations(ctx context.Context, userID string, userData map[string]any) ([]model.Recommendation, error) {
	return []model.Recommendation{}, nil
}

func (s *InsightsStub) PredictiveInsights(ctx context.Context, userID string, userData map[string]any) ([]model.PredictiveInsight, error) {
	return []model.PredictiveInsight{}, nil
}

func (s *InsightsStub) BehaviorPatterns(ctx context.Context, userID string, userData map[string]any) ([]model.BehaviorPattern, error) {
	return []model.BehaviorPattern{}, nil
}
