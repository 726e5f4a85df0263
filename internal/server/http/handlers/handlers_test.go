package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
	testhelpers "github.com/tnyamakura/loyaltylink/internal/test"
	"github.com/tnyamakura/loyaltylink/internal/worker"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, route, target string, handler gin.HandlerFunc, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, route, handler)

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthHandlerLogin(t *testing.T) {
	body, _ := json.Marshal(dto.LoginRequest{Email: "user@example.com", Password: "secret"})
	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(testhelpers.AuthFacadeStub{}).Login, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var sess dto.SessionResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &sess); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if sess.User == nil || sess.User.Email != "user@example.com" {
		t.Fatalf("unexpected session response %+v", sess)
	}
}

func TestAuthHandlerLoginFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "bad json", body: []byte("not json"), status: http.StatusBadRequest},
		{name: "missing email", body: []byte(`{"password":"secret"}`), status: http.StatusBadRequest},
		{name: "rejected", body: []byte(`{"email":"a@b.c","password":"x"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, error) {
			return nil, domainErrors.ErrInvalidCredentials
		}}, status: http.StatusUnauthorized},
		{name: "backends down", body: []byte(`{"email":"a@b.c","password":"x"}`), facade: testhelpers.AuthFacadeStub{LoginFn: func(context.Context, string, string) (*model.User, error) {
			return nil, errors.New("boom")
		}}, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(tt.facade).Login, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerSignup(t *testing.T) {
	body, _ := json.Marshal(dto.SignupRequest{
		Email: "new@example.com", Password: "secret1", FirstName: "Ada", LastName: "Lovelace",
	})
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{SignupFn: func(ctx context.Context, params provider.SignUpParams) (*model.User, error) {
		if params.Email != "new@example.com" || params.FirstName != "Ada" {
			t.Fatalf("unexpected params passed to facade: %+v", params)
		}
		return &model.User{ID: "u9", Email: params.Email}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/signup", "/signup", handler.Signup, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestAuthHandlerSignupFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.AuthFacadeStub
		body   []byte
		status int
	}{
		{name: "short password", body: []byte(`{"email":"a@b.c","password":"x","firstName":"A","lastName":"B"}`), status: http.StatusBadRequest},
		{name: "taken", body: []byte(`{"email":"a@b.c","password":"longenough","firstName":"A","lastName":"B"}`), facade: testhelpers.AuthFacadeStub{SignupFn: func(context.Context, provider.SignUpParams) (*model.User, error) {
			return nil, domainErrors.ErrAlreadyExists
		}}, status: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/signup", "/signup", NewAuthHandler(tt.facade).Signup, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAuthHandlerMe(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/me", "/me", NewAuthHandler(testhelpers.AuthFacadeStub{}).Me, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204 without session, got %d", resp.Code)
	}

	handler := NewAuthHandler(testhelpers.AuthFacadeStub{CurrentUserFn: func() *model.User {
		return &model.User{ID: "u1", Email: "cached@example.com"}
	}})
	resp = performRequest(t, http.MethodGet, "/me", "/me", handler.Me, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 with session, got %d", resp.Code)
	}
}

func TestAuthHandlerGuest(t *testing.T) {
	var entered bool
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{ContinueAsGuestFn: func() error {
		entered = true
		return nil
	}})
	resp := performRequest(t, http.MethodPost, "/guest", "/guest", handler.Guest, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if !entered {
		t.Fatalf("expected guest mode to be entered")
	}
}

func TestAuthHandlerOnboarding(t *testing.T) {
	handler := NewAuthHandler(testhelpers.AuthFacadeStub{Onboarded: true})
	resp := performRequest(t, http.MethodGet, "/onboarding", "/onboarding", handler.Onboarding, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.OnboardingResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !out.Completed {
		t.Fatalf("expected completed onboarding flag")
	}
}

func TestPointsHandlerBalance(t *testing.T) {
	facade := testhelpers.PointsFacadeStub{PointsFn: func(ctx context.Context, userID string) (*model.LoyaltyPoints, error) {
		if userID != "u1" {
			t.Fatalf("unexpected user id %q", userID)
		}
		return &model.LoyaltyPoints{UserID: userID, PointsBalance: 100}, nil
	}}
	resp := performRequest(t, http.MethodGet, "/loyalty-points/:userId", "/loyalty-points/u1", NewPointsHandler(facade).Balance, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var points model.LoyaltyPoints
	if err := json.Unmarshal(resp.Body.Bytes(), &points); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if points.UserID != "u1" || points.PointsBalance != 100 {
		t.Fatalf("unexpected balance %+v", points)
	}
}

func TestPointsHandlerBalanceNotFound(t *testing.T) {
	facade := testhelpers.PointsFacadeStub{PointsFn: func(context.Context, string) (*model.LoyaltyPoints, error) {
		return nil, domainErrors.ErrNotFound
	}}
	resp := performRequest(t, http.MethodGet, "/loyalty-points/u1", "/loyalty-points/u1", NewPointsHandler(facade).Balance, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestPointsHandlerAdd(t *testing.T) {
	body, _ := json.Marshal(dto.AddPointsRequest{UserID: "u1", Points: 50, Reason: "quiz"})
	resp := performRequest(t, http.MethodPost, "/loyalty-points/add", "/loyalty-points/add", NewPointsHandler(testhelpers.PointsFacadeStub{}).Add, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.AddPointsResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !out.Success || out.NewBalance != 150 {
		t.Fatalf("unexpected add response %+v", out)
	}
}

func TestPointsHandlerAddFailures(t *testing.T) {
	tests := []struct {
		name   string
		facade testhelpers.PointsFacadeStub
		body   []byte
		status int
	}{
		{name: "zero points", body: []byte(`{"userId":"u1","points":0,"reason":"x"}`), status: http.StatusBadRequest},
		{name: "missing reason", body: []byte(`{"userId":"u1","points":5}`), status: http.StatusBadRequest},
		{name: "chain exhausted", body: []byte(`{"userId":"u1","points":5,"reason":"x"}`), facade: testhelpers.PointsFacadeStub{AddFn: func(context.Context, provider.AddPointsParams) (int, error) {
			return 0, errors.New("all providers failed")
		}}, status: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := performRequest(t, http.MethodPost, "/loyalty-points/add", "/loyalty-points/add", NewPointsHandler(tt.facade).Add, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d", tt.status, resp.Code)
			}
		})
	}
}

func TestAdminHandlerOverview(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/admin/overview", "/admin/overview", NewAdminHandler(testhelpers.AdminFacadeStub{}).Overview, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var overview model.AdminOverview
	if err := json.Unmarshal(resp.Body.Bytes(), &overview); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if overview.TotalUsers != 1 {
		t.Fatalf("unexpected overview %+v", overview)
	}
}

func TestAdminHandlerCreateUser(t *testing.T) {
	body, _ := json.Marshal(model.User{Email: "new@example.com", FirstName: "Ada"})
	resp := performRequest(t, http.MethodPost, "/admin/users", "/admin/users", NewAdminHandler(testhelpers.AdminFacadeStub{}).CreateUser, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
	var created model.User
	if err := json.Unmarshal(resp.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if created.ID != "new-user" {
		t.Fatalf("expected assigned id, got %+v", created)
	}
}

func TestAdminHandlerDeleteUser(t *testing.T) {
	resp := performRequest(t, http.MethodDelete, "/admin/users/u1", "/admin/users/u1", NewAdminHandler(testhelpers.AdminFacadeStub{}).DeleteUser, nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}

	facade := testhelpers.AdminFacadeStub{DeleteUserFn: func(context.Context, string) error {
		return domainErrors.ErrNotFound
	}}
	resp = performRequest(t, http.MethodDelete, "/admin/users/missing", "/admin/users/missing", NewAdminHandler(facade).DeleteUser, nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestQuizHandlerGenerate(t *testing.T) {
	body, _ := json.Marshal(dto.GenerateQuizRequest{Category: "general", Difficulty: "easy", QuestionCount: 3})
	handler := NewQuizHandler(testhelpers.QuizFacadeStub{GenerateFn: func(ctx context.Context, params provider.GenerateQuizParams) ([]model.QuizQuestion, error) {
		if params.Category != "general" || params.QuestionCount != 3 {
			t.Fatalf("unexpected params %+v", params)
		}
		return []model.QuizQuestion{{ID: "q1", QuestionText: "capital of France?"}}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/quiz/generate", "/quiz/generate", handler.Generate, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.GenerateQuizResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(out.Questions) != 1 || out.Questions[0].ID != "q1" {
		t.Fatalf("unexpected questions %+v", out.Questions)
	}
}

func TestQuizHandlerSubmit(t *testing.T) {
	body, _ := json.Marshal(dto.SubmitQuizRequest{
		Questions: []model.QuizQuestion{{ID: "q1"}},
		Answers:   []int{0},
		TimeTaken: 42,
	})
	resp := performRequest(t, http.MethodPost, "/quiz/submit", "/quiz/submit", NewQuizHandler(testhelpers.QuizFacadeStub{}).Submit, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestPartnerHandlerVerifyLocation(t *testing.T) {
	body, _ := json.Marshal(dto.VerifyLocationRequest{Latitude: -17.8, Longitude: 31.0, PartnerID: "p1", VerificationMethod: "gps"})
	handler := NewPartnerHandler(testhelpers.PartnerFacadeStub{VerifyFn: func(ctx context.Context, params provider.VerifyLocationParams) (*model.OpResult, error) {
		if params.PartnerID != "p1" {
			t.Fatalf("unexpected params %+v", params)
		}
		return &model.OpResult{Success: true, PointsEarned: 15}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/quiz/location/verify", "/quiz/location/verify", handler.VerifyLocation, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
}

func TestPartnerHandlerAdProgressRequiresSession(t *testing.T) {
	facade := testhelpers.PartnerFacadeStub{AdProgressFn: func(context.Context) (*model.AdProgress, error) {
		return nil, domainErrors.ErrNoSession
	}}
	resp := performRequest(t, http.MethodGet, "/quiz/ads/progress", "/quiz/ads/progress", NewPartnerHandler(facade).AdProgress, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestPaymentHandlerSubscribe(t *testing.T) {
	body, _ := json.Marshal(dto.SubscribeRequest{PlanID: "premium", PaymentMethodID: "pm1"})
	handler := NewPaymentHandler(testhelpers.PaymentsFacadeStub{SubscribeFn: func(ctx context.Context, planID, methodID string) (*model.OpResult, error) {
		if planID != "premium" || methodID != "pm1" {
			t.Fatalf("unexpected subscribe args %q %q", planID, methodID)
		}
		return &model.OpResult{Success: true}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/subscriptions/subscribe", "/subscriptions/subscribe", handler.Subscribe, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/subscriptions/subscribe", "/subscriptions/subscribe", NewPaymentHandler(testhelpers.PaymentsFacadeStub{}).Subscribe, []byte(`{"planId":"premium"}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without payment method, got %d", resp.Code)
	}
}

func TestQRHandlerGenerate(t *testing.T) {
	body, _ := json.Marshal(dto.GenerateQRRequest{Type: "EARN_POINTS", PointsAmount: 25})
	resp := performRequest(t, http.MethodPost, "/qr/generate", "/qr/generate", NewQRHandler(testhelpers.QRFacadeStub{}).Generate, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", resp.Code)
	}
}

func TestQRHandlerScan(t *testing.T) {
	body, _ := json.Marshal(dto.ScanQRRequest{QRData: "qr-payload"})
	resp := performRequest(t, http.MethodPost, "/qr/scan", "/qr/scan", NewQRHandler(testhelpers.QRFacadeStub{}).Scan, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out model.OpResult
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if !out.Success || out.PointsEarned != 25 {
		t.Fatalf("unexpected scan result %+v", out)
	}
}

func TestInsightsHandlerSentiment(t *testing.T) {
	body, _ := json.Marshal(dto.SentimentRequest{Text: "great service"})
	handler := NewInsightsHandler(testhelpers.InsightsFacadeStub{SentimentFn: func(ctx context.Context, text string) (*model.SentimentAnalysis, error) {
		if text != "great service" {
			t.Fatalf("unexpected text %q", text)
		}
		return &model.SentimentAnalysis{Sentiment: "positive", Confidence: 0.9}, nil
	}})
	resp := performRequest(t, http.MethodPost, "/insights/sentiment", "/insights/sentiment", handler.Sentiment, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodPost, "/insights/sentiment", "/insights/sentiment", NewInsightsHandler(testhelpers.InsightsFacadeStub{}).Sentiment, []byte(`{}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without text, got %d", resp.Code)
	}
}

func TestInsightsHandlerFinetune(t *testing.T) {
	body, _ := json.Marshal(dto.FinetuneRequest{ModelType: "sentiment"})
	handler := NewInsightsHandler(testhelpers.InsightsFacadeStub{FinetuneFn: func(context.Context, string, map[string]any) bool {
		return false
	}})
	resp := performRequest(t, http.MethodPost, "/insights/finetune", "/insights/finetune", handler.Finetune, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	var out dto.FinetuneResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if out.Success {
		t.Fatalf("expected failed finetune to report success=false")
	}
}

func TestHealthHandlerCheck(t *testing.T) {
	healthy := testhelpers.HealthReporterStub{Statuses: []worker.Status{
		{Name: "supabase", Healthy: true},
		{Name: "backend", Healthy: true},
	}}
	resp := performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(healthy).Check, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	degraded := testhelpers.HealthReporterStub{Statuses: []worker.Status{
		{Name: "supabase", Healthy: true},
		{Name: "aiservice", Healthy: false, Error: "timeout"},
	}}
	resp = performRequest(t, http.MethodGet, "/health", "/health", NewHealthHandler(degraded).Check, nil)
	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}
