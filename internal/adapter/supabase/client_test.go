package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client, err := NewClient(srv.URL, "anon-key", testLogger())
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client, srv
}

func TestNewClientValidatesInput(t *testing.T) {
	if _, err := NewClient("://bad-url", "key", testLogger()); err == nil {
		t.Fatal("expected error for invalid url")
	}
	if _, err := NewClient("/relative", "key", testLogger()); err == nil {
		t.Fatal("expected error for relative url")
	}
	if _, err := NewClient("https://project.supabase.co", "", testLogger()); err == nil {
		t.Fatal("expected error for empty api key")
	}
}

func TestSignInJoinsProfile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			if r.URL.Query().Get("grant_type") != "password" {
				t.Errorf("expected password grant, got %s", r.URL.RawQuery)
			}
			if r.Header.Get("apikey") != "anon-key" {
				t.Errorf("expected apikey header")
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-token",
				"user":         map[string]any{"id": "u1", "email": "a@b.com"},
			})
		case "/rest/v1/profiles":
			if r.Header.Get("Authorization") != "Bearer jwt-token" {
				t.Errorf("expected session bearer on profile fetch, got %s", r.Header.Get("Authorization"))
			}
			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "u1", "email": "a@b.com", "first_name": "A", "last_name": "B",
				"role": "USER", "is_active": true,
			}})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	user, sess, err := client.SignIn(context.Background(), "a@b.com", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.FirstName != "A" || user.LastName != "B" || user.Role != model.RoleUser {
		t.Fatalf("unexpected user: %+v", user)
	}
	if sess.Token != "jwt-token" || sess.UserID != "u1" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestSignInInvalidCredentials(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error_description": "Invalid login credentials"})
	}))

	_, _, err := client.SignIn(context.Background(), "a@b.com", "wrong")
	if !errors.Is(err, domainErrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestSignInFailsWithoutProfile(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/token":
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-token",
				"user":         map[string]any{"id": "u1", "email": "a@b.com"},
			})
		case "/rest/v1/profiles":
			json.NewEncoder(w).Encode([]map[string]any{})
		}
	}))

	if _, _, err := client.SignIn(context.Background(), "a@b.com", "x"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found for missing profile, got %v", err)
	}
}

func TestSignUpCreatesProfileAndPointsRow(t *testing.T) {
	var mu sync.Mutex
	inserts := map[string]map[string]any{}

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/signup":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			meta, _ := body["data"].(map[string]any)
			if meta["role"] != "USER" {
				t.Errorf("expected USER role metadata, got %v", meta["role"])
			}
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-token",
				"user":         map[string]any{"id": "u1", "email": "a@b.com"},
			})
		case "/rest/v1/profiles", "/rest/v1/loyalty_points":
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			mu.Lock()
			inserts[r.URL.Path] = body
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
		}
	}))

	user, sess, err := client.SignUp(context.Background(), provider.SignUpParams{
		Email: "a@b.com", Password: "x", FirstName: "A", LastName: "B",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != model.RoleUser || !user.IsActive {
		t.Fatalf("expected active USER, got %+v", user)
	}
	if sess.Token != "jwt-token" {
		t.Fatalf("expected session token, got %+v", sess)
	}

	mu.Lock()
	defer mu.Unlock()
	if _, ok := inserts["/rest/v1/profiles"]; !ok {
		t.Fatal("expected profile row insert")
	}
	points, ok := inserts["/rest/v1/loyalty_points"]
	if !ok {
		t.Fatal("expected loyalty points row insert")
	}
	for _, field := range []string{"points_balance", "total_earned", "total_redeemed"} {
		if points[field] != float64(0) {
			t.Fatalf("expected zero %s, got %v", field, points[field])
		}
	}
}

func TestSignUpToleratesProfileInsertFailure(t *testing.T) {
	// The identity is never rolled back when the secondary inserts fail.
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/v1/signup":
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "jwt-token",
				"user":         map[string]any{"id": "u1", "email": "a@b.com"},
			})
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	user, _, err := client.SignUp(context.Background(), provider.SignUpParams{Email: "a@b.com", Password: "x"})
	if err != nil {
		t.Fatalf("expected signup to survive insert failures, got %v", err)
	}
	if user.ID != "u1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestSignUpDuplicate(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]string{"msg": "User already registered"})
	}))

	_, _, err := client.SignUp(context.Background(), provider.SignUpParams{Email: "a@b.com", Password: "x"})
	if !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestSignOutNeverFails(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	if err := client.SignOut(context.Background(), "any-token"); err != nil {
		t.Fatalf("sign out must be best effort, got %v", err)
	}
}

func TestLoyaltyPoints(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("user_id") != "eq.u1" {
			t.Errorf("expected user_id filter, got %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]map[string]any{{
			"id": "lp1", "user_id": "u1", "points_balance": 100, "total_earned": 150, "total_redeemed": 50,
		}})
	}))

	points, err := client.LoyaltyPoints(context.Background(), "u1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if points.PointsBalance != 100 || points.TotalEarned != 150 || points.TotalRedeemed != 50 {
		t.Fatalf("unexpected points: %+v", points)
	}
}

func TestLoyaltyPointsMissingRow(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{})
	}))

	if _, err := client.LoyaltyPoints(context.Background(), "u1"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAddPointsReadModifyWrite(t *testing.T) {
	var mu sync.Mutex
	var patched map[string]any
	var transaction map[string]any

	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rest/v1/loyalty_points" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "lp1", "user_id": "u1", "points_balance": 100, "total_earned": 150, "total_redeemed": 50,
			}})
		case r.URL.Path == "/rest/v1/loyalty_points" && r.Method == http.MethodPatch:
			mu.Lock()
			json.NewDecoder(r.Body).Decode(&patched)
			mu.Unlock()
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/rest/v1/transactions" && r.Method == http.MethodPost:
			mu.Lock()
			json.NewDecoder(r.Body).Decode(&transaction)
			mu.Unlock()
			w.WriteHeader(http.StatusCreated)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))

	updated, err := client.AddPoints(context.Background(), provider.AddPointsParams{
		UserID: "u1", Points: 50, Reason: "Quiz completed",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.PointsBalance != 150 {
		t.Fatalf("expected new balance 150, got %d", updated.PointsBalance)
	}
	if updated.TotalEarned != 200 {
		t.Fatalf("expected total earned 200, got %d", updated.TotalEarned)
	}

	mu.Lock()
	defer mu.Unlock()
	if patched["points_balance"] != float64(150) || patched["total_earned"] != float64(200) {
		t.Fatalf("unexpected patch body: %v", patched)
	}
	if transaction["type"] != "EARN" || transaction["points"] != float64(50) || transaction["reason"] != "Quiz completed" {
		t.Fatalf("unexpected transaction row: %v", transaction)
	}
}

func TestAddPointsSurvivesTransactionInsertFailure(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/rest/v1/loyalty_points" && r.Method == http.MethodGet:
			json.NewEncoder(w).Encode([]map[string]any{{
				"id": "lp1", "user_id": "u1", "points_balance": 10, "total_earned": 10,
			}})
		case r.URL.Path == "/rest/v1/loyalty_points" && r.Method == http.MethodPatch:
			w.WriteHeader(http.StatusNoContent)
		case r.URL.Path == "/rest/v1/transactions":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	updated, err := client.AddPoints(context.Background(), provider.AddPointsParams{UserID: "u1", Points: 5, Reason: "r"})
	if err != nil {
		t.Fatalf("expected accrual to survive missing audit row, got %v", err)
	}
	if updated.PointsBalance != 15 {
		t.Fatalf("expected balance 15, got %d", updated.PointsBalance)
	}
}

func TestHealth(t *testing.T) {
	healthy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/v1/health" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(http.StatusOK)
	}))
	if err := healthy.Health(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	unhealthy, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	if err := unhealthy.Health(context.Background()); err == nil {
		t.Fatal("expected error from unhealthy service")
	}
}
