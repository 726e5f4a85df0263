// Package session persists the client's only owned state: the bearer token,
// the current user, and the onboarding flag. It is the local-storage analog
// of the browser client this layer fronts; reads are synchronous and never
// touch the network, and no expiry check is applied to the cached token.
package session

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	pkgToken "github.com/tnyamakura/loyaltylink/internal/pkg/token"
)

// GuestUserID marks a session created without signing in. Providers treat it
// as a signal to serve deterministic fixtures instead of calling out.
const GuestUserID = "guest"

// state mirrors the browser local-storage keys the original client kept.
type state struct {
	AuthToken           string `json:"auth_token,omitempty"`
	UserID              string `json:"user_id,omitempty"`
	UserData            string `json:"user_data,omitempty"`
	OnboardingCompleted bool   `json:"onboarding_completed,omitempty"`
}

// Store is a file-backed session cache shared process-wide.
type Store struct {
	path   string
	logger *slog.Logger

	mu    sync.RWMutex
	state state
}

// New loads the session file if present. A corrupt file is discarded and
// logged rather than failing startup.
func New(path string, logger *slog.Logger) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("session file path must be provided")
	}
	s := &Store{path: path, logger: logger}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if err := json.Unmarshal(raw, &s.state); err != nil {
		logger.Warn("discarding corrupt session file", slog.String("path", path), slog.String("error", err.Error()))
		s.state = state{}
	}
	return s, nil
}

// Set replaces the cached session with the one just issued.
func (s *Store) Set(sess *model.Session) error {
	if sess == nil || sess.UserID == "" {
		return fmt.Errorf("session must carry a user id")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.AuthToken = sess.Token
	s.state.UserID = sess.UserID
	s.state.UserData = ""
	if sess.User != nil {
		data, err := json.Marshal(sess.User)
		if err != nil {
			return fmt.Errorf("serialize user: %w", err)
		}
		s.state.UserData = string(data)
	}
	return s.persist()
}

// SetGuest installs a local guest session without any network call.
func (s *Store) SetGuest() error {
	now := guestUser()
	return s.Set(&model.Session{
		Token:  pkgToken.Opaque(GuestUserID),
		UserID: GuestUserID,
		User:   now,
	})
}

// Token returns the cached bearer token, empty when signed out. Staleness is
// not checked here; a rejected token surfaces as a backend error.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AuthToken
}

// UserID returns the cached user identifier, empty when signed out.
func (s *Store) UserID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.UserID
}

// User decodes the cached user record. It returns nil when there is no
// session or the stored payload cannot be parsed.
func (s *Store) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.state.AuthToken == "" || s.state.UserID == "" || s.state.UserData == "" {
		return nil
	}
	var u model.User
	if err := json.Unmarshal([]byte(s.state.UserData), &u); err != nil {
		s.logger.Error("parse stored user data failed", slog.String("error", err.Error()))
		return nil
	}
	return &u
}

// IsGuest reports whether the current session is a guest session.
func (s *Store) IsGuest() bool {
	return s.UserID() == GuestUserID
}

// Authenticated reports whether any session (guest included) is cached.
func (s *Store) Authenticated() bool {
	return s.UserID() != ""
}

// Clear wipes the session. Calling it with nothing cached is a no-op, so
// repeated logouts stay safe.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	onboarding := s.state.OnboardingCompleted
	s.state = state{OnboardingCompleted: onboarding}
	return s.persist()
}

// CompleteOnboarding records that the user finished the intro flow. The flag
// survives logout, matching how the original client kept it.
func (s *Store) CompleteOnboarding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.OnboardingCompleted = true
	return s.persist()
}

// OnboardingCompleted reports whether the intro flow was finished.
func (s *Store) OnboardingCompleted() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.OnboardingCompleted
}

func (s *Store) persist() error {
	data, err := json.Marshal(s.state)
	if err != nil {
		return fmt.Errorf("serialize session: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write session file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace session file: %w", err)
	}
	return nil
}

func guestUser() *model.User {
	return &model.User{
		ID:        GuestUserID,
		Email:     "guest@example.com",
		FirstName: "Guest",
		LastName:  "User",
		Role:      model.RoleUser,
		IsActive:  true,
	}
}
