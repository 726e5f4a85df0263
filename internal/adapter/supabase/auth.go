package supabase

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	domainErrors "github.com/tnyamakura/loyaltylink/internal/domain/errors"
	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
)

type authUser struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type authResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        *authUser `json:"user"`
}

type signUpMetadata struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Role        string `json:"role"`
}

// SignIn authenticates with email/password grant and joins the profile row.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	query := url.Values{"grant_type": []string{"password"}}
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/token", query, map[string]string{
		"email":    email,
		"password": password,
	}, "")
	if err != nil {
		return nil, nil, err
	}

	var auth authResponse
	if err := c.do(req, &auth); err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusBadRequest || apiErr.Status == http.StatusUnauthorized) {
			return nil, nil, domainErrors.ErrInvalidCredentials
		}
		return nil, nil, err
	}
	if auth.User == nil {
		return nil, nil, domainErrors.ErrInvalidCredentials
	}

	profile, err := c.fetchProfile(ctx, auth.AccessToken, auth.User.ID)
	if err != nil {
		return nil, nil, err
	}

	user := profile.toUser(auth.User)
	return user, &model.Session{Token: auth.AccessToken, UserID: user.ID, User: user}, nil
}

// SignUp registers an identity, then best-effort creates the profile and a
// zero-balance points row. Failures past the identity step are logged, not
// rolled back; the remote identity survives either way.
func (c *Client) SignUp(ctx context.Context, params provider.SignUpParams) (*model.User, *model.Session, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/signup", nil, map[string]any{
		"email":    params.Email,
		"password": params.Password,
		"data": signUpMetadata{
			FirstName:   params.FirstName,
			LastName:    params.LastName,
			PhoneNumber: params.PhoneNumber,
			Role:        string(model.RoleUser),
		},
	}, "")
	if err != nil {
		return nil, nil, err
	}

	var auth authResponse
	if err := c.do(req, &auth); err != nil {
		var apiErr APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnprocessableEntity {
			return nil, nil, domainErrors.ErrAlreadyExists
		}
		return nil, nil, err
	}
	if auth.User == nil {
		return nil, nil, APIError{Status: http.StatusOK, Message: "signup completed but no user data received"}
	}

	if err := c.insertProfile(ctx, auth.AccessToken, auth.User, params); err != nil {
		c.logger.Error("profile creation failed", slog.String("user", auth.User.ID), slog.String("error", err.Error()))
	}
	if err := c.insertPointsRow(ctx, auth.AccessToken, auth.User.ID); err != nil {
		c.logger.Error("loyalty points initialization failed", slog.String("user", auth.User.ID), slog.String("error", err.Error()))
	}

	user := &model.User{
		ID:          auth.User.ID,
		Email:       auth.User.Email,
		FirstName:   params.FirstName,
		LastName:    params.LastName,
		PhoneNumber: params.PhoneNumber,
		Role:        model.RoleUser,
		IsActive:    true,
		CreatedAt:   auth.User.CreatedAt,
		UpdatedAt:   auth.User.CreatedAt,
	}
	return user, &model.Session{Token: auth.AccessToken, UserID: user.ID, User: user}, nil
}

// SignOut revokes the token remotely. Best effort: the caller clears local
// state regardless, so failures are only logged.
func (c *Client) SignOut(ctx context.Context, bearer string) error {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/v1/logout", nil, nil, bearer)
	if err != nil {
		c.logger.Warn("sign out request failed", slog.String("error", err.Error()))
		return nil
	}
	if err := c.do(req, nil); err != nil {
		c.logger.Warn("sign out failed", slog.String("error", err.Error()))
	}
	return nil
}

// CurrentUser resolves the active remote session for a token. A missing or
// rejected session yields (nil, nil), not an error.
func (c *Client) CurrentUser(ctx context.Context, bearer string) (*model.User, error) {
	if bearer == "" {
		return nil, nil
	}
	req, err := c.newRequest(ctx, http.MethodGet, "/auth/v1/user", nil, nil, bearer)
	if err != nil {
		return nil, err
	}

	var user authUser
	if err := c.do(req, &user); err != nil {
		c.logger.Warn("current user lookup failed", slog.String("error", err.Error()))
		return nil, nil
	}

	profile, err := c.fetchProfile(ctx, bearer, user.ID)
	if err != nil {
		c.logger.Warn("profile lookup failed", slog.String("user", user.ID), slog.String("error", err.Error()))
		return nil, nil
	}
	return profile.toUser(&user), nil
}
