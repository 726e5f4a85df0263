package restapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
	pkgToken "github.com/tnyamakura/loyaltylink/internal/pkg/token"
)

type loginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// SignIn authenticates against the backend's own credential store. It is the
// second link of the auth chain, reached when the managed provider rejects.
func (c *Client) SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error) {
	body := map[string]string{"email": email, "password": password}
	var data loginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &data); err != nil {
		return nil, nil, err
	}
	if data.Token == "" || data.User == nil {
		return nil, nil, fmt.Errorf("login failed: no token in response")
	}

	// Some backend builds omit the id on the user object; the JWT subject
	// always carries it.
	userID := data.User.ID
	if userID == "" {
		sub, err := pkgToken.Subject(data.Token)
		if err != nil {
			return nil, nil, fmt.Errorf("login failed: %w", err)
		}
		userID = sub
		data.User.ID = sub
	}
	return data.User, &model.Session{Token: data.Token, UserID: userID, User: data.User}, nil
}

// SignOut is a no-op: the backend keeps no server-side session, dropping the
// token locally is the whole logout.
func (c *Client) SignOut(ctx context.Context, token string) error {
	return nil
}
