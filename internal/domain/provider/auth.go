// Package provider declares the capability interfaces the unified facade
// chains over. Each backing service implements the slices of this surface it
// can serve; the facade walks an ordered list of implementations until one
// succeeds.
package provider

import (
	"context"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// Named is the minimal contract every provider satisfies. The name is used
// only for logging which link of the fallback chain answered or failed.
type Named interface {
	Name() string
}

// SignUpParams carries the fields collected on the registration screen.
type SignUpParams struct {
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
}

// Auth covers credential verification and sign-out.
type Auth interface {
	Named
	SignIn(ctx context.Context, email, password string) (*model.User, *model.Session, error)
	SignOut(ctx context.Context, token string) error
}

// Registrar creates new accounts. Only the managed provider registers users;
// the custom backend never receives sign-ups.
type Registrar interface {
	Named
	SignUp(ctx context.Context, params SignUpParams) (*model.User, *model.Session, error)
}
