package dto

import "github.com/tnyamakura/loyaltylink/internal/domain/model"

// LoginRequest describes the credential payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest describes the registration payload.
type SignupRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
}

// SessionResponse is returned after a successful login or signup.
type SessionResponse struct {
	User *model.User `json:"user"`
}

// OnboardingResponse reports the one-time onboarding flag.
type OnboardingResponse struct {
	Completed bool `json:"completed"`
}
