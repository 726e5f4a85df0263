package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/provider"
	"github.com/tnyamakura/loyaltylink/internal/server/http/dto"
)

// AuthHandler processes login, signup, and session lookups.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: user})
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	user, err := h.facade.Signup(c.Request.Context(), provider.SignUpParams{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: user})
}

// Logout handles POST /api/auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context()); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.Status(http.StatusOK)
}

// Me handles GET /api/auth/me. No cached session answers 204, mirroring the
// null the session read returns.
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.facade.CurrentUser()
	if user == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: user})
}

// Guest handles POST /api/auth/guest.
func (h *AuthHandler) Guest(c *gin.Context) {
	if err := h.facade.ContinueAsGuest(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.SessionResponse{User: h.facade.CurrentUser()})
}

// CompleteOnboarding handles POST /api/auth/onboarding.
func (h *AuthHandler) CompleteOnboarding(c *gin.Context) {
	if err := h.facade.CompleteOnboarding(); err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	c.JSON(http.StatusOK, dto.OnboardingResponse{Completed: true})
}

// Onboarding handles GET /api/auth/onboarding.
func (h *AuthHandler) Onboarding(c *gin.Context) {
	c.JSON(http.StatusOK, dto.OnboardingResponse{Completed: h.facade.OnboardingCompleted()})
}
