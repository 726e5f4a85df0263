package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tnyamakura/loyaltylink/internal/domain/model"
)

// AdminHandler serves the management dashboard and CRUD surface.
type AdminHandler struct {
	facade AdminFacade
}

// NewAdminHandler creates AdminHandler instance.
func NewAdminHandler(facade AdminFacade) *AdminHandler {
	return &AdminHandler{facade: facade}
}

// Overview handles GET /api/admin/overview.
func (h *AdminHandler) Overview(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.AdminOverview(c.Request.Context()))
}

// Users handles GET /api/admin/users.
func (h *AdminHandler) Users(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.AdminUsers(c.Request.Context()))
}

// Partners handles GET /api/admin/partners.
func (h *AdminHandler) Partners(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.AdminPartners(c.Request.Context()))
}

// Quizzes handles GET /api/admin/quizzes.
func (h *AdminHandler) Quizzes(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.AdminQuizzes(c.Request.Context()))
}

// Promotions handles GET /api/admin/promotions.
func (h *AdminHandler) Promotions(c *gin.Context) {
	c.JSON(http.StatusOK, h.facade.AdminPromotions(c.Request.Context()))
}

// CreateUser handles POST /api/admin/users.
func (h *AdminHandler) CreateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.facade.CreateUser(c.Request.Context(), user)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateUser handles PUT /api/admin/users/:id.
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.UpdateUser(c.Request.Context(), c.Param("id"), user)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	if err := h.facade.DeleteUser(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFor(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePartner handles POST /api/admin/partners.
func (h *AdminHandler) CreatePartner(c *gin.Context) {
	var partner model.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.facade.CreatePartner(c.Request.Context(), partner)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePartner handles PUT /api/admin/partners/:id.
func (h *AdminHandler) UpdatePartner(c *gin.Context) {
	var partner model.Partner
	if err := c.ShouldBindJSON(&partner); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.UpdatePartner(c.Request.Context(), c.Param("id"), partner)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePartner handles DELETE /api/admin/partners/:id.
func (h *AdminHandler) DeletePartner(c *gin.Context) {
	if err := h.facade.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFor(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreateQuiz handles POST /api/admin/quizzes.
func (h *AdminHandler) CreateQuiz(c *gin.Context) {
	var quiz model.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.facade.CreateQuiz(c.Request.Context(), quiz)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateQuiz handles PUT /api/admin/quizzes/:id.
func (h *AdminHandler) UpdateQuiz(c *gin.Context) {
	var quiz model.Quiz
	if err := c.ShouldBindJSON(&quiz); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.UpdateQuiz(c.Request.Context(), c.Param("id"), quiz)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteQuiz handles DELETE /api/admin/quizzes/:id.
func (h *AdminHandler) DeleteQuiz(c *gin.Context) {
	if err := h.facade.DeleteQuiz(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFor(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// CreatePromotion handles POST /api/admin/promotions.
func (h *AdminHandler) CreatePromotion(c *gin.Context) {
	var promo model.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	created, err := h.facade.CreatePromotion(c.Request.Context(), promo)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdatePromotion handles PUT /api/admin/promotions/:id.
func (h *AdminHandler) UpdatePromotion(c *gin.Context) {
	var promo model.Promotion
	if err := c.ShouldBindJSON(&promo); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}
	updated, err := h.facade.UpdatePromotion(c.Request.Context(), c.Param("id"), promo)
	if err != nil {
		c.Status(statusFor(err))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePromotion handles DELETE /api/admin/promotions/:id.
func (h *AdminHandler) DeletePromotion(c *gin.Context) {
	if err := h.facade.DeletePromotion(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFor(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegenerateQuiz handles POST /api/admin/quizzes/:id/regenerate.
func (h *AdminHandler) RegenerateQuiz(c *gin.Context) {
	if err := h.facade.RegenerateQuizQuestions(c.Request.Context(), c.Param("id")); err != nil {
		c.Status(statusFor(err))
		return
	}
	c.Status(http.StatusOK)
}
