package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brainhealth/internal/services"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// @Summary      Регистрация
// @Description  Создаёт учётку и профиль роли (patient или caregiver)
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        signup  body      services.RegisterRequest  true  "Данные регистрации"
// @Success      201     {object}  map[string]interface{}
// @Failure      400     {object}  map[string]string
// @Failure      409     {object}  map[string]string
// @Router       /signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.service.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		case errors.Is(err, services.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "Email already exists"})
		default:
			log.Printf("[user][signup] service error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create account"})
		}
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Sign up successful", "user": user})
}

func (h *UserHandler) Me(c *gin.Context) {
	userID, _ := getUserAndRole(c)
	profile, err := h.service.GetProfile(userID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("[user][me] userID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateTelegram — привязка Telegram-чата для алертов (опекуны).
func (h *UserHandler) UpdateTelegram(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req struct {
		ChatID int64 `json:"chat_id" binding:"required"`
		Notify bool  `json:"notify"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.service.UpdateTelegramLink(userID, req.ChatID, req.Notify); err != nil {
		log.Printf("[user][telegram] userID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update telegram settings"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Telegram settings updated"})
}
