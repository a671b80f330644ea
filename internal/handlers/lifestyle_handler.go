package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"brainhealth/internal/models"
	"brainhealth/internal/services"
)

type LifestyleHandler struct {
	service services.LifestyleService
}

type lifestyleRequest struct {
	EntryDate        string `json:"entry_date"` // YYYY-MM-DD; пусто — сегодня
	PhysicalActivity int    `json:"physical_activity"`
	HealthyDiet      int    `json:"healthy_diet"`
	SocialEngagement int    `json:"social_engagement"`
	GoodSleep        int    `json:"good_sleep"`
	Smoking          int    `json:"smoking"`
	Alcohol          int    `json:"alcohol"`
	Stress           int    `json:"stress"`
	Notes            string `json:"notes"`
}

func NewLifestyleHandler(service services.LifestyleService) *LifestyleHandler {
	return &LifestyleHandler{service: service}
}

// @Summary      Добавить запись образа жизни
// @Tags         Lifestyle
// @Accept       json
// @Produce      json
// @Param        entry  body      lifestyleRequest  true  "Факторы за день"
// @Success      201    {object}  models.LifestyleEntry
// @Failure      409    {object}  map[string]string
// @Router       /lifestyle [post]
// @Security     BearerAuth
func (h *LifestyleHandler) Create(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req lifestyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entryDate := time.Now()
	if req.EntryDate != "" {
		t, err := time.Parse("2006-01-02", req.EntryDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid entry_date (YYYY-MM-DD)"})
			return
		}
		entryDate = t
	}

	entry := &models.LifestyleEntry{
		UserID:           userID,
		EntryDate:        entryDate,
		PhysicalActivity: req.PhysicalActivity,
		HealthyDiet:      req.HealthyDiet,
		SocialEngagement: req.SocialEngagement,
		GoodSleep:        req.GoodSleep,
		Smoking:          req.Smoking,
		Alcohol:          req.Alcohol,
		Stress:           req.Stress,
		Notes:            req.Notes,
	}

	if err := h.service.Create(entry); err != nil {
		if errors.Is(err, services.ErrDuplicateDate) {
			c.JSON(http.StatusConflict, gin.H{"error": "entry for this date already exists"})
			return
		}
		log.Printf("[lifestyle][create] userID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save entry"})
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// PUT /lifestyle/:id
func (h *LifestyleHandler) Update(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid entry ID"})
		return
	}

	var req lifestyleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry := &models.LifestyleEntry{
		ID:               id,
		UserID:           userID, // чужую запись не тронем: WHERE id AND user_id
		PhysicalActivity: req.PhysicalActivity,
		HealthyDiet:      req.HealthyDiet,
		SocialEngagement: req.SocialEngagement,
		GoodSleep:        req.GoodSleep,
		Smoking:          req.Smoking,
		Alcohol:          req.Alcohol,
		Stress:           req.Stress,
		Notes:            req.Notes,
	}

	if err := h.service.Update(entry); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		log.Printf("[lifestyle][update] userID=%d id=%d: %v", userID, id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update entry"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Entry updated"})
}

// GET /lifestyle
func (h *LifestyleHandler) List(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "30"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 {
		limit = 30
	}

	entries, err := h.service.List(userID, limit, offset)
	if err != nil {
		log.Printf("[lifestyle][list] userID=%d: %v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load entries"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}
