package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
	"brainhealth/internal/services"
)

type CognitiveHandler struct {
	service  services.CognitiveService
	patients repositories.PatientRepository
}

func NewCognitiveHandler(service services.CognitiveService, patients repositories.PatientRepository) *CognitiveHandler {
	return &CognitiveHandler{service: service, patients: patients}
}

// GET /cognitive-test/questions
func (h *CognitiveHandler) Questions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"questions": h.service.Questions()})
}

// @Summary      Сдать когнитивный тест
// @Tags         Cognitive
// @Accept       json
// @Produce      json
// @Param        answers  body      object  true  "answers: [{question_id, answer}]"
// @Success      201      {object}  models.CognitiveTestResult
// @Failure      400      {object}  map[string]string
// @Router       /cognitive-test/submit [post]
// @Security     BearerAuth
func (h *CognitiveHandler) Submit(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	var req struct {
		Answers []models.SubmittedAnswer `json:"answers"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		log.Printf("[cognitive][submit] no patient profile for userID=%d: %v", userID, err)
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	result, err := h.service.Submit(patient, req.Answers)
	if err != nil {
		if errors.Is(err, services.ErrNoAnswers) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "answers are required"})
			return
		}
		log.Printf("[cognitive][submit] patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate test"})
		return
	}
	c.JSON(http.StatusCreated, result)
}

// GET /cognitive-test/history
func (h *CognitiveHandler) History(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 {
		limit = 20
	}

	history, err := h.service.History(patient.ID, limit, offset)
	if err != nil {
		log.Printf("[cognitive][history] patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	stats, err := h.service.Stats(patient.ID)
	if err != nil {
		log.Printf("[cognitive][history] stats patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"results": history, "stats": stats})
}
