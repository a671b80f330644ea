package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"brainhealth/internal/repositories"
	"brainhealth/internal/services"
)

type DashboardHandler struct {
	service         *services.DashboardService
	patients        repositories.PatientRepository
	recommendations repositories.RecommendationRepository
}

func NewDashboardHandler(
	service *services.DashboardService,
	patients repositories.PatientRepository,
	recommendations repositories.RecommendationRepository,
) *DashboardHandler {
	return &DashboardHandler{service: service, patients: patients, recommendations: recommendations}
}

// @Summary      Дашборд пациента
// @Tags         Dashboard
// @Produce      json
// @Success      200  {object}  services.Dashboard
// @Router       /dashboard [get]
// @Security     BearerAuth
func (h *DashboardHandler) Get(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	dash, err := h.service.Build(patient)
	if err != nil {
		log.Printf("[dashboard][get] patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GET /dashboard/access-log — кто из опекунов смотрел данные пациента
func (h *DashboardHandler) AccessLog(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if limit < 1 {
		limit = 50
	}

	logs, err := h.service.AccessLog(patient.ID, limit, offset)
	if err != nil {
		log.Printf("[dashboard][access-log] patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load access log"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_log": logs})
}

// GET /recommendations
func (h *DashboardHandler) ListRecommendations(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	onlyActive := c.DefaultQuery("active", "false") == "true"
	recs, err := h.recommendations.ListByPatient(patient.ID, onlyActive)
	if err != nil {
		log.Printf("[recommendations][list] patient_id=%d: %v", patient.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load recommendations"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": recs})
}

// POST /recommendations/:id/complete
// Выполненная рекомендация переживает пересчёты.
func (h *DashboardHandler) CompleteRecommendation(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	patient, err := h.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		c.JSON(http.StatusForbidden, gin.H{"error": "patient profile required"})
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recommendation ID"})
		return
	}

	if err := h.recommendations.MarkCompleted(id, patient.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Recommendation not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Recommendation completed"})
}
