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

type CaregiverHandler struct {
	linking    *services.LinkingService
	dashboards *services.DashboardService
	caregivers repositories.CaregiverRepository
	users      repositories.UserRepository
}

func NewCaregiverHandler(
	linking *services.LinkingService,
	dashboards *services.DashboardService,
	caregivers repositories.CaregiverRepository,
	users repositories.UserRepository,
) *CaregiverHandler {
	return &CaregiverHandler{
		linking:    linking,
		dashboards: dashboards,
		caregivers: caregivers,
		users:      users,
	}
}

func (h *CaregiverHandler) caregiverFromCtx(c *gin.Context) (*models.Caregiver, bool) {
	userID, _ := getUserAndRole(c)
	cg, err := h.caregivers.GetByUserID(userID)
	if err != nil || cg == nil {
		log.Printf("[caregiver] no caregiver profile for userID=%d: %v", userID, err)
		c.JSON(http.StatusForbidden, gin.H{"error": "caregiver profile required"})
		return nil, false
	}
	return cg, true
}

// @Summary      Запросить доступ к пациенту
// @Description  Шлёт 6-значный код на почту пациента; повторный запрос перетирает код
// @Tags         Caregiver
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "patient_email"
// @Success      200      {object}  map[string]string
// @Failure      404      {object}  map[string]string
// @Failure      409      {object}  map[string]string
// @Router       /caregiver/request-access [post]
// @Security     BearerAuth
func (h *CaregiverHandler) RequestAccess(c *gin.Context) {
	cg, ok := h.caregiverFromCtx(c)
	if !ok {
		return
	}

	var req struct {
		PatientEmail string `json:"patient_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := getUserAndRole(c)
	caregiverName := ""
	if u, err := h.users.GetByID(userID); err == nil && u != nil {
		caregiverName = u.Username
	}

	if err := h.linking.RequestLink(cg, caregiverName, req.PatientEmail); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, services.ErrAlreadyLinked):
			c.JSON(http.StatusConflict, gin.H{"error": "Patient already linked"})
		default:
			log.Printf("[caregiver][request-access] caregiver_id=%d: %v", cg.ID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create access request"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Verification code sent to patient"})
}

// @Summary      Подтвердить код доступа
// @Tags         Caregiver
// @Accept       json
// @Produce      json
// @Param        request  body      object  true  "patient_email + verification_code"
// @Success      200      {object}  map[string]string
// @Failure      400      {object}  map[string]string
// @Router       /caregiver/verify-access [post]
// @Security     BearerAuth
func (h *CaregiverHandler) VerifyAccess(c *gin.Context) {
	cg, ok := h.caregiverFromCtx(c)
	if !ok {
		return
	}

	var req struct {
		PatientEmail     string `json:"patient_email" binding:"required,email"`
		VerificationCode string `json:"verification_code" binding:"required,len=6"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.linking.ConfirmLink(cg, req.PatientEmail, req.VerificationCode); err != nil {
		if errors.Is(err, services.ErrInvalidCode) {
			// «нет заявки» и «неверный код» наружу выглядят одинаково
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid verification code"})
			return
		}
		log.Printf("[caregiver][verify-access] caregiver_id=%d: %v", cg.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Verification failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Patient linked"})
}

// GET /caregiver/patients
func (h *CaregiverHandler) ListPatients(c *gin.Context) {
	cg, ok := h.caregiverFromCtx(c)
	if !ok {
		return
	}

	patients, err := h.linking.ListPatients(cg.ID)
	if err != nil {
		log.Printf("[caregiver][patients] caregiver_id=%d: %v", cg.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load patients"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"patients": patients})
}

// GET /caregiver/patients/:id/dashboard
func (h *CaregiverHandler) PatientDashboard(c *gin.Context) {
	cg, ok := h.caregiverFromCtx(c)
	if !ok {
		return
	}

	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	dash, err := h.dashboards.BuildForCaregiver(cg, patientID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Patient not found"})
		case errors.Is(err, services.ErrNotLinked):
			c.JSON(http.StatusForbidden, gin.H{"error": "not linked to this patient"})
		default:
			log.Printf("[caregiver][dashboard] caregiver_id=%d patient_id=%d: %v", cg.ID, patientID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		}
		return
	}
	c.JSON(http.StatusOK, dash)
}

// GET /caregiver/patients/:id/report — PDF-отчёт
func (h *CaregiverHandler) PatientReport(c *gin.Context) {
	cg, ok := h.caregiverFromCtx(c)
	if !ok {
		return
	}

	patientID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	path, err := h.dashboards.BuildReport(cg, patientID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "No assessment for this patient yet"})
		case errors.Is(err, services.ErrNotLinked):
			c.JSON(http.StatusForbidden, gin.H{"error": "not linked to this patient"})
		default:
			log.Printf("[caregiver][report] caregiver_id=%d patient_id=%d: %v", cg.ID, patientID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate report"})
		}
		return
	}
	c.FileAttachment(path, "brain_health_report.pdf")
}
