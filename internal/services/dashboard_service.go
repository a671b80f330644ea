package services

import (
	"fmt"
	"log"

	"brainhealth/internal/models"
	"brainhealth/internal/pdf"
	"brainhealth/internal/repositories"
)

// DashboardPatient — короткая карточка пациента в шапке дашборда.
type DashboardPatient struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
}

// Dashboard — read-only композиция данных пациента для выдачи.
type Dashboard struct {
	Patient         *DashboardPatient             `json:"patient"`
	Assessment      *models.BrainHealthAssessment `json:"assessment"`
	Recommendations []*models.Recommendation      `json:"recommendations"`
	LatestLifestyle *models.LifestyleEntry        `json:"latest_lifestyle"`
	CognitiveStats  *repositories.CognitiveStats  `json:"cognitive_stats"`
}

type DashboardService struct {
	patients        repositories.PatientRepository
	users           repositories.UserRepository
	caregivers      repositories.CaregiverRepository
	assessments     repositories.AssessmentRepository
	recommendations repositories.RecommendationRepository
	lifestyle       repositories.LifestyleRepository
	results         repositories.CognitiveResultRepository
	accessLog       *repositories.AccessLogRepository
	reports         pdf.Generator
}

func NewDashboardService(
	patients repositories.PatientRepository,
	users repositories.UserRepository,
	caregivers repositories.CaregiverRepository,
	assessments repositories.AssessmentRepository,
	recommendations repositories.RecommendationRepository,
	lifestyle repositories.LifestyleRepository,
	results repositories.CognitiveResultRepository,
	accessLog *repositories.AccessLogRepository,
	reports pdf.Generator,
) *DashboardService {
	return &DashboardService{
		patients:        patients,
		users:           users,
		caregivers:      caregivers,
		assessments:     assessments,
		recommendations: recommendations,
		lifestyle:       lifestyle,
		results:         results,
		accessLog:       accessLog,
		reports:         reports,
	}
}

// Build собирает дашборд пациента. Пишущих операций здесь нет.
func (s *DashboardService) Build(patient *models.Patient) (*Dashboard, error) {
	user, err := s.users.GetByID(patient.UserID)
	if err != nil {
		return nil, fmt.Errorf("dashboard user: %w", err)
	}

	assessment, err := s.assessments.GetByPatient(patient.ID)
	if err != nil {
		return nil, fmt.Errorf("dashboard assessment: %w", err)
	}
	recs, err := s.recommendations.ListByPatient(patient.ID, false)
	if err != nil {
		return nil, fmt.Errorf("dashboard recommendations: %w", err)
	}
	latest, err := s.lifestyle.GetLatestByUser(patient.UserID)
	if err != nil {
		return nil, fmt.Errorf("dashboard lifestyle: %w", err)
	}
	stats, err := s.results.GetStats(patient.ID)
	if err != nil {
		return nil, fmt.Errorf("dashboard cognitive stats: %w", err)
	}

	return &Dashboard{
		Patient: &DashboardPatient{
			ID:       patient.ID,
			Username: user.Username,
			Age:      patient.Age,
			Gender:   patient.Gender,
		},
		Assessment:      assessment,
		Recommendations: recs,
		LatestLifestyle: latest,
		CognitiveStats:  stats,
	}, nil
}

// BuildForCaregiver — тот же дашборд, но только по привязанному пациенту,
// и каждый просмотр фиксируется в журнале доступа.
func (s *DashboardService) BuildForCaregiver(caregiver *models.Caregiver, patientID int64) (*Dashboard, error) {
	patient, err := s.authorize(caregiver, patientID, "viewed dashboard")
	if err != nil {
		return nil, err
	}
	return s.Build(patient)
}

// BuildReport — PDF-отчёт для опекуна по привязанному пациенту.
func (s *DashboardService) BuildReport(caregiver *models.Caregiver, patientID int64) (string, error) {
	patient, err := s.authorize(caregiver, patientID, "downloaded report")
	if err != nil {
		return "", err
	}

	dash, err := s.Build(patient)
	if err != nil {
		return "", err
	}
	if dash.Assessment == nil {
		return "", ErrNotFound
	}

	// в отчёт идут только невыполненные рекомендации
	var active []*models.Recommendation
	for _, rec := range dash.Recommendations {
		if !rec.Completed {
			active = append(active, rec)
		}
	}

	return s.reports.GenerateAssessmentReport(pdf.ReportData{
		PatientName:     dash.Patient.Username,
		PatientAge:      patient.Age,
		Score:           dash.Assessment.Score,
		CognitiveScore:  dash.Assessment.LastCognitiveScore,
		AssessedAt:      dash.Assessment.AssessedAt,
		Lifestyle:       dash.LatestLifestyle,
		Recommendations: active,
		Filename:        fmt.Sprintf("report_patient_%d.pdf", patient.ID),
	})
}

// AccessLog — пациент видит, кто и когда смотрел его данные.
func (s *DashboardService) AccessLog(patientID int64, limit, offset int) ([]*models.CaregiverAccessLog, error) {
	return s.accessLog.ListByPatient(patientID, limit, offset)
}

func (s *DashboardService) authorize(caregiver *models.Caregiver, patientID int64, action string) (*models.Patient, error) {
	patient, err := s.patients.GetByID(patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, ErrNotFound
	}
	linked, err := s.caregivers.IsLinked(caregiver.ID, patient.ID)
	if err != nil {
		return nil, err
	}
	if !linked {
		return nil, ErrNotLinked
	}
	if err := s.accessLog.Create(caregiver.ID, patient.ID, action); err != nil {
		// журнал не должен ронять просмотр
		log.Printf("[dashboard] access log write failed: caregiver_id=%d patient_id=%d: %v", caregiver.ID, patient.ID, err)
	}
	return patient, nil
}
