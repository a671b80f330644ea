package services

import (
	"database/sql"
	"fmt"
	"log"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

// Балл ниже порога — шлём алерт опекунам, которые включили уведомления.
const lowScoreAlertThreshold = 60

type AssessmentService struct {
	db              *sql.DB
	patients        repositories.PatientRepository
	results         repositories.CognitiveResultRepository
	lifestyle       repositories.LifestyleRepository
	assessments     repositories.AssessmentRepository
	recommendations repositories.RecommendationRepository
	caregivers      repositories.CaregiverRepository
	users           repositories.UserRepository
	tg              *TelegramService // может быть nil
}

func NewAssessmentService(
	db *sql.DB,
	patients repositories.PatientRepository,
	results repositories.CognitiveResultRepository,
	lifestyle repositories.LifestyleRepository,
	assessments repositories.AssessmentRepository,
	recommendations repositories.RecommendationRepository,
	caregivers repositories.CaregiverRepository,
	users repositories.UserRepository,
	tg *TelegramService,
) *AssessmentService {
	return &AssessmentService{
		db:              db,
		patients:        patients,
		results:         results,
		lifestyle:       lifestyle,
		assessments:     assessments,
		recommendations: recommendations,
		caregivers:      caregivers,
		users:           users,
		tg:              tg,
	}
}

// Recompute пересобирает составной балл и рекомендации пациента.
// Вся последовательность (свежие данные → upsert балла → удалить
// невыполненные рекомендации → вставить новые) идёт в одной транзакции
// под блокировкой строки пациента: два конкурентных пересчёта по одному
// пациенту выполняются строго по очереди.
// Возвращает (nil, nil), если у пациента ещё нет теста или lifestyle-записи.
func (s *AssessmentService) Recompute(patient *models.Patient) (*models.BrainHealthAssessment, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("recompute begin: %w", err)
	}
	defer tx.Rollback()

	if err := s.patients.LockTx(tx, patient.ID); err != nil {
		return nil, err
	}

	cogScore, hasResult, err := s.results.GetLatestScoreTx(tx, patient.ID)
	if err != nil {
		return nil, err
	}
	entry, err := s.lifestyle.GetLatestByUserTx(tx, patient.UserID)
	if err != nil {
		return nil, err
	}
	if !hasResult || entry == nil {
		log.Printf("[assessment][recompute] patient_id=%d skipped (has_result=%v has_entry=%v)",
			patient.ID, hasResult, entry != nil)
		return nil, nil
	}

	score := BrainHealthScore(cogScore, entry)

	assessment := &models.BrainHealthAssessment{
		PatientID:          patient.ID,
		Score:              score,
		LastCognitiveScore: cogScore,
		LifestyleEntryID:   entry.ID,
	}
	if err := s.assessments.UpsertTx(tx, assessment); err != nil {
		return nil, err
	}

	if err := s.recommendations.DeleteIncompleteTx(tx, patient.ID); err != nil {
		return nil, err
	}
	recs := GenerateRecommendations(score, entry)
	for _, rec := range recs {
		rec.PatientID = patient.ID
	}
	if err := s.recommendations.BulkInsertTx(tx, recs); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("recompute commit: %w", err)
	}
	log.Printf("[assessment][recompute] patient_id=%d score=%.1f recs=%d", patient.ID, score, len(recs))

	if score < lowScoreAlertThreshold {
		s.alertCaregivers(patient, score)
	}
	return assessment, nil
}

// alertCaregivers — fire-and-forget: ошибки доставки только логируем.
func (s *AssessmentService) alertCaregivers(patient *models.Patient, score float64) {
	if s.tg == nil {
		return
	}
	caregivers, err := s.caregivers.ListByPatient(patient.ID)
	if err != nil {
		log.Printf("[assessment][alert] list caregivers failed for patient_id=%d: %v", patient.ID, err)
		return
	}
	for _, cg := range caregivers {
		u, err := s.users.GetByID(cg.UserID)
		if err != nil || u == nil {
			log.Printf("[assessment][alert] caregiver user lookup failed: caregiver_id=%d err=%v", cg.ID, err)
			continue
		}
		if !u.NotifyAlertsTelegram || u.TelegramChatID == 0 {
			continue
		}
		text := fmt.Sprintf("⚠️ Brain health score of your patient dropped to <b>%.0f</b>. Check the dashboard.", score)
		if err := s.tg.SendMessage(u.TelegramChatID, text); err != nil {
			log.Printf("[assessment][alert] telegram send failed: caregiver_id=%d err=%v", cg.ID, err)
		}
	}
}

func (s *AssessmentService) GetByPatient(patientID int64) (*models.BrainHealthAssessment, error) {
	return s.assessments.GetByPatient(patientID)
}
