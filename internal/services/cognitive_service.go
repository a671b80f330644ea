package services

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

type CognitiveService interface {
	Questions() []models.CognitiveTestQuestion
	Score(answers []models.SubmittedAnswer) (correct, total int, percentage float64, err error)
	Submit(patient *models.Patient, answers []models.SubmittedAnswer) (*models.CognitiveTestResult, error)
	History(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error)
	Stats(patientID int64) (*repositories.CognitiveStats, error)
}

type cognitiveService struct {
	results     repositories.CognitiveResultRepository
	assessments *AssessmentService
}

func NewCognitiveService(results repositories.CognitiveResultRepository, assessments *AssessmentService) CognitiveService {
	return &cognitiveService{results: results, assessments: assessments}
}

// Questions отдаёт банк без правильных ответов (их в моделях и нет).
func (s *cognitiveService) Questions() []models.CognitiveTestQuestion {
	out := make([]models.CognitiveTestQuestion, len(questionBank))
	copy(out, questionBank)
	return out
}

// Score — неизвестный question_id идёт в total, но не в correct.
func (s *cognitiveService) Score(answers []models.SubmittedAnswer) (int, int, float64, error) {
	if len(answers) == 0 {
		return 0, 0, 0, ErrNoAnswers
	}
	correct := 0
	for _, a := range answers {
		if expected, ok := answerKey[a.QuestionID]; ok && expected == a.Answer {
			correct++
		}
	}
	total := len(answers)
	percentage := math.Round(float64(correct)/float64(total)*CognitiveScale*10) / 10
	return correct, total, percentage, nil
}

func (s *cognitiveService) Submit(patient *models.Patient, answers []models.SubmittedAnswer) (*models.CognitiveTestResult, error) {
	correct, total, percentage, err := s.Score(answers)
	if err != nil {
		return nil, err
	}

	details, err := json.Marshal(answers)
	if err != nil {
		return nil, fmt.Errorf("marshal answer details: %w", err)
	}

	result := &models.CognitiveTestResult{
		PatientID:    patient.ID,
		Score:        percentage,
		CorrectCount: correct,
		TotalCount:   total,
		Details:      details,
	}
	if err := s.results.Create(result); err != nil {
		return nil, fmt.Errorf("store test result: %w", err)
	}
	log.Printf("[cognitive][submit] patient_id=%d correct=%d total=%d score=%.1f", patient.ID, correct, total, percentage)

	// пересчёт составного балла; без lifestyle-записи он просто пропустится
	if _, err := s.assessments.Recompute(patient); err != nil {
		log.Printf("[cognitive][submit] recompute failed for patient_id=%d: %v", patient.ID, err)
	}

	return result, nil
}

func (s *cognitiveService) History(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error) {
	return s.results.ListByPatient(patientID, limit, offset)
}

func (s *cognitiveService) Stats(patientID int64) (*repositories.CognitiveStats, error) {
	return s.results.GetStats(patientID)
}
