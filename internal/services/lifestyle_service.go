package services

import (
	"database/sql"
	"fmt"
	"log"

	"brainhealth/internal/models"
	"brainhealth/internal/repositories"
)

type LifestyleService interface {
	Create(e *models.LifestyleEntry) error
	Update(e *models.LifestyleEntry) error
	List(userID, limit, offset int) ([]*models.LifestyleEntry, error)
	Latest(userID int) (*models.LifestyleEntry, error)
}

type lifestyleService struct {
	repo        repositories.LifestyleRepository
	patients    repositories.PatientRepository
	assessments *AssessmentService
}

func NewLifestyleService(repo repositories.LifestyleRepository, patients repositories.PatientRepository, assessments *AssessmentService) LifestyleService {
	return &lifestyleService{repo: repo, patients: patients, assessments: assessments}
}

// Create — одна запись на (user, date); дубликат даты → ErrDuplicateDate.
func (s *lifestyleService) Create(e *models.LifestyleEntry) error {
	if err := s.repo.Create(e); err != nil {
		if repositories.IsUniqueViolation(err) {
			return ErrDuplicateDate
		}
		return fmt.Errorf("create lifestyle entry: %w", err)
	}
	s.recompute(e.UserID)
	return nil
}

func (s *lifestyleService) Update(e *models.LifestyleEntry) error {
	if err := s.repo.Update(e); err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return fmt.Errorf("update lifestyle entry: %w", err)
	}
	s.recompute(e.UserID)
	return nil
}

func (s *lifestyleService) recompute(userID int) {
	patient, err := s.patients.GetByUserID(userID)
	if err != nil || patient == nil {
		log.Printf("[lifestyle] no patient profile for user_id=%d, recompute skipped (err=%v)", userID, err)
		return
	}
	if _, err := s.assessments.Recompute(patient); err != nil {
		log.Printf("[lifestyle] recompute failed for patient_id=%d: %v", patient.ID, err)
	}
}

func (s *lifestyleService) List(userID, limit, offset int) ([]*models.LifestyleEntry, error) {
	return s.repo.ListByUser(userID, limit, offset)
}

func (s *lifestyleService) Latest(userID int) (*models.LifestyleEntry, error) {
	return s.repo.GetLatestByUser(userID)
}
