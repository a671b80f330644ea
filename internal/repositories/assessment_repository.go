package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type AssessmentRepository interface {
	UpsertTx(tx *sql.Tx, a *models.BrainHealthAssessment) error
	GetByPatient(patientID int64) (*models.BrainHealthAssessment, error)
}

type assessmentRepository struct {
	DB *sql.DB
}

func NewAssessmentRepository(db *sql.DB) AssessmentRepository {
	return &assessmentRepository{DB: db}
}

// UpsertTx — одна живая строка на пациента.
func (r *assessmentRepository) UpsertTx(tx *sql.Tx, a *models.BrainHealthAssessment) error {
	const q = `
		INSERT INTO brain_health_assessments
			(patient_id, score, last_cognitive_score, lifestyle_entry_id, assessed_at)
		VALUES ($1,$2,$3,$4,NOW())
		ON CONFLICT (patient_id) DO UPDATE
		SET score = EXCLUDED.score,
		    last_cognitive_score = EXCLUDED.last_cognitive_score,
		    lifestyle_entry_id = EXCLUDED.lifestyle_entry_id,
		    assessed_at = EXCLUDED.assessed_at
		RETURNING id, assessed_at
	`
	if err := tx.QueryRow(q,
		a.PatientID, a.Score, a.LastCognitiveScore, a.LifestyleEntryID,
	).Scan(&a.ID, &a.AssessedAt); err != nil {
		return fmt.Errorf("assessment upsert: %w", err)
	}
	return nil
}

func (r *assessmentRepository) GetByPatient(patientID int64) (*models.BrainHealthAssessment, error) {
	const q = `
		SELECT id, patient_id, score, last_cognitive_score, lifestyle_entry_id, assessed_at
		FROM brain_health_assessments
		WHERE patient_id = $1
	`
	a := &models.BrainHealthAssessment{}
	err := r.DB.QueryRow(q, patientID).Scan(
		&a.ID, &a.PatientID, &a.Score, &a.LastCognitiveScore, &a.LifestyleEntryID, &a.AssessedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}
