package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type RecommendationRepository interface {
	DeleteIncompleteTx(tx *sql.Tx, patientID int64) error
	BulkInsertTx(tx *sql.Tx, recs []*models.Recommendation) error
	ListByPatient(patientID int64, onlyActive bool) ([]*models.Recommendation, error)
	MarkCompleted(id, patientID int64) error
}

type recommendationRepository struct {
	DB *sql.DB
}

func NewRecommendationRepository(db *sql.DB) RecommendationRepository {
	return &recommendationRepository{DB: db}
}

// DeleteIncompleteTx — выполненные рекомендации переживают пересчёт.
func (r *recommendationRepository) DeleteIncompleteTx(tx *sql.Tx, patientID int64) error {
	if _, err := tx.Exec(
		`DELETE FROM recommendations WHERE patient_id = $1 AND completed = FALSE`, patientID,
	); err != nil {
		return fmt.Errorf("recommendations delete incomplete: %w", err)
	}
	return nil
}

func (r *recommendationRepository) BulkInsertTx(tx *sql.Tx, recs []*models.Recommendation) error {
	const q = `
		INSERT INTO recommendations (patient_id, category, title, description, priority, completed)
		VALUES ($1,$2,$3,$4,$5,FALSE)
		RETURNING id, created_at
	`
	for _, rec := range recs {
		if err := tx.QueryRow(q,
			rec.PatientID, rec.Category, rec.Title, rec.Description, rec.Priority,
		).Scan(&rec.ID, &rec.CreatedAt); err != nil {
			return fmt.Errorf("recommendation insert: %w", err)
		}
	}
	return nil
}

func (r *recommendationRepository) ListByPatient(patientID int64, onlyActive bool) ([]*models.Recommendation, error) {
	q := `
		SELECT id, patient_id, category, title, description, priority, completed, created_at
		FROM recommendations
		WHERE patient_id = $1
	`
	if onlyActive {
		q += ` AND completed = FALSE`
	}
	q += ` ORDER BY id`

	rows, err := r.DB.Query(q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Recommendation
	for rows.Next() {
		rec := &models.Recommendation{}
		if err := rows.Scan(
			&rec.ID, &rec.PatientID, &rec.Category, &rec.Title,
			&rec.Description, &rec.Priority, &rec.Completed, &rec.CreatedAt,
		); err != nil {
			return nil, err
		}
		res = append(res, rec)
	}
	return res, rows.Err()
}

func (r *recommendationRepository) MarkCompleted(id, patientID int64) error {
	res, err := r.DB.Exec(
		`UPDATE recommendations SET completed = TRUE WHERE id = $1 AND patient_id = $2`, id, patientID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
