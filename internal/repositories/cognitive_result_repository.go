package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

// CognitiveStats — агрегаты по истории тестов пациента.
type CognitiveStats struct {
	TestsTaken   int     `json:"tests_taken"`
	AverageScore float64 `json:"average_score"`
	BestScore    float64 `json:"best_score"`
	LatestScore  float64 `json:"latest_score"`
}

type CognitiveResultRepository interface {
	Create(res *models.CognitiveTestResult) error
	ListByPatient(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error)
	GetLatestScoreTx(tx *sql.Tx, patientID int64) (float64, bool, error)
	GetStats(patientID int64) (*CognitiveStats, error)
}

type cognitiveResultRepository struct {
	DB *sql.DB
}

func NewCognitiveResultRepository(db *sql.DB) CognitiveResultRepository {
	return &cognitiveResultRepository{DB: db}
}

func (r *cognitiveResultRepository) Create(res *models.CognitiveTestResult) error {
	const q = `
		INSERT INTO cognitive_test_results (patient_id, score, correct_count, total_count, details)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		res.PatientID, res.Score, res.CorrectCount, res.TotalCount, []byte(res.Details),
	).Scan(&res.ID, &res.CreatedAt)
}

func (r *cognitiveResultRepository) ListByPatient(patientID int64, limit, offset int) ([]*models.CognitiveTestResult, error) {
	const q = `
		SELECT id, patient_id, score, correct_count, total_count, details, created_at
		FROM cognitive_test_results
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(q, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.CognitiveTestResult
	for rows.Next() {
		t := &models.CognitiveTestResult{}
		var details []byte
		if err := rows.Scan(&t.ID, &t.PatientID, &t.Score, &t.CorrectCount, &t.TotalCount, &details, &t.CreatedAt); err != nil {
			return nil, err
		}
		t.Details = details
		res = append(res, t)
	}
	return res, rows.Err()
}

// GetLatestScoreTx — свежий балл в рамках транзакции пересчёта.
// Второе значение false, если у пациента ещё нет ни одного результата.
func (r *cognitiveResultRepository) GetLatestScoreTx(tx *sql.Tx, patientID int64) (float64, bool, error) {
	const q = `
		SELECT score
		FROM cognitive_test_results
		WHERE patient_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`
	var score float64
	if err := tx.QueryRow(q, patientID).Scan(&score); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("cognitive latest score: %w", err)
	}
	return score, true, nil
}

func (r *cognitiveResultRepository) GetStats(patientID int64) (*CognitiveStats, error) {
	const q = `
		SELECT
			COUNT(*),
			COALESCE(AVG(score),0),
			COALESCE(MAX(score),0)
		FROM cognitive_test_results
		WHERE patient_id = $1
	`
	st := &CognitiveStats{}
	if err := r.DB.QueryRow(q, patientID).Scan(&st.TestsTaken, &st.AverageScore, &st.BestScore); err != nil {
		return nil, fmt.Errorf("cognitive stats: %w", err)
	}
	if st.TestsTaken > 0 {
		const latest = `
			SELECT score FROM cognitive_test_results
			WHERE patient_id = $1
			ORDER BY created_at DESC, id DESC
			LIMIT 1
		`
		if err := r.DB.QueryRow(latest, patientID).Scan(&st.LatestScore); err != nil {
			return nil, fmt.Errorf("cognitive stats latest: %w", err)
		}
	}
	return st, nil
}
