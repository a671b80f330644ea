package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"brainhealth/internal/models"
)

type PendingVerificationRepository interface {
	Upsert(caregiverID, patientID int64, code string) (*models.PendingVerification, error)
	ConsumeTx(tx *sql.Tx, caregiverID, patientID int64, code string, ttl time.Duration) (bool, error)
}

type pendingVerificationRepository struct {
	DB *sql.DB
}

func NewPendingVerificationRepository(db *sql.DB) PendingVerificationRepository {
	return &pendingVerificationRepository{DB: db}
}

// Upsert — повторный запрос по той же паре перетирает код и created_at.
func (r *pendingVerificationRepository) Upsert(caregiverID, patientID int64, code string) (*models.PendingVerification, error) {
	const q = `
		INSERT INTO pending_verifications (caregiver_id, patient_id, verification_code, created_at)
		VALUES ($1,$2,$3,NOW())
		ON CONFLICT (caregiver_id, patient_id) DO UPDATE
		SET verification_code = EXCLUDED.verification_code,
		    created_at = EXCLUDED.created_at
		RETURNING id, created_at
	`
	pv := &models.PendingVerification{
		CaregiverID:      caregiverID,
		PatientID:        patientID,
		VerificationCode: code,
	}
	if err := r.DB.QueryRow(q, caregiverID, patientID, code).Scan(&pv.ID, &pv.CreatedAt); err != nil {
		return nil, fmt.Errorf("pending_verification upsert: %w", err)
	}
	return pv, nil
}

// ConsumeTx — атомарное одноразовое списание кода: точное совпадение пары и кода,
// не старше TTL. false — нет подходящей записи (неверный код ИЛИ нет заявки —
// наружу это не различаем).
func (r *pendingVerificationRepository) ConsumeTx(tx *sql.Tx, caregiverID, patientID int64, code string, ttl time.Duration) (bool, error) {
	const q = `
		DELETE FROM pending_verifications
		WHERE caregiver_id = $1
		  AND patient_id = $2
		  AND verification_code = $3
		  AND created_at > NOW() - $4::interval
		RETURNING id
	`
	interval := fmt.Sprintf("%d seconds", int(ttl.Seconds()))
	var id int64
	err := tx.QueryRow(q, caregiverID, patientID, code, interval).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("pending_verification consume: %w", err)
	}
	return true, nil
}
