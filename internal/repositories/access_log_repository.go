package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type AccessLogRepository struct {
	DB *sql.DB
}

func NewAccessLogRepository(db *sql.DB) *AccessLogRepository {
	return &AccessLogRepository{DB: db}
}

func (r *AccessLogRepository) Create(caregiverID, patientID int64, action string) error {
	const q = `
		INSERT INTO caregiver_access_logs (caregiver_id, patient_id, action, access_time)
		VALUES ($1,$2,$3,NOW())
	`
	if _, err := r.DB.Exec(q, caregiverID, patientID, action); err != nil {
		return fmt.Errorf("access_log create: %w", err)
	}
	return nil
}

func (r *AccessLogRepository) ListByPatient(patientID int64, limit, offset int) ([]*models.CaregiverAccessLog, error) {
	const q = `
		SELECT id, caregiver_id, patient_id, action, access_time
		FROM caregiver_access_logs
		WHERE patient_id = $1
		ORDER BY access_time DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(q, patientID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.CaregiverAccessLog
	for rows.Next() {
		l := &models.CaregiverAccessLog{}
		if err := rows.Scan(&l.ID, &l.CaregiverID, &l.PatientID, &l.Action, &l.AccessTime); err != nil {
			return nil, err
		}
		res = append(res, l)
	}
	return res, rows.Err()
}
