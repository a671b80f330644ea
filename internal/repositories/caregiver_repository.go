package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type CaregiverRepository interface {
	Create(cg *models.Caregiver) error
	GetByUserID(userID int) (*models.Caregiver, error)
	IsLinked(caregiverID, patientID int64) (bool, error)
	LinkTx(tx *sql.Tx, caregiverID, patientID int64) error
	ListPatients(caregiverID int64) ([]*models.Patient, error)
	ListByPatient(patientID int64) ([]*models.Caregiver, error)
}

type caregiverRepository struct {
	DB *sql.DB
}

func NewCaregiverRepository(db *sql.DB) CaregiverRepository {
	return &caregiverRepository{DB: db}
}

func (r *caregiverRepository) Create(cg *models.Caregiver) error {
	const q = `
		INSERT INTO caregivers (user_id, license_number)
		VALUES ($1,$2)
		RETURNING id
	`
	return r.DB.QueryRow(q, cg.UserID, cg.LicenseNumber).Scan(&cg.ID)
}

func (r *caregiverRepository) GetByUserID(userID int) (*models.Caregiver, error) {
	cg := &models.Caregiver{}
	err := r.DB.QueryRow(
		`SELECT id, user_id, license_number FROM caregivers WHERE user_id = $1`, userID,
	).Scan(&cg.ID, &cg.UserID, &cg.LicenseNumber)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return cg, nil
}

func (r *caregiverRepository) IsLinked(caregiverID, patientID int64) (bool, error) {
	const q = `
		SELECT EXISTS(
			SELECT 1 FROM caregiver_patients
			WHERE caregiver_id = $1 AND patient_id = $2
		)
	`
	var linked bool
	if err := r.DB.QueryRow(q, caregiverID, patientID).Scan(&linked); err != nil {
		return false, fmt.Errorf("caregiver is_linked: %w", err)
	}
	return linked, nil
}

// LinkTx добавляет связь в рамках транзакции подтверждения кода.
func (r *caregiverRepository) LinkTx(tx *sql.Tx, caregiverID, patientID int64) error {
	const q = `
		INSERT INTO caregiver_patients (caregiver_id, patient_id)
		VALUES ($1,$2)
		ON CONFLICT (caregiver_id, patient_id) DO NOTHING
	`
	if _, err := tx.Exec(q, caregiverID, patientID); err != nil {
		return fmt.Errorf("caregiver link: %w", err)
	}
	return nil
}

func (r *caregiverRepository) ListPatients(caregiverID int64) ([]*models.Patient, error) {
	const q = `
		SELECT p.id, p.user_id, p.age, p.gender, p.conditions
		FROM caregiver_patients cp
		JOIN patients p ON p.id = cp.patient_id
		WHERE cp.caregiver_id = $1
		ORDER BY p.id
	`
	rows, err := r.DB.Query(q, caregiverID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Patient
	for rows.Next() {
		p := &models.Patient{}
		if err := rows.Scan(&p.ID, &p.UserID, &p.Age, &p.Gender, &p.Conditions); err != nil {
			return nil, err
		}
		res = append(res, p)
	}
	return res, rows.Err()
}

// ListByPatient — все опекуны пациента (для алертов о падении балла).
func (r *caregiverRepository) ListByPatient(patientID int64) ([]*models.Caregiver, error) {
	const q = `
		SELECT c.id, c.user_id, c.license_number
		FROM caregiver_patients cp
		JOIN caregivers c ON c.id = cp.caregiver_id
		WHERE cp.patient_id = $1
		ORDER BY c.id
	`
	rows, err := r.DB.Query(q, patientID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.Caregiver
	for rows.Next() {
		cg := &models.Caregiver{}
		if err := rows.Scan(&cg.ID, &cg.UserID, &cg.LicenseNumber); err != nil {
			return nil, err
		}
		res = append(res, cg)
	}
	return res, rows.Err()
}
