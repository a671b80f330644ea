package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type PatientRepository interface {
	Create(p *models.Patient) error
	GetByID(id int64) (*models.Patient, error)
	GetByUserID(userID int) (*models.Patient, error)
	GetByUserEmail(email string) (*models.Patient, error)
	LockTx(tx *sql.Tx, id int64) error
}

type patientRepository struct {
	DB *sql.DB
}

func NewPatientRepository(db *sql.DB) PatientRepository {
	return &patientRepository{DB: db}
}

func (r *patientRepository) Create(p *models.Patient) error {
	const q = `
		INSERT INTO patients (user_id, age, gender, conditions)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`
	return r.DB.QueryRow(q, p.UserID, p.Age, p.Gender, p.Conditions).Scan(&p.ID)
}

func (r *patientRepository) scan(row *sql.Row) (*models.Patient, error) {
	p := &models.Patient{}
	if err := row.Scan(&p.ID, &p.UserID, &p.Age, &p.Gender, &p.Conditions); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *patientRepository) GetByID(id int64) (*models.Patient, error) {
	return r.scan(r.DB.QueryRow(
		`SELECT id, user_id, age, gender, conditions FROM patients WHERE id = $1`, id))
}

func (r *patientRepository) GetByUserID(userID int) (*models.Patient, error) {
	return r.scan(r.DB.QueryRow(
		`SELECT id, user_id, age, gender, conditions FROM patients WHERE user_id = $1`, userID))
}

// GetByUserEmail — поиск пациента по email его учётки (для заявок опекуна).
func (r *patientRepository) GetByUserEmail(email string) (*models.Patient, error) {
	const q = `
		SELECT p.id, p.user_id, p.age, p.gender, p.conditions
		FROM patients p
		JOIN users u ON u.id = p.user_id
		WHERE u.email = $1
	`
	return r.scan(r.DB.QueryRow(q, email))
}

// LockTx захватывает строку пациента до конца транзакции —
// так пересчёты по одному пациенту выполняются строго по очереди.
func (r *patientRepository) LockTx(tx *sql.Tx, id int64) error {
	var got int64
	if err := tx.QueryRow(`SELECT id FROM patients WHERE id = $1 FOR UPDATE`, id).Scan(&got); err != nil {
		return fmt.Errorf("patient lock: %w", err)
	}
	return nil
}
