package services

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"brainhealth/internal/models"
)

func TestLifestyleService_Create_DuplicateDate(t *testing.T) {
	svc := NewLifestyleService(
		&mockLifestyleRepo{CreateFn: func(_ *models.LifestyleEntry) error {
			return &pq.Error{Code: "23505", Constraint: "lifestyle_entries_user_id_entry_date_key"}
		}},
		&mockPatientRepo{},
		nil,
	)

	err := svc.Create(&models.LifestyleEntry{UserID: 42, EntryDate: time.Now()})
	assert.ErrorIs(t, err, ErrDuplicateDate)
}

func TestLifestyleService_Create_RecomputeSkippedWithoutPatientProfile(t *testing.T) {
	created := false
	svc := NewLifestyleService(
		&mockLifestyleRepo{CreateFn: func(_ *models.LifestyleEntry) error {
			created = true
			return nil
		}},
		&mockPatientRepo{GetByUserIDFn: func(userID int) (*models.Patient, error) {
			// у опекунов нет профиля пациента — запись сохраняется, пересчёта нет
			return nil, sql.ErrNoRows
		}},
		nil,
	)

	err := svc.Create(&models.LifestyleEntry{UserID: 42, EntryDate: time.Now()})
	assert.NoError(t, err)
	assert.True(t, created)
}

func TestLifestyleService_Create_TriggersRecompute(t *testing.T) {
	db, mock := newTxDB(t)
	mock.ExpectBegin()
	mock.ExpectRollback() // нет результата теста — пересчёт пропускается

	patient := &models.Patient{ID: 7, UserID: 42}
	assessments := NewAssessmentService(
		db,
		&mockPatientRepo{LockTxFn: func(_ *sql.Tx, _ int64) error { return nil }},
		&mockResultRepo{GetLatestScoreTxFn: func(_ *sql.Tx, _ int64) (float64, bool, error) {
			return 0, false, nil
		}},
		&mockLifestyleRepo{GetLatestByUserTxFn: func(_ *sql.Tx, _ int) (*models.LifestyleEntry, error) {
			return nil, nil
		}},
		&mockAssessmentRepo{},
		&mockRecommendationRepo{},
		&mockCaregiverRepo{},
		&mockUserRepo{},
		nil,
	)

	svc := NewLifestyleService(
		&mockLifestyleRepo{CreateFn: func(_ *models.LifestyleEntry) error { return nil }},
		&mockPatientRepo{GetByUserIDFn: func(_ int) (*models.Patient, error) { return patient, nil }},
		assessments,
	)

	assert.NoError(t, svc.Create(&models.LifestyleEntry{UserID: 42, EntryDate: time.Now()}))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLifestyleService_Update_NotFound(t *testing.T) {
	svc := NewLifestyleService(
		&mockLifestyleRepo{UpdateFn: func(_ *models.LifestyleEntry) error {
			return sql.ErrNoRows
		}},
		&mockPatientRepo{},
		nil,
	)

	// чужая или несуществующая запись: репозиторий не нашёл строку по (id, user_id)
	err := svc.Update(&models.LifestyleEntry{ID: 99, UserID: 42})
	assert.ErrorIs(t, err, ErrNotFound)
}
