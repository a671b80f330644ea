package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPendingVerificationRepository_Upsert_OverwritesCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingVerificationRepository(db)

	mock.ExpectQuery(`ON CONFLICT \(caregiver_id, patient_id\) DO UPDATE`).
		WithArgs(int64(1), int64(5), "123456").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), time.Now()))

	pv, err := repo.Upsert(1, 5, "123456")
	require.NoError(t, err)
	assert.Equal(t, int64(3), pv.ID)
	assert.Equal(t, "123456", pv.VerificationCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingVerificationRepository_ConsumeTx_Match(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingVerificationRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM pending_verifications`).
		WithArgs(int64(1), int64(5), "123456", "900 seconds").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(3)))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	ok, err := repo.ConsumeTx(tx, 1, 5, "123456", 15*time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPendingVerificationRepository_ConsumeTx_WrongOrExpiredCode(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPendingVerificationRepository(db)

	// неверный код и протухшая заявка дают одинаковый результат: ноль строк
	mock.ExpectBegin()
	mock.ExpectQuery(`DELETE FROM pending_verifications`).
		WithArgs(int64(1), int64(5), "000000", "900 seconds").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	ok, err := repo.ConsumeTx(tx, 1, 5, "000000", 15*time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}
