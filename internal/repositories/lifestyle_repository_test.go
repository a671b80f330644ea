package repositories

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brainhealth/internal/models"
)

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

var lifestyleCols = []string{
	"id", "user_id", "entry_date",
	"physical_activity", "healthy_diet", "social_engagement", "good_sleep",
	"smoking", "alcohol", "stress", "notes", "created_at",
}

func TestLifestyleRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLifestyleRepository(db)

	entryDate := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	e := &models.LifestyleEntry{
		UserID:           42,
		EntryDate:        entryDate,
		PhysicalActivity: 3,
		HealthyDiet:      4,
		GoodSleep:        7,
		Notes:            "walked in the park",
	}

	mock.ExpectQuery(`INSERT INTO lifestyle_entries`).
		WithArgs(42, entryDate, 3, 4, 0, 7, 0, 0, 0, "walked in the park").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(11), time.Now()))

	require.NoError(t, repo.Create(e))
	assert.Equal(t, int64(11), e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLifestyleRepository_Update_OwnerScoped(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLifestyleRepository(db)

	e := &models.LifestyleEntry{ID: 11, UserID: 42, PhysicalActivity: 5}

	mock.ExpectExec(`UPDATE lifestyle_entries`).
		WithArgs(5, 0, 0, 0, 0, 0, 0, "", int64(11), 42).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(e))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLifestyleRepository_Update_ForeignEntry(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLifestyleRepository(db)

	// WHERE id AND user_id не совпали — ноль строк
	mock.ExpectExec(`UPDATE lifestyle_entries`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(&models.LifestyleEntry{ID: 11, UserID: 999})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLifestyleRepository_GetLatestByUser_PicksNewestDate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLifestyleRepository(db)

	latest := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`ORDER BY entry_date DESC, id DESC`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(lifestyleCols).
			AddRow(int64(11), 42, latest, 3, 4, 2, 7, 0, 0, 1, "ok", time.Now()))

	e, err := repo.GetLatestByUser(42)
	require.NoError(t, err)
	require.NotNil(t, e)
	assert.Equal(t, latest, e.EntryDate)
	assert.Equal(t, "ok", e.Notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLifestyleRepository_GetLatestByUser_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLifestyleRepository(db)

	mock.ExpectQuery(`ORDER BY entry_date DESC, id DESC`).
		WithArgs(42).
		WillReturnRows(sqlmock.NewRows(lifestyleCols))

	e, err := repo.GetLatestByUser(42)
	assert.NoError(t, err)
	assert.Nil(t, e, "нет записей — (nil, nil), не ошибка")
	assert.NoError(t, mock.ExpectationsWereMet())
}
