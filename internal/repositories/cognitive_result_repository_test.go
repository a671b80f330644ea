package repositories

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brainhealth/internal/models"
)

func TestCognitiveResultRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCognitiveResultRepository(db)

	res := &models.CognitiveTestResult{
		PatientID:    7,
		Score:        6.7,
		CorrectCount: 2,
		TotalCount:   3,
		Details:      []byte(`[{"question_id":1,"answer":"12"}]`),
	}

	mock.ExpectQuery(`INSERT INTO cognitive_test_results`).
		WithArgs(int64(7), 6.7, 2, 3, []byte(`[{"question_id":1,"answer":"12"}]`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(1), time.Now()))

	require.NoError(t, repo.Create(res))
	assert.Equal(t, int64(1), res.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCognitiveResultRepository_GetLatestScoreTx(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCognitiveResultRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(8.5))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	score, ok, err := repo.GetLatestScoreTx(tx, 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 8.5, score)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCognitiveResultRepository_GetLatestScoreTx_NoResults(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCognitiveResultRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"score"}))

	tx, err := db.Begin()
	require.NoError(t, err)
	defer tx.Rollback()

	_, ok, err := repo.GetLatestScoreTx(tx, 7)
	require.NoError(t, err)
	assert.False(t, ok, "нет результатов — не ошибка")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCognitiveResultRepository_GetStats(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCognitiveResultRepository(db)

	mock.ExpectQuery(`COUNT\(\*\)`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg", "max"}).AddRow(3, 6.5, 9.0))
	mock.ExpectQuery(`ORDER BY created_at DESC, id DESC`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"score"}).AddRow(7.0))

	st, err := repo.GetStats(7)
	require.NoError(t, err)
	assert.Equal(t, 3, st.TestsTaken)
	assert.Equal(t, 6.5, st.AverageScore)
	assert.Equal(t, 9.0, st.BestScore)
	assert.Equal(t, 7.0, st.LatestScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCognitiveResultRepository_GetStats_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCognitiveResultRepository(db)

	mock.ExpectQuery(`COUNT\(\*\)`).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"count", "avg", "max"}).AddRow(0, 0.0, 0.0))

	st, err := repo.GetStats(7)
	require.NoError(t, err)
	assert.Zero(t, st.TestsTaken)
	assert.Zero(t, st.LatestScore)
	assert.NoError(t, mock.ExpectationsWereMet())
}
