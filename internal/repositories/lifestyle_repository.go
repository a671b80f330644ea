package repositories

import (
	"database/sql"
	"fmt"

	"brainhealth/internal/models"
)

type LifestyleRepository interface {
	Create(e *models.LifestyleEntry) error
	Update(e *models.LifestyleEntry) error
	GetByID(id int64) (*models.LifestyleEntry, error)
	GetLatestByUser(userID int) (*models.LifestyleEntry, error)
	GetLatestByUserTx(tx *sql.Tx, userID int) (*models.LifestyleEntry, error)
	ListByUser(userID, limit, offset int) ([]*models.LifestyleEntry, error)
}

type lifestyleRepository struct {
	DB *sql.DB
}

func NewLifestyleRepository(db *sql.DB) LifestyleRepository {
	return &lifestyleRepository{DB: db}
}

const lifestyleColumns = `
	id, user_id, entry_date,
	physical_activity, healthy_diet, social_engagement, good_sleep,
	smoking, alcohol, stress, notes, created_at
`

func scanLifestyle(scan func(dest ...any) error) (*models.LifestyleEntry, error) {
	e := &models.LifestyleEntry{}
	var notes sql.NullString
	err := scan(
		&e.ID, &e.UserID, &e.EntryDate,
		&e.PhysicalActivity, &e.HealthyDiet, &e.SocialEngagement, &e.GoodSleep,
		&e.Smoking, &e.Alcohol, &e.Stress, &notes, &e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if notes.Valid {
		e.Notes = notes.String
	}
	return e, nil
}

func (r *lifestyleRepository) Create(e *models.LifestyleEntry) error {
	const q = `
		INSERT INTO lifestyle_entries (
			user_id, entry_date,
			physical_activity, healthy_diet, social_engagement, good_sleep,
			smoking, alcohol, stress, notes
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		e.UserID, e.EntryDate,
		e.PhysicalActivity, e.HealthyDiet, e.SocialEngagement, e.GoodSleep,
		e.Smoking, e.Alcohol, e.Stress, e.Notes,
	).Scan(&e.ID, &e.CreatedAt)
}

func (r *lifestyleRepository) Update(e *models.LifestyleEntry) error {
	const q = `
		UPDATE lifestyle_entries
		SET
			physical_activity=$1, healthy_diet=$2, social_engagement=$3, good_sleep=$4,
			smoking=$5, alcohol=$6, stress=$7, notes=$8
		WHERE id=$9 AND user_id=$10
	`
	res, err := r.DB.Exec(q,
		e.PhysicalActivity, e.HealthyDiet, e.SocialEngagement, e.GoodSleep,
		e.Smoking, e.Alcohol, e.Stress, e.Notes,
		e.ID, e.UserID,
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

func (r *lifestyleRepository) GetByID(id int64) (*models.LifestyleEntry, error) {
	row := r.DB.QueryRow(`SELECT `+lifestyleColumns+` FROM lifestyle_entries WHERE id = $1`, id)
	e, err := scanLifestyle(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return e, nil
}

// свежая запись: по дате, при равенстве — по id (последняя вставка побеждает)
const latestLifestyleQuery = `
	SELECT ` + lifestyleColumns + `
	FROM lifestyle_entries
	WHERE user_id = $1
	ORDER BY entry_date DESC, id DESC
	LIMIT 1
`

func (r *lifestyleRepository) GetLatestByUser(userID int) (*models.LifestyleEntry, error) {
	row := r.DB.QueryRow(latestLifestyleQuery, userID)
	e, err := scanLifestyle(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lifestyle latest: %w", err)
	}
	return e, nil
}

func (r *lifestyleRepository) GetLatestByUserTx(tx *sql.Tx, userID int) (*models.LifestyleEntry, error) {
	row := tx.QueryRow(latestLifestyleQuery, userID)
	e, err := scanLifestyle(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("lifestyle latest: %w", err)
	}
	return e, nil
}

func (r *lifestyleRepository) ListByUser(userID, limit, offset int) ([]*models.LifestyleEntry, error) {
	const q = `
		SELECT ` + lifestyleColumns + `
		FROM lifestyle_entries
		WHERE user_id = $1
		ORDER BY entry_date DESC, id DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.Query(q, userID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var res []*models.LifestyleEntry
	for rows.Next() {
		e, err := scanLifestyle(rows.Scan)
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, rows.Err()
}
