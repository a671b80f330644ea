package repositories

import (
	"database/sql"
	"time"

	"brainhealth/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByUsername(username string) (*models.User, error)

	// refresh helpers
	UpdateRefresh(userID int, token string, expiresAt time.Time) error
	RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error)
	ClearRefresh(userID int) error
	GetByRefreshToken(token string) (*models.User, error)

	// Telegram helpers
	UpdateTelegramLink(userID int, chatID int64, enable bool) error
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

const userColumns = `
	id, username, email, password_hash, role_id,
	refresh_token, refresh_expires_at, refresh_revoked,
	COALESCE(telegram_chat_id,0), COALESCE(notify_alerts_telegram,FALSE),
	created_at
`

func (r *userRepository) scanUser(row *sql.Row) (*models.User, error) {
	u := &models.User{}
	var (
		rt  sql.NullString
		rte sql.NullTime
		rr  sql.NullBool
	)
	err := row.Scan(
		&u.ID, &u.Username, &u.Email, &u.PasswordHash, &u.RoleID,
		&rt, &rte, &rr,
		&u.TelegramChatID, &u.NotifyAlertsTelegram,
		&u.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if rt.Valid {
		s := rt.String
		u.RefreshToken = &s
	}
	if rte.Valid {
		t := rte.Time
		u.RefreshExpiresAt = &t
	}
	if rr.Valid {
		u.RefreshRevoked = rr.Bool
	}
	return u, nil
}

func (r *userRepository) Create(user *models.User) error {
	const q = `
		INSERT INTO users (
			username, email, password_hash, role_id,
			refresh_token, refresh_expires_at, refresh_revoked,
			telegram_chat_id, notify_alerts_telegram
		)
		VALUES ($1,$2,$3,$4,NULL,NULL,FALSE,0,FALSE)
		RETURNING id, created_at
	`
	return r.DB.QueryRow(q,
		user.Username,
		user.Email,
		user.PasswordHash,
		user.RoleID,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE email = $1`, email))
}

func (r *userRepository) GetByUsername(username string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE username = $1`, username))
}

// ===== refresh helpers =====

func (r *userRepository) UpdateRefresh(userID int, token string, expiresAt time.Time) error {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE id=$3
	`
	_, err := r.DB.Exec(q, token, expiresAt, userID)
	return err
}

func (r *userRepository) RotateRefresh(oldToken, newToken string, newExpiresAt time.Time) (*models.User, error) {
	const q = `
		UPDATE users
		SET refresh_token=$1, refresh_expires_at=$2, refresh_revoked=FALSE
		WHERE refresh_token=$3
		RETURNING ` + userColumns
	return r.scanUser(r.DB.QueryRow(q, newToken, newExpiresAt, oldToken))
}

func (r *userRepository) ClearRefresh(userID int) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET refresh_token=NULL, refresh_expires_at=NULL, refresh_revoked=TRUE
		WHERE id=$1
	`, userID)
	return err
}

func (r *userRepository) GetByRefreshToken(token string) (*models.User, error) {
	return r.scanUser(r.DB.QueryRow(`SELECT `+userColumns+` FROM users WHERE refresh_token = $1`, token))
}

// ===== telegram helpers =====

func (r *userRepository) UpdateTelegramLink(userID int, chatID int64, enable bool) error {
	_, err := r.DB.Exec(`
		UPDATE users
		SET telegram_chat_id=$1, notify_alerts_telegram=$2
		WHERE id=$3
	`, chatID, enable, userID)
	return err
}
