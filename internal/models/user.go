package models

import "time"

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // не отдаём наружу
	RoleID       int    `json:"role_id"`

	// refresh-хранение в БД
	RefreshToken     *string    `json:"-"` // храним opaque строку
	RefreshExpiresAt *time.Time `json:"-"` // срок действия
	RefreshRevoked   bool       `json:"-"` // если понадобится отозвать

	// Telegram-уведомления (для опекунов)
	TelegramChatID       int64 `json:"-"`
	NotifyAlertsTelegram bool  `json:"notify_alerts_telegram"`

	CreatedAt time.Time `json:"created_at"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
