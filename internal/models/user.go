package models

import "time"

// User представляет пользователя в системе
type User struct {
	ID           int64     `json:"id"`            // целочисленный идентификатор, назначается при регистрации
	Username     string    `json:"username"`      // уникальный username (case-sensitive)
	PasswordHash string    `json:"-"`             // bcrypt хеш пароля, никогда не отдается наружу
	CreatedAt    time.Time `json:"created_at"`    // время создания
}
