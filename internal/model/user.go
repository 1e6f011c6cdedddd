package model

import (
	"time"
)

type User struct {
	ID                    string     `db:"id"`
	FullName              string     `db:"fullname"`
	Email                 string     `db:"email"`
	PasswordHash          string     `db:"password_hash"`
	VerificationCode      *string    `db:"verification_code"`
	VerificationExpiresAt *time.Time `db:"verification_expires_at"`
	EmailVerified         bool       `db:"email_verified"`
	Weight                *float64   `db:"weight"`
	Height                *float64   `db:"height"`
	Goal                  *string    `db:"goal"`
	AvatarURL             *string    `db:"avatar_url"`
	CreatedAt             time.Time  `db:"created_at"`
}

// PublicUser is the projection returned to clients after login.
// The password hash and verification code never leave the service boundary.
type PublicUser struct {
	ID        string   `json:"id"`
	FullName  string   `json:"fullname"`
	Email     string   `json:"email"`
	Weight    *float64 `json:"weight"`
	Height    *float64 `json:"height"`
	Goal      *string  `json:"goal"`
	AvatarURL *string  `json:"avatarUrl"`
}

func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Weight:    u.Weight,
		Height:    u.Height,
		Goal:      u.Goal,
		AvatarURL: u.AvatarURL,
	}
}
