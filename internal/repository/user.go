package repository

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/healthplate/healthplate/internal/model"
)

var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

type UserRepository interface {
	Create(user *model.User) error
	ByID(id string) (*model.User, error)
	ByEmail(email string) (*model.User, error)
	MarkVerified(id string) error
	UpdateProfile(id string, fullName *string, weight, height *float64, goal *string) error
	UpdateAvatarURL(id, avatarURL string) error
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *model.User) error {
	query := `INSERT INTO users (id, fullname, email, password_hash, verification_code, verification_expires_at, email_verified, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		user.ID,
		user.FullName,
		user.Email,
		user.PasswordHash,
		user.VerificationCode,
		user.VerificationExpiresAt,
		user.EmailVerified,
		user.CreatedAt,
	)
	if err != nil {
		// Unique constraint violation (works for both SQLite and PostgreSQL)
		errStr := err.Error()
		if strings.Contains(errStr, "UNIQUE constraint failed") || strings.Contains(errStr, "duplicate key value") {
			return ErrDuplicateEmail
		}
		return err
	}

	return nil
}

func (r *userRepository) ByID(id string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE id = $1`

	err := r.db.Get(user, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

func (r *userRepository) ByEmail(email string) (*model.User, error) {
	user := &model.User{}
	query := `SELECT * FROM users WHERE email = $1`

	err := r.db.Get(user, query, email)
	if err == sql.ErrNoRows {
		return nil, ErrUserNotFound
	}

	return user, err
}

// MarkVerified sets email_verified and invalidates the code in one statement.
func (r *userRepository) MarkVerified(id string) error {
	query := `UPDATE users SET email_verified = 1, verification_code = NULL, verification_expires_at = NULL WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

// UpdateProfile overwrites all four mutable profile fields. Nil values are
// stored as NULL, so omitted fields are cleared rather than preserved.
func (r *userRepository) UpdateProfile(id string, fullName *string, weight, height *float64, goal *string) error {
	query := `UPDATE users SET fullname = COALESCE($1, fullname), weight = $2, height = $3, goal = $4 WHERE id = $5`

	result, err := r.db.Exec(query, fullName, weight, height, goal, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}

func (r *userRepository) UpdateAvatarURL(id, avatarURL string) error {
	query := `UPDATE users SET avatar_url = $1 WHERE id = $2`

	result, err := r.db.Exec(query, avatarURL, id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrUserNotFound
	}

	return nil
}
