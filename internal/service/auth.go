package service

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/validation"
)

var (
	ErrNameTooShort       = errors.New("name must be at least 3 characters")
	ErrInvalidEmail       = errors.New("invalid email address")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrIncorrectCode      = errors.New("incorrect verification code")
	ErrCodeExpired        = errors.New("verification code expired")
	ErrNotificationFailed = errors.New("failed to send verification email")
)

type AuthService struct {
	userRepository repository.UserRepository
	emailService   *EmailService
	jwtSecret      string
	jwtExpiry      time.Duration
	codeTTL        time.Duration
	isProduction   bool
}

func NewAuthService(
	userRepository repository.UserRepository,
	emailService *EmailService,
	jwtSecret string,
	jwtExpiry time.Duration,
	codeTTL time.Duration,
	isProduction bool,
) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		emailService:   emailService,
		jwtSecret:      jwtSecret,
		jwtExpiry:      jwtExpiry,
		codeTTL:        codeTTL,
		isProduction:   isProduction,
	}
}

// Register creates an unverified account and sends the verification code.
// The returned user id is valid even when the error is ErrNotificationFailed:
// the account row is already persisted and keeps its unverified state.
func (s *AuthService) Register(fullName, email, password string) (string, error) {
	fullName = strings.TrimSpace(fullName)
	email = strings.TrimSpace(strings.ToLower(email))

	err := validation.ValidateName(fullName)
	if err != nil {
		return "", fmt.Errorf("invalid name: %w", ErrNameTooShort)
	}

	err = validation.ValidateEmail(email)
	if err != nil {
		return "", fmt.Errorf("invalid email: %w", ErrInvalidEmail)
	}

	err = validation.ValidatePassword(password)
	if err != nil {
		return "", fmt.Errorf("invalid password: %w", ErrPasswordTooShort)
	}

	_, err = s.userRepository.ByEmail(email)
	if err == nil {
		return "", fmt.Errorf("email in use: %w", ErrEmailAlreadyExists)
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return "", fmt.Errorf("failed to check email: %w", err)
	}

	hash, err := s.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	code, err := GenerateVerificationCode()
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}

	now := time.Now()
	expiresAt := now.Add(s.codeTTL)
	user := &model.User{
		ID:                    uuid.New().String(),
		FullName:              fullName,
		Email:                 email,
		PasswordHash:          hash,
		VerificationCode:      &code,
		VerificationExpiresAt: &expiresAt,
		CreatedAt:             now,
	}

	err = s.userRepository.Create(user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			// Concurrent registration lost the race; the unique constraint wins.
			return "", fmt.Errorf("email in use: %w", ErrEmailAlreadyExists)
		}
		return "", fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("user registered", "user_id", user.ID, "email", email)

	err = s.emailService.SendVerificationCode(email, code)
	if err != nil {
		slog.Error("verification email send failed", "error", err, "user_id", user.ID, "email", email)
		return user.ID, fmt.Errorf("send failed: %w", ErrNotificationFailed)
	}

	return user.ID, nil
}

// VerifyEmail checks the submitted code and activates the account. A
// successful verification clears the stored code, so codes are single use.
// Verifying an already-verified account succeeds as a no-op without comparing
// the submitted code, since there is no stored code left to compare against.
func (s *AuthService) VerifyEmail(userID, code string) error {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return err
	}

	if user.EmailVerified {
		return nil
	}

	if user.VerificationCode == nil {
		return fmt.Errorf("no code on record: %w", ErrIncorrectCode)
	}

	if user.VerificationExpiresAt != nil && time.Now().After(*user.VerificationExpiresAt) {
		return fmt.Errorf("code expired: %w", ErrCodeExpired)
	}

	if strings.TrimSpace(code) != *user.VerificationCode {
		return fmt.Errorf("code mismatch: %w", ErrIncorrectCode)
	}

	err = s.userRepository.MarkVerified(user.ID)
	if err != nil {
		return fmt.Errorf("failed to mark verified: %w", err)
	}

	slog.Info("email verified", "user_id", user.ID, "email", user.Email)

	err = s.emailService.SendWelcomeEmail(user.Email, user.FullName)
	if err != nil {
		slog.Warn("failed to send welcome email", "error", err, "email", user.Email)
	}

	return nil
}

// Login authenticates by email and password. Unknown email and wrong password
// yield the same generic error so account existence is never revealed on this
// branch.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.userRepository.ByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, fmt.Errorf("unknown email: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	err = s.ComparePassword(password, user.PasswordHash)
	if err != nil {
		return nil, fmt.Errorf("password mismatch: %w", ErrInvalidCredentials)
	}

	if !user.EmailVerified {
		return nil, fmt.Errorf("email not verified: %w", ErrEmailNotVerified)
	}

	return user, nil
}

// UserByID looks up an account for session resolution.
func (s *AuthService) UserByID(id string) (*model.User, error) {
	return s.userRepository.ByID(id)
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func (s *AuthService) ComparePassword(password, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

// GenerateVerificationCode returns a 6-digit code uniformly random over
// 100000-999999.
func GenerateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

func (s *AuthService) GenerateJWT(user *model.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"email":   user.Email,
		"exp":     time.Now().Add(s.jwtExpiry).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

func (s *AuthService) VerifyJWT(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}

func (s *AuthService) SetJWTCookie(w http.ResponseWriter, token string, expiry time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		Expires:  expiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *AuthService) ClearJWTCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    "",
		Expires:  time.Unix(0, 0),
		Path:     "/",
		HttpOnly: true,
		Secure:   s.isProduction,
		SameSite: http.SameSiteLaxMode,
	})
}

// JWTExpiry returns the configured session lifetime.
func (s *AuthService) JWTExpiry() time.Duration {
	return s.jwtExpiry
}
