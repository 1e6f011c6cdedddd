package service

import (
	"errors"
	"fmt"
	"log/slog"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/healthplate/healthplate/internal/repository"
	"github.com/healthplate/healthplate/internal/storage"
	"github.com/healthplate/healthplate/internal/validation"
)

var ErrStorageFailed = errors.New("storage unavailable")

type ProfileService struct {
	userRepository repository.UserRepository
	storage        storage.Storage
}

func NewProfileService(userRepository repository.UserRepository, storage storage.Storage) *ProfileService {
	return &ProfileService{
		userRepository: userRepository,
		storage:        storage,
	}
}

// Update overwrites the mutable profile fields. Nil pointers clear the stored
// value; callers must resend previous values to preserve them.
func (s *ProfileService) Update(userID string, fullName *string, weight, height *float64, goal *string) error {
	if fullName != nil {
		trimmed := strings.TrimSpace(*fullName)
		if trimmed == "" {
			fullName = nil
		} else {
			fullName = &trimmed
		}
	}

	err := s.userRepository.UpdateProfile(userID, fullName, weight, height, goal)
	if err != nil {
		return err
	}

	slog.Info("profile updated", "user_id", userID)
	return nil
}

// UploadAvatar validates and stores the image, then records its URL on the
// account. The object key is stable per user so re-uploads replace the old
// avatar.
func (s *ProfileService) UploadAvatar(userID string, file multipart.File, header *multipart.FileHeader) (string, error) {
	err := validation.ValidateFile(header, validation.AvatarConstraints)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	path := fmt.Sprintf("avatars/user-%s%s", userID, ext)

	err = s.storage.Save(path, file)
	if err != nil {
		slog.Error("avatar save failed", "error", err, "user_id", userID, "path", path)
		return "", fmt.Errorf("failed to save avatar: %w", ErrStorageFailed)
	}

	url := s.storage.URL(path)

	err = s.userRepository.UpdateAvatarURL(userID, url)
	if err != nil {
		return "", err
	}

	slog.Info("avatar updated", "user_id", userID, "path", path)
	return url, nil
}
