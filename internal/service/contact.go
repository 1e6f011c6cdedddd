package service

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

var ErrMissingContactFields = errors.New("name, email and message are required")

// ContactService appends contact-form messages to a durable append-only file.
type ContactService struct {
	mu   sync.Mutex
	path string
}

func NewContactService(path string) *ContactService {
	return &ContactService{path: path}
}

func (s *ContactService) Submit(name, email, message string) error {
	if name == "" || email == "" || message == "" {
		return ErrMissingContactFields
	}

	entry := fmt.Sprintf(`---------------------------
Name: %s
Email: %s
Message: %s
Date: %s
---------------------------

`, name, email, message, time.Now().Format(time.RFC1123))

	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.MkdirAll(filepath.Dir(s.path), 0755)
	if err != nil {
		return fmt.Errorf("failed to create feedback directory: %w", err)
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open feedback file: %w", err)
	}
	defer func() { _ = f.Close() }()

	_, err = f.WriteString(entry)
	if err != nil {
		return fmt.Errorf("failed to append feedback: %w", err)
	}

	err = f.Sync()
	if err != nil {
		return fmt.Errorf("failed to sync feedback file: %w", err)
	}

	slog.Info("contact message recorded", "email", email)
	return nil
}
