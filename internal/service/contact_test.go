package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmit_MissingFields(t *testing.T) {
	svc := NewContactService(filepath.Join(t.TempDir(), "feedback.txt"))

	tests := []struct {
		name    string
		from    string
		email   string
		message string
	}{
		{"no name", "", "jo@example.com", "hi"},
		{"no email", "Jo", "", "hi"},
		{"no message", "Jo", "jo@example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Submit(tt.from, tt.email, tt.message)
			assert.ErrorIs(t, err, ErrMissingContactFields)
		})
	}
}

func TestContactSubmit_AppendsEntries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "feedback.txt")
	svc := NewContactService(path)

	require.NoError(t, svc.Submit("Jo", "jo@example.com", "Love the recipes"))
	require.NoError(t, svc.Submit("Sam", "sam@example.com", "More desserts please"))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)

	assert.Contains(t, content, "Name: Jo")
	assert.Contains(t, content, "Email: jo@example.com")
	assert.Contains(t, content, "Message: Love the recipes")
	assert.Contains(t, content, "Name: Sam")

	// Both entries survive; submissions append rather than overwrite.
	assert.Equal(t, 4, strings.Count(content, "---------------------------"))
}
