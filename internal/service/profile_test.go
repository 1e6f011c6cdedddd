package service

import (
	"bytes"
	"io"
	"mime/multipart"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/healthplate/healthplate/internal/model"
	"github.com/healthplate/healthplate/internal/repository"
)

// fakeStorage records saved objects in memory.
type fakeStorage struct {
	saved  map[string][]byte
	failed bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{saved: map[string][]byte{}}
}

func (f *fakeStorage) Save(path string, file io.Reader) error {
	if f.failed {
		return assert.AnError
	}
	data, err := io.ReadAll(file)
	if err != nil {
		return err
	}
	f.saved[path] = data
	return nil
}

func (f *fakeStorage) Delete(path string) error {
	delete(f.saved, path)
	return nil
}

func (f *fakeStorage) URL(path string) string {
	return "https://cdn.example.com/" + path
}

// pngMagic is a minimal payload http.DetectContentType reports as image/png.
var pngMagic = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartFileHeader(t *testing.T, field, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File[field]
	require.Len(t, files, 1)
	return files[0]
}

func seedUser(t *testing.T, repo *fakeUserRepository) *model.User {
	t.Helper()
	user := &model.User{ID: "u1", FullName: "Ada Lovelace", Email: "ada@example.com"}
	require.NoError(t, repo.Create(user))
	return user
}

func TestProfileUpdate(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewProfileService(repo, newFakeStorage())
	seedUser(t, repo)

	weight := 70.0
	goal := "lose"
	require.NoError(t, svc.Update("u1", nil, &weight, nil, &goal))

	user, err := repo.ByID("u1")
	require.NoError(t, err)
	require.NotNil(t, user.Weight)
	assert.Equal(t, 70.0, *user.Weight)
	assert.Equal(t, "Ada Lovelace", user.FullName)

	// Omitting weight on the next update clears it.
	require.NoError(t, svc.Update("u1", nil, nil, nil, nil))
	user, err = repo.ByID("u1")
	require.NoError(t, err)
	assert.Nil(t, user.Weight)
	assert.Nil(t, user.Goal)
}

func TestProfileUpdate_FullNameHandling(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewProfileService(repo, newFakeStorage())
	seedUser(t, repo)

	name := "  Ada L.  "
	require.NoError(t, svc.Update("u1", &name, nil, nil, nil))
	user, err := repo.ByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.FullName)

	// A blank name never overwrites the stored one.
	blank := "   "
	require.NoError(t, svc.Update("u1", &blank, nil, nil, nil))
	user, err = repo.ByID("u1")
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", user.FullName)
}

func TestProfileUpdate_UnknownUser(t *testing.T) {
	svc := NewProfileService(newFakeUserRepository(), newFakeStorage())
	err := svc.Update("missing", nil, nil, nil, nil)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUploadAvatar(t *testing.T) {
	repo := newFakeUserRepository()
	store := newFakeStorage()
	svc := NewProfileService(repo, store)
	seedUser(t, repo)

	header := multipartFileHeader(t, "avatar", "me.png", pngMagic)
	file, err := header.Open()
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	url, err := svc.UploadAvatar("u1", file, header)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/avatars/user-u1.png", url)
	assert.Contains(t, store.saved, "avatars/user-u1.png")

	user, err := repo.ByID("u1")
	require.NoError(t, err)
	require.NotNil(t, user.AvatarURL)
	assert.Equal(t, url, *user.AvatarURL)
}

func TestUploadAvatar_RejectsNonImage(t *testing.T) {
	repo := newFakeUserRepository()
	svc := NewProfileService(repo, newFakeStorage())
	seedUser(t, repo)

	header := multipartFileHeader(t, "avatar", "notes.png", []byte("plain text, not an image"))
	file, err := header.Open()
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	_, err = svc.UploadAvatar("u1", file, header)
	assert.ErrorContains(t, err, "invalid file type")
}

func TestUploadAvatar_StorageFailure(t *testing.T) {
	repo := newFakeUserRepository()
	store := newFakeStorage()
	store.failed = true
	svc := NewProfileService(repo, store)
	seedUser(t, repo)

	header := multipartFileHeader(t, "avatar", "me.png", pngMagic)
	file, err := header.Open()
	require.NoError(t, err)
	defer func() { _ = file.Close() }()

	_, err = svc.UploadAvatar("u1", file, header)
	assert.ErrorIs(t, err, ErrStorageFailed)
}
