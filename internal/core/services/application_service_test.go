package services_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"testing"
	"time"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/core/services"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to create test database")

	require.NoError(t, models.AutoMigrate(db), "Failed to migrate test database")
	return db
}

// fakeStorage is an in-memory document store that records every save
// and remove
type fakeStorage struct {
	saved   []string
	removed []string
	old     []string
	saveErr error
}

func (f *fakeStorage) Save(fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	name := fmt.Sprintf("stored-%d%s", len(f.saved), ".bin")
	f.saved = append(f.saved, name)
	return name, nil
}

func (f *fakeStorage) Remove(storedName string) error {
	f.removed = append(f.removed, storedName)
	return nil
}

func (f *fakeStorage) ListOlderThan(_ time.Duration) ([]string, error) {
	return f.old, nil
}

// makeFileHeader builds a real multipart.FileHeader the way fiber would
// hand one to the service
func makeFileHeader(t *testing.T, field, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	reader := multipart.NewReader(&buf, writer.Boundary())
	form, err := reader.ReadForm(1 << 20)
	require.NoError(t, err)

	headers := form.File[field]
	require.Len(t, headers, 1)
	return headers[0]
}

func newApplicationService(db *gorm.DB, storage *fakeStorage) *services.ApplicationService {
	return services.NewApplicationService(
		repositories.NewApplicationRepository(db),
		repositories.NewDocumentRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewSchemeRepository(db),
		storage,
	)
}

func seedUserAndScheme(t *testing.T, db *gorm.DB) (*models.User, *models.Scheme) {
	user := &models.User{Name: "Asha", Email: "asha@example.com", Password: "hashed", Role: models.RoleUser}
	require.NoError(t, db.Create(user).Error)
	scheme := &models.Scheme{SchemeName: "Merit", ScholarshipName: "Merit Award"}
	require.NoError(t, db.Create(scheme).Error)
	return user, scheme
}

func TestApplyRejectsMalformedPayload(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := newApplicationService(db, storage)

	_, err := svc.Apply(context.Background(), &services.ApplyInput{Data: []byte("not json")})
	assert.ErrorIs(t, err, services.ErrInvalidPayload)
	assert.Empty(t, storage.saved, "nothing may be stored for a rejected payload")
}

func TestApplyRequiresReferences(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := newApplicationService(db, storage)

	cases := []string{
		`{}`,
		`{"user_id":1}`,
		`{"scheme_id":2}`,
		`{"user_id":0,"scheme_id":2}`,
		`{"user_id":"abc","scheme_id":2}`,
	}
	for _, data := range cases {
		_, err := svc.Apply(context.Background(), &services.ApplyInput{
			Data:  []byte(data),
			Files: map[string]*multipart.FileHeader{"photo": makeFileHeader(t, "photo", "me.jpg", "img")},
		})
		assert.ErrorIs(t, err, services.ErrMissingReference, "payload %s", data)
	}
	assert.Empty(t, storage.saved, "files are only stored once the references check out")
}

func TestApplyStoresFilesAndCreatesDocuments(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := newApplicationService(db, storage)
	user, scheme := seedUserAndScheme(t, db)

	data := fmt.Sprintf(`{"user_id":%d,"scheme_id":%d,"amount_applied":25000.50,"course":"BSc"}`, user.ID, scheme.ID)
	id, err := svc.Apply(context.Background(), &services.ApplyInput{
		Data: []byte(data),
		Files: map[string]*multipart.FileHeader{
			"photo":  makeFileHeader(t, "photo", "me.jpg", "img"),
			"mark10": makeFileHeader(t, "mark10", "marks.pdf", "pdf"),
		},
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	var app models.Application
	require.NoError(t, db.First(&app, id).Error)
	assert.Equal(t, models.StatusPending, app.Status)
	require.NotNil(t, app.AmountApplied)
	assert.Equal(t, 25000.50, *app.AmountApplied)
	assert.JSONEq(t, data, string(app.Payload), "raw payload is stored as submitted")

	var docs []models.ApplicationDocument
	require.NoError(t, db.Where("application_id = ?", id).Order("id").Find(&docs).Error)
	require.Len(t, docs, 2)
	assert.Equal(t, "photo", docs[0].DocType)
	assert.Equal(t, "mark10", docs[1].DocType)
	assert.Equal(t, storage.saved[0], docs[0].Filename, "document row records the stored filename")
}

func TestApplyWithoutFilesOrAmount(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := newApplicationService(db, storage)
	user, scheme := seedUserAndScheme(t, db)

	// String-typed ids and a malformed amount. The ids parse, the
	// amount is dropped.
	data := fmt.Sprintf(`{"user_id":"%d","scheme_id":"%d","amount_applied":"not a number"}`, user.ID, scheme.ID)
	id, err := svc.Apply(context.Background(), &services.ApplyInput{Data: []byte(data)})
	require.NoError(t, err)

	var app models.Application
	require.NoError(t, db.First(&app, id).Error)
	assert.Nil(t, app.AmountApplied)

	var docCount int64
	db.Model(&models.ApplicationDocument{}).Where("application_id = ?", id).Count(&docCount)
	assert.Equal(t, int64(0), docCount)
}

// failingAppRepo fails every write so the cleanup path can be observed
type failingAppRepo struct {
	repositories.ApplicationRepository
}

func (f *failingAppRepo) CreateWithDocuments(_ context.Context, _ *models.Application, _ []models.ApplicationDocument) error {
	return errors.New("insert failed")
}

func TestApplyCleansUpFilesWhenInsertFails(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := services.NewApplicationService(
		&failingAppRepo{},
		repositories.NewDocumentRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewSchemeRepository(db),
		storage,
	)

	_, err := svc.Apply(context.Background(), &services.ApplyInput{
		Data: []byte(`{"user_id":1,"scheme_id":2}`),
		Files: map[string]*multipart.FileHeader{
			"photo":  makeFileHeader(t, "photo", "me.jpg", "img"),
			"mark10": makeFileHeader(t, "mark10", "marks.pdf", "pdf"),
		},
	})
	require.Error(t, err)
	assert.ElementsMatch(t, storage.saved, storage.removed, "every stored file is removed after a failed insert")
}

func TestSetStatus(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := newApplicationService(db, storage)
	user, scheme := seedUserAndScheme(t, db)

	app := &models.Application{UserID: user.ID, SchemeID: scheme.ID, Payload: []byte(`{}`), Status: models.StatusPending}
	require.NoError(t, db.Create(app).Error)

	_, err := svc.SetStatus(context.Background(), app.ID, "Escalated")
	assert.ErrorIs(t, err, services.ErrInvalidStatus)

	updated, err := svc.SetStatus(context.Background(), app.ID, models.StatusApproved)
	require.NoError(t, err)
	assert.True(t, updated)

	// Decisions are unconditional, an approved application can still be
	// rejected afterwards.
	updated, err = svc.SetStatus(context.Background(), app.ID, models.StatusRejected)
	require.NoError(t, err)
	assert.True(t, updated)

	updated, err = svc.SetStatus(context.Background(), 9999, models.StatusApproved)
	require.NoError(t, err)
	assert.False(t, updated, "unknown id reports updated=false, not an error")
}

func TestDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newApplicationService(db, &fakeStorage{})

	_, err := svc.Detail(context.Background(), 42)
	assert.ErrorIs(t, err, services.ErrApplicationNotFound)
}

func TestStats(t *testing.T) {
	db := setupTestDB(t)
	svc := newApplicationService(db, &fakeStorage{})
	user, scheme := seedUserAndScheme(t, db)

	for _, status := range []string{models.StatusPending, models.StatusPending, models.StatusApproved} {
		require.NoError(t, db.Create(&models.Application{UserID: user.ID, SchemeID: scheme.ID, Payload: []byte(`{}`), Status: status}).Error)
	}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalUsers)
	assert.Equal(t, int64(1), stats.TotalSchemes)
	assert.Equal(t, int64(2), stats.PendingApplications)
}
