package services_test

import (
	"context"
	"testing"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/core/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweepOrphanUploads(t *testing.T) {
	db := setupTestDB(t)
	user, scheme := seedUserAndScheme(t, db)

	app := &models.Application{UserID: user.ID, SchemeID: scheme.ID, Payload: []byte(`{}`), Status: models.StatusPending}
	require.NoError(t, db.Create(app).Error)
	require.NoError(t, db.Create(&models.ApplicationDocument{ApplicationID: app.ID, DocType: "photo", Filename: "referenced.jpg"}).Error)

	storage := &fakeStorage{old: []string{"referenced.jpg", "orphan-1.pdf", "orphan-2.jpg"}}
	svc := services.NewCronService(repositories.NewDocumentRepository(db), storage)

	removed, err := svc.SweepOrphanUploads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.ElementsMatch(t, []string{"orphan-1.pdf", "orphan-2.jpg"}, storage.removed)
	assert.NotContains(t, storage.removed, "referenced.jpg", "referenced uploads must survive the sweep")
}

func TestSweepOrphanUploadsNothingOldEnough(t *testing.T) {
	db := setupTestDB(t)
	storage := &fakeStorage{}
	svc := services.NewCronService(repositories.NewDocumentRepository(db), storage)

	removed, err := svc.SweepOrphanUploads(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, removed)
	assert.Empty(t, storage.removed)
}
