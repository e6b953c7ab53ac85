package repositories

import (
	"context"

	"scholarhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// documentRepository implements DocumentRepository interface
type documentRepository struct {
	db *gorm.DB
}

// NewDocumentRepository creates a new document repository
func NewDocumentRepository(db *gorm.DB) DocumentRepository {
	return &documentRepository{db: db}
}

// ListByApplication lists documents belonging to an application
func (r *documentRepository) ListByApplication(ctx context.Context, applicationID uint) ([]*models.ApplicationDocument, error) {
	var docs []*models.ApplicationDocument
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&docs).Error
	return docs, err
}

// ListFilenames lists every stored filename referenced by a document
// row. Used by the upload sweeper to decide which files are orphans.
func (r *documentRepository) ListFilenames(ctx context.Context) ([]string, error) {
	var filenames []string
	err := r.db.WithContext(ctx).Model(&models.ApplicationDocument{}).
		Pluck("filename", &filenames).Error
	return filenames, err
}
