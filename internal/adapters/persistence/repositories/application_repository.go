package repositories

import (
	"context"

	"scholarhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// CreateWithDocuments inserts the application row and its document rows
// atomically. The document rows reference the application id assigned
// inside the transaction; any failure rolls back everything.
func (r *applicationRepository) CreateWithDocuments(ctx context.Context, app *models.Application, docs []models.ApplicationDocument) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}
		for i := range docs {
			docs[i].ApplicationID = app.ID
			if err := tx.Create(&docs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByID gets an application by ID with scheme and documents
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := r.db.WithContext(ctx).
		Preload("Scheme").
		Preload("Documents").
		First(&app, id).Error
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByUser lists a user's applications joined with scheme display
// fields, newest submission first
func (r *applicationRepository) ListByUser(ctx context.Context, userID uint) ([]*models.ApplicationSummary, error) {
	var rows []*models.ApplicationSummary
	err := r.db.WithContext(ctx).Table("applications").
		Select("applications.id, applications.user_id, applications.scheme_id, schemes.scheme_name, schemes.scholarship_name, applications.amount_applied, applications.status, applications.applied_at").
		Joins("JOIN schemes ON schemes.id = applications.scheme_id").
		Where("applications.user_id = ?", userID).
		Order("applications.applied_at DESC").
		Scan(&rows).Error
	return rows, err
}

// ListPending lists all pending applications joined with the owning
// user and scheme, oldest submission first (FIFO review order)
func (r *applicationRepository) ListPending(ctx context.Context) ([]*models.ApplicationSummary, error) {
	var rows []*models.ApplicationSummary
	err := r.db.WithContext(ctx).Table("applications").
		Select("applications.id, applications.user_id, applications.scheme_id, schemes.scheme_name, schemes.scholarship_name, applications.amount_applied, applications.status, applications.applied_at, users.name AS user_name, users.email AS user_email").
		Joins("JOIN users ON users.id = applications.user_id").
		Joins("JOIN schemes ON schemes.id = applications.scheme_id").
		Where("applications.status = ?", models.StatusPending).
		Order("applications.applied_at ASC").
		Scan(&rows).Error
	return rows, err
}

// UpdateStatus sets the status of an application unconditionally and
// reports the number of matched rows. A zero-row match is not an error.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id uint, status string) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

// CountByStatus counts applications with the given status
func (r *applicationRepository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).Where("status = ?", status).Count(&count).Error
	return count, err
}
