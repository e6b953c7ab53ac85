package repositories

import (
	"context"

	"scholarhub/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// schemeRepository implements SchemeRepository interface
type schemeRepository struct {
	db *gorm.DB
}

// NewSchemeRepository creates a new scheme repository
func NewSchemeRepository(db *gorm.DB) SchemeRepository {
	return &schemeRepository{db: db}
}

// List lists schemes matching the filter, ordered by application deadline
// ascending with undated schemes sorted last. The full result set is
// returned; the catalog is small enough that pagination is not needed.
func (r *schemeRepository) List(ctx context.Context, filter *SchemeFilter) ([]*models.Scheme, error) {
	query := r.db.WithContext(ctx).Model(&models.Scheme{})

	if filter != nil {
		if filter.Query != "" {
			like := "%" + filter.Query + "%"
			query = query.Where("scheme_name LIKE ? OR scholarship_name LIKE ?", like, like)
		}
		if filter.AcademicYear != "" {
			query = query.Where("academic_year = ?", filter.AcademicYear)
		}
		if filter.Type != "" {
			query = query.Where("type = ?", filter.Type)
		}
		if len(filter.Categories) > 0 {
			query = query.Where("category IN ?", filter.Categories)
		}
		if filter.International {
			query = query.Where("international = ?", true)
		}
	}

	var schemes []*models.Scheme
	err := query.
		Order("application_deadline IS NULL, application_deadline ASC").
		Find(&schemes).Error
	return schemes, err
}

// GetByID gets a scheme by ID
func (r *schemeRepository) GetByID(ctx context.Context, id uint) (*models.Scheme, error) {
	var scheme models.Scheme
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&scheme).Error
	if err != nil {
		return nil, err
	}
	return &scheme, nil
}

// Count counts all schemes
func (r *schemeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Scheme{}).Count(&count).Error
	return count, err
}
