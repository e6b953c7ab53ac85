package services

import (
	"context"
	"errors"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Scheme errors
var (
	ErrSchemeNotFound = errors.New("scheme not found")
)

// SchemeService handles scheme catalog reads
type SchemeService struct {
	schemeRepo repositories.SchemeRepository
}

// NewSchemeService creates a new scheme service
func NewSchemeService(schemeRepo repositories.SchemeRepository) *SchemeService {
	return &SchemeService{schemeRepo: schemeRepo}
}

// List lists schemes matching the filter. An empty filter returns the
// whole catalog.
func (s *SchemeService) List(ctx context.Context, filter *repositories.SchemeFilter) ([]*models.Scheme, error) {
	return s.schemeRepo.List(ctx, filter)
}

// GetByID gets a scheme by ID
func (s *SchemeService) GetByID(ctx context.Context, id uint) (*models.Scheme, error) {
	scheme, err := s.schemeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSchemeNotFound
		}
		return nil, err
	}
	return scheme, nil
}
