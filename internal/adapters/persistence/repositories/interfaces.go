package repositories

import (
	"context"

	"scholarhub/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

// SchemeFilter holds the browse filters. All dimensions are conjunctive;
// Categories is match-any within itself.
type SchemeFilter struct {
	Query         string
	AcademicYear  string
	Type          string
	Categories    []string
	International bool
}

// SchemeRepository defines scheme catalog repository interface
type SchemeRepository interface {
	List(ctx context.Context, filter *SchemeFilter) ([]*models.Scheme, error)
	GetByID(ctx context.Context, id uint) (*models.Scheme, error)
	Count(ctx context.Context) (int64, error)
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	// CreateWithDocuments inserts the application and all document rows in
	// one transaction; either everything persists or nothing does.
	CreateWithDocuments(ctx context.Context, app *models.Application, docs []models.ApplicationDocument) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ListByUser(ctx context.Context, userID uint) ([]*models.ApplicationSummary, error)
	ListPending(ctx context.Context) ([]*models.ApplicationSummary, error)
	// UpdateStatus issues a single unconditional update matched on id and
	// reports how many rows were affected.
	UpdateStatus(ctx context.Context, id uint, status string) (int64, error)
	CountByStatus(ctx context.Context, status string) (int64, error)
}

// DocumentRepository defines application document repository interface
type DocumentRepository interface {
	ListByApplication(ctx context.Context, applicationID uint) ([]*models.ApplicationDocument, error)
	ListFilenames(ctx context.Context) ([]string, error)
}
