package services

import (
	"context"

	"scholarhub/internal/adapters/persistence/models"
)

// Note: AuthService implementation is in auth_service.go
// Note: ApplicationService implementation is in application_service.go

// ApplicationWorkflow defines the application workflow operations the
// HTTP surface depends on
type ApplicationWorkflow interface {
	Apply(ctx context.Context, input *ApplyInput) (uint, error)
	SetStatus(ctx context.Context, id uint, status string) (bool, error)
	MyApplications(ctx context.Context, userID uint) ([]*models.ApplicationSummary, error)
	Detail(ctx context.Context, id uint) (*ApplicationDetail, error)
	PendingApplications(ctx context.Context) ([]*models.ApplicationSummary, error)
	Stats(ctx context.Context) (*AdminStats, error)
}
