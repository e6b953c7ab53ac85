package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"strconv"

	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/core/domain"
	"scholarhub/internal/pkg/filestorage"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Application errors
var (
	ErrInvalidPayload      = errors.New("application payload is not valid JSON")
	ErrMissingReference    = errors.New("application payload must contain user_id and scheme_id")
	ErrApplicationNotFound = errors.New("application not found")
	ErrInvalidStatus       = errors.New("invalid target status")
)

// DocumentFields are the recognized upload field names, in the order
// their document rows are created.
var DocumentFields = []string{"photo", "mark10"}

// ApplicationService orchestrates the application submission and review
// workflow
type ApplicationService struct {
	appRepo    repositories.ApplicationRepository
	docRepo    repositories.DocumentRepository
	userRepo   repositories.UserRepository
	schemeRepo repositories.SchemeRepository
	storage    filestorage.Storage
}

// NewApplicationService creates a new application service
func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	docRepo repositories.DocumentRepository,
	userRepo repositories.UserRepository,
	schemeRepo repositories.SchemeRepository,
	storage filestorage.Storage,
) *ApplicationService {
	return &ApplicationService{
		appRepo:    appRepo,
		docRepo:    docRepo,
		userRepo:   userRepo,
		schemeRepo: schemeRepo,
		storage:    storage,
	}
}

// ApplyInput represents an application submission: the raw applicant
// payload plus the recognized uploads keyed by field name.
type ApplyInput struct {
	Data  []byte
	Files map[string]*multipart.FileHeader
}

// Apply submits a new application. Files are written to the document
// store first; the application row and its document rows are then
// inserted in one transaction. On transaction failure the just-written
// files are cleaned up best-effort.
func (s *ApplicationService) Apply(ctx context.Context, input *ApplyInput) (uint, error) {
	payload := map[string]json.RawMessage{}
	if err := json.Unmarshal(input.Data, &payload); err != nil {
		return 0, ErrInvalidPayload
	}

	userID := numericField(payload, "user_id")
	schemeID := numericField(payload, "scheme_id")
	if userID == 0 || schemeID == 0 {
		return 0, ErrMissingReference
	}

	amount := amountField(payload, "amount_applied")

	// Persist uploads before opening the transaction so the stored
	// filenames can be recorded inside it.
	var stored []string
	var docs []models.ApplicationDocument
	for _, field := range DocumentFields {
		fileHeader, ok := input.Files[field]
		if !ok || fileHeader == nil {
			continue
		}
		storedName, err := s.storage.Save(fileHeader)
		if err != nil {
			s.cleanupFiles(stored)
			return 0, err
		}
		stored = append(stored, storedName)
		docs = append(docs, models.ApplicationDocument{
			DocType:  field,
			Filename: storedName,
		})
	}

	app := &models.Application{
		UserID:        userID,
		SchemeID:      schemeID,
		AmountApplied: amount,
		Payload:       datatypes.JSON(input.Data),
		Status:        models.StatusPending,
	}

	if err := s.appRepo.CreateWithDocuments(ctx, app, docs); err != nil {
		s.cleanupFiles(stored)
		return 0, err
	}

	return app.ID, nil
}

// cleanupFiles removes stored files best-effort; failures are logged
// and otherwise ignored, the nightly sweeper catches leftovers.
func (s *ApplicationService) cleanupFiles(stored []string) {
	for _, name := range stored {
		if err := s.storage.Remove(name); err != nil {
			log.Printf("⚠️ Failed to clean up stored file %s: %v", name, err)
		}
	}
}

// SetStatus writes a terminal review decision for an application. The
// update is unconditional: no check of the prior state is made, and a
// zero-row match is reported through the returned flag, not an error.
func (s *ApplicationService) SetStatus(ctx context.Context, id uint, status string) (bool, error) {
	if !domain.Status(status).IsTerminal() {
		return false, ErrInvalidStatus
	}

	affected, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// MyApplications lists a user's applications, newest first
func (s *ApplicationService) MyApplications(ctx context.Context, userID uint) ([]*models.ApplicationSummary, error) {
	return s.appRepo.ListByUser(ctx, userID)
}

// ApplicationDetail merges an application with its scheme display
// fields and attached documents
type ApplicationDetail struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	SchemeID        uint           `json:"scheme_id"`
	SchemeName      string         `json:"scheme_name"`
	ScholarshipName string         `json:"scholarship_name"`
	AmountApplied   *float64       `json:"amount_applied"`
	Payload         datatypes.JSON `json:"payload"`
	Status          string         `json:"status"`
	AppliedAt       string         `json:"applied_at"`
	Documents       []models.ApplicationDocument `json:"-"`
}

// Detail returns an application with scheme fields and documents
func (s *ApplicationService) Detail(ctx context.Context, id uint) (*ApplicationDetail, error) {
	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	return &ApplicationDetail{
		ID:              app.ID,
		UserID:          app.UserID,
		SchemeID:        app.SchemeID,
		SchemeName:      app.Scheme.SchemeName,
		ScholarshipName: app.Scheme.ScholarshipName,
		AmountApplied:   app.AmountApplied,
		Payload:         app.Payload,
		Status:          app.Status,
		AppliedAt:       app.AppliedAt.Format("2006-01-02T15:04:05Z07:00"),
		Documents:       app.Documents,
	}, nil
}

// PendingApplications lists all pending applications in FIFO review
// order for the admin queue
func (s *ApplicationService) PendingApplications(ctx context.Context) ([]*models.ApplicationSummary, error) {
	return s.appRepo.ListPending(ctx)
}

// AdminStats represents the admin dashboard counters
type AdminStats struct {
	TotalUsers          int64 `json:"total_users"`
	TotalSchemes        int64 `json:"total_schemes"`
	PendingApplications int64 `json:"pending_applications"`
}

// Stats computes the dashboard counters. The three counts are separate
// queries with no shared snapshot; this is a dashboard, not a ledger.
func (s *ApplicationService) Stats(ctx context.Context) (*AdminStats, error) {
	stats := &AdminStats{}

	var err error
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalSchemes, err = s.schemeRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PendingApplications, err = s.appRepo.CountByStatus(ctx, models.StatusPending); err != nil {
		return nil, err
	}

	return stats, nil
}

// numericField extracts a positive integer reference from the payload,
// returning 0 when absent or malformed
func numericField(payload map[string]json.RawMessage, key string) uint {
	raw, ok := payload[key]
	if !ok {
		return 0
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		if v, err := asNumber.Int64(); err == nil && v > 0 {
			return uint(v)
		}
		return 0
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if v, err := strconv.ParseUint(asString, 10, 32); err == nil {
			return uint(v)
		}
	}
	return 0
}

// amountField extracts the optional amount requested, nil when absent
// or malformed
func amountField(payload map[string]json.RawMessage, key string) *float64 {
	raw, ok := payload[key]
	if !ok {
		return nil
	}

	var asFloat float64
	if err := json.Unmarshal(raw, &asFloat); err == nil {
		return &asFloat
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if v, err := strconv.ParseFloat(asString, 64); err == nil {
			return &v
		}
	}
	return nil
}
