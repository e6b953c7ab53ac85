package services

import (
	"context"
	"log"
	"time"

	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/pkg/filestorage"

	"github.com/robfig/cron/v3"
)

// SweepGracePeriod is how old an unreferenced upload must be before the
// sweeper deletes it. Fresh files may belong to an apply transaction
// that has not committed yet.
const SweepGracePeriod = 24 * time.Hour

// CronService runs scheduled background jobs. Today that is the nightly
// orphaned-upload sweep: document store writes happen outside the apply
// transaction, so a failed submission can leave files behind that no
// document row references.
type CronService struct {
	docRepo repositories.DocumentRepository
	storage filestorage.Storage
	cron    *cron.Cron
}

// NewCronService creates a new cron service
func NewCronService(docRepo repositories.DocumentRepository, storage filestorage.Storage) *CronService {
	return &CronService{
		docRepo: docRepo,
		storage: storage,
		cron:    cron.New(),
	}
}

// Start schedules the jobs and starts the cron loop
func (s *CronService) Start() {
	// Nightly at 03:30
	s.cron.AddFunc("30 3 * * *", func() {
		if _, err := s.SweepOrphanUploads(context.Background()); err != nil {
			log.Printf("⚠️ Orphan upload sweep failed: %v", err)
		}
	})
	s.cron.Start()
	log.Println("🚀 CronService started (orphan upload sweep 03:30 daily)")
}

// Stop stops the cron loop
func (s *CronService) Stop() {
	s.cron.Stop()
	log.Println("🛑 CronService stopped")
}

// SweepOrphanUploads deletes stored files past the grace period that no
// document row references. Returns the number of files removed.
// Deletion failures are logged and skipped; the next sweep retries.
func (s *CronService) SweepOrphanUploads(ctx context.Context) (int, error) {
	candidates, err := s.storage.ListOlderThan(SweepGracePeriod)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	filenames, err := s.docRepo.ListFilenames(ctx)
	if err != nil {
		return 0, err
	}

	referenced := make(map[string]struct{}, len(filenames))
	for _, name := range filenames {
		referenced[name] = struct{}{}
	}

	removed := 0
	for _, name := range candidates {
		if _, ok := referenced[name]; ok {
			continue
		}
		if err := s.storage.Remove(name); err != nil {
			log.Printf("⚠️ Failed to remove orphan upload %s: %v", name, err)
			continue
		}
		removed++
	}

	if removed > 0 {
		log.Printf("🧹 Swept %d orphan upload(s)", removed)
	}
	return removed, nil
}
