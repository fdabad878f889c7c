package cronjob

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sb-infra/sbinfra-backend/internal/uploads"
)

// sweepGrace keeps files younger than this out of a sweep so an upload
// racing a project save is never collected.
const sweepGrace = time.Hour

// ReferenceLister yields the set of upload paths still referenced by
// stored records.
type ReferenceLister interface {
	ReferencedImages() (map[string]bool, error)
}

type Scheduler struct {
	store *uploads.Store
	refs  ReferenceLister
}

func NewScheduler(store *uploads.Store, refs ReferenceLister) *Scheduler {
	return &Scheduler{store: store, refs: refs}
}

// Start schedules the nightly orphan-image sweep (12:00 AM).
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.RunSweep()
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Println("Cron scheduler started (orphan image sweep nightly at 12:00AM)")
	c.Start()
}

// RunSweep removes uploaded images no project references anymore.
func (s *Scheduler) RunSweep() {
	referenced, err := s.refs.ReferencedImages()
	if err != nil {
		log.Printf("Sweep skipped, could not list referenced images: %v", err)
		return
	}

	removed, err := s.store.Sweep(referenced, sweepGrace)
	if err != nil {
		log.Printf("Sweep failed: %v", err)
		return
	}
	if removed > 0 {
		log.Printf("Sweep removed %d orphaned image(s)", removed)
	}
}
