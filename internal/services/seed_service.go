package services

import (
	"context"
	"sync/atomic"
	"time"

	"carhub/internal/models"
	"carhub/internal/repositories/interfaces"
	"carhub/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
)

// Seed coordinator states. The machine only ever moves forward:
// idle -> seeding -> done, or idle -> done when seeding is disabled.
const (
	seedIdle int32 = iota
	seedSeeding
	seedDone
)

type SeedStatus int

const (
	SeedStarted SeedStatus = iota
	SeedAlreadyRunning
	SeedAlreadyDone
)

// Pinger reports store connection readiness. Satisfied by
// pkg/database.MongoDB.
type Pinger interface {
	Ping() error
}

type SeedConfig struct {
	Enabled       bool
	ReadyAttempts int
	ReadyInterval time.Duration
	InsertTimeout time.Duration
}

// SeedCoordinator guarantees the catalog is populated at most once per
// process lifetime without ever blocking a request. The expensive populate
// runs as a detached task; requests only flip or observe the state word.
type SeedCoordinator struct {
	repo    interfaces.CarRepository
	pinger  Pinger
	logger  *logger.Logger
	config  SeedConfig
	dataset func() []*models.Car

	state int32
	done  chan struct{}
}

func NewSeedCoordinator(repo interfaces.CarRepository, pinger Pinger, log *logger.Logger, config SeedConfig, dataset func() []*models.Car) *SeedCoordinator {
	if config.ReadyAttempts <= 0 {
		config.ReadyAttempts = 10
	}
	if config.ReadyInterval <= 0 {
		config.ReadyInterval = 2 * time.Second
	}
	if config.InsertTimeout <= 0 {
		config.InsertTimeout = 2 * time.Minute
	}
	return &SeedCoordinator{
		repo:    repo,
		pinger:  pinger,
		logger:  log,
		config:  config,
		dataset: dataset,
		done:    make(chan struct{}),
	}
}

// TryStart is the request-path gate. It never blocks: the first caller in an
// enabled process spawns the seed task and returns immediately; everyone else
// observes seeding or done and passes through. The idle->seeding transition is
// a compare-and-swap, so concurrent first requests can never start two tasks.
func (s *SeedCoordinator) TryStart() SeedStatus {
	if !s.config.Enabled {
		if atomic.CompareAndSwapInt32(&s.state, seedIdle, seedDone) {
			close(s.done)
		}
		return SeedAlreadyDone
	}

	if atomic.CompareAndSwapInt32(&s.state, seedIdle, seedSeeding) {
		go s.run()
		return SeedStarted
	}

	if atomic.LoadInt32(&s.state) == seedSeeding {
		return SeedAlreadyRunning
	}
	return SeedAlreadyDone
}

// Done is closed when the coordinator reaches its terminal state. Nothing in
// the request path waits on it; it exists for shutdown hooks and tests.
func (s *SeedCoordinator) Done() <-chan struct{} {
	return s.done
}

// run is the detached seed task. Whatever happens - success, skip, or failure
// - the state becomes done permanently and is never retried in this process.
func (s *SeedCoordinator) run() {
	defer func() {
		atomic.StoreInt32(&s.state, seedDone)
		close(s.done)
	}()

	if !s.waitReady() {
		s.logger.Warn("Seed abandoned: store never became ready")
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.config.InsertTimeout)
	defer cancel()

	count, err := s.repo.Count(ctx, bson.M{})
	if err != nil {
		s.logger.WithError(err).Error("Seed failed: could not count catalog records")
		return
	}
	if count > 0 {
		s.logger.WithField("count", count).Info("Seed skipped: catalog already populated")
		return
	}

	cars := s.dataset()
	if err := s.repo.BulkInsert(ctx, cars); err != nil {
		s.logger.WithError(err).Error("Seed failed: bulk insert did not complete")
		return
	}

	s.logger.WithField("inserted", len(cars)).Info("Catalog seeded")
}

// waitReady polls the store connection with a bounded retry budget.
func (s *SeedCoordinator) waitReady() bool {
	for attempt := 1; attempt <= s.config.ReadyAttempts; attempt++ {
		err := s.pinger.Ping()
		if err == nil {
			return true
		}
		s.logger.WithField("attempt", attempt).WithError(err).Debug("Store not ready for seeding")
		if attempt < s.config.ReadyAttempts {
			time.Sleep(s.config.ReadyInterval)
		}
	}
	return false
}
