package services

import (
	"errors"
	"sync"
	"testing"
	"time"

	"carhub/internal/models"
	"carhub/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping() error { return p.err }

func seedDataset() []*models.Car {
	return []*models.Car{
		testCar("MARUTI", "Swift"),
		testCar("HYUNDAI", "Creta"),
		testCar("TATA", "Nexon"),
	}
}

func fastSeedConfig() SeedConfig {
	return SeedConfig{
		Enabled:       true,
		ReadyAttempts: 3,
		ReadyInterval: time.Millisecond,
		InsertTimeout: time.Second,
	}
}

func waitDone(t *testing.T, c *SeedCoordinator) {
	t.Helper()
	select {
	case <-c.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("seed coordinator never reached its terminal state")
	}
}

func TestSeedCoordinator_ConcurrentFirstRequestsSeedOnce(t *testing.T) {
	repo := newFakeCarRepo()
	coordinator := NewSeedCoordinator(repo, &stubPinger{}, logger.NewNop(), fastSeedConfig(), seedDataset)

	const callers = 32
	var wg sync.WaitGroup
	started := make(chan SeedStatus, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			started <- coordinator.TryStart()
		}()
	}
	wg.Wait()
	close(started)
	waitDone(t, coordinator)

	var launches int
	for status := range started {
		if status == SeedStarted {
			launches++
		}
	}
	assert.Equal(t, 1, launches)
	assert.Equal(t, 1, repo.inserts())
	assert.Equal(t, len(seedDataset()), repo.size())
}

func TestSeedCoordinator_PopulatedStoreSkipsInsert(t *testing.T) {
	repo := newFakeCarRepo(testCar("HONDA", "City"))
	coordinator := NewSeedCoordinator(repo, &stubPinger{}, logger.NewNop(), fastSeedConfig(), seedDataset)

	coordinator.TryStart()
	waitDone(t, coordinator)

	assert.Equal(t, 0, repo.inserts())
	assert.Equal(t, 1, repo.size())
	assert.Equal(t, SeedAlreadyDone, coordinator.TryStart())
}

func TestSeedCoordinator_DisabledGoesStraightToDone(t *testing.T) {
	repo := newFakeCarRepo()
	config := fastSeedConfig()
	config.Enabled = false
	coordinator := NewSeedCoordinator(repo, &stubPinger{}, logger.NewNop(), config, seedDataset)

	assert.Equal(t, SeedAlreadyDone, coordinator.TryStart())
	waitDone(t, coordinator)
	assert.Equal(t, 0, repo.inserts())
}

func TestSeedCoordinator_AbandonsWhenStoreNeverReady(t *testing.T) {
	repo := newFakeCarRepo()
	coordinator := NewSeedCoordinator(repo, &stubPinger{err: errors.New("connection refused")}, logger.NewNop(), fastSeedConfig(), seedDataset)

	require.Equal(t, SeedStarted, coordinator.TryStart())
	waitDone(t, coordinator)

	assert.Equal(t, 0, repo.inserts())
	assert.Equal(t, 0, repo.size())
	// Terminal even on failure; no retry in this process
	assert.Equal(t, SeedAlreadyDone, coordinator.TryStart())
}

func TestSeedCoordinator_InsertFailureIsTerminal(t *testing.T) {
	repo := newFakeCarRepo()
	repo.insertErr = errors.New("write concern failure")
	coordinator := NewSeedCoordinator(repo, &stubPinger{}, logger.NewNop(), fastSeedConfig(), seedDataset)

	require.Equal(t, SeedStarted, coordinator.TryStart())
	waitDone(t, coordinator)

	assert.Equal(t, 1, repo.inserts())
	assert.Equal(t, 0, repo.size())
	assert.Equal(t, SeedAlreadyDone, coordinator.TryStart())
}
