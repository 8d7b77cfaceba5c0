package service

import (
	"context"
	"math/rand"
	"time"

	"smart_climate"
	"smart_climate/internal/repository"
)

// occupiedProbability is the chance a tick rolls an occupied room.
const occupiedProbability = 0.7

// SimulatorService polls the reading source on a fixed tick, rolls a random
// occupancy state, and feeds both through the climate service. Randomness is
// injected so tests stay deterministic; the decision core itself never sees it.
type SimulatorService struct {
	climate   Climate
	stateRepo repository.StateRepo
	source    ReadingSource
	randFn    func() float64
}

// NewSimulatorService returns a simulator. A nil randFn falls back to math/rand.
func NewSimulatorService(climate Climate, stateRepo repository.StateRepo, source ReadingSource, randFn func() float64) *SimulatorService {
	if randFn == nil {
		randFn = rand.Float64
	}
	return &SimulatorService{
		climate:   climate,
		stateRepo: stateRepo,
		source:    source,
		randFn:    randFn,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SimulatorService) Run(ctx context.Context, tick time.Duration) {
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.step(ctx)
		}
	}
}

// step performs one simulation round. Source failures fall back to the last
// stored reading; with neither available the round is skipped.
func (s *SimulatorService) step(ctx context.Context) {
	reading, ok := s.nextReading(ctx)
	if !ok {
		return
	}
	_, _ = s.climate.Evaluate(ctx, reading, s.rollOccupancy())
}

func (s *SimulatorService) nextReading(ctx context.Context) (smart_climate.EnvironmentalReading, bool) {
	if s.source != nil {
		if reading, err := s.source.FetchReading(ctx); err == nil {
			return reading, true
		}
	}
	prev, err := s.stateRepo.Load(ctx)
	if err != nil || prev.ID == 0 {
		return smart_climate.EnvironmentalReading{}, false
	}
	return prev.Reading, true
}

func (s *SimulatorService) rollOccupancy() smart_climate.Occupancy {
	if s.randFn() < occupiedProbability {
		return smart_climate.Occupied
	}
	return smart_climate.Unoccupied
}
