package tui

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/dark-seas/internal/signals"
	"github.com/vovakirdan/dark-seas/internal/sim"
	"github.com/vovakirdan/dark-seas/internal/storage"
)

// RunStore saves finished runs. *storage.Store implements it.
type RunStore interface {
	SaveRun(r storage.RunRecord) (int64, error)
}

// runRecorder writes a RunRecord for every run the sim finishes.
type runRecorder struct {
	store  RunStore
	logger *log.Logger
	sim    *sim.Sim
	subs   signals.Releaser

	runID string
	saved []storage.RunRecord
}

func newRunRecorder(s *sim.Sim, store RunStore, logger *log.Logger) *runRecorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	r := &runRecorder{store: store, logger: logger, sim: s}
	r.subs.Add(
		signals.Subscribe(s.Bus(), r.onRunStart),
		signals.Subscribe(s.Bus(), r.onRunEnd),
	)
	return r
}

func (r *runRecorder) onRunStart(signals.RunStart) {
	r.runID = uuid.NewString()
}

func (r *runRecorder) onRunEnd(signals.RunEnd) {
	d := r.sim.LastDebrief()
	rec := storage.RunRecord{
		RunID:        r.runID,
		Profile:      r.sim.Ledger().Profile(),
		Seed:         d.Seed,
		Result:       d.Result,
		Rescued:      d.Rescued,
		PointsEarned: d.Earned,
		Duration:     d.Duration,
	}
	r.saved = append(r.saved, rec)

	if r.store == nil {
		return
	}
	if _, err := r.store.SaveRun(rec); err != nil {
		r.logger.Warn("could not save run", "run", r.runID, "error", err)
	}
}

// Release stops recording.
func (r *runRecorder) Release() {
	r.subs.Release()
}
