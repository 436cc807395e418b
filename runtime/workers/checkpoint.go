package workers

import (
	"context"
	"log/slog"
	"time"

	"chat-registry/contract"
)

var _ contract.Worker = (*CheckpointWorker)(nil)

// CheckpointWorker saves the registry every interval, and once more when
// its context is canceled so a clean shutdown loses nothing.
type CheckpointWorker struct {
	log          *slog.Logger
	checkpointer contract.Checkpointer
	interval     time.Duration
}

func NewCheckpointWorker(log *slog.Logger, checkpointer contract.Checkpointer, interval time.Duration) *CheckpointWorker {
	return &CheckpointWorker{log: log, checkpointer: checkpointer, interval: interval}
}

func (w *CheckpointWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, writing last checkpoint")
			if err := w.checkpointer.Checkpoint(); err != nil {
				w.log.Error("Final checkpoint failed", "error", err)
			}
			return nil
		case <-ticker.C:
			if err := w.checkpointer.Checkpoint(); err != nil {
				w.log.Error("Checkpoint failed", "error", err)
			}
		}
	}
}
