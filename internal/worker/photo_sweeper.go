package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/greenloop/cleanearth/internal/domain/model"
)

// TrackerFacade exposes the subset of application functionality required by
// the sweeper.
type TrackerFacade interface {
	ReferencedPhotos(ctx context.Context) (map[string]struct{}, error)
}

// PhotoStore is the sweep surface of the photo store.
type PhotoStore interface {
	RemoveUnreferenced(role model.PhotoRole, referenced map[string]struct{}, minAge time.Duration) (int, error)
}

// PhotoSweeper periodically reconciles the photo store against persisted
// activities. Photos are written before the database commit, so a failed
// commit leaves files behind; the sweeper removes them once they are old
// enough to be certainly abandoned.
type PhotoSweeper struct {
	facade   TrackerFacade
	photos   PhotoStore
	interval time.Duration
	minAge   time.Duration
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPhotoSweeper constructs the sweeper.
func NewPhotoSweeper(facade TrackerFacade, photos PhotoStore, interval, minAge time.Duration, logger *slog.Logger) *PhotoSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	return &PhotoSweeper{
		facade:   facade,
		photos:   photos,
		interval: interval,
		minAge:   minAge,
		logger:   logger,
	}
}

// Start launches background sweeping.
func (p *PhotoSweeper) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	p.wg.Add(1)
	go p.run(runCtx)
}

// Stop waits for the current sweep to finish.
func (p *PhotoSweeper) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	p.mu.Unlock()

	p.wg.Wait()
}

func (p *PhotoSweeper) run(ctx context.Context) {
	defer p.wg.Done()
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Sweep(ctx)
		}
	}
}

// Sweep removes orphaned photos from both role areas once.
func (p *PhotoSweeper) Sweep(ctx context.Context) {
	referenced, err := p.facade.ReferencedPhotos(ctx)
	if err != nil {
		p.logger.Error("list referenced photos failed", slog.String("error", err.Error()))
		return
	}

	for _, role := range []model.PhotoRole{model.PhotoRoleBefore, model.PhotoRoleAfter} {
		removed, err := p.photos.RemoveUnreferenced(role, referenced, p.minAge)
		if err != nil {
			p.logger.Error("photo sweep failed", slog.String("role", string(role)), slog.String("error", err.Error()))
			continue
		}
		if removed > 0 {
			p.logger.Info("removed orphaned photos", slog.String("role", string(role)), slog.Int("count", removed))
		}
	}
}
