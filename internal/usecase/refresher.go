package usecase

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/cache"
	"github.com/artdevata/content-service/internal/port/contentsource"
	"go.uber.org/zap"
)

// Refresher re-fetches each collection on a fixed interval and warms the
// cache the list views read from. At most one refresh per content type is
// in flight at a time, and a refresh that has been superseded by a newer
// one discards its late result instead of applying it.
type Refresher struct {
	source    contentsource.Source
	cacheRepo cache.Cache
	logger    *zap.Logger
	interval  time.Duration
	cacheTTL  time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
	gen      map[string]uint64
}

func NewRefresher(
	src contentsource.Source,
	cr cache.Cache,
	log *zap.Logger,
	interval time.Duration,
	cacheTTL time.Duration,
) *Refresher {
	return &Refresher{
		source:    src,
		cacheRepo: cr,
		logger:    log,
		interval:  interval,
		cacheTTL:  cacheTTL,
		inFlight:  make(map[string]bool),
		gen:       make(map[string]uint64),
	}
}

// Run blocks until ctx is cancelled, refreshing every interval.
func (r *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refreshAll(ctx)
	for {
		select {
		case <-ctx.Done():
			r.logger.Info("Content refresher stopped")
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *Refresher) refreshAll(ctx context.Context) {
	for _, contentType := range entity.ContentTypes() {
		r.Refresh(ctx, contentType)
	}
}

// Refresh fetches one collection and stores it, unless a refresh for the
// same type is already running. Safe to call from outside the ticker loop;
// an externally triggered refresh bumps the generation so any older
// in-flight result is dropped on arrival.
func (r *Refresher) Refresh(ctx context.Context, contentType string) {
	gen, ok := r.begin(contentType)
	if !ok {
		r.logger.Debug("Refresh already in flight, skipping",
			zap.String("content_type", contentType))
		return
	}

	items, err := r.source.List(ctx, contentType)
	current := r.finish(contentType, gen)
	if err != nil {
		r.logger.Warn("Refresh fetch failed, keeping previous cache entry",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return
	}
	if !current {
		r.logger.Debug("Discarding superseded refresh result",
			zap.String("content_type", contentType))
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		r.logger.Warn("Failed to marshal refreshed collection",
			zap.String("content_type", contentType), zap.Error(err))
		return
	}
	if err := r.cacheRepo.Set(ctx, ListCacheKey(contentType), data, r.cacheTTL); err != nil {
		r.logger.Warn("Failed to store refreshed collection",
			zap.String("content_type", contentType), zap.Error(err))
		return
	}
	r.logger.Debug("Collection refreshed",
		zap.String("content_type", contentType),
		zap.Int("items", len(items)),
	)
}

func (r *Refresher) begin(contentType string) (uint64, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.inFlight[contentType] {
		// Starting would supersede the running refresh; bump the
		// generation so its late result is discarded, but do not stack
		// a second request.
		r.gen[contentType]++
		return 0, false
	}
	r.inFlight[contentType] = true
	r.gen[contentType]++
	return r.gen[contentType], true
}

// finish reports whether the refresh that started at gen is still the
// newest one for its content type.
func (r *Refresher) finish(contentType string, gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inFlight[contentType] = false
	return r.gen[contentType] == gen
}
