package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/cache"
	"github.com/artdevata/content-service/internal/port/contentsource"
	"go.uber.org/zap"
)

// CategoryAll is the filter chip value that means "no filter".
const CategoryAll = "Semua"

type ContentUseCase struct {
	source    contentsource.Source
	cacheRepo cache.Cache
	logger    *zap.Logger
	pageSize  int
	cacheTTL  time.Duration
}

func NewContentUseCase(
	src contentsource.Source,
	cr cache.Cache,
	log *zap.Logger,
	pageSize int,
	cacheTTL time.Duration,
) *ContentUseCase {
	if pageSize <= 0 {
		pageSize = 9
	}
	return &ContentUseCase{
		source:    src,
		cacheRepo: cr,
		logger:    log,
		pageSize:  pageSize,
		cacheTTL:  cacheTTL,
	}
}

func ListCacheKey(contentType string) string {
	return fmt.Sprintf("content:list:%s", contentType)
}

const clientsCacheKey = "content:list:clients"

type ListContentInput struct {
	Type     string
	Category string
	Page     int
	PageSize int
}

type ListContentOutput struct {
	Featured   *entity.Content
	Items      []*entity.Content
	Page       int
	TotalPages int
	TotalCount int
}

// ListContent produces the collection view: the most recent item surfaced
// as featured, the remainder filtered and paginated. Upstream failure
// degrades to an empty collection; the error never reaches the caller.
func (uc *ContentUseCase) ListContent(ctx context.Context, input ListContentInput) *ListContentOutput {
	if input.Page <= 0 {
		input.Page = 1
	}
	if input.PageSize <= 0 {
		input.PageSize = uc.pageSize
	}

	items := uc.loadCollection(ctx, input.Type)
	sorted := SortByRecency(items)

	out := &ListContentOutput{Page: input.Page}
	if len(sorted) == 0 {
		out.Items = []*entity.Content{}
		return out
	}

	out.Featured = sorted[0]
	remainder := FilterByCategory(sorted[1:], input.Category)
	out.TotalCount = len(remainder)
	out.TotalPages = TotalPages(len(remainder), input.PageSize)
	out.Items = Paginate(remainder, input.Page, input.PageSize)
	return out
}

// ListClients returns the normalized client-logo records, degrading to an
// empty list when the upstream is unavailable.
func (uc *ContentUseCase) ListClients(ctx context.Context) []*entity.Client {
	if uc.cacheRepo != nil {
		if cached, err := uc.cacheRepo.Get(ctx, clientsCacheKey); err == nil {
			var clients []*entity.Client
			if unmarshalErr := json.Unmarshal(cached, &clients); unmarshalErr == nil {
				return clients
			}
			uc.logger.Warn("Failed to unmarshal clients from cache, refetching")
		}
	}

	clients, err := uc.source.ListClients(ctx)
	if err != nil {
		uc.logger.Error("Failed to fetch clients, serving empty list", zap.Error(err))
		return []*entity.Client{}
	}

	uc.storeInCache(ctx, clientsCacheKey, clients)
	return clients
}

func (uc *ContentUseCase) loadCollection(ctx context.Context, contentType string) []*entity.Content {
	key := ListCacheKey(contentType)

	if uc.cacheRepo != nil {
		cached, err := uc.cacheRepo.Get(ctx, key)
		if err == nil {
			var items []*entity.Content
			if unmarshalErr := json.Unmarshal(cached, &items); unmarshalErr == nil {
				uc.logger.Debug("Collection served from cache", zap.String("key", key))
				return items
			}
			uc.logger.Warn("Failed to unmarshal cached collection, refetching",
				zap.String("key", key),
			)
			if delErr := uc.cacheRepo.Delete(ctx, key); delErr != nil {
				uc.logger.Warn("Failed to delete corrupted cache entry",
					zap.String("key", key), zap.Error(delErr))
			}
		} else if err != cache.ErrNotFound {
			uc.logger.Warn("Cache read failed (not a miss)", zap.String("key", key), zap.Error(err))
		}
	}

	items, err := uc.source.List(ctx, contentType)
	if err != nil {
		uc.logger.Error("Failed to fetch collection, serving empty list",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return []*entity.Content{}
	}

	uc.storeInCache(ctx, key, items)
	return items
}

func (uc *ContentUseCase) storeInCache(ctx context.Context, key string, value any) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(value)
	if err != nil {
		uc.logger.Warn("Failed to marshal collection for caching", zap.String("key", key), zap.Error(err))
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache collection", zap.String("key", key), zap.Error(err))
	}
}

// SortByRecency orders items newest first. The sort is stable and items
// without a valid timestamp (zero CreatedAt) end up after every dated one.
func SortByRecency(items []*entity.Content) []*entity.Content {
	sorted := make([]*entity.Content, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].CreatedAt, sorted[j].CreatedAt
		if a.IsZero() {
			return false
		}
		if b.IsZero() {
			return true
		}
		return a.After(b)
	})
	return sorted
}

// FilterByCategory keeps items whose category matches exactly. An empty
// filter or the "Semua" chip keeps everything.
func FilterByCategory(items []*entity.Content, category string) []*entity.Content {
	if category == "" || category == CategoryAll {
		return items
	}
	filtered := make([]*entity.Content, 0, len(items))
	for _, item := range items {
		if item.Category == category {
			filtered = append(filtered, item)
		}
	}
	return filtered
}

func TotalPages(totalItems, pageSize int) int {
	if totalItems <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Paginate returns the 1-based page of items; a page beyond range is an
// empty page, not an error.
func Paginate(items []*entity.Content, page, pageSize int) []*entity.Content {
	if page <= 0 || pageSize <= 0 {
		return []*entity.Content{}
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []*entity.Content{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
