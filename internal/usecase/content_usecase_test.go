package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func day(n int) time.Time {
	return time.Date(2024, 1, n, 0, 0, 0, 0, time.UTC)
}

func blogItem(id string, createdAt time.Time) *entity.Content {
	return &entity.Content{
		ID:        id,
		Type:      entity.ContentTypeBlog,
		Title:     "Post " + id,
		Category:  entity.DefaultCategory,
		CreatedAt: createdAt,
	}
}

func TestListContent_FeaturedIsMostRecent(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	items := []*entity.Content{
		blogItem("1", day(1)),
		blogItem("2", day(3)),
	}
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).Return(items, nil).Once()

	out := uc.ListContent(context.Background(), ListContentInput{Type: entity.ContentTypeBlog})

	require.NotNil(t, out.Featured)
	assert.Equal(t, "2", out.Featured.ID)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "1", out.Items[0].ID)
	assert.Equal(t, 1, out.Page)
	assert.Equal(t, 1, out.TotalPages)
	mockSource.AssertExpectations(t)
}

func TestListContent_EmptyCollection(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).Return([]*entity.Content{}, nil).Once()

	out := uc.ListContent(context.Background(), ListContentInput{Type: entity.ContentTypeBlog})

	assert.Nil(t, out.Featured)
	assert.Empty(t, out.Items)
	assert.Equal(t, 0, out.TotalPages)
}

func TestListContent_SourceFailureDegradesToEmpty(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return(nil, errors.New("upstream down")).Once()

	out := uc.ListContent(context.Background(), ListContentInput{Type: entity.ContentTypeBlog})

	assert.Nil(t, out.Featured)
	assert.Empty(t, out.Items)
}

func TestListContent_PaginationReproducesCollection(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	var items []*entity.Content
	for i := 1; i <= 20; i++ {
		items = append(items, blogItem(fmt.Sprintf("%02d", i), day(i)))
	}
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).Return(items, nil)

	// 19 items in the remainder at page size 9 -> 3 pages.
	var collected []string
	var totalPages int
	for page := 1; page <= 3; page++ {
		out := uc.ListContent(context.Background(), ListContentInput{
			Type: entity.ContentTypeBlog,
			Page: page,
		})
		totalPages = out.TotalPages
		for _, item := range out.Items {
			collected = append(collected, item.ID)
		}
	}

	assert.Equal(t, 3, totalPages)
	require.Len(t, collected, 19)
	seen := make(map[string]bool)
	for _, id := range collected {
		assert.False(t, seen[id], "duplicate item %s", id)
		seen[id] = true
	}

	beyond := uc.ListContent(context.Background(), ListContentInput{
		Type: entity.ContentTypeBlog,
		Page: 4,
	})
	assert.Empty(t, beyond.Items)
	assert.Equal(t, 4, beyond.Page)
}

func TestListContent_CategoryFilter(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	a := blogItem("1", day(5))
	b := blogItem("2", day(4))
	b.Category = "CCTV Installation"
	c := blogItem("3", day(3))
	c.Category = "CCTV Installation"
	d := blogItem("4", day(2))
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return([]*entity.Content{a, b, c, d}, nil)

	out := uc.ListContent(context.Background(), ListContentInput{
		Type:     entity.ContentTypeBlog,
		Category: "CCTV Installation",
	})

	require.Len(t, out.Items, 2)
	for _, item := range out.Items {
		assert.Equal(t, "CCTV Installation", item.Category)
	}

	// The "Semua" chip means no filter.
	all := uc.ListContent(context.Background(), ListContentInput{
		Type:     entity.ContentTypeBlog,
		Category: CategoryAll,
	})
	assert.Len(t, all.Items, 3)
}

func TestListContent_ServedFromCache(t *testing.T) {
	mockSource := new(MockSource)
	mockCache := new(MockCache)
	uc := NewContentUseCase(mockSource, mockCache, zap.NewNop(), 9, time.Minute)

	cached, err := json.Marshal([]*entity.Content{blogItem("9", day(9))})
	require.NoError(t, err)
	mockCache.On("Get", mock.Anything, ListCacheKey(entity.ContentTypeBlog)).Return(cached, nil).Once()

	out := uc.ListContent(context.Background(), ListContentInput{Type: entity.ContentTypeBlog})

	require.NotNil(t, out.Featured)
	assert.Equal(t, "9", out.Featured.ID)
	mockSource.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	mockCache.AssertExpectations(t)
}

func TestListContent_CacheMissFetchesAndStores(t *testing.T) {
	mockSource := new(MockSource)
	mockCache := new(MockCache)
	uc := NewContentUseCase(mockSource, mockCache, zap.NewNop(), 9, time.Minute)

	items := []*entity.Content{blogItem("1", day(1))}
	mockCache.On("Get", mock.Anything, ListCacheKey(entity.ContentTypeBlog)).
		Return(nil, cache.ErrNotFound).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).Return(items, nil).Once()
	mockCache.On("Set", mock.Anything, ListCacheKey(entity.ContentTypeBlog), mock.Anything, time.Minute).
		Return(nil).Once()

	out := uc.ListContent(context.Background(), ListContentInput{Type: entity.ContentTypeBlog})

	require.NotNil(t, out.Featured)
	mockSource.AssertExpectations(t)
	mockCache.AssertExpectations(t)
}

func TestSortByRecency(t *testing.T) {
	undatedA := blogItem("x", time.Time{})
	undatedB := blogItem("y", time.Time{})
	newest := blogItem("n", day(9))
	oldest := blogItem("o", day(1))

	sorted := SortByRecency([]*entity.Content{undatedA, oldest, newest, undatedB})

	assert.Equal(t, "n", sorted[0].ID)
	assert.Equal(t, "o", sorted[1].ID)
	// Undated items keep their relative order at the tail.
	assert.Equal(t, "x", sorted[2].ID)
	assert.Equal(t, "y", sorted[3].ID)

	// Sorting is idempotent.
	again := SortByRecency(sorted)
	assert.Equal(t, sorted, again)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 9))
	assert.Equal(t, 1, TotalPages(9, 9))
	assert.Equal(t, 2, TotalPages(10, 9))
	assert.Equal(t, 3, TotalPages(25, 9))
}

func TestListClients_FailureDegradesToEmpty(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewContentUseCase(mockSource, nil, zap.NewNop(), 9, time.Minute)

	mockSource.On("ListClients", mock.Anything).Return(nil, errors.New("timeout")).Once()

	clients := uc.ListClients(context.Background())
	assert.Empty(t, clients)
	assert.NotNil(t, clients)
}
