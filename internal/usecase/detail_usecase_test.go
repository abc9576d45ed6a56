package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/contentsource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func wordsOfBody(n int) string {
	return strings.TrimSpace(strings.Repeat("kata ", n))
}

func TestGetDetail_Found(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewDetailUseCase(mockSource, zap.NewNop(), 200, 5)

	item := blogItem("42", day(10))
	item.Body = wordsOfBody(400)
	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "42").Return(item, nil).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return([]*entity.Content{item, blogItem("1", day(1))}, nil).Once()

	out := uc.GetDetail(context.Background(), entity.ContentTypeBlog, "42")

	assert.Equal(t, DetailFound, out.Status)
	require.NotNil(t, out.Item)
	assert.Equal(t, "42", out.Item.ID)
	assert.Equal(t, 2, out.ReadingMinutes)
	mockSource.AssertExpectations(t)
}

func TestGetDetail_NotFoundIsDistinctFromError(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewDetailUseCase(mockSource, zap.NewNop(), 200, 5)

	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "404").
		Return(nil, contentsource.ErrNotFound).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return([]*entity.Content{blogItem("1", day(1))}, nil).Once()

	out := uc.GetDetail(context.Background(), entity.ContentTypeBlog, "404")
	assert.Equal(t, DetailNotFound, out.Status)
	assert.Nil(t, out.Item)

	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "boom").
		Return(nil, errors.New("connection refused")).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return([]*entity.Content{blogItem("1", day(1))}, nil).Once()

	out = uc.GetDetail(context.Background(), entity.ContentTypeBlog, "boom")
	assert.Equal(t, DetailError, out.Status)
	assert.Nil(t, out.Item)
}

func TestGetDetail_RelatedExcludesCurrentAndTruncates(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewDetailUseCase(mockSource, zap.NewNop(), 200, 5)

	current := blogItem("7", day(7))
	collection := []*entity.Content{current}
	for i := 1; i <= 8; i++ {
		if i != 7 {
			collection = append(collection, blogItem(string(rune('0'+i)), day(i)))
		}
	}
	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "7").Return(current, nil).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).Return(collection, nil).Once()

	out := uc.GetDetail(context.Background(), entity.ContentTypeBlog, "7")

	require.Len(t, out.Related, 5)
	for _, item := range out.Related {
		assert.NotEqual(t, "7", item.ID)
	}
	// Most recent first.
	assert.Equal(t, "8", out.Related[0].ID)
}

func TestGetDetail_RelatedFailureDoesNotSuppressPrimary(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewDetailUseCase(mockSource, zap.NewNop(), 200, 5)

	item := blogItem("1", day(1))
	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "1").Return(item, nil).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return(nil, errors.New("timeout")).Once()

	out := uc.GetDetail(context.Background(), entity.ContentTypeBlog, "1")

	assert.Equal(t, DetailFound, out.Status)
	assert.Empty(t, out.Related)
}

func TestGetDetail_PrimaryFailureStillReturnsRelated(t *testing.T) {
	mockSource := new(MockSource)
	uc := NewDetailUseCase(mockSource, zap.NewNop(), 200, 5)

	mockSource.On("Get", mock.Anything, entity.ContentTypeBlog, "1").
		Return(nil, contentsource.ErrNotFound).Once()
	mockSource.On("List", mock.Anything, entity.ContentTypeBlog).
		Return([]*entity.Content{blogItem("2", day(2))}, nil).Once()

	out := uc.GetDetail(context.Background(), entity.ContentTypeBlog, "1")

	assert.Equal(t, DetailNotFound, out.Status)
	assert.Len(t, out.Related, 1)
}

func TestReadingTime(t *testing.T) {
	assert.Equal(t, 2, ReadingTime(wordsOfBody(400), 200))
	assert.Equal(t, 3, ReadingTime(wordsOfBody(401), 200))
	assert.Equal(t, 1, ReadingTime(wordsOfBody(199), 200))
	assert.Equal(t, 1, ReadingTime("", 200))
}
