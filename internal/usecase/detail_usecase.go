package usecase

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/contentsource"
	"go.uber.org/zap"
)

type DetailStatus int

const (
	DetailFound DetailStatus = iota
	// DetailNotFound means the upstream answered and the record does not
	// exist. DetailError covers transport failures; the two render
	// differently and are kept apart on purpose.
	DetailNotFound
	DetailError
)

type DetailUseCase struct {
	source       contentsource.Source
	logger       *zap.Logger
	readingWPM   int
	relatedCount int
}

func NewDetailUseCase(src contentsource.Source, log *zap.Logger, readingWPM, relatedCount int) *DetailUseCase {
	if readingWPM <= 0 {
		readingWPM = 200
	}
	if relatedCount <= 0 {
		relatedCount = 5
	}
	return &DetailUseCase{
		source:       src,
		logger:       log,
		readingWPM:   readingWPM,
		relatedCount: relatedCount,
	}
}

type ContentDetailOutput struct {
	Status         DetailStatus
	Item           *entity.Content
	ReadingMinutes int
	Related        []*entity.Content
}

// GetDetail resolves one item plus its related-items sidebar. The two
// fetches run independently; a related-items failure degrades to an empty
// list and never suppresses the primary record, and vice versa.
func (uc *DetailUseCase) GetDetail(ctx context.Context, contentType, id string) *ContentDetailOutput {
	var (
		wg         sync.WaitGroup
		item       *entity.Content
		primaryErr error
		related    []*entity.Content
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		item, primaryErr = uc.source.Get(ctx, contentType, id)
	}()
	go func() {
		defer wg.Done()
		related = uc.fetchRelated(ctx, contentType, id)
	}()
	wg.Wait()

	if primaryErr != nil {
		if errors.Is(primaryErr, contentsource.ErrNotFound) {
			uc.logger.Info("Content record not found",
				zap.String("content_type", contentType),
				zap.String("id", id),
			)
			return &ContentDetailOutput{Status: DetailNotFound, Related: related}
		}
		uc.logger.Error("Failed to fetch content record",
			zap.String("content_type", contentType),
			zap.String("id", id),
			zap.Error(primaryErr),
		)
		return &ContentDetailOutput{Status: DetailError, Related: related}
	}

	return &ContentDetailOutput{
		Status:         DetailFound,
		Item:           item,
		ReadingMinutes: ReadingTime(item.Body, uc.readingWPM),
		Related:        related,
	}
}

func (uc *DetailUseCase) fetchRelated(ctx context.Context, contentType, id string) []*entity.Content {
	items, err := uc.source.List(ctx, contentType)
	if err != nil {
		uc.logger.Warn("Failed to fetch related items, serving none",
			zap.String("content_type", contentType),
			zap.Error(err),
		)
		return []*entity.Content{}
	}

	related := make([]*entity.Content, 0, uc.relatedCount)
	for _, item := range SortByRecency(items) {
		if item.ID == id {
			continue
		}
		related = append(related, item)
		if len(related) == uc.relatedCount {
			break
		}
	}
	return related
}

// ReadingTime estimates minutes to read a body of text at the given pace,
// rounded up and never below one minute.
func ReadingTime(body string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = 200
	}
	words := len(strings.Fields(body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}
