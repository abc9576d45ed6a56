package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/artdevata/content-service/internal/port/likestore"
	"go.uber.org/zap"
)

type LikeEventPublisher interface {
	PublishContentLiked(ctx context.Context, contentType, contentID string, count int64) error
	PublishContentUnliked(ctx context.Context, contentType, contentID string, count int64) error
}

type LikeUseCase struct {
	store     likestore.Store
	publisher LikeEventPublisher
	logger    *zap.Logger
}

func NewLikeUseCase(store likestore.Store, pub LikeEventPublisher, log *zap.Logger) *LikeUseCase {
	return &LikeUseCase{
		store:     store,
		publisher: pub,
		logger:    log,
	}
}

type LikeStatus struct {
	Liked bool
	Count int64
}

type ToggleLikeInput struct {
	ContentType string
	ContentID   string
}

// ToggleLike flips the like flag and adjusts the counter so the two stay
// consistent: a set flag always implies a count of at least one, and
// toggling twice restores the original count.
func (uc *LikeUseCase) ToggleLike(ctx context.Context, input ToggleLikeInput) (*LikeStatus, error) {
	flagKey := likestore.FlagKey(input.ContentType, input.ContentID)
	countKey := likestore.CountKey(input.ContentType, input.ContentID)

	liked, count, err := uc.readState(ctx, flagKey, countKey)
	if err != nil {
		return nil, fmt.Errorf("LikeUseCase.ToggleLike: %w", err)
	}

	if liked {
		liked = false
		if count > 0 {
			count--
		}
	} else {
		liked = true
		count++
		if count < 1 {
			count = 1
		}
	}

	if err := uc.store.SetFlag(ctx, flagKey, liked); err != nil {
		return nil, fmt.Errorf("LikeUseCase.ToggleLike: failed to store flag: %w", err)
	}
	if err := uc.store.SetCount(ctx, countKey, count); err != nil {
		return nil, fmt.Errorf("LikeUseCase.ToggleLike: failed to store count: %w", err)
	}

	if uc.publisher != nil {
		var pubErr error
		if liked {
			pubErr = uc.publisher.PublishContentLiked(ctx, input.ContentType, input.ContentID, count)
		} else {
			pubErr = uc.publisher.PublishContentUnliked(ctx, input.ContentType, input.ContentID, count)
		}
		if pubErr != nil {
			uc.logger.Warn("Failed to publish like event",
				zap.String("content_type", input.ContentType),
				zap.String("content_id", input.ContentID),
				zap.Error(pubErr),
			)
		}
	}

	return &LikeStatus{Liked: liked, Count: count}, nil
}

func (uc *LikeUseCase) GetLikeStatus(ctx context.Context, contentType, contentID string) (*LikeStatus, error) {
	liked, count, err := uc.readState(ctx,
		likestore.FlagKey(contentType, contentID),
		likestore.CountKey(contentType, contentID),
	)
	if err != nil {
		return nil, fmt.Errorf("LikeUseCase.GetLikeStatus: %w", err)
	}
	return &LikeStatus{Liked: liked, Count: count}, nil
}

func (uc *LikeUseCase) readState(ctx context.Context, flagKey, countKey string) (bool, int64, error) {
	liked, err := uc.store.GetFlag(ctx, flagKey)
	if err != nil && !errors.Is(err, likestore.ErrNotFound) {
		return false, 0, fmt.Errorf("failed to read like flag: %w", err)
	}

	count, err := uc.store.GetCount(ctx, countKey)
	if err != nil && !errors.Is(err, likestore.ErrNotFound) {
		return false, 0, fmt.Errorf("failed to read like count: %w", err)
	}

	return liked, count, nil
}
