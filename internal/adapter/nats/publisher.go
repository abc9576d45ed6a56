package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/artdevata/content-service/internal/config"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

const (
	ContentLikedSubject   = "content.liked"
	ContentUnlikedSubject = "content.unliked"
)

type Publisher struct {
	nc     *nats.Conn
	logger *zap.Logger
}

type likeEventPayload struct {
	ContentType string `json:"content_type"`
	ContentID   string `json:"content_id"`
	Count       int64  `json:"count"`
}

func NewNATSPublisher(cfg *config.NATSConfig, logger *zap.Logger) (*Publisher, error) {
	opts := []nats.Option{
		nats.Timeout(cfg.ConnectTimeout),
		nats.ErrorHandler(func(nc *nats.Conn, sub *nats.Subscription, err error) {
			logger.Error("NATS error", zap.Error(err))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("NATS reconnected", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			logger.Warn("NATS disconnected", zap.Error(err))
		}),
	}

	nc, err := nats.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	logger.Info("Successfully connected to NATS", zap.String("url", nc.ConnectedUrl()))

	return &Publisher{nc: nc, logger: logger}, nil
}

func (p *Publisher) PublishContentLiked(ctx context.Context, contentType, contentID string, count int64) error {
	return p.publish(ContentLikedSubject, contentType, contentID, count)
}

func (p *Publisher) PublishContentUnliked(ctx context.Context, contentType, contentID string, count int64) error {
	return p.publish(ContentUnlikedSubject, contentType, contentID, count)
}

func (p *Publisher) publish(subject, contentType, contentID string, count int64) error {
	data, err := json.Marshal(likeEventPayload{
		ContentType: contentType,
		ContentID:   contentID,
		Count:       count,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload for %s: %w", subject, err)
	}

	if err := p.nc.Publish(subject, data); err != nil {
		p.logger.Error("Failed to publish NATS message",
			zap.String("subject", subject),
			zap.String("content_id", contentID),
			zap.Error(err),
		)
		return fmt.Errorf("failed to publish NATS message for %s: %w", subject, err)
	}
	p.logger.Debug("Published NATS message",
		zap.String("subject", subject),
		zap.String("content_type", contentType),
		zap.String("content_id", contentID),
	)
	return nil
}

func (p *Publisher) Close() {
	if p.nc != nil && !p.nc.IsClosed() {
		if err := p.nc.Drain(); err != nil {
			p.logger.Error("Error draining NATS connection", zap.Error(err))
		}
		p.nc.Close()
		p.logger.Info("NATS publisher connection closed")
	}
}
