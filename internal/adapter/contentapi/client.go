package contentapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/artdevata/content-service/internal/config"
	"github.com/artdevata/content-service/internal/entity"
	"github.com/artdevata/content-service/internal/port/contentsource"
	"go.uber.org/zap"
)

// Client fetches and normalizes records from the admin content API.
// It makes exactly one attempt per call; callers decide how to degrade.
type Client struct {
	cfg        *config.ContentConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewClient(cfg *config.ContentConfig, logger *zap.Logger) contentsource.Source {
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.RequestTimeout},
		logger:     logger,
	}
}

func (c *Client) List(ctx context.Context, contentType string) ([]*entity.Content, error) {
	if !entity.IsContentType(contentType) {
		return nil, fmt.Errorf("contentapi.List: unknown content type %q", contentType)
	}

	body, err := c.fetch(ctx, c.endpoint(contentType))
	if err != nil {
		return nil, fmt.Errorf("contentapi.List %s: %w", contentType, err)
	}

	raws, err := unwrapCollection(body)
	if err != nil {
		return nil, fmt.Errorf("contentapi.List %s: %w", contentType, err)
	}

	items := make([]*entity.Content, 0, len(raws))
	for _, raw := range raws {
		var rc rawContent
		if err := json.Unmarshal(raw, &rc); err != nil {
			c.logger.Warn("Skipping undecodable content record",
				zap.String("content_type", contentType),
				zap.Error(err),
			)
			continue
		}
		item := rc.normalize(contentType, c.cfg.StorageBaseURL)
		if item.Title == "" {
			c.logger.Debug("Dropping content record without a title",
				zap.String("content_type", contentType),
				zap.String("id", item.ID),
			)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

func (c *Client) Get(ctx context.Context, contentType, id string) (*entity.Content, error) {
	if !entity.IsContentType(contentType) {
		return nil, fmt.Errorf("contentapi.Get: unknown content type %q", contentType)
	}

	// The admin panel exposes no detail endpoint for services; resolve
	// those by lookup inside the collection instead.
	if contentType == entity.ContentTypeService {
		return c.getFromCollection(ctx, contentType, id)
	}

	body, err := c.fetch(ctx, c.endpoint(contentType)+"/"+id)
	if err != nil {
		return nil, fmt.Errorf("contentapi.Get %s/%s: %w", contentType, id, err)
	}

	raw, err := unwrapRecord(body)
	if err != nil {
		return nil, fmt.Errorf("contentapi.Get %s/%s: %w", contentType, id, err)
	}
	if raw == nil {
		return nil, contentsource.ErrNotFound
	}

	var rc rawContent
	if err := json.Unmarshal(raw, &rc); err != nil {
		return nil, fmt.Errorf("contentapi.Get %s/%s: decode record: %w", contentType, id, err)
	}
	item := rc.normalize(contentType, c.cfg.StorageBaseURL)
	if item.ID == "" && item.Title == "" {
		return nil, contentsource.ErrNotFound
	}
	return item, nil
}

func (c *Client) ListClients(ctx context.Context) ([]*entity.Client, error) {
	body, err := c.fetch(ctx, strings.TrimRight(c.cfg.APIBaseURL, "/")+"/clients")
	if err != nil {
		return nil, fmt.Errorf("contentapi.ListClients: %w", err)
	}

	raws, err := unwrapCollection(body)
	if err != nil {
		return nil, fmt.Errorf("contentapi.ListClients: %w", err)
	}

	clients := make([]*entity.Client, 0, len(raws))
	for _, raw := range raws {
		var rc rawClient
		if err := json.Unmarshal(raw, &rc); err != nil {
			c.logger.Warn("Skipping undecodable client record", zap.Error(err))
			continue
		}
		client := rc.normalize(c.cfg.StorageBaseURL)
		// A client entry without a resolvable logo renders as a hole in
		// the grid, so it is dropped here.
		if client.Logo == "" {
			c.logger.Debug("Dropping client record without a logo", zap.String("id", client.ID))
			continue
		}
		clients = append(clients, client)
	}
	return clients, nil
}

func (c *Client) getFromCollection(ctx context.Context, contentType, id string) (*entity.Content, error) {
	items, err := c.List(ctx, contentType)
	if err != nil {
		return nil, err
	}
	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, contentsource.ErrNotFound
}

func (c *Client) endpoint(contentType string) string {
	return strings.TrimRight(c.cfg.APIBaseURL, "/") + "/" + contentType
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Content API request failed", zap.String("url", url), zap.Error(err))
		return nil, fmt.Errorf("request %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, contentsource.ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("Content API returned unexpected status",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return nil, fmt.Errorf("request %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response from %s: %w", url, err)
	}
	return body, nil
}

// unwrapCollection probes the envelope variants the admin API has been seen
// to produce: a bare array, {"data": [...]}, or the array under a
// type-named key. Keys are tried in lexicographic order after "data" so the
// result is deterministic. No array anywhere means an empty collection.
func unwrapCollection(body []byte) ([]json.RawMessage, error) {
	var items []json.RawMessage
	if err := json.Unmarshal(body, &items); err == nil {
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode envelope: %w", err)
	}

	if raw, ok := envelope["data"]; ok {
		if err := json.Unmarshal(raw, &items); err == nil {
			return items, nil
		}
	}

	keys := make([]string, 0, len(envelope))
	for k := range envelope {
		if k != "data" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		if err := json.Unmarshal(envelope[k], &items); err == nil {
			return items, nil
		}
	}
	return []json.RawMessage{}, nil
}

// unwrapRecord handles single records returned bare or wrapped under
// "data". A nil result means the upstream answered with no record.
func unwrapRecord(body []byte) (json.RawMessage, error) {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" || trimmed == "null" {
		return nil, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decode record envelope: %w", err)
	}

	if raw, ok := envelope["data"]; ok {
		inner := strings.TrimSpace(string(raw))
		if inner == "" || inner == "null" {
			return nil, nil
		}
		if strings.HasPrefix(inner, "{") {
			return raw, nil
		}
	}
	return json.RawMessage(body), nil
}
