package formrelay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/artdevata/content-service/internal/config"
	"github.com/artdevata/content-service/internal/port/formrelay"
	"go.uber.org/zap"
)

type httpSender struct {
	cfg        *config.RelayConfig
	httpClient *http.Client
	logger     *zap.Logger
}

func NewHTTPSender(cfg *config.RelayConfig, logger *zap.Logger) formrelay.Sender {
	return &httpSender{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// Send posts the submission as JSON. One attempt, 2xx is success,
// everything else is the caller's problem to report.
func (s *httpSender) Send(ctx context.Context, submission formrelay.Submission) error {
	payload, err := json.Marshal(submission)
	if err != nil {
		return fmt.Errorf("httpSender.Send: marshal submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.URL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("httpSender.Send: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Form relay request failed", zap.String("url", s.cfg.URL), zap.Error(err))
		return fmt.Errorf("httpSender.Send: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("Form relay returned unexpected status",
			zap.String("url", s.cfg.URL),
			zap.Int("status", resp.StatusCode),
		)
		return fmt.Errorf("httpSender.Send: unexpected status %d", resp.StatusCode)
	}

	s.logger.Info("Lead forwarded to form relay", zap.String("name", submission.Name))
	return nil
}
