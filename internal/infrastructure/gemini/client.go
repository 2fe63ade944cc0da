package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/watermark-remover-backend/internal/domain/valueobject"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/infrastructure/config"
	"github.com/marcos-nsantos/watermark-remover-backend/internal/pkg/apperror"
)

const (
	apiKeyHeader     = "x-goog-api-key"
	maxResponseBytes = 64 << 20
	textPreviewLen   = 100

	promptTemplate = "Remove the watermark from this image at position x=%d, y=%d with width=%d and height=%d. " +
		"Seamlessly fill the area with appropriate background content that matches the surrounding pixels. " +
		"Return only the edited image without any text response."

	msgSafety       = "The AI model blocked this request due to safety filters. Try selecting a different region or using a different image."
	msgRecitation   = "The model detected potential copyright issues. Try a different image."
	msgNoContent    = "No content in response. The API may be experiencing issues - please try again."
	msgRefusal      = "The AI model declined to process this request. This may be due to content policy restrictions. Try selecting a different region or using a different image."
	msgUnexpected   = "Unexpected response format from API. Please try again."
	msgBadImageData = "The API returned image data that could not be decoded."
)

var safetyFinishReasons = map[string]bool{
	"SAFETY":             true,
	"IMAGE_SAFETY":       true,
	"PROHIBITED_CONTENT": true,
	"BLOCKLIST":          true,
	"SPII":               true,
}

var recitationFinishReasons = map[string]bool{
	"RECITATION":       true,
	"IMAGE_RECITATION": true,
}

// Client calls the Gemini generateContent API to inpaint a region.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	model       string
	maxAttempts int
	baseDelay   time.Duration
	credentials Credentials
	logger      *zap.Logger
	onRetry     func(err error, delay time.Duration)
}

func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	maxAttempts := max(cfg.MaxAttempts, 1)
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.HTTPTimeout},
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		model:       cfg.Model,
		maxAttempts: maxAttempts,
		baseDelay:   cfg.RetryBaseDelay,
		credentials: NewCredentials(cfg.APIKey),
		logger:      logger,
	}
}

// RemoveWatermark sends image to the model and returns the edited image
// bytes. Transient failures are retried with a linear delay; anything else
// ends the call on the first attempt.
func (c *Client) RemoveWatermark(ctx context.Context, image []byte, mimeType string, region valueobject.Region, apiKey string) ([]byte, error) {
	key, err := c.credentials.Resolve(apiKey)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf(promptTemplate, region.X, region.Y, region.Width, region.Height)
	body, err := json.Marshal(newGenerateRequest(image, mimeType, prompt))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("encoding gemini request: %w", err))
	}
	endpoint := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var (
		result  []byte
		attempt int
	)

	operation := func() error {
		attempt++
		out, err := c.generate(ctx, endpoint, key, body)
		if err != nil {
			if apperror.IsRetryable(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		result = out
		return nil
	}

	notify := func(err error, delay time.Duration) {
		c.logger.Warn("gemini attempt failed, retrying",
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.maxAttempts),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if c.onRetry != nil {
			c.onRetry(err, delay)
		}
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(&linearBackOff{base: c.baseDelay}, uint64(c.maxAttempts-1)),
		ctx,
	)

	start := time.Now()
	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		switch {
		case errors.Is(err, context.DeadlineExceeded):
			return nil, apperror.Timeout(err)
		case errors.Is(err, context.Canceled):
			c.logger.Info("gemini request cancelled",
				zap.Int("attempts", attempt),
				zap.Duration("elapsed", time.Since(start)),
			)
			return nil, apperror.Canceled(err)
		}
		c.logger.Error("gemini request failed",
			zap.Int("attempts", attempt),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	c.logger.Info("gemini request succeeded",
		zap.Int("attempts", attempt),
		zap.Duration("elapsed", time.Since(start)),
		zap.Int("output_bytes", len(result)),
	)
	return result, nil
}

func (c *Client) generate(ctx context.Context, endpoint, key string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("building gemini request: %w", err))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.RemoteTransient("failed to reach the Gemini API", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, apperror.RemoteTransient("failed to read the Gemini API response", err)
	}

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, apperror.RemoteTerminal(
			fmt.Sprintf("Gemini API rejected the request (HTTP %d): %s", resp.StatusCode, remoteMessage(raw)),
			http.StatusBadRequest,
		)
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return nil, apperror.RemoteTransient(
			fmt.Sprintf("Gemini API error (HTTP %d): %s", resp.StatusCode, remoteMessage(raw)),
			nil,
		)
	}

	var wire generateResponse
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, apperror.UnexpectedRemoteShape(msgUnexpected, err)
	}

	return c.interpret(normalize(&wire))
}

func (c *Client) interpret(r reply) ([]byte, error) {
	if r.failed {
		return nil, apperror.RemoteTerminal("Gemini API error: "+r.errorMessage, http.StatusBadGateway)
	}

	if r.finishReason != "" && r.finishReason != "STOP" {
		switch {
		case safetyFinishReasons[r.finishReason]:
			return nil, apperror.ContentPolicy(msgSafety)
		case recitationFinishReasons[r.finishReason]:
			return nil, apperror.RemoteTerminal(msgRecitation, http.StatusBadGateway)
		default:
			c.logger.Warn("gemini generation stopped", zap.String("finish_reason", r.finishReason))
			return nil, apperror.RemoteTerminal(
				fmt.Sprintf("Generation stopped unexpectedly: %s. Please try again.", r.finishReason),
				http.StatusBadGateway,
			)
		}
	}

	if !r.hasParts() {
		if r.blockReason != "" {
			return nil, apperror.ContentPolicy(
				fmt.Sprintf("Request blocked: %s. Try a different image or region.", r.blockReason))
		}
		return nil, apperror.RemoteTerminal(msgNoContent, http.StatusBadGateway)
	}

	if len(r.images) > 0 {
		data, err := base64.StdEncoding.DecodeString(r.images[0].data)
		if err != nil {
			return nil, apperror.UnexpectedRemoteShape(msgBadImageData, err)
		}
		return data, nil
	}

	if len(r.texts) > 0 {
		text := strings.Join(r.texts, " ")
		if isRefusal(text) {
			c.logger.Info("gemini declined the request", zap.String("reply", truncate(text, textPreviewLen)))
			return nil, apperror.ContentPolicy(msgRefusal)
		}
		return nil, apperror.RemoteTerminal(
			fmt.Sprintf("The model returned text instead of an image: %q", truncate(text, textPreviewLen)),
			http.StatusBadGateway,
		)
	}

	return nil, apperror.UnexpectedRemoteShape(msgUnexpected, nil)
}

// TestConnection reports whether the models endpoint accepts the key.
// Failures are logged and never returned.
func (c *Client) TestConnection(ctx context.Context, apiKey string) bool {
	key, err := c.credentials.Resolve(apiKey)
	if err != nil {
		c.logger.Warn("gemini connection test skipped", zap.Error(err))
		return false
	}

	if _, err := c.fetchModels(ctx, key); err != nil {
		c.logger.Warn("gemini connection test failed", zap.Error(err))
		return false
	}
	return true
}

func (c *Client) ListModels(ctx context.Context, apiKey string) ([]string, error) {
	key, err := c.credentials.Resolve(apiKey)
	if err != nil {
		return nil, err
	}
	return c.fetchModels(ctx, key)
}

type listModelsResponse struct {
	Models []struct {
		Name string `json:"name"`
	} `json:"models"`
}

func (c *Client) fetchModels(ctx context.Context, key string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/models", nil)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("building models request: %w", err))
	}
	req.Header.Set(apiKeyHeader, key)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperror.RemoteTransient("failed to reach the Gemini API", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperror.RemoteTerminal(
			fmt.Sprintf("failed to fetch models (HTTP %d)", resp.StatusCode),
			http.StatusBadGateway,
		)
	}

	var payload listModelsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperror.UnexpectedRemoteShape("failed to fetch models", err)
	}

	models := make([]string, 0, len(payload.Models))
	for _, m := range payload.Models {
		models = append(models, strings.TrimPrefix(m.Name, "models/"))
	}
	return models, nil
}

// remoteMessage extracts error.message from a JSON error body, falling back
// to the raw text.
func remoteMessage(raw []byte) string {
	var payload generateResponse
	if err := json.Unmarshal(raw, &payload); err == nil && payload.Error != nil && payload.Error.Message != "" {
		return payload.Error.Message
	}
	return truncate(strings.TrimSpace(string(raw)), 200)
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	runes := []rune(s)
	return string(runes[:n]) + "..."
}
