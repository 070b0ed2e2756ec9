package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
)

// RetryConfig controls exponential backoff retries. Only RetryableMethods are retried,
// so requests that move money are never sent twice.
type RetryConfig struct {
	MaxRetries           int
	InitialInterval      time.Duration
	MaxInterval          time.Duration
	Multiplier           float64
	MaxElapsedTime       time.Duration
	RetryableStatusCodes []int
	RetryableMethods     []string
}

// DefaultRetryConfig retries GETs up to three times on 408, 429 and 5xx gateway errors.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:           3,
		InitialInterval:      100 * time.Millisecond,
		MaxInterval:          10 * time.Second,
		Multiplier:           2.0,
		MaxElapsedTime:       30 * time.Second,
		RetryableStatusCodes: []int{408, 429, 500, 502, 503, 504},
		RetryableMethods:     []string{http.MethodGet},
	}
}

func (c *HTTPClient) shouldRetry(method string) bool {
	if c.retryConfig == nil || c.retryConfig.MaxRetries <= 0 {
		return false
	}
	return slices.ContainsFunc(c.retryConfig.RetryableMethods, func(m string) bool {
		return strings.EqualFold(m, method)
	})
}

// doWithRetry rebuilds the request for every attempt. When the retryable statuses outlast
// every attempt the last response is returned as is.
func (c *HTTPClient) doWithRetry(ctx context.Context, method, path string, build func() (*http.Request, error)) (*http.Response, error) {
	var (
		resp    *http.Response
		sendErr error
		attempt int
	)

	operation := func() error {
		attempt++
		req, err := build()
		if err != nil {
			return backoff.Permanent(err)
		}

		resp, sendErr = c.httpClient.Do(req)
		if sendErr != nil {
			if ctx.Err() != nil {
				return backoff.Permanent(sendErr)
			}
			return sendErr
		}

		if !slices.Contains(c.retryConfig.RetryableStatusCodes, resp.StatusCode) {
			return nil
		}

		c.logger.Debug("Retryable status received",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
			zap.Int("attempt", attempt))

		// Buffer the body so the final response stays readable
		drained, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		resp.Body = io.NopCloser(bytes.NewReader(drained))
		return fmt.Errorf("retryable status code: %d", resp.StatusCode)
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryConfig.InitialInterval
	policy.MaxInterval = c.retryConfig.MaxInterval
	policy.Multiplier = c.retryConfig.Multiplier
	policy.MaxElapsedTime = c.retryConfig.MaxElapsedTime

	err := backoff.Retry(operation, backoff.WithContext(
		backoff.WithMaxRetries(policy, uint64(c.retryConfig.MaxRetries)), ctx))
	switch {
	case err == nil:
		return resp, nil
	case sendErr != nil:
		return nil, sendErr
	case ctx.Err() != nil:
		return nil, ctx.Err()
	case resp != nil:
		return resp, nil
	default:
		return nil, err
	}
}
