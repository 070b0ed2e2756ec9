package disbursement

import (
	"context"
	"errors"
	"fmt"
	"sync"

	httpClient "github.com/cyphera/momo-disbursement-go/client/http"
	"github.com/cyphera/momo-disbursement-go/constants"

	"golang.org/x/sync/singleflight"
)

// ErrMissingAccessToken is returned when the token endpoint succeeds without an access_token
var ErrMissingAccessToken = errors.New("token response did not contain an access_token")

const tokenFlightKey = "access_token"

// tokenHolder caches the bearer token. There is no expiry tracking; the remote service
// decides validity and callers drop a rejected token with InvalidateToken.
type tokenHolder struct {
	mu    sync.RWMutex
	token string
	group singleflight.Group
}

func (h *tokenHolder) get() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *tokenHolder) set(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = token
}

func (h *tokenHolder) clear() {
	h.set("")
}

// Authenticate requests a new access token and caches it. Every call issues a token
// request; concurrent calls share the one in flight. On failure the cache is not updated.
func (c *Client) Authenticate(ctx context.Context) (string, error) {
	token, err, shared := c.tokens.group.Do(tokenFlightKey, func() (interface{}, error) {
		return c.requestToken(ctx)
	})
	if err != nil {
		return "", err
	}
	if shared {
		c.logger.Debug("Joined in-flight MoMo token request")
	}
	return token.(string), nil
}

// InvalidateToken drops the cached token so the next call authenticates again.
func (c *Client) InvalidateToken() {
	c.tokens.clear()
}

// ensureToken returns the cached token, authenticating on a miss. The cache is checked
// again inside the flight so a caller arriving just after a refresh reuses its token.
func (c *Client) ensureToken(ctx context.Context) (string, error) {
	if token := c.tokens.get(); token != "" {
		return token, nil
	}

	token, err, _ := c.tokens.group.Do(tokenFlightKey, func() (interface{}, error) {
		if token := c.tokens.get(); token != "" {
			return token, nil
		}
		return c.requestToken(ctx)
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

func (c *Client) requestToken(ctx context.Context) (string, error) {
	c.logger.Debug("Requesting MoMo access token")

	resp, err := c.httpClient.Post(
		ctx,
		tokenPath,
		nil,
		httpClient.WithBasicAuth(c.apiUser, c.apiKey),
		httpClient.WithHeader(constants.SubscriptionKeyHeader, c.subscriptionKey),
	)
	if err != nil {
		return "", fmt.Errorf("failed to request access token: %w", err)
	}

	result, err := c.handleResponse("authenticate", tokenPath, resp)
	if err != nil {
		return "", err
	}

	value, _ := result.Get("access_token")
	token, _ := value.(string)
	if token == "" {
		return "", ErrMissingAccessToken
	}

	c.tokens.set(token)
	c.logger.Debug("MoMo access token acquired")
	return token, nil
}
