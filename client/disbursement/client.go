package disbursement

import (
	"context"
	"fmt"
	"net/http"
	"reflect"

	httpClient "github.com/cyphera/momo-disbursement-go/client/http"
	"github.com/cyphera/momo-disbursement-go/constants"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// SandboxBaseURL is the MoMo developer sandbox
	SandboxBaseURL = "https://sandbox.momodeveloper.mtn.com"

	tokenPath = "/disbursement/token/"
)

// Client talks to the MoMo Disbursement API. It is safe for concurrent use: the cached
// access token is guarded and concurrent cache misses share one token request.
type Client struct {
	apiUser         string
	apiKey          string
	subscriptionKey string

	baseURL           string
	targetEnvironment string
	callbackURL       string
	httpOptions       []httpClient.ClientOption

	httpClient *httpClient.HTTPClient
	logger     *zap.Logger
	tokens     *tokenHolder
	validate   *validator.Validate
}

// Option configures a Client
type Option func(*Client)

// WithBaseURL points the client at another MoMo host, e.g. production.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTargetEnvironment sets the default X-Target-Environment value.
func WithTargetEnvironment(environment string) Option {
	return func(c *Client) {
		c.targetEnvironment = environment
	}
}

// WithCallbackURL sets the default X-Callback-Url sent with deposits, refunds and transfers.
func WithCallbackURL(callbackURL string) Option {
	return func(c *Client) {
		c.callbackURL = callbackURL
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithHTTPOptions passes extra options to the underlying HTTP client, such as timeouts,
// retry configuration, rate limiting middleware or a metrics collector.
func WithHTTPOptions(options ...httpClient.ClientOption) Option {
	return func(c *Client) {
		c.httpOptions = append(c.httpOptions, options...)
	}
}

// New creates a disbursement client. No token is fetched until the first call needs one.
func New(apiUser, apiKey, subscriptionKey string, options ...Option) *Client {
	c := &Client{
		apiUser:           apiUser,
		apiKey:            apiKey,
		subscriptionKey:   subscriptionKey,
		baseURL:           SandboxBaseURL,
		targetEnvironment: constants.SandboxEnvironment,
		logger:            zap.NewNop(),
		tokens:            &tokenHolder{},
		validate:          newValidator(),
	}

	for _, option := range options {
		option(c)
	}

	httpOptions := append([]httpClient.ClientOption{
		httpClient.WithBaseURL(c.baseURL),
		httpClient.WithLogger(c.logger),
	}, c.httpOptions...)
	c.httpClient = httpClient.NewHTTPClient(httpOptions...)

	return c
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.InexactFloat64()
		}
		return nil
	}, decimal.Decimal{})
	return v
}

// requestHeaders describes the per-call header variations
type requestHeaders struct {
	referenceID string
	environment string
	callbackURL string
}

// authHeaders fetches a token when none is cached and builds the header set for an API call.
func (c *Client) authHeaders(ctx context.Context, h requestHeaders) ([]httpClient.RequestOption, error) {
	token, err := c.ensureToken(ctx)
	if err != nil {
		return nil, err
	}

	environment := h.environment
	if environment == "" {
		environment = c.targetEnvironment
	}

	options := []httpClient.RequestOption{
		httpClient.WithBearerToken(token),
		httpClient.WithHeader(constants.TargetEnvironmentHeader, environment),
		httpClient.WithHeader(constants.SubscriptionKeyHeader, c.subscriptionKey),
		httpClient.WithHeader("Content-Type", "application/json"),
	}
	if h.referenceID != "" {
		options = append(options, httpClient.WithHeader(constants.ReferenceIDHeader, h.referenceID))
	}
	if h.callbackURL != "" {
		options = append(options, httpClient.WithHeader(constants.CallbackURLHeader, h.callbackURL))
	}
	return options, nil
}

// query performs an authenticated read and returns the normalized body.
func (c *Client) query(ctx context.Context, operation, path string, opts []CallOption) (*Result, error) {
	cfg := newCallConfig(opts)

	headers, err := c.authHeaders(ctx, requestHeaders{environment: cfg.environment})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, path, headers...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return c.handleResponse(operation, path, resp)
}

// submit performs an authenticated POST carrying a fresh reference id and acknowledges it as pending.
func (c *Client) submit(ctx context.Context, operation, path string, body interface{}, environment, callbackURL string) (*PendingResult, error) {
	referenceID := uuid.NewString()

	if callbackURL == "" {
		callbackURL = c.callbackURL
	}
	headers, err := c.authHeaders(ctx, requestHeaders{
		referenceID: referenceID,
		environment: environment,
		callbackURL: callbackURL,
	})
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, path, body, headers...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	if _, err := c.handleResponse(operation, path, resp); err != nil {
		return nil, err
	}

	c.logger.Debug("MoMo request accepted",
		zap.String("operation", operation),
		zap.String("reference_id", referenceID))

	return &PendingResult{Status: constants.PendingStatus, ReferenceID: referenceID}, nil
}

func (c *Client) handleResponse(operation, path string, resp *http.Response) (*Result, error) {
	body, err := httpClient.ReadBody(resp)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}

	result, err := normalizeResponse(resp.StatusCode, body)
	if err != nil {
		if apiErr, ok := AsAPIError(err); ok {
			c.logger.Warn("MoMo API returned an error",
				zap.String("operation", operation),
				zap.String("path", path),
				zap.Int("status", apiErr.StatusCode),
				zap.String("code", apiErr.Code),
				zap.String("message", apiErr.Message))
		}
		return nil, err
	}
	return result, nil
}
