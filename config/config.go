package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cyphera/momo-disbursement-go/constants"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment variable names
const (
	APIUserEnv                  = "MOMO_API_USER"
	APIKeyEnv                   = "MOMO_API_KEY"
	SubscriptionKeyEnv          = "MOMO_SUBSCRIPTION_KEY"
	BaseURLEnv                  = "MOMO_BASE_URL"
	TargetEnvironmentEnv        = "MOMO_TARGET_ENVIRONMENT"
	CallbackURLEnv              = "MOMO_CALLBACK_URL"
	HTTPTimeoutEnv              = "MOMO_HTTP_TIMEOUT"
	HTTPRetriesEnv              = "MOMO_HTTP_RETRIES"
	RateLimitRPSEnv             = "MOMO_RATE_LIMIT_RPS"
	RateLimitBurstEnv           = "MOMO_RATE_LIMIT_BURST"
	CallbackAddrEnv             = "MOMO_CALLBACK_ADDR"
	LogLevelEnv                 = "LOG_LEVEL"
	StageEnv                    = "STAGE"
	APIKeySecretARNEnv          = "MOMO_API_KEY_SECRET_ARN"
	SubscriptionKeySecretARNEnv = "MOMO_SUBSCRIPTION_KEY_SECRET_ARN"
)

// ErrMissingCredentials is returned by Validate when a credential is not configured
var ErrMissingCredentials = errors.New("missing MoMo credentials")

// Config holds the settings used to build a MoMo client and the callback receiver.
type Config struct {
	APIUser           string        `mapstructure:"MOMO_API_USER"`
	APIKey            string        `mapstructure:"MOMO_API_KEY"`
	SubscriptionKey   string        `mapstructure:"MOMO_SUBSCRIPTION_KEY"`
	BaseURL           string        `mapstructure:"MOMO_BASE_URL"`
	TargetEnvironment string        `mapstructure:"MOMO_TARGET_ENVIRONMENT"`
	CallbackURL       string        `mapstructure:"MOMO_CALLBACK_URL"`
	HTTPTimeout       time.Duration `mapstructure:"MOMO_HTTP_TIMEOUT"`
	HTTPRetries       int           `mapstructure:"MOMO_HTTP_RETRIES"`
	RateLimitRPS      float64       `mapstructure:"MOMO_RATE_LIMIT_RPS"`
	RateLimitBurst    int           `mapstructure:"MOMO_RATE_LIMIT_BURST"`
	CallbackAddr      string        `mapstructure:"MOMO_CALLBACK_ADDR"`
	LogLevel          string        `mapstructure:"LOG_LEVEL"`
	Stage             string        `mapstructure:"STAGE"`

	APIKeySecretARN          string `mapstructure:"MOMO_API_KEY_SECRET_ARN"`
	SubscriptionKeySecretARN string `mapstructure:"MOMO_SUBSCRIPTION_KEY_SECRET_ARN"`
}

// SecretResolver looks up a secret by the ARN held in one env var, falling back to another
type SecretResolver interface {
	GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error)
}

// Load reads an optional .env file and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	// A missing .env file is fine; the environment may already be populated
	_ = godotenv.Load(envFiles...)

	v := viper.New()
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault(TargetEnvironmentEnv, constants.SandboxEnvironment)
	v.SetDefault(HTTPTimeoutEnv, "30s")
	v.SetDefault(HTTPRetriesEnv, 0)
	v.SetDefault(RateLimitRPSEnv, 0)
	v.SetDefault(RateLimitBurstEnv, 1)
	v.SetDefault(CallbackAddrEnv, ":8080")
	v.SetDefault(LogLevelEnv, "info")
	v.SetDefault(StageEnv, "dev")

	for _, key := range []string{
		APIUserEnv, APIKeyEnv, SubscriptionKeyEnv, BaseURLEnv, CallbackURLEnv,
		APIKeySecretARNEnv, SubscriptionKeySecretARNEnv,
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg.APIUser = strings.TrimSpace(cfg.APIUser)
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if cfg.RateLimitBurst < 1 {
		cfg.RateLimitBurst = 1
	}
	return &cfg, nil
}

// ResolveSecrets replaces the API key and subscription key with values from the secret
// store when their ARN variables are set.
func (c *Config) ResolveSecrets(ctx context.Context, secrets SecretResolver) error {
	if c.APIKeySecretARN != "" {
		value, err := secrets.GetSecretString(ctx, APIKeySecretARNEnv, APIKeyEnv)
		if err != nil {
			return fmt.Errorf("failed to resolve API key: %w", err)
		}
		c.APIKey = value
	}
	if c.SubscriptionKeySecretARN != "" {
		value, err := secrets.GetSecretString(ctx, SubscriptionKeySecretARNEnv, SubscriptionKeyEnv)
		if err != nil {
			return fmt.Errorf("failed to resolve subscription key: %w", err)
		}
		c.SubscriptionKey = value
	}
	return nil
}

// NeedsSecrets reports whether any credential is stored in the secret store
func (c *Config) NeedsSecrets() bool {
	return c.APIKeySecretARN != "" || c.SubscriptionKeySecretARN != ""
}

// Validate reports every missing credential in one error.
func (c *Config) Validate() error {
	var missing []string
	if c.APIUser == "" {
		missing = append(missing, APIUserEnv)
	}
	if c.APIKey == "" {
		missing = append(missing, APIKeyEnv)
	}
	if c.SubscriptionKey == "" {
		missing = append(missing, SubscriptionKeyEnv)
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingCredentials, strings.Join(missing, ", "))
	}
	if c.HTTPRetries < 0 {
		return fmt.Errorf("%s must not be negative, got %d", HTTPRetriesEnv, c.HTTPRetries)
	}
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("%s must be positive, got %s", HTTPTimeoutEnv, c.HTTPTimeout)
	}
	return nil
}
