package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"go.uber.org/zap"
)

// SecretValueAPI is the part of the Secrets Manager API used to resolve MoMo credentials
type SecretValueAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves secrets from AWS Secrets Manager with an environment fallback.
type SecretsManagerClient struct {
	svc    SecretValueAPI
	logger *zap.Logger
	getenv func(string) string
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context, logger *zap.Logger) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return NewSecretsManagerClientWithAPI(secretsmanager.NewFromConfig(cfg), logger), nil
}

// NewSecretsManagerClientWithAPI wraps an existing Secrets Manager API implementation.
func NewSecretsManagerClientWithAPI(svc SecretValueAPI, logger *zap.Logger) *SecretsManagerClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SecretsManagerClient{
		svc:    svc,
		logger: logger,
		getenv: os.Getenv,
	}
}

// GetSecretString fetches the secret whose ARN is held in secretArnEnvVar. When the ARN is
// unset or the fetch fails it reads fallbackEnvVar instead. A secret stored as a JSON object
// with a single key resolves to that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := c.getenv(secretArnEnvVar)

	if secretArn != "" && c.svc != nil {
		c.logger.Debug("Fetching secret from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))

		result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		})
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			return c.unwrapSecret(secretArn, *result.SecretString), nil
		}

		c.logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	} else {
		c.logger.Debug("Secret ARN not set, using env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
		)
	}

	if value := c.getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

func (c *SecretsManagerClient) unwrapSecret(secretArn, secret string) string {
	var secretJSON map[string]string
	if err := json.Unmarshal([]byte(secret), &secretJSON); err != nil {
		return secret
	}
	if len(secretJSON) == 1 {
		for key, value := range secretJSON {
			c.logger.Debug("Extracted secret from single-key JSON", zap.String("secretArn", secretArn), zap.String("jsonKey", key))
			return value
		}
	}

	c.logger.Warn("Secret was JSON but not single-key format, returning raw JSON string",
		zap.String("secretArn", secretArn),
		zap.Int("keyCount", len(secretJSON)),
	)
	return secret
}
