package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	awsclient "github.com/cyphera/momo-disbursement-go/client/aws"
	"github.com/cyphera/momo-disbursement-go/client/disbursement"
	httpClient "github.com/cyphera/momo-disbursement-go/client/http"
	"github.com/cyphera/momo-disbursement-go/config"
	"github.com/cyphera/momo-disbursement-go/logger"
	"github.com/cyphera/momo-disbursement-go/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errOut: stderr, logger: zap.NewNop()}
	if len(args) == 0 || args[0] == "-h" || args[0] == "help" {
		a.usage()
		return 2
	}
	name := args[0]
	if _, ok := commands[name]; !ok {
		return report(stderr, a.execute(ctx, name, nil))
	}

	cfg, err := config.Load()
	if err != nil {
		return report(stderr, err)
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel, Stage: cfg.Stage}); err != nil {
		return report(stderr, err)
	}
	defer logger.Sync()
	a.logger = logger.Log
	a.callbackAddr = cfg.CallbackAddr
	a.serve = serveHTTP(ctx, a.logger)
	gin.SetMode(gin.ReleaseMode)

	if needsClient(name) {
		if cfg.NeedsSecrets() {
			secrets, err := awsclient.NewSecretsManagerClient(ctx, a.logger)
			if err != nil {
				return report(stderr, err)
			}
			if err := cfg.ResolveSecrets(ctx, secrets); err != nil {
				return report(stderr, err)
			}
		}
		if err := cfg.Validate(); err != nil {
			return report(stderr, err)
		}

		collector, err := metrics.NewPrometheusCollector(nil)
		if err != nil {
			return report(stderr, err)
		}
		a.client = disbursement.New(cfg.APIUser, cfg.APIKey, cfg.SubscriptionKey, clientOptions(cfg, a.logger, collector)...)
	}

	return report(stderr, a.execute(ctx, name, args[1:]))
}

func clientOptions(cfg *config.Config, log *zap.Logger, collector httpClient.MetricsCollector) []disbursement.Option {
	httpOptions := []httpClient.ClientOption{
		httpClient.WithTimeout(cfg.HTTPTimeout),
		httpClient.WithMetricsCollector(collector),
	}
	if cfg.HTTPRetries > 0 {
		retry := httpClient.DefaultRetryConfig()
		retry.MaxRetries = cfg.HTTPRetries
		httpOptions = append(httpOptions, httpClient.WithRetryConfig(retry))
	}
	if cfg.RateLimitRPS > 0 {
		httpOptions = append(httpOptions, httpClient.WithMiddleware(httpClient.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)))
	}
	if log.Core().Enabled(zapcore.DebugLevel) {
		httpOptions = append(httpOptions, httpClient.WithMiddleware(httpClient.LoggingMiddleware(log)))
	}

	options := []disbursement.Option{
		disbursement.WithLogger(log),
		disbursement.WithTargetEnvironment(cfg.TargetEnvironment),
		disbursement.WithCallbackURL(cfg.CallbackURL),
		disbursement.WithHTTPOptions(httpOptions...),
	}
	if cfg.BaseURL != "" {
		options = append(options, disbursement.WithBaseURL(cfg.BaseURL))
	}
	return options
}

// report prints err and maps it to an exit code
func report(stderr io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if errors.Is(err, errUsage) {
		fmt.Fprintln(stderr, err)
		return 2
	}
	if apiErr, ok := disbursement.AsAPIError(err); ok {
		fmt.Fprintln(stderr, apiErr.Error())
		return 1
	}
	fmt.Fprintf(stderr, "error: %v\n", err)
	return 1
}

// serveHTTP runs a server until ctx is cancelled, then shuts it down gracefully.
func serveHTTP(ctx context.Context, log *zap.Logger) func(addr string, handler http.Handler) error {
	return func(addr string, handler http.Handler) error {
		server := &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 20 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}

		log.Info("Shutting down callback server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	}
}
