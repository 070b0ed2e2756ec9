package callback

import (
	"context"
	"net/http"

	"github.com/cyphera/momo-disbursement-go/client/disbursement"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Path is where MoMo delivers transaction callbacks
const Path = "/momo/callback"

// Func handles one decoded callback. Returning an error makes the receiver answer 500
// so MoMo delivers the callback again.
type Func func(ctx context.Context, status disbursement.TransferStatus) error

// NewHandler returns a gin handler that decodes the final state MoMo posts to X-Callback-Url.
func NewHandler(fn Func, logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		log := loggerFor(c.Request.Context(), logger)

		var status disbursement.TransferStatus
		if err := c.ShouldBindJSON(&status); err != nil {
			log.Warn("Rejected malformed MoMo callback", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid callback body"})
			return
		}

		fields := []zap.Field{
			zap.String("external_id", status.ExternalID),
			zap.String("financial_transaction_id", status.FinancialTransactionID),
			zap.String("status", status.Status),
		}
		if status.Reason != nil {
			fields = append(fields, zap.String("reason_code", status.Reason.Code))
		}
		log.Info("Received MoMo callback", fields...)

		if err := fn(c.Request.Context(), status); err != nil {
			log.Error("Failed to process MoMo callback", append(fields, zap.Error(err))...)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process callback"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "received"})
	}
}

// NewRouter mounts the callback handler and a health probe on a new gin engine.
// MoMo delivers callbacks with POST or PUT depending on the product, so both are accepted.
func NewRouter(fn Func, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), CorrelationID())

	handler := NewHandler(fn, logger)
	router.POST(Path, handler)
	router.PUT(Path, handler)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return router
}
