package disbursement

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cyphera/momo-disbursement-go/constants"
)

// Refund reverses an earlier transaction identified by ReferenceIDToRefund.
func (c *Client) Refund(ctx context.Context, req RefundRequest) (*PendingResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid refund request: %w", err)
	}

	version := defaultString(req.Version, constants.APIVersionV1)
	path := fmt.Sprintf("/disbursement/%s/refund", url.PathEscape(version))
	body := refundBody{
		Amount:              formatAmount(req.Amount),
		Currency:            req.Currency,
		ExternalID:          req.ExternalID,
		PayerMessage:        req.PayerMessage,
		PayeeNote:           req.PayeeNote,
		ReferenceIDToRefund: req.ReferenceIDToRefund,
	}

	return c.submit(ctx, "refund", path, body, req.Environment, req.CallbackURL)
}

// GetRefundStatus returns the state of a refund.
func (c *Client) GetRefundStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get refund status", "/disbursement/v1_0/refund/"+url.PathEscape(referenceID), opts)
}
