package disbursement

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cyphera/momo-disbursement-go/constants"
)

// Transfer sends funds to a payee account.
func (c *Client) Transfer(ctx context.Context, req TransferRequest) (*PendingResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid transfer request: %w", err)
	}

	body := paymentBody{
		Amount:     formatAmount(req.Amount),
		Currency:   req.Currency,
		ExternalID: req.ExternalID,
		Payee: Party{
			PartyIDType: defaultString(req.PayeePartyIDType, constants.PartyIDTypeMSISDN),
			PartyID:     req.PayeePartyID,
		},
		PayerMessage: req.PayerMessage,
		PayeeNote:    req.PayeeNote,
	}

	return c.submit(ctx, "transfer", "/disbursement/v1_0/transfer", body, req.Environment, req.CallbackURL)
}

// GetTransferStatus returns the state of a transfer.
func (c *Client) GetTransferStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get transfer status", "/disbursement/v1_0/transfer/"+url.PathEscape(referenceID), opts)
}
