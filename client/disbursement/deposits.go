package disbursement

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cyphera/momo-disbursement-go/constants"
)

// Deposit moves funds into a payee account. The call returns once MoMo accepts the
// request; poll GetDepositStatus with the returned reference id for the outcome.
func (c *Client) Deposit(ctx context.Context, req DepositRequest) (*PendingResult, error) {
	if err := c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid deposit request: %w", err)
	}

	version := defaultString(req.Version, constants.APIVersionV1)
	path := fmt.Sprintf("/disbursement/%s/deposit", url.PathEscape(version))
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

	return c.submit(ctx, "deposit", path, body, req.Environment, req.CallbackURL)
}

// GetDepositStatus returns the state of a deposit.
func (c *Client) GetDepositStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get deposit status", "/disbursement/v1_0/deposit/"+url.PathEscape(referenceID), opts)
}
