package disbursement

import (
	"context"
	"net/url"
)

// GetBalance returns the balance of the disbursement account.
func (c *Client) GetBalance(ctx context.Context, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get balance", "/disbursement/v1_0/account/balance", opts)
}

// GetBalanceInCurrency returns the balance in the given currency.
func (c *Client) GetBalanceInCurrency(ctx context.Context, currency string, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get balance in currency", "/disbursement/v1_0/account/balance/"+url.PathEscape(currency), opts)
}
