package disbursement

import (
	"context"
	"fmt"
	"net/url"
)

// ValidateAccountHolder checks whether an account holder is active.
func (c *Client) ValidateAccountHolder(ctx context.Context, accountHolderID string, opts ...CallOption) (*Result, error) {
	cfg := newCallConfig(opts)
	path := fmt.Sprintf("/disbursement/v1_0/accountholder/%s/%s/active",
		url.PathEscape(cfg.partyIDType), url.PathEscape(accountHolderID))
	return c.query(ctx, "validate account holder", path, opts)
}

// GetBasicUserInfo returns the public profile of an account holder.
func (c *Client) GetBasicUserInfo(ctx context.Context, accountHolderID string, opts ...CallOption) (*Result, error) {
	cfg := newCallConfig(opts)
	path := fmt.Sprintf("/disbursement/v1_0/accountholder/%s/%s/basicuserinfo",
		url.PathEscape(cfg.partyIDType), url.PathEscape(accountHolderID))
	return c.query(ctx, "get basic user info", path, opts)
}

// GetUserInfoWithConsent returns the profile of the user who granted consent.
func (c *Client) GetUserInfoWithConsent(ctx context.Context, opts ...CallOption) (*Result, error) {
	return c.query(ctx, "get user info with consent", "/disbursement/oauth2/v1_0/userinfo", opts)
}
