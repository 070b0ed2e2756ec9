package disbursement

import "context"

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_disbursement.go -package=mocks

// ClientInterface defines the MoMo Disbursement operations
type ClientInterface interface {
	// Authentication
	Authenticate(ctx context.Context) (string, error)
	InvalidateToken()

	// Account holders
	ValidateAccountHolder(ctx context.Context, accountHolderID string, opts ...CallOption) (*Result, error)
	GetBasicUserInfo(ctx context.Context, accountHolderID string, opts ...CallOption) (*Result, error)
	GetUserInfoWithConsent(ctx context.Context, opts ...CallOption) (*Result, error)

	// Deposits
	Deposit(ctx context.Context, req DepositRequest) (*PendingResult, error)
	GetDepositStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error)

	// Refunds
	Refund(ctx context.Context, req RefundRequest) (*PendingResult, error)
	GetRefundStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error)

	// Transfers
	Transfer(ctx context.Context, req TransferRequest) (*PendingResult, error)
	GetTransferStatus(ctx context.Context, referenceID string, opts ...CallOption) (*Result, error)

	// Balance
	GetBalance(ctx context.Context, opts ...CallOption) (*Result, error)
	GetBalanceInCurrency(ctx context.Context, currency string, opts ...CallOption) (*Result, error)
}

// Ensure Client implements the interface
var _ ClientInterface = (*Client)(nil)
