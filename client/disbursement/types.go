package disbursement

import (
	"encoding/json"

	"github.com/cyphera/momo-disbursement-go/constants"

	"github.com/shopspring/decimal"
)

// Result is the decoded JSON body of a successful MoMo response. The body may be any JSON
// value; MoMo normally returns an object. Numbers are kept as json.Number.
type Result struct {
	value interface{}
}

// NewResult wraps an already decoded JSON value
func NewResult(value interface{}) *Result {
	return &Result{value: value}
}

// EmptyResult is returned for success responses without a usable body
func EmptyResult() *Result {
	return NewResult(map[string]interface{}{})
}

// Value returns the decoded body: a map, slice, string, json.Number, bool or nil.
func (r *Result) Value() interface{} {
	if r == nil {
		return nil
	}
	return r.value
}

// Object returns the body as a JSON object, or nil when the body is another JSON value.
func (r *Result) Object() map[string]interface{} {
	object, _ := r.Value().(map[string]interface{})
	return object
}

// Get returns one field of an object body
func (r *Result) Get(key string) (interface{}, bool) {
	value, ok := r.Object()[key]
	return value, ok
}

// Decode converts the result into a typed response such as TransferStatus or Balance.
func (r *Result) Decode(v interface{}) error {
	data, err := r.MarshalJSON()
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// MarshalJSON encodes the body as received
func (r *Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Value())
}

// PendingResult acknowledges an accepted deposit, refund or transfer. The final state is
// fetched with the matching status call using ReferenceID.
type PendingResult struct {
	Status      string `json:"status"`
	ReferenceID string `json:"reference_id"`
}

// DepositRequest describes a deposit into a payee account.
type DepositRequest struct {
	Amount       decimal.Decimal `validate:"gte=0"`
	Currency     string          `validate:"required"`
	ExternalID   string
	PayeePartyID string `validate:"required"`
	// PayeePartyIDType defaults to MSISDN
	PayeePartyIDType string
	PayerMessage     string
	PayeeNote        string
	// Version defaults to v1_0
	Version string
	// Environment defaults to the client's target environment
	Environment string
	// CallbackURL defaults to the client's callback URL
	CallbackURL string
}

// RefundRequest describes a refund of an earlier transaction.
type RefundRequest struct {
	Amount              decimal.Decimal `validate:"gte=0"`
	Currency            string          `validate:"required"`
	ExternalID          string
	ReferenceIDToRefund string `validate:"required"`
	PayerMessage        string
	PayeeNote           string
	// Version defaults to v1_0
	Version     string
	Environment string
	CallbackURL string
}

// TransferRequest describes a transfer to a payee account. Transfers always use v1_0.
type TransferRequest struct {
	Amount           decimal.Decimal `validate:"gte=0"`
	Currency         string          `validate:"required"`
	ExternalID       string
	PayeePartyID     string `validate:"required"`
	PayeePartyIDType string
	PayerMessage     string
	PayeeNote        string
	Environment      string
	CallbackURL      string
}

// Party identifies an account holder on the MoMo platform
type Party struct {
	PartyIDType string `json:"partyIdType"`
	PartyID     string `json:"partyId"`
}

type paymentBody struct {
	Amount       string `json:"amount"`
	Currency     string `json:"currency"`
	ExternalID   string `json:"externalId"`
	Payee        Party  `json:"payee"`
	PayerMessage string `json:"payerMessage"`
	PayeeNote    string `json:"payeeNote"`
}

type refundBody struct {
	Amount              string `json:"amount"`
	Currency            string `json:"currency"`
	ExternalID          string `json:"externalId"`
	PayerMessage        string `json:"payerMessage"`
	PayeeNote           string `json:"payeeNote"`
	ReferenceIDToRefund string `json:"referenceIdToRefund"`
}

// Reason explains a failed transaction
type Reason struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransferStatus is the state of a deposit, refund or transfer. It is also the payload
// MoMo posts to the callback URL.
type TransferStatus struct {
	Amount                 string  `json:"amount"`
	Currency               string  `json:"currency"`
	FinancialTransactionID string  `json:"financialTransactionId"`
	ExternalID             string  `json:"externalId"`
	Payee                  *Party  `json:"payee,omitempty"`
	PayerMessage           string  `json:"payerMessage"`
	PayeeNote              string  `json:"payeeNote"`
	Status                 string  `json:"status"`
	Reason                 *Reason `json:"reason,omitempty"`
}

// IsFinal reports whether the transaction left the pending state
func (s TransferStatus) IsFinal() bool {
	return s.Status == constants.SuccessfulStatus || s.Status == constants.FailedStatus
}

// Balance is the available balance of the disbursement account
type Balance struct {
	AvailableBalance string `json:"availableBalance"`
	Currency         string `json:"currency"`
}

// AccountHolderStatus is returned by ValidateAccountHolder
type AccountHolderStatus struct {
	Result bool `json:"result"`
}

// BasicUserInfo is the public profile of an account holder
type BasicUserInfo struct {
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Birthdate  string `json:"birthdate"`
	Locale     string `json:"locale"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
}

// UserInfo is the consented profile returned by the oauth2 userinfo endpoint
type UserInfo struct {
	Sub        string `json:"sub"`
	Name       string `json:"name"`
	GivenName  string `json:"given_name"`
	FamilyName string `json:"family_name"`
	Birthdate  string `json:"birthdate"`
	Locale     string `json:"locale"`
	Gender     string `json:"gender"`
	Status     string `json:"status"`
}

// CallOption adjusts a read-only call
type CallOption func(*callConfig)

type callConfig struct {
	environment string
	partyIDType string
}

// WithEnvironment overrides the X-Target-Environment header for one call
func WithEnvironment(environment string) CallOption {
	return func(c *callConfig) {
		c.environment = environment
	}
}

// WithPartyIDType sets the account holder id type (default MSISDN)
func WithPartyIDType(partyIDType string) CallOption {
	return func(c *callConfig) {
		c.partyIDType = partyIDType
	}
}

func newCallConfig(opts []CallOption) callConfig {
	cfg := callConfig{partyIDType: constants.PartyIDTypeMSISDN}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// formatAmount renders an amount with the scale the caller gave it, so 1000.00 stays "1000.00".
func formatAmount(amount decimal.Decimal) string {
	if exp := amount.Exponent(); exp < 0 {
		return amount.StringFixed(-exp)
	}
	return amount.String()
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
