package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/cyphera/momo-disbursement-go/callback"
	"github.com/cyphera/momo-disbursement-go/client/disbursement"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// errUsage marks command line mistakes, reported with exit code 2
var errUsage = errors.New("usage error")

type command struct {
	summary string
	run     func(ctx context.Context, a *app, args []string) error
}

var commands = map[string]command{
	"token":           {summary: "request a new access token", run: runToken},
	"validate":        {summary: "check whether an account holder is active", run: runValidate},
	"basic-userinfo":  {summary: "show the basic profile of an account holder", run: runBasicUserInfo},
	"userinfo":        {summary: "show the profile of the consenting user", run: runUserInfo},
	"deposit":         {summary: "deposit into a payee account", run: runDeposit},
	"deposit-status":  {summary: "show the status of a deposit", run: runDepositStatus},
	"refund":          {summary: "refund an earlier transaction", run: runRefund},
	"refund-status":   {summary: "show the status of a refund", run: runRefundStatus},
	"transfer":        {summary: "transfer to a payee account", run: runTransfer},
	"transfer-status": {summary: "show the status of a transfer", run: runTransferStatus},
	"balance":         {summary: "show the account balance", run: runBalance},
	"serve-callbacks": {summary: "receive MoMo callbacks over HTTP", run: runServeCallbacks},
}

// app carries what the commands need. client is nil for commands that do not call MoMo.
type app struct {
	client       disbursement.ClientInterface
	out          io.Writer
	errOut       io.Writer
	logger       *zap.Logger
	callbackAddr string
	serve        func(addr string, handler http.Handler) error

	// guards out; callbacks are printed from server goroutines
	mu sync.Mutex
}

func needsClient(name string) bool {
	return name != "serve-callbacks"
}

func (a *app) execute(ctx context.Context, name string, args []string) error {
	cmd, ok := commands[name]
	if !ok {
		a.usage()
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
	return cmd.run(ctx, a, args)
}

func (a *app) usage() {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Fprintln(a.errOut, "usage: momo <command> [flags]")
	fmt.Fprintln(a.errOut, "commands:")
	for _, name := range names {
		fmt.Fprintf(a.errOut, "  %-16s %s\n", name, commands[name].summary)
	}
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.errOut)
	return fs
}

func (a *app) print(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	_, err = fmt.Fprintln(a.out, string(data))
	return err
}

func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	return nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: -%s is required", errUsage, name)
	}
	return nil
}

func parseAmount(value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: invalid -amount %q", errUsage, value)
	}
	return amount, nil
}

// readOptions holds the flags shared by the read commands
type readOptions struct {
	environment string
	partyIDType string
}

func (o *readOptions) register(fs *flag.FlagSet, withPartyType bool) {
	fs.StringVar(&o.environment, "env", "", "override the target environment")
	if withPartyType {
		fs.StringVar(&o.partyIDType, "type", "", "account holder id type (MSISDN, EMAIL, PARTY_CODE)")
	}
}

func (o *readOptions) callOptions() []disbursement.CallOption {
	var opts []disbursement.CallOption
	if o.environment != "" {
		opts = append(opts, disbursement.WithEnvironment(o.environment))
	}
	if o.partyIDType != "" {
		opts = append(opts, disbursement.WithPartyIDType(o.partyIDType))
	}
	return opts
}

func runToken(ctx context.Context, a *app, args []string) error {
	if err := parse(a.flags("token"), args); err != nil {
		return err
	}
	token, err := a.client.Authenticate(ctx)
	if err != nil {
		return err
	}
	return a.print(map[string]string{"access_token": token})
}

func runValidate(ctx context.Context, a *app, args []string) error {
	fs := a.flags("validate")
	id := fs.String("id", "", "account holder id")
	var opts readOptions
	opts.register(fs, true)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	result, err := a.client.ValidateAccountHolder(ctx, *id, opts.callOptions()...)
	if err != nil {
		return err
	}
	return a.print(result)
}

func runBasicUserInfo(ctx context.Context, a *app, args []string) error {
	fs := a.flags("basic-userinfo")
	id := fs.String("id", "", "account holder id")
	var opts readOptions
	opts.register(fs, true)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("id", *id); err != nil {
		return err
	}

	result, err := a.client.GetBasicUserInfo(ctx, *id, opts.callOptions()...)
	if err != nil {
		return err
	}
	return a.print(result)
}

func runUserInfo(ctx context.Context, a *app, args []string) error {
	fs := a.flags("userinfo")
	var opts readOptions
	opts.register(fs, false)
	if err := parse(fs, args); err != nil {
		return err
	}

	result, err := a.client.GetUserInfoWithConsent(ctx, opts.callOptions()...)
	if err != nil {
		return err
	}
	return a.print(result)
}

func runBalance(ctx context.Context, a *app, args []string) error {
	fs := a.flags("balance")
	currency := fs.String("currency", "", "report the balance in this currency")
	var opts readOptions
	opts.register(fs, false)
	if err := parse(fs, args); err != nil {
		return err
	}

	var (
		result *disbursement.Result
		err    error
	)
	if *currency != "" {
		result, err = a.client.GetBalanceInCurrency(ctx, *currency, opts.callOptions()...)
	} else {
		result, err = a.client.GetBalance(ctx, opts.callOptions()...)
	}
	if err != nil {
		return err
	}
	return a.print(result)
}

type statusFunc func(ctx context.Context, referenceID string, opts ...disbursement.CallOption) (*disbursement.Result, error)

func runStatus(ctx context.Context, a *app, name string, args []string, get statusFunc) error {
	fs := a.flags(name)
	ref := fs.String("ref", "", "reference id returned when the request was submitted")
	var opts readOptions
	opts.register(fs, false)
	if err := parse(fs, args); err != nil {
		return err
	}
	if err := required("ref", *ref); err != nil {
		return err
	}

	result, err := get(ctx, *ref, opts.callOptions()...)
	if err != nil {
		return err
	}
	return a.print(result)
}

func runDepositStatus(ctx context.Context, a *app, args []string) error {
	return runStatus(ctx, a, "deposit-status", args, a.client.GetDepositStatus)
}

func runRefundStatus(ctx context.Context, a *app, args []string) error {
	return runStatus(ctx, a, "refund-status", args, a.client.GetRefundStatus)
}

func runTransferStatus(ctx context.Context, a *app, args []string) error {
	return runStatus(ctx, a, "transfer-status", args, a.client.GetTransferStatus)
}

// paymentFlags holds the flags shared by deposit, refund and transfer
type paymentFlags struct {
	amount       string
	currency     string
	externalID   string
	payerMessage string
	payeeNote    string
	environment  string
	callbackURL  string
}

func (p *paymentFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&p.amount, "amount", "", "amount, e.g. 100 or 12.50")
	fs.StringVar(&p.currency, "currency", "EUR", "ISO 4217 currency code")
	fs.StringVar(&p.externalID, "external-id", "", "caller side transaction id")
	fs.StringVar(&p.payerMessage, "payer-message", "", "message shown to the payer")
	fs.StringVar(&p.payeeNote, "payee-note", "", "note shown to the payee")
	fs.StringVar(&p.environment, "env", "", "override the target environment")
	fs.StringVar(&p.callbackURL, "callback", "", "override the callback URL")
}

func runDeposit(ctx context.Context, a *app, args []string) error {
	fs := a.flags("deposit")
	var p paymentFlags
	p.register(fs)
	payee := fs.String("payee", "", "payee party id")
	payeeType := fs.String("payee-type", "", "payee party id type (default MSISDN)")
	version := fs.String("version", "", "API version (v1_0 or v2_0)")
	if err := parse(fs, args); err != nil {
		return err
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		return err
	}

	result, err := a.client.Deposit(ctx, disbursement.DepositRequest{
		Amount:           amount,
		Currency:         p.currency,
		ExternalID:       p.externalID,
		PayeePartyID:     *payee,
		PayeePartyIDType: *payeeType,
		PayerMessage:     p.payerMessage,
		PayeeNote:        p.payeeNote,
		Version:          *version,
		Environment:      p.environment,
		CallbackURL:      p.callbackURL,
	})
	if err != nil {
		return err
	}
	return a.print(result)
}

func runRefund(ctx context.Context, a *app, args []string) error {
	fs := a.flags("refund")
	var p paymentFlags
	p.register(fs)
	ref := fs.String("ref", "", "reference id of the transaction to refund")
	version := fs.String("version", "", "API version (v1_0 or v2_0)")
	if err := parse(fs, args); err != nil {
		return err
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		return err
	}

	result, err := a.client.Refund(ctx, disbursement.RefundRequest{
		Amount:              amount,
		Currency:            p.currency,
		ExternalID:          p.externalID,
		ReferenceIDToRefund: *ref,
		PayerMessage:        p.payerMessage,
		PayeeNote:           p.payeeNote,
		Version:             *version,
		Environment:         p.environment,
		CallbackURL:         p.callbackURL,
	})
	if err != nil {
		return err
	}
	return a.print(result)
}

func runTransfer(ctx context.Context, a *app, args []string) error {
	fs := a.flags("transfer")
	var p paymentFlags
	p.register(fs)
	payee := fs.String("payee", "", "payee party id")
	payeeType := fs.String("payee-type", "", "payee party id type (default MSISDN)")
	if err := parse(fs, args); err != nil {
		return err
	}
	amount, err := parseAmount(p.amount)
	if err != nil {
		return err
	}

	result, err := a.client.Transfer(ctx, disbursement.TransferRequest{
		Amount:           amount,
		Currency:         p.currency,
		ExternalID:       p.externalID,
		PayeePartyID:     *payee,
		PayeePartyIDType: *payeeType,
		PayerMessage:     p.payerMessage,
		PayeeNote:        p.payeeNote,
		Environment:      p.environment,
		CallbackURL:      p.callbackURL,
	})
	if err != nil {
		return err
	}
	return a.print(result)
}

func runServeCallbacks(ctx context.Context, a *app, args []string) error {
	fs := a.flags("serve-callbacks")
	addr := fs.String("addr", a.callbackAddr, "listen address")
	if err := parse(fs, args); err != nil {
		return err
	}

	router := callback.NewRouter(func(ctx context.Context, status disbursement.TransferStatus) error {
		return a.print(status)
	}, a.logger)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	a.logger.Info("Serving MoMo callbacks", zap.String("addr", *addr), zap.String("path", callback.Path))
	return a.serve(*addr, router)
}
