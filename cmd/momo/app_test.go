package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/cyphera/momo-disbursement-go/client/disbursement"
	"github.com/cyphera/momo-disbursement-go/config"
	"github.com/cyphera/momo-disbursement-go/metrics"
	"github.com/cyphera/momo-disbursement-go/mocks"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newTestApp(t *testing.T) (*app, *mocks.MockClientInterface, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	client := mocks.NewMockClientInterfaceForTest(t)
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	return &app{
		client: client,
		out:    out,
		errOut: errOut,
		logger: zap.NewNop(),
	}, client, out, errOut
}

func TestUnknownCommand(t *testing.T) {
	a, _, _, errOut := newTestApp(t)

	err := a.execute(context.Background(), "payout", nil)

	assert.True(t, errors.Is(err, errUsage))
	assert.Contains(t, errOut.String(), "deposit-status")
	assert.Equal(t, 2, report(&bytes.Buffer{}, err))
}

func TestDepositCommand(t *testing.T) {
	a, client, out, _ := newTestApp(t)

	client.EXPECT().
		Deposit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req disbursement.DepositRequest) (*disbursement.PendingResult, error) {
			assert.True(t, req.Amount.Equal(decimal.RequireFromString("12.50")))
			assert.Equal(t, "EUR", req.Currency)
			assert.Equal(t, "46733123450", req.PayeePartyID)
			assert.Equal(t, "ext-1", req.ExternalID)
			assert.Equal(t, "v2_0", req.Version)
			assert.Equal(t, "https://example.com/cb", req.CallbackURL)
			return &disbursement.PendingResult{Status: "PENDING", ReferenceID: "ref-1"}, nil
		})

	err := a.execute(context.Background(), "deposit", []string{
		"-amount", "12.50", "-payee", "46733123450", "-external-id", "ext-1",
		"-version", "v2_0", "-callback", "https://example.com/cb",
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"PENDING","reference_id":"ref-1"}`, out.String())
}

func TestPaymentCommandsRejectBadAmount(t *testing.T) {
	for _, name := range []string{"deposit", "refund", "transfer"} {
		t.Run(name, func(t *testing.T) {
			a, _, _, _ := newTestApp(t)

			err := a.execute(context.Background(), name, []string{"-amount", "ten"})
			assert.True(t, errors.Is(err, errUsage))
		})
	}
}

func TestRefundAndTransferCommands(t *testing.T) {
	a, client, out, _ := newTestApp(t)

	client.EXPECT().
		Refund(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req disbursement.RefundRequest) (*disbursement.PendingResult, error) {
			assert.Equal(t, "orig-ref", req.ReferenceIDToRefund)
			assert.Equal(t, "UGX", req.Currency)
			return &disbursement.PendingResult{Status: "PENDING", ReferenceID: "ref-2"}, nil
		})
	client.EXPECT().
		Transfer(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, req disbursement.TransferRequest) (*disbursement.PendingResult, error) {
			assert.Equal(t, "EMAIL", req.PayeePartyIDType)
			assert.Equal(t, "mtnuganda", req.Environment)
			return &disbursement.PendingResult{Status: "PENDING", ReferenceID: "ref-3"}, nil
		})

	require.NoError(t, a.execute(context.Background(), "refund", []string{"-amount", "5", "-currency", "UGX", "-ref", "orig-ref"}))
	require.NoError(t, a.execute(context.Background(), "transfer", []string{"-amount", "5", "-payee", "a@b.c", "-payee-type", "EMAIL", "-env", "mtnuganda"}))

	assert.Contains(t, out.String(), `"reference_id": "ref-2"`)
	assert.Contains(t, out.String(), `"reference_id": "ref-3"`)
}

func TestReadCommands(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		args   []string
		expect func(client *mocks.MockClientInterface)
		want   string
	}{
		{
			name: "token",
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().Authenticate(gomock.Any()).Return("tok", nil)
			},
			want: `{"access_token":"tok"}`,
		},
		{
			name: "validate",
			args: []string{"-id", "256772000000"},
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().ValidateAccountHolder(gomock.Any(), "256772000000").Return(disbursement.NewResult(map[string]interface{}{"result": true}), nil)
			},
			want: `{"result":true}`,
		},
		{
			name: "basic-userinfo",
			args: []string{"-id", "a@b.c", "-type", "EMAIL"},
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetBasicUserInfo(gomock.Any(), "a@b.c", gomock.Any()).Return(disbursement.NewResult(map[string]interface{}{"given_name": "Sand"}), nil)
			},
			want: `{"given_name":"Sand"}`,
		},
		{
			name: "userinfo",
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetUserInfoWithConsent(gomock.Any()).Return(disbursement.NewResult(map[string]interface{}{"sub": "0"}), nil)
			},
			want: `{"sub":"0"}`,
		},
		{
			name: "deposit-status",
			args: []string{"-ref", "ref-1"},
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetDepositStatus(gomock.Any(), "ref-1").Return(disbursement.NewResult(map[string]interface{}{"status": "SUCCESSFUL"}), nil)
			},
			want: `{"status":"SUCCESSFUL"}`,
		},
		{
			name: "refund-status",
			args: []string{"-ref", "ref-2", "-env", "mtnuganda"},
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetRefundStatus(gomock.Any(), "ref-2", gomock.Any()).Return(disbursement.NewResult(map[string]interface{}{"status": "PENDING"}), nil)
			},
			want: `{"status":"PENDING"}`,
		},
		{
			name: "transfer-status",
			args: []string{"-ref", "ref-3"},
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetTransferStatus(gomock.Any(), "ref-3").Return(disbursement.NewResult(map[string]interface{}{"status": "FAILED"}), nil)
			},
			want: `{"status":"FAILED"}`,
		},
		{
			name: "balance",
			expect: func(client *mocks.MockClientInterface) {
				client.EXPECT().GetBalance(gomock.Any()).Return(disbursement.NewResult(map[string]interface{}{"availableBalance": "1000", "currency": "EUR"}), nil)
			},
			want: `{"availableBalance":"1000","currency":"EUR"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, client, out, _ := newTestApp(t)
			tt.expect(client)

			require.NoError(t, a.execute(ctx, tt.name, tt.args))
			assert.JSONEq(t, tt.want, out.String())
		})
	}
}

func TestBalanceInCurrency(t *testing.T) {
	a, client, out, _ := newTestApp(t)
	client.EXPECT().GetBalanceInCurrency(gomock.Any(), "USD").Return(disbursement.NewResult(map[string]interface{}{"currency": "USD"}), nil)

	require.NoError(t, a.execute(context.Background(), "balance", []string{"-currency", "USD"}))
	assert.JSONEq(t, `{"currency":"USD"}`, out.String())
}

func TestMissingRequiredFlags(t *testing.T) {
	tests := []struct {
		command string
		flag    string
	}{
		{command: "validate", flag: "-id"},
		{command: "basic-userinfo", flag: "-id"},
		{command: "deposit-status", flag: "-ref"},
		{command: "refund-status", flag: "-ref"},
		{command: "transfer-status", flag: "-ref"},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			a, _, _, _ := newTestApp(t)

			err := a.execute(context.Background(), tt.command, nil)
			require.True(t, errors.Is(err, errUsage))
			assert.Contains(t, err.Error(), tt.flag)
		})
	}
}

func TestAPIErrorExitCode(t *testing.T) {
	a, client, out, _ := newTestApp(t)
	client.EXPECT().GetBalance(gomock.Any()).Return(nil, &disbursement.APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       "INTERNAL_ERROR",
		Message:    "boom",
	})

	stderr := &bytes.Buffer{}
	code := report(stderr, a.execute(context.Background(), "balance", nil))

	assert.Equal(t, 1, code)
	assert.Equal(t, "INTERNAL_ERROR: boom\n", stderr.String())
	assert.Empty(t, out.String())
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantOut  string
	}{
		{name: "success", wantCode: 0},
		{name: "usage", err: fmt.Errorf("%w: -id is required", errUsage), wantCode: 2, wantOut: "usage error: -id is required\n"},
		{name: "api error", err: fmt.Errorf("deposit: %w", &disbursement.APIError{Code: "PAYEE_NOT_FOUND", Message: "nope"}), wantCode: 1, wantOut: "PAYEE_NOT_FOUND: nope\n"},
		{name: "other", err: errors.New("dial tcp: refused"), wantCode: 1, wantOut: "error: dial tcp: refused\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stderr := &bytes.Buffer{}
			assert.Equal(t, tt.wantCode, report(stderr, tt.err))
			assert.Equal(t, tt.wantOut, stderr.String())
		})
	}
}

func TestServeCallbacks(t *testing.T) {
	a, _, out, _ := newTestApp(t)
	a.client = nil
	a.callbackAddr = ":8080"

	var (
		servedAddr string
		handler    http.Handler
	)
	a.serve = func(addr string, h http.Handler) error {
		servedAddr = addr
		handler = h
		return nil
	}

	require.NoError(t, a.execute(context.Background(), "serve-callbacks", []string{"-addr", ":9090"}))
	assert.Equal(t, ":9090", servedAddr)
	require.NotNil(t, handler)

	body := `{"externalId":"947354","status":"SUCCESSFUL","amount":"100","currency":"EUR"}`
	req := httptest.NewRequest(http.MethodPost, "/momo/callback", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, out.String(), `"externalId": "947354"`)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNeedsClient(t *testing.T) {
	assert.False(t, needsClient("serve-callbacks"))
	assert.True(t, needsClient("deposit"))
}

func TestClientOptionsTalkToConfiguredHost(t *testing.T) {
	var sawEnvironment string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/disbursement/token/":
			w.Write([]byte(`{"access_token":"tok"}`))
		default:
			sawEnvironment = r.Header.Get("X-Target-Environment")
			w.Write([]byte(`{"availableBalance":"10","currency":"EUR"}`))
		}
	}))
	defer server.Close()

	cfg := &config.Config{
		BaseURL:           server.URL,
		TargetEnvironment: "mtnghana",
		HTTPTimeout:       time.Second,
		HTTPRetries:       1,
		RateLimitRPS:      100,
		RateLimitBurst:    1,
	}
	collector, err := metrics.NewPrometheusCollector(prometheus.NewRegistry())
	require.NoError(t, err)
	client := disbursement.New("user", "key", "sub", clientOptions(cfg, zap.NewNop(), collector)...)

	result, err := client.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "10", result.Object()["availableBalance"])
	assert.Equal(t, "mtnghana", sawEnvironment)
}

