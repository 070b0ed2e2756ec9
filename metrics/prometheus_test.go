package metrics

import (
	"net/http"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	collector, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	collector.RecordRequestCount(http.MethodGet, "/disbursement/v1_0/transfer/abc", 200)
	collector.RecordRequestCount(http.MethodGet, "/disbursement/v1_0/transfer/def", 200)
	collector.RecordRequestCount(http.MethodPost, "/disbursement/v1_0/transfer", 500)
	collector.RecordRequestError(http.MethodPost, "/disbursement/v1_0/transfer")
	collector.RecordRequestDuration(http.MethodGet, "/disbursement/v1_0/account/balance", 200, 150*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues(http.MethodGet, "/disbursement/v1_0/transfer/{referenceId}", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestsTotal.WithLabelValues(http.MethodPost, "/disbursement/v1_0/transfer", "500")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requestErrors.WithLabelValues(http.MethodPost, "/disbursement/v1_0/transfer")))
	assert.Equal(t, 1, testutil.CollectAndCount(collector.requestDuration))
}

func TestNewPrometheusCollectorRejectsDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheusCollector(reg)
	require.NoError(t, err)

	_, err = NewPrometheusCollector(reg)
	assert.Error(t, err)
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/disbursement/v1_0/account/balance", "/disbursement/v1_0/account/balance"},
		{"/disbursement/v1_0/account/balance/EUR", "/disbursement/v1_0/account/balance/{currency}"},
		{"/disbursement/v1_0/deposit/0b7a3e9c", "/disbursement/v1_0/deposit/{referenceId}"},
		{"/disbursement/v1_0/refund/r-1", "/disbursement/v1_0/refund/{referenceId}"},
		{"/disbursement/v1_0/accountholder/MSISDN/256772000000/active", "/disbursement/v1_0/accountholder/MSISDN/{accountHolderId}/active"},
		{"/disbursement/v1_0/accountholder/EMAIL/a@b.c/basicuserinfo", "/disbursement/v1_0/accountholder/EMAIL/{accountHolderId}/basicuserinfo"},
		{"/disbursement/v2_0/deposit", "/disbursement/v2_0/deposit"},
		{"/disbursement/token/", "/disbursement/token/"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, normalizePath(tt.path))
		})
	}
}
