package provider

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"wallet-settlement/internal/config"
	"wallet-settlement/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(url string) *Client {
	return NewClient(config.ProviderConfig{
		SandboxBaseURL: url + "/",
		Sandbox:        true,
		PublicKey:      "pk",
		PrivateKey:     "pv",
		Secret:         "sk",
		Timeout:        2 * time.Second,
	}, nil, zerolog.Nop())
}

func TestVerify_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, statusPath, r.URL.Path)
		assert.Equal(t, "pk", r.Header.Get("x-api-key"))
		assert.Equal(t, "pv", r.Header.Get("x-private-key"))
		assert.Equal(t, "sk", r.Header.Get("x-secret-key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tx_1", body["transactionId"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"SUCCESS","amount":1500,"currency":"XOF","metadata":{"referenceId":"REF_1"}}`))
	}))
	defer srv.Close()

	v, err := testClient(srv.URL).Verify(context.Background(), "tx_1")

	require.NoError(t, err)
	assert.Equal(t, "tx_1", v.TransactionID)
	assert.Equal(t, model.OutcomeSucceeded, v.Outcome())
	assert.Equal(t, int64(1500), v.Amount)
	assert.Equal(t, "REF_1", v.Reference)
}

func TestVerify_FailureClassification(t *testing.T) {
	cases := []struct {
		name string
		code int
		body string
		want error
	}{
		{"not found", http.StatusNotFound, `{}`, model.ErrProviderNotFound},
		{"not found by reason", http.StatusBadRequest, `{"reason":"TRANSACTION_NOT_FOUND"}`, model.ErrProviderNotFound},
		{"server error", http.StatusBadGateway, `bad gateway`, model.ErrTransientProvider},
		{"throttled", http.StatusTooManyRequests, `{}`, model.ErrTransientProvider},
		{"timeout", http.StatusRequestTimeout, ``, model.ErrTransientProvider},
		{"bad credentials", http.StatusUnauthorized, `{"message":"invalid api key"}`, model.ErrProviderRejected},
		{"bad request", http.StatusBadRequest, ``, model.ErrProviderRejected},
		{"garbage 200", http.StatusOK, `not json`, model.ErrTransientProvider},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.code)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			_, err := testClient(srv.URL).Verify(context.Background(), "tx_1")

			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestVerify_NetworkErrorIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := testClient(url).Verify(context.Background(), "tx_1")

	assert.ErrorIs(t, err, model.ErrTransientProvider)
}

func TestVerify_CancelledContextIsTransient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"status":"SUCCESS"}`))
	}))
	defer srv.Close()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL).Verify(ctx, "tx_1")

	assert.ErrorIs(t, err, model.ErrTransientProvider)
}

func TestVerify_NotConfigured(t *testing.T) {
	c := NewClient(config.ProviderConfig{LiveBaseURL: "http://127.0.0.1:1"}, nil, zerolog.Nop())

	_, err := c.Verify(context.Background(), "tx_1")

	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestProviderConfig_BaseURL(t *testing.T) {
	cfg := config.ProviderConfig{LiveBaseURL: "https://live", SandboxBaseURL: "https://sandbox"}
	assert.Equal(t, "https://live", cfg.BaseURL())
	cfg.Sandbox = true
	assert.Equal(t, "https://sandbox", cfg.BaseURL())
}
