package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"wallet-settlement/internal/config"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"

	"github.com/rs/zerolog"
)

const (
	statusPath      = "/api/v1/transactions/status"
	maxResponseBody = 1 << 20
)

var ErrNotConfigured = errors.New("payment provider is not configured")

// Verifier authoritatively checks a payment by its provider transaction id
type Verifier interface {
	Verify(ctx context.Context, transactionID string) (*model.ProviderVerification, error)
}

// Ensure implementation satisfies interface at compile time
var _ Verifier = (*Client)(nil)

// Client talks to the Kkiapay transaction status API
type Client struct {
	baseURL    string
	publicKey  string
	privateKey string
	secret     string
	httpClient *http.Client
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

func NewClient(cfg config.ProviderConfig, m *metrics.Metrics, logger zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL(), "/"),
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		secret:     cfg.Secret,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		metrics:    m,
		logger:     logger,
	}
}

// Verify returns the provider view of the transaction. Errors wrap
// model.ErrProviderNotFound, model.ErrProviderRejected or
// model.ErrTransientProvider.
func (c *Client) Verify(ctx context.Context, transactionID string) (*model.ProviderVerification, error) {
	if c.publicKey == "" || c.privateKey == "" || c.secret == "" {
		c.logger.Error().Msg("KKIAPAY_PUBLIC_KEY, KKIAPAY_PRIVATE_KEY and KKIAPAY_SECRET must be configured")
		return nil, ErrNotConfigured
	}

	start := time.Now()
	v, err := c.verify(ctx, transactionID)
	c.metrics.ProviderCall(resultLabel(err), time.Since(start))
	if err != nil {
		c.logger.Warn().Err(err).Str("provider_transaction_id", transactionID).Msg("provider verification failed")
		return nil, err
	}

	c.logger.Info().
		Str("provider_transaction_id", transactionID).
		Str("status", v.Status).
		Int64("amount", v.Amount).
		Str("currency", v.Currency).
		Msg("provider verification response")
	return v, nil
}

func (c *Client) verify(ctx context.Context, transactionID string) (*model.ProviderVerification, error) {
	body, err := json.Marshal(map[string]string{"transactionId": transactionID})
	if err != nil {
		return nil, fmt.Errorf("encode verification request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+statusPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build verification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("x-api-key", c.publicKey)
	req.Header.Set("x-secret-key", c.secret)
	req.Header.Set("x-private-key", c.privateKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrTransientProvider, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", model.ErrTransientProvider, err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, classifyFailure(resp.StatusCode, raw)
	}

	v, err := ParseVerification(raw)
	if err != nil {
		return nil, err
	}
	v.TransactionID = transactionID
	return v, nil
}

type errorPayload struct {
	Reason  string `json:"reason"`
	Message string `json:"message"`
	Status  string `json:"status"`
}

func classifyFailure(code int, raw []byte) error {
	var p errorPayload
	_ = json.Unmarshal(raw, &p)
	msg := model.FirstReference(p.Reason, p.Message, p.Status)

	switch {
	case code == http.StatusNotFound || strings.Contains(strings.ToUpper(msg), "TRANSACTION_NOT_FOUND"):
		return model.ErrProviderNotFound
	case code >= http.StatusInternalServerError || code == http.StatusTooManyRequests || code == http.StatusRequestTimeout:
		return fmt.Errorf("%w: provider responded %d", model.ErrTransientProvider, code)
	case msg != "":
		return fmt.Errorf("%w: %s", model.ErrProviderRejected, msg)
	default:
		return fmt.Errorf("%w: provider responded %d", model.ErrProviderRejected, code)
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, model.ErrProviderNotFound):
		return "not_found"
	case errors.Is(err, model.ErrProviderRejected):
		return "rejected"
	default:
		return "transient"
	}
}
