package service

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/provider"
	"wallet-settlement/internal/repository"

	"github.com/rs/zerolog"
)

const (
	webhookProcessed = "processed"
	webhookIgnored   = "ignored"
)

type WebhookServiceImpl struct {
	secret     []byte
	deposits   DepositService
	ledgerRepo repository.LedgerRepository
	verifier   provider.Verifier
	metrics    *metrics.Metrics
	logger     zerolog.Logger
}

func NewWebhookService(
	secret string,
	deposits DepositService,
	ledgerRepo repository.LedgerRepository,
	verifier provider.Verifier,
	m *metrics.Metrics,
	logger zerolog.Logger,
) WebhookService {
	return &WebhookServiceImpl{
		secret:     []byte(secret),
		deposits:   deposits,
		ledgerRepo: ledgerRepo,
		verifier:   verifier,
		metrics:    m,
		logger:     logger,
	}
}

// VerifySignature checks a hex HMAC-SHA256 of body in constant time. An
// optional "sha256=" prefix is accepted.
func VerifySignature(secret, body []byte, signature string) error {
	signature = strings.TrimSpace(signature)
	signature = strings.TrimPrefix(strings.TrimPrefix(signature, "sha256="), "SHA256=")
	if signature == "" {
		return model.ErrMissingSignature
	}

	got, err := hex.DecodeString(signature)
	if err != nil {
		return model.ErrInvalidSignature
	}

	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	if !hmac.Equal(got, mac.Sum(nil)) {
		return model.ErrInvalidSignature
	}
	return nil
}

// Sign returns the hex signature the provider is expected to send for body.
func Sign(secret, body []byte) string {
	mac := hmac.New(sha256.New, secret)
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// Handle authenticates a provider event and, when it names a known deposit,
// settles it through the deposit coordinator. Events that cannot be acted on
// are acknowledged as ignored so the provider stops retrying them. Failures
// that leave the deposit PENDING (provider outage, refused or unconfigured
// provider calls, store errors) are returned so the event is redelivered.
func (s *WebhookServiceImpl) Handle(ctx context.Context, body []byte, signature string) (*model.WebhookResponse, error) {
	if len(s.secret) == 0 {
		s.logger.Error().Msg("webhook received but KKIAPAY_WEBHOOK_SECRET is not configured")
		s.metrics.WebhookEvent("not_configured")
		return nil, model.ErrWebhookNotConfigured
	}

	if err := VerifySignature(s.secret, body, signature); err != nil {
		s.logger.Warn().Err(err).Msg("webhook signature rejected")
		s.metrics.WebhookEvent("unauthorized")
		return nil, err
	}

	event, err := model.ParseWebhookEvent(body)
	if err != nil {
		s.logger.Warn().Err(err).Msg("webhook payload rejected")
		return s.ignored("invalid_payload", &model.WebhookResponse{}), nil
	}

	resp := &model.WebhookResponse{TransactionID: event.TransactionID, ReferenceID: event.ReferenceID}
	log := s.logger.With().Str("provider_transaction_id", event.TransactionID).Str("event", event.Event).Logger()

	if event.Kind == model.WebhookUnsupported {
		log.Info().Msg("webhook event ignored: unsupported type")
		return s.ignored("unsupported_event", resp), nil
	}

	ref := event.ReferenceID
	if ref == "" {
		// The payload carries no reference, ask the provider which one it recorded
		v, err := s.verifier.Verify(ctx, event.TransactionID)
		switch {
		case errors.Is(err, model.ErrTransientProvider):
			return nil, err
		case errors.Is(err, model.ErrNotFound):
			log.Warn().Msg("webhook transaction unknown to provider")
			return s.ignored("transaction_not_found", resp), nil
		case err != nil:
			// Misconfiguration or a refused call, let the provider redeliver
			log.Error().Err(err).Msg("webhook reference resolution failed")
			s.metrics.WebhookEvent("provider_error")
			return nil, fmt.Errorf("resolve webhook reference: %w", err)
		}
		if ref = v.Reference; ref == "" {
			log.Warn().Msg("webhook event ignored: no reference in payload or provider record")
			return s.ignored("missing_reference", resp), nil
		}
		resp.ReferenceID = ref
	}

	intent, err := s.ledgerRepo.FindDepositByReference(ctx, ref)
	switch {
	case errors.Is(err, model.ErrIntentNotFound):
		log.Warn().Str("reference_id", ref).Msg("webhook event ignored: no deposit intent")
		return s.ignored("intent_not_found", resp), nil
	case errors.Is(err, model.ErrAmbiguousReference):
		log.Error().Str("reference_id", ref).Msg("webhook event ignored: reference matches several deposits")
		return s.ignored("ambiguous_reference", resp), nil
	case err != nil:
		return nil, fmt.Errorf("find deposit intent: %w", err)
	}

	// Success and failure events take the same path: the provider decides
	result, err := s.deposits.ProcessDeposit(ctx, model.DepositRequest{
		UserID:                intent.UserID,
		ProviderTransactionID: event.TransactionID,
		ReferenceID:           ref,
	})
	switch {
	case err == nil:
		resp.ResultStatus = result.Entry.Status.String()
		if result.AlreadyProcessed {
			resp.Reason = "already_processed"
		}
		return s.processed(resp), nil
	case errors.Is(err, model.ErrTransientProvider):
		log.Warn().Err(err).Msg("webhook settlement deferred: provider unavailable")
		s.metrics.WebhookEvent("transient")
		return nil, err
	case errors.Is(err, model.ErrTerminalBalanceUpdate):
		resp.ResultStatus = model.StatusFailedBalanceUpdate.String()
		return s.processed(resp), nil
	case errors.Is(err, model.ErrConflict):
		log.Warn().Err(err).Msg("webhook event ignored: settlement conflict")
		return s.ignored("conflict", resp), nil
	case errors.Is(err, model.ErrNotFound):
		log.Warn().Err(err).Msg("webhook event ignored: not found")
		return s.ignored("transaction_not_found", resp), nil
	case errors.Is(err, model.ErrVerificationRejected), errors.Is(err, model.ErrDepositFailed):
		// The entry is FAILED in the ledger
		log.Info().Err(err).Msg("webhook settlement rejected")
		resp.Reason = "rejected"
		resp.ResultStatus = model.StatusFailed.String()
		return s.processed(resp), nil
	default:
		// Entry left PENDING, including a provider refusing our request
		log.Error().Err(err).Msg("webhook settlement failed")
		s.metrics.WebhookEvent("error")
		return nil, err
	}
}

func (s *WebhookServiceImpl) processed(resp *model.WebhookResponse) *model.WebhookResponse {
	resp.Status = webhookProcessed
	s.metrics.WebhookEvent(webhookProcessed)
	return resp
}

func (s *WebhookServiceImpl) ignored(reason string, resp *model.WebhookResponse) *model.WebhookResponse {
	resp.Status = webhookIgnored
	resp.Reason = reason
	s.metrics.WebhookEvent("ignored_" + reason)
	return resp
}
