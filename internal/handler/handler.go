package handler

import (
	"errors"
	"net/http"
	"wallet-settlement/internal/auth"
	"wallet-settlement/internal/metrics"
	"wallet-settlement/internal/model"
	"wallet-settlement/internal/provider"
	"wallet-settlement/internal/ratelimit"
	"wallet-settlement/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultWebhookMaxBody = 64 << 10

type Dependencies struct {
	Deposits    service.DepositService
	Withdrawals service.WithdrawalService
	Webhooks    service.WebhookService
	Accounts    service.AccountService

	JWT      *auth.JWTVerifier
	Limiter  ratelimit.Limiter
	Metrics  *metrics.Metrics
	Gatherer prometheus.Gatherer

	WebhookSignatureHeader string
	WebhookMaxBodyBytes    int64
}

type Handler struct {
	deps   Dependencies
	logger zerolog.Logger
}

func NewHandler(deps Dependencies, logger zerolog.Logger) *Handler {
	if deps.WebhookSignatureHeader == "" {
		deps.WebhookSignatureHeader = "X-Kkiapay-Signature"
	}
	if deps.WebhookMaxBodyBytes <= 0 {
		deps.WebhookMaxBodyBytes = defaultWebhookMaxBody
	}
	return &Handler{
		deps:   deps,
		logger: logger,
	}
}

func (h *Handler) SetupRoutes() *gin.Engine {
	router := gin.New()

	// Middlewares
	router.Use(
		RequestIDMiddleware(),
		LoggingMiddleware(h.logger),
		gin.Recovery(),
	)

	// Swagger, metrics and health checks
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if h.deps.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.deps.Gatherer, promhttp.HandlerOpts{})))
	}

	// API routes
	v1 := router.Group("/api/v1")

	// Provider push, authenticated by signature instead of a user token
	v1.POST("/webhooks/kkiapay", h.KkiapayWebhook)

	authed := v1.Group("", auth.Middleware(h.deps.JWT))

	deposits := authed.Group("/deposits")
	deposits.POST("/intent", h.limit("deposit_intent"), h.CreateDepositIntent)
	deposits.POST("/verify", h.limit("deposit_verify"), h.VerifyDeposit)
	deposits.GET("/:reference/status", h.GetDepositStatus)

	withdrawals := authed.Group("/withdrawals")
	withdrawals.POST("", h.limit("withdrawal_request"), h.RequestWithdrawal)

	users := authed.Group("/users/me")
	users.GET("/balance", h.GetBalance)
	users.GET("/transactions", h.ListTransactions)

	admin := authed.Group("/admin", auth.RequireRole(auth.RoleAdmin))
	admin.POST("/withdrawals/:id/approve", h.ApproveWithdrawal)
	admin.POST("/withdrawals/:id/reject", h.RejectWithdrawal)

	return router
}

func (h *Handler) limit(route string) gin.HandlerFunc {
	return ratelimit.Middleware(h.deps.Limiter, route, ratelimit.ByUser(route), h.deps.Metrics, h.logger)
}

// currentUser returns the authenticated user id or writes 401.
func (h *Handler) currentUser(c *gin.Context) (int64, bool) {
	userID, ok := auth.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, model.ErrorResponse{
			Error: "authentication required",
			Code:  "UNAUTHORIZED",
		})
		return 0, false
	}
	return userID, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"

	resp := model.ErrorResponse{Error: err.Error()}

	switch {
	case errors.Is(err, model.ErrWebhookNotConfigured):
		status = http.StatusServiceUnavailable
		code = "WEBHOOK_NOT_CONFIGURED"
		resp.Error = "webhook verification is not configured"
	case errors.Is(err, provider.ErrNotConfigured):
		status = http.StatusServiceUnavailable
		code = "PROVIDER_NOT_CONFIGURED"
	case errors.Is(err, model.ErrMissingSignature):
		status = http.StatusUnauthorized
		code = "MISSING_SIGNATURE"
	case errors.Is(err, model.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = "INVALID_SIGNATURE"
	case errors.Is(err, model.ErrTransientProvider):
		status = http.StatusServiceUnavailable
		code = "PROVIDER_UNAVAILABLE"
		resp.Details = "Payment could not be verified yet, retry with the same reference"
		c.Header("Retry-After", "30")
	case errors.Is(err, model.ErrTerminalBalanceUpdate):
		code = "BALANCE_UPDATE_FAILED"
		resp.Details = "The payment was verified but crediting failed; support has been alerted"
	case errors.Is(err, model.ErrInsufficientBalance):
		status = http.StatusBadRequest
		code = "INSUFFICIENT_BALANCE"
	case errors.Is(err, model.ErrProviderTxClaimed):
		status = http.StatusConflict
		code = "DUPLICATE_PROVIDER_TRANSACTION"
		resp.Details = "Provider transaction already credited to another deposit"
	case errors.Is(err, model.ErrConflict):
		status = http.StatusConflict
		code = "CONFLICT"
	case errors.Is(err, model.ErrUserNotFound):
		status = http.StatusNotFound
		code = "USER_NOT_FOUND"
	case errors.Is(err, model.ErrIntentNotFound):
		status = http.StatusNotFound
		code = "DEPOSIT_NOT_FOUND"
	case errors.Is(err, model.ErrProviderNotFound):
		status = http.StatusNotFound
		code = "PROVIDER_TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
		code = "TRANSACTION_NOT_FOUND"
	case errors.Is(err, model.ErrVerificationRejected):
		status = http.StatusBadRequest
		code = "VERIFICATION_REJECTED"
	case errors.Is(err, model.ErrDepositFailed):
		status = http.StatusBadRequest
		code = "DEPOSIT_FAILED"
	case errors.Is(err, model.ErrProviderRejected):
		status = http.StatusBadGateway
		code = "PROVIDER_REJECTED"
		resp.Details = "The payment provider refused the verification request"
	case errors.Is(err, model.ErrInvalidAmount):
		status = http.StatusBadRequest
		code = "INVALID_AMOUNT"
	case errors.Is(err, model.ErrInvalidPhoneNumber):
		status = http.StatusBadRequest
		code = "INVALID_PHONE_NUMBER"
	case errors.Is(err, model.ErrInvalidRequestID):
		status = http.StatusBadRequest
		code = "INVALID_REQUEST_ID"
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
		code = "VALIDATION_ERROR"
	}
	resp.Code = code

	if status >= http.StatusInternalServerError {
		h.logger.Error().Err(err).Str("code", code).Msg("request failed")
	}
	if status == http.StatusInternalServerError && code == "INTERNAL_SERVER_ERROR" {
		resp.Error = "internal server error"
	}

	c.JSON(status, resp)
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{
		Error: msg,
		Code:  "INVALID_REQUEST",
	})
}
