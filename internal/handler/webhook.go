package handler

import (
	"errors"
	"io"
	"net/http"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// KkiapayWebhook
// @Summary Receive a provider event
// @Description Authenticates the signature over the raw body and settles the referenced deposit through provider verification. Events that cannot be acted on are acknowledged as ignored.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param X-Kkiapay-Signature header string true "Hex HMAC-SHA256 of the body"
// @Success 200 {object} model.WebhookResponse
// @Failure 401 {object} model.ErrorResponse "Bad signature"
// @Failure 413 {object} model.ErrorResponse "Body too large"
// @Failure 503 {object} model.ErrorResponse "Provider unavailable, retry"
// @Router /webhooks/kkiapay [post]
func (h *Handler) KkiapayWebhook(c *gin.Context) {
	// Signature is over the exact bytes received, so read before any binding
	body, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, h.deps.WebhookMaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, model.ErrorResponse{
				Error: "webhook body too large",
				Code:  "PAYLOAD_TOO_LARGE",
			})
			return
		}
		badRequest(c, "could not read webhook body")
		return
	}

	resp, err := h.deps.Webhooks.Handle(c.Request.Context(), body, c.GetHeader(h.deps.WebhookSignatureHeader))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
