package handler

import (
	"net/http"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// RequestWithdrawal
// @Summary Request a withdrawal
// @Description Debits the balance and records a PENDING payout. Resubmitting the same request_id returns the original entry.
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param withdrawal body model.WithdrawalRequestBody true "Withdrawal details"
// @Success 200 {object} model.WithdrawalResponse "Already requested"
// @Success 201 {object} model.WithdrawalResponse "Created"
// @Failure 400 {object} model.ErrorResponse "Bad request or insufficient balance"
// @Router /withdrawals [post]
func (h *Handler) RequestWithdrawal(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req model.WithdrawalRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	requestID := req.RequestID
	if requestID == "" {
		requestID = c.GetHeader("Idempotency-Key")
	}

	result, err := h.deps.Withdrawals.RequestWithdrawal(c.Request.Context(), model.WithdrawalRequest{
		UserID:          userID,
		Amount:          req.Amount,
		PhoneNumber:     req.PhoneNumber,
		ClientRequestID: requestID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := model.WithdrawalResponse{
		Status:      "success",
		Idempotent:  result.Idempotent,
		Message:     "Withdrawal request submitted",
		ReferenceID: result.Entry.ReferenceID,
		Balance:     result.Balance,
		Transaction: result.Entry,
	}
	statusCode := http.StatusCreated
	if result.Idempotent {
		resp.Message = "Withdrawal already requested"
		statusCode = http.StatusOK
	}
	c.JSON(statusCode, resp)
}
