package handler

import (
	"net/http"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// CreateDepositIntent
// @Summary Create a deposit intent
// @Description Registers a PENDING deposit and returns the reference to pass to the payment widget
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param intent body model.DepositIntentRequest true "Deposit amount"
// @Success 201 {object} model.DepositIntentResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /deposits/intent [post]
func (h *Handler) CreateDepositIntent(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req model.DepositIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	intent, err := h.deps.Deposits.CreateIntent(c.Request.Context(), userID, req.Amount, req.PhoneNumber)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, model.DepositIntentResponse{
		Status:      intent.Entry.Status.String(),
		ReferenceID: intent.Entry.ReferenceID,
		Amount:      intent.Entry.Amount,
		Currency:    intent.Entry.Currency,
		PublicKey:   intent.PublicKey,
		Sandbox:     intent.Sandbox,
	})
}

// VerifyDeposit
// @Summary Verify and credit a deposit
// @Description Verifies the payment with the provider and credits the balance once. Safe to retry with the same reference.
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param verification body model.VerifyDepositRequest true "Provider transaction and deposit reference"
// @Success 200 {object} model.DepositResponse
// @Failure 400 {object} model.ErrorResponse "Verification rejected"
// @Failure 404 {object} model.ErrorResponse "Unknown deposit or provider transaction"
// @Failure 409 {object} model.ErrorResponse "Provider transaction already credited"
// @Failure 503 {object} model.ErrorResponse "Provider unavailable, retry"
// @Router /deposits/verify [post]
func (h *Handler) VerifyDeposit(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	var req model.VerifyDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "transaction_id and reference_id are required")
		return
	}

	result, err := h.deps.Deposits.ProcessDeposit(c.Request.Context(), model.DepositRequest{
		UserID:                userID,
		ProviderTransactionID: req.TransactionID,
		ReferenceID:           req.ReferenceID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := model.DepositResponse{
		Status:      "success",
		Message:     "Deposit verified and credited",
		Balance:     result.Balance,
		Transaction: result.Entry,
	}
	if result.AlreadyProcessed {
		resp.Status = "already_processed"
		resp.Message = "Deposit already processed"
	}
	c.JSON(http.StatusOK, resp)
}

// GetDepositStatus
// @Summary Get deposit status
// @Description Returns the current status of a deposit intent
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param reference path string true "Deposit reference"
// @Success 200 {object} model.DepositStatusResponse
// @Failure 404 {object} model.ErrorResponse "Deposit not found"
// @Router /deposits/{reference}/status [get]
func (h *Handler) GetDepositStatus(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	entry, err := h.deps.Deposits.GetDepositStatus(c.Request.Context(), userID, c.Param("reference"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DepositStatusResponse{
		ReferenceID:           entry.ReferenceID,
		Status:                entry.Status,
		Amount:                entry.Amount,
		Currency:              entry.Currency,
		ProviderTransactionID: entry.ProviderTransactionID,
	})
}
