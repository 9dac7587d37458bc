package handler

import (
	"net/http"
	"strconv"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// GetBalance
// @Summary Get balance
// @Description Returns the current balance of the authenticated user
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.BalanceResponse
// @Failure 404 {object} model.ErrorResponse "User not found"
// @Router /users/me/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	resp, err := h.deps.Accounts.GetBalance(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListTransactions
// @Summary List ledger entries
// @Description Returns a paginated list of ledger entries of the authenticated user, newest first
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Limit" default(20)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} model.TransactionListResponse
// @Router /users/me/transactions [get]
func (h *Handler) ListTransactions(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	entries, err := h.deps.Accounts.ListTransactions(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TransactionListResponse{
		Transactions: entries,
		Total:        len(entries),
		Limit:        limit,
		Offset:       offset,
	})
}
