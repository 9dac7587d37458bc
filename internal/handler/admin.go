package handler

import (
	"net/http"
	"strconv"
	"wallet-settlement/internal/model"

	"github.com/gin-gonic/gin"
)

// ApproveWithdrawal
// @Summary Approve a withdrawal
// @Description Marks a PENDING withdrawal as paid out. No-op on any other status.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ledger entry ID"
// @Success 200 {object} model.AdminActionResponse
// @Failure 404 {object} model.ErrorResponse "Entry not found"
// @Router /admin/withdrawals/{id}/approve [post]
func (h *Handler) ApproveWithdrawal(c *gin.Context) {
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	result, err := h.deps.Withdrawals.Approve(c.Request.Context(), entryID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, adminResponse(result))
}

// RejectWithdrawal
// @Summary Reject a withdrawal
// @Description Refunds a PENDING withdrawal and marks it FAILED. The refund is applied at most once.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Ledger entry ID"
// @Param rejection body model.RejectWithdrawalRequest true "Rejection reason"
// @Success 200 {object} model.AdminActionResponse
// @Failure 400 {object} model.ErrorResponse "Bad request"
// @Failure 404 {object} model.ErrorResponse "Entry not found"
// @Router /admin/withdrawals/{id}/reject [post]
func (h *Handler) RejectWithdrawal(c *gin.Context) {
	entryID, ok := entryIDParam(c)
	if !ok {
		return
	}

	var req model.RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "reason is required")
		return
	}

	result, err := h.deps.Withdrawals.Reject(c.Request.Context(), entryID, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, adminResponse(result))
}

func entryIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

func adminResponse(r *model.AdminActionResult) model.AdminActionResponse {
	return model.AdminActionResponse{
		Message:     r.Message,
		Applied:     r.Applied,
		Balance:     r.Balance,
		Transaction: r.Entry,
	}
}
