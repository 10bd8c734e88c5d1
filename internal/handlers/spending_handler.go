package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "wealthguard/internal/errors"
	"wealthguard/internal/models"
	"wealthguard/internal/spending"
	"wealthguard/internal/tracker"
)

// SpendingHandler handles spending-related requests.
type SpendingHandler struct {
	tracker *tracker.Tracker
}

// NewSpendingHandler creates a new SpendingHandler.
func NewSpendingHandler(t *tracker.Tracker) *SpendingHandler {
	return &SpendingHandler{tracker: t}
}

// ListSpendingRequest represents the query parameters for listing spending.
type ListSpendingRequest struct {
	Range string `form:"range" binding:"omitempty,range_kind"`
}

// SpendingResponse represents the filtered spending list in the response.
type SpendingResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Filter       string               `json:"filter"`
	Loading      bool                 `json:"loading"`
}

// AddSpendingRequest represents the request payload for adding a spending record.
type AddSpendingRequest struct {
	Amt     float64 `json:"amt" binding:"required,gt=0"`
	Cat     string  `json:"cat" binding:"required,spending_category"`
	Details string  `json:"details" binding:"max=500"`
	Type    string  `json:"type" binding:"required,spending_type"`
	AssetID string  `json:"assetId"`
}

// ListSpending switches the range filter and returns the filtered list
// @Summary     List spending
// @Description Re-query spending records for the given range filter (default: current filter)
// @Tags        spending
// @Produce     json
// @Param       range query string false "Range filter" Enums(this_month, last_month, last_3_months, ytd, all)
// @Success     200 {object} SpendingResponse "Filtered transactions (last known data when the ledger is unreachable)"
// @Failure     400 {object} ErrorResponse "Invalid range"
// @Router      /spending [get]
func (h *SpendingHandler) ListSpending(c *gin.Context) {
	var req ListSpendingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	eng := h.tracker.Spending()
	kind := eng.Filter()
	if req.Range != "" {
		kind = spending.RangeKind(req.Range)
	}

	// A failed query keeps the stale snapshot visible (degraded mode);
	// the engine has already surfaced a notice, so the last known data
	// is returned either way.
	_ = eng.SetFilter(c.Request.Context(), kind)

	c.JSON(http.StatusOK, SpendingResponse{
		Transactions: eng.Transactions(),
		Filter:       string(eng.Filter()),
		Loading:      eng.Loading(),
	})
}

// AddSpending records a new transaction
// @Summary     Add a transaction
// @Description Record a spending transaction; a linked asset's balance is adjusted only if the write succeeds
// @Tags        spending
// @Accept      json
// @Produce     json
// @Param       request body AddSpendingRequest true "Transaction details"
// @Success     201 {object} models.Transaction "Transaction created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Cloud write failed; nothing recorded"
// @Router      /spending [post]
func (h *SpendingHandler) AddSpending(c *gin.Context) {
	var req AddSpendingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	tx, err := h.tracker.AddTransaction(
		c.Request.Context(),
		req.Amt,
		req.Cat,
		req.Details,
		models.SpendingType(req.Type),
		req.AssetID,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"transaction": tx})
}

// DeleteSpending removes a transaction
// @Summary     Delete a transaction
// @Description Delete a spending transaction; the linked asset's balance adjustment is inverted on success
// @Tags        spending
// @Produce     json
// @Param       id path string true "Transaction ID"
// @Success     200 {object} models.Transaction "Deleted transaction"
// @Failure     404 {object} ErrorResponse "Transaction not found"
// @Failure     502 {object} ErrorResponse "Cloud delete failed; record restored"
// @Router      /spending/{id} [delete]
func (h *SpendingHandler) DeleteSpending(c *gin.Context) {
	id := c.Param("id")

	removed, err := h.tracker.DeleteTransaction(c.Request.Context(), id)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if removed == nil {
		respondWithError(c, apperrors.ErrTransactionNotFound)
		return
	}

	c.JSON(http.StatusOK, gin.H{"transaction": removed})
}

// ListCategories returns the fixed category set
// @Summary     List categories
// @Description Get the fixed set of spending category labels
// @Tags        spending
// @Produce     json
// @Success     200 {object} map[string][]string "Category labels"
// @Router      /spending/categories [get]
func (h *SpendingHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": models.Categories})
}
