package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wealthguard/internal/assets"
	apperrors "wealthguard/internal/errors"
	"wealthguard/internal/models"
)

// PortfolioHandler handles portfolio-related requests.
type PortfolioHandler struct {
	engine *assets.Engine
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(engine *assets.Engine) *PortfolioHandler {
	return &PortfolioHandler{engine: engine}
}

// PortfolioResponse represents the portfolio state in the response.
type PortfolioResponse struct {
	Assets   []models.Asset        `json:"assets"`
	History  []models.HistoryPoint `json:"history"`
	Budget   float64               `json:"budget"`
	NetWorth float64               `json:"net_worth"`
	Offline  bool                  `json:"offline"`
	Loading  bool                  `json:"loading"`
}

// AssetRequest represents a single asset in a save request.
type AssetRequest struct {
	ID     string  `json:"id"`
	Symbol string  `json:"symbol" binding:"required,max=16"`
	Name   string  `json:"name" binding:"required,max=100"`
	Type   string  `json:"type" binding:"required,asset_type"`
	Qty    float64 `json:"qty"`
	Price  float64 `json:"price"`
}

// SaveAssetsRequest represents the request payload for replacing the asset list.
type SaveAssetsRequest struct {
	Assets []AssetRequest `json:"assets" binding:"required,dive"`
}

// GetPortfolio returns the current portfolio state
// @Summary     Get portfolio
// @Description Get the asset list, net-worth history, budget, and derived net worth
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} PortfolioResponse "Portfolio state"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio [get]
func (h *PortfolioHandler) GetPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, PortfolioResponse{
		Assets:   h.engine.Assets(),
		History:  h.engine.History(),
		Budget:   h.engine.Budget(),
		NetWorth: h.engine.NetWorth(),
		Offline:  h.engine.Offline(),
		Loading:  h.engine.Loading(),
	})
}

// SaveAssets replaces the asset list
// @Summary     Save assets
// @Description Replace the asset list; the change is applied immediately and persisted to the cloud
// @Tags        portfolio
// @Accept      json
// @Produce     json
// @Param       request body SaveAssetsRequest true "New asset list"
// @Success     200 {object} PortfolioResponse "Updated portfolio state"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     502 {object} ErrorResponse "Cloud save failed"
// @Router      /portfolio/assets [put]
func (h *PortfolioHandler) SaveAssets(c *gin.Context) {
	var req SaveAssetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	newAssets := make([]models.Asset, len(req.Assets))
	for i, a := range req.Assets {
		newAssets[i] = models.Asset{
			ID:     a.ID,
			Symbol: a.Symbol,
			Name:   a.Name,
			Type:   models.AssetType(a.Type),
			Qty:    a.Qty,
			Price:  a.Price,
		}
	}

	if err := h.engine.SaveAssets(c.Request.Context(), newAssets); err != nil {
		// The in-memory state is already replaced; report the failed
		// cloud write without undoing the user's edit.
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, PortfolioResponse{
		Assets:   h.engine.Assets(),
		History:  h.engine.History(),
		Budget:   h.engine.Budget(),
		NetWorth: h.engine.NetWorth(),
		Offline:  h.engine.Offline(),
		Loading:  h.engine.Loading(),
	})
}

// SyncPrices triggers a manual price refresh
// @Summary     Refresh prices
// @Description Fetch current market prices for crypto and stock assets
// @Tags        portfolio
// @Produce     json
// @Success     200 {object} PortfolioResponse "Portfolio state after refresh"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /portfolio/sync [post]
func (h *PortfolioHandler) SyncPrices(c *gin.Context) {
	h.engine.SyncPrices(c.Request.Context())

	c.JSON(http.StatusOK, PortfolioResponse{
		Assets:   h.engine.Assets(),
		History:  h.engine.History(),
		Budget:   h.engine.Budget(),
		NetWorth: h.engine.NetWorth(),
		Offline:  h.engine.Offline(),
		Loading:  h.engine.Loading(),
	})
}
