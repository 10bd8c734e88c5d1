// Package pricefeed defines the interface for fetching asset prices from
// external market-data sources.
package pricefeed

import (
	"context"

	"wealthguard/internal/models"
)

// Feed fetches the current market price for a single asset. Feeds are
// best-effort: a quote error means "no update" for that asset and must
// never abort a synchronization pass over the remaining assets.
type Feed interface {
	// Name returns the feed's display name (e.g., "CoinGecko").
	Name() string

	// Supports returns true if this feed can quote the given asset type.
	Supports(assetType models.AssetType) bool

	// Quote fetches the current price of the asset in the home currency.
	Quote(ctx context.Context, asset models.Asset) (float64, error)
}
