package models

// AssetType represents the type of asset, controlling price semantics.
type AssetType string

const (
	AssetTypeCrypto AssetType = "crypto"
	AssetTypeStock  AssetType = "stock"
	AssetTypeCash   AssetType = "cash"
	AssetTypeDebt   AssetType = "debt"
)

// Asset represents a single holding or liability in the portfolio.
// The JSON field names mirror the documents stored in the remote ledger.
type Asset struct {
	ID     string    `json:"id"`
	Symbol string    `json:"symbol"`
	Name   string    `json:"name"`
	Type   AssetType `json:"type"`
	Qty    float64   `json:"qty"`
	Price  float64   `json:"price"`
}

// Value returns the asset's contribution to net worth.
// Debt assets carry a non-positive price, so they contribute negatively.
func (a Asset) Value() float64 {
	return a.Qty * a.Price
}

// Normalize enforces the fixed conventions for cash and debt assets:
// cash is always priced at 1 so value equals quantity, and debt is pinned
// to quantity 1 with a non-positive price.
func (a *Asset) Normalize() {
	switch a.Type {
	case AssetTypeCash:
		a.Price = 1
	case AssetTypeDebt:
		a.Qty = 1
		if a.Price > 0 {
			a.Price = -a.Price
		}
	}
}

// EffectivePrice returns the price used for quantity adjustments when a
// spending record is linked to this asset. Non-positive or unset prices
// fall back to 1 to guard against division by zero and sign flips.
func (a Asset) EffectivePrice() float64 {
	if a.Price > 0 {
		return a.Price
	}
	return 1
}

// NetWorth computes the total net worth of the given asset list. It is
// always derived from current asset state and never stored separately.
func NetWorth(assets []Asset) float64 {
	var total float64
	for _, a := range assets {
		total += a.Value()
	}
	return total
}

// CloneAssets returns a deep copy of the asset list. Price synchronization
// mutates the clone and swaps it in atomically.
func CloneAssets(assets []Asset) []Asset {
	cloned := make([]Asset, len(assets))
	copy(cloned, assets)
	return cloned
}
