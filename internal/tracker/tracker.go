// Package tracker coordinates the cross-cutting effect between spending
// records and linked asset balances: a transaction write and its balance
// adjustment are exposed as one operation, so a transaction can never
// exist without its balance effect after a partial failure.
package tracker

import (
	"context"

	"wealthguard/internal/assets"
	"wealthguard/internal/logger"
	"wealthguard/internal/models"
	"wealthguard/internal/spending"
)

// Tracker is the application-layer facade over the two synchronization
// engines. It owns no state of its own.
type Tracker struct {
	assets   *assets.Engine
	spending *spending.Engine
}

// New creates a tracker over the given engines.
func New(assetEngine *assets.Engine, spendingEngine *spending.Engine) *Tracker {
	return &Tracker{assets: assetEngine, spending: spendingEngine}
}

// Assets returns the asset engine for read access.
func (t *Tracker) Assets() *assets.Engine { return t.assets }

// Spending returns the spending engine for read access.
func (t *Tracker) Spending() *spending.Engine { return t.spending }

// AddTransaction records a spending transaction and, only when the
// write succeeded, adjusts the linked asset's quantity. A failed write
// leaves every balance untouched.
func (t *Tracker) AddTransaction(ctx context.Context, amt float64, cat, details string, spendType models.SpendingType, assetID string) (*models.Transaction, error) {
	tx, err := t.spending.Add(ctx, amt, cat, details, spendType, assetID)
	if err != nil {
		return nil, err
	}

	if assetID != "" {
		if err := t.assets.AdjustBalance(ctx, assetID, amt, spendType, false); err != nil {
			// The transaction is recorded; the adjusted balance is held
			// in memory and the cache until the next successful save.
			logger.Get().Warnw("balance adjustment save failed", "asset_id", assetID, "error", err)
		}
	}
	return tx, nil
}

// DeleteTransaction removes a spending transaction and, on success,
// applies the inverse balance adjustment to the linked asset. Deleting
// an unknown id is a no-op.
func (t *Tracker) DeleteTransaction(ctx context.Context, id string) (*models.Transaction, error) {
	removed, err := t.spending.Delete(ctx, id)
	if err != nil || removed == nil {
		return nil, err
	}

	if removed.AssetID != "" {
		if err := t.assets.AdjustBalance(ctx, removed.AssetID, removed.Amt, removed.Type, true); err != nil {
			logger.Get().Warnw("balance adjustment save failed", "asset_id", removed.AssetID, "error", err)
		}
	}
	return removed, nil
}

// Refresh triggers a manual price synchronization.
func (t *Tracker) Refresh(ctx context.Context) {
	t.assets.SyncPrices(ctx)
}
