// Package assets owns the asset list, net-worth computation, price
// refresh, and balance adjustment, reconciling in-memory state against
// the remote ledger and the local cache.
package assets

import (
	"context"
	"encoding/json"
	"errors"
	"sync"

	"wealthguard/internal/cache"
	apperrors "wealthguard/internal/errors"
	"wealthguard/internal/identifier"
	"wealthguard/internal/logger"
	"wealthguard/internal/models"
	"wealthguard/internal/notify"
	"wealthguard/internal/pricefeed"
)

// LedgerClient is the subset of the remote ledger needed by the engine.
type LedgerClient interface {
	FetchProfile(ctx context.Context) (*models.Profile, error)
	UpsertProfile(ctx context.Context, patch models.ProfilePatch) error
}

// Engine is the asset synchronization engine. The remote ledger is the
// single source of truth; the local cache is a best-effort mirror used
// as a fallback when the ledger is unreachable.
type Engine struct {
	ledger   LedgerClient
	cache    cache.Store
	feeds    []pricefeed.Feed
	notifier notify.Notifier

	mu      sync.Mutex
	assets  []models.Asset
	history []models.HistoryPoint
	budget  float64
	loading bool
	offline bool
}

// NewEngine creates an asset engine with its collaborators injected.
func NewEngine(ledger LedgerClient, store cache.Store, feeds []pricefeed.Feed, notifier notify.Notifier) *Engine {
	return &Engine{
		ledger:   ledger,
		cache:    store,
		feeds:    feeds,
		notifier: notifier,
		budget:   models.DefaultBudget,
	}
}

// defaultPortfolio is the fixture portfolio persisted for a first-time
// user with no profile document.
func defaultPortfolio() []models.Asset {
	return []models.Asset{
		{ID: identifier.New(), Symbol: "BTC", Name: "Bitcoin", Type: models.AssetTypeCrypto, Qty: 0.01},
		{ID: identifier.New(), Symbol: "VND", Name: "VNDIRECT Stock", Type: models.AssetTypeStock, Qty: 100},
		{ID: identifier.New(), Symbol: "CASH", Name: "Cash Savings", Type: models.AssetTypeCash, Qty: 5000000, Price: 1},
	}
}

// Load fetches the profile document, falling back to the local cache
// when the ledger is unreachable. A first-time user (no document) gets
// the default portfolio, persisted without blocking the load on the
// round trip. When neither the ledger nor the cache can produce data,
// Load surfaces a fatal notice and returns an error: an empty portfolio
// is never presented silently.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	e.loading = true
	e.mu.Unlock()
	defer func() {
		e.mu.Lock()
		e.loading = false
		e.mu.Unlock()
	}()

	profile, err := e.ledger.FetchProfile(ctx)
	switch {
	case err == nil:
		// Ensure IDs on legacy records that predate identifier assignment.
		for i := range profile.Assets {
			if profile.Assets[i].ID == "" {
				profile.Assets[i].ID = identifier.New()
			}
		}
		budget := profile.Budget
		if budget == 0 {
			budget = models.DefaultBudget
		}

		e.mu.Lock()
		e.assets = profile.Assets
		e.history = profile.History
		e.budget = budget
		e.offline = false
		e.mirrorLocked()
		e.mu.Unlock()
		return nil

	case errors.Is(err, apperrors.ErrProfileNotFound):
		logger.Get().Infow("no profile document, creating defaults")
		defaults := defaultPortfolio()

		e.mu.Lock()
		e.assets = defaults
		e.history = nil
		e.budget = models.DefaultBudget
		e.offline = false
		e.mirrorLocked()
		e.mu.Unlock()

		// Persist in the background; the defaults are presented
		// immediately either way.
		go func() {
			budget := float64(models.DefaultBudget)
			patch := models.ProfilePatch{Assets: defaults, History: []models.HistoryPoint{}, Budget: &budget}
			if err := e.ledger.UpsertProfile(context.Background(), patch); err != nil {
				logger.Get().Warnw("failed to persist default portfolio", "error", err)
			}
		}()
		return nil

	default:
		blob, ok := e.cache.Read(cache.StateKey)
		if !ok {
			e.notifier.Fatal("Failed to load assets from cloud. Please check connection.")
			return apperrors.Wrap(apperrors.ErrLoadFailed, err)
		}

		var cached models.Profile
		if jsonErr := json.Unmarshal(blob, &cached); jsonErr != nil {
			e.notifier.Fatal("Failed to load assets from cloud. Please check connection.")
			return apperrors.Wrap(apperrors.ErrLoadFailed, err)
		}

		logger.Get().Warnw("ledger unreachable, loaded cached snapshot", "error", err)
		e.notifier.Warn("Showing locally cached assets; cloud is unreachable.")

		e.mu.Lock()
		e.assets = cached.Assets
		e.history = cached.History
		e.budget = cached.Budget
		e.offline = true
		e.mu.Unlock()
		return nil
	}
}

// SyncPrices refreshes asset prices from the external feeds. It works on
// a snapshot, isolates per-asset failures, and swaps the refreshed list
// in atomically only when at least one price changed. It never writes to
// the remote ledger: persistence happens exclusively through SaveAssets.
func (e *Engine) SyncPrices(ctx context.Context) {
	e.mu.Lock()
	snapshot := models.CloneAssets(e.assets)
	e.mu.Unlock()

	if len(snapshot) == 0 {
		return
	}

	quoted := make(map[string]float64)
	for _, asset := range snapshot {
		switch asset.Type {
		case models.AssetTypeCash:
			quoted[asset.ID] = 1
		case models.AssetTypeDebt:
			// Price is user-maintained, default 0; no external call.
		default:
			feed := e.feedFor(asset.Type)
			if feed == nil {
				continue
			}
			price, err := feed.Quote(ctx, asset)
			if err != nil {
				// Retain the previous price for this asset only.
				logger.Get().Warnw("price fetch failed",
					"feed", feed.Name(), "symbol", asset.Symbol, "error", err)
				continue
			}
			quoted[asset.ID] = price
		}
	}

	// Apply quotes to the live list by id rather than swapping the
	// snapshot wholesale, so a save that landed mid-sync is not undone.
	e.mu.Lock()
	defer e.mu.Unlock()

	changed := false
	for i := range e.assets {
		price, ok := quoted[e.assets[i].ID]
		if ok && price != e.assets[i].Price {
			e.assets[i].Price = price
			changed = true
		}
	}
	if changed {
		e.mirrorLocked()
	}
}

func (e *Engine) feedFor(assetType models.AssetType) pricefeed.Feed {
	for _, f := range e.feeds {
		if f.Supports(assetType) {
			return f
		}
	}
	return nil
}

// SaveAssets replaces the asset list optimistically, mirrors it to the
// cache, and persists it to the ledger with merge semantics. A failed
// remote write surfaces an error but does not roll back the in-memory
// replacement: reverting a user-initiated edit silently would be worse
// than the divergence window. A price refresh for the new list is
// triggered as a trailing side effect, detached from the save's own
// completion.
func (e *Engine) SaveAssets(ctx context.Context, newAssets []models.Asset) error {
	newAssets = models.CloneAssets(newAssets)
	for i := range newAssets {
		if newAssets[i].ID == "" {
			newAssets[i].ID = identifier.New()
		}
		newAssets[i].Normalize()
	}

	e.mu.Lock()
	e.assets = newAssets
	history := e.history
	budget := e.budget
	e.mirrorLocked()
	e.mu.Unlock()

	patch := models.ProfilePatch{Assets: newAssets, History: history, Budget: &budget}
	err := e.ledger.UpsertProfile(ctx, patch)
	if err != nil {
		logger.Get().Errorw("profile save failed", "error", err)
		e.notifier.Warn("Failed to save to cloud!")
	}

	go e.SyncPrices(context.Background())

	if err != nil {
		return apperrors.Wrap(apperrors.ErrSaveFailed, err)
	}
	return nil
}

// AdjustBalance shifts the linked asset's quantity by amt divided by the
// asset's effective price: income increases quantity, expense decreases
// it, and invert reverses the direction for deletions. A dangling asset
// id is a silent no-op. The adjusted list is persisted through SaveAssets.
func (e *Engine) AdjustBalance(ctx context.Context, assetID string, amt float64, spendType models.SpendingType, invert bool) error {
	if assetID == "" {
		return nil
	}

	e.mu.Lock()
	idx := -1
	for i := range e.assets {
		if e.assets[i].ID == assetID {
			idx = i
			break
		}
	}
	if idx == -1 {
		// The asset was deleted independently; the weak reference is
		// tolerated and the adjustment skipped.
		e.mu.Unlock()
		return nil
	}

	adjusted := models.CloneAssets(e.assets)
	delta := amt / adjusted[idx].EffectivePrice()

	increase := spendType == models.SpendingTypeIncome
	if invert {
		increase = !increase
	}
	if increase {
		adjusted[idx].Qty += delta
	} else {
		adjusted[idx].Qty -= delta
	}
	e.mu.Unlock()

	return e.SaveAssets(ctx, adjusted)
}

// mirrorLocked writes the current profile state to the local cache.
// Callers must hold e.mu.
func (e *Engine) mirrorLocked() {
	blob, err := json.Marshal(models.Profile{Assets: e.assets, History: e.history, Budget: e.budget})
	if err != nil {
		return
	}
	e.cache.Write(cache.StateKey, blob)
}

// Assets returns a copy of the current asset list.
func (e *Engine) Assets() []models.Asset {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.CloneAssets(e.assets)
}

// History returns the net-worth history passthrough.
func (e *Engine) History() []models.HistoryPoint {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.HistoryPoint, len(e.history))
	copy(out, e.history)
	return out
}

// Budget returns the configured budget.
func (e *Engine) Budget() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.budget
}

// NetWorth returns the sum of asset values over the current list. It is
// recomputed on every call and never cached.
func (e *Engine) NetWorth() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return models.NetWorth(e.assets)
}

// Offline reports whether the last load degraded to the cached snapshot.
func (e *Engine) Offline() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.offline
}

// Loading reports whether a load is in progress.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}
