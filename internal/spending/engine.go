// Package spending owns the filtered spending list: optimistic local
// mutation with rollback on failure, and date-range re-querying against
// the remote ledger.
package spending

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"wealthguard/internal/cache"
	apperrors "wealthguard/internal/errors"
	"wealthguard/internal/identifier"
	"wealthguard/internal/logger"
	"wealthguard/internal/models"
	"wealthguard/internal/notify"
)

// LedgerClient is the subset of the remote ledger needed by the engine.
type LedgerClient interface {
	QuerySpending(ctx context.Context, from, to string) ([]models.Transaction, error)
	AddSpending(ctx context.Context, tx models.Transaction) (string, error)
	DeleteSpending(ctx context.Context, id string) error
}

// Engine is the transaction synchronization engine. The in-memory list
// holds the records for the current range filter, descending by date.
type Engine struct {
	ledger   LedgerClient
	cache    cache.Store
	notifier notify.Notifier
	now      func() time.Time

	mu           sync.Mutex
	transactions []models.Transaction
	filter       RangeKind
	loading      bool

	// token invalidates in-flight range queries: a response is discarded
	// unless its token still matches the latest issued one, so a slow
	// early query can never overwrite the result of a later filter change.
	token uint64
}

// NewEngine creates a spending engine with its collaborators injected.
// The initial filter is this_month; callers refresh it with SetFilter.
func NewEngine(ledger LedgerClient, store cache.Store, notifier notify.Notifier) *Engine {
	e := &Engine{
		ledger:   ledger,
		cache:    store,
		notifier: notifier,
		now:      time.Now,
		filter:   RangeThisMonth,
	}

	// Surface the cached snapshot for the default range immediately.
	if blob, ok := store.Read(cache.SpendingKey(string(RangeThisMonth))); ok {
		var cached []models.Transaction
		if err := json.Unmarshal(blob, &cached); err == nil {
			e.transactions = cached
		}
	}
	return e
}

// SetFilter switches the range filter and re-queries the ledger. A
// cached snapshot for the range is surfaced immediately while the query
// is in flight. On failure the stale snapshot stays visible (degraded
// mode) and an error is returned; loading clears on every path.
func (e *Engine) SetFilter(ctx context.Context, kind RangeKind) error {
	e.mu.Lock()
	e.filter = kind
	e.loading = true
	e.token++
	token := e.token

	if blob, ok := e.cache.Read(cache.SpendingKey(string(kind))); ok {
		var cached []models.Transaction
		if err := json.Unmarshal(blob, &cached); err == nil {
			e.transactions = cached
		}
	}
	e.mu.Unlock()

	from, to := ResolveRange(kind, e.now())
	result, err := e.ledger.QuerySpending(ctx, from, to)

	e.mu.Lock()
	defer e.mu.Unlock()

	if token != e.token {
		// A later SetFilter superseded this query; it owns the state
		// and the loading flag now.
		return nil
	}
	e.loading = false

	if err != nil {
		logger.Get().Warnw("spending query failed", "range", kind, "error", err)
		e.notifier.Warn("Failed to load transactions; showing last known data.")
		return apperrors.Wrap(apperrors.ErrSpendingQueryFailed, err)
	}

	if result == nil {
		result = []models.Transaction{}
	}
	e.transactions = result
	e.writeCacheLocked()
	return nil
}

// Add validates and submits a new spending record dated today. The
// record is inserted optimistically when its date falls inside the
// current filter range, then reconciled with the server-issued id; a
// failed remote write rolls the placeholder back entirely. The returned
// transaction carries the server id; callers use the error to decide
// whether a linked balance adjustment may run.
func (e *Engine) Add(ctx context.Context, amt float64, cat, details string, spendType models.SpendingType, assetID string) (*models.Transaction, error) {
	if amt <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be greater than zero")
	}

	now := e.now()
	record := models.Transaction{
		Amt:       amt,
		Cat:       cat,
		Details:   details,
		Type:      spendType,
		AssetID:   assetID,
		Date:      now.Format(models.DateLayout),
		CreatedAt: now,
		ClientRef: identifier.New(),
	}

	// Optimistic insert, only when the record is visible under the
	// current filter. The list is descending by date and the record is
	// dated today, so it prepends.
	tempID := identifier.NewLocal()
	inserted := false

	e.mu.Lock()
	from, to := ResolveRange(e.filter, now)
	if record.Date >= from && record.Date <= to {
		placeholder := record
		placeholder.ID = tempID
		e.transactions = append([]models.Transaction{placeholder}, e.transactions...)
		e.writeCacheLocked()
		inserted = true
	}
	e.mu.Unlock()

	id, err := e.ledger.AddSpending(ctx, record)
	if err != nil {
		logger.Get().Errorw("spending add failed", "error", err)
		e.notifier.Warn("Error saving transaction to cloud! Check internet connection.")

		if inserted {
			e.mu.Lock()
			e.removeLocked(tempID)
			e.writeCacheLocked()
			e.mu.Unlock()
		}
		return nil, apperrors.Wrap(apperrors.ErrSpendingWriteFailed, err)
	}

	record.ID = id
	if inserted {
		e.mu.Lock()
		for i := range e.transactions {
			if e.transactions[i].ID == tempID {
				e.transactions[i].ID = id
				break
			}
		}
		e.writeCacheLocked()
		e.mu.Unlock()
	}
	return &record, nil
}

// Delete removes the record with the given id. An unknown id is a
// no-op. The removal is optimistic: on a failed remote delete the
// record is restored in date-sorted order. The removed transaction is
// returned so the caller can invert its linked balance effect.
func (e *Engine) Delete(ctx context.Context, id string) (*models.Transaction, error) {
	e.mu.Lock()
	var removed *models.Transaction
	for i := range e.transactions {
		if e.transactions[i].ID == id {
			tx := e.transactions[i]
			removed = &tx
			break
		}
	}
	if removed == nil {
		e.mu.Unlock()
		return nil, nil
	}
	e.removeLocked(id)
	e.writeCacheLocked()
	e.mu.Unlock()

	if err := e.ledger.DeleteSpending(ctx, id); err != nil {
		logger.Get().Errorw("spending delete failed", "id", id, "error", err)
		e.notifier.Warn("Failed to delete expense")

		e.mu.Lock()
		e.transactions = append(e.transactions, *removed)
		sortDescending(e.transactions)
		e.writeCacheLocked()
		e.mu.Unlock()
		return nil, apperrors.Wrap(apperrors.ErrSpendingWriteFailed, err)
	}
	return removed, nil
}

// Transactions returns a copy of the current filtered list.
func (e *Engine) Transactions() []models.Transaction {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]models.Transaction, len(e.transactions))
	copy(out, e.transactions)
	return out
}

// Filter returns the active range filter.
func (e *Engine) Filter() RangeKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.filter
}

// Loading reports whether a range query is in flight.
func (e *Engine) Loading() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading
}

// removeLocked drops the record with the given id. Callers hold e.mu.
func (e *Engine) removeLocked(id string) {
	kept := e.transactions[:0]
	for _, tx := range e.transactions {
		if tx.ID != id {
			kept = append(kept, tx)
		}
	}
	e.transactions = kept
}

// writeCacheLocked refreshes the cache snapshot for the active filter.
// Callers hold e.mu.
func (e *Engine) writeCacheLocked() {
	blob, err := json.Marshal(e.transactions)
	if err != nil {
		return
	}
	e.cache.Write(cache.SpendingKey(string(e.filter)), blob)
}

// sortDescending orders records by date descending, newest creation
// first within a date.
func sortDescending(txs []models.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool {
		if txs[i].Date != txs[j].Date {
			return txs[i].Date > txs[j].Date
		}
		return txs[i].CreatedAt.After(txs[j].CreatedAt)
	})
}
