package testutil

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"wealthguard/internal/models"
)

// FakeLedger is a scriptable remote ledger. Unset functions behave as
// successful no-ops against the in-struct state.
type FakeLedger struct {
	FetchProfileFn  func(ctx context.Context) (*models.Profile, error)
	UpsertProfileFn func(ctx context.Context, patch models.ProfilePatch) error
	QuerySpendingFn func(ctx context.Context, from, to string) ([]models.Transaction, error)
	AddSpendingFn   func(ctx context.Context, tx models.Transaction) (string, error)
	DeleteSpendingFn func(ctx context.Context, id string) error

	mu      sync.Mutex
	upserts []models.ProfilePatch
	counter atomic.Int64
}

// Upserts returns a copy of every profile patch written so far.
func (f *FakeLedger) Upserts() []models.ProfilePatch {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]models.ProfilePatch, len(f.upserts))
	copy(out, f.upserts)
	return out
}

// FetchProfile calls FetchProfileFn or returns an empty profile.
func (f *FakeLedger) FetchProfile(ctx context.Context) (*models.Profile, error) {
	if f.FetchProfileFn != nil {
		return f.FetchProfileFn(ctx)
	}
	return &models.Profile{}, nil
}

// UpsertProfile calls UpsertProfileFn and records the patch on success.
func (f *FakeLedger) UpsertProfile(ctx context.Context, patch models.ProfilePatch) error {
	if f.UpsertProfileFn != nil {
		if err := f.UpsertProfileFn(ctx, patch); err != nil {
			return err
		}
	}
	f.mu.Lock()
	f.upserts = append(f.upserts, patch)
	f.mu.Unlock()
	return nil
}

// QuerySpending calls QuerySpendingFn or returns an empty list.
func (f *FakeLedger) QuerySpending(ctx context.Context, from, to string) ([]models.Transaction, error) {
	if f.QuerySpendingFn != nil {
		return f.QuerySpendingFn(ctx, from, to)
	}
	return []models.Transaction{}, nil
}

// AddSpending calls AddSpendingFn or issues a sequential server id.
func (f *FakeLedger) AddSpending(ctx context.Context, tx models.Transaction) (string, error) {
	if f.AddSpendingFn != nil {
		return f.AddSpendingFn(ctx, tx)
	}
	return fmt.Sprintf("srv-%d", f.counter.Add(1)), nil
}

// DeleteSpending calls DeleteSpendingFn or succeeds.
func (f *FakeLedger) DeleteSpending(ctx context.Context, id string) error {
	if f.DeleteSpendingFn != nil {
		return f.DeleteSpendingFn(ctx, id)
	}
	return nil
}

// StaticFeed quotes fixed prices per symbol for one asset type.
type StaticFeed struct {
	FeedName  string
	AssetType models.AssetType
	Prices    map[string]float64
	Errs      map[string]error
}

// Name returns the feed's display name.
func (s *StaticFeed) Name() string { return s.FeedName }

// Supports reports whether the feed quotes the given asset type.
func (s *StaticFeed) Supports(assetType models.AssetType) bool {
	return assetType == s.AssetType
}

// Quote returns the scripted price or error for the asset's symbol.
func (s *StaticFeed) Quote(_ context.Context, asset models.Asset) (float64, error) {
	if err, ok := s.Errs[asset.Symbol]; ok {
		return 0, err
	}
	price, ok := s.Prices[asset.Symbol]
	if !ok {
		return 0, fmt.Errorf("no quote for %s", asset.Symbol)
	}
	return price, nil
}

// RecordingNotifier captures user notices for assertions.
type RecordingNotifier struct {
	Warnings []string
	Fatals   []string
}

// Warn records a warning notice.
func (n *RecordingNotifier) Warn(message string) {
	n.Warnings = append(n.Warnings, message)
}

// Fatal records a fatal notice.
func (n *RecordingNotifier) Fatal(message string) {
	n.Fatals = append(n.Fatals, message)
}
