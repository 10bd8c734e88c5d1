package tracker

import (
	"context"
	"errors"
	"testing"

	"wealthguard/internal/assets"
	"wealthguard/internal/models"
	"wealthguard/internal/spending"
	"wealthguard/internal/testutil"
)

// setup wires a tracker over both engines with one linked asset loaded.
func setup(t *testing.T, ledger *testutil.FakeLedger) *Tracker {
	t.Helper()

	ledger.FetchProfileFn = func(context.Context) (*models.Profile, error) {
		return &models.Profile{
			Assets: []models.Asset{
				{ID: "a1", Symbol: "BTC", Type: models.AssetTypeCrypto, Qty: 1, Price: 100},
			},
		}, nil
	}

	assetEngine := assets.NewEngine(ledger, testutil.NewMemStore(), nil, &testutil.RecordingNotifier{})
	if err := assetEngine.Load(context.Background()); err != nil {
		t.Fatalf("failed to load assets: %v", err)
	}
	spendingEngine := spending.NewEngine(ledger, testutil.NewMemStore(), &testutil.RecordingNotifier{})
	return New(assetEngine, spendingEngine)
}

func linkedQty(tr *Tracker) float64 {
	return tr.Assets().Assets()[0].Qty
}

func TestAddTransaction(t *testing.T) {
	t.Run("failed_write_leaves_balances_untouched", func(t *testing.T) {
		ledger := &testutil.FakeLedger{
			AddSpendingFn: func(context.Context, models.Transaction) (string, error) {
				return "", errors.New("timeout")
			},
		}
		tr := setup(t, ledger)

		_, err := tr.AddTransaction(context.Background(), 50, "Food", "", models.SpendingTypeExpense, "a1")
		testutil.AssertAppError(t, err, "SPENDING_WRITE_FAILED")

		if got := linkedQty(tr); got != 1 {
			t.Errorf("qty = %f, want untouched 1", got)
		}
		if len(ledger.Upserts()) != 0 {
			t.Error("a failed transaction must not persist a balance change")
		}
	})

	t.Run("successful_expense_debits_the_linked_asset", func(t *testing.T) {
		ledger := &testutil.FakeLedger{}
		tr := setup(t, ledger)

		tx, err := tr.AddTransaction(context.Background(), 50, "Food", "lunch", models.SpendingTypeExpense, "a1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if tx.ID == "" {
			t.Error("expected a server id on the returned transaction")
		}
		if got := linkedQty(tr); got != 0.5 {
			t.Errorf("qty = %f, want 0.5 after a 50 expense at price 100", got)
		}
		if len(ledger.Upserts()) != 1 {
			t.Errorf("expected one profile write for the adjustment, got %d", len(ledger.Upserts()))
		}
	})

	t.Run("unlinked_transaction_skips_the_adjustment", func(t *testing.T) {
		ledger := &testutil.FakeLedger{}
		tr := setup(t, ledger)

		if _, err := tr.AddTransaction(context.Background(), 50, "Other", "", models.SpendingTypeExpense, ""); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := linkedQty(tr); got != 1 {
			t.Errorf("qty = %f, want untouched 1", got)
		}
	})
}

func TestDeleteTransaction(t *testing.T) {
	t.Run("unknown_id_is_a_no_op", func(t *testing.T) {
		ledger := &testutil.FakeLedger{}
		tr := setup(t, ledger)

		removed, err := tr.DeleteTransaction(context.Background(), "missing")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed != nil {
			t.Errorf("expected nil removed record, got %+v", removed)
		}
		if got := linkedQty(tr); got != 1 {
			t.Errorf("qty = %f, want untouched 1", got)
		}
	})

	t.Run("delete_restores_the_original_balance", func(t *testing.T) {
		ledger := &testutil.FakeLedger{}
		tr := setup(t, ledger)

		tx, err := tr.AddTransaction(context.Background(), 50, "Food", "", models.SpendingTypeExpense, "a1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := linkedQty(tr); got != 0.5 {
			t.Fatalf("qty = %f, want 0.5 before the delete", got)
		}

		removed, err := tr.DeleteTransaction(context.Background(), tx.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if removed == nil || removed.ID != tx.ID {
			t.Fatalf("expected the deleted record back, got %+v", removed)
		}
		if got := linkedQty(tr); got != 1 {
			t.Errorf("qty = %f, want the original 1 after the inverse adjustment", got)
		}
	})
}
