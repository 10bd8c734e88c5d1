package models

import (
	"math"
	"testing"
)

func TestAssetNormalize(t *testing.T) {
	t.Run("cash_price_pinned", func(t *testing.T) {
		a := Asset{Type: AssetTypeCash, Qty: 5000000, Price: 123}
		a.Normalize()
		if a.Price != 1 {
			t.Errorf("expected cash price 1, got %f", a.Price)
		}
		if a.Value() != 5000000 {
			t.Errorf("expected cash value to equal qty, got %f", a.Value())
		}
	})

	t.Run("debt_qty_pinned_price_non_positive", func(t *testing.T) {
		a := Asset{Type: AssetTypeDebt, Qty: 3, Price: 2000000}
		a.Normalize()
		if a.Qty != 1 {
			t.Errorf("expected debt qty 1, got %f", a.Qty)
		}
		if a.Price > 0 {
			t.Errorf("expected non-positive debt price, got %f", a.Price)
		}
		if a.Value() > 0 {
			t.Errorf("expected non-positive debt value, got %f", a.Value())
		}
	})

	t.Run("crypto_untouched", func(t *testing.T) {
		a := Asset{Type: AssetTypeCrypto, Qty: 0.5, Price: 1500000000}
		a.Normalize()
		if a.Qty != 0.5 || a.Price != 1500000000 {
			t.Errorf("expected crypto asset untouched, got qty=%f price=%f", a.Qty, a.Price)
		}
	})
}

func TestEffectivePrice(t *testing.T) {
	tests := []struct {
		name  string
		price float64
		want  float64
	}{
		{"positive", 25000, 25000},
		{"zero", 0, 1},
		{"negative", -5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Asset{Price: tt.price}
			if got := a.EffectivePrice(); got != tt.want {
				t.Errorf("EffectivePrice() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestNetWorth(t *testing.T) {
	assets := []Asset{
		{Type: AssetTypeCrypto, Qty: 0.01, Price: 1500000000},
		{Type: AssetTypeStock, Qty: 100, Price: 25000},
		{Type: AssetTypeCash, Qty: 5000000, Price: 1},
		{Type: AssetTypeDebt, Qty: 1, Price: -2000000},
	}

	want := 0.01*1500000000 + 100*25000 + 5000000 - 2000000
	if got := NetWorth(assets); math.Abs(got-want) > 1e-9 {
		t.Errorf("NetWorth() = %f, want %f", got, want)
	}

	if got := NetWorth(nil); got != 0 {
		t.Errorf("NetWorth(nil) = %f, want 0", got)
	}
}

func TestCloneAssets(t *testing.T) {
	original := []Asset{{ID: "a", Qty: 1}}
	cloned := CloneAssets(original)
	cloned[0].Qty = 99

	if original[0].Qty != 1 {
		t.Error("mutating the clone changed the original")
	}
}

func TestValidCategory(t *testing.T) {
	for _, cat := range Categories {
		if !ValidCategory(cat) {
			t.Errorf("expected %q to be valid", cat)
		}
	}
	if ValidCategory("Groceries") {
		t.Error("expected unknown category to be invalid")
	}
}
