package pricefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"wealthguard/internal/models"
)

func TestCoinGeckoFeed_Supports(t *testing.T) {
	f := NewCoinGeckoFeed(http.DefaultClient, "vnd")

	if !f.Supports(models.AssetTypeCrypto) {
		t.Error("expected Supports(crypto) = true")
	}
	for _, at := range []models.AssetType{models.AssetTypeStock, models.AssetTypeCash, models.AssetTypeDebt} {
		if f.Supports(at) {
			t.Errorf("expected Supports(%s) = false", at)
		}
	}
}

func TestCoinID(t *testing.T) {
	tests := []struct {
		symbol string
		want   string
	}{
		{"BTC", "bitcoin"},
		{"btc", "bitcoin"},
		{"ETH", "ethereum"},
		{"DOGE", "dogecoin"},
		{"PEPE", "pepe"}, // unmapped symbols fall back to lower case
	}
	for _, tt := range tests {
		if got := coinID(tt.symbol); got != tt.want {
			t.Errorf("coinID(%s) = %q, want %q", tt.symbol, got, tt.want)
		}
	}
}

func TestCoinGeckoFeed_Quote(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("ids"); got != "bitcoin" {
				t.Errorf("ids = %q, want bitcoin", got)
			}
			if got := r.URL.Query().Get("vs_currencies"); got != "vnd" {
				t.Errorf("vs_currencies = %q, want vnd", got)
			}
			_ = json.NewEncoder(w).Encode(map[string]map[string]float64{
				"bitcoin": {"vnd": 1500000000},
			})
		}))
		defer server.Close()

		f := &CoinGeckoFeed{httpClient: server.Client(), baseURL: server.URL, currency: "vnd"}
		price, err := f.Quote(context.Background(), models.Asset{Symbol: "BTC", Type: models.AssetTypeCrypto})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price != 1500000000 {
			t.Errorf("price = %f, want 1500000000", price)
		}
	})

	t.Run("missing_quote_field", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]map[string]float64{})
		}))
		defer server.Close()

		f := &CoinGeckoFeed{httpClient: server.Client(), baseURL: server.URL, currency: "vnd"}
		if _, err := f.Quote(context.Background(), models.Asset{Symbol: "BTC"}); err == nil {
			t.Fatal("expected error for missing quote field")
		}
	})

	t.Run("http_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		f := &CoinGeckoFeed{httpClient: server.Client(), baseURL: server.URL, currency: "vnd"}
		if _, err := f.Quote(context.Background(), models.Asset{Symbol: "BTC"}); err == nil {
			t.Fatal("expected error for non-200 status")
		}
	})
}
