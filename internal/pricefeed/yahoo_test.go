package pricefeed

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"wealthguard/internal/models"
)

// chartBody builds a v8 chart JSON body with the given meta prices.
func chartBody(regular, previousClose float64) []byte {
	body := map[string]any{
		"chart": map[string]any{
			"result": []any{
				map[string]any{
					"meta": map[string]any{
						"regularMarketPrice": regular,
						"chartPreviousClose": previousClose,
					},
				},
			},
		},
	}
	blob, _ := json.Marshal(body)
	return blob
}

func TestYahooChartFeed_Supports(t *testing.T) {
	f := NewYahooChartFeed(http.DefaultClient, ".VN")

	if !f.Supports(models.AssetTypeStock) {
		t.Error("expected Supports(stock) = true")
	}
	for _, at := range []models.AssetType{models.AssetTypeCrypto, models.AssetTypeCash, models.AssetTypeDebt} {
		if f.Supports(at) {
			t.Errorf("expected Supports(%s) = false", at)
		}
	}
}

func TestYahooChartFeed_Quote(t *testing.T) {
	t.Run("regular_market_price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.HasSuffix(r.URL.Path, "/VND.VN") {
				t.Errorf("expected suffixed upper-cased symbol in path, got %s", r.URL.Path)
			}
			_, _ = w.Write(chartBody(25300, 25000))
		}))
		defer server.Close()

		f := &YahooChartFeed{httpClient: server.Client(), baseURL: server.URL, suffix: ".VN"}
		price, err := f.Quote(context.Background(), models.Asset{Symbol: "vnd", Type: models.AssetTypeStock})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price != 25300 {
			t.Errorf("price = %f, want 25300", price)
		}
	})

	t.Run("falls_back_to_previous_close", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(chartBody(0, 25000))
		}))
		defer server.Close()

		f := &YahooChartFeed{httpClient: server.Client(), baseURL: server.URL, suffix: ".VN"}
		price, err := f.Quote(context.Background(), models.Asset{Symbol: "VND"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if price != 25000 {
			t.Errorf("price = %f, want previous close 25000", price)
		}
	})

	t.Run("no_usable_price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write(chartBody(0, 0))
		}))
		defer server.Close()

		f := &YahooChartFeed{httpClient: server.Client(), baseURL: server.URL, suffix: ".VN"}
		if _, err := f.Quote(context.Background(), models.Asset{Symbol: "VND"}); err == nil {
			t.Fatal("expected error when both prices are zero")
		}
	})

	t.Run("chart_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{
				"chart": map[string]any{
					"result": []any{},
					"error":  map[string]string{"code": "Not Found", "description": "No data found, symbol may be delisted"},
				},
			})
		}))
		defer server.Close()

		f := &YahooChartFeed{httpClient: server.Client(), baseURL: server.URL, suffix: ".VN"}
		if _, err := f.Quote(context.Background(), models.Asset{Symbol: "GONE"}); err == nil {
			t.Fatal("expected error for chart error response")
		}
	})
}
