package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"wealthguard/internal/models"
)

const coinGeckoBaseURL = "https://api.coingecko.com/api/v3/simple/price"

// coinIDs maps well-known ticker symbols to CoinGecko coin identifiers.
// Symbols not present fall back to their lower-cased form.
var coinIDs = map[string]string{
	"BTC":  "bitcoin",
	"ETH":  "ethereum",
	"USDT": "tether",
	"BNB":  "binancecoin",
	"SOL":  "solana",
	"XRP":  "ripple",
	"ADA":  "cardano",
	"DOGE": "dogecoin",
}

// CoinGeckoFeed fetches spot prices from CoinGecko for crypto assets.
type CoinGeckoFeed struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	currency   string
}

// NewCoinGeckoFeed creates a CoinGecko feed quoting in the given home
// currency (lower-cased, e.g. "vnd").
func NewCoinGeckoFeed(httpClient *http.Client, currency string) *CoinGeckoFeed {
	return &CoinGeckoFeed{
		httpClient: httpClient,
		baseURL:    coinGeckoBaseURL,
		currency:   strings.ToLower(currency),
	}
}

// Name returns the feed's display name.
func (f *CoinGeckoFeed) Name() string { return "CoinGecko" }

// Supports returns true for the crypto asset type only.
func (f *CoinGeckoFeed) Supports(assetType models.AssetType) bool {
	return assetType == models.AssetTypeCrypto
}

// coinID resolves a ticker symbol to a CoinGecko coin identifier.
func coinID(symbol string) string {
	if id, ok := coinIDs[strings.ToUpper(symbol)]; ok {
		return id
	}
	return strings.ToLower(symbol)
}

// Quote fetches the asset's spot price in the home currency.
func (f *CoinGeckoFeed) Quote(ctx context.Context, asset models.Asset) (float64, error) {
	id := coinID(asset.Symbol)
	endpoint := fmt.Sprintf("%s?ids=%s&vs_currencies=%s",
		f.baseURL, url.QueryEscape(id), url.QueryEscape(f.currency))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	// Response shape: { "<coinId>": { "<currency>": <price> } }
	var result map[string]map[string]float64
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}

	price, ok := result[id][f.currency]
	if !ok || price <= 0 {
		return 0, fmt.Errorf("no %s quote for %s", f.currency, id)
	}
	return price, nil
}
