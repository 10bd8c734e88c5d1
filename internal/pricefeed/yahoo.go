package pricefeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"wealthguard/internal/models"
)

const (
	yahooChartBaseURL = "https://query1.finance.yahoo.com/v8/finance/chart"
	yahooUA           = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)"
)

// yahooChartResponse is the v8 chart API response, reduced to the meta
// fields this feed reads.
type yahooChartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Symbol             string  `json:"symbol"`
				RegularMarketPrice float64 `json:"regularMarketPrice"`
				ChartPreviousClose float64 `json:"chartPreviousClose"`
			} `json:"meta"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// YahooChartFeed fetches latest/previous-close prices from the Yahoo
// Finance chart API for stock assets.
type YahooChartFeed struct {
	httpClient *http.Client
	baseURL    string // overridable for tests
	suffix     string // exchange suffix appended to symbols, e.g. ".VN"
}

// NewYahooChartFeed creates a Yahoo chart feed. The exchange suffix is
// appended to each upper-cased ticker to form the market symbol.
func NewYahooChartFeed(httpClient *http.Client, suffix string) *YahooChartFeed {
	return &YahooChartFeed{httpClient: httpClient, baseURL: yahooChartBaseURL, suffix: suffix}
}

// Name returns the feed's display name.
func (f *YahooChartFeed) Name() string { return "Yahoo Finance" }

// Supports returns true for the stock asset type only.
func (f *YahooChartFeed) Supports(assetType models.AssetType) bool {
	return assetType == models.AssetTypeStock
}

// Quote fetches the latest market price for the asset, falling back to
// the chart's previous close when the regular market price is absent.
func (f *YahooChartFeed) Quote(ctx context.Context, asset models.Asset) (float64, error) {
	symbol := strings.ToUpper(asset.Symbol) + f.suffix
	endpoint := fmt.Sprintf("%s/%s?interval=1d&range=1d", f.baseURL, symbol)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", yahooUA)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var chartResp yahooChartResponse
	if err := json.NewDecoder(resp.Body).Decode(&chartResp); err != nil {
		return 0, fmt.Errorf("decoding response: %w", err)
	}

	if chartResp.Chart.Error != nil {
		return 0, fmt.Errorf("chart error for %s: %s", symbol, chartResp.Chart.Error.Description)
	}
	if len(chartResp.Chart.Result) == 0 {
		return 0, fmt.Errorf("no chart result for %s", symbol)
	}

	meta := chartResp.Chart.Result[0].Meta
	price := meta.RegularMarketPrice
	if price == 0 {
		price = meta.ChartPreviousClose
	}
	if price <= 0 {
		return 0, fmt.Errorf("no usable price for %s", symbol)
	}
	return price, nil
}
