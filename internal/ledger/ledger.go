// Package ledger provides an HTTP client for the remote document store
// that holds the authoritative profile document and spending collection.
package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	apperrors "wealthguard/internal/errors"
	"wealthguard/internal/models"
)

// Client communicates with the remote ledger API. Every call is a
// network round trip that may fail or time out; callers must treat each
// one as fallible. The HTTP client's timeout bounds each call.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new remote ledger client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

// FetchProfile fetches the profile document. A missing document is
// reported as ErrProfileNotFound, which first-time load treats as "new
// user" rather than a failure.
func (c *Client) FetchProfile(ctx context.Context) (*models.Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/profile", nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, apperrors.ErrProfileNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching profile: unexpected status %d", resp.StatusCode)
	}

	var profile models.Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile response: %w", err)
	}
	return &profile, nil
}

// UpsertProfile writes a partial profile with field-level merge
// semantics: fields absent from the patch are untouched server-side, so
// a price-only update cannot clobber a concurrently saved budget change.
func (c *Client) UpsertProfile(ctx context.Context, patch models.ProfilePatch) error {
	jsonBody, err := json.Marshal(patch)
	if err != nil {
		return fmt.Errorf("marshaling profile patch: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPatch, c.baseURL+"/api/v1/profile", strings.NewReader(string(jsonBody)))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("upserting profile: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// QuerySpending returns spending records with dates in [from, to]
// inclusive, ordered descending by date. Dates are yyyy-MM-dd strings.
func (c *Client) QuerySpending(ctx context.Context, from, to string) ([]models.Transaction, error) {
	endpoint := fmt.Sprintf("%s/api/v1/spending?from=%s&to=%s",
		c.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("querying spending: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("querying spending: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding spending response: %w", err)
	}
	return result.Transactions, nil
}

// AddSpending appends a spending record and returns its server-issued
// identifier. The record's ClientRef travels with the request so the
// store can deduplicate a retried add whose earlier attempt succeeded.
func (c *Client) AddSpending(ctx context.Context, tx models.Transaction) (string, error) {
	jsonBody, err := json.Marshal(tx)
	if err != nil {
		return "", fmt.Errorf("marshaling spending record: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/spending", strings.NewReader(string(jsonBody)))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("adding spending record: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("adding spending record: unexpected status %d", resp.StatusCode)
	}

	var result struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decoding add response: %w", err)
	}
	return result.ID, nil
}

// DeleteSpending removes the spending record with the given id.
func (c *Client) DeleteSpending(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/api/v1/spending/"+url.PathEscape(id), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("deleting spending record: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("deleting spending record: unexpected status %d", resp.StatusCode)
	}
	return nil
}
