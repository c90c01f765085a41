package ynab

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultBaseURL is the public YNAB API endpoint.
const DefaultBaseURL = "https://api.ynab.com/v1"

// Client is a minimal YNAB API client. It fetches a full budget export in
// one call; everything downstream works on the in-memory result.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client authenticated with the given access token.
func NewClient(token string) *Client {
	return &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// NewClientWithBaseURL creates a Client against a non-default endpoint.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

type budgetDetailResponse struct {
	Data struct {
		Budget BudgetDetail `json:"budget"`
	} `json:"data"`
}

// BudgetByID fetches a budget export by id. An unknown budget id is fatal to
// the run, so it is returned as an error rather than an empty budget.
func (c *Client) BudgetByID(ctx context.Context, budgetID string) (*BudgetDetail, error) {
	url := fmt.Sprintf("%s/budgets/%s", c.baseURL, budgetID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building budget request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching budget %q: %w", budgetID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, fmt.Errorf("budget id %q couldn't be found", budgetID)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetching budget %q: status %d: %s", budgetID, resp.StatusCode, body)
	}

	var decoded budgetDetailResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decoding budget %q: %w", budgetID, err)
	}
	return &decoded.Data.Budget, nil
}
