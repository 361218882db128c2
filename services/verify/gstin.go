package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"karkhana/models"
)

// GSTClient calls the external GST taxpayer lookup provider.
type GSTClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

// NewGSTClient builds a client for the configured provider.
func NewGSTClient(baseURL, apiKey string) *GSTClient {
	return &GSTClient{
		BaseURL: baseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup fetches the taxpayer record for a GSTIN. The caller is expected to
// have format-checked the GSTIN already.
func (c *GSTClient) Lookup(ctx context.Context, gstin string) (*models.GSTInfo, error) {
	url := fmt.Sprintf("%s/gstin/%s", c.BaseURL, gstin)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("gst lookup: failed to build request: %w", err)
	}
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("gst lookup: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gst lookup: provider returned status %d", resp.StatusCode)
	}

	var info models.GSTInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("gst lookup: failed to decode response: %w", err)
	}
	return &info, nil
}
