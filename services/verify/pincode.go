package verify

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrInvalidPincode is returned when the postal provider has no record for
// the pincode.
var ErrInvalidPincode = errors.New("Please enter a valid Pincode")

// PincodeLocation is the city/state pair resolved from a pincode.
type PincodeLocation struct {
	City  string `json:"city"`
	State string `json:"state"`
}

type postOffice struct {
	State    string `json:"State"`
	District string `json:"District"`
}

type pincodeResult struct {
	Status     string       `json:"Status"`
	PostOffice []postOffice `json:"PostOffice"`
}

// PincodeClient resolves Indian pincodes via the postal pincode API.
type PincodeClient struct {
	BaseURL string
	HTTP    *http.Client
}

// NewPincodeClient builds a client for the configured base URL.
func NewPincodeClient(baseURL string) *PincodeClient {
	return &PincodeClient{
		BaseURL: baseURL,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Lookup resolves a pincode to its district and state. A provider "Error"
// status or an empty post office list yields ErrInvalidPincode.
func (c *PincodeClient) Lookup(ctx context.Context, pincode string) (*PincodeLocation, error) {
	url := fmt.Sprintf("%s/pincode/%s", c.BaseURL, pincode)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("pincode lookup: failed to build request: %w", err)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pincode lookup: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("pincode lookup: provider returned status %d", resp.StatusCode)
	}

	var results []pincodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("pincode lookup: failed to decode response: %w", err)
	}
	if len(results) == 0 || results[0].Status == "Error" || len(results[0].PostOffice) == 0 {
		return nil, ErrInvalidPincode
	}

	office := results[0].PostOffice[0]
	return &PincodeLocation{City: office.District, State: office.State}, nil
}
