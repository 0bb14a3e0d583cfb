package notification

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WorkforceClient fires booking events at the workforce-scheduling system.
// Delivery is fire-and-forget: callers log failures and move on.
type WorkforceClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewWorkforceClient creates a webhook client for the given base URL. An
// empty base URL disables the integration.
func NewWorkforceClient(baseURL string) *WorkforceClient {
	return &WorkforceClient{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// NotifyNewBooking posts the booking number to the configured endpoint.
// Non-2xx responses are failures.
func (c *WorkforceClient) NotifyNewBooking(bookingNumber string) error {
	if c.BaseURL == "" {
		return nil
	}

	payload, err := json.Marshal(map[string]string{"bookingNumber": bookingNumber})
	if err != nil {
		return fmt.Errorf("failed to encode webhook payload: %w", err)
	}

	resp, err := c.HTTPClient.Post(c.BaseURL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("workforce webhook request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("workforce webhook returned status %d", resp.StatusCode)
	}
	return nil
}
