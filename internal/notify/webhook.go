package notify

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const webhookTimeout = 5 * time.Second

var httpClient = &http.Client{Timeout: webhookTimeout}

// Webhook posts switch events as JSON to an HTTP endpoint.
type Webhook struct {
	URL string
}

type webhookPayload struct {
	Event    string `json:"event"`
	Target   string `json:"target"`
	Previous string `json:"previous,omitempty"`
	At       string `json:"at"`
}

// Deliver posts the event. Non-2xx responses are errors.
func (w Webhook) Deliver(target, previous string) error {
	body, err := json.Marshal(webhookPayload{
		Event:    "location_switched",
		Target:   target,
		Previous: previous,
		At:       time.Now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, w.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("webhook rejected: HTTP %d", resp.StatusCode)
	}
	return nil
}
