// Package probe checks that a running relay answers its health endpoint.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const DefaultURL = "http://localhost:5000/"

// ErrUnreachable reports that no connection could be made to the server.
var ErrUnreachable = errors.New("cannot connect to server")

// Status is the decoded health response.
type Status struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// StatusError reports a reachable server answering with a non-200 status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("server is running but returned status code %d", e.Code)
}

type Prober struct {
	client *http.Client
}

func New(timeout time.Duration) *Prober {
	return &Prober{client: &http.Client{Timeout: timeout}}
}

// Check requests url and decodes the health response.
func (p *Prober) Check(ctx context.Context, url string) (*Status, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %v", ErrUnreachable, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Body: string(body)}
	}

	var status Status
	if err := json.Unmarshal(body, &status); err != nil {
		return nil, fmt.Errorf("failed to decode health response: %w", err)
	}
	return &status, nil
}
