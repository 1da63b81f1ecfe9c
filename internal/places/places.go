// Package places looks up a representative photo for a free-text place name
// through the Google Places "find place" API.
package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/valpere/travelrelay/internal"
	"github.com/valpere/travelrelay/internal/logging"
)

const (
	DefaultBaseURL       = "https://maps.googleapis.com/maps/api/place"
	DefaultPhotoMaxWidth = 800
)

var (
	// ErrNotFound is returned when the search yields no candidate.
	ErrNotFound = errors.New("place not found")
	// ErrNoPhotos is returned when the first candidate carries no photos.
	ErrNoPhotos = errors.New("place has no photos")
	// ErrMissingAPIKey is returned at call time when no key was configured.
	ErrMissingAPIKey = errors.New("places API key is not configured")
)

type Config struct {
	APIKey        string        `mapstructure:"api_key"`
	BaseURL       string        `mapstructure:"base_url"`
	PhotoMaxWidth int           `mapstructure:"photo_max_width"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

type Client struct {
	apiKey   string
	baseURL  string
	maxWidth int
	client   *http.Client
	logger   logging.Logger
}

type findPlaceResponse struct {
	Status       string      `json:"status"`
	ErrorMessage string      `json:"error_message,omitempty"`
	Candidates   []candidate `json:"candidates"`
}

type candidate struct {
	Name    string  `json:"name"`
	PlaceID string  `json:"place_id"`
	Photos  []photo `json:"photos"`
}

type photo struct {
	PhotoReference string `json:"photo_reference"`
	Width          int    `json:"width"`
	Height         int    `json:"height"`
}

func New(cfg Config, logger logging.Logger) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	maxWidth := cfg.PhotoMaxWidth
	if maxWidth <= 0 {
		maxWidth = DefaultPhotoMaxWidth
	}
	return &Client{
		apiKey:   cfg.APIKey,
		baseURL:  baseURL,
		maxWidth: maxWidth,
		client:   &http.Client{Timeout: cfg.Timeout},
		logger:   logging.Ensure(logger),
	}
}

// HasAPIKey reports whether a key was configured.
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// FindPhoto searches for query and returns the first photo of the first
// candidate.
func (c *Client) FindPhoto(ctx context.Context, query string) (*internal.PlacePhoto, error) {
	if !c.HasAPIKey() {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "photos,place_id,name")
	params.Set("key", c.apiKey)

	searchURL := c.baseURL + "/findplacefromtext/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("place search request failed: %w", redact(err, c.apiKey))
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("place search returned status %d", resp.StatusCode)
	}

	var search findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		return nil, fmt.Errorf("failed to decode place search response: %w", err)
	}

	c.logger.Debug("place search response",
		"query", query,
		"status", search.Status,
		"candidates", len(search.Candidates),
	)

	if search.Status != "OK" || len(search.Candidates) == 0 {
		if search.ErrorMessage != "" {
			c.logger.Warn("place search rejected", "status", search.Status, "message", search.ErrorMessage)
		}
		return nil, ErrNotFound
	}

	place := search.Candidates[0]
	if len(place.Photos) == 0 {
		return nil, ErrNoPhotos
	}

	ref := place.Photos[0].PhotoReference
	if ref == "" {
		return nil, fmt.Errorf("first photo of %q has no photo_reference", query)
	}

	name := place.Name
	if name == "" {
		name = query
	}

	return &internal.PlacePhoto{
		Status:    internal.PlaceStatusSuccess,
		PlaceName: name,
		PhotoURL:  c.PhotoURL(ref),
	}, nil
}

// PhotoURL builds the photo retrieval URL for a photo reference.
func (c *Client) PhotoURL(ref string) string {
	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(c.maxWidth))
	params.Set("photoreference", ref)
	params.Set("key", c.apiKey)
	return c.baseURL + "/photo?" + params.Encode()
}

// redact strips the API key from transport errors, which embed the full URL.
func redact(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
