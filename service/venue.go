package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"seatmap-cli/model"
)

const defaultTimeout = 12 * time.Second

// Loader retrieves the venue document from a filesystem path or an HTTP URL.
// A load is a single attempt with exactly one outcome; recovery from a
// failed load is reloading the application.
type Loader struct {
	httpClient *http.Client
}

// APIError is returned when an HTTP venue source responds with a non-2xx
// status.
type APIError struct {
	StatusCode int
	Status     string
	Endpoint   string
	Body       string
}

func (e *APIError) Error() string {
	if e == nil {
		return "venue source error"
	}
	return fmt.Sprintf("venue source error: %s: %s", e.Status, e.Body)
}

// NewLoader creates a loader. If httpClient is nil, a default client with a
// request timeout is used; the transport owns timeout policy.
func NewLoader(httpClient *http.Client) *Loader {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultTimeout}
	}
	return &Loader{httpClient: httpClient}
}

// Load reads and decodes the venue document from source. Documents with zero
// sections are valid; a document without a venue id is rejected.
func (l *Loader) Load(ctx context.Context, source string) (*model.VenueData, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, errors.New("venue source is required")
	}

	var (
		data []byte
		err  error
	)
	if isURL(source) {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	var venue model.VenueData
	if err := json.Unmarshal(data, &venue); err != nil {
		return nil, fmt.Errorf("decode venue document from %s: %w", source, err)
	}
	if strings.TrimSpace(venue.VenueId) == "" {
		return nil, fmt.Errorf("venue document from %s has no venue id", source)
	}
	return &venue, nil
}

func (l *Loader) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		snippet, _ := io.ReadAll(io.LimitReader(res.Body, 8<<10))
		return nil, &APIError{
			StatusCode: res.StatusCode,
			Status:     res.Status,
			Endpoint:   endpoint,
			Body:       strings.TrimSpace(string(snippet)),
		}
	}

	return io.ReadAll(res.Body)
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
