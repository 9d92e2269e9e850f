package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"repkit/internal/services"
	"repkit/internal/textutil"
)

const (
	defaultPageSize    = 50
	defaultHTTPTimeout = 10 * time.Second
	// maxPages bounds pagination in case the upstream misreports next links.
	maxPages = 50
)

// MuscleGroup identifies one target muscle. APIIDs lets a single group map
// to several upstream taxonomy ids.
type MuscleGroup struct {
	ID     string
	Label  string
	APIIDs []int64
}

// muscleRow models one row of the upstream taxonomy payload.
type muscleRow struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	NameEN  string `json:"name_en"`
	IsFront bool   `json:"is_front"`
}

// muscleResponse models the paginated upstream response.
type muscleResponse struct {
	Count   int         `json:"count"`
	Next    string      `json:"next"`
	Results []muscleRow `json:"results"`
}

// Client provides access to the muscle taxonomy API.
type Client struct {
	baseURL    string
	pageSize   int
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithPageSize overrides the pagination window.
func WithPageSize(size int) Option {
	return func(c *Client) {
		if size > 0 {
			c.pageSize = size
		}
	}
}

// New creates a catalog client.
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "new", "base url required", nil)
	}
	client := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		pageSize:   defaultPageSize,
		httpClient: &http.Client{Timeout: defaultHTTPTimeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// FetchMuscleGroups returns the full upstream taxonomy as a flat,
// deduplicated list. Rows sharing a (normalized) english name merge into
// one group carrying every upstream id; order follows first appearance.
func (c *Client) FetchMuscleGroups(ctx context.Context) ([]MuscleGroup, error) {
	var order []string
	groups := make(map[string]*MuscleGroup)

	offset := 0
	for page := 0; page < maxPages; page++ {
		resp, err := c.fetchPage(ctx, offset)
		if err != nil {
			return nil, err
		}
		for _, row := range resp.Results {
			label := strings.TrimSpace(row.NameEN)
			if label == "" {
				label = strings.TrimSpace(row.Name)
			}
			if label == "" {
				continue
			}
			slug := textutil.Slugify(label)
			group, ok := groups[slug]
			if !ok {
				group = &MuscleGroup{ID: slug, Label: label}
				groups[slug] = group
				order = append(order, slug)
			}
			group.APIIDs = append(group.APIIDs, row.ID)
		}
		if resp.Next == "" || len(resp.Results) == 0 {
			break
		}
		offset += len(resp.Results)
	}

	out := make([]MuscleGroup, 0, len(order))
	for _, slug := range order {
		out = append(out, *groups[slug])
	}
	return out, nil
}

func (c *Client) fetchPage(ctx context.Context, offset int) (*muscleResponse, error) {
	endpoint, err := url.Parse(c.baseURL + "/muscle/")
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "catalog", "fetch", "invalid base url", err)
	}
	query := endpoint.Query()
	query.Set("format", "json")
	query.Set("limit", strconv.Itoa(c.pageSize))
	query.Set("offset", strconv.Itoa(offset))
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch: new request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if services.IsCancellation(err) {
			return nil, err
		}
		return nil, services.Wrap(services.ErrTransient, "catalog", "fetch", "http error", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "catalog", "fetch", "read body", err)
	}
	if resp.StatusCode != http.StatusOK {
		marker := services.ErrUpstream
		if resp.StatusCode == http.StatusNotFound {
			marker = services.ErrNotFound
		}
		return nil, services.Wrap(marker, "catalog", "fetch",
			fmt.Sprintf("http %d", resp.StatusCode), nil)
	}

	var parsed muscleResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, services.Wrap(services.ErrUpstream, "catalog", "fetch", "decode response", err)
	}
	return &parsed, nil
}
