// Package backend is the HTTP adapter for the upstream myteam API. The
// upstream is inconsistent about response shapes (Spring page envelopes vs
// bare arrays, numbers vs numeric strings), so every decode here is
// tolerant: a malformed field becomes a zero value, and only a missing
// collection counts as a shape mismatch.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/myteamhq/myteam_console/internal/apperrors"
)

// The console derives views client-side, so list fetches ask the upstream
// for everything in one page, same as the original UI's initial load.
const fetchAllPageSize = 10000

// Client talks to the upstream myteam backend.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

// getJSON performs a GET and decodes the body. Transport failures and
// non-2xx statuses wrap ErrNetwork; undecodable bodies wrap
// ErrShapeMismatch. Both are terminal inputs for callers, never retried
// here.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrNetwork, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: GET %s: status %d", apperrors.ErrNetwork, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrNetwork, path, err)
	}
	if err := json.Unmarshal(bytes.TrimSpace(body), out); err != nil {
		return fmt.Errorf("%w: GET %s: %v", apperrors.ErrShapeMismatch, path, err)
	}
	return nil
}

func listQuery() url.Values {
	q := url.Values{}
	q.Set("page", "0")
	q.Set("size", strconv.Itoa(fetchAllPageSize))
	return q
}

// pageEnvelope is the Spring-style paginated response shape.
type pageEnvelope[T any] struct {
	Content    []T `json:"content"`
	TotalPages int `json:"totalPages"`
	Pageable   struct {
		PageNumber int `json:"pageNumber"`
		PageSize   int `json:"pageSize"`
	} `json:"pageable"`
}

// listPayload accepts either the page envelope or a bare array.
type listPayload[T any] struct {
	items []T
}

func (p *listPayload[T]) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		return json.Unmarshal(data, &p.items)
	}
	var env pageEnvelope[T]
	if err := json.Unmarshal(data, &env); err != nil {
		return err
	}
	if env.Content == nil {
		return fmt.Errorf("missing content array")
	}
	p.items = env.Content
	return nil
}

// fetchList GETs a collection endpoint, accepting both response shapes.
func fetchList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var payload listPayload[T]
	if err := c.getJSON(ctx, path, listQuery(), &payload); err != nil {
		return nil, err
	}
	if payload.items == nil {
		return []T{}, nil
	}
	return payload.items, nil
}
