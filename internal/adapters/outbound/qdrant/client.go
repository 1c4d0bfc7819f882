// Package qdrant is a minimal REST client for a Qdrant server, plus the
// vector index adapter built on it. It assumes cosine distance and one
// collection per namespace.
package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Client is a thin REST client for the Qdrant HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new client.
func NewClient(baseURL, apiKey string, httpClient *http.Client) Client {
	return Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    httpClient,
	}
}

// EnsureCollection creates the collection when missing. Qdrant answers
// 200 for an existing collection with the same schema.
func (c Client) EnsureCollection(ctx context.Context, collection string, dimension int) error {
	if dimension <= 0 {
		return fmt.Errorf("invalid dimension %d", dimension)
	}
	body := map[string]any{
		"vectors": map[string]any{
			"size":     dimension,
			"distance": "Cosine",
		},
	}
	return c.putJSON(ctx, fmt.Sprintf("/collections/%s", collection), body, nil)
}

// Point is one Qdrant point in wire form.
type Point struct {
	ID      string         `json:"id"`
	Vector  []float64      `json:"vector"`
	Payload map[string]any `json:"payload"`
}

// UpsertPoints writes the points and waits for the operation to be applied.
func (c Client) UpsertPoints(ctx context.Context, collection string, points []Point) error {
	body := map[string]any{"points": points}
	return c.putJSON(ctx, fmt.Sprintf("/collections/%s/points?wait=true", collection), body, nil)
}

// DeletePoints removes the points by id and waits for the operation to
// be applied. Absent ids are ignored by the server.
func (c Client) DeletePoints(ctx context.Context, collection string, ids []string) error {
	body := map[string]any{"points": ids}
	return c.postJSON(ctx, fmt.Sprintf("/collections/%s/points/delete?wait=true", collection), body, nil)
}

// SearchHit is one similarity search result in wire form.
type SearchHit struct {
	ID      string         `json:"id"`
	Score   float64        `json:"score"`
	Payload map[string]any `json:"payload"`
}

// SearchPoints runs a similarity search with an optional payload filter.
func (c Client) SearchPoints(ctx context.Context, collection string, vector []float64, limit int, filter map[string]any) ([]SearchHit, error) {
	req := map[string]any{
		"vector":       vector,
		"limit":        limit,
		"with_payload": true,
	}
	if filter != nil {
		req["filter"] = filter
	}
	var resp struct {
		Result []SearchHit `json:"result"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/collections/%s/points/search", collection), req, &resp); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// CountPoints returns the exact number of points in the collection.
func (c Client) CountPoints(ctx context.Context, collection string) (int, error) {
	req := map[string]any{"exact": true}
	var resp struct {
		Result struct {
			Count int `json:"count"`
		} `json:"result"`
	}
	if err := c.postJSON(ctx, fmt.Sprintf("/collections/%s/points/count", collection), req, &resp); err != nil {
		return 0, err
	}
	return resp.Result.Count, nil
}

func (c Client) putJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPut, path, body, out)
}

func (c Client) postJSON(ctx context.Context, path string, body, out any) error {
	return c.doJSON(ctx, http.MethodPost, path, body, out)
}

// statusError marks HTTP-level failures so the adapter can tell a
// rejected request from an unreachable backend.
type statusError struct {
	code int
	body string
}

func (e statusError) Error() string {
	return fmt.Sprintf("qdrant status %d: %s", e.code, e.body)
}

func (c Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	endpoint := strings.TrimRight(c.baseURL, "/") + path

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 300 {
		return statusError{code: resp.StatusCode, body: string(respBody)}
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("unmarshal response: %w", err)
		}
	}
	return nil
}
