// Package datajud implements the HTTP transport against the CNJ DataJud
// public search API. One endpoint exists per tribunal, derived from a fixed
// base URL template plus the tribunal code.
package datajud

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/locarlabs/datajud/internal/core/domain"
	"github.com/locarlabs/datajud/internal/metrics"
)

// DefaultBaseURL is the public DataJud endpoint template. The tribunal code
// and "/_search" are appended per call.
const DefaultBaseURL = "https://api-publica.datajud.cnj.jus.br/api_publica_"

const userAgent = "datajud-pipeline/1.0 (+https://github.com/locarlabs/datajud)"

// SearchRequest is the upstream query body.
type SearchRequest struct {
	Size  int   `json:"size"`
	From  int   `json:"from"`
	Query Query `json:"query"`
}

// Query wraps the boolean search clause.
type Query struct {
	Bool BoolQuery `json:"bool"`
}

// BoolQuery holds the should clauses of the fixed query shape.
type BoolQuery struct {
	Should []map[string]map[string]string `json:"should"`
}

// PartyQuery builds the fixed name-or-document search body: the party name
// matched as a phrase OR the party document matched exactly.
func PartyQuery(name, document string, size, from int) SearchRequest {
	return SearchRequest{
		Size: size,
		From: from,
		Query: Query{
			Bool: BoolQuery{
				Should: []map[string]map[string]string{
					{"match_phrase": {"partes.nome": name}},
					{"match": {"partes.documento": document}},
				},
			},
		},
	}
}

// TransportError reports a search call that failed past the retry budget or
// with a non-retryable status. Callers stop paginating the tribunal it
// names; it is never fatal to the whole run.
type TransportError struct {
	Tribunal string
	Page     int
	Status   int // last HTTP status, 0 for connection failures
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("datajud search %s page %d: %v", strings.ToUpper(e.Tribunal), e.Page+1, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client issues search requests against the DataJud API. It holds one
// tuned http.Client reused across all tribunal queries; the Authorization
// header value is fixed at construction, not per call.
type Client struct {
	baseURL    string
	authHeader string
	retry      RetryConfig
	httpClient *http.Client
}

// NewClient creates a DataJud search client.
func NewClient(baseURL, apiKey string, retry RetryConfig, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig
	}
	if timeout <= 0 {
		timeout = 50 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		authHeader: "APIKey " + apiKey,
		retry:      retry,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Search runs one result page of a tribunal query, retrying connect/read
// failures and retryable statuses with exponential backoff. The search POST
// is a pure read upstream, so replaying it is safe.
func (c *Client) Search(ctx context.Context, tribunal string, page int, body SearchRequest) (*domain.SearchResponse, error) {
	endpoint := c.baseURL + tribunal + "/_search"

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Tribunal: tribunal, Page: page, Err: fmt.Errorf("marshal request: %w", err)}
	}

	var lastErr error
	var lastStatus int
	for attempt := 0; attempt < c.retry.MaxAttempts; attempt++ {
		if attempt > 0 {
			metrics.RetryAttempts.WithLabelValues(tribunal).Inc()
			select {
			case <-ctx.Done():
				return nil, &TransportError{Tribunal: tribunal, Page: page, Status: lastStatus, Err: ctx.Err()}
			case <-time.After(backoffDelay(attempt-1, c.retry)):
			}
		}

		resp, status, err := c.do(ctx, endpoint, payload)
		if err == nil {
			return resp, nil
		}
		lastErr, lastStatus = err, status

		if status != 0 && !RetryableStatus(status) {
			return nil, &TransportError{Tribunal: tribunal, Page: page, Status: status, Err: err}
		}
	}

	return nil, &TransportError{
		Tribunal: tribunal,
		Page:     page,
		Status:   lastStatus,
		Err:      fmt.Errorf("failed after %d attempts: %w", c.retry.MaxAttempts, lastErr),
	}
}

func (c *Client) do(ctx context.Context, endpoint string, payload []byte) (*domain.SearchResponse, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Authorization", c.authHeader)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("search call: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		// A truncated body is a read failure: report it with status 0 so
		// the retry loop treats it like a failed connect.
		return nil, 0, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, resp.StatusCode, fmt.Errorf("http %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	// A body that arrived intact but does not parse is terminal: the
	// status keeps it out of the retry path.
	var parsed domain.SearchResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, resp.StatusCode, fmt.Errorf("parse response: %w", err)
	}

	return &parsed, resp.StatusCode, nil
}
