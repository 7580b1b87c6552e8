package mouser

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bomlens/bomlens/internal/domain"
	"github.com/bomlens/bomlens/internal/logger"
	"github.com/bomlens/bomlens/internal/metrics"
	"golang.org/x/time/rate"
)

// keywordRecordCap bounds keyword results so downstream filtering stays cheap.
const keywordRecordCap = 50

// maxBodyBytes limits how much of a response body is read into memory.
const maxBodyBytes = 1 << 20

// Client handles communication with the Mouser search API.
//
// Every service-side failure (transport error, non-2xx status, malformed
// payload, application Errors list) is logged and collapsed to a nil
// response. Callers only see a non-nil error when the context is done.
type Client struct {
	httpClient  *http.Client
	apiKey      string
	baseURL     string
	rateLimiter *rate.Limiter
	log         logger.Logger
}

// NewClient creates a new Mouser API client.
func NewClient(apiKey, baseURL string, log logger.Logger) *Client {
	// Mouser caps search traffic per key; 2 req/sec with a small burst
	// stays well inside the documented ceiling.
	limiter := rate.NewLimiter(rate.Limit(2), 5)

	return &Client{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		apiKey:      apiKey,
		baseURL:     strings.TrimRight(baseURL, "/"),
		rateLimiter: limiter,
		log:         log,
	}
}

// SearchByPartNumber queries Mouser for an exact part number match.
func (c *Client) SearchByPartNumber(ctx context.Context, partNumber string) (*domain.CatalogResponse, error) {
	if strings.TrimSpace(partNumber) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Add("partNumber", partNumber)
	params.Add("searchOptions", "exact")
	reqURL := fmt.Sprintf("%s/search/partnumber?%s", c.baseURL, params.Encode())

	return c.search(ctx, "partnumber", partNumber, reqURL)
}

// SearchByKeyword queries Mouser with a free-text term, requesting at most
// keywordRecordCap results.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string) (*domain.CatalogResponse, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, nil
	}

	params := url.Values{}
	params.Add("keyword", keyword)
	params.Add("records", fmt.Sprintf("%d", keywordRecordCap))
	reqURL := fmt.Sprintf("%s/search/keyword?%s", c.baseURL, params.Encode())

	return c.search(ctx, "keyword", keyword, reqURL)
}

func (c *Client) search(ctx context.Context, op, query, reqURL string) (*domain.CatalogResponse, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	metrics.CatalogRequests.WithLabelValues(op).Inc()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.fail(op, "request", query, err)
		return nil, nil
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "BOMLens/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		c.fail(op, "transport", query, err)
		return nil, nil
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.fail(op, "read", query, err)
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		c.fail(op, "status", query, fmt.Errorf("%w: status %d", domain.ErrCatalogFailure, resp.StatusCode))
		return nil, nil
	}

	var out domain.CatalogResponse
	if err := json.Unmarshal(body, &out); err != nil {
		c.fail(op, "decode", query, err)
		return nil, nil
	}

	if len(out.Errors) > 0 {
		c.log.Warn("mouser API returned errors", map[string]interface{}{
			"operation": op,
			"query":     query,
			"errors":    out.Errors,
		})
		metrics.CatalogFailures.WithLabelValues(op, "api_error").Inc()
		return nil, nil
	}

	return &out, nil
}

func (c *Client) fail(op, reason, query string, err error) {
	c.log.WithError(err).Warn("mouser request failed", map[string]interface{}{
		"operation": op,
		"reason":    reason,
		"query":     query,
	})
	metrics.CatalogFailures.WithLabelValues(op, reason).Inc()
}
