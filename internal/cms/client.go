// Package cms reads blog content from the microCMS REST API.
package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/mashirovoc/blog/internal/platform/errors"
	"github.com/mashirovoc/blog/internal/platform/otel"
)

// APIKeyHeader carries the CMS API key on every request.
const APIKeyHeader = "X-MICROCMS-API-KEY"

const tracerName = "github.com/mashirovoc/blog/internal/cms"

// Config configures a Client.
//
// An empty ServiceDomain or APIKey is accepted; the CMS then rejects
// requests and the failure surfaces from Get or List.
type Config struct {
	ServiceDomain string
	APIKey        string
	// BaseURL overrides https://{ServiceDomain}.microcms.io/api/v1.
	BaseURL    string
	HTTPClient *http.Client
}

// Client is an HTTP Reader for one CMS service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	tracer     trace.Tracer
}

// NewClient builds a client from cfg.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL == "" {
		baseURL = "https://" + strings.TrimSpace(cfg.ServiceDomain) + ".microcms.io/api/v1"
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		tracer:     otel.Tracer(tracerName),
	}
}

// BaseURL returns the resolved API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get fetches {endpoint}/{id}. A 404 or an empty document yields ErrNotFound.
func (c *Client) Get(ctx context.Context, endpoint, id string, q Query) (json.RawMessage, error) {
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	id = strings.TrimSpace(id)
	if endpoint == "" {
		return nil, apperrors.New(apperrors.CodeInvalidQuery, "endpoint is required")
	}
	if id == "" {
		return nil, ErrNotFound
	}

	ctx, span := c.tracer.Start(ctx, "cms.get", trace.WithAttributes(
		attribute.String("cms.endpoint", endpoint),
		attribute.String("cms.id", id),
		attribute.Bool("cms.draft", q.DraftKey != ""),
	))
	defer span.End()

	body, err := c.fetch(ctx, endpoint+"/"+url.PathEscape(id), q)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	if isEmptyDocument(body) {
		recordError(span, ErrNotFound)
		return nil, ErrNotFound
	}
	return body, nil
}

// List fetches the list envelope of endpoint.
func (c *Client) List(ctx context.Context, endpoint string, q Query) (json.RawMessage, error) {
	endpoint = strings.Trim(strings.TrimSpace(endpoint), "/")
	if endpoint == "" {
		return nil, apperrors.New(apperrors.CodeInvalidQuery, "endpoint is required")
	}

	ctx, span := c.tracer.Start(ctx, "cms.list", trace.WithAttributes(
		attribute.String("cms.endpoint", endpoint),
		attribute.Int("cms.limit", q.Limit),
		attribute.String("cms.filters", q.Filters),
	))
	defer span.End()

	body, err := c.fetch(ctx, endpoint, q)
	if err != nil {
		recordError(span, err)
		return nil, err
	}
	return body, nil
}

func (c *Client) fetch(ctx context.Context, path string, q Query) (json.RawMessage, error) {
	target := c.baseURL + "/" + path
	if encoded := q.Values().Encode(); encoded != "" {
		target += "?" + encoded
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build cms request: %w", err)
	}
	req.Header.Set(APIKeyHeader, c.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCMSUnavailable, "cms request "+path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCMSUnavailable, "read cms response "+path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, apperrors.WithMetadata(apperrors.CodeUnauthorized,
			fmt.Sprintf("cms %s returned status %d", path, resp.StatusCode),
			map[string]string{"status": fmt.Sprint(resp.StatusCode)})
	case resp.StatusCode == http.StatusBadRequest:
		return nil, apperrors.WithMetadata(apperrors.CodeInvalidQuery,
			fmt.Sprintf("cms %s rejected query: %s", path, strings.TrimSpace(string(body))),
			map[string]string{"status": "400"})
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, apperrors.WithMetadata(apperrors.CodeCMSUnavailable,
			fmt.Sprintf("cms %s returned status %d", path, resp.StatusCode),
			map[string]string{"status": fmt.Sprint(resp.StatusCode)})
	}
	return json.RawMessage(body), nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
