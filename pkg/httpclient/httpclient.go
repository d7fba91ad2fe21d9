package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// RequestContext carries the per-request parameters that become upstream
// headers. It is resolved once per incoming request and passed by value.
type RequestContext struct {
	SelectedCountry  string
	SelectedLanguage string
	AuthToken        string
	Msisdn           string
}

// RequestOptions is the options bag accepted by every call.
type RequestOptions struct {
	Params  map[string]interface{}
	Context *RequestContext
	Headers map[string]string
}

type Client struct {
	baseURL     string
	platformKey string
	timeout     time.Duration
	httpClient  *http.Client
	breaker     *gobreaker.CircuitBreaker[[]byte]
}

// CreateClient builds the shared upstream client. The base URL and platform
// key are required configuration; constructing the client is their first use.
func CreateClient(baseURL string, platformKey string, timeoutMs int, breaker *gobreaker.CircuitBreaker[[]byte]) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("upstream base URL is not configured")
	}
	if platformKey == "" {
		return nil, errors.New("upstream platform key is not configured")
	}
	if timeoutMs <= 0 {
		timeoutMs = 30000
	}
	if breaker == nil {
		return nil, errors.New("upstream circuit breaker is not configured")
	}

	return &Client{
		baseURL:     strings.TrimSuffix(baseURL, "/"),
		platformKey: platformKey,
		timeout:     time.Duration(timeoutMs) * time.Millisecond,
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		breaker: breaker,
	}, nil
}

func (c *Client) Get(ctx context.Context, endpoint string, result interface{}, opts RequestOptions) error {
	return c.call(ctx, http.MethodGet, endpoint, nil, result, opts)
}

func (c *Client) Post(ctx context.Context, endpoint string, body interface{}, result interface{}, opts RequestOptions) error {
	return c.call(ctx, http.MethodPost, endpoint, body, result, opts)
}

func (c *Client) Put(ctx context.Context, endpoint string, body interface{}, result interface{}, opts RequestOptions) error {
	return c.call(ctx, http.MethodPut, endpoint, body, result, opts)
}

func (c *Client) Patch(ctx context.Context, endpoint string, body interface{}, result interface{}, opts RequestOptions) error {
	return c.call(ctx, http.MethodPatch, endpoint, body, result, opts)
}

func (c *Client) Delete(ctx context.Context, endpoint string, opts RequestOptions) error {
	return c.call(ctx, http.MethodDelete, endpoint, nil, nil, opts)
}

// ApiPagination is the pagination block of the upstream list envelope.
// Missing fields decode to zero so the shape is always fully populated.
type ApiPagination struct {
	Total       int `json:"total"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	LastPage    int `json:"last_page"`
	From        int `json:"from"`
	To          int `json:"to"`
}

// ApiMessage is the optional informational message some list endpoints
// attach to their envelope.
type ApiMessage struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type PaginatedResult[T any] struct {
	Data       []T
	Pagination ApiPagination
	Message    *ApiMessage
}

// GetPaginated unwraps the upstream list envelope: the records live under
// dataKey and the page info under "pagination".
func GetPaginated[T any](ctx context.Context, c *Client, endpoint string, dataKey string, opts RequestOptions) (PaginatedResult[T], error) {
	var result PaginatedResult[T]

	raw, err := c.do(ctx, http.MethodGet, endpoint, nil, opts)
	if err != nil {
		return result, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return result, unknownError(err)
	}

	if records, ok := envelope[dataKey]; ok {
		if err := json.Unmarshal(records, &result.Data); err != nil {
			return result, unknownError(err)
		}
	}
	if page, ok := envelope["pagination"]; ok {
		if err := json.Unmarshal(page, &result.Pagination); err != nil {
			return result, unknownError(err)
		}
	}
	if message, ok := envelope["message"]; ok {
		var parsed ApiMessage
		if err := json.Unmarshal(message, &parsed); err == nil {
			result.Message = &parsed
		}
	}

	return result, nil
}

func (c *Client) call(ctx context.Context, method string, endpoint string, body interface{}, result interface{}, opts RequestOptions) error {
	raw, err := c.do(ctx, method, endpoint, body, opts)
	if err != nil {
		return err
	}

	if result == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, result); err != nil {
		return unknownError(err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method string, endpoint string, body interface{}, opts RequestOptions) ([]byte, error) {
	reqURL, err := c.buildURL(endpoint, opts.Params)
	if err != nil {
		return nil, unknownError(err)
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, unknownError(err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
	if err != nil {
		return nil, unknownError(err)
	}
	c.setHeaders(req, opts)

	raw, err := c.breaker.Execute(func() ([]byte, error) {
		return c.exchange(req)
	})
	if err != nil {
		var apiErr *ApiError
		if errors.As(err, &apiErr) {
			return nil, apiErr
		}
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, unavailableError()
		}
		return nil, unknownError(err)
	}

	return raw, nil
}

func (c *Client) exchange(req *http.Request) ([]byte, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, timeoutError()
		}
		return nil, unknownError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, timeoutError()
		}
		return nil, unknownError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, upstreamError(resp.StatusCode, raw)
	}

	return raw, nil
}

// buildURL joins the base URL with the endpoint and appends query params,
// skipping any entry whose value is nil so unset params never reach the wire.
func (c *Client) buildURL(endpoint string, params map[string]interface{}) (string, error) {
	parsed, err := url.Parse(c.baseURL + "/" + strings.TrimPrefix(endpoint, "/"))
	if err != nil {
		return "", err
	}

	if len(params) > 0 {
		query := parsed.Query()
		for key, value := range params {
			if value == nil {
				continue
			}
			query.Set(key, fmt.Sprintf("%v", value))
		}
		parsed.RawQuery = query.Encode()
	}

	return parsed.String(), nil
}

func (c *Client) setHeaders(req *http.Request, opts RequestOptions) {
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Platform-Key", c.platformKey)

	if rctx := opts.Context; rctx != nil {
		if rctx.SelectedCountry != "" {
			req.Header.Set("Selected-Country", rctx.SelectedCountry)
		}
		if rctx.SelectedLanguage != "" {
			req.Header.Set("Selected-Language", rctx.SelectedLanguage)
		}
		if rctx.AuthToken != "" {
			req.Header.Set("Authorization", "Bearer "+rctx.AuthToken)
		}
		if rctx.Msisdn != "" {
			req.Header.Set("Msisdn", rctx.Msisdn)
		}
	}

	for key, value := range opts.Headers {
		req.Header.Set(key, value)
	}
}
