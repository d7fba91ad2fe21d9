package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/sony/gobreaker/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, baseURL string, timeoutMs int) *Client {
	t.Helper()

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{Name: "test", IsSuccessful: IsSuccessful})
	client, err := CreateClient(baseURL, "test-platform-key", timeoutMs, breaker)
	require.NoError(t, err)

	return client
}

func newBreakerTestClient(t *testing.T, baseURL string) *Client {
	t.Helper()

	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name: "test",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		IsSuccessful: IsSuccessful,
	})
	client, err := CreateClient(baseURL, "test-platform-key", 1000, breaker)
	require.NoError(t, err)

	return client
}

func TestCreateClientRequiresConfiguration(t *testing.T) {
	breaker := gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{Name: "test"})

	_, err := CreateClient("", "key", 1000, breaker)
	assert.Error(t, err)

	_, err = CreateClient("http://upstream", "", 1000, breaker)
	assert.Error(t, err)

	_, err = CreateClient("http://upstream", "key", 1000, nil)
	assert.Error(t, err)
}

func TestTimeoutSurfacesAs408(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1)

	start := time.Now()
	err := client.Get(context.Background(), "/slow", nil, RequestOptions{})
	elapsed := time.Since(start)

	require.Error(t, err)
	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusRequestTimeout, apiErr.Status)
	assert.Equal(t, CodeTimeout, apiErr.Code)
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestQueryParamsSkipNilValues(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.URL.Query()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	err := client.Get(context.Background(), "/products", nil, RequestOptions{
		Params: map[string]interface{}{
			"page":     1,
			"per_page": nil,
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "1", captured.Get("page"))
	assert.False(t, captured.Has("per_page"))
}

func TestContextHeaders(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	err := client.Get(context.Background(), "/wallet", nil, RequestOptions{
		Context: &RequestContext{
			SelectedCountry:  "MX",
			SelectedLanguage: "es",
			AuthToken:        "token-123",
			Msisdn:           "5215512345678",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "application/json", captured.Get("Content-Type"))
	assert.Equal(t, "test-platform-key", captured.Get("X-Platform-Key"))
	assert.Equal(t, "MX", captured.Get("Selected-Country"))
	assert.Equal(t, "es", captured.Get("Selected-Language"))
	assert.Equal(t, "Bearer token-123", captured.Get("Authorization"))
	assert.Equal(t, "5215512345678", captured.Get("Msisdn"))
}

func TestHeadersOmittedWhenContextEmpty(t *testing.T) {
	var captured http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r.Header.Clone()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	err := client.Get(context.Background(), "/products", nil, RequestOptions{Context: &RequestContext{}})
	require.NoError(t, err)

	assert.Empty(t, captured.Get("Selected-Country"))
	assert.Empty(t, captured.Get("Authorization"))
	assert.Empty(t, captured.Get("Msisdn"))
}

func TestNoContentYieldsNilPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	var result map[string]interface{}
	err := client.Delete(context.Background(), "/users/me/favorites/1", RequestOptions{})
	require.NoError(t, err)

	err = client.Get(context.Background(), "/empty", &result, RequestOptions{})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestUpstreamErrorBodyIsParsed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message": "Product not available", "code": "PRODUCT_UNAVAILABLE", "details": {"productId": 7}}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	err := client.Get(context.Background(), "/products/7", nil, RequestOptions{})
	require.Error(t, err)

	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, "Product not available", apiErr.Message)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "PRODUCT_UNAVAILABLE", apiErr.Code)
	assert.NotNil(t, apiErr.Details)
}

func TestUnparseableErrorBodyFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("upstream melted"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	err := client.Get(context.Background(), "/products", nil, RequestOptions{})
	require.Error(t, err)

	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, "HTTP Error: 503", apiErr.Message)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Empty(t, apiErr.Code)
}

func TestTransportFailureIsUnknownError(t *testing.T) {
	client := newTestClient(t, "http://127.0.0.1:1", 1000)

	err := client.Get(context.Background(), "/products", nil, RequestOptions{})
	require.Error(t, err)

	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, CodeUnknownError, apiErr.Code)
}

func TestGetPaginatedUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"products": [{"id": 1, "name": "A"}, {"id": 2, "name": "B"}],
			"pagination": {"total": 2, "per_page": 20, "current_page": 1, "last_page": 1, "from": 1, "to": 2}
		}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	type record struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	result, err := GetPaginated[record](context.Background(), client, "/products", "products", RequestOptions{})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "A", result.Data[0].Name)
	assert.Equal(t, 2, result.Pagination.Total)
	assert.Equal(t, 20, result.Pagination.PerPage)
}

func TestGetPaginatedToleratesMissingPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products": []}`))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL, 1000)

	result, err := GetPaginated[struct{}](context.Background(), client, "/products", "products", RequestOptions{})
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, ApiPagination{}, result.Pagination)
}

func TestIsSuccessfulClassification(t *testing.T) {
	assert.True(t, IsSuccessful(nil))
	assert.True(t, IsSuccessful(upstreamError(http.StatusNotFound, nil)))
	assert.True(t, IsSuccessful(upstreamError(http.StatusUnprocessableEntity, nil)))
	assert.False(t, IsSuccessful(upstreamError(http.StatusBadGateway, nil)))
	assert.False(t, IsSuccessful(timeoutError()))
	assert.False(t, IsSuccessful(unknownError(errors.New("connection refused"))))
}

func TestClientErrorsDoNotOpenBreaker(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/missing-slug" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"message": "Product not found"}`))
			return
		}
		w.Write([]byte(`{"id": 1}`))
	}))
	defer server.Close()

	client := newBreakerTestClient(t, server.URL)

	for i := 0; i < 5; i++ {
		err := client.Get(context.Background(), "/products/missing-slug", nil, RequestOptions{})
		require.Error(t, err)
		apiErr, ok := err.(*ApiError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, apiErr.Status)
	}

	var result map[string]interface{}
	err := client.Get(context.Background(), "/products/valid-slug", &result, RequestOptions{})
	assert.NoError(t, err)
}

func TestOpenBreakerSurfacesUpstreamUnavailable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newBreakerTestClient(t, server.URL)

	for i := 0; i < 3; i++ {
		err := client.Get(context.Background(), "/products", nil, RequestOptions{})
		require.Error(t, err)
	}

	err := client.Get(context.Background(), "/products", nil, RequestOptions{})
	require.Error(t, err)
	apiErr, ok := err.(*ApiError)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.Status)
	assert.Equal(t, CodeUpstreamUnavailable, apiErr.Code)
}
