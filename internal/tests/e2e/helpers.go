package e2e

import (
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the service
type TestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewTestClient(baseURL string) *TestClient {
	return &TestClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Response is a decoded reply. JSON is nil when the body is not JSON.
type Response struct {
	Status      int
	ContentType string
	Raw         []byte
	JSON        any
}

func (r *Response) Object(t *testing.T) map[string]any {
	obj, ok := r.JSON.(map[string]any)
	require.True(t, ok, "expected object body, got %s", r.Raw)
	return obj
}

func (r *Response) Array(t *testing.T) []any {
	arr, ok := r.JSON.([]any)
	require.True(t, ok, "expected array body, got %s", r.Raw)
	return arr
}

func (c *TestClient) Do(t *testing.T, method, path, body string) *Response {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := &Response{
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Raw:         raw,
	}
	_ = json.Unmarshal(raw, &out.JSON)
	return out
}

func (c *TestClient) CreatePurchase(t *testing.T, market, body string) *Response {
	return c.Do(t, http.MethodPost, "/api/markets/"+market+"/purchases", body)
}

func (c *TestClient) GetPurchase(t *testing.T, id string) *Response {
	return c.Do(t, http.MethodGet, "/api/purchases/"+id, "")
}

func (c *TestClient) UpdatePurchase(t *testing.T, id, body string) *Response {
	return c.Do(t, http.MethodPut, "/api/purchases/"+id, body)
}

func (c *TestClient) DeletePurchase(t *testing.T, id string) *Response {
	return c.Do(t, http.MethodDelete, "/api/purchases/"+id, "")
}

func (c *TestClient) ListMarketPurchases(t *testing.T, market string) *Response {
	return c.Do(t, http.MethodGet, "/api/markets/"+market+"/purchases", "")
}
