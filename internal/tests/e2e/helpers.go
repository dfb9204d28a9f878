package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestClient wraps HTTP calls to the gateway
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

type Response struct {
	Status int
	Header http.Header
	Body   map[string]any
}

// Deploy posts payload with the given gateway headers.
func (c *TestClient) Deploy(t *testing.T, payload []byte, headers map[string]string) Response {
	httpReq, err := http.NewRequest(http.MethodPost, c.baseURL+"/", bytes.NewReader(payload))
	require.NoError(t, err)
	httpReq.Header.Set("Content-Type", "application/zip")
	for name, value := range headers {
		httpReq.Header.Set(name, value)
	}
	return c.do(t, httpReq)
}

func (c *TestClient) Do(t *testing.T, method, path string) Response {
	httpReq, err := http.NewRequest(method, c.baseURL+path, nil)
	require.NoError(t, err)
	return c.do(t, httpReq)
}

func (c *TestClient) do(t *testing.T, httpReq *http.Request) Response {
	resp, err := c.httpClient.Do(httpReq)
	require.NoError(t, err)
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	out := Response{Status: resp.StatusCode, Header: resp.Header}
	if len(bodyBytes) > 0 {
		require.NoError(t, json.Unmarshal(bodyBytes, &out.Body), "body: %s", bodyBytes)
	}
	return out
}
