package webex

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-token", &Config{
		BaseURL:    server.URL,
		Timeout:    5 * time.Second,
		HTTPClient: server.Client(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	return client, server
}

func TestNewClient(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		_, err := NewClient("", nil)
		require.Error(t, err)
	})

	t.Run("nil config uses defaults", func(t *testing.T) {
		client, err := NewClient("token", nil)
		require.NoError(t, err)
		assert.Equal(t, "https://webexapis.com/v1", client.BaseURL().String())
	})

	t.Run("invalid base URL", func(t *testing.T) {
		_, err := NewClient("token", &Config{BaseURL: "://bad"})
		require.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	var gotPath, gotAuth, gotQuery string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	params := url.Values{}
	params.Set("siteUrl", "example.webex.com")

	resp, err := client.Get(context.Background(), "report/templates", params)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "/report/templates", gotPath)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "siteUrl=example.webex.com", gotQuery)
}

func TestPost(t *testing.T) {
	var gotMethod, gotContentType string
	var gotBody map[string]interface{}
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotContentType = r.Header.Get("Content-Type")
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{}`))
	})

	body := map[string]interface{}{"templateId": 156}
	resp, err := client.Post(context.Background(), "reports", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotContentType)
	assert.Equal(t, float64(156), gotBody["templateId"])
}

func TestGetURL(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("csv,data"))
	}))
	defer server.Close()

	// The client's base URL points elsewhere; GetURL must hit the absolute URL.
	client, err := NewClient("test-token", &Config{
		BaseURL:    "https://unused.example.test",
		HTTPClient: server.Client(),
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	resp, err := client.GetURL(context.Background(), server.URL+"/dl/report.zip")
	require.NoError(t, err)

	body, err := ReadResponse(resp)
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/dl/report.zip", gotPath)
	assert.Equal(t, "csv,data", string(body))
}

func TestDefaultHeaders(t *testing.T) {
	var gotHeader string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeader = r.Header.Get("X-Custom")
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client, err := NewClient("test-token", &Config{
		BaseURL:        server.URL,
		HTTPClient:     server.Client(),
		DefaultHeaders: map[string]string{"X-Custom": "value"},
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	resp, err := client.Get(context.Background(), "meetings", nil)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "value", gotHeader)
}

func TestContextCancellation(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Get(ctx, "meetings", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParseResponse(t *testing.T) {
	t.Run("decodes success body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"items":[{"Id":1}]}`))
		})

		resp, err := client.Get(context.Background(), "report/templates", nil)
		require.NoError(t, err)

		var out struct {
			Items []struct {
				ID int `json:"Id"`
			} `json:"items"`
		}
		require.NoError(t, ParseResponse(resp, &out))
		require.Len(t, out.Items, 1)
		assert.Equal(t, 1, out.Items[0].ID)
	})

	t.Run("maps error status to APIError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Report not found","trackingId":"ROUTER_abc123"}`))
		})

		resp, err := client.Get(context.Background(), "reports/missing", nil)
		require.NoError(t, err)

		var out map[string]interface{}
		err = ParseResponse(resp, &out)
		require.Error(t, err)
		assert.True(t, IsAPIError(err))

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
		assert.Equal(t, "Report not found", apiErr.Message)
		assert.Equal(t, "ROUTER_abc123", apiErr.TrackingID)
	})

	t.Run("maps undecodable body to ProtocolError", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`not json at all`))
		})

		resp, err := client.Get(context.Background(), "report/templates", nil)
		require.NoError(t, err)

		var out map[string]interface{}
		err = ParseResponse(resp, &out)
		require.Error(t, err)
		assert.True(t, IsProtocolError(err))
	})
}

func TestReadResponse(t *testing.T) {
	t.Run("returns raw bytes", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("raw bytes"))
		})

		resp, err := client.Get(context.Background(), "anything", nil)
		require.NoError(t, err)

		body, err := ReadResponse(resp)
		require.NoError(t, err)
		assert.Equal(t, []byte("raw bytes"), body)
	})

	t.Run("maps error status preserving body", func(t *testing.T) {
		client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte("boom"))
		})

		resp, err := client.Get(context.Background(), "anything", nil)
		require.NoError(t, err)

		_, err = ReadResponse(resp)
		require.Error(t, err)

		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
		assert.Equal(t, []byte("boom"), apiErr.RawBody)
	})
}
