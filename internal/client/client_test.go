package client_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forgekit-io/golab/internal/client"
	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient starts a test server with the given handler and returns a
// client pointed at it. The server is closed with the test.
func newTestClient(t *testing.T, handler http.HandlerFunc) *client.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	testClient, err := client.New(&golab.Config{
		Host:  server.URL,
		Token: "test-token",
	})
	require.NoError(t, err)

	return testClient
}

func TestNew(t *testing.T) {
	t.Parallel()
	t.Run("nil config fails", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(nil)
		require.ErrorIs(t, err, golab.ErrConfigRequired)
	})

	t.Run("missing host fails synchronously", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&golab.Config{Token: "test-token"})
		require.ErrorIs(t, err, golab.ErrHostRequired)
	})

	t.Run("missing token fails synchronously", func(t *testing.T) {
		t.Parallel()

		_, err := client.New(&golab.Config{Host: "gitlab.example.com"})
		require.ErrorIs(t, err, golab.ErrTokenRequired)
	})

	t.Run("bare host gets https scheme and v4 suffix", func(t *testing.T) {
		t.Parallel()

		testClient, err := client.New(&golab.Config{
			Host:  "gitlab.example.com",
			Token: "test-token",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v4", testClient.BaseURL())
	})

	t.Run("explicit scheme is preserved", func(t *testing.T) {
		t.Parallel()

		testClient, err := client.New(&golab.Config{
			Host:  "http://gitlab.local:8080",
			Token: "test-token",
		})
		require.NoError(t, err)
		assert.Equal(t, "http://gitlab.local:8080/api/v4", testClient.BaseURL())
	})

	t.Run("trailing slash is stripped", func(t *testing.T) {
		t.Parallel()

		testClient, err := client.New(&golab.Config{
			Host:  "https://gitlab.example.com/",
			Token: "test-token",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v4", testClient.BaseURL())
	})

	t.Run("api version override", func(t *testing.T) {
		t.Parallel()

		testClient, err := client.New(&golab.Config{
			Host:       "gitlab.example.com",
			Token:      "test-token",
			APIVersion: "v5",
		})
		require.NoError(t, err)
		assert.Equal(t, "https://gitlab.example.com/api/v5", testClient.BaseURL())
	})

	t.Run("resource clients are initialized", func(t *testing.T) {
		t.Parallel()

		testClient, err := client.New(&golab.Config{
			Host:  "gitlab.example.com",
			Token: "test-token",
		})
		require.NoError(t, err)

		assert.NotNil(t, testClient.Projects())
		assert.NotNil(t, testClient.Issues())
		assert.NotNil(t, testClient.MergeRequests())
		assert.NotNil(t, testClient.Users())
		assert.NotNil(t, testClient.Groups())
		assert.NotNil(t, testClient.Branches())
		assert.NotNil(t, testClient.Commits())
		assert.NotNil(t, testClient.Pipelines())
		assert.NotNil(t, testClient.Labels())
		assert.NotNil(t, testClient.Milestones())
	})
}

func TestClient_Execute(t *testing.T) {
	t.Parallel()

	testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v4/version", request.URL.Path)
		assert.Equal(t, "test-token", request.Header.Get("PRIVATE-TOKEN"))
		assert.Equal(t, "custom-value", request.Header.Get("X-Custom"))
		_, _ = writer.Write([]byte(`{"version":"17.0.0"}`))
	})

	resp, err := testClient.Execute(context.Background(), "GET", "/version", nil, &golab.RequestOptions{
		Headers: map[string]string{"X-Custom": "custom-value"},
	})
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "17.0.0", data["version"])
}

func TestClient_Paginate(t *testing.T) {
	t.Parallel()

	testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v4/projects", request.URL.Path)
		_, _ = writer.Write([]byte(`[{"id":1},{"id":2}]`))
	})

	paged, err := testClient.Paginate(context.Background(), "GET", "/projects", nil, nil)
	require.NoError(t, err)
	assert.Len(t, paged.Items, 2)
	assert.Equal(t, 1, paged.CurrentPage)
}

func TestClient_RateLimitTelemetry(t *testing.T) {
	t.Parallel()

	testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("RateLimit-Remaining", "99")
		writer.Header().Set("RateLimit-Reset", "1700000000")
		_, _ = writer.Write([]byte(`{}`))
	})

	_, err := testClient.Execute(context.Background(), "GET", "/version", nil, nil)
	require.NoError(t, err)

	state := testClient.RateLimit()
	remaining, ok := state.RemainingRequests()
	require.True(t, ok)
	assert.Equal(t, 99, remaining)
}
