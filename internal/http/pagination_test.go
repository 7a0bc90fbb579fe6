package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	golabhttp "github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_DoPaginated(t *testing.T) {
	t.Parallel()
	t.Run("concatenates pages until a short page", func(t *testing.T) {
		t.Parallel()

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			page, _ := strconv.Atoi(request.URL.Query().Get("page"))
			assert.Equal(t, "2", request.URL.Query().Get("per_page"))

			switch page {
			case 1:
				_, _ = writer.Write([]byte(`[{"id":1},{"id":2}]`))
			case 2:
				_, _ = writer.Write([]byte(`[{"id":3}]`))
			default:
				t.Errorf("unexpected page %d", page)
			}
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		params := golab.NewQueryParams().WithPerPage(2)

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, params)
		require.NoError(t, err)
		assert.Equal(t, 2, requests)
		assert.Len(t, paged.Items, 3)
		assert.Equal(t, 2, paged.CurrentPage)
		assert.True(t, paged.IsCollection())
	})

	t.Run("empty first page issues exactly one request", func(t *testing.T) {
		t.Parallel()

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++
			_, _ = writer.Write([]byte(`[]`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1, requests)
		assert.Empty(t, paged.Items)
		assert.Equal(t, 1, paged.CurrentPage)
	})

	t.Run("per_page defaults to 100", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "100", request.URL.Query().Get("per_page"))
			_, _ = writer.Write([]byte(`[{"id":1}]`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		_, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, nil)
		require.NoError(t, err)
	})

	t.Run("engine overwrites caller page and per_page", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			// Caller asked for page 7; the loop starts at page 1 regardless.
			assert.Equal(t, "1", request.URL.Query().Get("page"))
			assert.Equal(t, "5", request.URL.Query().Get("per_page"))
			assert.Equal(t, "opened", request.URL.Query().Get("state"))
			_, _ = writer.Write([]byte(`[{"id":1}]`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		params := golab.NewQueryParams().WithPage(7).WithPerPage(5).WithFilter("state", "opened")

		_, err := client.DoPaginated(context.Background(), "GET", "/issues", nil, params)
		require.NoError(t, err)
	})

	t.Run("stops at X-Total-Pages on exactly full pages", func(t *testing.T) {
		t.Parallel()

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			page, _ := strconv.Atoi(request.URL.Query().Get("page"))

			writer.Header().Set("X-Total-Pages", "2")
			writer.Header().Set("X-Total", "4")

			// Both pages are exactly full, so only the header can stop the loop.
			_, _ = fmt.Fprintf(writer, `[{"id":%d},{"id":%d}]`, page*2-1, page*2)
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		params := golab.NewQueryParams().WithPerPage(2)

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, params)
		require.NoError(t, err)
		assert.Equal(t, 2, requests)
		assert.Len(t, paged.Items, 4)
		assert.Equal(t, 2, paged.CurrentPage)

		require.NotNil(t, paged.TotalPages)
		assert.Equal(t, 2, *paged.TotalPages)
		require.NotNil(t, paged.TotalItems)
		assert.Equal(t, 4, *paged.TotalItems)
	})

	t.Run("unparsable total headers are ignored", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.Header().Set("X-Total-Pages", "not-a-number")
			writer.Header().Set("X-Total", "")
			_, _ = writer.Write([]byte(`[{"id":1}]`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, nil)
		require.NoError(t, err)
		assert.Nil(t, paged.TotalPages)
		assert.Nil(t, paged.TotalItems)
	})

	t.Run("non-sequence payload returns the escape hatch", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`{"id":42,"name":"demo"}`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects/42", nil, nil)
		require.NoError(t, err)
		assert.False(t, paged.IsCollection())
		assert.Nil(t, paged.Items)
		assert.Equal(t, 1, paged.CurrentPage)

		single, ok := paged.Single.(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, "demo", single["name"])
	})

	t.Run("mid-loop error aborts and propagates", func(t *testing.T) {
		t.Parallel()

		requests := 0
		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			requests++

			if requests == 1 {
				_, _ = writer.Write([]byte(`[{"id":1},{"id":2}]`))

				return
			}

			writer.WriteHeader(http.StatusTooManyRequests)
			_, _ = writer.Write([]byte("slow down"))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		params := golab.NewQueryParams().WithPerPage(2)

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, params)
		require.Error(t, err)
		assert.Nil(t, paged)
		assert.True(t, golab.IsRateLimit(err))
		assert.Equal(t, 2, requests)
	})

	t.Run("items decode into a typed collection", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			_, _ = writer.Write([]byte(`[{"id":1,"name":"one"},{"id":2,"name":"two"}]`))
		}))
		defer server.Close()

		client := golabhttp.NewClient(server.URL, "test-token")

		paged, err := client.DoPaginated(context.Background(), "GET", "/projects", nil, nil)
		require.NoError(t, err)

		collection, err := golab.CollectionFrom[golab.Project](paged)
		require.NoError(t, err)
		require.Len(t, collection.Items, 2)
		assert.Equal(t, "one", collection.Items[0].Name)
		assert.Equal(t, "two", collection.Items[1].Name)
	})
}

func TestCollectionFrom_NotACollection(t *testing.T) {
	t.Parallel()

	paged := &golab.Paged{
		Single:      map[string]interface{}{"id": 42},
		CurrentPage: 1,
	}

	_, err := golab.CollectionFrom[golab.Project](paged)
	require.ErrorIs(t, err, golab.ErrNotACollection)
}
