package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestProjectsClient(t *testing.T) {
	t.Parallel()
	t.Run("list", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects", request.URL.Path)
			assert.Equal(t, "demo", request.URL.Query().Get("search"))
			writer.Header().Set("X-Total", "2")
			writer.Header().Set("X-Total-Pages", "1")
			_, _ = writer.Write([]byte(`[
				{"id":1,"name":"alpha","path_with_namespace":"group/alpha"},
				{"id":2,"name":"beta","path_with_namespace":"group/beta"}
			]`))
		})

		params := golab.NewQueryParams().WithSearch("demo")

		projects, err := testClient.Projects().List(context.Background(), params)
		require.NoError(t, err)
		require.Len(t, projects.Items, 2)
		assert.Equal(t, "alpha", projects.Items[0].Name)
		assert.Equal(t, "group/beta", projects.Items[1].PathWithNamespace)

		require.NotNil(t, projects.TotalItems)
		assert.Equal(t, 2, *projects.TotalItems)
	})

	t.Run("get", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			_, _ = writer.Write([]byte(`{"id":42,"name":"demo","default_branch":"main","visibility":"private"}`))
		})

		project, err := testClient.Projects().Get(context.Background(), 42)
		require.NoError(t, err)
		assert.Equal(t, 42, project.ID)
		assert.Equal(t, "main", project.DefaultBranch)
		assert.Equal(t, "private", project.Visibility)
	})

	t.Run("get not found", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"message":"404 Project Not Found"}`))
		})

		_, err := testClient.Projects().Get(context.Background(), 9999)
		require.Error(t, err)
		assert.True(t, golab.IsNotFound(err))
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "new-project", body["name"])
			assert.Equal(t, "internal", body["visibility"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id":7,"name":"new-project","visibility":"internal"}`))
		})

		project, err := testClient.Projects().Create(context.Background(), &golab.ProjectCreateRequest{
			Name:       "new-project",
			Visibility: "internal",
		})
		require.NoError(t, err)
		assert.Equal(t, 7, project.ID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/7", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "renamed", body["name"])

			// Fields without a value stay off the wire.
			_, present := body["visibility"]
			assert.False(t, present)

			_, _ = writer.Write([]byte(`{"id":7,"name":"renamed"}`))
		})

		newName := "renamed"

		project, err := testClient.Projects().Update(context.Background(), 7, &golab.ProjectUpdateRequest{
			Name: &newName,
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed", project.Name)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/7", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusAccepted)
		})

		err := testClient.Projects().Delete(context.Background(), 7)
		require.NoError(t, err)
	})
}
