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
func TestMergeRequestsClient(t *testing.T) {
	t.Parallel()
	t.Run("list is project scoped", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/merge_requests", request.URL.Path)
			assert.Equal(t, "merged", request.URL.Query().Get("state"))
			_, _ = writer.Write([]byte(`[{"id":200,"iid":1,"title":"feature","source_branch":"feature","target_branch":"main"}]`))
		})

		params := golab.NewQueryParams().WithFilter("state", "merged")

		mergeRequests, err := testClient.MergeRequests().List(context.Background(), 42, params)
		require.NoError(t, err)
		require.Len(t, mergeRequests.Items, 1)
		assert.Equal(t, "feature", mergeRequests.Items[0].SourceBranch)
		assert.Equal(t, "main", mergeRequests.Items[0].TargetBranch)
	})

	t.Run("get addresses the merge request by iid", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/merge_requests/3", request.URL.Path)
			_, _ = writer.Write([]byte(`{"id":203,"iid":3,"title":"fix","state":"opened","draft":true}`))
		})

		mergeRequest, err := testClient.MergeRequests().Get(context.Background(), 42, 3)
		require.NoError(t, err)
		assert.Equal(t, 3, mergeRequest.IID)
		assert.True(t, mergeRequest.Draft)
	})

	t.Run("create", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/merge_requests", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "feature", body["source_branch"])
			assert.Equal(t, "main", body["target_branch"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id":204,"iid":4,"title":"Add feature","state":"opened"}`))
		})

		mergeRequest, err := testClient.MergeRequests().Create(context.Background(), 42, &golab.MergeRequestCreateRequest{
			Title:        "Add feature",
			SourceBranch: "feature",
			TargetBranch: "main",
		})
		require.NoError(t, err)
		assert.Equal(t, 4, mergeRequest.IID)
	})

	t.Run("update", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/merge_requests/4", request.URL.Path)
			assert.Equal(t, "PUT", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "close", body["state_event"])

			_, _ = writer.Write([]byte(`{"id":204,"iid":4,"title":"Add feature","state":"closed"}`))
		})

		stateEvent := "close"

		mergeRequest, err := testClient.MergeRequests().Update(context.Background(), 42, 4, &golab.MergeRequestUpdateRequest{
			StateEvent: &stateEvent,
		})
		require.NoError(t, err)
		assert.Equal(t, "closed", mergeRequest.State)
	})

	t.Run("delete", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/merge_requests/4", request.URL.Path)
			assert.Equal(t, "DELETE", request.Method)
			writer.WriteHeader(http.StatusNoContent)
		})

		err := testClient.MergeRequests().Delete(context.Background(), 42, 4)
		require.NoError(t, err)
	})
}

func TestUsersClient_Current(t *testing.T) {
	t.Parallel()

	testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v4/user", request.URL.Path)
		_, _ = writer.Write([]byte(`{"id":1,"username":"admin","name":"Administrator"}`))
	})

	user, err := testClient.Users().Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
}

func TestBranchesClient_PathEscaping(t *testing.T) {
	t.Parallel()

	testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		// The branch name's slash must arrive escaped.
		assert.Equal(t, "/api/v4/projects/42/repository/branches/feature%2Flogin", request.URL.EscapedPath())
		_, _ = writer.Write([]byte(`{"name":"feature/login","merged":false}`))
	})

	branch, err := testClient.Branches().Get(context.Background(), 42, "feature/login")
	require.NoError(t, err)
	assert.Equal(t, "feature/login", branch.Name)
}

func TestPipelinesClient_Endpoints(t *testing.T) {
	t.Parallel()
	t.Run("create uses the singular trigger path", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/pipeline", request.URL.Path)
			assert.Equal(t, "POST", request.Method)

			var body map[string]interface{}

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "main", body["ref"])

			writer.WriteHeader(http.StatusCreated)
			_, _ = writer.Write([]byte(`{"id":900,"ref":"main","status":"pending"}`))
		})

		pipeline, err := testClient.Pipelines().Create(context.Background(), 42, &golab.PipelineCreateRequest{Ref: "main"})
		require.NoError(t, err)
		assert.Equal(t, 900, pipeline.ID)
	})

	t.Run("cancel posts to the cancel endpoint", func(t *testing.T) {
		t.Parallel()

		testClient := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v4/projects/42/pipelines/900/cancel", request.URL.Path)
			assert.Equal(t, "POST", request.Method)
			_, _ = writer.Write([]byte(`{"id":900,"ref":"main","status":"canceled"}`))
		})

		pipeline, err := testClient.Pipelines().Cancel(context.Background(), 42, 900)
		require.NoError(t, err)
		assert.Equal(t, "canceled", pipeline.Status)
	})
}
