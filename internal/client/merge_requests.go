package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// MergeRequestsClient implements golab.MergeRequestsClient.
type MergeRequestsClient struct {
	httpClient *http.Client
}

// NewMergeRequestsClient creates a new merge requests client.
func NewMergeRequestsClient(httpClient *http.Client) *MergeRequestsClient {
	return &MergeRequestsClient{
		httpClient: httpClient,
	}
}

// List implements golab.MergeRequestsClient.List.
func (c *MergeRequestsClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.MergeRequest], error) {
	path := fmt.Sprintf("/projects/%d/merge_requests", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing merge requests: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.MergeRequest](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding merge requests: %w", err)
	}

	return collection, nil
}

// Get implements golab.MergeRequestsClient.Get.
func (c *MergeRequestsClient) Get(ctx context.Context, projectID, mergeRequestIID int) (*golab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%d/merge_requests/%d", projectID, mergeRequestIID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting merge request: %w", err)
	}

	var mergeRequest golab.MergeRequest

	err = json.Unmarshal(resp.Body, &mergeRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing merge request: %w", err)
	}

	return &mergeRequest, nil
}

// Create implements golab.MergeRequestsClient.Create.
func (c *MergeRequestsClient) Create(ctx context.Context, projectID int, request *golab.MergeRequestCreateRequest) (*golab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%d/merge_requests", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating merge request: %w", err)
	}

	var mergeRequest golab.MergeRequest

	err = json.Unmarshal(resp.Body, &mergeRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing merge request response: %w", err)
	}

	return &mergeRequest, nil
}

// Update implements golab.MergeRequestsClient.Update.
func (c *MergeRequestsClient) Update(ctx context.Context, projectID, mergeRequestIID int, request *golab.MergeRequestUpdateRequest) (*golab.MergeRequest, error) {
	path := fmt.Sprintf("/projects/%d/merge_requests/%d", projectID, mergeRequestIID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating merge request: %w", err)
	}

	var mergeRequest golab.MergeRequest

	err = json.Unmarshal(resp.Body, &mergeRequest)
	if err != nil {
		return nil, fmt.Errorf("parsing merge request response: %w", err)
	}

	return &mergeRequest, nil
}

// Delete implements golab.MergeRequestsClient.Delete.
func (c *MergeRequestsClient) Delete(ctx context.Context, projectID, mergeRequestIID int) error {
	path := fmt.Sprintf("/projects/%d/merge_requests/%d", projectID, mergeRequestIID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting merge request: %w", err)
	}

	return nil
}
