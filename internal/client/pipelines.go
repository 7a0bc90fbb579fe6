package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// PipelinesClient implements golab.PipelinesClient.
type PipelinesClient struct {
	httpClient *http.Client
}

// NewPipelinesClient creates a new pipelines client.
func NewPipelinesClient(httpClient *http.Client) *PipelinesClient {
	return &PipelinesClient{
		httpClient: httpClient,
	}
}

// List implements golab.PipelinesClient.List.
func (c *PipelinesClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Pipeline], error) {
	path := fmt.Sprintf("/projects/%d/pipelines", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing pipelines: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Pipeline](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding pipelines: %w", err)
	}

	return collection, nil
}

// Get implements golab.PipelinesClient.Get.
func (c *PipelinesClient) Get(ctx context.Context, projectID, pipelineID int) (*golab.Pipeline, error) {
	path := fmt.Sprintf("/projects/%d/pipelines/%d", projectID, pipelineID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting pipeline: %w", err)
	}

	var pipeline golab.Pipeline

	err = json.Unmarshal(resp.Body, &pipeline)
	if err != nil {
		return nil, fmt.Errorf("parsing pipeline: %w", err)
	}

	return &pipeline, nil
}

// Create implements golab.PipelinesClient.Create. Note the singular
// /pipeline path on the trigger endpoint.
func (c *PipelinesClient) Create(ctx context.Context, projectID int, request *golab.PipelineCreateRequest) (*golab.Pipeline, error) {
	path := fmt.Sprintf("/projects/%d/pipeline", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating pipeline: %w", err)
	}

	var pipeline golab.Pipeline

	err = json.Unmarshal(resp.Body, &pipeline)
	if err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}

// Cancel implements golab.PipelinesClient.Cancel.
func (c *PipelinesClient) Cancel(ctx context.Context, projectID, pipelineID int) (*golab.Pipeline, error) {
	path := fmt.Sprintf("/projects/%d/pipelines/%d/cancel", projectID, pipelineID)

	resp, err := c.httpClient.Post(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("canceling pipeline: %w", err)
	}

	var pipeline golab.Pipeline

	err = json.Unmarshal(resp.Body, &pipeline)
	if err != nil {
		return nil, fmt.Errorf("parsing pipeline response: %w", err)
	}

	return &pipeline, nil
}
