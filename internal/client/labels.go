package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// LabelsClient implements golab.LabelsClient.
type LabelsClient struct {
	httpClient *http.Client
}

// NewLabelsClient creates a new labels client.
func NewLabelsClient(httpClient *http.Client) *LabelsClient {
	return &LabelsClient{
		httpClient: httpClient,
	}
}

// List implements golab.LabelsClient.List.
func (c *LabelsClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Label], error) {
	path := fmt.Sprintf("/projects/%d/labels", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing labels: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Label](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding labels: %w", err)
	}

	return collection, nil
}

// Create implements golab.LabelsClient.Create.
func (c *LabelsClient) Create(ctx context.Context, projectID int, request *golab.LabelCreateRequest) (*golab.Label, error) {
	path := fmt.Sprintf("/projects/%d/labels", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating label: %w", err)
	}

	var label golab.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label response: %w", err)
	}

	return &label, nil
}

// Update implements golab.LabelsClient.Update.
func (c *LabelsClient) Update(ctx context.Context, projectID, labelID int, request *golab.LabelUpdateRequest) (*golab.Label, error) {
	path := fmt.Sprintf("/projects/%d/labels/%d", projectID, labelID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating label: %w", err)
	}

	var label golab.Label

	err = json.Unmarshal(resp.Body, &label)
	if err != nil {
		return nil, fmt.Errorf("parsing label response: %w", err)
	}

	return &label, nil
}

// Delete implements golab.LabelsClient.Delete.
func (c *LabelsClient) Delete(ctx context.Context, projectID, labelID int) error {
	path := fmt.Sprintf("/projects/%d/labels/%d", projectID, labelID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting label: %w", err)
	}

	return nil
}
