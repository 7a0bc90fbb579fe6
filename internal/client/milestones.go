package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// MilestonesClient implements golab.MilestonesClient.
type MilestonesClient struct {
	httpClient *http.Client
}

// NewMilestonesClient creates a new milestones client.
func NewMilestonesClient(httpClient *http.Client) *MilestonesClient {
	return &MilestonesClient{
		httpClient: httpClient,
	}
}

// List implements golab.MilestonesClient.List.
func (c *MilestonesClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Milestone], error) {
	path := fmt.Sprintf("/projects/%d/milestones", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing milestones: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Milestone](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding milestones: %w", err)
	}

	return collection, nil
}

// Get implements golab.MilestonesClient.Get.
func (c *MilestonesClient) Get(ctx context.Context, projectID, milestoneID int) (*golab.Milestone, error) {
	path := fmt.Sprintf("/projects/%d/milestones/%d", projectID, milestoneID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting milestone: %w", err)
	}

	var milestone golab.Milestone

	err = json.Unmarshal(resp.Body, &milestone)
	if err != nil {
		return nil, fmt.Errorf("parsing milestone: %w", err)
	}

	return &milestone, nil
}

// Create implements golab.MilestonesClient.Create.
func (c *MilestonesClient) Create(ctx context.Context, projectID int, request *golab.MilestoneCreateRequest) (*golab.Milestone, error) {
	path := fmt.Sprintf("/projects/%d/milestones", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating milestone: %w", err)
	}

	var milestone golab.Milestone

	err = json.Unmarshal(resp.Body, &milestone)
	if err != nil {
		return nil, fmt.Errorf("parsing milestone response: %w", err)
	}

	return &milestone, nil
}

// Update implements golab.MilestonesClient.Update.
func (c *MilestonesClient) Update(ctx context.Context, projectID, milestoneID int, request *golab.MilestoneUpdateRequest) (*golab.Milestone, error) {
	path := fmt.Sprintf("/projects/%d/milestones/%d", projectID, milestoneID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating milestone: %w", err)
	}

	var milestone golab.Milestone

	err = json.Unmarshal(resp.Body, &milestone)
	if err != nil {
		return nil, fmt.Errorf("parsing milestone response: %w", err)
	}

	return &milestone, nil
}

// Delete implements golab.MilestonesClient.Delete.
func (c *MilestonesClient) Delete(ctx context.Context, projectID, milestoneID int) error {
	path := fmt.Sprintf("/projects/%d/milestones/%d", projectID, milestoneID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting milestone: %w", err)
	}

	return nil
}
