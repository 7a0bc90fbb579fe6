package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// BranchesClient implements golab.BranchesClient.
type BranchesClient struct {
	httpClient *http.Client
}

// NewBranchesClient creates a new branches client.
func NewBranchesClient(httpClient *http.Client) *BranchesClient {
	return &BranchesClient{
		httpClient: httpClient,
	}
}

// List implements golab.BranchesClient.List.
func (c *BranchesClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Branch], error) {
	path := fmt.Sprintf("/projects/%d/repository/branches", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing branches: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Branch](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding branches: %w", err)
	}

	return collection, nil
}

// Get implements golab.BranchesClient.Get. Branch names may contain slashes
// and are path-escaped.
func (c *BranchesClient) Get(ctx context.Context, projectID int, branch string) (*golab.Branch, error) {
	path := fmt.Sprintf("/projects/%d/repository/branches/%s", projectID, url.PathEscape(branch))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting branch: %w", err)
	}

	var result golab.Branch

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing branch: %w", err)
	}

	return &result, nil
}

// Create implements golab.BranchesClient.Create.
func (c *BranchesClient) Create(ctx context.Context, projectID int, request *golab.BranchCreateRequest) (*golab.Branch, error) {
	path := fmt.Sprintf("/projects/%d/repository/branches", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating branch: %w", err)
	}

	var result golab.Branch

	err = json.Unmarshal(resp.Body, &result)
	if err != nil {
		return nil, fmt.Errorf("parsing branch response: %w", err)
	}

	return &result, nil
}

// Delete implements golab.BranchesClient.Delete.
func (c *BranchesClient) Delete(ctx context.Context, projectID int, branch string) error {
	path := fmt.Sprintf("/projects/%d/repository/branches/%s", projectID, url.PathEscape(branch))

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting branch: %w", err)
	}

	return nil
}
