package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// IssuesClient implements golab.IssuesClient.
type IssuesClient struct {
	httpClient *http.Client
}

// NewIssuesClient creates a new issues client.
func NewIssuesClient(httpClient *http.Client) *IssuesClient {
	return &IssuesClient{
		httpClient: httpClient,
	}
}

// List implements golab.IssuesClient.List.
func (c *IssuesClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Issue], error) {
	path := fmt.Sprintf("/projects/%d/issues", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing issues: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Issue](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding issues: %w", err)
	}

	return collection, nil
}

// Get implements golab.IssuesClient.Get.
func (c *IssuesClient) Get(ctx context.Context, projectID, issueIID int) (*golab.Issue, error) {
	path := fmt.Sprintf("/projects/%d/issues/%d", projectID, issueIID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting issue: %w", err)
	}

	var issue golab.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue: %w", err)
	}

	return &issue, nil
}

// Create implements golab.IssuesClient.Create.
func (c *IssuesClient) Create(ctx context.Context, projectID int, request *golab.IssueCreateRequest) (*golab.Issue, error) {
	path := fmt.Sprintf("/projects/%d/issues", projectID)

	resp, err := c.httpClient.Post(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("creating issue: %w", err)
	}

	var issue golab.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue response: %w", err)
	}

	return &issue, nil
}

// Update implements golab.IssuesClient.Update.
func (c *IssuesClient) Update(ctx context.Context, projectID, issueIID int, request *golab.IssueUpdateRequest) (*golab.Issue, error) {
	path := fmt.Sprintf("/projects/%d/issues/%d", projectID, issueIID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating issue: %w", err)
	}

	var issue golab.Issue

	err = json.Unmarshal(resp.Body, &issue)
	if err != nil {
		return nil, fmt.Errorf("parsing issue response: %w", err)
	}

	return &issue, nil
}

// Delete implements golab.IssuesClient.Delete.
func (c *IssuesClient) Delete(ctx context.Context, projectID, issueIID int) error {
	path := fmt.Sprintf("/projects/%d/issues/%d", projectID, issueIID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting issue: %w", err)
	}

	return nil
}
