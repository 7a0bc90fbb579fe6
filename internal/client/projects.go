package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// ProjectsClient implements golab.ProjectsClient.
type ProjectsClient struct {
	httpClient *http.Client
}

// NewProjectsClient creates a new projects client.
func NewProjectsClient(httpClient *http.Client) *ProjectsClient {
	return &ProjectsClient{
		httpClient: httpClient,
	}
}

// List implements golab.ProjectsClient.List.
func (c *ProjectsClient) List(ctx context.Context, params *golab.QueryParams) (*golab.Collection[golab.Project], error) {
	paged, err := c.httpClient.DoPaginated(ctx, "GET", "/projects", nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Project](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding projects: %w", err)
	}

	return collection, nil
}

// Get implements golab.ProjectsClient.Get.
func (c *ProjectsClient) Get(ctx context.Context, projectID int) (*golab.Project, error) {
	path := "/projects/" + strconv.Itoa(projectID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting project: %w", err)
	}

	var project golab.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project: %w", err)
	}

	return &project, nil
}

// Create implements golab.ProjectsClient.Create.
func (c *ProjectsClient) Create(ctx context.Context, request *golab.ProjectCreateRequest) (*golab.Project, error) {
	resp, err := c.httpClient.Post(ctx, "/projects", request)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}

	var project golab.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Update implements golab.ProjectsClient.Update.
func (c *ProjectsClient) Update(ctx context.Context, projectID int, request *golab.ProjectUpdateRequest) (*golab.Project, error) {
	path := "/projects/" + strconv.Itoa(projectID)

	resp, err := c.httpClient.Put(ctx, path, request)
	if err != nil {
		return nil, fmt.Errorf("updating project: %w", err)
	}

	var project golab.Project

	err = json.Unmarshal(resp.Body, &project)
	if err != nil {
		return nil, fmt.Errorf("parsing project response: %w", err)
	}

	return &project, nil
}

// Delete implements golab.ProjectsClient.Delete.
func (c *ProjectsClient) Delete(ctx context.Context, projectID int) error {
	path := "/projects/" + strconv.Itoa(projectID)

	_, err := c.httpClient.Delete(ctx, path)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}

	return nil
}
