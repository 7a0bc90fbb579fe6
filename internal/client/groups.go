package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// GroupsClient implements golab.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// List implements golab.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context, params *golab.QueryParams) (*golab.Collection[golab.Group], error) {
	paged, err := c.httpClient.DoPaginated(ctx, "GET", "/groups", nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Group](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding groups: %w", err)
	}

	return collection, nil
}

// Get implements golab.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int) (*golab.Group, error) {
	path := "/groups/" + strconv.Itoa(groupID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var group golab.Group

	err = json.Unmarshal(resp.Body, &group)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &group, nil
}

// Projects implements golab.GroupsClient.Projects.
func (c *GroupsClient) Projects(ctx context.Context, groupID int, params *golab.QueryParams) (*golab.Collection[golab.Project], error) {
	path := fmt.Sprintf("/groups/%d/projects", groupID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing group projects: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Project](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding group projects: %w", err)
	}

	return collection, nil
}
