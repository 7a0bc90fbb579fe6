package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// CommitsClient implements golab.CommitsClient.
type CommitsClient struct {
	httpClient *http.Client
}

// NewCommitsClient creates a new commits client.
func NewCommitsClient(httpClient *http.Client) *CommitsClient {
	return &CommitsClient{
		httpClient: httpClient,
	}
}

// List implements golab.CommitsClient.List.
func (c *CommitsClient) List(ctx context.Context, projectID int, params *golab.QueryParams) (*golab.Collection[golab.Commit], error) {
	path := fmt.Sprintf("/projects/%d/repository/commits", projectID)

	paged, err := c.httpClient.DoPaginated(ctx, "GET", path, nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing commits: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.Commit](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding commits: %w", err)
	}

	return collection, nil
}

// Get implements golab.CommitsClient.Get. The sha may also be a branch or
// tag name.
func (c *CommitsClient) Get(ctx context.Context, projectID int, sha string) (*golab.Commit, error) {
	path := fmt.Sprintf("/projects/%d/repository/commits/%s", projectID, url.PathEscape(sha))

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting commit: %w", err)
	}

	var commit golab.Commit

	err = json.Unmarshal(resp.Body, &commit)
	if err != nil {
		return nil, fmt.Errorf("parsing commit: %w", err)
	}

	return &commit, nil
}
