package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// UsersClient implements golab.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// List implements golab.UsersClient.List.
func (c *UsersClient) List(ctx context.Context, params *golab.QueryParams) (*golab.Collection[golab.User], error) {
	paged, err := c.httpClient.DoPaginated(ctx, "GET", "/users", nil, params)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}

	collection, err := golab.CollectionFrom[golab.User](paged)
	if err != nil {
		return nil, fmt.Errorf("decoding users: %w", err)
	}

	return collection, nil
}

// Get implements golab.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int) (*golab.User, error) {
	path := "/users/" + strconv.Itoa(userID)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var user golab.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &user, nil
}

// Current implements golab.UsersClient.Current.
func (c *UsersClient) Current(ctx context.Context) (*golab.User, error) {
	resp, err := c.httpClient.Get(ctx, "/user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var user golab.User

	err = json.Unmarshal(resp.Body, &user)
	if err != nil {
		return nil, fmt.Errorf("parsing current user: %w", err)
	}

	return &user, nil
}
