// Package gitlab provides the main entry point for creating GitLab API clients.
package gitlab

import (
	"fmt"

	"github.com/forgekit-io/golab/internal/client"
	"github.com/forgekit-io/golab/pkg/golab"
)

// New creates a new GitLab API client implementing golab.Client.
//
// Host and Token are required and validated synchronously; no network
// activity happens during construction.
func New(config *golab.Config) (golab.Client, error) {
	if config == nil {
		return nil, golab.ErrConfigRequired
	}

	gitlabClient, err := client.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return gitlabClient, nil
}

// NewWithToken creates a new client from a host and access token.
func NewWithToken(host, token string) (golab.Client, error) {
	return New(&golab.Config{
		Host:  host,
		Token: token,
	})
}
