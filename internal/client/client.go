// Package client implements the golab.Client interface on top of the
// internal HTTP request executor and pagination engine.
package client

import (
	"context"
	"strings"

	"github.com/forgekit-io/golab/internal/constants"
	internalhttp "github.com/forgekit-io/golab/internal/http"
	"github.com/forgekit-io/golab/pkg/golab"
)

// Client implements the golab.Client interface.
type Client struct {
	httpClient *internalhttp.Client
	baseURL    string
	logger     golab.Logger

	// Resource clients
	projects      golab.ProjectsClient
	issues        golab.IssuesClient
	mergeRequests golab.MergeRequestsClient
	users         golab.UsersClient
	groups        golab.GroupsClient
	branches      golab.BranchesClient
	commits       golab.CommitsClient
	pipelines     golab.PipelinesClient
	labels        golab.LabelsClient
	milestones    golab.MilestonesClient
}

// New creates a new GitLab API client. Host and token are validated here,
// before any network activity.
func New(config *golab.Config) (*Client, error) {
	if config == nil {
		return nil, golab.ErrConfigRequired
	}

	if config.Host == "" {
		return nil, golab.ErrHostRequired
	}

	if config.Token == "" {
		return nil, golab.ErrTokenRequired
	}

	version := config.APIVersion
	if version == "" {
		version = constants.DefaultAPIVersion
	}

	baseURL := normalizeHost(config.Host) + "/api/" + version

	httpClient := internalhttp.NewClient(baseURL, config.Token, buildHTTPOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// normalizeHost prefixes https:// when the host lacks a scheme and strips a
// trailing slash. A host that already carries a scheme is left unmodified.
func normalizeHost(host string) string {
	trimmed := strings.TrimSuffix(host, "/")

	if strings.Contains(trimmed, "://") {
		return trimmed
	}

	return "https://" + trimmed
}

// buildHTTPOptions builds HTTP client options from config.
func buildHTTPOptions(config *golab.Config) []internalhttp.Option {
	var opts []internalhttp.Option

	if config.Logger != nil {
		opts = append(opts, internalhttp.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, internalhttp.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, internalhttp.WithUserAgent(config.UserAgent))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, internalhttp.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		opts = append(opts, internalhttp.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	return opts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.projects = NewProjectsClient(c.httpClient)
	c.issues = NewIssuesClient(c.httpClient)
	c.mergeRequests = NewMergeRequestsClient(c.httpClient)
	c.users = NewUsersClient(c.httpClient)
	c.groups = NewGroupsClient(c.httpClient)
	c.branches = NewBranchesClient(c.httpClient)
	c.commits = NewCommitsClient(c.httpClient)
	c.pipelines = NewPipelinesClient(c.httpClient)
	c.labels = NewLabelsClient(c.httpClient)
	c.milestones = NewMilestonesClient(c.httpClient)
}

// BaseURL implements golab.Client.BaseURL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RateLimit implements golab.Client.RateLimit.
func (c *Client) RateLimit() golab.RateLimitState {
	return c.httpClient.RateLimit()
}

// Execute implements golab.Client.Execute.
func (c *Client) Execute(ctx context.Context, method, path string, body interface{}, opts *golab.RequestOptions) (*golab.Response, error) {
	req := &internalhttp.Request{
		Method: method,
		Path:   path,
		Body:   body,
	}

	if opts != nil {
		req.Headers = opts.Headers
		req.Query = opts.Query
	}

	return c.httpClient.Do(ctx, req)
}

// Paginate implements golab.Client.Paginate.
func (c *Client) Paginate(ctx context.Context, method, path string, body interface{}, params *golab.QueryParams) (*golab.Paged, error) {
	return c.httpClient.DoPaginated(ctx, method, path, body, params)
}

// Resource client accessors

// Projects implements golab.Client.Projects.
func (c *Client) Projects() golab.ProjectsClient {
	return c.projects
}

// Issues implements golab.Client.Issues.
func (c *Client) Issues() golab.IssuesClient {
	return c.issues
}

// MergeRequests implements golab.Client.MergeRequests.
func (c *Client) MergeRequests() golab.MergeRequestsClient {
	return c.mergeRequests
}

// Users implements golab.Client.Users.
func (c *Client) Users() golab.UsersClient {
	return c.users
}

// Groups implements golab.Client.Groups.
func (c *Client) Groups() golab.GroupsClient {
	return c.groups
}

// Branches implements golab.Client.Branches.
func (c *Client) Branches() golab.BranchesClient {
	return c.branches
}

// Commits implements golab.Client.Commits.
func (c *Client) Commits() golab.CommitsClient {
	return c.commits
}

// Pipelines implements golab.Client.Pipelines.
func (c *Client) Pipelines() golab.PipelinesClient {
	return c.pipelines
}

// Labels implements golab.Client.Labels.
func (c *Client) Labels() golab.LabelsClient {
	return c.labels
}

// Milestones implements golab.Client.Milestones.
func (c *Client) Milestones() golab.MilestonesClient {
	return c.milestones
}
