package golab

import (
	"context"
	"time"
)

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a golab.Client.
//
// Host and Token are required; construction fails synchronously before any
// network activity when either is missing. Host may omit the scheme, in
// which case https:// is assumed. The derived base URL is
// <scheme://host>/api/<APIVersion>.
type Config struct {
	// Host is the GitLab instance, e.g. "gitlab.example.com" or
	// "https://gitlab.example.com".
	Host string

	// Token is the personal/project access token sent as PRIVATE-TOKEN on
	// every request.
	Token string

	// APIVersion selects the REST API version path segment. Defaults to
	// "v4".
	APIVersion string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Logger receives structured request/response logs. Optional.
	Logger Logger

	// Debug enables request/response logging at debug level.
	Debug bool

	// HTTPTimeout bounds each round trip. Zero means the default.
	HTTPTimeout time.Duration

	// RetryMax enables the retrying transport when greater than zero. The
	// default of zero performs no automatic retries anywhere.
	RetryMax     int
	RetryWaitMin time.Duration
	RetryWaitMax time.Duration
}

// ProjectsClient provides access to project resources.
type ProjectsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Project], error)
	Get(ctx context.Context, projectID int) (*Project, error)
	Create(ctx context.Context, request *ProjectCreateRequest) (*Project, error)
	Update(ctx context.Context, projectID int, request *ProjectUpdateRequest) (*Project, error)
	Delete(ctx context.Context, projectID int) error
}

// IssuesClient provides access to project issues.
type IssuesClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Issue], error)
	Get(ctx context.Context, projectID, issueIID int) (*Issue, error)
	Create(ctx context.Context, projectID int, request *IssueCreateRequest) (*Issue, error)
	Update(ctx context.Context, projectID, issueIID int, request *IssueUpdateRequest) (*Issue, error)
	Delete(ctx context.Context, projectID, issueIID int) error
}

// MergeRequestsClient provides access to project merge requests.
type MergeRequestsClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[MergeRequest], error)
	Get(ctx context.Context, projectID, mergeRequestIID int) (*MergeRequest, error)
	Create(ctx context.Context, projectID int, request *MergeRequestCreateRequest) (*MergeRequest, error)
	Update(ctx context.Context, projectID, mergeRequestIID int, request *MergeRequestUpdateRequest) (*MergeRequest, error)
	Delete(ctx context.Context, projectID, mergeRequestIID int) error
}

// UsersClient provides access to user resources.
type UsersClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[User], error)
	Get(ctx context.Context, userID int) (*User, error)
	Current(ctx context.Context) (*User, error)
}

// GroupsClient provides access to group resources.
type GroupsClient interface {
	List(ctx context.Context, params *QueryParams) (*Collection[Group], error)
	Get(ctx context.Context, groupID int) (*Group, error)
	Projects(ctx context.Context, groupID int, params *QueryParams) (*Collection[Project], error)
}

// BranchesClient provides access to repository branches.
type BranchesClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Branch], error)
	Get(ctx context.Context, projectID int, branch string) (*Branch, error)
	Create(ctx context.Context, projectID int, request *BranchCreateRequest) (*Branch, error)
	Delete(ctx context.Context, projectID int, branch string) error
}

// CommitsClient provides access to repository commits.
type CommitsClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Commit], error)
	Get(ctx context.Context, projectID int, sha string) (*Commit, error)
}

// PipelinesClient provides access to project pipelines.
type PipelinesClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Pipeline], error)
	Get(ctx context.Context, projectID, pipelineID int) (*Pipeline, error)
	Create(ctx context.Context, projectID int, request *PipelineCreateRequest) (*Pipeline, error)
	Cancel(ctx context.Context, projectID, pipelineID int) (*Pipeline, error)
}

// LabelsClient provides access to project labels.
type LabelsClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Label], error)
	Create(ctx context.Context, projectID int, request *LabelCreateRequest) (*Label, error)
	Update(ctx context.Context, projectID, labelID int, request *LabelUpdateRequest) (*Label, error)
	Delete(ctx context.Context, projectID, labelID int) error
}

// MilestonesClient provides access to project milestones.
type MilestonesClient interface {
	List(ctx context.Context, projectID int, params *QueryParams) (*Collection[Milestone], error)
	Get(ctx context.Context, projectID, milestoneID int) (*Milestone, error)
	Create(ctx context.Context, projectID int, request *MilestoneCreateRequest) (*Milestone, error)
	Update(ctx context.Context, projectID, milestoneID int, request *MilestoneUpdateRequest) (*Milestone, error)
	Delete(ctx context.Context, projectID, milestoneID int) error
}

// ResourceClients provides access to all resource-specific clients. Each
// resource operation is a pure call site over the two core operations; no
// resource client contains branching logic of its own.
type ResourceClients interface {
	Projects() ProjectsClient
	Issues() IssuesClient
	MergeRequests() MergeRequestsClient
	Users() UsersClient
	Groups() GroupsClient
	Branches() BranchesClient
	Commits() CommitsClient
	Pipelines() PipelinesClient
	Labels() LabelsClient
	Milestones() MilestonesClient
}

// Client is the typed GitLab API client.
type Client interface {
	ResourceClients

	// BaseURL returns the derived <scheme://host>/api/<version> base URL.
	BaseURL() string

	// RateLimit returns the rate-limit telemetry captured from the most
	// recent response.
	RateLimit() RateLimitState

	// Execute performs a single request against a relative endpoint path
	// and classifies its outcome. It is the generic escape hatch for
	// endpoints without a typed resource client.
	Execute(ctx context.Context, method, path string, body interface{}, opts *RequestOptions) (*Response, error)

	// Paginate drives Execute across the pages of a collection endpoint
	// and assembles a uniform result.
	Paginate(ctx context.Context, method, path string, body interface{}, params *QueryParams) (*Paged, error)
}
