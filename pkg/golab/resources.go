package golab

import "time"

// Project represents a GitLab project.
type Project struct {
	ID                int        `json:"id"                           yaml:"id"`
	Name              string     `json:"name"                         yaml:"name"`
	Path              string     `json:"path"                         yaml:"path"`
	PathWithNamespace string     `json:"path_with_namespace"          yaml:"path_with_namespace"`
	Description       string     `json:"description"                  yaml:"description"`
	DefaultBranch     string     `json:"default_branch"               yaml:"default_branch"`
	Visibility        string     `json:"visibility"                   yaml:"visibility"`
	WebURL            string     `json:"web_url"                      yaml:"web_url"`
	Archived          bool       `json:"archived"                     yaml:"archived"`
	StarCount         int        `json:"star_count"                   yaml:"star_count"`
	ForksCount        int        `json:"forks_count"                  yaml:"forks_count"`
	OpenIssuesCount   int        `json:"open_issues_count"            yaml:"open_issues_count"`
	CreatedAt         *time.Time `json:"created_at,omitempty"         yaml:"created_at,omitempty"`
	LastActivityAt    *time.Time `json:"last_activity_at,omitempty"   yaml:"last_activity_at,omitempty"`
	Namespace         *Namespace `json:"namespace,omitempty"          yaml:"namespace,omitempty"`
}

// Namespace represents the namespace a project belongs to.
type Namespace struct {
	ID       int    `json:"id"        yaml:"id"`
	Name     string `json:"name"      yaml:"name"`
	Path     string `json:"path"      yaml:"path"`
	Kind     string `json:"kind"      yaml:"kind"`
	FullPath string `json:"full_path" yaml:"full_path"`
}

// ProjectCreateRequest represents a request to create a project.
type ProjectCreateRequest struct {
	Name                 string `json:"name"                             yaml:"name"`
	Path                 string `json:"path,omitempty"                   yaml:"path,omitempty"`
	Description          string `json:"description,omitempty"            yaml:"description,omitempty"`
	Visibility           string `json:"visibility,omitempty"             yaml:"visibility,omitempty"`
	DefaultBranch        string `json:"default_branch,omitempty"         yaml:"default_branch,omitempty"`
	InitializeWithReadme bool   `json:"initialize_with_readme,omitempty" yaml:"initialize_with_readme,omitempty"`
}

// ProjectUpdateRequest represents a request to update a project. Nil fields
// are left unchanged.
type ProjectUpdateRequest struct {
	Name          *string `json:"name,omitempty"           yaml:"name,omitempty"`
	Description   *string `json:"description,omitempty"    yaml:"description,omitempty"`
	Visibility    *string `json:"visibility,omitempty"     yaml:"visibility,omitempty"`
	DefaultBranch *string `json:"default_branch,omitempty" yaml:"default_branch,omitempty"`
	Archived      *bool   `json:"archived,omitempty"       yaml:"archived,omitempty"`
}

// User represents a GitLab user.
type User struct {
	ID        int        `json:"id"                   yaml:"id"`
	Username  string     `json:"username"             yaml:"username"`
	Name      string     `json:"name"                 yaml:"name"`
	State     string     `json:"state"                yaml:"state"`
	Email     string     `json:"email,omitempty"      yaml:"email,omitempty"`
	AvatarURL string     `json:"avatar_url"           yaml:"avatar_url"`
	WebURL    string     `json:"web_url"              yaml:"web_url"`
	IsAdmin   bool       `json:"is_admin,omitempty"   yaml:"is_admin,omitempty"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}

// Issue represents a project issue.
type Issue struct {
	ID          int        `json:"id"                   yaml:"id"`
	IID         int        `json:"iid"                  yaml:"iid"`
	ProjectID   int        `json:"project_id"           yaml:"project_id"`
	Title       string     `json:"title"                yaml:"title"`
	Description string     `json:"description"          yaml:"description"`
	State       string     `json:"state"                yaml:"state"`
	Labels      []string   `json:"labels"               yaml:"labels"`
	Author      *User      `json:"author,omitempty"     yaml:"author,omitempty"`
	Assignees   []User     `json:"assignees,omitempty"  yaml:"assignees,omitempty"`
	WebURL      string     `json:"web_url"              yaml:"web_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// IssueCreateRequest represents a request to create an issue.
type IssueCreateRequest struct {
	Title       string   `json:"title"                  yaml:"title"`
	Description string   `json:"description,omitempty"  yaml:"description,omitempty"`
	Labels      []string `json:"labels,omitempty"       yaml:"labels,omitempty"`
	AssigneeIDs []int    `json:"assignee_ids,omitempty" yaml:"assignee_ids,omitempty"`
	MilestoneID *int     `json:"milestone_id,omitempty" yaml:"milestone_id,omitempty"`
}

// IssueUpdateRequest represents a request to update an issue. StateEvent
// accepts "close" or "reopen".
type IssueUpdateRequest struct {
	Title       *string   `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string   `json:"description,omitempty" yaml:"description,omitempty"`
	Labels      *[]string `json:"labels,omitempty"      yaml:"labels,omitempty"`
	StateEvent  *string   `json:"state_event,omitempty" yaml:"state_event,omitempty"`
}

// MergeRequest represents a project merge request.
type MergeRequest struct {
	ID           int        `json:"id"                   yaml:"id"`
	IID          int        `json:"iid"                  yaml:"iid"`
	ProjectID    int        `json:"project_id"           yaml:"project_id"`
	Title        string     `json:"title"                yaml:"title"`
	Description  string     `json:"description"          yaml:"description"`
	State        string     `json:"state"                yaml:"state"`
	SourceBranch string     `json:"source_branch"        yaml:"source_branch"`
	TargetBranch string     `json:"target_branch"        yaml:"target_branch"`
	Draft        bool       `json:"draft"                yaml:"draft"`
	MergeStatus  string     `json:"merge_status"         yaml:"merge_status"`
	Author       *User      `json:"author,omitempty"     yaml:"author,omitempty"`
	WebURL       string     `json:"web_url"              yaml:"web_url"`
	CreatedAt    *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// MergeRequestCreateRequest represents a request to create a merge request.
type MergeRequestCreateRequest struct {
	Title              string `json:"title"                          yaml:"title"`
	SourceBranch       string `json:"source_branch"                  yaml:"source_branch"`
	TargetBranch       string `json:"target_branch"                  yaml:"target_branch"`
	Description        string `json:"description,omitempty"          yaml:"description,omitempty"`
	RemoveSourceBranch bool   `json:"remove_source_branch,omitempty" yaml:"remove_source_branch,omitempty"`
}

// MergeRequestUpdateRequest represents a request to update a merge request.
// StateEvent accepts "close" or "reopen".
type MergeRequestUpdateRequest struct {
	Title        *string `json:"title,omitempty"         yaml:"title,omitempty"`
	Description  *string `json:"description,omitempty"   yaml:"description,omitempty"`
	TargetBranch *string `json:"target_branch,omitempty" yaml:"target_branch,omitempty"`
	StateEvent   *string `json:"state_event,omitempty"   yaml:"state_event,omitempty"`
}

// Group represents a GitLab group or subgroup.
type Group struct {
	ID          int    `json:"id"                  yaml:"id"`
	Name        string `json:"name"                yaml:"name"`
	Path        string `json:"path"                yaml:"path"`
	FullPath    string `json:"full_path"           yaml:"full_path"`
	ParentID    *int   `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
	Description string `json:"description"         yaml:"description"`
	Visibility  string `json:"visibility"          yaml:"visibility"`
	WebURL      string `json:"web_url"             yaml:"web_url"`
}

// Branch represents a repository branch.
type Branch struct {
	Name      string  `json:"name"             yaml:"name"`
	Merged    bool    `json:"merged"           yaml:"merged"`
	Protected bool    `json:"protected"        yaml:"protected"`
	Default   bool    `json:"default"          yaml:"default"`
	Commit    *Commit `json:"commit,omitempty" yaml:"commit,omitempty"`
}

// BranchCreateRequest represents a request to create a branch. Ref is the
// branch name or commit SHA to create the branch from.
type BranchCreateRequest struct {
	Branch string `json:"branch" yaml:"branch"`
	Ref    string `json:"ref"    yaml:"ref"`
}

// Commit represents a repository commit.
type Commit struct {
	ID             string     `json:"id"                       yaml:"id"`
	ShortID        string     `json:"short_id"                 yaml:"short_id"`
	Title          string     `json:"title"                    yaml:"title"`
	Message        string     `json:"message"                  yaml:"message"`
	AuthorName     string     `json:"author_name"              yaml:"author_name"`
	AuthorEmail    string     `json:"author_email"             yaml:"author_email"`
	AuthoredDate   *time.Time `json:"authored_date,omitempty"  yaml:"authored_date,omitempty"`
	CommitterName  string     `json:"committer_name"           yaml:"committer_name"`
	CommittedDate  *time.Time `json:"committed_date,omitempty" yaml:"committed_date,omitempty"`
	WebURL         string     `json:"web_url"                  yaml:"web_url"`
}

// Pipeline represents a project pipeline.
type Pipeline struct {
	ID        int        `json:"id"                   yaml:"id"`
	IID       int        `json:"iid"                  yaml:"iid"`
	ProjectID int        `json:"project_id"           yaml:"project_id"`
	Status    string     `json:"status"               yaml:"status"`
	Ref       string     `json:"ref"                  yaml:"ref"`
	SHA       string     `json:"sha"                  yaml:"sha"`
	Source    string     `json:"source"               yaml:"source"`
	WebURL    string     `json:"web_url"              yaml:"web_url"`
	CreatedAt *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// PipelineVariable represents a variable passed when triggering a pipeline.
type PipelineVariable struct {
	Key   string `json:"key"   yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// PipelineCreateRequest represents a request to trigger a pipeline on a ref.
type PipelineCreateRequest struct {
	Ref       string             `json:"ref"                 yaml:"ref"`
	Variables []PipelineVariable `json:"variables,omitempty" yaml:"variables,omitempty"`
}

// Label represents a project label.
type Label struct {
	ID          int    `json:"id"                 yaml:"id"`
	Name        string `json:"name"               yaml:"name"`
	Color       string `json:"color"              yaml:"color"`
	Description string `json:"description"        yaml:"description"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// LabelCreateRequest represents a request to create a label.
type LabelCreateRequest struct {
	Name        string `json:"name"                  yaml:"name"`
	Color       string `json:"color"                 yaml:"color"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// LabelUpdateRequest represents a request to update a label. Nil fields are
// left unchanged.
type LabelUpdateRequest struct {
	NewName     *string `json:"new_name,omitempty"    yaml:"new_name,omitempty"`
	Color       *string `json:"color,omitempty"       yaml:"color,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Milestone represents a project milestone.
type Milestone struct {
	ID          int        `json:"id"                   yaml:"id"`
	IID         int        `json:"iid"                  yaml:"iid"`
	ProjectID   int        `json:"project_id"           yaml:"project_id"`
	Title       string     `json:"title"                yaml:"title"`
	Description string     `json:"description"          yaml:"description"`
	State       string     `json:"state"                yaml:"state"`
	DueDate     string     `json:"due_date,omitempty"   yaml:"due_date,omitempty"`
	StartDate   string     `json:"start_date,omitempty" yaml:"start_date,omitempty"`
	WebURL      string     `json:"web_url"              yaml:"web_url"`
	CreatedAt   *time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" yaml:"updated_at,omitempty"`
}

// MilestoneCreateRequest represents a request to create a milestone. Dates
// use the ISO 8601 date format (YYYY-MM-DD).
type MilestoneCreateRequest struct {
	Title       string `json:"title"                 yaml:"title"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     string `json:"due_date,omitempty"    yaml:"due_date,omitempty"`
	StartDate   string `json:"start_date,omitempty"  yaml:"start_date,omitempty"`
}

// MilestoneUpdateRequest represents a request to update a milestone.
// StateEvent accepts "close" or "activate".
type MilestoneUpdateRequest struct {
	Title       *string `json:"title,omitempty"       yaml:"title,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"    yaml:"due_date,omitempty"`
	StartDate   *string `json:"start_date,omitempty"  yaml:"start_date,omitempty"`
	StateEvent  *string `json:"state_event,omitempty" yaml:"state_event,omitempty"`
}
