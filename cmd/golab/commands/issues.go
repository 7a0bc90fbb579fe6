package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewIssuesCommand creates the issues command group.
func NewIssuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "issues",
		Aliases: []string{"issue", "i"},
		Short:   "Manage issues",
		Long:    "List, inspect, create, and close GitLab project issues",
	}

	cmd.AddCommand(newIssuesListCommand())
	cmd.AddCommand(newIssuesGetCommand())
	cmd.AddCommand(newIssuesCreateCommand())
	cmd.AddCommand(newIssuesCloseCommand())

	return cmd
}

// IssuesListOptions holds the options for listing issues.
type IssuesListOptions struct {
	PerPage int
	State   string
	Labels  string
}

func newIssuesListCommand() *cobra.Command {
	var opts IssuesListOptions

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List issues",
		Long:  "List issues for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			return runIssuesListCommand(projectID, opts)
		},
	}

	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.State, "state", "", "filter by state (opened, closed)")
	cmd.Flags().StringVar(&opts.Labels, "labels", "", "filter by comma-separated label names")

	return cmd
}

func runIssuesListCommand(projectID int, opts IssuesListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := listParams(opts.PerPage)
	if opts.State != "" {
		params.WithFilter("state", opts.State)
	}

	if opts.Labels != "" {
		params.WithFilter("labels", opts.Labels)
	}

	issues, err := client.Issues().List(context.Background(), projectID, params)
	if err != nil {
		return fmt.Errorf("failed to list issues: %w", err)
	}

	return outputIssues(issues)
}

func outputIssues(issues *golab.Collection[golab.Issue]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(issues.Items)
	case OutputFormatYAML:
		return renderYAML(issues.Items)
	default:
		return outputIssuesTable(issues)
	}
}

func outputIssuesTable(issues *golab.Collection[golab.Issue]) error {
	if len(issues.Items) == 0 {
		_, _ = os.Stdout.WriteString("No issues found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IID", "State", "Title", "Labels")

	for _, issue := range issues.Items {
		_ = table.Append(strconv.Itoa(issue.IID), issue.State, issue.Title, strings.Join(issue.Labels, ", "))
	}

	_ = table.Render()

	if issues.TotalItems != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\n%d issues total\n", *issues.TotalItems)
	}

	return nil
}

func newIssuesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID ISSUE_IID",
		Short: "Get issue details",
		Long:  "Display detailed information about a specific issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, issueIID, err := parseProjectAndIID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			issue, err := client.Issues().Get(context.Background(), projectID, issueIID)
			if err != nil {
				return fmt.Errorf("failed to get issue %d: %w", issueIID, err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(issue)
			case OutputFormatYAML:
				return renderYAML(issue)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("IID", strconv.Itoa(issue.IID))
				_ = table.Append("Title", issue.Title)
				_ = table.Append("State", issue.State)

				if len(issue.Labels) > 0 {
					_ = table.Append("Labels", strings.Join(issue.Labels, ", "))
				}

				if issue.Author != nil {
					_ = table.Append("Author", issue.Author.Username)
				}

				if issue.WebURL != "" {
					_ = table.Append("URL", issue.WebURL)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

// IssuesCreateOptions holds the options for creating an issue.
type IssuesCreateOptions struct {
	Description string
	Labels      string
}

func newIssuesCreateCommand() *cobra.Command {
	var opts IssuesCreateOptions

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID TITLE",
		Short: "Create an issue",
		Long:  "Create a new issue in a project",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &golab.IssueCreateRequest{
				Title:       args[1],
				Description: opts.Description,
			}
			if opts.Labels != "" {
				request.Labels = strings.Split(opts.Labels, ",")
			}

			issue, err := client.Issues().Create(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to create issue: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created issue #%d '%s'\n", issue.IID, issue.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "issue description")
	cmd.Flags().StringVar(&opts.Labels, "labels", "", "comma-separated label names")

	return cmd
}

func newIssuesCloseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "close PROJECT_ID ISSUE_IID",
		Short: "Close an issue",
		Long:  "Close an open issue",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, issueIID, err := parseProjectAndIID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			stateEvent := "close"
			request := &golab.IssueUpdateRequest{
				StateEvent: &stateEvent,
			}

			issue, err := client.Issues().Update(context.Background(), projectID, issueIID, request)
			if err != nil {
				return fmt.Errorf("failed to close issue %d: %w", issueIID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully closed issue #%d '%s'\n", issue.IID, issue.Title)

			return nil
		},
	}
}

// parseProjectAndIID parses the positional PROJECT_ID and IID arguments.
func parseProjectAndIID(args []string) (int, int, error) {
	projectID, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid project ID '%s': %w", args[0], err)
	}

	iid, err := strconv.Atoi(args[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid IID '%s': %w", args[1], err)
	}

	return projectID, iid, nil
}
