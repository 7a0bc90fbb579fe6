package commands

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/forgekit-io/golab/pkg/golab"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewMergeRequestsCommand creates the merge-requests command group.
func NewMergeRequestsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "merge-requests",
		Aliases: []string{"merge-request", "mr", "mrs"},
		Short:   "Manage merge requests",
		Long:    "List, inspect, and create GitLab merge requests",
	}

	cmd.AddCommand(newMergeRequestsListCommand())
	cmd.AddCommand(newMergeRequestsGetCommand())
	cmd.AddCommand(newMergeRequestsCreateCommand())

	return cmd
}

// MergeRequestsListOptions holds the options for listing merge requests.
type MergeRequestsListOptions struct {
	PerPage      int
	State        string
	TargetBranch string
}

func newMergeRequestsListCommand() *cobra.Command {
	var opts MergeRequestsListOptions

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List merge requests",
		Long:  "List merge requests for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			return runMergeRequestsListCommand(projectID, opts)
		},
	}

	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.State, "state", "", "filter by state (opened, closed, merged)")
	cmd.Flags().StringVar(&opts.TargetBranch, "target-branch", "", "filter by target branch")

	return cmd
}

func runMergeRequestsListCommand(projectID int, opts MergeRequestsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := listParams(opts.PerPage)
	if opts.State != "" {
		params.WithFilter("state", opts.State)
	}

	if opts.TargetBranch != "" {
		params.WithFilter("target_branch", opts.TargetBranch)
	}

	mergeRequests, err := client.MergeRequests().List(context.Background(), projectID, params)
	if err != nil {
		return fmt.Errorf("failed to list merge requests: %w", err)
	}

	return outputMergeRequests(mergeRequests)
}

func outputMergeRequests(mergeRequests *golab.Collection[golab.MergeRequest]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(mergeRequests.Items)
	case OutputFormatYAML:
		return renderYAML(mergeRequests.Items)
	default:
		return outputMergeRequestsTable(mergeRequests)
	}
}

func outputMergeRequestsTable(mergeRequests *golab.Collection[golab.MergeRequest]) error {
	if len(mergeRequests.Items) == 0 {
		_, _ = os.Stdout.WriteString("No merge requests found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("IID", "State", "Title", "Source", "Target")

	for _, mergeRequest := range mergeRequests.Items {
		_ = table.Append(strconv.Itoa(mergeRequest.IID), mergeRequest.State, mergeRequest.Title,
			mergeRequest.SourceBranch, mergeRequest.TargetBranch)
	}

	_ = table.Render()

	if mergeRequests.TotalItems != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\n%d merge requests total\n", *mergeRequests.TotalItems)
	}

	return nil
}

func newMergeRequestsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID MR_IID",
		Short: "Get merge request details",
		Long:  "Display detailed information about a specific merge request",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, mergeRequestIID, err := parseProjectAndIID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			mergeRequest, err := client.MergeRequests().Get(context.Background(), projectID, mergeRequestIID)
			if err != nil {
				return fmt.Errorf("failed to get merge request %d: %w", mergeRequestIID, err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(mergeRequest)
			case OutputFormatYAML:
				return renderYAML(mergeRequest)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("IID", strconv.Itoa(mergeRequest.IID))
				_ = table.Append("Title", mergeRequest.Title)
				_ = table.Append("State", mergeRequest.State)
				_ = table.Append("Source Branch", mergeRequest.SourceBranch)
				_ = table.Append("Target Branch", mergeRequest.TargetBranch)
				_ = table.Append("Draft", strconv.FormatBool(mergeRequest.Draft))

				if mergeRequest.Author != nil {
					_ = table.Append("Author", mergeRequest.Author.Username)
				}

				if mergeRequest.WebURL != "" {
					_ = table.Append("URL", mergeRequest.WebURL)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

// MergeRequestsCreateOptions holds the options for creating a merge request.
type MergeRequestsCreateOptions struct {
	Title              string
	Description        string
	RemoveSourceBranch bool
}

func newMergeRequestsCreateCommand() *cobra.Command {
	var opts MergeRequestsCreateOptions

	cmd := &cobra.Command{
		Use:   "create PROJECT_ID SOURCE_BRANCH TARGET_BRANCH",
		Short: "Create a merge request",
		Long:  "Create a new merge request between two branches",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			title := opts.Title
			if title == "" {
				title = fmt.Sprintf("Merge %s into %s", args[1], args[2])
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &golab.MergeRequestCreateRequest{
				Title:              title,
				SourceBranch:       args[1],
				TargetBranch:       args[2],
				Description:        opts.Description,
				RemoveSourceBranch: opts.RemoveSourceBranch,
			}

			mergeRequest, err := client.MergeRequests().Create(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to create merge request: %w", err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created merge request !%d '%s'\n", mergeRequest.IID, mergeRequest.Title)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Title, "title", "", "merge request title")
	cmd.Flags().StringVar(&opts.Description, "description", "", "merge request description")
	cmd.Flags().BoolVar(&opts.RemoveSourceBranch, "remove-source-branch", false, "remove source branch when merged")

	return cmd
}
