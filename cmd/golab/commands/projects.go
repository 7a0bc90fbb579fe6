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

// NewProjectsCommand creates the projects command group.
func NewProjectsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"project", "p"},
		Short:   "Manage projects",
		Long:    "List, inspect, create, and delete GitLab projects",
	}

	cmd.AddCommand(newProjectsListCommand())
	cmd.AddCommand(newProjectsGetCommand())
	cmd.AddCommand(newProjectsCreateCommand())
	cmd.AddCommand(newProjectsDeleteCommand())

	return cmd
}

// ProjectsListOptions holds the options for listing projects.
type ProjectsListOptions struct {
	PerPage int
	Search  string
	OrderBy string
}

func newProjectsListCommand() *cobra.Command {
	var opts ProjectsListOptions

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List projects",
		Long:  "List all projects visible to the authenticated user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProjectsListCommand(opts)
		},
	}

	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.Search, "search", "", "search projects by name")
	cmd.Flags().StringVar(&opts.OrderBy, "order-by", "", "order projects by field")

	return cmd
}

func runProjectsListCommand(opts ProjectsListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := listParams(opts.PerPage)
	if opts.Search != "" {
		params.WithSearch(opts.Search)
	}

	if opts.OrderBy != "" {
		params.WithOrderBy(opts.OrderBy)
	}

	projects, err := client.Projects().List(context.Background(), params)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	return outputProjects(projects)
}

func outputProjects(projects *golab.Collection[golab.Project]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(projects.Items)
	case OutputFormatYAML:
		return renderYAML(projects.Items)
	default:
		return outputProjectsTable(projects)
	}
}

func outputProjectsTable(projects *golab.Collection[golab.Project]) error {
	if len(projects.Items) == 0 {
		_, _ = os.Stdout.WriteString("No projects found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Path", "Visibility", "Default Branch")

	for _, project := range projects.Items {
		_ = table.Append(strconv.Itoa(project.ID), project.PathWithNamespace, project.Visibility, project.DefaultBranch)
	}

	_ = table.Render()

	if projects.TotalItems != nil {
		_, _ = fmt.Fprintf(os.Stdout, "\n%d projects total\n", *projects.TotalItems)
	}

	return nil
}

func newProjectsGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PROJECT_ID",
		Short: "Get project details",
		Long:  "Display detailed information about a specific project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			project, err := client.Projects().Get(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to get project %d: %w", projectID, err)
			}

			output := viper.GetString("output")
			switch output {
			case OutputFormatJSON:
				return renderJSON(project)
			case OutputFormatYAML:
				return renderYAML(project)
			default:
				table := tablewriter.NewWriter(os.Stdout)
				table.Header("Property", "Value")

				_ = table.Append("ID", strconv.Itoa(project.ID))
				_ = table.Append("Name", project.Name)
				_ = table.Append("Path", project.PathWithNamespace)
				_ = table.Append("Visibility", project.Visibility)
				_ = table.Append("Default Branch", project.DefaultBranch)

				if project.Description != "" {
					_ = table.Append("Description", project.Description)
				}

				if project.WebURL != "" {
					_ = table.Append("URL", project.WebURL)
				}

				_ = table.Render()
			}

			return nil
		},
	}
}

// ProjectsCreateOptions holds the options for creating a project.
type ProjectsCreateOptions struct {
	Description string
	Visibility  string
}

func newProjectsCreateCommand() *cobra.Command {
	var opts ProjectsCreateOptions

	cmd := &cobra.Command{
		Use:   "create PROJECT_NAME",
		Short: "Create a project",
		Long:  "Create a new GitLab project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient()
			if err != nil {
				return err
			}

			request := &golab.ProjectCreateRequest{
				Name:        args[0],
				Description: opts.Description,
				Visibility:  opts.Visibility,
			}

			project, err := client.Projects().Create(context.Background(), request)
			if err != nil {
				return fmt.Errorf("failed to create project '%s': %w", args[0], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully created project '%s' with ID %d\n", project.PathWithNamespace, project.ID)

			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Description, "description", "", "project description")
	cmd.Flags().StringVar(&opts.Visibility, "visibility", "", "project visibility (private, internal, public)")

	return cmd
}

func newProjectsDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete PROJECT_ID",
		Short: "Delete a project",
		Long:  "Delete a GitLab project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			if !force {
				_, _ = fmt.Fprintf(os.Stdout, "Really delete project %d? (y/N): ", projectID)

				var response string

				_, _ = fmt.Scanln(&response)
				if response != "y" && response != "Y" {
					_, _ = os.Stdout.WriteString("Cancelled\n")

					return nil
				}
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			err = client.Projects().Delete(context.Background(), projectID)
			if err != nil {
				return fmt.Errorf("failed to delete project %d: %w", projectID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Successfully deleted project %d\n", projectID)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "force deletion without confirmation")

	return cmd
}
