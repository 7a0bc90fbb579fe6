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

// NewPipelinesCommand creates the pipelines command group.
func NewPipelinesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pipelines",
		Aliases: []string{"pipeline", "pl"},
		Short:   "Manage pipelines",
		Long:    "List, trigger, and cancel GitLab CI pipelines",
	}

	cmd.AddCommand(newPipelinesListCommand())
	cmd.AddCommand(newPipelinesRunCommand())
	cmd.AddCommand(newPipelinesCancelCommand())

	return cmd
}

// PipelinesListOptions holds the options for listing pipelines.
type PipelinesListOptions struct {
	PerPage int
	Status  string
	Ref     string
}

func newPipelinesListCommand() *cobra.Command {
	var opts PipelinesListOptions

	cmd := &cobra.Command{
		Use:   "list PROJECT_ID",
		Short: "List pipelines",
		Long:  "List pipelines for a project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid project ID '%s': %w", args[0], err)
			}

			return runPipelinesListCommand(projectID, opts)
		},
	}

	cmd.Flags().IntVar(&opts.PerPage, "per-page", 0, "results per page")
	cmd.Flags().StringVar(&opts.Status, "status", "", "filter by status (running, success, failed, canceled)")
	cmd.Flags().StringVar(&opts.Ref, "ref", "", "filter by ref")

	return cmd
}

func runPipelinesListCommand(projectID int, opts PipelinesListOptions) error {
	client, err := CreateClient()
	if err != nil {
		return err
	}

	params := listParams(opts.PerPage)
	if opts.Status != "" {
		params.WithFilter("status", opts.Status)
	}

	if opts.Ref != "" {
		params.WithFilter("ref", opts.Ref)
	}

	pipelines, err := client.Pipelines().List(context.Background(), projectID, params)
	if err != nil {
		return fmt.Errorf("failed to list pipelines: %w", err)
	}

	return outputPipelines(pipelines)
}

func outputPipelines(pipelines *golab.Collection[golab.Pipeline]) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		return renderJSON(pipelines.Items)
	case OutputFormatYAML:
		return renderYAML(pipelines.Items)
	default:
		return outputPipelinesTable(pipelines)
	}
}

func outputPipelinesTable(pipelines *golab.Collection[golab.Pipeline]) error {
	if len(pipelines.Items) == 0 {
		_, _ = os.Stdout.WriteString("No pipelines found\n")

		return nil
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Status", "Ref", "SHA")

	for _, pipeline := range pipelines.Items {
		sha := pipeline.SHA
		if len(sha) > 8 {
			sha = sha[:8]
		}

		_ = table.Append(strconv.Itoa(pipeline.ID), pipeline.Status, pipeline.Ref, sha)
	}

	_ = table.Render()

	return nil
}

func newPipelinesRunCommand() *cobra.Command {
	var variables map[string]string

	cmd := &cobra.Command{
		Use:   "run PROJECT_ID REF",
		Short: "Trigger a pipeline",
		Long:  "Trigger a new pipeline on the given branch or tag",
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

			request := &golab.PipelineCreateRequest{
				Ref: args[1],
			}
			for key, value := range variables {
				request.Variables = append(request.Variables, golab.PipelineVariable{Key: key, Value: value})
			}

			pipeline, err := client.Pipelines().Create(context.Background(), projectID, request)
			if err != nil {
				return fmt.Errorf("failed to trigger pipeline on '%s': %w", args[1], err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Triggered pipeline %d on '%s' (%s)\n", pipeline.ID, pipeline.Ref, pipeline.Status)

			return nil
		},
	}

	cmd.Flags().StringToStringVar(&variables, "variables", nil, "pipeline variables (key=value)")

	return cmd
}

func newPipelinesCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel PROJECT_ID PIPELINE_ID",
		Short: "Cancel a pipeline",
		Long:  "Cancel a running pipeline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			projectID, pipelineID, err := parseProjectAndIID(args)
			if err != nil {
				return err
			}

			client, err := CreateClient()
			if err != nil {
				return err
			}

			pipeline, err := client.Pipelines().Cancel(context.Background(), projectID, pipelineID)
			if err != nil {
				return fmt.Errorf("failed to cancel pipeline %d: %w", pipelineID, err)
			}

			_, _ = fmt.Fprintf(os.Stdout, "Canceled pipeline %d (%s)\n", pipeline.ID, pipeline.Status)

			return nil
		},
	}
}
