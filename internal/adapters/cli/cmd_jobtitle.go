package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newJobTitleCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobtitle",
		Short: "Manage the job title list",
	}

	add := &cobra.Command{
		Use:   "add <title>",
		Short: "Create a job title",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := deps.JobTitles.CreateJobTitle(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created job title %d (%s)\n", created.ID, created.Title)
			return nil
		},
	}

	var id int64
	get := &cobra.Command{
		Use:   "get",
		Short: "Look up a job title by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := deps.JobTitles.GetJobTitle(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", found.ID, found.Title)
			return nil
		},
	}
	get.Flags().Int64Var(&id, "id", 0, "job title id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all job titles",
		RunE: func(cmd *cobra.Command, args []string) error {
			titles, err := deps.JobTitles.ListJobTitles(cmd.Context())
			if err != nil {
				return err
			}
			for _, title := range titles {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", title.ID, title.Title)
			}
			return nil
		},
	}

	cmd.AddCommand(add, get, list)
	return cmd
}
