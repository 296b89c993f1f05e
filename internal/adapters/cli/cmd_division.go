package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDivisionCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "division",
		Short: "Manage the division list",
	}

	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a division",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := deps.Divisions.CreateDivision(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created division %d (%s)\n", created.ID, created.Name)
			return nil
		},
	}

	var id int64
	get := &cobra.Command{
		Use:   "get",
		Short: "Look up a division by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			found, err := deps.Divisions.GetDivision(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", found.ID, found.Name)
			return nil
		},
	}
	get.Flags().Int64Var(&id, "id", 0, "division id")

	list := &cobra.Command{
		Use:   "list",
		Short: "List all divisions",
		RunE: func(cmd *cobra.Command, args []string) error {
			divisions, err := deps.Divisions.ListDivisions(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range divisions {
				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", d.ID, d.Name)
			}
			return nil
		},
	}

	cmd.AddCommand(add, get, list)
	return cmd
}
