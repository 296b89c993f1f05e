package cli

import (
	"fmt"

	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newEmployeeCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "employee",
		Short: "Manage employee records",
	}

	cmd.AddCommand(
		newEmployeeAddCommand(deps),
		newEmployeeUpdateCommand(deps),
		newEmployeeDeleteCommand(deps),
		newEmployeeGetCommand(deps),
		newEmployeeSearchCommand(deps),
		newEmployeeListCommand(deps),
	)

	return cmd
}

type employeeFlags struct {
	firstName  string
	lastName   string
	ssn        string
	email      string
	divisionID int64
	jobTitleID int64
}

func (f *employeeFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.firstName, "first-name", "", "employee first name")
	cmd.Flags().StringVar(&f.lastName, "last-name", "", "employee last name")
	cmd.Flags().StringVar(&f.ssn, "ssn", "", "nine digit SSN")
	cmd.Flags().StringVar(&f.email, "email", "", "employee email address")
	cmd.Flags().Int64Var(&f.divisionID, "division", 0, "division id")
	cmd.Flags().Int64Var(&f.jobTitleID, "job-title", 0, "job title id")
}

func newEmployeeAddCommand(deps Deps) *cobra.Command {
	var flags employeeFlags

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a new employee with division and job title",
		RunE: func(cmd *cobra.Command, args []string) error {
			created, err := deps.Employees.AddEmployee(cmd.Context(), employee.AddEmployeeInput{
				FirstName:  flags.firstName,
				LastName:   flags.lastName,
				SSN:        flags.ssn,
				Email:      flags.email,
				DivisionID: flags.divisionID,
				JobTitleID: flags.jobTitleID,
			})
			if err != nil {
				return err
			}

			deps.Logger.Info("employee created", zap.Int64("employee_id", created.ID))
			fmt.Fprintf(cmd.OutOrStdout(), "created employee %d\n", created.ID)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newEmployeeUpdateCommand(deps Deps) *cobra.Command {
	var (
		id    int64
		flags employeeFlags
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an employee and replace the current assignments",
		RunE: func(cmd *cobra.Command, args []string) error {
			updated, err := deps.Employees.UpdateEmployee(cmd.Context(), employee.UpdateEmployeeInput{
				ID:         id,
				FirstName:  flags.firstName,
				LastName:   flags.lastName,
				SSN:        flags.ssn,
				Email:      flags.email,
				DivisionID: flags.divisionID,
				JobTitleID: flags.jobTitleID,
			})
			if err != nil {
				return err
			}
			if !updated {
				fmt.Fprintf(cmd.OutOrStdout(), "employee %d not found, nothing updated\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "updated employee %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "employee id")
	flags.register(cmd)
	return cmd
}

func newEmployeeDeleteCommand(deps Deps) *cobra.Command {
	var id int64

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an employee record",
		RunE: func(cmd *cobra.Command, args []string) error {
			deleted, err := deps.Employees.DeleteEmployee(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !deleted {
				fmt.Fprintf(cmd.OutOrStdout(), "employee %d not found, nothing deleted\n", id)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "deleted employee %d\n", id)
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "employee id")
	return cmd
}

func newEmployeeGetCommand(deps Deps) *cobra.Command {
	var (
		id  int64
		ssn string
	)

	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up an employee by id or SSN",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				found *employee.Employee
				err   error
			)
			switch {
			case ssn != "":
				found, err = deps.Employees.GetEmployeeBySSN(cmd.Context(), ssn)
			default:
				found, err = deps.Employees.GetEmployee(cmd.Context(), id)
			}
			if err != nil {
				return err
			}

			writeEmployeeTable(cmd.OutOrStdout(), []*employee.Employee{found})
			return nil
		},
	}

	cmd.Flags().Int64Var(&id, "id", 0, "employee id")
	cmd.Flags().StringVar(&ssn, "ssn", "", "nine digit SSN")
	return cmd
}

func newEmployeeSearchCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <name>",
		Short: "Search employees by first or last name fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := deps.Employees.SearchByName(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			writeEmployeeTable(cmd.OutOrStdout(), employees)
			return nil
		},
	}

	return cmd
}

func newEmployeeListCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all employees",
		RunE: func(cmd *cobra.Command, args []string) error {
			employees, err := deps.Employees.ListEmployees(cmd.Context())
			if err != nil {
				return err
			}

			writeEmployeeTable(cmd.OutOrStdout(), employees)
			return nil
		},
	}

	return cmd
}
