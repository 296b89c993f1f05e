package cli

import (
	"fmt"

	"github.com/ogurasousui/codex-employee-records/internal/core/payroll"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newPayrollCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payroll",
		Short: "Manage payroll records and salary adjustments",
	}

	cmd.AddCommand(
		newPayrollAddCommand(deps),
		newPayrollRaiseCommand(deps),
	)

	return cmd
}

func newPayrollAddCommand(deps Deps) *cobra.Command {
	var (
		employeeID int64
		amount     string
		start      string
		end        string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a pay period for an employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedAmount, err := decimal.NewFromString(amount)
			if err != nil {
				return fmt.Errorf("invalid --amount %q: %w", amount, err)
			}
			periodStart, err := parseDateFlag("start", start)
			if err != nil {
				return err
			}
			periodEnd, err := parseDateFlag("end", end)
			if err != nil {
				return err
			}

			created, err := deps.Payroll.AddRecord(cmd.Context(), payroll.AddRecordInput{
				EmployeeID:  employeeID,
				Amount:      parsedAmount,
				PeriodStart: periodStart,
				PeriodEnd:   periodEnd,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "recorded payroll %d for employee %d\n", created.ID, created.EmployeeID)
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "employee id")
	cmd.Flags().StringVar(&amount, "amount", "", "pay amount for the period")
	cmd.Flags().StringVar(&start, "start", "", "period start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&end, "end", "", "period end date (YYYY-MM-DD)")
	return cmd
}

func newPayrollRaiseCommand(deps Deps) *cobra.Command {
	var (
		min     string
		max     string
		percent string
		policy  string
	)

	cmd := &cobra.Command{
		Use:   "raise",
		Short: "Raise pay for every record whose amount falls in a range",
		Long: `Raise pay for every payroll record whose amount falls in [min, max].

The in_place policy rewrites matching amounts directly. The new_period
policy leaves history intact and appends a new pay period per affected
employee, based on that employee's latest record.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsedMin, err := decimal.NewFromString(min)
			if err != nil {
				return fmt.Errorf("invalid --min %q: %w", min, err)
			}
			parsedMax, err := decimal.NewFromString(max)
			if err != nil {
				return fmt.Errorf("invalid --max %q: %w", max, err)
			}
			parsedPercent, err := decimal.NewFromString(percent)
			if err != nil {
				return fmt.Errorf("invalid --percent %q: %w", percent, err)
			}

			selected := deps.DefaultPolicy
			if policy != "" {
				selected, err = payroll.ParsePolicy(policy)
				if err != nil {
					return err
				}
			}

			affected, err := deps.Payroll.IncreaseInRange(cmd.Context(), payroll.IncreaseInput{
				Min:     parsedMin,
				Max:     parsedMax,
				Percent: parsedPercent,
				Policy:  selected,
			})
			if err != nil {
				return err
			}

			deps.Logger.Info("salary adjustment applied",
				zap.String("policy", string(selected)),
				zap.Int("affected", affected))
			fmt.Fprintf(cmd.OutOrStdout(), "adjusted %d payroll record(s) using %s policy\n", affected, selected)
			return nil
		},
	}

	cmd.Flags().StringVar(&min, "min", "", "inclusive lower bound of the amount range")
	cmd.Flags().StringVar(&max, "max", "", "inclusive upper bound of the amount range")
	cmd.Flags().StringVar(&percent, "percent", "", "raise percentage, e.g. 3.2 for +3.2%")
	cmd.Flags().StringVar(&policy, "policy", "", "raise policy: in_place or new_period (defaults to config)")
	return cmd
}
