package cli

import (
	"fmt"
	"time"

	"github.com/ogurasousui/codex-employee-records/internal/core/report"
	"github.com/spf13/cobra"
)

func newReportCommand(deps Deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Pay history and monthly aggregate reports",
	}

	cmd.AddCommand(
		newReportHistoryCommand(deps),
		newReportTotalsCommand(deps),
	)

	return cmd
}

func newReportHistoryCommand(deps Deps) *cobra.Command {
	var (
		employeeID int64
		order      string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the pay history of one employee",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := deps.Reports.PayHistory(cmd.Context(), employeeID, report.Order(order))
			if err != nil {
				return err
			}

			writePayHistoryTable(cmd.OutOrStdout(), entries)
			return nil
		},
	}

	cmd.Flags().Int64Var(&employeeID, "employee", 0, "employee id")
	cmd.Flags().StringVar(&order, "order", string(report.OrderAsc), "sort order by period start: asc or desc")
	return cmd
}

func newReportTotalsCommand(deps Deps) *cobra.Command {
	var (
		groupBy string
		year    int
		month   int
	)

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Total pay per division or job title for one month",
		Long: `Total pay per division or job title for one month.

A payroll record counts toward the month its pay period ends in,
grouped by the employee's current assignment.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				totals []report.GroupTotal
				header string
				err    error
			)
			switch groupBy {
			case "division":
				header = "DIVISION"
				totals, err = deps.Reports.TotalPayByDivision(cmd.Context(), year, time.Month(month))
			case "jobtitle":
				header = "JOB TITLE"
				totals, err = deps.Reports.TotalPayByJobTitle(cmd.Context(), year, time.Month(month))
			default:
				return fmt.Errorf("invalid --by %q: expected division or jobtitle", groupBy)
			}
			if err != nil {
				return err
			}

			writeGroupTotalTable(cmd.OutOrStdout(), header, totals)
			return nil
		},
	}

	cmd.Flags().StringVar(&groupBy, "by", "division", "grouping: division or jobtitle")
	cmd.Flags().IntVar(&year, "year", 0, "report year")
	cmd.Flags().IntVar(&month, "month", 0, "report month (1-12)")
	return cmd
}
