package cli

import (
	"github.com/ogurasousui/codex-employee-records/internal/core/division"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/ogurasousui/codex-employee-records/internal/core/jobtitle"
	"github.com/ogurasousui/codex-employee-records/internal/core/payroll"
	"github.com/ogurasousui/codex-employee-records/internal/core/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Deps はコマンドツリーが利用するユースケース一式です。
type Deps struct {
	Employees employee.UseCase
	Divisions division.UseCase
	JobTitles jobtitle.UseCase
	Payroll   payroll.UseCase
	Reports   report.UseCase

	// DefaultPolicy は --policy 未指定時に使われる昇給方式です。
	DefaultPolicy payroll.Policy

	Logger *zap.Logger
}

// NewRootCommand は empcli のコマンドツリーを組み立てます。
func NewRootCommand(deps Deps) *cobra.Command {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}

	root := &cobra.Command{
		Use:   "empcli",
		Short: "Employee records management console",
		Long: `empcli manages employee records backed by PostgreSQL.

It covers employee CRUD with division and job title assignment,
payroll history, range based salary adjustments, and monthly
aggregate pay reports.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newEmployeeCommand(deps),
		newDivisionCommand(deps),
		newJobTitleCommand(deps),
		newPayrollCommand(deps),
		newReportCommand(deps),
	)

	return root
}
