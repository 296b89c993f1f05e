package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/ogurasousui/codex-employee-records/internal/core/division"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/ogurasousui/codex-employee-records/internal/core/jobtitle"
	"github.com/ogurasousui/codex-employee-records/internal/core/payroll"
	"github.com/ogurasousui/codex-employee-records/internal/core/report"
	"github.com/shopspring/decimal"
)

type stubEmployeeUseCase struct {
	employee.UseCase

	addInput  employee.AddEmployeeInput
	searchArg string
}

func (s *stubEmployeeUseCase) AddEmployee(_ context.Context, in employee.AddEmployeeInput) (*employee.Employee, error) {
	s.addInput = in
	return &employee.Employee{ID: 42, FirstName: in.FirstName, LastName: in.LastName, SSN: in.SSN, Email: in.Email}, nil
}

func (s *stubEmployeeUseCase) SearchByName(_ context.Context, fragment string) ([]*employee.Employee, error) {
	s.searchArg = fragment
	divisionName := "Engineering"
	return []*employee.Employee{
		{ID: 1, FirstName: "Grace", LastName: "Hopper", SSN: "123456789", Email: "grace@example.com", DivisionName: &divisionName},
	}, nil
}

type stubPayrollUseCase struct {
	payroll.UseCase

	increaseInput payroll.IncreaseInput
}

func (s *stubPayrollUseCase) IncreaseInRange(_ context.Context, in payroll.IncreaseInput) (int, error) {
	s.increaseInput = in
	return 3, nil
}

type stubReportUseCase struct {
	report.UseCase

	lastYear  int
	lastMonth time.Month
}

func (s *stubReportUseCase) TotalPayByDivision(_ context.Context, year int, month time.Month) ([]report.GroupTotal, error) {
	s.lastYear = year
	s.lastMonth = month
	return []report.GroupTotal{{Name: "Engineering", Total: decimal.RequireFromString("125000")}}, nil
}

func testDeps(employees *stubEmployeeUseCase, pay *stubPayrollUseCase, reports *stubReportUseCase) Deps {
	return Deps{
		Employees:     employees,
		Divisions:     division.UseCase(nil),
		JobTitles:     jobtitle.UseCase(nil),
		Payroll:       pay,
		Reports:       reports,
		DefaultPolicy: payroll.PolicyNewPeriod,
	}
}

func TestEmployeeAddCommand_PassesFlags(t *testing.T) {
	t.Parallel()

	employees := &stubEmployeeUseCase{}
	root := NewRootCommand(testDeps(employees, &stubPayrollUseCase{}, &stubReportUseCase{}))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{
		"employee", "add",
		"--first-name", "Grace",
		"--last-name", "Hopper",
		"--ssn", "123456789",
		"--email", "grace@example.com",
		"--division", "2",
		"--job-title", "1",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if employees.addInput.DivisionID != 2 || employees.addInput.JobTitleID != 1 {
		t.Fatalf("unexpected input %+v", employees.addInput)
	}
	if !strings.Contains(out.String(), "created employee 42") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestEmployeeSearchCommand_RendersTable(t *testing.T) {
	t.Parallel()

	employees := &stubEmployeeUseCase{}
	root := NewRootCommand(testDeps(employees, &stubPayrollUseCase{}, &stubReportUseCase{}))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"employee", "search", "Hopper"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if employees.searchArg != "Hopper" {
		t.Fatalf("expected search arg Hopper, got %q", employees.searchArg)
	}
	if !strings.Contains(out.String(), "Engineering") {
		t.Fatalf("expected division name in output, got %q", out.String())
	}
}

func TestPayrollRaiseCommand_DefaultsPolicyFromConfig(t *testing.T) {
	t.Parallel()

	pay := &stubPayrollUseCase{}
	root := NewRootCommand(testDeps(&stubEmployeeUseCase{}, pay, &stubReportUseCase{}))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{
		"payroll", "raise",
		"--min", "58000", "--max", "105000", "--percent", "3.2",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if pay.increaseInput.Policy != payroll.PolicyNewPeriod {
		t.Fatalf("expected default policy new_period, got %s", pay.increaseInput.Policy)
	}
	if !pay.increaseInput.Percent.Equal(decimal.RequireFromString("3.2")) {
		t.Fatalf("unexpected percent %s", pay.increaseInput.Percent)
	}
	if !strings.Contains(out.String(), "adjusted 3 payroll record(s)") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestPayrollRaiseCommand_ExplicitPolicyOverrides(t *testing.T) {
	t.Parallel()

	pay := &stubPayrollUseCase{}
	root := NewRootCommand(testDeps(&stubEmployeeUseCase{}, pay, &stubReportUseCase{}))

	root.SetOut(&bytes.Buffer{})
	root.SetArgs([]string{
		"payroll", "raise",
		"--min", "1000", "--max", "2000", "--percent", "10",
		"--policy", "in_place",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if pay.increaseInput.Policy != payroll.PolicyInPlace {
		t.Fatalf("expected in_place policy, got %s", pay.increaseInput.Policy)
	}
}

func TestReportTotalsCommand_GroupsByDivision(t *testing.T) {
	t.Parallel()

	reports := &stubReportUseCase{}
	root := NewRootCommand(testDeps(&stubEmployeeUseCase{}, &stubPayrollUseCase{}, reports))

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"report", "totals", "--by", "division", "--year", "2025", "--month", "3"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if reports.lastYear != 2025 || reports.lastMonth != time.March {
		t.Fatalf("unexpected report window %d-%d", reports.lastYear, reports.lastMonth)
	}
	if !strings.Contains(out.String(), "125000.00") {
		t.Fatalf("expected total in output, got %q", out.String())
	}
}

func TestReportTotalsCommand_RejectsUnknownGrouping(t *testing.T) {
	t.Parallel()

	root := NewRootCommand(testDeps(&stubEmployeeUseCase{}, &stubPayrollUseCase{}, &stubReportUseCase{}))

	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"report", "totals", "--by", "team", "--year", "2025", "--month", "3"})

	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for unknown grouping")
	}
}
