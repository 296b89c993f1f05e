package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/codex-employee-records/internal/adapters/cli"
	"github.com/ogurasousui/codex-employee-records/internal/adapters/repository/postgres"
	"github.com/ogurasousui/codex-employee-records/internal/core/division"
	"github.com/ogurasousui/codex-employee-records/internal/core/employee"
	"github.com/ogurasousui/codex-employee-records/internal/core/jobtitle"
	"github.com/ogurasousui/codex-employee-records/internal/core/payroll"
	"github.com/ogurasousui/codex-employee-records/internal/core/report"
	"github.com/ogurasousui/codex-employee-records/internal/platform/config"
	pg "github.com/ogurasousui/codex-employee-records/internal/platform/db/postgres"
	"github.com/ogurasousui/codex-employee-records/internal/platform/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	dbPool, err := pg.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database pool: %v", err)
	}
	defer dbPool.Close()

	txManager := pg.NewTransactionManager(dbPool)

	employeeRepo := postgres.NewEmployeeRepository(dbPool)
	assignmentRepo := postgres.NewAssignmentRepository(dbPool)
	divisionRepo := postgres.NewDivisionRepository(dbPool)
	jobTitleRepo := postgres.NewJobTitleRepository(dbPool)
	payrollRepo := postgres.NewPayrollRepository(dbPool)
	reportRepo := postgres.NewReportRepository(dbPool)

	deps := cli.Deps{
		Employees:     employee.NewService(employeeRepo, assignmentRepo, divisionRepo, jobTitleRepo, txManager),
		Divisions:     division.NewService(divisionRepo, txManager),
		JobTitles:     jobtitle.NewService(jobTitleRepo, txManager),
		Payroll:       payroll.NewService(payrollRepo, employeeRepo, txManager),
		Reports:       report.NewService(reportRepo, txManager),
		DefaultPolicy: payroll.Policy(cfg.Payroll.DefaultPolicy),
		Logger:        logger,
	}

	root := cli.NewRootCommand(deps)
	if err := root.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
