package postgres

import (
	"testing"
	"time"

	"github.com/ogurasousui/codex-employee-records/internal/platform/config"
)

func TestBuildPoolConfig(t *testing.T) {
	t.Parallel()

	dbCfg := config.DatabaseConfig{
		Host:            "localhost",
		Port:            15432,
		User:            "user",
		Password:        "pass",
		Name:            "emp_records",
		SSLMode:         "disable",
		MaxOpenConns:    20,
		MaxIdleConns:    5,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 10 * time.Minute,
	}

	poolCfg, err := BuildPoolConfig(dbCfg)
	if err != nil {
		t.Fatalf("BuildPoolConfig returned error: %v", err)
	}

	if poolCfg.MaxConns != 20 {
		t.Errorf("expected MaxConns 20, got %d", poolCfg.MaxConns)
	}

	if poolCfg.MinConns != 5 {
		t.Errorf("expected MinConns 5, got %d", poolCfg.MinConns)
	}

	if poolCfg.MaxConnLifetime != 30*time.Minute {
		t.Errorf("unexpected MaxConnLifetime: %v", poolCfg.MaxConnLifetime)
	}

	if poolCfg.MaxConnIdleTime != 10*time.Minute {
		t.Errorf("unexpected MaxConnIdleTime: %v", poolCfg.MaxConnIdleTime)
	}

	if poolCfg.ConnConfig.Database != "emp_records" {
		t.Errorf("expected database emp_records, got %s", poolCfg.ConnConfig.Database)
	}
}

func TestRetriesFromAttempts(t *testing.T) {
	t.Parallel()

	cases := []struct {
		attempts int
		want     uint64
	}{
		{attempts: 0, want: 0},
		{attempts: 1, want: 0},
		{attempts: 3, want: 2},
	}

	for _, tc := range cases {
		if got := retriesFromAttempts(tc.attempts); got != tc.want {
			t.Errorf("retriesFromAttempts(%d) = %d, want %d", tc.attempts, got, tc.want)
		}
	}
}
