package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config はアプリケーション全体の設定を表現します。
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Logging  LoggingConfig  `yaml:"logging"`
	Payroll  PayrollConfig  `yaml:"payroll"`
}

// DatabaseConfig は PostgreSQL 接続に関する設定です。
type DatabaseConfig struct {
	Host               string        `yaml:"host"`
	Port               int           `yaml:"port"`
	User               string        `yaml:"user"`
	Password           string        `yaml:"password"`
	Name               string        `yaml:"name"`
	SSLMode            string        `yaml:"ssl_mode"`
	MaxOpenConns       int           `yaml:"max_open_conns"`
	MaxIdleConns       int           `yaml:"max_idle_conns"`
	ConnMaxLifetime    time.Duration `yaml:"-"`
	ConnMaxIdleTime    time.Duration `yaml:"-"`
	ConnMaxLifetimeRaw string        `yaml:"conn_max_lifetime"`
	ConnMaxIdleTimeRaw string        `yaml:"conn_max_idle_time"`
	ConnectMaxAttempts int           `yaml:"connect_max_attempts"`
	ConnectBackoff     time.Duration `yaml:"-"`
	ConnectBackoffRaw  string        `yaml:"connect_backoff"`
}

// LoggingConfig はログ出力に関する設定です。
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PayrollConfig は給与調整に関する設定です。
type PayrollConfig struct {
	// DefaultPolicy は increase 実行時に --policy 省略時へ適用される調整方針です。
	DefaultPolicy string `yaml:"default_policy"`
}

const (
	defaultConnectMaxAttempts = 3
	defaultConnectBackoff     = time.Second
)

// Load は指定されたパスから設定ファイルを読み込みます。
// データベース設定は .env ファイルおよび環境変数 (DB_HOST など) で上書きできます。
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse yaml: %w", err)
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}

	if err := cfg.validateAndNormalize(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyEnvOverrides は .env ファイルと環境変数からデータベース設定を上書きします。
// .env が存在しない場合は無視します。
func (c *Config) applyEnvOverrides() error {
	_ = godotenv.Load()

	db := &c.Database
	if v := os.Getenv("DB_HOST"); v != "" {
		db.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config: DB_PORT: %w", err)
		}
		db.Port = port
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		db.Name = v
	}
	if v := os.Getenv("DB_USER"); v != "" {
		db.User = v
	}
	if v := os.Getenv("DB_PASS"); v != "" {
		db.Password = v
	}
	return nil
}

func (c *Config) validateAndNormalize() error {
	if err := c.Database.validateAndNormalize(); err != nil {
		return err
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: logging.level %q is not supported", c.Logging.Level)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}

	switch c.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("config: logging.format %q is not supported", c.Logging.Format)
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "console"
	}

	switch c.Payroll.DefaultPolicy {
	case "", "in_place", "new_period":
	default:
		return fmt.Errorf("config: payroll.default_policy %q is not supported", c.Payroll.DefaultPolicy)
	}
	if c.Payroll.DefaultPolicy == "" {
		c.Payroll.DefaultPolicy = "new_period"
	}

	return nil
}

func (d *DatabaseConfig) validateAndNormalize() error {
	if d.Host == "" {
		return fmt.Errorf("config: database.host must be set")
	}
	if d.Port == 0 {
		return fmt.Errorf("config: database.port must be set")
	}
	if d.User == "" {
		return fmt.Errorf("config: database.user must be set")
	}
	if d.Name == "" {
		return fmt.Errorf("config: database.name must be set")
	}
	if d.SSLMode == "" {
		d.SSLMode = "disable"
	}

	lifetime, err := parseDurationAllowEmpty(d.ConnMaxLifetimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_lifetime: %w", err)
	}
	d.ConnMaxLifetime = lifetime

	idleTime, err := parseDurationAllowEmpty(d.ConnMaxIdleTimeRaw)
	if err != nil {
		return fmt.Errorf("config: database.conn_max_idle_time: %w", err)
	}
	d.ConnMaxIdleTime = idleTime

	if d.ConnectMaxAttempts < 0 {
		return fmt.Errorf("config: database.connect_max_attempts must not be negative")
	}
	if d.ConnectMaxAttempts == 0 {
		d.ConnectMaxAttempts = defaultConnectMaxAttempts
	}

	connectBackoff, err := parseDurationAllowEmpty(d.ConnectBackoffRaw)
	if err != nil {
		return fmt.Errorf("config: database.connect_backoff: %w", err)
	}
	if connectBackoff == 0 {
		connectBackoff = defaultConnectBackoff
	}
	d.ConnectBackoff = connectBackoff

	return nil
}

func parseDurationAllowEmpty(raw string) (time.Duration, error) {
	if raw == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, err
	}
	return d, nil
}

// DSN は pgx 用の接続文字列を返します。認証情報は URL エスケープされます。
func (d DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: "sslmode=" + d.SSLMode,
	}
	return u.String()
}
