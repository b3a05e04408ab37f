package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"go-bank-console/bank"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Run modes.
const (
	ModeConsole = "console"
	ModeHTTP    = "http"
)

// Config holds the application configuration.
type Config struct {
	Mode      string
	HTTPAddr  string
	LogLevel  slog.Level
	LogFormat string
	Policy    bank.Policy
}

// Load reads configuration from the environment. A .env file in the working
// directory, or the file named by BANK_ENV_FILE, is loaded first; variables
// already set in the environment win over the file.
func Load() (*Config, error) {
	envFile := os.Getenv("BANK_ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", envFile, err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a variable lookup. Unset variables take defaults.
func FromEnv(getenv func(string) string) (*Config, error) {
	var problems []string
	get := func(key, def string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return def
	}

	cfg := &Config{
		Mode:      strings.ToLower(get("BANK_MODE", ModeConsole)),
		HTTPAddr:  get("BANK_HTTP_ADDR", ":8080"),
		LogFormat: strings.ToLower(get("BANK_LOG_FORMAT", "text")),
		Policy:    bank.DefaultPolicy(),
	}
	cfg.Policy.Branch = get("BANK_BRANCH_CODE", bank.DefaultBranch)

	if err := cfg.LogLevel.UnmarshalText([]byte(get("BANK_LOG_LEVEL", "info"))); err != nil {
		problems = append(problems, "BANK_LOG_LEVEL: "+err.Error())
	}
	if v := strings.TrimSpace(getenv("BANK_WITHDRAWAL_LIMIT")); v != "" {
		limit, err := decimal.NewFromString(v)
		if err != nil {
			problems = append(problems, "BANK_WITHDRAWAL_LIMIT: "+err.Error())
		} else {
			cfg.Policy.WithdrawalLimit = limit
		}
	}
	if v := strings.TrimSpace(getenv("BANK_MAX_WITHDRAWALS")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			problems = append(problems, "BANK_MAX_WITHDRAWALS: "+err.Error())
		} else {
			cfg.Policy.MaxWithdrawals = n
		}
	}
	if v := strings.TrimSpace(getenv("BANK_WITHDRAWAL_WINDOW")); v != "" {
		w, err := bank.ParseWindow(v)
		if err != nil {
			problems = append(problems, "BANK_WITHDRAWAL_WINDOW: "+err.Error())
		} else {
			cfg.Policy.Window = w
		}
	}
	if v := strings.TrimSpace(getenv("BANK_ALLOW_OVERDRAFT")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			problems = append(problems, "BANK_ALLOW_OVERDRAFT: "+err.Error())
		} else {
			cfg.Policy.AllowOverdraft = b
		}
	}

	if len(problems) > 0 {
		return nil, errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	var problems []string

	if c.Mode != ModeConsole && c.Mode != ModeHTTP {
		problems = append(problems, fmt.Sprintf("BANK_MODE must be %q or %q", ModeConsole, ModeHTTP))
	}
	if c.Mode == ModeHTTP && c.HTTPAddr == "" {
		problems = append(problems, "BANK_HTTP_ADDR is required in http mode")
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		problems = append(problems, "BANK_LOG_FORMAT must be text or json")
	}
	if !c.Policy.WithdrawalLimit.IsPositive() {
		problems = append(problems, "BANK_WITHDRAWAL_LIMIT must be greater than zero")
	}
	if c.Policy.MaxWithdrawals < 1 {
		problems = append(problems, "BANK_MAX_WITHDRAWALS must be at least 1")
	}

	if len(problems) > 0 {
		return errors.New("invalid configuration: " + strings.Join(problems, "; "))
	}
	return nil
}

// Logger builds the slog logger described by the configuration.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
