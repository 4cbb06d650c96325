package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"salesflow/internal/pkg/errs"
)

const (
	DefaultHealthSweepSchedule      = "0 0 * * * *"
	DefaultHistoryRetentionSchedule = "0 30 3 * * *"
	DefaultHistoryRetentionDays     = 30
)

type Config struct {
	HTTPPort                 string
	DBHost                   string
	DBPort                   string
	DBUser                   string
	DBPassword               string
	DBName                   string
	DBSslMode                string
	AdminToken               string
	HealthSweepSchedule      string
	HistoryRetentionSchedule string
	HistoryRetentionDays     string
	LogLevel                 string
}

// Validate reports every missing or malformed setting at once. Optional
// settings are left empty here and resolved by their accessors.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"HTTP_PORT", c.HTTPPort},
		{"DB_HOST", c.DBHost},
		{"DB_PORT", c.DBPort},
		{"DB_USER", c.DBUser},
		{"DB_NAME", c.DBName},
		{"ADMIN_TOKEN", c.AdminToken},
	}

	var problems []error
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			problems = append(problems, errs.NewValueIsRequiredError(r.key))
		}
	}

	for key, value := range map[string]string{"HTTP_PORT": c.HTTPPort, "DB_PORT": c.DBPort} {
		if value == "" {
			continue
		}
		if port, err := strconv.Atoi(value); err != nil || port < 1 || port > 65535 {
			problems = append(problems, errs.NewValueIsOutOfRangeError(key, value, 1, 65535))
		}
	}

	if _, err := c.RetentionDays(); err != nil {
		problems = append(problems, err)
	}
	if _, err := c.SlogLevel(); err != nil {
		problems = append(problems, err)
	}

	return errors.Join(problems...)
}

// DSN builds the Postgres connection string from the DB_* settings.
func (c Config) DSN() string {
	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}

	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     c.DBHost + ":" + c.DBPort,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": []string{sslMode}}.Encode(),
	}
	return dsn.String()
}

func (c Config) SweepSchedule() string {
	if c.HealthSweepSchedule == "" {
		return DefaultHealthSweepSchedule
	}
	return c.HealthSweepSchedule
}

func (c Config) RetentionSchedule() string {
	if c.HistoryRetentionSchedule == "" {
		return DefaultHistoryRetentionSchedule
	}
	return c.HistoryRetentionSchedule
}

// RetentionDays returns HISTORY_RETENTION_DAYS, 0 meaning pruning is off.
func (c Config) RetentionDays() (int, error) {
	if c.HistoryRetentionDays == "" {
		return DefaultHistoryRetentionDays, nil
	}
	days, err := strconv.Atoi(c.HistoryRetentionDays)
	if err != nil {
		return 0, errs.NewValueIsInvalidErrorWithCause("HISTORY_RETENTION_DAYS", err)
	}
	if days < 0 {
		return 0, errs.NewValueIsOutOfRangeError("HISTORY_RETENTION_DAYS", days, 0, "unbounded")
	}
	return days, nil
}

// SlogLevel parses LOG_LEVEL; empty means info.
func (c Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, errs.NewValueIsInvalidErrorWithCause("LOG_LEVEL", fmt.Errorf("%q: %w", c.LogLevel, err))
	}
	return level, nil
}
