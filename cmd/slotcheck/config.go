package main

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"kalsabot.dev/checker"
	"kalsabot.dev/checker/presenter"
	"kalsabot.dev/checker/scraper"
)

// Config holds the resolved settings for one run.
// Precedence: flags > SLOTCHECK_* environment (.env included) > defaults.
type Config struct {
	Day     *int
	Hour    *int
	Verbose bool
	Format  string
	Match   string
	Timeout time.Duration
	TZ      string
	NoColor bool
	BaseURL string

	LogLevel string
	LogFile  string
}

const envPrefix = "SLOTCHECK"

func bindFlags(flags *pflag.FlagSet) {
	flags.IntP("day", "d", 0, "weekday to check, 1=Monday ... 7=Sunday (default: the court's day)")
	flags.IntP("time", "t", 0, "local hour the slot should end at, 0-23 (default: the court's hour)")
	flags.BoolP("verbose", "v", false, "list every slot before the summary")
	flags.String("format", presenter.FormatText, "output format: text or json")
	flags.String("match", "hour", "slot matching: hour (end hour only) or exact (end exactly on the hour)")
	flags.Duration("timeout", checker.DefaultHTTPTimeout, "HTTP request timeout")
	flags.String("tz", "", "IANA timezone for the hour, e.g. Europe/Helsinki (default: system local)")
	flags.Bool("no-color", false, "disable colored output")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.String("log-file", "", "also write JSON logs to this rotating file")
	flags.String("env-file", ".env", "dotenv file to load before reading SLOTCHECK_* variables")
	flags.String("base-url", scraper.DefaultBaseURL, "booking API base URL")
	_ = flags.MarkHidden("base-url")
}

// loadEnvFile loads a dotenv file. A missing file is not an error.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

func loadConfig(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	if err := v.BindPFlags(flags); err != nil {
		return nil, fmt.Errorf("bind flags: %w", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Verbose:  v.GetBool("verbose"),
		Format:   v.GetString("format"),
		Match:    v.GetString("match"),
		Timeout:  v.GetDuration("timeout"),
		TZ:       v.GetString("tz"),
		NoColor:  v.GetBool("no-color"),
		BaseURL:  v.GetString("base-url"),
		LogLevel: v.GetString("log-level"),
		LogFile:  v.GetString("log-file"),
	}
	day, err := optionalInt(v, "day")
	if err != nil {
		return nil, err
	}
	hour, err := optionalInt(v, "time")
	if err != nil {
		return nil, err
	}
	cfg.Day, cfg.Hour = day, hour

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// optionalInt reads an integer setting that may be absent. viper's GetInt
// turns unparseable values into 0, which is a valid hour.
func optionalInt(v *viper.Viper, key string) (*int, error) {
	if !v.IsSet(key) {
		return nil, nil
	}
	raw := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: --%s (or %s_%s) %q is not an integer",
			checker.ErrInvalidArgument, key, envPrefix, strings.ToUpper(key), raw)
	}
	return &n, nil
}

// Validate checks the values that do not depend on the clock.
func (c *Config) Validate() error {
	if c.Day != nil {
		if _, err := checker.ParseWeekday(*c.Day); err != nil {
			return fmt.Errorf("--day: %w", err)
		}
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("%w: --timeout must be positive, got %s", checker.ErrInvalidArgument, c.Timeout)
	}
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base URL is empty", checker.ErrInvalidArgument)
	}
	return nil
}

// Location resolves the configured timezone.
func (c *Config) Location() (*time.Location, error) {
	if c.TZ == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZ)
	if err != nil {
		return nil, fmt.Errorf("%w: --tz %q: %v", checker.ErrInvalidArgument, c.TZ, err)
	}
	return loc, nil
}

// Override converts the day/hour flags for the checker.
func (c *Config) Override() checker.Override {
	var ov checker.Override
	if c.Day != nil {
		wd := checker.Weekday(*c.Day)
		ov.Day = &wd
	}
	if c.Hour != nil {
		hour := *c.Hour
		ov.Hour = &hour
	}
	return ov
}
