// Package config reads the service configuration.
//
// Values are read from, in increasing order of precedence, the defaults,
// an optional YAML file and the environment. A .env file is loaded into
// the environment first, it never overrides variables that are already set.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"strings"

	"github.com/budget-steps/backend/internal/models"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

// Config holds all settings of the service.
type Config struct {
	APIURL    string `mapstructure:"api_url"`
	Port      int    `mapstructure:"port"`
	GinMode   string `mapstructure:"gin_mode"`
	LogFormat string `mapstructure:"log_format"`
	LogLevel  string `mapstructure:"log_level"`

	DBDriver   string `mapstructure:"db_driver"`
	SQLitePath string `mapstructure:"sqlite_path"`
	DBHost     string `mapstructure:"db_host"`
	DBPort     int    `mapstructure:"db_port"`
	DBUser     string `mapstructure:"db_user"`
	DBPassword string `mapstructure:"db_password"`
	DBName     string `mapstructure:"db_name"`

	CORSAllowOrigins string `mapstructure:"cors_allow_origins"` // space separated
	EnablePprof      bool   `mapstructure:"enable_pprof"`
	IdentityRequired bool   `mapstructure:"identity_required"`
	StepCacheSize    int64  `mapstructure:"step_cache_size"`
}

var defaults = map[string]any{
	"api_url":            "",
	"port":               8080,
	"gin_mode":           "release",
	"log_format":         "",
	"log_level":          "",
	"db_driver":          models.DriverSQLite,
	"sqlite_path":        "data/gorm.db",
	"db_host":            "localhost",
	"db_port":            5432,
	"db_user":            "",
	"db_password":        "",
	"db_name":            "",
	"cors_allow_origins": "",
	"enable_pprof":       false,
	"identity_required":  false,
	"step_cache_size":    1024,
}

var (
	ginModes   = []string{"debug", "release", "test"}
	logFormats = []string{"", "human", "json"}
	drivers    = []string{models.DriverSQLite, models.DriverPostgres}
)

// Load reads the configuration.
//
// file is the path of an optional YAML file, an empty path skips it.
// envFiles are loaded into the environment, missing files are ignored.
// Without envFiles, ".env" in the working directory is tried.
func Load(file string, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, f := range envFiles {
		err := godotenv.Load(f)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", f, err)
		}
	}

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)

		// Bind explicitly so that Unmarshal sees environment variables
		// for keys that are not in the file
		_ = v.BindEnv(key)
	}
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		err := v.ReadInConfig()
		if err != nil {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		return nil, fmt.Errorf("could not parse configuration: %w", err)
	}

	return &c, nil
}

// Validate checks all values and reports every invalid one.
func (c *Config) Validate() error {
	var problems []string

	u, err := url.Parse(c.APIURL)
	if c.APIURL == "" {
		problems = append(problems, "API_URL must be set")
	} else if err != nil || !u.IsAbs() || u.Host == "" {
		problems = append(problems, fmt.Sprintf("API_URL %q must be an absolute URL", c.APIURL))
	}

	if c.Port < 1 || c.Port > 65535 {
		problems = append(problems, fmt.Sprintf("PORT %d must be between 1 and 65535", c.Port))
	}

	if !slices.Contains(ginModes, c.GinMode) {
		problems = append(problems, fmt.Sprintf("GIN_MODE %q must be one of %v", c.GinMode, ginModes))
	}

	if !slices.Contains(logFormats, c.LogFormat) {
		problems = append(problems, fmt.Sprintf("LOG_FORMAT %q must be one of human, json", c.LogFormat))
	}

	if c.LogLevel != "" {
		if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
			problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a log level", c.LogLevel))
		}
	}

	if !slices.Contains(drivers, c.DBDriver) {
		problems = append(problems, fmt.Sprintf("DB_DRIVER %q must be one of %v", c.DBDriver, drivers))
	}

	if c.DBDriver == models.DriverSQLite && c.SQLitePath == "" {
		problems = append(problems, "SQLITE_PATH must be set for the sqlite driver")
	}

	if c.DBDriver == models.DriverPostgres {
		if c.DBHost == "" {
			problems = append(problems, "DB_HOST must be set for the postgres driver")
		}

		if c.DBName == "" {
			problems = append(problems, "DB_NAME must be set for the postgres driver")
		}

		if c.DBPort < 1 || c.DBPort > 65535 {
			problems = append(problems, fmt.Sprintf("DB_PORT %d must be between 1 and 65535", c.DBPort))
		}
	}

	if c.StepCacheSize < 0 {
		problems = append(problems, fmt.Sprintf("STEP_CACHE_SIZE %d must not be negative", c.StepCacheSize))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// URL returns the parsed API_URL. It must only be called after Validate.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

// AllowOrigins returns the origins allowed for CORS requests.
func (c *Config) AllowOrigins() []string {
	return strings.Fields(c.CORSAllowOrigins)
}

// Dialector returns the dialector for the configured database.
func (c *Config) Dialector() gorm.Dialector {
	if c.DBDriver == models.DriverPostgres {
		return models.Postgres(c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName)
	}

	return models.SQLite(c.SQLitePath)
}

// Level returns the configured log level. Without explicit level,
// debug mode logs at debug level and all other modes at info level.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if c.LogLevel != "" && err == nil {
		return level
	}

	if c.GinMode == "debug" {
		return zerolog.DebugLevel
	}

	return zerolog.InfoLevel
}

// HumanLogs reports whether logs are written for humans instead of as JSON.
//
// Without explicit format, debug mode logs for humans.
func (c *Config) HumanLogs() bool {
	if c.LogFormat == "" {
		return c.GinMode == "debug"
	}

	return c.LogFormat == "human"
}
