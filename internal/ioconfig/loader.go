// Package ioconfig loads configuration from the config file and
// environment variables. This is an impure package that reads files.
package ioconfig

import (
	"errors"
	"os"
	"strings"

	"github.com/gnames/ngireports/internal/iofs"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables with settings.
const EnvPrefix = "NGIREPORTS"

// LoadResult contains the loaded configuration and metadata about the source.
type LoadResult struct {
	Config     *config.Config
	SourcePath string // Path to config file used, or empty if using defaults
	Source     string // "file", "defaults", or "defaults+env"
}

// Load reads configuration from a YAML file and environment variables.
// Missing file is not an error, built-in defaults are used instead.
// Values from the file and env are applied through config Options, so
// invalid values are rejected with a warning and defaults are kept.
func Load(cfgPath string) (*LoadResult, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	initEnvVars(v)

	res := &LoadResult{Source: "defaults"}
	if _, err := os.Stat(cfgPath); err == nil {
		v.SetConfigFile(cfgPath)
		if err = v.ReadInConfig(); err != nil {
			return nil, iofs.ReadFileError(cfgPath, err)
		}
		res.Source = "file"
		res.SourcePath = cfgPath
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	var cfgViper config.Config
	if err := v.Unmarshal(&cfgViper); err != nil {
		return nil, iofs.ReadFileError(cfgPath, err)
	}

	if res.Source == "defaults" && hasEnvVars() {
		res.Source = "defaults+env"
	}

	cfg := config.New()
	cfg.Update(cfgViper.ToOptions())
	res.Config = cfg
	return res, nil
}

func initEnvVars(v *viper.Viper) {
	// Set environment variables we want.
	// We set them manually so we can see clearly which env variables are allowed.
	// These match the fields included in config.ToOptions().
	// Explicit names given to BindEnv do not get the prefix automatically.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Status database configuration
	v.BindEnv("status_db.backend", EnvPrefix+"_STATUS_DB_BACKEND")
	v.BindEnv("status_db.host", EnvPrefix+"_STATUS_DB_HOST")
	v.BindEnv("status_db.port", EnvPrefix+"_STATUS_DB_PORT")
	v.BindEnv("status_db.user", EnvPrefix+"_STATUS_DB_USER")
	v.BindEnv("status_db.password", EnvPrefix+"_STATUS_DB_PASSWORD")
	v.BindEnv("status_db.database", EnvPrefix+"_STATUS_DB_DATABASE")
	v.BindEnv("status_db.ssl_mode", EnvPrefix+"_STATUS_DB_SSL_MODE")
	v.BindEnv("status_db.collection", EnvPrefix+"_STATUS_DB_COLLECTION")
	v.BindEnv("status_db.uri", EnvPrefix+"_STATUS_DB_URI")
	v.BindEnv("status_db.path", EnvPrefix+"_STATUS_DB_PATH")
	v.BindEnv("status_db.timeout", EnvPrefix+"_STATUS_DB_TIMEOUT")

	// Report configuration
	v.BindEnv("report.prep_key", EnvPrefix+"_REPORT_PREP_KEY")
	v.BindEnv("report.format", EnvPrefix+"_REPORT_FORMAT")

	// Log configuration
	v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL")
	v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT")
	v.BindEnv("log.destination", EnvPrefix+"_LOG_DESTINATION")

	// General configuration
	v.BindEnv("jobs_number", EnvPrefix+"_JOBS_NUMBER")

	v.AutomaticEnv()
}

// hasEnvVars checks if any NGIREPORTS_* environment variables are set.
func hasEnvVars() bool {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, EnvPrefix+"_") {
			return true
		}
	}
	return false
}
