package config

import (
	"strings"
)

// Option is a function that modifies a Config.
// Options validate inputs and reject invalid values with warnings.
type Option func(*Config)

// OptStatusDBBackend sets the status database backend.
// Valid values: "postgres", "mongo", "sqlite", "file".
func OptStatusDBBackend(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("StatusDB.Backend", s) {
			c.StatusDB.Backend = s
		}
	}
}

// OptStatusDBHost sets the PostgreSQL server hostname or IP address.
func OptStatusDBHost(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB Host", s) {
			c.StatusDB.Host = s
		}
	}
}

// OptStatusDBPort sets the PostgreSQL server port number.
func OptStatusDBPort(i int) Option {
	return func(c *Config) {
		if isValidInt("StatusDB Port", i) {
			c.StatusDB.Port = i
		}
	}
}

// OptStatusDBUser sets the PostgreSQL database username.
func OptStatusDBUser(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB User", s) {
			c.StatusDB.User = s
		}
	}
}

// OptStatusDBPassword sets the PostgreSQL database password.
func OptStatusDBPassword(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB Password", s) {
			c.StatusDB.Password = s
		}
	}
}

// OptStatusDBDatabase sets the database name to connect to.
func OptStatusDBDatabase(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB Database", s) {
			c.StatusDB.Database = s
		}
	}
}

// OptStatusDBSSLMode sets the SSL connection mode.
// Valid values: "disable", "require", "verify-ca", "verify-full".
func OptStatusDBSSLMode(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("StatusDB.SSLMode", s) {
			c.StatusDB.SSLMode = s
		}
	}
}

// OptStatusDBCollection sets the table or collection with project
// documents.
func OptStatusDBCollection(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB Collection", s) {
			c.StatusDB.Collection = s
		}
	}
}

// OptStatusDBURI sets the MongoDB connection string.
func OptStatusDBURI(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB URI", s) {
			c.StatusDB.URI = s
		}
	}
}

// OptStatusDBPath sets the SQLite file or the documents directory.
func OptStatusDBPath(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("StatusDB Path", s) {
			c.StatusDB.Path = s
		}
	}
}

// OptStatusDBTimeout sets the connection timeout in seconds.
func OptStatusDBTimeout(i int) Option {
	return func(c *Config) {
		if isValidInt("StatusDB Timeout", i) {
			c.StatusDB.Timeout = i
		}
	}
}

// OptReportPrepKey sets the library prep entry used for barcodes.
func OptReportPrepKey(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Report PrepKey", s) {
			c.Report.PrepKey = s
		}
	}
}

// OptReportFormat sets the output format of enriched reports.
// Valid values: "json", "pretty", "yaml".
func OptReportFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Report.Format", s) {
			c.Report.Format = s
		}
	}
}

// OptLogLevel sets the logging level.
// Valid values: "debug", "info", "warn", "error".
func OptLogLevel(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Level", s) {
			c.Log.Level = s
		}
	}
}

// OptLogFormat sets the log output format.
// Valid values: "json", "text", "tint".
func OptLogFormat(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Format", s) {
			c.Log.Format = s
		}
	}
}

// OptLogDestination sets where logs are written.
// Valid values: "file", "stderr", "stdout".
func OptLogDestination(s string) Option {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	return func(c *Config) {
		if isValidEnum("Log.Destination", s) {
			c.Log.Destination = s
		}
	}
}

// OptJobsNumber sets the number of concurrent workers.
// Default is runtime.NumCPU().
func OptJobsNumber(i int) Option {
	return func(c *Config) {
		if isValidInt("Jobs Number", i) {
			c.JobsNumber = i
		}
	}
}

// OptHomeDir sets the home directory for config and log locations.
// Set once at startup from os.UserHomeDir().
// Runtime-only field - not in ToOptions().
func OptHomeDir(s string) Option {
	s = strings.TrimSpace(s)
	return func(c *Config) {
		if isValidString("Home Directory", s) {
			c.HomeDir = s
		}
	}
}
