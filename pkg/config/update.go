package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/gnames/gn"
)

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Used for round-tripping config.yaml ↔ Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option
	var s string
	var i int

	db := c.StatusDB
	strOpts := []struct {
		val string
		opt func(string) Option
	}{
		{db.Backend, OptStatusDBBackend},
		{db.Host, OptStatusDBHost},
		{db.User, OptStatusDBUser},
		{db.Password, OptStatusDBPassword},
		{db.Database, OptStatusDBDatabase},
		{db.SSLMode, OptStatusDBSSLMode},
		{db.Collection, OptStatusDBCollection},
		{db.URI, OptStatusDBURI},
		{db.Path, OptStatusDBPath},
		{c.Report.PrepKey, OptReportPrepKey},
		{c.Report.Format, OptReportFormat},
		{c.Log.Format, OptLogFormat},
		{c.Log.Level, OptLogLevel},
		{c.Log.Destination, OptLogDestination},
	}
	for _, v := range strOpts {
		if s = v.val; s != "" {
			res = append(res, v.opt(s))
		}
	}

	i = db.Port
	if i > 0 {
		res = append(res, OptStatusDBPort(i))
	}
	i = db.Timeout
	if i > 0 {
		res = append(res, OptStatusDBTimeout(i))
	}
	i = c.JobsNumber
	if i > 0 {
		res = append(res, OptJobsNumber(i))
	}
	return res
}

func isValidString(name, s string) bool {
	res := s != ""
	if !res {
		gn.Warn("<em>%s</em> cannot be empty, ignoring", name)
	}
	return res
}

func isValidInt(name string, i int) bool {
	res := i > 0
	if !res {
		gn.Warn("<em>%s</em> has to be positive number, ignoring %d", name, i)
	}
	return res
}

func isValidEnum(name, val string) bool {
	s := struct{}{}
	data := map[string]map[string]struct{}{
		"StatusDB.Backend": {BackendPostgres: s, BackendMongo: s,
			BackendCouchDB: s, BackendSQLite: s, BackendFile: s},
		"StatusDB.SSLMode": {"disable": s, "require": s,
			"verify-ca": s, "verify-full": s},
		"Report.Format":   {"json": s, "pretty": s, "yaml": s},
		"Log.Level":       {"debug": s, "info": s, "warn": s, "error": s},
		"Log.Format":      {"json": s, "text": s, "tint": s},
		"Log.Destination": {"file": s, "stderr": s, "stdout": s},
	}
	vals := slices.Sorted(maps.Keys(data[name]))
	var lines []string
	for _, v := range vals {
		line := fmt.Sprintf("  * %s", v)
		lines = append(lines, line)
	}
	if _, ok := data[name][val]; ok {
		return true
	}
	gn.Warn(
		"<em>%s</em> does not support '%s' as a value. "+
			"Valid values are: \n%s\nIgnoring...",
		name, val, strings.Join(lines, "\n"),
	)
	return false
}
