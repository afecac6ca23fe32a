package cmd

import (
	"fmt"
	"os"

	app "github.com/gnames/ngireports/pkg"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/spf13/cobra"
)

func versionFlag(cmd *cobra.Command) {
	hasVersionFlag, _ := cmd.Flags().GetBool("version")
	if hasVersionFlag {
		fmt.Printf("\nversion: %s\nbuild: %s\n\n", app.Version, app.Build)
		os.Exit(0)
	}
}

// flagOptions converts flags that were set by a user to config options.
// Flags override values from config file and environment.
func flagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	fs := cmd.Flags()

	if fs.Changed("format") {
		s, _ := fs.GetString("format")
		res = append(res, config.OptReportFormat(s))
	}
	if fs.Changed("prep-key") {
		s, _ := fs.GetString("prep-key")
		res = append(res, config.OptReportPrepKey(s))
	}
	if fs.Changed("backend") {
		s, _ := fs.GetString("backend")
		res = append(res, config.OptStatusDBBackend(s))
	}
	if fs.Changed("path") {
		s, _ := fs.GetString("path")
		res = append(res, config.OptStatusDBPath(s))
	}
	if fs.Changed("jobs") {
		i, _ := fs.GetInt("jobs")
		res = append(res, config.OptJobsNumber(i))
	}
	return res
}

// addStatusDBFlags adds flags that select the status database.
func addStatusDBFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("backend", "b", "",
		"status database backend (postgres, mongo, sqlite, file)")
	cmd.Flags().String("path", "",
		"SQLite file or documents directory for sqlite and file backends")
}
