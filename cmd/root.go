/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/internal/ioconfig"
	"github.com/gnames/ngireports/internal/iofs"
	"github.com/gnames/ngireports/internal/iologger"
	app "github.com/gnames/ngireports/pkg"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/spf13/cobra"
)

var (
	homeDir string
	cfgFile string
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "ngireports",
		Short:   "NGIreports enriches sample reports with StatusDB data",
		Long: `NGIreports fills sample reports with project and sample details
kept in the status database.

For every report it copies:
  - project contact (report recipient)
  - library construction method
  - customer sample names
  - library prep barcodes (reagent labels)

Missing details are reported as warnings, the report is still produced.

Supported status database backends: postgres, mongo, sqlite, file.

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (NGIREPORTS_*)
  3. Config file (~/.config/ngireports/config.yaml)
  4. Built-in defaults

Examples:
  ngireports enrich -p P12345 -s P12345_101,P12345_102
  ngireports enrich -r report.yaml -f yaml
  ngireports load projects/*.json
  ngireports create`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	// Remove the automatic "ngireports version" prefix
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Override version flag to use -V (consistent with other gn projects)
	rootCmd.Flags().BoolP("version", "V", false, "version for ngireports")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: ~/.config/ngireports/config.yaml)")

	rootCmd.AddCommand(getEnrichCmd())
	rootCmd.AddCommand(getLoadCmd())
	rootCmd.AddCommand(getCreateCmd())

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureDirs(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Initialize logging with hardcoded defaults
	// Will be reconfigured later with user's config settings
	defaultLog := config.LogConfig{
		Format:      "json",
		Level:       "info",
		Destination: "file",
	}
	if err = iologger.Init(config.LogDir(homeDir), defaultLog, false); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureConfigFile(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	path := cfgFile
	if path == "" {
		path = config.ConfigFilePath(homeDir)
	}

	res, err := ioconfig.Load(path)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	cfg = res.Config

	// Set HomeDir after config is loaded
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	// Reconfigure logging with user's settings and proper log file location
	if err = reconfigureLogging(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"source", res.Source,
		"config_file", res.SourcePath,
		"backend", cfg.StatusDB.Backend,
	)

	return nil
}

// reconfigureLogging reinitializes the logger with the loaded configuration.
// Records written during bootstrap are kept.
func reconfigureLogging(cfg *config.Config) error {
	logDir := config.LogDir(cfg.HomeDir)
	return iologger.Init(logDir, cfg.Log, true)
}

func runRoot(cmd *cobra.Command, args []string) error {
	versionFlag(cmd)
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := getRootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
