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
	"context"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/internal/ioload"
	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/statusdb"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
func getLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load FILES...",
		Short: "Load project documents into the status database",
		Long: `Load project documents from JSON or YAML files into the
configured status database. Existing projects are replaced.

A document without project_id gets the name of its file, so
P12345.json is stored as project P12345.

SQLite files and document directories are created when missing.
For PostgreSQL run 'ngireports create' first.

Examples:
  ngireports load projects/*.json
  ngireports load -b sqlite --path statusdb.sqlite P12345.yaml`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))

			count, err := runLoad(context.Background(), cfg, args)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			gn.Info("Stored <em>%d</em> projects in <em>%s</em> status database",
				count, cfg.StatusDB.Backend)
			return nil
		},
	}

	loadCmd.Flags().IntP("jobs", "j", 0,
		"number of parallel file parsers (default from config)")
	addStatusDBFlags(loadCmd)

	return loadCmd
}

// runLoad stores documents from paths in the configured status database.
func runLoad(
	ctx context.Context,
	cfg *config.Config,
	paths []string,
) (int, error) {
	connector, err := iostatusdb.New(&cfg.StatusDB, iostatusdb.OptWritable())
	if err != nil {
		return 0, err
	}

	conn, err := connector.Connect(ctx)
	if err != nil {
		return 0, err
	}
	defer conn.Close()

	loader, ok := conn.(statusdb.Loader)
	if !ok {
		return 0, iostatusdb.ReadOnlyError(cfg.StatusDB.Backend)
	}

	return ioload.Load(ctx, loader, paths, cfg.JobsNumber)
}
