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
	"io"

	"github.com/gnames/gn"
	"github.com/gnames/ngireports/internal/ioreport"
	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/gnames/ngireports/pkg/enricher"
	"github.com/gnames/ngireports/pkg/report"
	"github.com/spf13/cobra"
)

// getEnrichCmd returns the enrich command.
func getEnrichCmd() *cobra.Command {
	var (
		projectID  string
		sampleIDs  []string
		reportPath string
	)

	enrichCmd := &cobra.Command{
		Use:   "enrich",
		Short: "Enrich a sample report with status database details",
		Long: `Enrich a sample report with project and sample details from
the status database and print the result.

The report is described either by flags or by a YAML/JSON file:

  project:
    id: P12345
    name: Liver study
  samples: [P12345_101, P12345_102]

Missing project or sample details produce warnings, but the report is
still printed. Failure to connect to the status database is an error.

Examples:
  ngireports enrich -p P12345 -s P12345_101,P12345_102
  ngireports enrich -r report.yaml -f yaml
  ngireports enrich -p P12345 -s P12345_101 -b file --path ./projects`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Update(flagOptions(cmd))

			var rc *report.Context
			var err error
			if reportPath != "" {
				rc, err = ioreport.Read(reportPath)
			} else {
				rc, err = ioreport.FromFlags(projectID, sampleIDs)
			}
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			err = runEnrich(context.Background(), cfg, rc, cmd.OutOrStdout())
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return nil
		},
	}

	enrichCmd.Flags().StringVarP(&projectID, "project", "p", "",
		"project ID")
	enrichCmd.Flags().StringSliceVarP(&sampleIDs, "samples", "s", nil,
		"comma separated sample IDs")
	enrichCmd.Flags().StringVarP(&reportPath, "report", "r", "",
		"report description file (YAML or JSON)")
	enrichCmd.Flags().StringP("format", "f", "",
		"output format (json, pretty, yaml)")
	enrichCmd.Flags().String("prep-key", "",
		"library prep key for barcodes (default from config, \"A\")")
	addStatusDBFlags(enrichCmd)

	return enrichCmd
}

// runEnrich enriches the report from the configured status database and
// writes it to w.
func runEnrich(
	ctx context.Context,
	cfg *config.Config,
	rc *report.Context,
	w io.Writer,
) error {
	connector, err := iostatusdb.New(&cfg.StatusDB)
	if err != nil {
		return err
	}

	e := enricher.New(connector, enricher.OptPrepKey(cfg.Report.PrepKey))
	if err = e.Enrich(ctx, rc); err != nil {
		return err
	}

	return ioreport.Write(w, rc, cfg.Report.Format)
}
