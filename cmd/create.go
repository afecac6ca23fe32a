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
	"github.com/gnames/ngireports/internal/ioschema"
	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/pkg/config"
	"github.com/spf13/cobra"
)

// getCreateCmd returns the create command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getCreateCmd() *cobra.Command {
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create status database table in PostgreSQL",
		Long: `Create the project documents table in PostgreSQL status
database using GORM AutoMigrate. Running it again is safe, missing
columns are added, existing data is kept.

Other backends need no schema: SQLite tables and document directories
are created by 'ngireports load', MongoDB creates collections on the
first write.

Examples:
  ngireports create`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(context.Background(), cfg)
		},
	}

	return createCmd
}

func runCreate(ctx context.Context, cfg *config.Config) error {
	if cfg.StatusDB.Backend != config.BackendPostgres {
		gn.Info("Backend <em>%s</em> does not need a schema, nothing to do",
			cfg.StatusDB.Backend)
		return nil
	}

	conn, err := iostatusdb.ConnectPg(ctx, &cfg.StatusDB)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	defer conn.Close()

	gn.Info("Connected to database: %s@%s:%d/%s",
		cfg.StatusDB.User, cfg.StatusDB.Host,
		cfg.StatusDB.Port, cfg.StatusDB.Database)

	sm := ioschema.NewManager(conn)

	gn.Info("Creating schema using GORM AutoMigrate...")
	if err = sm.Create(ctx, cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	gn.Info("Table <em>%s</em> is ready", conn.Table())
	gn.Info("Run 'ngireports load' to import project documents")
	return nil
}
