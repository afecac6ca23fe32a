// Package ioload seeds a writable status database with project
// documents read from JSON or YAML files.
package ioload

import (
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/ngireports/internal/iostatusdb"
	"github.com/gnames/ngireports/pkg/statusdb"
	"golang.org/x/sync/errgroup"
)

// Load parses document files using up to jobs goroutines and stores
// them through loader one by one. A document without project_id gets
// the base name of its file. It returns the number of stored documents.
func Load(
	ctx context.Context,
	loader statusdb.Loader,
	paths []string,
	jobs int,
) (int, error) {
	if len(paths) == 0 {
		return 0, NoFilesError()
	}
	if jobs < 1 {
		jobs = 1
	}

	timeStart := time.Now()
	docs, err := parse(ctx, paths, jobs)
	if err != nil {
		return 0, err
	}

	bar := pb.Full.Start(len(docs))
	bar.Set("prefix", "Loading projects: ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	var count int
	for _, doc := range docs {
		if err = ctx.Err(); err != nil {
			return count, err
		}
		if err = loader.Put(ctx, doc); err != nil {
			return count, err
		}
		count++
		bar.Increment()
	}
	bar.Finish()

	dur := time.Since(timeStart)
	slog.Info("Project documents loaded",
		"count", humanize.Comma(int64(count)),
		"duration", gnfmt.TimeString(dur.Seconds()),
	)
	gn.Info("Loaded %s project documents in %s",
		humanize.Comma(int64(count)), gnfmt.TimeString(dur.Seconds()))
	return count, nil
}

// parse reads all files concurrently keeping the order of paths.
func parse(
	ctx context.Context,
	paths []string,
	jobs int,
) ([]*statusdb.ProjectDocument, error) {
	res := make([]*statusdb.ProjectDocument, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := iostatusdb.ReadDocument(path)
			if err != nil {
				return DocumentError(path, err)
			}
			if doc.ProjectID == "" {
				doc.ProjectID = projectID(path)
			}
			res[i] = doc
			slog.Debug("Parsed project document",
				"path", path,
				"project_id", doc.ProjectID,
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func projectID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
