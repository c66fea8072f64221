package iosync

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/redbuttegarden/brahmsync/internal/ioreader"
	"github.com/redbuttegarden/brahmsync/pkg/brahms"
)

// SyncCollections processes the living plant collections export: UTF-16LE,
// pipe-delimited, one collection record per row after the header. Rows are
// transformed and submitted one at a time; failures are logged with the
// plant ID and skipped.
func (s *syncer) SyncCollections(ctx context.Context) error {
	startTime := time.Now()
	path := s.cfg.Files.PlantData
	slog.Info("Starting collections sync", "path", path)

	reader := ioreader.New(path, ioreader.EncUTF16LE, s.delimiter())
	rows, err := reader.Open()
	if err != nil {
		return err
	}
	defer rows.Close()

	if err = rows.SkipHeader(); err != nil {
		return err
	}

	var posted, warned, dropped, rowNum int
	for rows.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rowNum++
		payload, err := brahms.ToCollection(rows.Row())
		if err != nil {
			dropped++
			slog.Error("Dropping collection row",
				"row", rowNum,
				"error", err,
			)
			continue
		}

		s.checkName(payload.Species.FullName, payload.PlantID)

		slog.Info("Submitting collection", "plant_id", payload.PlantID)
		res, err := s.poster.CreateCollection(ctx, payload)
		if err != nil {
			dropped++
			slog.Error("Collection submission failed",
				"plant_id", payload.PlantID,
				"error", err,
				"payload", payload,
			)
			continue
		}

		switch {
		case res.StatusCode == http.StatusOK:
			posted++
		case res.StatusCode >= http.StatusBadRequest:
			warned++
			slog.Error("Website rejected collection",
				"plant_id", payload.PlantID,
				"status", res.StatusCode,
				"body", res.Body,
				"payload", payload,
			)
		default:
			warned++
			slog.Warn("Unexpected status for collection",
				"plant_id", payload.PlantID,
				"status", res.StatusCode,
			)
		}

		if rowNum%500 == 0 {
			fmt.Fprintf(os.Stderr, "\r%s", strings.Repeat(" ", 40))
			fmt.Fprintf(os.Stderr, "\rProcessed %s rows",
				humanize.Comma(int64(rowNum)))
		}
	}
	fmt.Fprintf(os.Stderr, "\r%s\r", strings.Repeat(" ", 40))

	// The plant export has no encoding fallback: a read error here fails
	// the run.
	if err = rows.Err(); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Collections sync complete",
		"rows", rowNum,
		"posted", posted,
		"warnings", warned,
		"dropped", dropped,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Collections sync complete
Rows processed: %s, posted %s, warnings %d, dropped %d.
        Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(rowNum)),
		humanize.Comma(int64(posted)),
		warned,
		dropped,
		gnfmt.TimeString(duration.Seconds()),
	)

	return nil
}
