package iosync

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/redbuttegarden/brahmsync/internal/ioreader"
	"github.com/redbuttegarden/brahmsync/pkg/brahms"
)

// SyncImages processes the species image locations export. Each row is
// matched to exactly one species on the website before its image is
// uploaded; ambiguous matches are logged and skipped without error.
func (s *syncer) SyncImages(ctx context.Context) error {
	startTime := time.Now()
	path := s.cfg.Files.ImageData
	slog.Info("Starting images sync", "path", path)

	rows, err := s.openImageRows(path)
	if err != nil {
		return err
	}
	defer rows.Close()

	var attached, warned, skipped, dropped, rowNum int
	for rows.Next() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rowNum++
		img, err := brahms.ToImage(rows.Row())
		if err != nil {
			dropped++
			slog.Error("Dropping image row",
				"row", rowNum,
				"fields", rows.Row(),
				"error", err,
			)
			continue
		}

		imgPath := s.resolver.Resolve(img.Directory, img.FileName)

		species, err := s.poster.FindSpecies(ctx, img.Query)
		if err != nil {
			dropped++
			slog.Error("Species query failed",
				"row", rowNum,
				"query", img.Query,
				"error", err,
			)
			continue
		}

		if species.Count != 1 || len(species.Results) != 1 {
			skipped++
			slog.Info("Skipping image, species match is not unique",
				"row", rowNum,
				"query", img.Query,
				"matches", species.Count,
			)
			continue
		}
		speciesID := species.Results[0].ID

		slog.Debug("Uploading image",
			"species_id", speciesID,
			"path", imgPath,
			"copyright", img.Copyright,
		)
		res, err := s.poster.AttachImage(ctx, speciesID, imgPath)
		if err != nil {
			dropped++
			slog.Error("Image upload failed",
				"species_id", speciesID,
				"path", imgPath,
				"error", err,
			)
			continue
		}

		if res.StatusCode != http.StatusOK {
			warned++
			slog.Warn("Unexpected status for image upload",
				"species_id", speciesID,
				"path", imgPath,
				"status", res.StatusCode,
				"body", res.Body,
			)
			continue
		}
		attached++
	}

	if err = rows.Err(); err != nil {
		return err
	}

	duration := time.Since(startTime)
	slog.Info("Images sync complete",
		"rows", rowNum,
		"attached", attached,
		"warnings", warned,
		"ambiguous", skipped,
		"dropped", dropped,
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Images sync complete
Rows processed: %s, attached %s, warnings %d, ambiguous %d, dropped %d.
        Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(rowNum)),
		humanize.Comma(int64(attached)),
		warned,
		skipped,
		dropped,
		gnfmt.TimeString(duration.Seconds()),
	)

	return nil
}

// openImageRows opens the image export with the default encoding and, on
// an encoding mismatch, retries once with UTF-16LE. BRAHMS produces either
// depending on how the dump was made.
func (s *syncer) openImageRows(path string) (*ioreader.Rows, error) {
	reader := ioreader.New(path, ioreader.EncUTF8, s.delimiter())
	rows, err := reader.Open()
	if err != nil {
		return nil, err
	}

	err = rows.SkipHeader()
	if err == nil {
		return rows, nil
	}
	rows.Close()
	if !ioreader.IsDecodeError(err) {
		return nil, err
	}

	slog.Warn("Image export is not UTF-8, retrying as UTF-16LE",
		"path", path)
	reader = ioreader.New(path, ioreader.EncUTF16LE, s.delimiter())
	rows, err = reader.Open()
	if err != nil {
		return nil, err
	}
	if err = rows.SkipHeader(); err != nil {
		rows.Close()
		return nil, err
	}
	return rows, nil
}
