// Package iosync implements the rbg.Syncer interface: it drives each
// BRAHMS export through reading, transformation and submission, one row at
// a time. Its defining property is failure isolation - a malformed or
// rejected row is logged and skipped, never aborting the file.
package iosync

import (
	"log/slog"

	"github.com/gnames/gnlib/ent/nomcode"
	"github.com/gnames/gnparser"
	"github.com/redbuttegarden/brahmsync/pkg/config"
	"github.com/redbuttegarden/brahmsync/pkg/rbg"
)

// syncer implements the Syncer interface.
type syncer struct {
	cfg      *config.Config
	poster   rbg.Poster
	resolver rbg.PathResolver
	parser   gnparser.GNparser
}

// New creates a new Syncer. The poster must already be logged in.
func New(
	cfg *config.Config, poster rbg.Poster, resolver rbg.PathResolver,
) rbg.Syncer {
	pCfg := gnparser.NewConfig(gnparser.OptCode(nomcode.Botanical))
	return &syncer{
		cfg:      cfg,
		poster:   poster,
		resolver: resolver,
		parser:   gnparser.New(pCfg),
	}
}

// delimiter returns the configured field separator as a rune.
func (s *syncer) delimiter() rune {
	for _, r := range s.cfg.Files.Delimiter {
		return r
	}
	return '|'
}

// checkName runs the scientific name through a botanical-code parser and
// flags names the website's species matching is likely to stumble on.
// Purely diagnostic - the record is submitted either way.
func (s *syncer) checkName(fullName, plantID string) {
	if fullName == "" {
		return
	}
	parsed := s.parser.ParseName(fullName)
	if !parsed.Parsed {
		slog.Warn("Scientific name did not parse",
			"plant_id", plantID,
			"full_name", fullName,
		)
	}
}
