// Package rbg defines the interfaces between the sync pipeline and the
// garden website's REST API. Implementations live in internal/ioposter and
// internal/iosync; tests substitute their own.
package rbg

import (
	"context"

	"github.com/redbuttegarden/brahmsync/pkg/brahms"
)

// Result carries the outcome of a single API submission. A non-success
// status is reported here rather than as an error: the caller decides
// whether it is worth a warning. Errors are reserved for transport and
// protocol failures.
type Result struct {
	StatusCode int
	Body       string
}

// SpeciesMatch is one species returned by the website's species query.
type SpeciesMatch struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

// SpeciesResult is the website's answer to a species query.
type SpeciesResult struct {
	Count   int            `json:"count"`
	Results []SpeciesMatch `json:"results"`
}

// Poster submits transformed BRAHMS records to the website.
// Login must be called once before any other operation; it establishes the
// session cookie and bearer token attached to all subsequent requests.
type Poster interface {
	// Login authenticates with username/password and stores the session
	// cookie token and bearer token for later calls.
	Login(ctx context.Context) error

	// CreateCollection submits one plant collection record.
	CreateCollection(
		ctx context.Context, payload *brahms.Collection,
	) (*Result, error)

	// FindSpecies queries species by taxonomic fields. The caller is
	// responsible for acting only on unambiguous (count == 1) results.
	FindSpecies(
		ctx context.Context, query brahms.SpeciesQuery,
	) (*SpeciesResult, error)

	// AttachImage uploads the image file at path to the species-specific
	// endpoint. The file handle is held only for the duration of the call.
	AttachImage(
		ctx context.Context, speciesID int, path string,
	) (*Result, error)
}

// Syncer drives the two export files through transformation and
// submission. No single row's failure terminates a file's processing.
type Syncer interface {
	// SyncCollections processes the living plant collections export.
	SyncCollections(ctx context.Context) error

	// SyncImages processes the species image locations export.
	SyncImages(ctx context.Context) error
}

// PathResolver turns the directory and file name columns of an image row
// into a local filesystem path. Implementations differ per deployment:
// hosts with the BRAHMS photo drive mapped join the columns as-is, other
// hosts substitute a cloud-storage mount point for the drive prefix.
type PathResolver interface {
	Resolve(dir, file string) string
}
