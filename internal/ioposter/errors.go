package ioposter

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/redbuttegarden/brahmsync/pkg/errcode"
)

// AuthError creates an error for a failed authentication with the website.
func AuthError(host string, err error) error {
	msg := `Cannot authenticate with the website API

<em>Host:</em> %s

<em>How to fix:</em>
  1. Check BRAHMSYNC_API_USERNAME and BRAHMSYNC_API_PASSWORD
  2. Verify the host and SSL settings
  3. Confirm the account has API access`

	vars := []any{host}

	return &gn.Error{
		Code: errcode.AuthError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("authentication failed: %w", err),
	}
}

// CollectionPostError creates an error for a collection submission that
// failed at the transport or encoding level.
func CollectionPostError(plantID string, err error) error {
	msg := `Cannot submit collection record

<em>Plant ID:</em> %s`

	vars := []any{plantID}

	return &gn.Error{
		Code: errcode.CollectionPostError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("collection post failed: %w", err),
	}
}

// SpeciesQueryError creates an error for a species lookup that failed.
func SpeciesQueryError(genus, name string, err error) error {
	msg := `Species query failed

<em>Genus:</em> %s
<em>Species:</em> %s`

	vars := []any{genus, name}

	return &gn.Error{
		Code: errcode.SpeciesQueryError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("species query failed: %w", err),
	}
}

// ImageOpenError creates an error for an image file that cannot be read
// for upload.
func ImageOpenError(path string, err error) error {
	msg := `Cannot open image file for upload

<em>File path:</em> %s

<em>Possible causes:</em>
  - Photo drive or cloud-storage mount is not available
  - Image was moved or renamed since the export was made`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ImageOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open image: %w", err),
	}
}

// ImageAttachError creates an error for an image upload that failed at
// the transport level.
func ImageAttachError(speciesID int, path string, err error) error {
	msg := `Cannot upload image to species

<em>Species ID:</em> %d
<em>File path:</em> %s`

	vars := []any{speciesID, path}

	return &gn.Error{
		Code: errcode.ImageAttachError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("image upload failed: %w", err),
	}
}
