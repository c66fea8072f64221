package ioreader

import (
	"errors"
	"fmt"

	"github.com/gnames/gn"
	"github.com/redbuttegarden/brahmsync/pkg/errcode"
)

// OpenExportError creates an error for an export file that cannot
// be opened.
func OpenExportError(path string, err error) error {
	msg := `Cannot open export file

<em>File path:</em> %s

<em>How to fix:</em>
  1. Check the path passed via flags or config
  2. Verify the BRAHMS export was copied to this machine`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.OpenExportError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot open export: %w", err),
	}
}

// DecodeExportError creates an error for byte content that does not match
// the declared encoding.
func DecodeExportError(path, encoding string) error {
	msg := `Export file does not match the expected encoding

<em>File path:</em> %s
<em>Expected encoding:</em> %s

BRAHMS exports are UTF-16LE or UTF-8 depending on how the dump was made.`

	vars := []any{path, encoding}

	return &gn.Error{
		Code: errcode.DecodeExportError,
		Msg:  msg,
		Vars: vars,
		Err: fmt.Errorf(
			"content of %s is not valid %s", path, encoding),
	}
}

// ReadRowError creates an error for a row that cannot be read or split
// into fields.
func ReadRowError(path string, err error) error {
	msg := `Cannot read a row from export file

<em>File path:</em> %s`

	vars := []any{path}

	return &gn.Error{
		Code: errcode.ReadRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot read row: %w", err),
	}
}

// IsDecodeError reports whether err came from an encoding mismatch, the
// condition that triggers a retry with the alternate encoding.
func IsDecodeError(err error) bool {
	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		return gnErr.Code == errcode.DecodeExportError
	}
	return false
}
