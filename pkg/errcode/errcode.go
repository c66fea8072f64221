package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File system errors
	CreateDirError
	CopyFileError
	ReadFileError

	// Logging errors
	CreateLogFileError

	// Startup errors
	MissingCredentialsError

	// Export reader errors
	OpenExportError
	DecodeExportError
	ReadRowError

	// API errors
	AuthError
	CollectionPostError
	SpeciesQueryError
	ImageOpenError
	ImageAttachError
)
