// Package ioreader reads BRAHMS SQL exports as a lazy, forward-only
// sequence of rows. BRAHMS dumps are pipe-delimited text; the living
// collections export is UTF-16LE, the image locations export is usually
// UTF-8 but occasionally UTF-16LE, so callers of the latter retry with the
// alternate encoding on a decode error.
package ioreader

import (
	"encoding/csv"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names a supported character encoding of an export file.
type Encoding string

const (
	EncUTF8    Encoding = "utf-8"
	EncUTF16LE Encoding = "utf-16le"
)

// Reader describes one export file. It holds no resources itself; each
// Open call acquires a fresh file handle released by Rows.Close.
type Reader struct {
	path      string
	encoding  Encoding
	delimiter rune
}

// New creates a Reader for the export at path with the given character
// encoding and single-character field delimiter.
func New(path string, encoding Encoding, delimiter rune) *Reader {
	return &Reader{path: path, encoding: encoding, delimiter: delimiter}
}

// Open acquires the file and returns a forward-only row cursor. The first
// row of every export is a header; call SkipHeader before transforming.
func (r *Reader) Open() (*Rows, error) {
	file, err := os.Open(r.path)
	if err != nil {
		return nil, OpenExportError(r.path, err)
	}

	var src io.Reader = file
	if r.encoding == EncUTF16LE {
		// IgnoreBOM keeps a leading BOM as a character in the first field,
		// matching how the upstream system decodes these files. The header
		// row absorbs it; image file names strip it during transformation.
		dec := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
		src = transform.NewReader(file, dec.NewDecoder())
	}

	cr := csv.NewReader(src)
	cr.Comma = r.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	return &Rows{path: r.path, file: file, csv: cr, encoding: r.encoding}, nil
}

// Rows is a lazy, non-restartable cursor over export rows.
type Rows struct {
	path     string
	file     *os.File
	csv      *csv.Reader
	encoding Encoding
	row      []string
	err      error
}

// Next advances to the next row. It returns false at end of file or on
// the first error; check Err afterwards.
func (rs *Rows) Next() bool {
	if rs.err != nil {
		return false
	}
	row, err := rs.csv.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		rs.err = ReadRowError(rs.path, err)
		return false
	}
	if rs.encoding == EncUTF8 && !plausibleUTF8(row) {
		rs.err = DecodeExportError(rs.path, string(rs.encoding))
		return false
	}
	rs.row = row
	return true
}

// Row returns the fields of the current row. Valid until the next call
// to Next.
func (rs *Rows) Row() []string {
	return rs.row
}

// Err reports the first error encountered while reading.
func (rs *Rows) Err() error {
	return rs.err
}

// Close releases the underlying file handle.
func (rs *Rows) Close() error {
	return rs.file.Close()
}

// SkipHeader consumes the header row every export starts with.
func (rs *Rows) SkipHeader() error {
	if !rs.Next() {
		if rs.err != nil {
			return rs.err
		}
		return ReadRowError(rs.path, io.ErrUnexpectedEOF)
	}
	return nil
}

// plausibleUTF8 detects a mis-declared encoding. A UTF-16LE file read as
// UTF-8 yields NUL bytes (for ASCII content) or invalid sequences; either
// is grounds for the caller to retry with the 16-bit decoder.
func plausibleUTF8(row []string) bool {
	for _, field := range row {
		if !utf8.ValidString(field) || strings.ContainsRune(field, 0) {
			return false
		}
	}
	return true
}
