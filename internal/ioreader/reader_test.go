package ioreader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/redbuttegarden/brahmsync/internal/ioreader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/unicode"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(path, []byte(content), 0644)
	require.NoError(t, err)
	return path
}

func writeUTF16LE(t *testing.T, name, content string) string {
	t.Helper()
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	encoded, err := enc.String(content)
	require.NoError(t, err)
	return writeFile(t, name, encoded)
}

func TestReadRows(t *testing.T) {
	path := writeFile(t, "plants.csv",
		"header1|header2|header3\nRosa|woodsii|4,5\nAcer|grandidentatum|3\n")

	rows, err := ioreader.New(path, ioreader.EncUTF8, '|').Open()
	require.NoError(t, err)
	defer rows.Close()

	require.NoError(t, rows.SkipHeader())

	var res [][]string
	for rows.Next() {
		row := make([]string, len(rows.Row()))
		copy(row, rows.Row())
		res = append(res, row)
	}
	require.NoError(t, rows.Err())

	assert.Equal(t, [][]string{
		{"Rosa", "woodsii", "4,5"},
		{"Acer", "grandidentatum", "3"},
	}, res)
}

func TestReadUTF16LE(t *testing.T) {
	path := writeUTF16LE(t, "plants.csv",
		"genus|species\nPenstemon|utahensis\n")

	rows, err := ioreader.New(path, ioreader.EncUTF16LE, '|').Open()
	require.NoError(t, err)
	defer rows.Close()

	require.NoError(t, rows.SkipHeader())
	require.True(t, rows.Next())
	assert.Equal(t, []string{"Penstemon", "utahensis"}, rows.Row())
	assert.False(t, rows.Next())
	assert.NoError(t, rows.Err())
}

func TestVariableFieldCount(t *testing.T) {
	// The reader does not police field counts; schemas do.
	path := writeFile(t, "img.csv", "a|b|c\none|two\n1|2|3|4\n")

	rows, err := ioreader.New(path, ioreader.EncUTF8, '|').Open()
	require.NoError(t, err)
	defer rows.Close()

	require.NoError(t, rows.SkipHeader())
	require.True(t, rows.Next())
	assert.Len(t, rows.Row(), 2)
	require.True(t, rows.Next())
	assert.Len(t, rows.Row(), 4)
}

func TestEncodingMismatch(t *testing.T) {
	path := writeUTF16LE(t, "img.csv",
		"imagefile|copyright\nrosa.jpg|RBG\n")

	rows, err := ioreader.New(path, ioreader.EncUTF8, '|').Open()
	require.NoError(t, err)
	defer rows.Close()

	err = rows.SkipHeader()
	require.Error(t, err)
	assert.True(t, ioreader.IsDecodeError(err))

	// retry with the alternate encoding, as the image sync does
	retry, err := ioreader.New(path, ioreader.EncUTF16LE, '|').Open()
	require.NoError(t, err)
	defer retry.Close()

	require.NoError(t, retry.SkipHeader())
	require.True(t, retry.Next())
	assert.Equal(t, []string{"rosa.jpg", "RBG"}, retry.Row())
}

func TestIsDecodeError(t *testing.T) {
	assert.False(t, ioreader.IsDecodeError(nil))
	assert.False(t, ioreader.IsDecodeError(os.ErrNotExist))
	assert.True(t, ioreader.IsDecodeError(
		ioreader.DecodeExportError("x.csv", "utf-8")))
}

func TestOpenMissingFile(t *testing.T) {
	_, err := ioreader.New("no-such-file.csv", ioreader.EncUTF8, '|').Open()
	assert.Error(t, err)
}
