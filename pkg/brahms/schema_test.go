package brahms_test

import (
	"testing"

	"github.com/redbuttegarden/brahmsync/pkg/brahms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaWidths(t *testing.T) {
	assert.Equal(t, 38, brahms.CollectionSchema.Width())
	assert.Equal(t, 12, brahms.ImageSchema.Width())
}

func TestSchemaIndices(t *testing.T) {
	for _, schema := range []*brahms.Schema{
		brahms.CollectionSchema, brahms.ImageSchema,
	} {
		seen := make(map[string]bool)
		for i, col := range schema.Columns {
			assert.Equal(t, i, col.Index,
				"%s schema column %q out of order", schema.Kind, col.Name)
			assert.False(t, seen[col.Name],
				"%s schema column %q duplicated", schema.Kind, col.Name)
			seen[col.Name] = true
		}
	}
}

func TestSchemaMap(t *testing.T) {
	row := make([]string, brahms.ImageSchema.Width())
	row[0] = "img.jpg"
	row[3] = "Rosa"

	fields, err := brahms.ImageSchema.Map(row)
	require.NoError(t, err)
	assert.Equal(t, "img.jpg", fields["imagefile"])
	assert.Equal(t, "Rosa", fields["genusname"])

	_, err = brahms.ImageSchema.Map(row[:11])
	assert.Error(t, err)
}
