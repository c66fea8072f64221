package brahms_test

import (
	"testing"

	"github.com/redbuttegarden/brahmsync/pkg/brahms"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectionRow returns a well-formed 38-column export row. Overrides are
// applied by column index.
func collectionRow(overrides map[int]string) []string {
	row := make([]string, brahms.CollectionSchema.Width())
	base := map[int]string{
		0:  "Rosaceae",
		1:  "Rose Family",
		2:  "Rosa",
		3:  "woodsii",
		4:  "Rosa woodsii Lindl.",
		11: "Woods' Rose",
		12: "Shrub",
		13: "4,5,6",
		14: "Moderate",
		15: "Full Sun",
		16: "1-3 ft",
		17: "Pink",
		18: "Natural Area",
		19: "North Slope",
		20: "NA-3",
		21: "1999-0123",
		22: "40.76623849",
		23: "-111.8258888888",
		26: "15",
		27: "6",
		28: "2021",
		31: "Early May June",
		32: "Utah Native",
		33: "yes",
		34: "X",
		36: "x",
	}
	for i, v := range base {
		row[i] = v
	}
	for i, v := range overrides {
		row[i] = v
	}
	return row
}

func imageRow() []string {
	return []string{
		"\ufeffrosa_woodsii_01.jpg",
		"© Red Butte Garden",
		`B:\Photos\Rosa`,
		"Rosa",
		"woodsii",
		"", "", "", "", "",
		"",
		"2021-06-15 10:00:00",
	}
}

func TestToCollection(t *testing.T) {
	rec, err := brahms.ToCollection(collectionRow(nil))
	require.NoError(t, err)

	assert.Equal(t, "Rosaceae", rec.Species.Genus.Family.Name)
	assert.Equal(t, "Rose Family", rec.Species.Genus.Family.VernacularName)
	assert.Equal(t, "Rosa", rec.Species.Genus.Name)
	assert.Equal(t, "woodsii", rec.Species.Name)
	assert.Equal(t, "Rosa woodsii Lindl.", rec.Species.FullName)
	assert.Equal(t, []int{4, 5, 6}, rec.Species.Hardiness)
	assert.Equal(t, []string{"Early May", "June"}, rec.Species.BloomTime)
	assert.True(t, rec.Species.UtahNative)
	assert.True(t, rec.Species.PlantSelect)
	assert.True(t, rec.Species.DeerResist)
	assert.False(t, rec.Species.RabbitResist)
	assert.True(t, rec.Species.BeeFriend)
	assert.False(t, rec.Species.HighElevation)

	assert.Equal(t, "Natural Area", rec.Garden.Area)
	assert.Equal(t, "North Slope", rec.Garden.Name)
	assert.Equal(t, "NA-3", rec.Garden.Code)

	require.NotNil(t, rec.Location.Latitude)
	require.NotNil(t, rec.Location.Longitude)
	assert.InDelta(t, 40.766238, *rec.Location.Latitude, 1e-9)
	assert.InDelta(t, -111.825889, *rec.Location.Longitude, 1e-9)

	require.NotNil(t, rec.PlantDate)
	assert.Equal(t, "2021-6-15", *rec.PlantDate)
	assert.Equal(t, "1999-0123", rec.PlantID)
}

func TestToCollectionIsPure(t *testing.T) {
	row := collectionRow(nil)
	first, err := brahms.ToCollection(row)
	require.NoError(t, err)
	second, err := brahms.ToCollection(row)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestToCollectionFailures(t *testing.T) {
	tests := []struct {
		name      string
		overrides map[int]string
	}{
		{
			name:      "bad hardiness token",
			overrides: map[int]string{13: "4,x5,6"},
		},
		{
			name:      "non-numeric plant day",
			overrides: map[int]string{26: "ab"},
		},
		{
			name:      "non-numeric latitude",
			overrides: map[int]string{22: "forty"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := brahms.ToCollection(collectionRow(tt.overrides))
			assert.Error(t, err)
			assert.Nil(t, rec)
		})
	}
}

func TestToCollectionOptionalFields(t *testing.T) {
	rec, err := brahms.ToCollection(collectionRow(map[int]string{
		13: "", // hardiness
		22: "", // latitude
		23: "", // longitude
		26: "32", // invalid day: warn, record still emitted
		31: "", // bloom time
	}))
	require.NoError(t, err)

	assert.Equal(t, []int{}, rec.Species.Hardiness)
	assert.Equal(t, []string{}, rec.Species.BloomTime)
	assert.Nil(t, rec.Location.Latitude)
	assert.Nil(t, rec.Location.Longitude)
	assert.Nil(t, rec.PlantDate)
}

func TestToCollectionWidth(t *testing.T) {
	row := collectionRow(nil)

	rec, err := brahms.ToCollection(row[:37])
	assert.Error(t, err)
	assert.Nil(t, rec)

	rec, err = brahms.ToCollection(append(row, "extra"))
	assert.Error(t, err)
	assert.Nil(t, rec)
}

func TestToImage(t *testing.T) {
	img, err := brahms.ToImage(imageRow())
	require.NoError(t, err)

	assert.Equal(t, "Rosa", img.Query.Genus)
	assert.Equal(t, "woodsii", img.Query.Name)
	assert.Equal(t, "", img.Query.Cultivar)
	assert.Equal(t, `B:\Photos\Rosa`, img.Directory)
	// BOM from the export's first column is stripped
	assert.Equal(t, "rosa_woodsii_01.jpg", img.FileName)
	assert.Equal(t, "© Red Butte Garden", img.Copyright)
}

func TestToImageWidth(t *testing.T) {
	tests := []struct {
		name    string
		fields  int
		wantErr bool
	}{
		{name: "12 fields never raises", fields: 12, wantErr: false},
		{name: "11 fields dropped", fields: 11, wantErr: true},
		{name: "13 fields dropped", fields: 13, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row := make([]string, tt.fields)
			copy(row, imageRow())
			img, err := brahms.ToImage(row)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, img)
				return
			}
			assert.NoError(t, err)
			assert.NotNil(t, img)
		})
	}
}
