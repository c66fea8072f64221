// Package brahms provides the pure row-to-payload transformation core for
// BRAHMS SQL exports.
//
// BRAHMS (the source botanical-collection database) dumps its tables as
// delimiter-separated text with a fixed column order per export kind. This
// package defines those column schemas, the field coercers that turn raw
// string fields into typed values, and the transformers that assemble the
// nested records submitted to the garden website's API.
//
// The package performs no I/O. Coercers may write warnings via slog for
// recoverable data problems; hard failures are returned as errors so the
// caller can drop the offending row and continue.
package brahms

import (
	"fmt"
)

// Column binds a zero-based position in an export row to its semantic name.
type Column struct {
	Index int
	Name  string
}

// Schema is a versioned descriptor of an export's fixed column order.
// Format drift in the upstream export is a data change here, not a code
// change in the transformers.
type Schema struct {
	// Kind names the export this schema describes.
	Kind string
	// Version tracks the BRAHMS export revision the column order matches.
	Version string
	Columns []Column
}

// Width returns the exact number of columns a row must have.
func (s *Schema) Width() int {
	return len(s.Columns)
}

// Map converts a positional row into a field-name lookup.
// Rows whose field count does not match the schema width are rejected.
func (s *Schema) Map(row []string) (map[string]string, error) {
	if len(row) != s.Width() {
		return nil, fmt.Errorf(
			"%s row has %d fields, schema %s expects %d",
			s.Kind, len(row), s.Version, s.Width(),
		)
	}
	res := make(map[string]string, s.Width())
	for _, col := range s.Columns {
		res[col.Name] = row[col.Index]
	}
	return res, nil
}

// CollectionSchema describes the living plant collections export.
// Column order follows the BRAHMS SQL export:
// familyname|vernacularfamilyname|genusname|speciesname|calcfullname|
// subspecies|variety|subvariety|forma|subforma|cultivar|vernacularname|
// habit|hardiness|waterregime|exposure|plantsize|colour|gardenlocalityarea|
// gardenlocalityname|gardenlocalitycode|plantid|latitude|longitude|
// commemorationcategory|commemorationperson|plantday|plantmonth|plantyear|
// notonline|lastmodifiedon|str05|str12|str18|str19|str20|str22|str23
var CollectionSchema = &Schema{
	Kind:    "collection",
	Version: "2021-brahms-sql",
	Columns: []Column{
		{0, "familyname"},
		{1, "vernacularfamilyname"},
		{2, "genusname"},
		{3, "speciesname"},
		{4, "calcfullname"},
		{5, "subspecies"},
		{6, "variety"},
		{7, "subvariety"},
		{8, "forma"},
		{9, "subforma"},
		{10, "cultivar"},
		{11, "vernacularname"},
		{12, "habit"},
		{13, "hardiness"},
		{14, "waterregime"},
		{15, "exposure"},
		{16, "plantsize"},
		{17, "colour"},
		{18, "gardenlocalityarea"},
		{19, "gardenlocalityname"},
		{20, "gardenlocalitycode"},
		{21, "plantid"},
		{22, "latitude"},
		{23, "longitude"},
		{24, "commemorationcategory"},
		{25, "commemorationperson"},
		{26, "plantday"},
		{27, "plantmonth"},
		{28, "plantyear"},
		{29, "notonline"},
		{30, "lastmodifiedon"},
		{31, "bloomtime"}, // str05
		{32, "utahnative"}, // str12
		{33, "plantselect"}, // str18
		{34, "deer"},        // str19
		{35, "rabbit"},      // str20
		{36, "bee"},         // str22
		{37, "highelevation"}, // str23
	},
}

// ImageSchema describes the species image locations export.
// Column order:
// imagefile|copyright|directoryname|genusname|speciesname|subspecies|
// variety|subvariety|forma|subforma|cultivar|lastmodifiedon
var ImageSchema = &Schema{
	Kind:    "image",
	Version: "2021-brahms-sql",
	Columns: []Column{
		{0, "imagefile"},
		{1, "copyright"},
		{2, "directoryname"},
		{3, "genusname"},
		{4, "speciesname"},
		{5, "subspecies"},
		{6, "variety"},
		{7, "subvariety"},
		{8, "forma"},
		{9, "subforma"},
		{10, "cultivar"},
		{11, "lastmodifiedon"},
	},
}
