package brahms

import (
	"fmt"
	"strings"
)

// ToCollection transforms one cleaned export row into a Collection payload.
// Any malformed field that cannot be coerced fails the row with an error;
// the caller logs it and continues with the next row. The transformation is
// pure: the same row always yields the same record.
func ToCollection(row []string) (*Collection, error) {
	fields, err := CollectionSchema.Map(CleanRow(row))
	if err != nil {
		return nil, err
	}

	plantID := fields["plantid"]

	hardiness, err := Hardiness(fields["hardiness"])
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", plantID, err)
	}

	bloomTime := BloomMonths(fields["bloomtime"])

	plantDate, err := PlantDate(
		fields["plantday"], fields["plantmonth"], fields["plantyear"], plantID,
	)
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", plantID, err)
	}
	var datePtr *string
	if plantDate != "" {
		datePtr = &plantDate
	}

	lat, err := Coordinate(fields["latitude"])
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", plantID, err)
	}
	lon, err := Coordinate(fields["longitude"])
	if err != nil {
		return nil, fmt.Errorf("collection %s: %w", plantID, err)
	}

	res := &Collection{
		Species: Species{
			Genus: Genus{
				Family: Family{
					Name:           fields["familyname"],
					VernacularName: fields["vernacularfamilyname"],
				},
				Name: fields["genusname"],
			},
			Name:           fields["speciesname"],
			FullName:       fields["calcfullname"],
			Subspecies:     fields["subspecies"],
			Variety:        fields["variety"],
			Subvariety:     fields["subvariety"],
			Forma:          fields["forma"],
			Subforma:       fields["subforma"],
			Cultivar:       fields["cultivar"],
			VernacularName: fields["vernacularname"],
			Habit:          fields["habit"],
			Hardiness:      hardiness,
			WaterRegime:    fields["waterregime"],
			Exposure:       fields["exposure"],
			BloomTime:      bloomTime,
			PlantSize:      fields["plantsize"],
			FlowerColor:    fields["colour"],
			UtahNative:     Flag(fields["utahnative"], "utah native"),
			PlantSelect:    Flag(fields["plantselect"]),
			DeerResist:     Flag(fields["deer"]),
			RabbitResist:   Flag(fields["rabbit"]),
			BeeFriend:      Flag(fields["bee"]),
			HighElevation:  Flag(fields["highelevation"]),
		},
		Garden: Garden{
			Area: fields["gardenlocalityarea"],
			Name: fields["gardenlocalityname"],
			Code: fields["gardenlocalitycode"],
		},
		Location: Location{
			Latitude:  lat,
			Longitude: lon,
		},
		PlantDate:             datePtr,
		PlantID:               plantID,
		CommemorationCategory: fields["commemorationcategory"],
		CommemorationPerson:   fields["commemorationperson"],
	}

	return res, nil
}

// ToImage transforms one image locations row into a SpeciesImage.
// A row whose field count does not match the image schema fails with an
// error; like every other malformed row it is dropped, not fatal to the
// file. The byte-order mark BRAHMS leaves on the first field is stripped
// from the image file name.
func ToImage(row []string) (*SpeciesImage, error) {
	fields, err := ImageSchema.Map(CleanRow(row))
	if err != nil {
		return nil, err
	}

	res := &SpeciesImage{
		Query: SpeciesQuery{
			Genus:      fields["genusname"],
			Name:       fields["speciesname"],
			Subspecies: fields["subspecies"],
			Variety:    fields["variety"],
			Subvariety: fields["subvariety"],
			Forma:      fields["forma"],
			Subforma:   fields["subforma"],
			Cultivar:   fields["cultivar"],
		},
		Directory: fields["directoryname"],
		FileName:  strings.ReplaceAll(fields["imagefile"], "\uFEFF", ""),
		Copyright: fields["copyright"],
	}

	return res, nil
}
