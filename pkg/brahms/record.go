package brahms

// Family is the taxonomic family of a species.
type Family struct {
	Name           string `json:"name"`
	VernacularName string `json:"vernacular_name"`
}

// Genus is the taxonomic genus, nested under its family.
type Genus struct {
	Family Family `json:"family"`
	Name   string `json:"name"`
}

// Species carries the taxonomic identity and horticultural attributes of
// a collection record. Hardiness and BloomTime are always present lists,
// possibly empty, never null.
type Species struct {
	Genus          Genus    `json:"genus"`
	Name           string   `json:"name"`
	FullName       string   `json:"full_name"`
	Subspecies     string   `json:"subspecies"`
	Variety        string   `json:"variety"`
	Subvariety     string   `json:"subvariety"`
	Forma          string   `json:"forma"`
	Subforma       string   `json:"subforma"`
	Cultivar       string   `json:"cultivar"`
	VernacularName string   `json:"vernacular_name"`
	Habit          string   `json:"habit"`
	Hardiness      []int    `json:"hardiness"`
	WaterRegime    string   `json:"water_regime"`
	Exposure       string   `json:"exposure"`
	BloomTime      []string `json:"bloom_time"`
	PlantSize      string   `json:"plant_size"`
	FlowerColor    string   `json:"flower_color"`
	UtahNative     bool     `json:"utah_native"`
	PlantSelect    bool     `json:"plant_select"`
	DeerResist     bool     `json:"deer_resist"`
	RabbitResist   bool     `json:"rabbit_resist"`
	BeeFriend      bool     `json:"bee_friend"`
	HighElevation  bool     `json:"high_elevation"`
}

// Garden locates the specimen inside the garden grounds.
type Garden struct {
	Area string `json:"area"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// Location holds GPS coordinates rounded to 6 decimal places.
// Nil values serialize as null when the export field was empty.
type Location struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Collection is the payload for one planted specimen, shaped for the
// website's collections endpoint.
type Collection struct {
	Species               Species  `json:"species"`
	Garden                Garden   `json:"garden"`
	Location              Location `json:"location"`
	PlantDate             *string  `json:"plant_date"`
	PlantID               string   `json:"plant_id"`
	CommemorationCategory string   `json:"commemoration_category"`
	CommemorationPerson   string   `json:"commemoration_person"`
}

// SpeciesQuery identifies a species by its taxonomic fields for lookup on
// the website. Missing values are empty strings, never null: the remote
// endpoint matches empty against empty.
type SpeciesQuery struct {
	Genus      string `json:"genus"`
	Name       string `json:"name"`
	Subspecies string `json:"subspecies"`
	Variety    string `json:"variety"`
	Subvariety string `json:"subvariety"`
	Forma      string `json:"forma"`
	Subforma   string `json:"subforma"`
	Cultivar   string `json:"cultivar"`
}

// SpeciesImage is one image association from the image locations export.
// Directory and FileName come straight from the export (FileName with the
// byte-order mark stripped); turning them into a usable local path is the
// job of an injected path resolver.
type SpeciesImage struct {
	Query     SpeciesQuery
	Directory string
	FileName  string
	Copyright string
}
