package brahms

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.English)

// CleanRow strips the trailing comma artifact the BRAHMS export leaves on
// fields. Applied once per row before any other coercion.
func CleanRow(row []string) []string {
	res := make([]string, len(row))
	for i, field := range row {
		res[i] = strings.TrimRight(field, ",")
	}
	return res
}

// Hardiness parses a comma-separated list of hardiness zones into integers.
// An empty input yields an empty list. Any non-numeric token fails the
// whole value; the caller is expected to drop the row.
func Hardiness(s string) ([]int, error) {
	res := []int{}
	if s == "" {
		return res, nil
	}
	for _, elem := range strings.Split(s, ",") {
		zone, err := strconv.Atoi(strings.TrimSpace(elem))
		if err != nil {
			return nil, fmt.Errorf("bad hardiness zone %q in %q", elem, s)
		}
		res = append(res, zone)
	}
	return res, nil
}

// BloomMonths converts the space-separated bloom time value into a list of
// title-cased month labels. The qualifiers Early, Mid and Late merge with
// the following token into one label ("Early April"). Order is preserved:
// it carries the bloom sequence.
func BloomMonths(s string) []string {
	res := []string{}
	if s == "" {
		return res
	}
	tokens := strings.Fields(s)
	for i := 0; i < len(tokens); i++ {
		token := titleCaser.String(tokens[i])
		switch token {
		case "Early", "Mid", "Late":
			if i+1 < len(tokens) {
				i++
				token = token + " " + titleCaser.String(tokens[i])
			}
		}
		res = append(res, token)
	}
	return res
}

// PlantDate assembles a planting date from its day, month and year fields.
// The date is returned as "YYYY-M-D" only when all three parts are present,
// day is in [1,31], month in [1,12] and year has 4 characters. An
// out-of-range value logs a warning and returns an empty date; the record
// is still usable. A non-numeric day or month is an error for the row.
func PlantDate(day, month, year, plantID string) (string, error) {
	if day == "" || month == "" || year == "" {
		return "", nil
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return "", fmt.Errorf("bad plant date day %q: %w", day, err)
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return "", fmt.Errorf("bad plant date month %q: %w", month, err)
	}
	if d < 1 || d > 31 || m < 1 || m > 12 || len(year) != 4 {
		slog.Warn("Date value invalid",
			"plant_id", plantID,
			"date", year+"-"+month+"-"+day,
		)
		return "", nil
	}
	return year + "-" + month + "-" + day, nil
}

// Flag interprets a BRAHMS yes/no field. The value is true iff its
// lower-cased form is "yes", "x", or one of the extra per-field spellings
// ("utah native" for the Utah-native column). Everything else, including
// an empty field, is false.
func Flag(s string, extra ...string) bool {
	v := strings.ToLower(s)
	if v == "yes" || v == "x" {
		return true
	}
	for _, e := range extra {
		if v == e {
			return true
		}
	}
	return false
}

// Coordinate parses a latitude or longitude field, rounding to 6 decimal
// places. An empty field yields nil.
func Coordinate(s string) (*float64, error) {
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("bad coordinate %q: %w", s, err)
	}
	v = math.Round(v*1e6) / 1e6
	return &v, nil
}
