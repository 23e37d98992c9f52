package domain

import (
	"math"
	"sort"
)

// DefaultColor marks a date without a usable colour hint.
const DefaultColor = "default"

// FillValue replaces a skill that has no value for a date.
const FillValue = 0.0

// DateLayout is the canonical string form of a date.
const DateLayout = "2006-01-02"

// MaxSkillMagnitude bounds plottable values; larger magnitudes are rejected as
// out of range and axis bounds are clamped to it.
const MaxSkillMagnitude = 1e9

// SkillValue is either a number or an invalid raw value. It is decided once,
// when the document is mapped, so later stages never inspect raw types.
type SkillValue struct {
	number     float64
	valid      bool
	outOfRange bool
	raw        string
}

func NumericValue(v float64) SkillValue {
	return SkillValue{number: v, valid: true}
}

func InvalidValue(raw string) SkillValue {
	return SkillValue{raw: raw}
}

// OutOfRangeValue is a number whose magnitude exceeds MaxSkillMagnitude.
func OutOfRangeValue(raw string) SkillValue {
	return SkillValue{raw: raw, outOfRange: true}
}

func (v SkillValue) IsNumeric() bool { return v.valid }

func (v SkillValue) OutOfRange() bool { return v.outOfRange }

// Float returns the number and whether the value is numeric.
func (v SkillValue) Float() (float64, bool) {
	return v.number, v.valid
}

// Raw returns the original text of an invalid value.
func (v SkillValue) Raw() string { return v.raw }

// SkillLevel is one skill of a date entry, in document order.
type SkillLevel struct {
	Name  string
	Value SkillValue
}

// DateEntry is one element of the "Skills By Date" list.
type DateEntry struct {
	Index     int
	Date      string
	ColorHint string
	Skills    []SkillLevel
}

// SkillRecord is one flattened (date, skill, value) triple.
type SkillRecord struct {
	Date  string
	Skill string
	Value SkillValue
}

// ColorMap maps a date to a colour name, hex code or DefaultColor.
type ColorMap map[string]string

// Color returns the hint for date, or DefaultColor.
func (m ColorMap) Color(date string) string {
	if c, ok := m[date]; ok && c != "" {
		return c
	}
	return DefaultColor
}

// SortRecords orders records by (date, skill) in place.
func SortRecords(recs []SkillRecord) {
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Date != recs[j].Date {
			return recs[i].Date < recs[j].Date
		}
		return recs[i].Skill < recs[j].Skill
	})
}

// SkillTable is the pivoted view: rows are skills, columns are dates.
type SkillTable struct {
	Skills []string    // sorted lexically
	Dates  []string    // sorted chronologically
	Values [][]float64 // Values[row][col]

	// Filled is set when at least one cell holds FillValue instead of a real value.
	Filled bool
	// MinValue and MaxValue cover real values only.
	MinValue float64
	MaxValue float64
}

// Cell returns the value at (skill, date).
func (t SkillTable) Cell(skill, date string) (float64, bool) {
	r := indexOf(t.Skills, skill)
	c := indexOf(t.Dates, date)
	if r < 0 || c < 0 {
		return 0, false
	}
	return t.Values[r][c], true
}

// Column returns the values of one date, one per skill in row order.
func (t SkillTable) Column(date string) []float64 {
	c := indexOf(t.Dates, date)
	if c < 0 {
		return nil
	}
	out := make([]float64, len(t.Skills))
	for r := range t.Skills {
		out[r] = t.Values[r][c]
	}
	return out
}

// AxisMin is the lowest ring of the chart. With filled cells it never exceeds 1,
// so a zero fill stays visibly below real minima of 1 or more.
func (t SkillTable) AxisMin() int {
	m := int(math.Floor(clampMagnitude(t.MinValue)))
	if t.Filled && m > 1 {
		m = 1
	}
	return m
}

// AxisMax is the highest ring of the chart.
func (t SkillTable) AxisMax() int {
	return int(math.Ceil(clampMagnitude(t.MaxValue)))
}

func clampMagnitude(v float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return math.Max(-MaxSkillMagnitude, math.Min(MaxSkillMagnitude, v))
}

func (t SkillTable) Empty() bool {
	return len(t.Skills) == 0 || len(t.Dates) == 0
}

func indexOf(xs []string, s string) int {
	i := sort.SearchStrings(xs, s)
	if i < len(xs) && xs[i] == s {
		return i
	}
	return -1
}

// Warning is a non-fatal condition raised while processing a document.
type Warning struct {
	Kind    ErrorKind
	Index   int // entry index, -1 when not tied to an entry
	Line    int // source line of the entry, 0 when unknown
	Date    string
	Skill   string
	Message string
}
