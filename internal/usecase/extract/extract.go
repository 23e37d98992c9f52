package extract

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/trexfeathers/WOPI/internal/domain"
)

// Keys of a date entry.
const (
	KeyDate     = "Date"
	KeySkills   = "Skills"
	KeyColour   = "Colour"
	KeyColorHex = "Color Hex"
	KeyColor    = "Color"
)

// colourKeys are tried in order; the first present one wins.
var colourKeys = []string{KeyColour, KeyColorHex, KeyColor}

// Result holds the flattened records of every valid entry.
type Result struct {
	Records  []domain.SkillRecord
	Colors   domain.ColorMap
	Warnings []domain.Warning
}

// Apply extracts skill records from the raw "Skills By Date" entries.
//
// Policy:
//   - An entry that cannot be parsed is skipped as a whole (none of its records are
//     kept) and reported with its 0-based index; later entries still run.
//   - A non-numeric skill value keeps its record as absent and is reported once.
//   - A date already produced by an earlier entry makes the later entry invalid.
func Apply(entries []domain.Node) Result {
	res := Result{
		Records:  []domain.SkillRecord{},
		Colors:   domain.ColorMap{},
		Warnings: []domain.Warning{},
	}

	for i, n := range entries {
		entry, err := ParseEntry(i, n)
		if err == nil {
			if _, dup := res.Colors[entry.Date]; dup {
				err = fmt.Errorf("duplicate %s %s", KeyDate, entry.Date)
			}
		}
		if err != nil {
			res.Warnings = append(res.Warnings, domain.Warning{
				Kind:    domain.KindInvalidEntry,
				Index:   i,
				Line:    n.Line,
				Message: fmt.Sprintf(`Skipping item %d of "Skills By Date" - invalid format: %v (item indices start at 0)`, i, err),
			})
			continue
		}

		res.Colors[entry.Date] = entry.ColorHint
		for _, s := range entry.Skills {
			if !s.Value.IsNumeric() {
				res.Warnings = append(res.Warnings, domain.Warning{
					Kind:    domain.KindInvalidValue,
					Index:   i,
					Line:    n.Line,
					Date:    entry.Date,
					Skill:   s.Name,
					Message: valueMessage(entry.Date, s),
				})
			}
			res.Records = append(res.Records, domain.SkillRecord{
				Date:  entry.Date,
				Skill: s.Name,
				Value: s.Value,
			})
		}
	}

	return res
}

// ParseEntry maps one raw entry into a DateEntry. Nothing is returned on error,
// so callers never see a partially parsed entry.
func ParseEntry(index int, n domain.Node) (domain.DateEntry, error) {
	if n.Kind != domain.NodeMapping {
		return domain.DateEntry{}, fmt.Errorf("entry is a %s, expected mapping", n.Kind)
	}

	dateNode, ok := n.Get(KeyDate)
	if !ok {
		return domain.DateEntry{}, fmt.Errorf("missing %s", KeyDate)
	}
	date, err := coerceDate(dateNode)
	if err != nil {
		return domain.DateEntry{}, err
	}

	skillsNode, ok := n.Get(KeySkills)
	if !ok {
		return domain.DateEntry{}, fmt.Errorf("missing %s", KeySkills)
	}
	if skillsNode.Kind != domain.NodeMapping {
		return domain.DateEntry{}, fmt.Errorf("%s is a %s, expected mapping", KeySkills, skillsNode.Kind)
	}

	entry := domain.DateEntry{
		Index:     index,
		Date:      date,
		ColorHint: colourHint(n),
		Skills:    make([]domain.SkillLevel, 0, len(skillsNode.Fields)),
	}

	pos := map[string]int{}
	for _, f := range skillsNode.Fields {
		lvl := domain.SkillLevel{Name: f.Key, Value: skillValue(f.Value)}
		if j, dup := pos[f.Key]; dup {
			entry.Skills[j] = lvl
			continue
		}
		pos[f.Key] = len(entry.Skills)
		entry.Skills = append(entry.Skills, lvl)
	}

	return entry, nil
}

var errNotDate = errors.New("not a calendar date")

func coerceDate(n domain.Node) (string, error) {
	if n.Kind == domain.NodeScalar {
		switch n.Scalar {
		case domain.ScalarTimestamp:
			return n.Time.Format(domain.DateLayout), nil
		case domain.ScalarString:
			if t, err := time.Parse(domain.DateLayout, strings.TrimSpace(n.Value)); err == nil {
				return t.Format(domain.DateLayout), nil
			}
		}
	}
	return "", fmt.Errorf("%s %q: %w", KeyDate, n.Value, errNotDate)
}

func colourHint(n domain.Node) string {
	for _, k := range colourKeys {
		c, ok := n.Get(k)
		if !ok {
			continue
		}
		if c.Kind == domain.NodeScalar && strings.TrimSpace(c.Value) != "" {
			return strings.TrimSpace(c.Value)
		}
		return domain.DefaultColor
	}
	return domain.DefaultColor
}

func skillValue(n domain.Node) domain.SkillValue {
	if n.IsNumber() && !math.IsNaN(n.Number) && !math.IsInf(n.Number, 0) {
		if math.Abs(n.Number) > domain.MaxSkillMagnitude {
			return domain.OutOfRangeValue(n.Value)
		}
		return domain.NumericValue(n.Number)
	}
	if n.Kind == domain.NodeScalar {
		return domain.InvalidValue(n.Value)
	}
	return domain.InvalidValue(n.Kind.String())
}

func valueMessage(date string, s domain.SkillLevel) string {
	if s.Value.OutOfRange() {
		return fmt.Sprintf("Date: %s  Skill: %s  value %s is out of range (|v| > %g) - point will not be plotted",
			date, s.Name, s.Value.Raw(), domain.MaxSkillMagnitude)
	}
	return fmt.Sprintf("Date: %s  Skill: %s  is non-numeric (%s) - point will not be plotted", date, s.Name, s.Value.Raw())
}
