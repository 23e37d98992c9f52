package usecase

import (
	"errors"
	"math"
	"sort"

	"github.com/trexfeathers/WOPI/internal/domain"
)

// Reshape pivots flat records into a skill-by-date table. Combinations without a
// real value hold domain.FillValue and mark the table as Filled.
func Reshape(records []domain.SkillRecord) (domain.SkillTable, error) {
	if len(records) == 0 {
		return domain.SkillTable{}, noPlottableData(errors.New("no valid date entries"))
	}

	recs := make([]domain.SkillRecord, len(records))
	copy(recs, records)
	domain.SortRecords(recs)

	skills := distinct(recs, func(r domain.SkillRecord) string { return r.Skill })
	dates := distinct(recs, func(r domain.SkillRecord) string { return r.Date })

	rowOf := indexMap(skills)
	colOf := indexMap(dates)

	values := make([][]float64, len(skills))
	seen := make([][]bool, len(skills))
	for i := range values {
		values[i] = make([]float64, len(dates))
		seen[i] = make([]bool, len(dates))
	}

	minV, maxV := math.Inf(1), math.Inf(-1)
	for _, r := range recs {
		v, ok := r.Value.Float()
		if !ok {
			continue
		}
		row, col := rowOf[r.Skill], colOf[r.Date]
		values[row][col] = v
		seen[row][col] = true
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	if math.IsInf(minV, 1) {
		return domain.SkillTable{}, noPlottableData(errors.New("no numeric skill values"))
	}

	t := domain.SkillTable{
		Skills:   skills,
		Dates:    dates,
		Values:   values,
		MinValue: minV,
		MaxValue: maxV,
	}
	for i := range seen {
		for j := range seen[i] {
			if !seen[i][j] {
				t.Values[i][j] = domain.FillValue
				t.Filled = true
			}
		}
	}

	return t, nil
}

func distinct(recs []domain.SkillRecord, key func(domain.SkillRecord) string) []string {
	set := map[string]struct{}{}
	out := []string{}
	for _, r := range recs {
		k := key(r)
		if _, ok := set[k]; ok {
			continue
		}
		set[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func indexMap(xs []string) map[string]int {
	m := make(map[string]int, len(xs))
	for i, x := range xs {
		m[x] = i
	}
	return m
}

func noPlottableData(err error) error {
	return &domain.OpError{
		Op:   "usecase.reshape",
		Kind: domain.KindNoPlottableData,
		Err:  err,
	}
}
