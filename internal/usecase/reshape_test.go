package usecase

import (
	"errors"
	"testing"

	"github.com/trexfeathers/WOPI/internal/domain"
)

func rec(date, skill string, v float64) domain.SkillRecord {
	return domain.SkillRecord{Date: date, Skill: skill, Value: domain.NumericValue(v)}
}

func TestReshape_Empty(t *testing.T) {
	_, err := Reshape(nil)
	if !errors.Is(err, domain.ErrNoPlottableData) {
		t.Fatalf("expected ErrNoPlottableData, got %v", err)
	}
}

func TestReshape_AllAbsent(t *testing.T) {
	_, err := Reshape([]domain.SkillRecord{{Date: "2019-04-08", Skill: "a", Value: domain.InvalidValue("abc")}})
	if !domain.IsKind(err, domain.KindNoPlottableData) {
		t.Fatalf("expected no_plottable_data, got %v", err)
	}
}

func TestReshape_SortsAndFills(t *testing.T) {
	records := []domain.SkillRecord{
		rec("2019-04-12", "X", 4),
		rec("2019-04-08", "Y", 5),
		rec("2019-04-08", "X", 3),
	}

	tbl, err := Reshape(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(tbl.Skills) != 2 || tbl.Skills[0] != "X" || tbl.Skills[1] != "Y" {
		t.Fatalf("unexpected rows: %v", tbl.Skills)
	}
	if len(tbl.Dates) != 2 || tbl.Dates[0] != "2019-04-08" || tbl.Dates[1] != "2019-04-12" {
		t.Fatalf("unexpected columns: %v", tbl.Dates)
	}
	if v, _ := tbl.Cell("Y", "2019-04-12"); v != 0 {
		t.Fatalf("expected fill 0, got %v", v)
	}
	if !tbl.Filled {
		t.Fatalf("expected Filled")
	}
	if tbl.MinValue != 3 || tbl.MaxValue != 5 {
		t.Fatalf("expected real min/max 3/5, got %v/%v", tbl.MinValue, tbl.MaxValue)
	}
	if tbl.AxisMin() != 1 {
		t.Fatalf("expected axis min 1, got %d", tbl.AxisMin())
	}

	// input must not be reordered
	if records[0].Date != "2019-04-12" {
		t.Fatalf("Reshape mutated its input")
	}
}

func TestReshape_NoFill(t *testing.T) {
	tbl, err := Reshape([]domain.SkillRecord{rec("2019-04-08", "a", 2), rec("2019-04-08", "b", 4)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tbl.Filled {
		t.Fatalf("did not expect Filled")
	}
	if tbl.AxisMin() != 2 {
		t.Fatalf("expected axis min 2, got %d", tbl.AxisMin())
	}
}

func TestValidateDocument(t *testing.T) {
	list := domain.Node{Kind: domain.NodeSequence, Items: []domain.Node{{Kind: domain.NodeMapping}}}
	ok := domain.RawConfig{Root: domain.Node{Kind: domain.NodeMapping, Fields: []domain.Field{{Key: KeySkillsByDate, Value: list}}}}

	entries, err := ValidateDocument(ok)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}

	cases := []struct {
		name string
		root domain.Node
	}{
		{"null document", domain.Node{Kind: domain.NodeNull}},
		{"scalar document", domain.Node{Kind: domain.NodeScalar, Value: "hello"}},
		{"key missing", domain.Node{Kind: domain.NodeMapping}},
		{"not a list", domain.Node{Kind: domain.NodeMapping, Fields: []domain.Field{
			{Key: KeySkillsByDate, Value: domain.Node{Kind: domain.NodeMapping}},
		}}},
	}
	for _, c := range cases {
		_, err := ValidateDocument(domain.RawConfig{Root: c.root})
		if !errors.Is(err, domain.ErrMissingMandatorySection) {
			t.Errorf("%s: expected ErrMissingMandatorySection, got %v", c.name, err)
		}
	}
}
