package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/trexfeathers/WOPI/internal/domain"
)

// ChartOptions reads the optional title and size from a document. Missing or
// invalid values fall back to no title and the default size; each fallback is
// returned as a note for the user.
func ChartOptions(cfg domain.RawConfig, defaults domain.ChartSize, v *validator.Validate) (string, domain.ChartSize, []string) {
	var notes []string

	title, ok := chartTitle(cfg.Root)
	if !ok {
		notes = append(notes, fmt.Sprintf("Config %q key missing/invalid. No title will be displayed", KeyChartTitle))
	}

	size, err := chartSize(cfg.Root, v)
	if err != nil {
		notes = append(notes, fmt.Sprintf("Config %q key missing/invalid (%v). Default size will be used", KeyChartSize, err))
		size = defaults
	}

	return title, size, notes
}

func chartTitle(root domain.Node) (string, bool) {
	n, ok := root.Get(KeyChartTitle)
	if !ok || n.Kind != domain.NodeScalar {
		return "", false
	}
	return n.Value, true
}

func chartSize(root domain.Node, v *validator.Validate) (domain.ChartSize, error) {
	n, ok := root.Get(KeyChartSize)
	if !ok {
		return domain.ChartSize{}, fmt.Errorf("key not found")
	}
	if n.Kind != domain.NodeMapping {
		return domain.ChartSize{}, fmt.Errorf("expected mapping, got %s", n.Kind)
	}

	w, ok := n.Get(KeyWidth)
	if !ok || !w.IsNumber() {
		return domain.ChartSize{}, fmt.Errorf("%s must be a number", KeyWidth)
	}
	h, ok := n.Get(KeyHeight)
	if !ok || !h.IsNumber() {
		return domain.ChartSize{}, fmt.Errorf("%s must be a number", KeyHeight)
	}

	size := domain.ChartSize{Width: w.Number, Height: h.Number}
	if err := v.Struct(size); err != nil {
		return domain.ChartSize{}, err
	}
	return size, nil
}
