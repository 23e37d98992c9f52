package usecase

import (
	"fmt"

	"github.com/trexfeathers/WOPI/internal/domain"
)

// Top-level keys of a skills document.
const (
	KeySkillsByDate = "Skills By Date"
	KeyChartTitle   = "Chart Title"
	KeyChartSize    = "Chart Size"
	KeyWidth        = "Width"
	KeyHeight       = "Height"
)

// ValidateDocument checks that the document carries the mandatory date-entry list
// and returns its entries in document order.
func ValidateDocument(cfg domain.RawConfig) ([]domain.Node, error) {
	list, ok := cfg.Root.Get(KeySkillsByDate)
	if !ok {
		return nil, missingSection(cfg.Source, fmt.Errorf("key %q not found", KeySkillsByDate))
	}
	if list.Kind != domain.NodeSequence {
		return nil, missingSection(cfg.Source, fmt.Errorf("key %q is a %s, expected list", KeySkillsByDate, list.Kind))
	}
	return list.Items, nil
}

func missingSection(path string, err error) error {
	return &domain.OpError{
		Op:   "usecase.validate_document",
		Kind: domain.KindMissingSection,
		Path: path,
		Err:  err,
	}
}
