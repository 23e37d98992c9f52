package usecase

import (
	"errors"
	"testing"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/infra/yamlconfig"
)

func TestValidateDocument_FromYAML(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		entries int
		wantErr bool
	}{
		{"empty document", "", 0, true},
		{"top level list", "- a\n- b\n", 0, true},
		{"missing key", "Chart Title: x\n", 0, true},
		{"key is a mapping", "Skills By Date:\n  a: 1\n", 0, true},
		{"key is null", "Skills By Date:\n", 0, true},
		{"empty list", "Skills By Date: []\n", 0, false},
		{"two entries", "Skills By Date:\n  - Date: 2020-01-01\n  - 3\n", 2, false},
	}

	l := yamlconfig.NewLoader()
	for _, c := range cases {
		cfg, err := l.LoadText(c.doc)
		if err != nil {
			t.Fatalf("%s: load: %v", c.name, err)
		}

		entries, err := ValidateDocument(cfg)
		if c.wantErr {
			if !errors.Is(err, domain.ErrMissingMandatorySection) {
				t.Fatalf("%s: expected missing section, got %v", c.name, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", c.name, err)
		}
		if len(entries) != c.entries {
			t.Fatalf("%s: got %d entries, want %d", c.name, len(entries), c.entries)
		}
	}
}
