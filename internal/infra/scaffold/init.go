// Package scaffold writes a starter project: an example skills config, a settings
// file and .gitignore entries for generated output.
package scaffold

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/ports"
)

//go:embed templates/radar.yaml templates/gitignore
var templatesFS embed.FS

const (
	ConfigFile   = "skills.yaml"
	SettingsFile = "radar.yaml"
	IgnoreFile   = ".gitignore"
)

type Initializer struct{}

func NewInitializer() *Initializer {
	return &Initializer{}
}

var _ ports.Scaffolder = (*Initializer)(nil)

// Init writes the starter files into spec.Dir and returns the paths it wrote or
// extended. Existing config and settings files are kept unless force is set;
// .gitignore is only ever appended to.
func (i *Initializer) Init(spec domain.ScaffoldSpec, force bool) ([]string, error) {
	root := filepath.Clean(spec.Dir)
	if strings.TrimSpace(spec.Dir) == "" {
		root = "."
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, scaffoldErr(root, err)
	}

	settings, err := templatesFS.ReadFile("templates/" + SettingsFile)
	if err != nil {
		return nil, scaffoldErr(root, err)
	}

	files := []struct {
		name string
		body []byte
	}{
		{ConfigFile, []byte(spec.Config)},
		{SettingsFile, settings},
	}

	var written []string
	for _, f := range files {
		dst := filepath.Join(root, f.name)
		if !force {
			if _, statErr := os.Stat(dst); statErr == nil {
				continue
			}
		}
		if err := os.WriteFile(dst, f.body, 0o644); err != nil {
			return written, scaffoldErr(dst, err)
		}
		written = append(written, dst)
	}

	ignore, err := templatesFS.ReadFile("templates/gitignore")
	if err != nil {
		return written, scaffoldErr(root, err)
	}
	ignorePath := filepath.Join(root, IgnoreFile)
	changed, err := mergeIgnore(ignorePath, ignore)
	if err != nil {
		return written, scaffoldErr(ignorePath, err)
	}
	if changed {
		written = append(written, ignorePath)
	}
	return written, nil
}

// mergeIgnore appends the template entries that path lacks. The template's first
// line is a header comment, written only when absent. It reports whether path changed.
func mergeIgnore(path string, tmpl []byte) (bool, error) {
	want := nonEmptyLines(string(tmpl))
	if len(want) < 2 {
		return false, nil
	}

	existing, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, err
	}
	have := map[string]bool{}
	for _, l := range nonEmptyLines(string(existing)) {
		have[l] = true
	}

	var add []string
	for _, l := range want[1:] {
		if !have[l] {
			add = append(add, l)
		}
	}
	if len(add) == 0 {
		return false, nil
	}
	if !have[want[0]] {
		add = append([]string{want[0]}, add...)
	}

	var b strings.Builder
	if len(existing) > 0 && !bytes.HasSuffix(existing, []byte("\n")) {
		b.WriteByte('\n')
	}
	for _, l := range add {
		b.WriteString(l)
		b.WriteByte('\n')
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return false, err
	}
	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return false, err
	}
	return true, f.Close()
}

func nonEmptyLines(s string) []string {
	var out []string
	for _, l := range strings.Split(s, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

func scaffoldErr(path string, err error) error {
	return &domain.OpError{Op: "scaffold.init", Kind: domain.KindScaffold, Path: path, Err: err}
}
