package yamlconfig

import (
	"errors"
	"os"

	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/ports"
	"gopkg.in/yaml.v3"
)

type Loader struct {
	readFile func(string) ([]byte, error)
}

type Option func(*Loader)

// WithReadFile replaces os.ReadFile; useful for tests.
func WithReadFile(fn func(string) ([]byte, error)) Option {
	return func(l *Loader) {
		if fn != nil {
			l.readFile = fn
		}
	}
}

func NewLoader(opts ...Option) *Loader {
	l := &Loader{readFile: os.ReadFile}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadFile reads and parses the document at path.
func (l *Loader) LoadFile(path string) (domain.RawConfig, error) {
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return domain.RawConfig{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindConfigNotFound,
			Path: path,
			Err:  errors.New("path is a directory"),
		}
	}

	b, err := l.readFile(path)
	if err != nil {
		return domain.RawConfig{}, &domain.OpError{
			Op:   "yamlconfig.load",
			Kind: domain.KindConfigNotFound,
			Path: path,
			Err:  err,
		}
	}

	return parse(path, b)
}

// LoadText parses an in-memory document.
func (l *Loader) LoadText(text string) (domain.RawConfig, error) {
	return parse("", []byte(text))
}

func parse(source string, b []byte) (domain.RawConfig, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return domain.RawConfig{}, &domain.OpError{
			Op:   "yamlconfig.parse",
			Kind: domain.KindConfigSyntax,
			Path: source,
			Err:  err,
		}
	}

	root := domain.Node{Kind: domain.NodeNull, Scalar: domain.ScalarNull}
	if doc.Kind == yaml.DocumentNode && len(doc.Content) > 0 {
		root = mapNode(doc.Content[0], 0)
	}

	return domain.RawConfig{Source: source, Root: root}, nil
}
