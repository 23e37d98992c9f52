package ports

import "github.com/trexfeathers/WOPI/internal/domain"

// ConfigLoader reads a skills document from a source (e.g., filesystem or literal text).
type ConfigLoader interface {
	LoadFile(path string) (domain.RawConfig, error)
	LoadText(text string) (domain.RawConfig, error)
}
