package ports

import "github.com/trexfeathers/WOPI/internal/domain"

type Scaffolder interface {
	Init(spec domain.ScaffoldSpec, force bool) ([]string, error)
}
