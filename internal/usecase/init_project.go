package usecase

import (
	"github.com/trexfeathers/WOPI/internal/domain"
	"github.com/trexfeathers/WOPI/internal/ports"
)

type InitProject struct {
	scaffolder ports.Scaffolder
}

func NewInitProject(s ports.Scaffolder) *InitProject {
	return &InitProject{scaffolder: s}
}

// Execute seeds dir with the example skills config and a settings file.
func (uc *InitProject) Execute(dir string, force bool) ([]string, error) {
	return uc.scaffolder.Init(domain.ScaffoldSpec{Dir: dir, Config: ExampleDocument}, force)
}
