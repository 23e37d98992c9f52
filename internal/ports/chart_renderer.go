package ports

import (
	"context"

	"github.com/trexfeathers/WOPI/internal/domain"
)

// ChartRenderer draws a chart and either writes it to path or shows it.
type ChartRenderer interface {
	Save(ctx context.Context, spec domain.ChartSpec, path string) error
	Display(ctx context.Context, spec domain.ChartSpec) error
}
