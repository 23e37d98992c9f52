package domain

// Settings holds tool-level configuration, independent of any skills document.
type Settings struct {
	Log   LogSettings
	Chart ChartDefaults
}

type LogSettings struct {
	Dir  string
	File string
}

type ChartDefaults struct {
	Size    ChartSize
	DPI     int
	Palette []string
}

// DefaultSettings provides sane defaults if no settings source is present.
func DefaultSettings() Settings {
	return Settings{
		Log: LogSettings{
			Dir:  ".",
			File: "radar_errors.log",
		},
		Chart: ChartDefaults{
			Size: ChartSize{Width: 6.4, Height: 4.8},
			DPI:  100,
			Palette: []string{
				"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
				"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
			},
		},
	}
}

// ScaffoldSpec describes a starter project: the directory and the skills config to seed it with.
type ScaffoldSpec struct {
	Dir    string
	Config string
}
