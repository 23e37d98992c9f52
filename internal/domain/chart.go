package domain

// ChartSize is the requested figure size in inches.
type ChartSize struct {
	Width  float64 `validate:"gt=0,lte=100"`
	Height float64 `validate:"gt=0,lte=100"`
}

// ChartSpec is everything a renderer needs to draw one radar chart.
type ChartSpec struct {
	Title  string
	Size   ChartSize
	Table  SkillTable
	Colors ColorMap
}

// Stage is a state of one pipeline run.
type Stage string

const (
	StageStart     Stage = "start"
	StageLoaded    Stage = "loaded"
	StageValidated Stage = "validated"
	StageExtracted Stage = "extracted"
	StageReshaped  Stage = "reshaped"
	StageRendered  Stage = "rendered"
	StageAborted   Stage = "aborted"
)
