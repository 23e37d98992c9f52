package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/trexfeathers/WOPI/internal/usecase"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
)

type outcomeView struct {
	Title    string                        `json:"title"`
	Width    float64                       `json:"width"`
	Height   float64                       `json:"height"`
	Skills   []string                      `json:"skills"`
	Dates    []string                      `json:"dates"`
	Values   map[string]map[string]float64 `json:"values"`
	Colors   map[string]string             `json:"colors"`
	Filled   bool                          `json:"filled"`
	AxisMin  int                           `json:"axis_min"`
	AxisMax  int                           `json:"axis_max"`
	Warnings []warningView                 `json:"warnings"`
}

type warningView struct {
	Kind    string `json:"kind"`
	Index   int    `json:"index"`
	Date    string `json:"date,omitempty"`
	Skill   string `json:"skill,omitempty"`
	Message string `json:"message"`
}

func toView(res usecase.Outcome) outcomeView {
	t := res.Spec.Table
	v := outcomeView{
		Title:    res.Spec.Title,
		Width:    res.Spec.Size.Width,
		Height:   res.Spec.Size.Height,
		Skills:   t.Skills,
		Dates:    t.Dates,
		Values:   make(map[string]map[string]float64, len(t.Dates)),
		Colors:   make(map[string]string, len(t.Dates)),
		Filled:   t.Filled,
		AxisMin:  t.AxisMin(),
		AxisMax:  t.AxisMax(),
		Warnings: make([]warningView, 0, len(res.Warnings)),
	}
	for _, d := range t.Dates {
		col := make(map[string]float64, len(t.Skills))
		for i, x := range t.Column(d) {
			col[t.Skills[i]] = x
		}
		v.Values[d] = col
		v.Colors[d] = res.Spec.Colors.Color(d)
	}
	for _, w := range res.Warnings {
		v.Warnings = append(v.Warnings, warningView{
			Kind:    string(w.Kind),
			Index:   w.Index,
			Date:    w.Date,
			Skill:   w.Skill,
			Message: w.Message,
		})
	}
	return v
}

func printOutcome(w io.Writer, res usecase.Outcome, format string) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toView(res))
	default:
		return printPretty(w, res)
	}
}

func printPretty(w io.Writer, res usecase.Outcome) error {
	t := res.Spec.Table

	title := res.Spec.Title
	if title == "" {
		title = "(none)"
	}
	fmt.Fprintf(w, "Title: %s\n", title)
	fmt.Fprintf(w, "Size:  %g x %g in\n", res.Spec.Size.Width, res.Spec.Size.Height)
	fmt.Fprintf(w, "Axis:  %d .. %d\n", t.AxisMin(), t.AxisMax())

	headers := append([]string{"Skill"}, t.Dates...)
	rows := make([][]string, 0, len(t.Skills))
	for i, skill := range t.Skills {
		row := []string{skill}
		for _, x := range t.Values[i] {
			row = append(row, strconv.FormatFloat(x, 'g', -1, 64))
		}
		rows = append(rows, row)
	}

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(w, tbl.Render())

	if n := len(res.Warnings); n > 0 {
		fmt.Fprintf(w, "%d warning(s)\n", n)
	} else {
		fmt.Fprintln(w, "OK")
	}
	return nil
}
