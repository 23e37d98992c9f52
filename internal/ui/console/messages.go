package console

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/trexfeathers/WOPI/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// UserMessage turns a pipeline error into the message shown on the console.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		cause := ""
		if oe.Err != nil {
			cause = oe.Err.Error()
		}

		switch oe.Kind {
		case domain.KindConfigNotFound:
			return "Invalid config path provided. Chart will not be plotted"

		case domain.KindConfigSyntax:
			where := "config"
			if strings.TrimSpace(oe.Path) != "" {
				where = filepath.Base(oe.Path)
			}
			if line := extractLine(cause); line != "" {
				where += " line " + line
			}
			return "Invalid YAML format in " + where + ". Chart will not be plotted\nError message:\n\n" + cause

		case domain.KindMissingSection:
			return `Config "Skills By Date" key missing/invalid. Chart will not be plotted`

		case domain.KindNoPlottableData:
			return "No valid skill data in config. Chart will not be plotted"

		case domain.KindSave:
			return "Error when saving figure, displaying instead\nError message:\n\n" + cause

		case domain.KindScaffold:
			return "Unable to write starter files to " + oe.Path + ": " + cause

		case domain.KindRender:
			return "Unable to display chart: " + cause

		default:
			return err.Error()
		}
	}

	return err.Error()
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}
