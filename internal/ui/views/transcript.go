package views

import (
	"strings"

	"github.com/Cyclone1070/rootnav/internal/ui/models"
)

// FormatTranscript renders the banner followed by every executed line and its output.
// Failed results get the same "Error: " prefix as the line front-end.
func FormatTranscript(banner string, entries []models.Entry) string {
	lines := []string{BannerStyle.Render(banner), ""}

	for _, e := range entries {
		lines = append(lines, PromptStyle.Render(e.Prompt)+e.Line)
		if e.Result == nil {
			continue
		}
		switch {
		case !e.Result.OK:
			lines = append(lines, ErrorStyle.Render("Error: "+e.Result.Message))
		case e.Result.Message != "":
			lines = append(lines, e.Result.Message)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// RenderTranscript renders the scrollable output area.
func RenderTranscript(s models.State) string {
	return s.Viewport.View()
}
