package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/rootnav/internal/ui/models"
)

// RenderStatus renders the status bar: the state of the current command on
// the left and the root label on the right.
func RenderStatus(s models.State) string {
	var left string
	if s.Running {
		line := ""
		if n := len(s.Entries); n > 0 {
			line = s.Entries[n-1].Line
		}
		left = StatusRunningStyle.Render(fmt.Sprintf("%s Running %s", s.Spinner.View(), line))
	} else {
		left = StatusReadyStyle.Render("Ready")
	}

	right := StatusMutedStyle.Render(s.RootLabel)
	gap := max(s.Width-lipgloss.Width(left)-lipgloss.Width(right), 2)
	return left + strings.Repeat(" ", gap) + right
}
