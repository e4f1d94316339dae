package views

import (
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/stretchr/testify/assert"

	"github.com/Cyclone1070/rootnav/internal/shell"
	"github.com/Cyclone1070/rootnav/internal/ui/models"
)

func createTestViewport() viewport.Model {
	return viewport.New(80, 20)
}

func createTestTextInput(value string) textinput.Model {
	ti := textinput.New()
	ti.SetValue(value)
	return ti
}

func TestFormatTranscript(t *testing.T) {
	entries := []models.Entry{
		{Prompt: "[/data] / $ ", Line: "pwd", Result: &shell.CommandResult{OK: true, Message: "/"}},
		{Prompt: "[/data] / $ ", Line: "cd docs", Result: &shell.CommandResult{OK: true}},
		{Prompt: "[/data] /docs $ ", Line: "cat x", Result: &shell.CommandResult{OK: false, Message: "File does not exist: x"}},
		{Prompt: "[/data] /docs $ ", Line: "du"},
	}

	result := FormatTranscript("banner line", entries)

	assert.Contains(t, result, "banner line")
	assert.Contains(t, result, "pwd\n/\n")
	assert.Contains(t, result, "cd docs\n\n")
	assert.Contains(t, result, "Error: File does not exist: x")
	assert.Contains(t, result, "du")
}

func TestFormatTranscript_NoEntries(t *testing.T) {
	assert.Contains(t, FormatTranscript("banner line", nil), "banner line")
}

func TestRenderStatus(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		result := RenderStatus(models.State{Width: 40, RootLabel: "s3://bucket"})
		assert.Contains(t, result, "Ready")
		assert.Contains(t, result, "s3://bucket")
	})

	t.Run("running", func(t *testing.T) {
		result := RenderStatus(models.State{
			Running:   true,
			Spinner:   spinner.New(),
			Entries:   []models.Entry{{Line: "du -h ."}},
			RootLabel: "/srv",
		})
		assert.Contains(t, result, "Running du -h .")
		assert.NotContains(t, result, "Ready")
	})
}

func TestRenderRoot(t *testing.T) {
	vp := createTestViewport()
	vp.SetContent(FormatTranscript("rootnav started", nil))
	state := models.State{
		Width:     80,
		Height:    24,
		Input:     createTestTextInput("ls -l"),
		Viewport:  vp,
		RootLabel: "/srv",
	}

	result := RenderRoot(state)

	assert.Contains(t, result, "rootnav started")
	assert.Contains(t, result, "ls -l")
	assert.Contains(t, result, "Ready")
}

func TestRenderRoot_InputWhileRunning(t *testing.T) {
	state := models.State{
		Width:    80,
		Input:    createTestTextInput("cat big.log"),
		Viewport: createTestViewport(),
		Spinner:  spinner.New(),
		Running:  true,
		Entries:  []models.Entry{{Line: "du -h ."}},
	}

	result := RenderRoot(state)

	assert.Contains(t, result, "cat big.log")
	assert.Contains(t, result, "Running du -h .")
	assert.NotContains(t, result, "Ready")
}
