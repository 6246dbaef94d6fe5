package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorYellow is used for hints and next-step commands.
	ColorYellow = lipgloss.Color("220")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")

	colorGreen   = lipgloss.Color("82")
	colorBoldRed = lipgloss.Color("204")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (project names, module names, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleAction styles action verbs (generating, installing, building).
	StyleAction = lipgloss.NewStyle().Bold(true)

	// StyleDim styles structural chrome.
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleCommand styles shell commands the user is told to run.
	StyleCommand = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// File status constants.
const (
	StatusCreated = "created"
	StatusCopied  = "copied"
	StatusSkipped = "skipped"
	statusFailed  = "failed"
)

// statusStyle returns the lipgloss style for a given file status string.
func statusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCreated, StatusCopied:
		return lipgloss.NewStyle().Foreground(colorGreen)
	case StatusSkipped:
		return lipgloss.NewStyle().Faint(true)
	case statusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(colorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minPathColumnWidth keeps status words aligned across lines.
const minPathColumnWidth = 48

// FormatFileLine renders a file path with a right-aligned, color-coded status.
//
// Format: f:<path>  <status>
func FormatFileLine(path, status string) string {
	padding := minPathColumnWidth - len(path)
	if padding < 2 {
		padding = 2
	}

	return StyleDim.Render("f:") +
		StyleNoun.Render(path) +
		strings.Repeat(" ", padding) +
		statusStyle(status).Render(status)
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNextSteps renders the "to get started" block printed after init.
func FormatNextSteps(commands ...string) string {
	var sb strings.Builder
	sb.WriteString(StyleSummary.Render("To get started:"))
	sb.WriteString("\n")
	for _, c := range commands {
		sb.WriteString("  ")
		sb.WriteString(StyleCommand.Render(c))
		sb.WriteString("\n")
	}
	return sb.String()
}
