package ui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	ColorPass   = lipgloss.Color("42")  // green
	ColorWarn   = lipgloss.Color("214") // orange
	ColorFail   = lipgloss.Color("196") // red
	ColorAccent = lipgloss.Color("39")  // blue
	ColorMuted  = lipgloss.Color("245") // gray
)

var (
	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent).
		Align(lipgloss.Center)

	TableBorderStyle = lipgloss.NewStyle().
		Foreground(ColorMuted)

	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorAccent)

	labelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorMuted)

	passStyle = lipgloss.NewStyle().
		Foreground(ColorPass)

	failStyle = lipgloss.NewStyle().
		Foreground(ColorFail)
)

// RenderPass renders text in the success color.
func RenderPass(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return passStyle.Render(s)
}

// RenderFail renders text in the failure color.
func RenderFail(s string) string {
	if !ShouldUseColor() {
		return s
	}
	return failStyle.Render(s)
}
