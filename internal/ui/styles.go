// Package ui holds the console styles shared by the prompts and the session menu.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	PrimaryColor = lipgloss.Color("#7D56F4") // Purple - titles
	SuccessColor = lipgloss.Color("#43BF6D") // Green - confirmations
	ErrorColor   = lipgloss.Color("#FF5555") // Red - rejected input
	WarningColor = lipgloss.Color("#FFA500") // Orange - empty list, cancellations
)

var (
	TitleStyle   = lipgloss.NewStyle().Foreground(PrimaryColor).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(SuccessColor)
	ErrorStyle   = lipgloss.NewStyle().Foreground(ErrorColor)
	WarningStyle = lipgloss.NewStyle().Foreground(WarningColor)
)

// Message symbols
const (
	SuccessMark = "✓"
	ErrorMark   = "✗"
	WarningMark = "!"
)

// Success writes a confirmation line
func Success(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, SuccessStyle.Render(SuccessMark+" "+fmt.Sprintf(format, args...)))
}

// Error writes a rejected-input line
func Error(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, ErrorStyle.Render(ErrorMark+" "+fmt.Sprintf(format, args...)))
}

// Warning writes a notice line
func Warning(w io.Writer, format string, args ...any) {
	fmt.Fprintln(w, WarningStyle.Render(WarningMark+" "+fmt.Sprintf(format, args...)))
}

// Title writes a section heading preceded by a blank line
func Title(w io.Writer, text string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, TitleStyle.Render(text))
}
