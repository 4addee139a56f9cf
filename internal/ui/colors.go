package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle lipgloss.Style
	errorStyle   lipgloss.Style
	warningStyle lipgloss.Style
	infoStyle    lipgloss.Style
	dimStyle     lipgloss.Style
	artistStyle  lipgloss.Style
	titleStyle   lipgloss.Style
	pathStyle    lipgloss.Style
)

func init() {
	initStyles()
}

func initStyles() {
	if !IsTerminal() {
		successStyle = lipgloss.NewStyle()
		errorStyle = lipgloss.NewStyle()
		warningStyle = lipgloss.NewStyle()
		infoStyle = lipgloss.NewStyle()
		dimStyle = lipgloss.NewStyle()
		artistStyle = lipgloss.NewStyle()
		titleStyle = lipgloss.NewStyle()
		pathStyle = lipgloss.NewStyle()
		return
	}

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
}

// Success renders success text.
func Success(text string) string {
	return successStyle.Render(text)
}

// Error renders error text.
func Error(text string) string {
	return errorStyle.Render(text)
}

// Warning renders warning text.
func Warning(text string) string {
	return warningStyle.Render(text)
}

// Info renders info text.
func Info(text string) string {
	return infoStyle.Render(text)
}

// Dim renders dim text.
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Artist renders an artist name.
func Artist(text string) string {
	return artistStyle.Render(text)
}

// Title renders an artwork title.
func Title(text string) string {
	return titleStyle.Render(text)
}

// Path renders a filesystem path.
func Path(text string) string {
	return pathStyle.Render(text)
}

// SuccessMsg prints a ✓ message.
func SuccessMsg(format string, args ...interface{}) {
	fmt.Println(Success("✓") + " " + fmt.Sprintf(format, args...))
}

// ErrorMsg prints a ✗ message.
func ErrorMsg(format string, args ...interface{}) {
	fmt.Println(Error("✗") + " " + fmt.Sprintf(format, args...))
}

// WarningMsg prints a ⚠ message.
func WarningMsg(format string, args ...interface{}) {
	fmt.Println(Warning("⚠") + " " + fmt.Sprintf(format, args...))
}

// InfoMsg prints an ℹ message.
func InfoMsg(format string, args ...interface{}) {
	fmt.Println(Info("ℹ") + " " + fmt.Sprintf(format, args...))
}
