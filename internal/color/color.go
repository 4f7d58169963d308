package color

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"
)

var (
	CommentStyle     = lipgloss.NewStyle()
	BlockHeaderStyle = lipgloss.NewStyle()
	BlockMemberStyle = lipgloss.NewStyle()
	MutedStyle       = lipgloss.NewStyle()
	ErrorStyle       = lipgloss.NewStyle()
	SuccessStyle     = lipgloss.NewStyle()
)

// Initialize sets the background mode and rebuilds the styles for it.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		Disable()
		return
	}

	CommentStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "114"}).Italic(true)
	BlockHeaderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "25", Dark: "75"}).Bold(true)
	BlockMemberStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "24", Dark: "117"})
	MutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "245", Dark: "240"})
	ErrorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	SuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "28", Dark: "46"})
}

// Disable turns every style into plain text, including table headers.
func Disable() {
	lipgloss.SetColorProfile(termenv.Ascii)
	text.DisableColors()
	CommentStyle = lipgloss.NewStyle()
	BlockHeaderStyle = lipgloss.NewStyle()
	BlockMemberStyle = lipgloss.NewStyle()
	MutedStyle = lipgloss.NewStyle()
	ErrorStyle = lipgloss.NewStyle()
	SuccessStyle = lipgloss.NewStyle()
}
