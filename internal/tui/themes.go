package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme colors the menu, prompts and the before/after poem boxes.
type Theme struct {
	Name            string
	PrimaryAccent   string // screen titles and the highlighted menu entry
	SecondaryAccent string // frame around the path prompt
	ChangedText     string // poem after processing, save notices
	ErrorText       string
	LabelText       string // questions, captions and key help
	OriginalText    string // poem before processing, idle menu entries
	Border          string // frame around each poem
	SelectedBg      string
}

// Themes are keyed by the name used in the theme config field.
var Themes = map[string]Theme{
	"default": {
		Name:            "Default",
		PrimaryAccent:   "#d7875f",
		SecondaryAccent: "#af87af",
		ChangedText:     "#87af87",
		ErrorText:       "#d75f5f",
		LabelText:       "#808080",
		OriginalText:    "#bcbcbc",
		Border:          "#5f8787",
		SelectedBg:      "#262626",
	},
	// ink on rice paper
	"sumi": {
		Name:            "Sumi",
		PrimaryAccent:   "#e4e4e4",
		SecondaryAccent: "#9e9e9e",
		ChangedText:     "#ffffff",
		ErrorText:       "#c75050",
		LabelText:       "#767676",
		OriginalText:    "#a8a8a8",
		Border:          "#585858",
		SelectedBg:      "#303030",
	},
	"sakura": {
		Name:            "Sakura",
		PrimaryAccent:   "#f4a7b9",
		SecondaryAccent: "#d98fa7",
		ChangedText:     "#fedfe1",
		ErrorText:       "#e83015",
		LabelText:       "#a17c87",
		OriginalText:    "#c9b1b8",
		Border:          "#b5495b",
		SelectedBg:      "#3a2a30",
	},
	"matcha": {
		Name:            "Matcha",
		PrimaryAccent:   "#b5c36b",
		SecondaryAccent: "#8a9a5b",
		ChangedText:     "#d8e4a6",
		ErrorText:       "#cb4042",
		LabelText:       "#7b8d6c",
		OriginalText:    "#a9b49a",
		Border:          "#5b7444",
		SelectedBg:      "#2a3324",
	},
}

// ThemeNames lists the accepted theme names in display order.
var ThemeNames = []string{"default", "sumi", "sakura", "matcha"}

// CurrentTheme is the theme the styles were last built from.
var CurrentTheme = Themes["default"]

var (
	titleStyle            lipgloss.Style
	labelStyle            lipgloss.Style
	errorStyle            lipgloss.Style
	noticeStyle           lipgloss.Style
	originalStyle         lipgloss.Style
	changedStyle          lipgloss.Style
	poemBoxStyle          lipgloss.Style
	promptBoxStyle        lipgloss.Style
	selectedOptionStyle   lipgloss.Style
	unselectedOptionStyle lipgloss.Style
	helpStyle             lipgloss.Style
)

// SetTheme switches to the named theme and rebuilds the styles.
func SetTheme(name string) error {
	theme, ok := Themes[name]
	if !ok {
		return fmt.Errorf("unknown theme %q (want one of %v)", name, ThemeNames)
	}
	CurrentTheme = theme
	regenerateStyles()
	return nil
}

func regenerateStyles() {
	titleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.PrimaryAccent)).
		MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.LabelText))

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.ErrorText))

	noticeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.ChangedText))

	originalStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.OriginalText))

	changedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.ChangedText))

	poemBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.Border)).
		Padding(1, 2)

	promptBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(CurrentTheme.SecondaryAccent)).
		Padding(0, 1)

	selectedOptionStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(CurrentTheme.PrimaryAccent)).
		Background(lipgloss.Color(CurrentTheme.SelectedBg))

	unselectedOptionStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.OriginalText))

	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(CurrentTheme.LabelText)).
		MarginTop(1)
}

func init() {
	regenerateStyles()
}
