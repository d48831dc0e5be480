package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

type styles struct {
	markA  lipgloss.Style
	markB  lipgloss.Style
	empty  lipgloss.Style
	active lipgloss.Style
	cursor lipgloss.Style
	dim    lipgloss.Style
	grid   lipgloss.Style
	title  lipgloss.Style
	error  lipgloss.Style
	panel  lipgloss.Style
}

func newStyles(colors config.Colors) styles {
	return styles{
		markA:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.MarkA)),
		markB:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.MarkB)),
		empty:  lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)),
		active: lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Active)),
		cursor: lipgloss.NewStyle().Background(lipgloss.Color(colors.Cursor)).Foreground(lipgloss.Color("0")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)).Faint(true),
		grid:   lipgloss.NewStyle().Foreground(lipgloss.Color(colors.Dim)),
		title:  lipgloss.NewStyle().Bold(true),
		error:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		panel:  lipgloss.NewStyle().MarginLeft(4),
	}
}

func (that styles) mark(mark entity.Mark) lipgloss.Style {
	if mark == entity.MarkB {
		return that.markB
	}

	return that.markA
}
