package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vancomm/termsweeper/internal/mines"
)

var (
	cursorStyle   = lipgloss.NewStyle().Background(lipgloss.Color("7"))
	explodedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true).Blink(true)
	mineStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	flagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	numStyles     = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("0")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
	hiddenStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("5")).MarginBottom(1)
	statusStyle = lipgloss.NewStyle().Italic(true).MarginTop(1)
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	wonStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	lostStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
)

func glyphStyle(g mines.Glyph) lipgloss.Style {
	switch {
	case g.IsMine():
		if g == mines.ExplodedMine {
			return explodedStyle
		}
		return mineStyle
	case g == mines.Flag:
		return flagStyle
	case g.IsDigit():
		return numStyles[g-1]
	default:
		return hiddenStyle
	}
}

func renderCell(v mines.View) string {
	s := glyphStyle(v.Glyph).Render(v.String())
	if v.Selected {
		return cursorStyle.Render(s)
	}
	return s
}

func renderBoard(grid mines.Grid, width int) string {
	var b strings.Builder
	for y, row := range grid.Rows(width) {
		if y > 0 {
			b.WriteString("\n")
		}
		for _, v := range row {
			b.WriteString(renderCell(v))
		}
	}
	return b.String()
}

func (m Model) status() string {
	s := m.session
	switch {
	case s.Outcome() == mines.Won:
		return wonStyle.Render("YOU WIN!")
	case s.Outcome() == mines.Lost:
		return lostStyle.Render("GAME OVER!")
	case s.Quit():
		return "Gave up."
	default:
		return "Sweeping..."
	}
}

func (m Model) View() string {
	s := m.session
	board := s.Board()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Minesweeper"))
	b.WriteString("\n")
	b.WriteString(boardStyle.Render(renderBoard(s.View(), board.Width)))
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"\n%s | Mines left: %d | Turns: %d | %s",
		board.GameParams, s.MinesLeft(), s.Turns(), m.status(),
	)))
	if !s.Ended() {
		b.WriteString("\n\n" + helpText)
	}
	b.WriteString("\n")
	return b.String()
}
