package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

func (that Model) View() string {
	if !that.ready {
		return "Starting a new game...\n"
	}

	var view strings.Builder

	// headerLines lines: title, players, blank
	view.WriteString(that.styles.title.Render("Ultimate Tic-Tac-Toe") + "\n")
	view.WriteString(that.playersLine() + "\n\n")

	view.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, that.boardsView(), that.styles.panel.Render(that.metaView())))
	view.WriteString("\n\n")

	view.WriteString(that.statusLine() + "\n")
	if that.message != "" {
		view.WriteString(that.styles.error.Render(that.message))
	}
	view.WriteString("\n")
	view.WriteString(that.help.View(that.keys) + "\n")

	return view.String()
}

func (that Model) playersLine() string {
	session := that.session
	a := session.Player(entity.MarkA)
	b := session.Player(entity.MarkB)

	return fmt.Sprintf("%s vs %s   score %d : %d, draws %d",
		that.styles.markA.Render(fmt.Sprintf("%s (%s)", a.Name, a.Mark)),
		that.styles.markB.Render(fmt.Sprintf("%s (%s)", b.Name, b.Mark)),
		session.Score.MarkA, session.Score.MarkB, session.Score.Draws,
	)
}

func (that Model) statusLine() string {
	game := that.session.Game

	switch game.Status {
	case entity.StatusWon:
		winner := that.session.Player(game.Winner)
		return that.styles.mark(game.Winner).Bold(true).Render(fmt.Sprintf("%s (%s) wins!", winner.Name, winner.Mark)) +
			" Press n for a new game."
	case entity.StatusDrawn:
		return "Draw. Press n for a new game."
	}

	player := that.session.Player(game.Turn)
	where := "any board"
	if !game.Active.Any {
		where = "board " + game.Active.Board.String()
	}

	return fmt.Sprintf("%s to play in %s", that.styles.mark(game.Turn).Render(fmt.Sprintf("%s (%s)", player.Name, player.Mark)), where)
}

func (that Model) boardsView() string {
	separator := that.styles.grid.Render(
		strings.Repeat("━", boardWidth+1) + "╋" + strings.Repeat("━", boardWidth+gapWidth-1) + "╋" + strings.Repeat("━", boardWidth+1),
	)
	gap := that.styles.grid.Render(" ┃ ")

	lines := make([]string, 0, entity.Size*rowStride)
	for boardRow := 0; boardRow < entity.Size; boardRow++ {
		if boardRow > 0 {
			lines = append(lines, separator)
		}

		for cellRow := 0; cellRow < entity.Size; cellRow++ {
			var line strings.Builder
			for boardCol := 0; boardCol < entity.Size; boardCol++ {
				if boardCol > 0 {
					line.WriteString(gap)
				}

				for cellCol := 0; cellCol < entity.Size; cellCol++ {
					line.WriteString(that.renderCell(entity.Move{
						Board: entity.Coord{Row: boardRow, Col: boardCol},
						Cell:  entity.Coord{Row: cellRow, Col: cellCol},
					}))
				}
			}
			lines = append(lines, line.String())
		}
	}

	return strings.Join(lines, "\n")
}

func (that Model) renderCell(move entity.Move) string {
	game := that.session.Game
	board := game.Board(move.Board)
	mark := board.Grid.At(move.Cell)
	isCursor := toCursor(move) == that.cursor

	text, style := " · ", that.styles.empty
	switch {
	case mark != entity.Empty:
		text, style = " "+mark.String()+" ", that.styles.mark(mark)
	case isCursor && that.legal(move):
		// ghost of the mark about to be played
		text, style = " "+strings.ToLower(game.Turn.String())+" ", that.styles.mark(game.Turn).Faint(true)
	case game.Highlighted(move.Board):
		style = that.styles.active
	}

	switch {
	case board.OnLine(move.Cell):
		style = style.Bold(true).Underline(true)
	case board.Resolved():
		style = that.styles.dim
	}

	if isCursor {
		style = that.styles.cursor
	}

	return style.Render(text)
}

// metaView - the meta-board: won boards show their winner, drawn ones a "=".
func (that Model) metaView() string {
	game := that.session.Game

	lines := []string{"meta"}
	for row := 0; row < entity.Size; row++ {
		var line strings.Builder
		for col := 0; col < entity.Size; col++ {
			at := entity.Coord{Row: row, Col: col}

			text, style := " · ", that.styles.empty
			switch board := game.Board(at); board.Outcome {
			case entity.OutcomeWon:
				text, style = " "+board.Winner.String()+" ", that.styles.mark(board.Winner)
			case entity.OutcomeDrawn:
				text = " = "
			}

			if game.Meta.OnLine(at) {
				style = style.Bold(true).Underline(true)
			}

			line.WriteString(style.Render(text))
		}
		lines = append(lines, line.String())
	}

	return strings.Join(lines, "\n")
}
