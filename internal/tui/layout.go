package tui

import "github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"

const (
	cellWidth   = 3
	boardWidth  = entity.Size * cellWidth
	gapWidth    = 3
	boardStride = boardWidth + gapWidth
	rowStride   = entity.Size + 1

	// boardsWidth is the width of one rendered line of the nine boards.
	boardsWidth = entity.Size*boardWidth + (entity.Size-1)*gapWidth
)

// Layout places the nine boards on the screen: each cell is cellWidth columns wide and one line high,
// boards are separated by a gap column and a separator line.
type Layout struct {
	Left int
	Top  int
}

// Locate - maps a screen position to the cell drawn there.
func (that Layout) Locate(x, y int) (entity.Move, bool) {
	x -= that.Left
	y -= that.Top

	if x < 0 || y < 0 {
		return entity.Move{}, false
	}

	boardCol, inX := x/boardStride, x%boardStride
	boardRow, inY := y/rowStride, y%rowStride

	if boardCol >= entity.Size || boardRow >= entity.Size || inX >= boardWidth || inY >= entity.Size {
		return entity.Move{}, false
	}

	return entity.Move{
		Board: entity.Coord{Row: boardRow, Col: boardCol},
		Cell:  entity.Coord{Row: inY, Col: inX / cellWidth},
	}, true
}

// Position - returns the top-left screen position of a cell.
func (that Layout) Position(move entity.Move) (int, int) {
	x := that.Left + move.Board.Col*boardStride + move.Cell.Col*cellWidth
	y := that.Top + move.Board.Row*rowStride + move.Cell.Row

	return x, y
}

// toMove - converts a cursor over the 9x9 cells into a board and cell pair.
func toMove(cursor entity.Coord) entity.Move {
	return entity.Move{
		Board: entity.Coord{Row: cursor.Row / entity.Size, Col: cursor.Col / entity.Size},
		Cell:  entity.Coord{Row: cursor.Row % entity.Size, Col: cursor.Col % entity.Size},
	}
}

func toCursor(move entity.Move) entity.Coord {
	return entity.Coord{
		Row: move.Board.Row*entity.Size + move.Cell.Row,
		Col: move.Board.Col*entity.Size + move.Cell.Col,
	}
}
