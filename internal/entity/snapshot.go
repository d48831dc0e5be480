package entity

// LineView describes a winning line for renderers.
type LineView struct {
	WinLine
	Cells [Size]Coord `json:"cells"`
	From  Point       `json:"from"`
	To    Point       `json:"to"`
}

// BoardView is the read-only state of one board. Line is set only for won boards.
type BoardView struct {
	Grid    Grid      `json:"grid"`
	Outcome Outcome   `json:"outcome"`
	Winner  Mark      `json:"winner,omitempty"`
	Line    *LineView `json:"line,omitempty"`
}

func (that BoardView) Resolved() bool {
	return that.Outcome != OutcomeOpen
}

// OnLine - reports whether the cell belongs to the board's winning line.
func (that BoardView) OnLine(c Coord) bool {
	if that.Line == nil {
		return false
	}

	for _, cell := range that.Line.Cells {
		if cell == c {
			return true
		}
	}

	return false
}

// Snapshot is the state handed to renderers after every accepted move.
type Snapshot struct {
	Boards   [Size][Size]BoardView `json:"boards"`
	Meta     BoardView             `json:"meta"`
	Turn     Mark                  `json:"turn"`
	Active   ActiveBoard           `json:"active"`
	Status   Status                `json:"status"`
	Winner   Mark                  `json:"winner,omitempty"`
	Moves    int                   `json:"moves"`
	LastMove *Move                 `json:"last_move,omitempty"`
}

func (that Snapshot) Board(c Coord) BoardView {
	return that.Boards[c.Row][c.Col]
}

func (that Snapshot) IsFinished() bool {
	return that.Status != StatusInProgress
}

// Highlighted - reports whether the sub-board is a legal target for the next move.
func (that Snapshot) Highlighted(board Coord) bool {
	if that.IsFinished() {
		return false
	}

	return that.Active.Allows(board) && !that.Board(board).Resolved()
}
