package entity

// Outcome is the resolution state of a board.
type Outcome uint8

const (
	OutcomeOpen Outcome = iota
	OutcomeWon
	OutcomeDrawn
)

func (that Outcome) String() string {
	switch that {
	case OutcomeWon:
		return "won"
	case OutcomeDrawn:
		return "drawn"
	default:
		return "open"
	}
}

// Board is a grid together with its resolution. It serves both as a sub-board and as the meta-board.
type Board struct {
	grid    Grid
	outcome Outcome
	winner  Mark
	line    WinLine
}

func (that *Board) Resolved() bool {
	return that.outcome != OutcomeOpen
}

// place - writes a mark and resolves the board if the mark completes a line or fills the grid.
// It reports whether the board got resolved by this call.
func (that *Board) place(c Coord, mark Mark) bool {
	that.grid.set(c, mark)

	if result := CheckWin(that.grid); result.Found() {
		that.win(result)
		return true
	}

	if that.grid.Full() {
		that.outcome = OutcomeDrawn
		return true
	}

	return false
}

func (that *Board) win(result WinResult) {
	that.outcome = OutcomeWon
	that.winner = result.Winner
	that.line = result.Line
}

func (that *Board) view() BoardView {
	view := BoardView{
		Grid:    that.grid,
		Outcome: that.outcome,
		Winner:  that.winner,
	}

	if that.outcome == OutcomeWon {
		from, to := that.line.Endpoints()
		view.Line = &LineView{
			WinLine: that.line,
			Cells:   that.line.Cells(),
			From:    from,
			To:      to,
		}
	}

	return view
}
