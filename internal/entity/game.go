package entity

import (
	"fmt"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
)

type Status string

const (
	StatusInProgress Status = "in_progress"
	StatusWon        Status = "won"
	StatusDrawn      Status = "drawn"
)

// Move is a request to place the current mark at Cell of the sub-board at Board.
type Move struct {
	Board Coord `json:"board"`
	Cell  Coord `json:"cell"`
}

func (that Move) String() string {
	return fmt.Sprintf("board %s cell %s", that.Board, that.Cell)
}

// ActiveBoard is the sub-board the next move is constrained to, or any unresolved one.
type ActiveBoard struct {
	Any   bool  `json:"any"`
	Board Coord `json:"board"`
}

func AnyBoard() ActiveBoard {
	return ActiveBoard{Any: true}
}

func BoardAt(c Coord) ActiveBoard {
	return ActiveBoard{Board: c}
}

// Allows - reports whether a move into the given sub-board respects the constraint.
func (that ActiveBoard) Allows(board Coord) bool {
	return that.Any || that.Board == board
}

func (that ActiveBoard) String() string {
	if that.Any {
		return "any"
	}

	return that.Board.String()
}

// Game is the whole Ultimate Tic-Tac-Toe state. It is changed only through ApplyMove
// and must not be used from several goroutines at once.
type Game struct {
	boards   [Size][Size]Board
	meta     Board
	turn     Mark
	active   ActiveBoard
	status   Status
	winner   Mark
	moves    int
	lastMove *Move
}

func NewGame() *Game {
	return &Game{
		turn:   MarkA,
		active: AnyBoard(),
		status: StatusInProgress,
	}
}

// CheckMove - validates a move against the current state without applying it.
func (that *Game) CheckMove(move Move) error {
	switch {
	case that.status != StatusInProgress:
		return apperror.ErrGameOver
	case !that.active.Allows(move.Board):
		return fmt.Errorf("%w: active board is %s", apperror.ErrWrongBoard, that.active)
	case !move.Board.Valid():
		return fmt.Errorf("%w: board %s", apperror.ErrOutOfBounds, move.Board)
	case that.board(move.Board).Resolved():
		return fmt.Errorf("%w: board %s", apperror.ErrBoardAlreadyResolved, move.Board)
	case !move.Cell.Valid():
		return fmt.Errorf("%w: cell %s", apperror.ErrOutOfBounds, move.Cell)
	case that.board(move.Board).grid.At(move.Cell) != Empty:
		return fmt.Errorf("%w: %s", apperror.ErrCellOccupied, move)
	}

	return nil
}

// ApplyMove - places the current mark, resolves boards, and redirects the opponent.
// A rejected move leaves the game unchanged.
func (that *Game) ApplyMove(move Move) (Snapshot, error) {
	if err := that.CheckMove(move); err != nil {
		return Snapshot{}, err
	}

	mark := that.turn
	that.turn = mark.Opponent()
	that.moves++
	that.lastMove = &move

	board := that.board(move.Board)
	if board.place(move.Cell, mark) {
		if board.outcome == OutcomeWon {
			that.meta.grid.set(move.Board, board.winner)
		}

		that.updateGameState()
	}

	if that.status == StatusInProgress {
		that.active = that.nextActiveBoard(move.Cell)
	}

	return that.Snapshot(), nil
}

// updateGameState - evaluates the meta-board after a sub-board got resolved.
func (that *Game) updateGameState() {
	if result := CheckWin(that.meta.grid); result.Found() {
		that.meta.win(result)
		that.status = StatusWon
		that.winner = result.Winner

		return
	}

	if that.allBoardsResolved() {
		that.meta.outcome = OutcomeDrawn
		that.status = StatusDrawn
	}
}

// nextActiveBoard - the cell just played names the opponent's board, unless that board is resolved.
func (that *Game) nextActiveBoard(cell Coord) ActiveBoard {
	if that.board(cell).Resolved() {
		return AnyBoard()
	}

	return BoardAt(cell)
}

func (that *Game) allBoardsResolved() bool {
	for row := range that.boards {
		for col := range that.boards[row] {
			if !that.boards[row][col].Resolved() {
				return false
			}
		}
	}

	return true
}

func (that *Game) board(c Coord) *Board {
	return &that.boards[c.Row][c.Col]
}

func (that *Game) Turn() Mark {
	return that.turn
}

func (that *Game) Status() Status {
	return that.status
}

func (that *Game) IsFinished() bool {
	return that.status != StatusInProgress
}

// Snapshot - returns a copy of the state that shares nothing with the game.
func (that *Game) Snapshot() Snapshot {
	snapshot := Snapshot{
		Meta:   that.meta.view(),
		Turn:   that.turn,
		Active: that.active,
		Status: that.status,
		Winner: that.winner,
		Moves:  that.moves,
	}

	for row := range that.boards {
		for col := range that.boards[row] {
			snapshot.Boards[row][col] = that.boards[row][col].view()
		}
	}

	if that.lastMove != nil {
		last := *that.lastMove
		snapshot.LastMove = &last
	}

	return snapshot
}
