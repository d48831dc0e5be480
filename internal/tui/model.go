package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

// headerLines is the number of lines drawn above the boards.
const headerLines = 3

// centre is where the cursor starts: the middle cell of the middle board.
var centre = entity.Move{Board: entity.Coord{Row: 1, Col: 1}, Cell: entity.Coord{Row: 1, Col: 1}}

type gameManager interface {
	NewGame(ctx context.Context) usecase.Session
	MakeTurn(ctx context.Context, move entity.Move) (usecase.Session, error)
}

type (
	sessionMsg  usecase.Session
	rejectedMsg struct{ err error }
)

// Model is the terminal front-end: it turns keys and clicks into moves and draws the published sessions.
type Model struct {
	ctx     context.Context
	manager gameManager

	keys   keyMap
	help   help.Model
	styles styles
	layout Layout

	session usecase.Session
	ready   bool
	cursor  entity.Coord
	message string
}

func NewModel(ctx context.Context, manager gameManager, conf config.UI) Model {
	return Model{
		ctx:     ctx,
		manager: manager,
		keys:    defaultKeyMap(),
		help:    help.New(),
		styles:  newStyles(conf.Colors),
		layout:  Layout{Top: headerLines},
		cursor:  toCursor(centre),
	}
}

// Run - runs the terminal front-end until the user quits or ctx is canceled.
func Run(ctx context.Context, logger *slog.Logger, manager gameManager, publisher *Publisher, conf config.UI) error {
	log := logger.With("component", "tui")

	options := []tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}
	if conf.Mouse {
		options = append(options, tea.WithMouseCellMotion())
	}

	program := tea.NewProgram(NewModel(ctx, manager, conf), options...)
	publisher.Attach(program)

	log.Info("terminal ui started", "mouse", conf.Mouse)

	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal ui failed: %w", err)
	}

	log.Info("terminal ui stopped")

	return nil
}

func (that Model) Init() tea.Cmd {
	return that.newGame()
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionMsg:
		that.session = usecase.Session(msg)
		that.ready = true
		that.message = ""
		that.followActiveBoard()

		return that, nil

	case rejectedMsg:
		that.message = describe(msg.err)

		return that, nil

	case tea.KeyMsg:
		return that.handleKey(msg)

	case tea.MouseMsg:
		return that.handleMouse(msg)
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Quit):
		return that, tea.Quit
	case key.Matches(msg, that.keys.NewGame):
		return that, that.newGame()
	case !that.ready:
		return that, nil
	case key.Matches(msg, that.keys.Up):
		that.moveCursor(-1, 0)
	case key.Matches(msg, that.keys.Down):
		that.moveCursor(1, 0)
	case key.Matches(msg, that.keys.Left):
		that.moveCursor(0, -1)
	case key.Matches(msg, that.keys.Right):
		that.moveCursor(0, 1)
	case key.Matches(msg, that.keys.Play):
		return that, that.play(toMove(that.cursor))
	}

	return that, nil
}

func (that Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !that.ready {
		return that, nil
	}

	move, ok := that.layout.Locate(msg.X, msg.Y)
	if !ok {
		return that, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		that.cursor = toCursor(move)
	case tea.MouseActionRelease:
		if msg.Button == tea.MouseButtonLeft {
			that.cursor = toCursor(move)
			return that, that.play(move)
		}
	}

	return that, nil
}

func (that Model) newGame() tea.Cmd {
	return func() tea.Msg {
		that.manager.NewGame(that.ctx)
		return nil
	}
}

// play - accepted moves come back through the publisher, only rejections are returned here.
func (that Model) play(move entity.Move) tea.Cmd {
	return func() tea.Msg {
		if _, err := that.manager.MakeTurn(that.ctx, move); err != nil {
			return rejectedMsg{err: err}
		}

		return nil
	}
}

func (that *Model) moveCursor(dRow, dCol int) {
	that.cursor.Row = clamp(that.cursor.Row+dRow, 0, entity.Size*entity.Size-1)
	that.cursor.Col = clamp(that.cursor.Col+dCol, 0, entity.Size*entity.Size-1)
}

// followActiveBoard - keeps the cursor inside the board the next move is forced into.
func (that *Model) followActiveBoard() {
	game := that.session.Game
	if game.Active.Any || game.IsFinished() {
		return
	}

	move := toMove(that.cursor)
	move.Board = game.Active.Board
	that.cursor = toCursor(move)
}

// legal - reports whether the move would be accepted by the current session.
func (that Model) legal(move entity.Move) bool {
	game := that.session.Game

	return game.Highlighted(move.Board) && game.Board(move.Board).Grid.At(move.Cell) == entity.Empty
}

func describe(err error) string {
	switch {
	case errors.Is(err, apperror.ErrGameOver):
		return "The game is over, press n for a new one."
	case errors.Is(err, apperror.ErrWrongBoard):
		return "You have to play in the highlighted board."
	case errors.Is(err, apperror.ErrBoardAlreadyResolved):
		return "That board is already decided."
	case errors.Is(err, apperror.ErrCellOccupied):
		return "That cell is taken."
	case errors.Is(err, apperror.ErrOutOfBounds):
		return "That is not a cell."
	case errors.Is(err, apperror.ErrNoActiveGame):
		return "No game is running, press n to start one."
	default:
		return "Invalid move."
	}
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
