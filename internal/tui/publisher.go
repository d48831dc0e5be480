package tui

import (
	"context"
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

// Publisher forwards every session published by the game manager to the running program.
type Publisher struct {
	program atomic.Pointer[tea.Program]
}

func NewPublisher() *Publisher {
	return &Publisher{}
}

func (that *Publisher) Attach(program *tea.Program) {
	that.program.Store(program)
}

// Publish - must not be called from the program's own event loop, Send blocks until the loop reads it.
func (that *Publisher) Publish(_ context.Context, session usecase.Session) {
	if program := that.program.Load(); program != nil {
		program.Send(sessionMsg(session))
	}
}
