package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/apperror"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
)

// snapshotPublisher is called with the manager lock held and must not call back into the manager.
type snapshotPublisher interface {
	Publish(ctx context.Context, session Session)
}

// Score counts finished games of the current run.
type Score struct {
	MarkA int `json:"mark_a"`
	MarkB int `json:"mark_b"`
	Draws int `json:"draws"`
}

func (that *Score) record(snapshot entity.Snapshot) {
	switch {
	case snapshot.Status == entity.StatusDrawn:
		that.Draws++
	case snapshot.Winner == entity.MarkA:
		that.MarkA++
	case snapshot.Winner == entity.MarkB:
		that.MarkB++
	}
}

// Session is what the renderer gets: the game snapshot plus who is playing it.
type Session struct {
	ID      string           `json:"id"`
	Players [2]entity.Player `json:"players"`
	Score   Score            `json:"score"`
	Game    entity.Snapshot  `json:"game"`
}

// Player - returns the seat holding the given mark.
func (that Session) Player(mark entity.Mark) entity.Player {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player
		}
	}

	return entity.Player{Mark: mark}
}

// GameManager hosts one game at a time and serializes every move applied to it.
type GameManager struct {
	logger    *slog.Logger
	publisher snapshotPublisher
	players   [2]entity.Player

	mu     sync.Mutex
	gameID string
	game   *entity.Game
	score  Score
}

func NewGameManager(logger *slog.Logger, players [2]entity.Player, publisher snapshotPublisher) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		publisher: publisher,
		players:   players,
	}
}

// NewGame - discards the current game, if any, and starts a fresh one. The score is kept.
func (that *GameManager) NewGame(ctx context.Context) Session {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.gameID = uuid.NewString()
	that.game = entity.NewGame()
	session := that.session()

	that.logger.Info("game created", "game_id", session.ID)
	that.publisher.Publish(ctx, session)

	return session
}

// MakeTurn - applies a move for whoever is to play. On a rejection the returned session is the unchanged state.
// Sessions are published under the lock, so the publisher sees them in the order they were made.
func (that *GameManager) MakeTurn(ctx context.Context, move entity.Move) (Session, error) {
	log := that.logger.With("method", "MakeTurn")

	that.mu.Lock()
	defer that.mu.Unlock()

	before, session, err := that.applyMove(move)
	if err != nil {
		if apperror.IsRejection(err) {
			log.Info("move rejected", "game_id", session.ID, "move", move.String(), "error", err)
		} else {
			log.Warn("failed make turn", "move", move.String(), "error", err)
		}

		return session, fmt.Errorf("failed make turn: %w", err)
	}

	that.logMove(log, before, session, move)
	that.publisher.Publish(ctx, session)

	return session, nil
}

// Session - returns the current state without changing it.
func (that *GameManager) Session() (Session, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.game == nil {
		return Session{}, apperror.ErrNoActiveGame
	}

	return that.session(), nil
}

// applyMove - must be called with mu held.
func (that *GameManager) applyMove(move entity.Move) (entity.Snapshot, Session, error) {
	if that.game == nil {
		return entity.Snapshot{}, Session{}, apperror.ErrNoActiveGame
	}

	before := that.game.Snapshot()

	snapshot, err := that.game.ApplyMove(move)
	if err != nil {
		return before, that.session(), err
	}

	if snapshot.IsFinished() {
		that.score.record(snapshot)
	}

	return before, that.session(), nil
}

// session - must be called with mu held.
func (that *GameManager) session() Session {
	return Session{
		ID:      that.gameID,
		Players: that.players,
		Score:   that.score,
		Game:    that.game.Snapshot(),
	}
}

func (that *GameManager) logMove(log *slog.Logger, before entity.Snapshot, session Session, move entity.Move) {
	after := session.Game
	mover := before.Turn

	log.Debug("move accepted",
		"game_id", session.ID,
		"mark", mover.String(),
		"move", move.String(),
		"active", after.Active.String(),
	)

	if board := after.Board(move.Board); !before.Board(move.Board).Resolved() && board.Resolved() {
		log.Info("board resolved",
			"game_id", session.ID,
			"board", move.Board.String(),
			"outcome", board.Outcome.String(),
			"winner", board.Winner.String(),
		)
	}

	if after.IsFinished() {
		log.Info("game finished",
			"game_id", session.ID,
			"status", string(after.Status),
			"winner", after.Winner.String(),
			"player", session.Player(after.Winner).Name,
			"moves", after.Moves,
		)
	}
}
