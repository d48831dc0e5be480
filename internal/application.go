package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/entity"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/tui"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/usecase"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	players := entity.Players(conf.Players.MarkA, conf.Players.MarkB)
	publisher := tui.NewPublisher()
	gameManager := usecase.NewGameManager(logger, players, publisher)

	log.Info("Starting game", "player_a", players[0].Name, "player_b", players[1].Name)

	if err := tui.Run(ctx, logger, gameManager, publisher, conf.UI); err != nil {
		return fmt.Errorf("terminal ui error: %w", err)
	}

	log.Info("Application stopped")

	return nil
}
