// internal/app/events.go
package app

import (
	"sushi-neko/internal/event"
)

var loggedEvents = []event.EventType{
	event.GameStarted,
	event.PieceCleared,
	event.Collision,
	event.HealthDepleted,
	event.GameOver,
}

// GameEventListener пишет события партии в лог.
type GameEventListener struct {
	game *Game
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	logger := l.game.logger
	switch e.Type {
	case event.GameStarted:
		logger.Info().Msg("game started")
	case event.PieceCleared:
		if d, ok := e.Data.(event.PieceClearedData); ok {
			logger.Debug().
				Stringer("punch", d.PunchSide).
				Stringer("piece", d.PieceSide).
				Int("score", d.Score).
				Float64("health", d.Health).
				Msg("piece cleared")
		}
	case event.Collision, event.HealthDepleted:
		logger.Debug().Str("cause", string(e.Type)).Msg("losing transition")
	case event.GameOver:
		if d, ok := e.Data.(event.GameOverData); ok {
			logger.Info().
				Int("score", d.Score).
				Float64("health", d.Health).
				Str("cause", string(d.Cause)).
				Msg("game over")
		}
	}
}
