// internal/event/types.go
package event

import "sushi-neko/internal/component"

const (
	GameStarted    EventType = "GameStarted"    // Первое касание в состоянии ready
	PieceCleared   EventType = "PieceCleared"   // Кусочек выбит
	Collision      EventType = "Collision"      // Игрок ударил со стороны палочек
	HealthDepleted EventType = "HealthDepleted" // Здоровье ушло ниже нуля
	GameOver       EventType = "GameOver"       // Партия окончена
)

// PieceClearedData передаётся с событием PieceCleared.
type PieceClearedData struct {
	Session   string
	PunchSide component.Side
	PieceSide component.Side
	Score     int
	Health    float64
}

// GameOverData передаётся с событиями Collision, HealthDepleted и GameOver.
type GameOverData struct {
	Session string
	Score   int
	Health  float64
	Cause   EventType
}
