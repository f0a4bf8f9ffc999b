// internal/interfaces/game_context.go
package interfaces

// GameContext описывает то, что StateSystem требует от Game.
// Это помогает избежать циклических зависимостей.
type GameContext interface {
	SessionID() string
	Score() int
	Health() float64
	OnGameOver()
}
