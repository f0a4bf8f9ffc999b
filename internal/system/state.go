// internal/system/state.go
package system

import (
	"sushi-neko/internal/component"
	"sushi-neko/internal/event"
	"sushi-neko/internal/interfaces"
)

// StateSystem хранит фазу партии и рассылает события о переходах.
type StateSystem struct {
	current         component.GameState
	gameContext     interfaces.GameContext
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{
		current:         component.TitleState,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
	}
}

func (s *StateSystem) Current() component.GameState {
	return s.current
}

// SwitchToReady показывает башню и ждёт первого касания.
func (s *StateSystem) SwitchToReady() {
	s.current = component.ReadyState
}

// SwitchToPlaying запускает симуляцию по первому касанию.
func (s *StateSystem) SwitchToPlaying() {
	if s.current != component.ReadyState {
		return
	}
	s.current = component.PlayingState
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameStarted,
		Data: s.gameContext.SessionID(),
	})
}

// SwitchToGameOver завершает партию. cause это Collision или HealthDepleted.
func (s *StateSystem) SwitchToGameOver(cause event.EventType) {
	if s.current == component.GameOverState {
		return
	}
	s.current = component.GameOverState
	s.gameContext.OnGameOver()

	data := event.GameOverData{
		Session: s.gameContext.SessionID(),
		Score:   s.gameContext.Score(),
		Health:  s.gameContext.Health(),
		Cause:   cause,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: cause, Data: data})
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: data})
}
