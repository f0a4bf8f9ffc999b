package component

// GameState хранит фазу партии
type GameState int

const (
	TitleState GameState = iota
	ReadyState
	PlayingState
	GameOverState
)

func (s GameState) String() string {
	switch s {
	case TitleState:
		return "title"
	case ReadyState:
		return "ready"
	case PlayingState:
		return "playing"
	case GameOverState:
		return "gameOver"
	default:
		return "unknown"
	}
}

// AcceptsInput сообщает, обрабатываются ли касания в этой фазе.
func (s GameState) AcceptsInput() bool {
	return s == ReadyState || s == PlayingState
}
