// internal/app/game.go
package app

import (
	"math"

	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/event"
	"sushi-neko/internal/system"
	"sushi-neko/internal/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Option настраивает Game при создании.
type Option func(*Game)

// WithRNG задаёт генератор случайных чисел для башни.
func WithRNG(rng *utils.PRNGService) Option {
	return func(g *Game) { g.Rng = rng }
}

// WithDispatcher задаёт общий диспетчер событий (звук, логирование, UI).
func WithDispatcher(d *event.Dispatcher) Option {
	return func(g *Game) { g.EventDispatcher = d }
}

// WithLogger задаёт базовый логгер, к нему добавляется поле session.
func WithLogger(l zerolog.Logger) Option {
	return func(g *Game) { g.baseLogger = l }
}

// Game holds the main game state and logic.
type Game struct {
	ID                 uuid.UUID
	Tower              *system.TowerSystem
	Player             *entity.Player
	StateSystem        *system.StateSystem
	VisualEffectSystem *system.VisualEffectSystem
	EventDispatcher    *event.Dispatcher
	Rng                *utils.PRNGService

	score      int
	health     float64
	playAction func() *Game
	listener   *GameEventListener
	baseLogger zerolog.Logger
	logger     zerolog.Logger
}

// NewGame initializes a new game instance around an already positioned base piece and player.
// The game starts in the title state.
func NewGame(template *entity.Piece, player *entity.Player, opts ...Option) *Game {
	if template == nil || player == nil {
		panic("template and player cannot be nil")
	}

	g := &Game{
		ID:         uuid.New(),
		Player:     player,
		health:     config.InitialHealth,
		baseLogger: log.Logger,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.Rng == nil {
		g.Rng = utils.NewPRNGService(0)
	}
	if g.EventDispatcher == nil {
		g.EventDispatcher = event.NewDispatcher()
	}
	g.logger = g.baseLogger.With().Str("session", g.ID.String()).Logger()

	g.Tower = system.NewTowerSystem(template, g.Rng)
	g.StateSystem = system.NewStateSystem(g, g.EventDispatcher)
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Tower, g.Player)

	// Начало башни всегда одинаковое: пустой кусочек, затем правый
	g.Tower.Push(component.None)
	g.Tower.Push(component.Right)
	g.Tower.GenerateNext(config.InitialRandom)

	g.listener = &GameEventListener{game: g}
	g.EventDispatcher.SubscribeAll(g.listener, loggedEvents...)

	g.playAction = g.start

	g.logger.Debug().Int("tower", g.Tower.Len()).Msg("game created")
	return g
}

// PressPlay выполняет действие кнопки play. В состоянии title переводит игру в ready,
// после проигрыша возвращает новую партию в состоянии ready. В остальных состояниях ничего не делает.
func (g *Game) PressPlay() *Game {
	switch g.State() {
	case component.TitleState, component.GameOverState:
		return g.playAction()
	default:
		return g
	}
}

func (g *Game) start() *Game {
	g.StateSystem.SwitchToReady()
	return g
}

func (g *Game) restart() *Game {
	g.detach()
	next := NewGame(
		g.Tower.Template().CloneWithSide(component.None),
		g.Player.Respawn(),
		WithRNG(g.Rng),
		WithDispatcher(g.EventDispatcher),
		WithLogger(g.baseLogger),
	)
	next.StateSystem.SwitchToReady()
	g.logger.Info().Str("next", next.ID.String()).Msg("game restarted")
	return next
}

// detach отписывает логирование этой партии от общего диспетчера.
func (g *Game) detach() {
	for _, t := range loggedEvents {
		g.EventDispatcher.Unsubscribe(t, g.listener)
	}
}

// HandleInput обрабатывает касание в точке (x, y). Касания учитываются только в ready и playing.
func (g *Game) HandleInput(x, y float64) {
	if !g.State().AcceptsInput() {
		return
	}
	g.StateSystem.SwitchToPlaying()

	side := component.Left
	if x > config.PlayWidth/2 {
		side = component.Right
	}
	g.Player.SetSide(side)

	front := g.Tower.Front()
	if g.Player.Side() == front.Side() {
		g.StateSystem.SwitchToGameOver(event.Collision)
		return
	}

	g.setHealth(g.health + config.HealthIncrement)
	g.score++

	piece := g.Tower.PopFront()
	piece.StartFlip(side)
	g.VisualEffectSystem.AddFlip(piece)
	g.Tower.GenerateNext(1)

	g.EventDispatcher.Dispatch(event.Event{
		Type: event.PieceCleared,
		Data: event.PieceClearedData{
			Session:   g.SessionID(),
			PunchSide: side,
			PieceSide: piece.Side(),
			Score:     g.score,
			Health:    g.health,
		},
	})
}

// HandleSide переводит нажатие клавиши в касание соответствующей половины поля.
func (g *Game) HandleSide(side component.Side) {
	switch side {
	case component.Left:
		g.HandleInput(config.PlayWidth/4, 0)
	case component.Right:
		g.HandleInput(config.PlayWidth*3/4, 0)
	}
}

// Update progresses the game state by one frame.
func (g *Game) Update(deltaTime float64) {
	g.VisualEffectSystem.Update(deltaTime)

	if g.State() != component.PlayingState {
		return
	}

	g.setHealth(g.health - config.HealthDecay)
	if g.health < 0 {
		g.StateSystem.SwitchToGameOver(event.HealthDepleted)
	}

	g.Tower.Update()
}

// setHealth ограничивает здоровье только сверху: отрицательное значение означает проигрыш.
func (g *Game) setHealth(h float64) {
	g.health = math.Min(h, config.MaxHealth)
}

// OnGameOver вызывается StateSystem при переходе в gameOver.
func (g *Game) OnGameOver() {
	g.VisualEffectSystem.StartDistress()
	g.playAction = g.restart
}

func (g *Game) State() component.GameState {
	return g.StateSystem.Current()
}

func (g *Game) SessionID() string {
	return g.ID.String()
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) Health() float64 {
	return g.health
}

// HealthBarScale возвращает горизонтальный масштаб полоски здоровья в [0, 1].
func (g *Game) HealthBarScale() float64 {
	return utils.Clamp(g.health, 0, 1)
}

// Base возвращает базовый кусочек, на котором стоит башня.
func (g *Game) Base() *entity.Piece {
	return g.Tower.Template()
}

// Flipping возвращает выбитые кусочки, которые ещё улетают.
func (g *Game) Flipping() []*entity.Piece {
	return g.VisualEffectSystem.Flipping()
}

// ShowPlayButton сообщает, должна ли быть видна кнопка play.
func (g *Game) ShowPlayButton() bool {
	s := g.State()
	return s == component.TitleState || s == component.GameOverState
}
