package app

import (
	"bytes"
	"testing"

	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/event"
	"sushi-neko/internal/system"
	"sushi-neko/internal/utils"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	leftX  = config.PlayWidth / 4
	rightX = config.PlayWidth * 3 / 4
)

type recorder struct {
	types []event.EventType
	data  []any
}

func (r *recorder) OnEvent(e event.Event) {
	r.types = append(r.types, e.Type)
	r.data = append(r.data, e.Data)
}

func newTestGame(t *testing.T, opts ...Option) *Game {
	t.Helper()
	opts = append([]Option{WithRNG(utils.NewPRNGService(11)), WithLogger(zerolog.Nop())}, opts...)
	return NewGame(
		entity.NewPiece(config.BasePieceX, config.BasePieceY),
		entity.NewPlayer(config.PlayerY),
		opts...,
	)
}

// withFront заменяет башню на башню с заданными сторонами снизу вверх.
func withFront(g *Game, sides ...component.Side) {
	g.Tower = system.NewTowerSystem(g.Tower.Template(), g.Rng)
	for _, s := range sides {
		g.Tower.Push(s)
	}
	g.VisualEffectSystem = system.NewVisualEffectSystem(g.Tower, g.Player)
}

func TestNewGameStartsOnTitle(t *testing.T) {
	g := newTestGame(t)
	assert.Equal(t, component.TitleState, g.State())
	assert.Equal(t, 0, g.Score())
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Equal(t, 2+config.InitialRandom, g.Tower.Len())

	pieces := g.Tower.Pieces()
	assert.Equal(t, component.None, pieces[0].Side())
	assert.Equal(t, component.Right, pieces[1].Side())
	assert.True(t, g.ShowPlayButton())
}

func TestInputIgnoredOnTitle(t *testing.T) {
	g := newTestGame(t)
	front := g.Tower.Front()
	length := g.Tower.Len()

	g.HandleInput(leftX, 0)
	g.Update(config.FrameDelta)

	assert.Equal(t, component.TitleState, g.State())
	assert.Equal(t, 0, g.Score())
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Same(t, front, g.Tower.Front())
	assert.Equal(t, length, g.Tower.Len())
	assert.Zero(t, g.Player.Punch.Count)
}

func TestPressPlayMovesTitleToReady(t *testing.T) {
	g := newTestGame(t)
	same := g.PressPlay()
	assert.Same(t, g, same)
	assert.Equal(t, component.ReadyState, g.State())
	assert.False(t, g.ShowPlayButton())

	// Повторное нажатие в ready ничего не делает
	assert.Same(t, g, g.PressPlay())
	assert.Equal(t, component.ReadyState, g.State())
}

func TestNoTickBeforePlaying(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	g.Update(config.FrameDelta)
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Equal(t, component.ReadyState, g.State())
}

func TestCollisionFromReady(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.GameStarted, event.Collision, event.GameOver, event.PieceCleared)

	g := newTestGame(t, WithDispatcher(d))
	g.PressPlay()
	withFront(g, component.Left, component.None)

	g.HandleInput(leftX, 100)

	assert.Equal(t, component.GameOverState, g.State())
	assert.Equal(t, component.Left, g.Player.Side())
	assert.Equal(t, 0, g.Score())
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Equal(t, 2, g.Tower.Len())
	assert.Equal(t, []event.EventType{event.GameStarted, event.Collision, event.GameOver}, rec.types)

	over := rec.data[2].(event.GameOverData)
	assert.Equal(t, event.Collision, over.Cause)
	assert.Equal(t, g.SessionID(), over.Session)
}

func TestSuccessfulMatchFromReady(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.Right, component.None, component.Left)
	front := g.Tower.Front()

	g.HandleInput(leftX, 100)

	assert.Equal(t, component.PlayingState, g.State())
	assert.Equal(t, 1, g.Score())
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Equal(t, 3, g.Tower.Len())
	assert.NotSame(t, front, g.Tower.Front())
	require.Len(t, g.Flipping(), 1)
	assert.Same(t, front, g.Flipping()[0])
	assert.InDelta(t, 1.0, front.Flip.Direction, 1e-9)
	// После левого кусочка сверху генерация обязана дать пустой
	assert.Equal(t, component.None, g.Tower.Last().Side())
}

func TestMatchRestoresHealthWithCap(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.None, component.None)
	g.HandleInput(rightX, 0)
	require.Equal(t, component.PlayingState, g.State())

	g.health = 0.5
	withFront(g, component.Left, component.None)
	g.HandleInput(rightX, 0)
	assert.InDelta(t, 0.6, g.Health(), 1e-9)
	assert.Equal(t, 2, g.Score())

	g.health = 0.95
	withFront(g, component.None, component.None)
	g.HandleInput(leftX, 0)
	assert.InDelta(t, 1.0, g.Health(), 1e-9)
	assert.Equal(t, 3, g.Score())
}

func TestTickDecaysHealth(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.None, component.None)
	g.HandleInput(leftX, 0)

	g.Update(config.FrameDelta)
	assert.InDelta(t, 0.99, g.Health(), 1e-9)
	g.Update(config.FrameDelta)
	assert.InDelta(t, 0.98, g.Health(), 1e-9)
	assert.Equal(t, component.PlayingState, g.State())
}

func TestHealthDepletedOnTick(t *testing.T) {
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec, event.HealthDepleted, event.GameOver)

	g := newTestGame(t, WithDispatcher(d))
	g.PressPlay()
	withFront(g, component.None, component.None)
	g.HandleInput(leftX, 0)

	g.health = 0.005
	front := g.Tower.Front()
	before := front.Position.Y
	g.Update(config.FrameDelta)

	assert.InDelta(t, -0.005, g.Health(), 1e-9)
	assert.Equal(t, component.GameOverState, g.State())
	assert.Equal(t, []event.EventType{event.HealthDepleted, event.GameOver}, rec.types)
	assert.InDelta(t, 0.0, g.HealthBarScale(), 1e-9)
	// Башня сдвигается и в тике проигрыша
	assert.NotEqual(t, before, front.Position.Y)

	// После проигрыша тики ничего не меняют
	g.Update(config.FrameDelta)
	assert.InDelta(t, -0.005, g.Health(), 1e-9)
}

func TestInputIgnoredAfterGameOver(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.Right, component.None)
	g.HandleInput(rightX, 0)
	require.Equal(t, component.GameOverState, g.State())

	g.HandleInput(leftX, 0)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, component.GameOverState, g.State())
}

func TestGameOverMarksDistress(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.None, component.Left, component.None)
	g.HandleInput(rightX, 0) // выбили пустой
	g.HandleInput(leftX, 0)  // удар со стороны палочек

	require.Equal(t, component.GameOverState, g.State())
	assert.NotNil(t, g.Base().Distress)
	assert.NotNil(t, g.Player.Distress)
	for _, p := range g.Tower.Pieces() {
		assert.NotNil(t, p.Distress)
	}
	for _, p := range g.Flipping() {
		assert.NotNil(t, p.Distress)
	}
	assert.True(t, g.ShowPlayButton())
}

func TestRestartBuildsFreshGame(t *testing.T) {
	d := event.NewDispatcher()
	g := newTestGame(t, WithDispatcher(d))
	g.PressPlay()
	withFront(g, component.None, component.Right, component.None)
	g.HandleInput(leftX, 0)
	g.HandleInput(rightX, 0)
	require.Equal(t, component.GameOverState, g.State())
	require.Equal(t, 1, g.Score())

	next := g.PressPlay()
	require.NotSame(t, g, next)
	assert.Equal(t, component.ReadyState, next.State())
	assert.Equal(t, 0, next.Score())
	assert.InDelta(t, 1.0, next.Health(), 1e-9)
	assert.NotEqual(t, g.SessionID(), next.SessionID())
	assert.Equal(t, 2+config.InitialRandom, next.Tower.Len())
	assert.Nil(t, next.Base().Distress)
	assert.Nil(t, next.Player.Distress)
	assert.Equal(t, component.Left, next.Player.Side())
	assert.Same(t, d, next.EventDispatcher)
	assert.Same(t, g.Rng, next.Rng)

	// Старая партия остаётся в gameOver
	assert.Equal(t, component.GameOverState, g.State())
}

func TestRestartDoesNotDuplicateLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	d := event.NewDispatcher()
	g := newTestGame(t, WithDispatcher(d), WithLogger(logger))
	g.PressPlay()
	withFront(g, component.Left, component.None)
	g.HandleInput(leftX, 0)
	next := g.PressPlay()

	buf.Reset()
	withFront(next, component.Left, component.None)
	next.HandleInput(leftX, 0)
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"message":"game started"`)))
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte(`"message":"game over"`)))
	assert.Contains(t, buf.String(), next.SessionID())
	assert.NotContains(t, buf.String(), g.SessionID())
}

func TestHandleSide(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.None, component.None)

	g.HandleSide(component.Right)
	assert.Equal(t, component.Right, g.Player.Side())
	assert.Equal(t, 1, g.Score())

	g.HandleSide(component.None)
	assert.Equal(t, 1, g.Score())
}

func TestTowerNeverEmptyWhilePlaying(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()

	for i := 0; i < 500 && g.State() != component.GameOverState; i++ {
		// Всегда бьём с безопасной стороны
		side := component.Left
		if g.Tower.Front().Side() == component.Left {
			side = component.Right
		}
		g.HandleSide(side)
		g.Update(config.FrameDelta)
		require.Positive(t, g.Tower.Len())
		require.Equal(t, 2+config.InitialRandom, g.Tower.Len())

		pieces := g.Tower.Pieces()
		for j := 1; j < len(pieces); j++ {
			if pieces[j-1].Side() != component.None {
				require.Equal(t, component.None, pieces[j].Side())
			}
		}
	}
	assert.Equal(t, component.PlayingState, g.State())
	assert.Equal(t, 500, g.Score())
}

func TestBoundaryClassification(t *testing.T) {
	g := newTestGame(t)
	g.PressPlay()
	withFront(g, component.None, component.None)

	// Ровно середина считается левой половиной
	g.HandleInput(config.PlayWidth/2, 0)
	assert.Equal(t, component.Left, g.Player.Side())

	withFront(g, component.None, component.None)
	g.HandleInput(config.PlayWidth/2+0.5, 0)
	assert.Equal(t, component.Right, g.Player.Side())
}
