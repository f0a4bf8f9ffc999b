// internal/state/game_state.go
package state

import (
	"sushi-neko/internal/app"
	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/render"
	"sushi-neko/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog/log"
)

// GameState это экран партии: ввод, тики и отрисовка app.Game
type GameState struct {
	sm          *StateMachine
	game        *app.Game
	renderer    *render.SushiRenderer
	healthBar   *ui.PlayerHealthIndicator
	scoreLabel  *ui.ScoreLabel
	playButton  *ui.Button
	touchBuffer []ebiten.TouchID
}

func NewGameState(sm *StateMachine, game *app.Game) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		renderer: render.NewSushiRenderer(config.ScreenHeight),
		healthBar: ui.NewPlayerHealthIndicator(
			config.HealthBarX, config.HealthBarY,
			config.HealthBarWidth, config.HealthBarHeight,
		),
		scoreLabel: ui.NewScoreLabel(config.ScreenWidth/2, config.ScoreLabelY, ui.DefaultFace),
		playButton: ui.NewButton(
			config.ScreenWidth/2, config.PlayButtonY,
			config.PlayButtonW, config.PlayButtonH,
			"PLAY", ui.DefaultFace,
		),
	}
}

// Game возвращает текущую партию. После рестарта это новый объект.
func (g *GameState) Game() *app.Game {
	return g.game
}

func (g *GameState) Enter() {}

func (g *GameState) Update(deltaTime float64) {
	if g.game.State() == component.PlayingState &&
		(inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}

	if g.game.ShowPlayButton() &&
		(inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)) {
		g.pressPlay()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) || inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.game.HandleSide(component.Left)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) || inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.game.HandleSide(component.Right)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(ebiten.CursorPosition())
	}
	g.touchBuffer = inpututil.AppendJustPressedTouchIDs(g.touchBuffer[:0])
	for _, id := range g.touchBuffer {
		g.handleClick(ebiten.TouchPosition(id))
	}

	g.game.Update(deltaTime)
}

// handleClick обрабатывает клик или касание в экранных координатах.
func (g *GameState) handleClick(x, y int) {
	if g.game.ShowPlayButton() {
		if g.playButton.Contains(x, y) {
			g.pressPlay()
		}
		return
	}
	g.game.HandleInput(float64(x), float64(config.ScreenHeight-y))
}

func (g *GameState) pressPlay() {
	next := g.game.PressPlay()
	if next != g.game {
		log.Debug().Str("session", next.SessionID()).Msg("switched to new game")
	}
	g.game = next
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.game.Tower, g.game.VisualEffectSystem, g.game.Player)
	g.healthBar.Draw(screen, g.game.HealthBarScale())
	g.scoreLabel.Draw(screen, g.game.Score())

	switch g.game.State() {
	case component.TitleState:
		ui.DrawCenteredText(screen, ui.DefaultFace, "SUSHI NEKO", config.ScreenWidth/2, config.PlayButtonY-80, 3, config.TextDarkColor)
		g.playButton.Draw(screen)
	case component.ReadyState:
		ui.DrawCenteredText(screen, ui.DefaultFace, "TAP LEFT OR RIGHT", config.ScreenWidth/2, config.PlayButtonY, 2, config.TextDarkColor)
	case component.GameOverState:
		ui.DrawCenteredText(screen, ui.DefaultFace, "GAME OVER", config.ScreenWidth/2, config.PlayButtonY-80, 3, config.DistressColor)
		g.playButton.Draw(screen)
	}
}

func (g *GameState) Exit() {}
