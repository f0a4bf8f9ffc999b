package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	"sushi-neko/internal/app"
	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(60, 30)

	g := app.NewGame(
		entity.NewPiece(config.BasePieceX, config.BasePieceY),
		entity.NewPlayer(config.PlayerY),
		app.WithRNG(utils.NewPRNGService(5)),
		app.WithLogger(zerolog.Nop()),
	)
	return New(screen, g, zerolog.Nop()), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func rowText(s tcell.Screen, row int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := s.GetContent(x, row)
		b.WriteRune(r)
	}
	return b.String()
}

func screenText(s tcell.Screen) string {
	_, h := s.Size()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func TestEnterStartsGame(t *testing.T) {
	term, _ := newTestTerminal(t)
	assert.False(t, term.HandleEvent(key(tcell.KeyEnter)))
	assert.Equal(t, component.ReadyState, term.Game().State())
}

func TestArrowKeysPunch(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.HandleEvent(runeKey(' '))

	// Первый кусочек башни всегда пустой
	term.HandleEvent(key(tcell.KeyRight))
	assert.Equal(t, component.PlayingState, term.Game().State())
	assert.Equal(t, 1, term.Game().Score())
	assert.Equal(t, component.Right, term.Game().Player.Side())

	// Следующий кусочек с палочками справа, бить надо слева
	term.HandleEvent(key(tcell.KeyLeft))
	assert.Equal(t, 2, term.Game().Score())
	assert.Equal(t, component.Left, term.Game().Player.Side())
}

func TestMouseClickUsesColumn(t *testing.T) {
	term, _ := newTestTerminal(t)
	term.HandleEvent(key(tcell.KeyEnter))

	term.HandleEvent(tcell.NewEventMouse(55, 10, tcell.Button1, tcell.ModNone))
	term.HandleEvent(tcell.NewEventMouse(55, 10, tcell.ButtonNone, tcell.ModNone))
	assert.Equal(t, component.Right, term.Game().Player.Side())
	assert.Equal(t, 1, term.Game().Score())

	term.HandleEvent(tcell.NewEventMouse(3, 10, tcell.Button1, tcell.ModNone))
	assert.Equal(t, component.Left, term.Game().Player.Side())
	assert.Equal(t, 2, term.Game().Score())

	// Удержание кнопки не считается новым ударом
	term.HandleEvent(tcell.NewEventMouse(3, 11, tcell.Button1, tcell.ModNone))
	assert.Equal(t, 2, term.Game().Score())
}

func TestPauseFreezesGame(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.HandleEvent(key(tcell.KeyEnter))

	// В ready пауза недоступна
	term.HandleEvent(runeKey('p'))
	assert.False(t, term.Paused())

	term.HandleEvent(key(tcell.KeyRight))
	term.HandleEvent(runeKey('p'))
	require.True(t, term.Paused())

	health := term.Game().Health()
	term.Tick()
	term.HandleEvent(key(tcell.KeyLeft))
	assert.InDelta(t, health, term.Game().Health(), 1e-9)
	assert.Equal(t, 1, term.Game().Score())
	assert.Contains(t, screenText(screen), "PAUSED")

	term.HandleEvent(runeKey('p'))
	term.Tick()
	assert.InDelta(t, health-config.HealthDecay, term.Game().Health(), 1e-9)
}

func TestQuitKeys(t *testing.T) {
	term, _ := newTestTerminal(t)
	assert.True(t, term.HandleEvent(runeKey('q')))
	assert.True(t, term.HandleEvent(key(tcell.KeyEscape)))
	assert.True(t, term.HandleEvent(key(tcell.KeyCtrlC)))
	assert.False(t, term.HandleEvent(runeKey('x')))
}

func TestRestartSwapsGame(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.HandleEvent(key(tcell.KeyEnter))
	term.HandleEvent(key(tcell.KeyRight))
	// Справа палочки: столкновение
	term.HandleEvent(key(tcell.KeyRight))

	old := term.Game()
	require.Equal(t, component.GameOverState, old.State())
	term.Draw()
	assert.Contains(t, screenText(screen), "GAME OVER")

	term.HandleEvent(key(tcell.KeyEnter))
	assert.NotSame(t, old, term.Game())
	assert.Equal(t, component.ReadyState, term.Game().State())
	assert.Equal(t, 0, term.Game().Score())
}

func TestDrawShowsHUDAndTower(t *testing.T) {
	term, screen := newTestTerminal(t)
	term.Draw()

	assert.Contains(t, rowText(screen, 0), "SCORE 0")
	assert.Contains(t, rowText(screen, 0), "[####################]")
	assert.Contains(t, screenText(screen), "SUSHI NEKO")

	w, h := screen.Size()
	base := rowText(screen, h-3)
	assert.Contains(t, base, "(~~~~~~~~~)")
	assert.Contains(t, base, "=^.^=")

	// Второй кусочек башни (с палочками справа) на два ряда выше базы
	second := rowText(screen, h-3-2*rowsPerPiece)
	r, _, _, _ := screen.GetContent(w/2+pieceCols/2+1, h-3-2*rowsPerPiece)
	assert.Equal(t, '=', r, second)
}

func TestWorldToCell(t *testing.T) {
	col, row := worldToCell(component.Position{X: config.BasePieceX, Y: config.BasePieceY}, 30, 27)
	assert.Equal(t, 30, col)
	assert.Equal(t, 27, row)

	col, row = worldToCell(component.Position{X: config.BasePieceX + config.PieceWidth, Y: config.BasePieceY + config.StackSpacing}, 30, 27)
	assert.Equal(t, 30+pieceCols, col)
	assert.Equal(t, 27-rowsPerPiece, row)
}

func TestRunStopsOnQuitAndCancel(t *testing.T) {
	term, screen := newTestTerminal(t)
	require.NoError(t, screen.PostEvent(runeKey('q')))
	assert.NoError(t, term.Run(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, term.Run(ctx), context.DeadlineExceeded)
}
