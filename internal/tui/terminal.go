// internal/tui/terminal.go
package tui

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"sushi-neko/internal/app"
	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	rendercolor "sushi-neko/pkg/render"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

const (
	pieceCols    = 11 // Ширина кусочка в клетках
	rowsPerPiece = 2  // Сколько строк занимает шаг башни
	playerOffset = 10 // Смещение игрока от центра в клетках
	hudBarCols   = 20
)

// Terminal это терминальный фронтенд: рисует партию клетками tcell и переводит
// клавиши и мышь в ввод игры.
type Terminal struct {
	screen    tcell.Screen
	game      *app.Game
	logger    zerolog.Logger
	paused    bool
	mouseDown bool
}

func New(screen tcell.Screen, game *app.Game, logger zerolog.Logger) *Terminal {
	return &Terminal{screen: screen, game: game, logger: logger}
}

// Game возвращает текущую партию. После рестарта это новый объект.
func (t *Terminal) Game() *app.Game {
	return t.game
}

func (t *Terminal) Paused() bool {
	return t.paused
}

// Run крутит кадровый цикл до выхода игрока или отмены ctx.
// События из PollEvent и тики обрабатываются строго по очереди в этой горутине.
func (t *Terminal) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 64)
	stop := make(chan struct{})
	defer close(stop)

	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	ticker := time.NewTicker(time.Second / config.TPS)
	defer ticker.Stop()

	t.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if t.HandleEvent(ev) {
				t.logger.Info().Msg("terminal quit")
				return nil
			}
		case <-ticker.C:
			t.Tick()
		}
	}
}

// Tick продвигает партию на один кадр (если не пауза) и перерисовывает экран.
func (t *Terminal) Tick() {
	if !t.paused {
		t.game.Update(config.FrameDelta)
	}
	t.Draw()
}

// HandleEvent обрабатывает одно событие и сообщает, нужно ли выходить.
func (t *Terminal) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return t.handleKey(ev)
	case *tcell.EventMouse:
		t.handleMouse(ev)
	case *tcell.EventResize:
		t.screen.Sync()
	}
	return false
}

func (t *Terminal) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		t.pressPlay()
		return false
	case tcell.KeyLeft:
		t.punch(component.Left)
		return false
	case tcell.KeyRight:
		t.punch(component.Right)
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch ev.Rune() {
	case 'q':
		return true
	case ' ':
		t.pressPlay()
	case 'p':
		if t.game.State() == component.PlayingState || t.paused {
			t.paused = !t.paused
		}
	case 'a', 'h':
		t.punch(component.Left)
	case 'd', 'l':
		t.punch(component.Right)
	}
	return false
}

func (t *Terminal) handleMouse(ev *tcell.EventMouse) {
	down := ev.Buttons()&tcell.Button1 != 0
	pressed := down && !t.mouseDown
	t.mouseDown = down
	if !pressed {
		return
	}
	if t.game.ShowPlayButton() {
		t.pressPlay()
		return
	}
	if t.paused {
		return
	}
	x, _ := ev.Position()
	w, _ := t.screen.Size()
	if w <= 0 {
		return
	}
	worldX := (float64(x) + 0.5) / float64(w) * config.PlayWidth
	t.game.HandleInput(worldX, 0)
}

func (t *Terminal) punch(side component.Side) {
	if t.paused {
		return
	}
	t.game.HandleSide(side)
}

func (t *Terminal) pressPlay() {
	if !t.game.ShowPlayButton() {
		return
	}
	next := t.game.PressPlay()
	if next != t.game {
		t.logger.Debug().Str("session", next.SessionID()).Msg("switched to new game")
	}
	t.game = next
}

// Draw перерисовывает весь экран.
func (t *Terminal) Draw() {
	s := t.screen
	w, h := s.Size()
	bg := tcell.StyleDefault.Background(toTcell(config.BackgroundColor)).Foreground(toTcell(config.TextDarkColor))
	s.Fill(' ', bg)

	cx := w / 2
	baseRow := h - 3

	g := t.game
	t.drawPiece(g.Base(), cx, baseRow, bg)
	for _, p := range g.Tower.Pieces() {
		t.drawPiece(p, cx, baseRow, bg)
	}
	for _, p := range g.Flipping() {
		t.drawPiece(p, cx, baseRow, bg)
	}
	t.drawPlayer(g.Player, cx, baseRow, bg)
	t.drawHUD(w, bg)

	msgRow := h / 3
	switch {
	case t.paused:
		t.drawCentered(msgRow, "PAUSED  [p] resume", bg.Bold(true))
	case g.State() == component.TitleState:
		t.drawCentered(msgRow, "SUSHI NEKO", bg.Bold(true))
		t.drawCentered(msgRow+1, "[Enter] play  [q] quit", bg)
	case g.State() == component.ReadyState:
		t.drawCentered(msgRow, "left / right to punch", bg)
	case g.State() == component.GameOverState:
		t.drawCentered(msgRow, "GAME OVER", bg.Foreground(toTcell(config.DistressColor)).Bold(true))
		t.drawCentered(msgRow+1, "[Enter] play again", bg)
	}
	s.Show()
}

// worldToCell переводит мировые координаты в клетку экрана.
func worldToCell(pos component.Position, cx, baseRow int) (int, int) {
	col := cx + int(math.Round((pos.X-config.BasePieceX)*pieceCols/config.PieceWidth))
	row := baseRow - int(math.Round((pos.Y-config.BasePieceY)/config.StackSpacing*rowsPerPiece))
	return col, row
}

func (t *Terminal) drawPiece(p *entity.Piece, cx, baseRow int, bg tcell.Style) {
	col, row := worldToCell(p.Position, cx, baseRow)
	if row < 1 {
		return
	}
	tint := p.Distress.Amount()
	body := bg.Background(toTcell(rendercolor.TintColor(p.Renderable.Color, config.DistressColor, tint))).
		Foreground(toTcell(rendercolor.TintColor(config.PieceFillingColor, config.DistressColor, tint)))
	chop := bg.Foreground(toTcell(rendercolor.TintColor(config.ChopstickColor, config.DistressColor, tint)))

	edge := body.Foreground(toTcell(rendercolor.DarkenColor(rendercolor.TintColor(p.Renderable.Color, config.DistressColor, tint))))

	half := pieceCols / 2
	for i := -half; i <= half; i++ {
		switch i {
		case -half:
			t.screen.SetContent(col+i, row, '(', nil, edge)
		case half:
			t.screen.SetContent(col+i, row, ')', nil, edge)
		default:
			t.screen.SetContent(col+i, row, '~', nil, body)
		}
	}
	if p.LeftChopstick() {
		t.screen.SetContent(col-half-2, row, '=', nil, chop)
		t.screen.SetContent(col-half-1, row, '=', nil, chop)
	}
	if p.RightChopstick() {
		t.screen.SetContent(col+half+1, row, '=', nil, chop)
		t.screen.SetContent(col+half+2, row, '=', nil, chop)
	}
}

func (t *Terminal) drawPlayer(p *entity.Player, cx, baseRow int, bg tcell.Style) {
	_, row := worldToCell(p.Position, cx, baseRow)
	style := bg.Foreground(toTcell(rendercolor.TintColor(p.Renderable.Color, config.DistressColor, p.Distress.Amount()))).Bold(true)

	face := "=^.^="
	col := cx - playerOffset - len(face)/2
	paw, pawCol := "o-", col+len(face)
	if p.Mirrored {
		col = cx + playerOffset - len(face)/2
		paw, pawCol = "-o", col-2
	}
	t.drawText(col, row, face, style)
	if p.Punch.Active() {
		t.drawText(pawCol, row, paw, style)
	}
}

func (t *Terminal) drawHUD(w int, bg tcell.Style) {
	g := t.game
	t.drawText(1, 0, fmt.Sprintf("SCORE %d", g.Score()), bg.Bold(true))

	filled := int(math.Round(g.HealthBarScale() * hudBarCols))
	col := w - hudBarCols - 3
	if col < 12 {
		col = 12
	}
	hp := bg.Foreground(toTcell(config.HealthBarColor))
	t.screen.SetContent(col, 0, '[', nil, bg)
	for i := 0; i < hudBarCols; i++ {
		ch := ' '
		if i < filled {
			ch = '#'
		}
		t.screen.SetContent(col+1+i, 0, ch, nil, hp)
	}
	t.screen.SetContent(col+1+hudBarCols, 0, ']', nil, bg)
}

func (t *Terminal) drawCentered(row int, s string, style tcell.Style) {
	w, _ := t.screen.Size()
	t.drawText((w-len(s))/2, row, s, style)
}

func (t *Terminal) drawText(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
