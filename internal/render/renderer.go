// internal/render/renderer.go
package render

import (
	"image/color"
	"math"

	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/system"
	rendercolor "sushi-neko/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SushiRenderer рисует базовый кусочек, башню, улетающие кусочки и игрока.
// Мировые координаты имеют ось Y вверх, экранные вниз.
type SushiRenderer struct {
	screenHeight float64
	fillImg      *ebiten.Image
	vs           []ebiten.Vertex
	is           []uint16
}

func NewSushiRenderer(screenHeight int) *SushiRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)

	return &SushiRenderer{
		screenHeight: float64(screenHeight),
		fillImg:      fillImg,
		vs:           make([]ebiten.Vertex, 0, 4),
		is:           make([]uint16, 0, 6),
	}
}

// Draw рисует сцену. Порядок совпадает с Z: каждый следующий кусочек башни лежит поверх предыдущего.
func (r *SushiRenderer) Draw(screen *ebiten.Image, tower *system.TowerSystem, fx *system.VisualEffectSystem, player *entity.Player) {
	screen.Fill(config.BackgroundColor)

	r.drawPiece(screen, tower.Template())
	for _, p := range tower.Pieces() {
		r.drawPiece(screen, p)
	}
	for _, p := range fx.Flipping() {
		r.drawPiece(screen, p)
	}
	r.drawPlayer(screen, player)
}

func (r *SushiRenderer) toScreen(pos component.Position) (float64, float64) {
	return pos.X, r.screenHeight - pos.Y
}

func (r *SushiRenderer) drawPiece(screen *ebiten.Image, p *entity.Piece) {
	cx, cy := r.toScreen(p.Position)
	w, h := p.Renderable.Width, p.Renderable.Height
	angle := 0.0
	if p.Flip != nil {
		angle = p.Flip.Rotation
	}
	tint := p.Distress.Amount()

	// Палочки рисуются первыми, чтобы кусочек их перекрывал
	chop := rendercolor.TintColor(config.ChopstickColor, config.DistressColor, tint)
	stickY := cy - h/2 + config.ChopstickOffsetY
	if p.LeftChopstick() {
		r.fillRotatedRect(screen, cx-w/2-config.ChopstickLength/2+6, stickY, config.ChopstickLength, 6, cx, cy, angle, chop)
	}
	if p.RightChopstick() {
		r.fillRotatedRect(screen, cx+w/2+config.ChopstickLength/2-6, stickY, config.ChopstickLength, 6, cx, cy, angle, chop)
	}

	stroke := rendercolor.TintColor(config.PieceStrokeColor, config.DistressColor, tint)
	body := rendercolor.TintColor(p.Renderable.Color, config.DistressColor, tint)
	filling := rendercolor.TintColor(config.PieceFillingColor, config.DistressColor, tint)

	r.fillRotatedRect(screen, cx, cy, w+4, h+4, cx, cy, angle, stroke)
	r.fillRotatedRect(screen, cx, cy, w, h, cx, cy, angle, body)
	r.fillRotatedRect(screen, cx, cy-h/4, w, h/3, cx, cy, angle, filling)
}

func (r *SushiRenderer) drawPlayer(screen *ebiten.Image, p *entity.Player) {
	cx, cy := r.toScreen(p.Position)
	w, h := p.Renderable.Width, p.Renderable.Height
	tint := p.Distress.Amount()
	body := rendercolor.TintColor(p.Renderable.Color, config.DistressColor, tint)
	ear := rendercolor.TintColor(config.PlayerEarColor, config.DistressColor, tint)

	// Игрок слева смотрит вправо, справа отражён
	facing := float32(1)
	if p.Mirrored {
		facing = -1
	}

	x0, y0 := float32(cx-w/2), float32(cy-h)
	vector.DrawFilledRect(screen, x0, y0, float32(w), float32(h), body, true)
	vector.DrawFilledCircle(screen, float32(cx), y0, float32(w/2), body, true)
	vector.DrawFilledCircle(screen, float32(cx)-float32(w/4), y0-float32(w/3), float32(w/6), ear, true)
	vector.DrawFilledCircle(screen, float32(cx)+float32(w/4), y0-float32(w/3), float32(w/6), ear, true)
	vector.DrawFilledCircle(screen, float32(cx)+facing*float32(w/5), y0, 4, config.TextDarkColor, true)

	pawX := float32(cx) + facing*float32(w/2)
	pawY := float32(cy - h/2)
	if p.Punch.Active() {
		// Лапа вытянута к башне на время удара
		reach := float32(config.PlayerRightX-config.PlayerLeftX)/2 - float32(config.PieceWidth)/2
		vector.StrokeLine(screen, pawX, pawY, pawX+facing*reach, pawY, 10, body, true)
		vector.DrawFilledCircle(screen, pawX+facing*reach, pawY, 9, config.PunchColor, true)
		return
	}
	vector.DrawFilledCircle(screen, pawX, pawY, 8, ear, true)
}

// fillRotatedRect рисует прямоугольник с центром (x, y), повёрнутый на angle вокруг (ox, oy).
func (r *SushiRenderer) fillRotatedRect(screen *ebiten.Image, x, y, w, h, ox, oy, angle float64, clr color.RGBA) {
	sin, cos := math.Sincos(angle)
	corners := [4][2]float64{
		{x - w/2, y - h/2},
		{x + w/2, y - h/2},
		{x + w/2, y + h/2},
		{x - w/2, y + h/2},
	}

	cr, cg, cb, ca := float32(clr.R)/255, float32(clr.G)/255, float32(clr.B)/255, float32(clr.A)/255
	r.vs = r.vs[:0]
	for _, c := range corners {
		dx, dy := c[0]-ox, c[1]-oy
		r.vs = append(r.vs, ebiten.Vertex{
			DstX:   float32(ox + dx*cos - dy*sin),
			DstY:   float32(oy + dx*sin + dy*cos),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	r.is = append(r.is[:0], 0, 1, 2, 0, 2, 3)
	screen.DrawTriangles(r.vs, r.is, r.fillImg, nil)
}
