// internal/ui/button.go
package ui

import (
	"image"

	"sushi-neko/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect image.Rectangle
	Text string
	face font.Face
}

// NewButton создает кнопку с центром в (cx, cy).
func NewButton(cx, cy, w, h int, text string, face font.Face) *Button {
	return &Button{
		Rect: image.Rect(cx-w/2, cy-h/2, cx+w/2, cy+h/2),
		Text: text,
		face: face,
	}
}

// Contains проверяет, попадает ли точка экрана в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw отрисовывает кнопку, подсвечивая её под курсором.
func (b *Button) Draw(screen *ebiten.Image) {
	bg := config.ButtonColor
	if b.Contains(ebiten.CursorPosition()) {
		bg = config.ButtonHoverColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, config.TextLightColor, true)

	c := b.Rect.Min.Add(b.Rect.Max).Div(2)
	DrawCenteredText(screen, b.face, b.Text, float64(c.X), float64(c.Y), 2, config.TextLightColor)
}
