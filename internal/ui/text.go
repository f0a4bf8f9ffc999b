// internal/ui/text.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultFace это встроенный моноширинный шрифт, ассеты не нужны.
var DefaultFace font.Face = basicfont.Face7x13

// DrawCenteredText рисует строку с центром в (cx, cy), увеличенную в scale раз.
func DrawCenteredText(screen *ebiten.Image, face font.Face, s string, cx, cy, scale float64, clr color.Color) {
	bounds := text.BoundString(face, s)
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	// Рисуем во временное изображение и масштабируем, у basicfont один размер
	img := ebiten.NewImage(w, h)
	defer img.Deallocate()
	text.Draw(img, s, face, -bounds.Min.X, -bounds.Min.Y, clr)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx-float64(w)*scale/2, cy-float64(h)*scale/2)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(img, op)
}
