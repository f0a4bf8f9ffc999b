// internal/ui/score_label.go
package ui

import (
	"strconv"

	"sushi-neko/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// ScoreLabel показывает текущий счёт крупными цифрами.
type ScoreLabel struct {
	X, Y float64
	face font.Face
}

func NewScoreLabel(x, y float64, face font.Face) *ScoreLabel {
	return &ScoreLabel{X: x, Y: y, face: face}
}

func (l *ScoreLabel) Draw(screen *ebiten.Image, score int) {
	DrawCenteredText(screen, l.face, strconv.Itoa(score), l.X, l.Y, 4, config.TextDarkColor)
}
