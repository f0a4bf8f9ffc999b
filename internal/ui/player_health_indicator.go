// internal/ui/player_health_indicator.go
package ui

import (
	"sushi-neko/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PlayerHealthIndicator отображает здоровье полоской, масштабируемой по горизонтали.
type PlayerHealthIndicator struct {
	X, Y          float32
	Width, Height float32
}

// NewPlayerHealthIndicator создает новый индикатор здоровья.
func NewPlayerHealthIndicator(x, y, width, height float32) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, Width: width, Height: height}
}

// Draw рисует полоску. scale уже ограничен отрезком [0, 1].
func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, scale float64) {
	vector.DrawFilledRect(screen, i.X-2, i.Y-2, i.Width+4, i.Height+4, config.HealthBarBgColor, true)
	if scale <= 0 {
		return
	}
	vector.DrawFilledRect(screen, i.X, i.Y, i.Width*float32(scale), i.Height, config.HealthBarColor, true)
}
