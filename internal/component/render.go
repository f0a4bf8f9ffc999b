// component/render.go
package component

import "image/color"

// Renderable хранит размеры и базовый цвет прямоугольной сущности
type Renderable struct {
	Color  color.RGBA
	Width  float64
	Height float64
	Z      int // Порядок отрисовки, больше рисуется позже
}
