// pkg/render/color.go
package render

import "image/color"

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// TintColor blends c toward target by amount in [0, 1], keeping the alpha of c.
func TintColor(c, target color.RGBA, amount float64) color.RGBA {
	if amount <= 0 {
		return c
	}
	if amount > 1 {
		amount = 1
	}
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*amount + 0.5)
	}
	return color.RGBA{
		R: mix(c.R, target.R),
		G: mix(c.G, target.G),
		B: mix(c.B, target.B),
		A: c.A,
	}
}
