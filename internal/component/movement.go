// component/movement.go
package component

// Position хранит мировые координаты, ось Y направлена вверх
type Position struct {
	X, Y float64
}
