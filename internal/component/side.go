// internal/component/side.go
package component

// Side помечает, с какой стороны у кусочка торчат палочки
// или с какой стороны стоит игрок.
type Side int

const (
	None Side = iota
	Left
	Right
)

var sideName = map[Side]string{
	None:  "none",
	Left:  "left",
	Right: "right",
}

func (s Side) String() string {
	if name, ok := sideName[s]; ok {
		return name
	}
	return "unknown"
}

// Opposite возвращает противоположную сторону. Для None возвращается None.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	default:
		return None
	}
}

// Direction возвращает -1 для Left, +1 для Right и 0 для None.
func (s Side) Direction() float64 {
	switch s {
	case Left:
		return -1
	case Right:
		return 1
	default:
		return 0
	}
}
