// internal/entity/piece.go
package entity

import (
	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
)

// Piece это кусочек суши в башне. Сторона задаётся при создании и больше не меняется.
type Piece struct {
	side       component.Side
	Position   component.Position
	Renderable component.Renderable
	Flip       *component.Flip     // Не nil, пока кусочек улетает после удара
	Distress   *component.Distress // Не nil после проигрыша
}

// NewPiece создаёт базовый кусочек, с которого клонируются все остальные.
func NewPiece(x, y float64) *Piece {
	return &Piece{
		side:     component.None,
		Position: component.Position{X: x, Y: y},
		Renderable: component.Renderable{
			Color:  config.PieceColor,
			Width:  config.PieceWidth,
			Height: config.PieceHeight,
		},
	}
}

// CloneWithSide копирует внешний вид кусочка и задаёт новую сторону.
// Эффекты шаблона не копируются.
func (p *Piece) CloneWithSide(side component.Side) *Piece {
	return &Piece{
		side:       side,
		Position:   p.Position,
		Renderable: p.Renderable,
	}
}

func (p *Piece) Side() component.Side {
	return p.side
}

// LeftChopstick сообщает, видна ли левая палочка.
func (p *Piece) LeftChopstick() bool {
	return p.side == component.Left
}

// RightChopstick сообщает, видна ли правая палочка.
func (p *Piece) RightChopstick() bool {
	return p.side == component.Right
}

// StartFlip выбивает кусочек в сторону, противоположную удару.
func (p *Piece) StartFlip(punchSide component.Side) {
	p.Flip = &component.Flip{
		Direction: punchSide.Opposite().Direction(),
		Duration:  config.FlipDuration,
		StartX:    p.Position.X,
		StartY:    p.Position.Y,
	}
}

// StartDistress запускает покраснение. Повторный вызов ничего не меняет.
func (p *Piece) StartDistress() {
	if p.Distress == nil {
		p.Distress = &component.Distress{Duration: config.DistressDuration}
	}
}
