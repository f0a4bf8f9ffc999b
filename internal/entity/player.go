// internal/entity/player.go
package entity

import (
	"fmt"

	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
)

// Player это кот, который выбивает кусочки слева или справа.
type Player struct {
	side       component.Side
	Position   component.Position
	Renderable component.Renderable
	Mirrored   bool // Отражение по горизонтали, когда игрок справа
	Punch      component.Punch
	Distress   *component.Distress
}

// NewPlayer создаёт игрока слева от башни.
func NewPlayer(y float64) *Player {
	return &Player{
		side:     component.Left,
		Position: component.Position{X: config.PlayerLeftX, Y: y},
		Renderable: component.Renderable{
			Color:  config.PlayerColor,
			Width:  config.PlayerWidth,
			Height: config.PlayerHeight,
			Z:      1 << 20,
		},
		Punch: component.Punch{Duration: config.PunchTime},
	}
}

func (p *Player) Side() component.Side {
	return p.side
}

// SetSide переставляет игрока и запускает удар. Игрок всегда стоит слева или справа.
func (p *Player) SetSide(side component.Side) {
	switch side {
	case component.Left:
		p.Mirrored = false
		p.Position.X = config.PlayerLeftX
	case component.Right:
		p.Mirrored = true
		p.Position.X = config.PlayerRightX
	default:
		panic(fmt.Sprintf("player side must be left or right, got %s", side))
	}
	p.side = side
	p.Punch.Trigger()
}

// StartDistress запускает покраснение игрока.
func (p *Player) StartDistress() {
	if p.Distress == nil {
		p.Distress = &component.Distress{Duration: config.DistressDuration}
	}
}

// Respawn создаёт нового игрока в исходной позиции с тем же внешним видом.
func (p *Player) Respawn() *Player {
	fresh := NewPlayer(p.Position.Y)
	fresh.Renderable = p.Renderable
	return fresh
}
