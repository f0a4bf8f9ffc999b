// internal/system/visual_effect.go
package system

import (
	"math"

	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/utils"
)

// VisualEffectSystem управляет визуальными эффектами: улётом выбитых кусочков,
// ударом игрока и покраснением после проигрыша.
type VisualEffectSystem struct {
	tower    *TowerSystem
	player   *entity.Player
	flipping []*entity.Piece
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(tower *TowerSystem, player *entity.Player) *VisualEffectSystem {
	return &VisualEffectSystem{tower: tower, player: player}
}

// AddFlip принимает кусочек, снятый с башни, у которого уже запущен Flip.
func (s *VisualEffectSystem) AddFlip(piece *entity.Piece) {
	if piece.Flip == nil {
		return
	}
	s.flipping = append(s.flipping, piece)
}

// Flipping возвращает кусочки, которые ещё улетают.
func (s *VisualEffectSystem) Flipping() []*entity.Piece {
	return s.flipping
}

// StartDistress окрашивает в красный базовый кусочек, башню, улетающие кусочки и игрока.
func (s *VisualEffectSystem) StartDistress() {
	s.tower.Template().StartDistress()
	for _, p := range s.tower.Pieces() {
		p.StartDistress()
	}
	for _, p := range s.flipping {
		p.StartDistress()
	}
	s.player.StartDistress()
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	s.player.Punch.Advance(deltaTime)

	// Улёт выбитых кусочков
	active := s.flipping[:0]
	for _, p := range s.flipping {
		f := p.Flip
		f.Timer += deltaTime
		progress := f.Progress()
		p.Position.X = f.StartX + f.Direction*config.FlipDistance*utils.EaseOutQuad(progress)
		p.Position.Y = f.StartY + config.FlipLift*math.Sin(math.Pi*progress)
		f.Rotation = f.Direction * progress * math.Pi / 2
		if f.Done() {
			continue
		}
		active = append(active, p)
	}
	for i := len(active); i < len(s.flipping); i++ {
		s.flipping[i] = nil
	}
	s.flipping = active

	// Покраснение
	advance := func(p *entity.Piece) {
		if p.Distress != nil {
			p.Distress.Timer += deltaTime
		}
	}
	advance(s.tower.Template())
	for _, p := range s.tower.Pieces() {
		advance(p)
	}
	for _, p := range s.flipping {
		advance(p)
	}
	if s.player.Distress != nil {
		s.player.Distress.Timer += deltaTime
	}
}
