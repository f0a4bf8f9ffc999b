// internal/system/tower.go
package system

import (
	"sushi-neko/internal/component"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/utils"
)

// DefaultSideWeights задаёт шансы нового кусочка: 45% слева, 45% справа, 10% без палочек.
var DefaultSideWeights = []utils.SideWeight{
	{Side: component.Left, Weight: config.LeftSideWeight},
	{Side: component.Right, Weight: config.RightSideWeight},
	{Side: component.None, Weight: config.NoneSideWeight},
}

// TowerSystem хранит башню: первый кусочек нижний и доступен для удара,
// новые добавляются в конец.
type TowerSystem struct {
	template *entity.Piece
	pieces   []*entity.Piece
	rng      *utils.PRNGService
	weights  []utils.SideWeight
}

func NewTowerSystem(template *entity.Piece, rng *utils.PRNGService) *TowerSystem {
	if template == nil {
		panic("template piece cannot be nil")
	}
	return &TowerSystem{
		template: template,
		rng:      rng,
		weights:  DefaultSideWeights,
	}
}

// Push ставит новый кусочек поверх последнего (или поверх базового, если башня пуста).
func (s *TowerSystem) Push(side component.Side) *entity.Piece {
	piece := s.template.CloneWithSide(side)

	last := s.Last()
	anchor := s.template
	if last != nil {
		anchor = last
	}
	piece.Position.X = anchor.Position.X
	piece.Position.Y = anchor.Position.Y + config.StackSpacing
	piece.Renderable.Z = anchor.Renderable.Z + 1

	s.pieces = append(s.pieces, piece)
	return piece
}

// GenerateNext добавляет count случайных кусочков. После кусочка с палочками
// всегда идёт кусочек без палочек, иначе башню нельзя было бы пройти.
func (s *TowerSystem) GenerateNext(count int) {
	for i := 0; i < count; i++ {
		if last := s.Last(); last != nil && last.Side() != component.None {
			s.Push(component.None)
			continue
		}
		s.Push(s.rng.ChooseSide(s.weights))
	}
}

// PopFront снимает нижний кусочек. Вызывающий гарантирует, что башня не пуста.
func (s *TowerSystem) PopFront() *entity.Piece {
	if len(s.pieces) == 0 {
		panic("pop from empty tower")
	}
	piece := s.pieces[0]
	s.pieces[0] = nil
	s.pieces = s.pieces[1:]
	return piece
}

// Update сдвигает каждый кусочек на половину оставшегося пути к его месту в башне.
func (s *TowerSystem) Update() {
	for n, piece := range s.pieces {
		target := float64(n)*config.StackSpacing + config.TowerBaseOffset
		piece.Position.Y = utils.Lerp(piece.Position.Y, target, config.SettleFactor)
	}
}

func (s *TowerSystem) Front() *entity.Piece {
	if len(s.pieces) == 0 {
		return nil
	}
	return s.pieces[0]
}

func (s *TowerSystem) Last() *entity.Piece {
	if len(s.pieces) == 0 {
		return nil
	}
	return s.pieces[len(s.pieces)-1]
}

func (s *TowerSystem) Len() int {
	return len(s.pieces)
}

// Pieces возвращает кусочки снизу вверх. Срез нельзя изменять.
func (s *TowerSystem) Pieces() []*entity.Piece {
	return s.pieces
}

// Template возвращает базовый кусочек, на котором стоит башня.
func (s *TowerSystem) Template() *entity.Piece {
	return s.template
}
