// internal/component/player.go
package component

// Punch хранит состояние анимации удара игрока.
type Punch struct {
	Timer    float64 // Сколько осталось до конца удара
	Duration float64
	Count    int // Сколько раз удар запускался
}

// Active сообщает, идёт ли сейчас удар.
func (p *Punch) Active() bool {
	return p.Timer > 0
}

// Trigger перезапускает удар с начала.
func (p *Punch) Trigger() {
	p.Timer = p.Duration
	p.Count++
}

// Advance продвигает анимацию на deltaTime секунд.
func (p *Punch) Advance(deltaTime float64) {
	if p.Timer <= 0 {
		return
	}
	p.Timer -= deltaTime
	if p.Timer < 0 {
		p.Timer = 0
	}
}
