// internal/component/visual.go
package component

// Flip описывает улёт выбитого кусочка из башни.
type Flip struct {
	Direction float64 // -1 влево, +1 вправо
	Timer     float64 // Сколько времени эффект уже активен
	Duration  float64 // Общая продолжительность эффекта
	StartX    float64
	StartY    float64
	Rotation  float64 // Текущий угол в радианах
}

// Done сообщает, закончился ли эффект.
func (f *Flip) Done() bool {
	return f.Timer >= f.Duration
}

// Progress возвращает долю пройденного эффекта в [0, 1].
func (f *Flip) Progress() float64 {
	if f.Duration <= 0 {
		return 1
	}
	p := f.Timer / f.Duration
	if p > 1 {
		p = 1
	}
	return p
}

// Distress указывает, что сущность окрашивается в цвет проигрыша.
type Distress struct {
	Timer    float64 // Сколько времени эффект уже активен
	Duration float64 // Время полного перехода в красный
}

// Amount возвращает долю смешивания с красным в [0, 1].
func (d *Distress) Amount() float64 {
	if d == nil {
		return 0
	}
	if d.Duration <= 0 {
		return 1
	}
	a := d.Timer / d.Duration
	if a > 1 {
		a = 1
	}
	return a
}
