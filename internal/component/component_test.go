package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSideString(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
	assert.Equal(t, "none", None.String())
	assert.Equal(t, "unknown", Side(42).String())
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, Right, Left.Opposite())
	assert.Equal(t, Left, Right.Opposite())
	assert.Equal(t, None, None.Opposite())
}

func TestGameStateAcceptsInput(t *testing.T) {
	assert.False(t, TitleState.AcceptsInput())
	assert.True(t, ReadyState.AcceptsInput())
	assert.True(t, PlayingState.AcceptsInput())
	assert.False(t, GameOverState.AcceptsInput())
	assert.Equal(t, "gameOver", GameOverState.String())
}

func TestFlipProgress(t *testing.T) {
	f := &Flip{Duration: 0.5}
	assert.InDelta(t, 0.0, f.Progress(), 1e-9)
	f.Timer = 0.25
	assert.InDelta(t, 0.5, f.Progress(), 1e-9)
	assert.False(t, f.Done())
	f.Timer = 0.7
	assert.InDelta(t, 1.0, f.Progress(), 1e-9)
	assert.True(t, f.Done())
}

func TestDistressAmount(t *testing.T) {
	var none *Distress
	assert.Zero(t, none.Amount())

	d := &Distress{Duration: 0.5, Timer: 0.1}
	assert.InDelta(t, 0.2, d.Amount(), 1e-9)
	d.Timer = 2
	assert.InDelta(t, 1.0, d.Amount(), 1e-9)
}

func TestPunch(t *testing.T) {
	p := &Punch{Duration: 0.2}
	assert.False(t, p.Active())

	p.Trigger()
	assert.True(t, p.Active())
	assert.Equal(t, 1, p.Count)

	p.Advance(0.1)
	assert.True(t, p.Active())
	p.Advance(0.5)
	assert.False(t, p.Active())
	assert.Zero(t, p.Timer)

	p.Trigger()
	assert.Equal(t, 2, p.Count)
}
