package audio

import (
	"fmt"
	"sync"
	"time"

	"sushi-neko/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SoundManager проигрывает звуковые эффекты в ответ на игровые события.
type SoundManager struct {
	mu          sync.Mutex
	cfg         *Config
	mixer       *beep.Mixer
	sink        func(beep.Streamer) // Куда отправлять готовый звук, nil до Initialize
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *Config) *SoundManager {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &SoundManager{
		cfg:   cfg,
		mixer: &beep.Mixer{},
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}

	speaker.Play(sm.mixer)
	sm.sink = func(s beep.Streamer) {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Clear()
	sm.sink = nil
	sm.initialized = false
}

// Subscribe подписывает менеджер на события, у которых есть звук.
func (sm *SoundManager) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(sm, event.GameStarted, event.PieceCleared, event.Collision, event.HealthDepleted)
}

// OnEvent реализует интерфейс event.Listener.
func (sm *SoundManager) OnEvent(e event.Event) {
	switch e.Type {
	case event.GameStarted:
		sm.Play(SoundStart)
	case event.PieceCleared:
		sm.Play(SoundPunch)
	case event.Collision:
		sm.Play(SoundCollision)
	case event.HealthDepleted:
		sm.Play(SoundFade)
	}
}

// Play проигрывает эффект, если звук инициализирован.
func (sm *SoundManager) Play(sound SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.sink == nil {
		return
	}

	var s beep.Streamer
	switch sound {
	case SoundPunch:
		s = CreatePunchSound(sm.cfg)
	case SoundCollision:
		s = CreateCollisionSound(sm.cfg)
	case SoundStart:
		s = CreateStartSound(sm.cfg)
	case SoundFade:
		s = CreateFadeSound(sm.cfg)
	default:
		return
	}
	sm.sink(s)
}
