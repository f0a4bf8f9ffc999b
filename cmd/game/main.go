// cmd/game/main.go
package main

import (
	"net/http"
	_ "net/http/pprof"
	"os"

	"sushi-neko/internal/app"
	"sushi-neko/internal/audio"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/event"
	"sushi-neko/internal/logging"
	"sushi-neko/internal/state"
	"sushi-neko/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"
)

type AppGame struct {
	stateMachine *state.StateMachine
}

func (a *AppGame) Update() error {
	// ebiten вызывает Update с фиксированной частотой TPS, один вызов это один тик
	a.stateMachine.Update(config.FrameDelta)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	logger, closer, err := logging.Setup(settings, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	if settings.PprofAddr != "" {
		go func() {
			logger.Info().Str("addr", settings.PprofAddr).Msg("pprof listening")
			logger.Error().Err(http.ListenAndServe(settings.PprofAddr, nil)).Msg("pprof stopped")
		}()
	}

	dispatcher := event.NewDispatcher()
	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = settings.Audio
	audioCfg.MasterVolume = settings.Volume
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		// Не критично, игра работает без звука
		logger.Warn().Err(err).Msg("audio disabled")
	}
	defer sounds.Cleanup()
	sounds.Subscribe(dispatcher)

	rng := utils.NewPRNGService(settings.Seed)
	logger.Info().Int64("seed", rng.Seed()).Msg("starting sushi neko")

	game := app.NewGame(
		entity.NewPiece(config.BasePieceX, config.BasePieceY),
		entity.NewPlayer(config.PlayerY),
		app.WithRNG(rng),
		app.WithDispatcher(dispatcher),
		app.WithLogger(logger),
	)
	if settings.SkipTitle {
		game = game.PressPlay()
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewGameState(sm, game))

	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowSize(int(config.ScreenWidth*settings.WindowScale), int(config.ScreenHeight*settings.WindowScale))
	ebiten.SetWindowTitle("Sushi Neko")
	if err := ebiten.RunGame(&AppGame{stateMachine: sm}); err != nil {
		logger.Fatal().Err(err).Msg("game exited")
	}
}
