// cmd/sushi-term/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"sushi-neko/internal/app"
	"sushi-neko/internal/audio"
	"sushi-neko/internal/config"
	"sushi-neko/internal/entity"
	"sushi-neko/internal/event"
	"sushi-neko/internal/logging"
	"sushi-neko/internal/tui"
	"sushi-neko/internal/utils"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
)

// Терминал занят tcell, поэтому логи всегда пишутся в файл
const defaultLogFile = "sushi-term.log"

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load settings")
	}
	if settings.LogFile == "" {
		settings.LogFile = defaultLogFile
	}
	logger, closer, err := logging.Setup(settings, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to set up logging")
	}
	defer closer.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create screen")
	}
	if err := screen.Init(); err != nil {
		logger.Fatal().Err(err).Msg("failed to init screen")
	}
	defer screen.Fini()
	screen.EnableMouse()
	screen.HideCursor()

	dispatcher := event.NewDispatcher()
	audioCfg := audio.DefaultConfig()
	audioCfg.Enabled = settings.Audio
	audioCfg.MasterVolume = settings.Volume
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio disabled")
	}
	defer sounds.Cleanup()
	sounds.Subscribe(dispatcher)

	rng := utils.NewPRNGService(settings.Seed)
	logger.Info().Int64("seed", rng.Seed()).Msg("starting sushi neko in terminal")

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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	term := tui.New(screen, game, logger)
	if err := term.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("terminal loop failed")
	}
	logger.Info().Int("score", term.Game().Score()).Msg("bye")
}
