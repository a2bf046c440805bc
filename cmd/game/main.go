package main

import (
	"flag"
	"os"
	"time"

	"github.com/Garsondee/Wire-Strike/internal/game"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"
)

func main() {
	var configPath string
	var seed int64
	var width, height int
	var mute bool

	flag.StringVar(&configPath, "config", "", "optional YAML tuning file")
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time based)")
	flag.IntVar(&width, "width", 1280, "window width")
	flag.IntVar(&height, "height", 720, "window height")
	flag.BoolVar(&mute, "mute", false, "start with sound muted")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	cfg, err := game.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", configPath).Msg("load config")
	}
	if configPath != "" {
		log.Info().Str("path", configPath).Msg("config loaded")
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	g := game.New(game.Options{
		Config: cfg,
		Seed:   seed,
		Width:  width,
		Height: height,
		Logger: log,
		Audio:  audio.NewContext(game.SampleRate),
		Mute:   mute,
	})

	ebiten.SetWindowTitle("Wire Strike")
	ebiten.SetWindowSize(width, height)
	ebiten.SetTPS(game.TicksPerSecond)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal().Err(err).Msg("game exited")
	}
}
