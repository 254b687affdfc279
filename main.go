package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/game"
	"github.com/PiyushKingg/yushen/internal/sound"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (default $"+config.EnvPath+")")
		reduced = flag.Bool("reduced-motion", false, "freeze particle motion")
		debug   = flag.Bool("debug", false, "debug logging and on-screen status")
	)
	flag.Parse()
	config.SetupLogging(*debug)

	if err := run(*cfgPath, *reduced, *debug); err != nil {
		slog.Error("fatal", "err", err)
		// the dialog is best effort; stderr already has the message
		_ = zenity.Error(err.Error(), zenity.Title("Yushen"), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(cfgPath string, reduced, debug bool) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	cfg, err := config.Load(config.Path(cfgPath))
	if err != nil {
		return err
	}
	if reduced {
		cfg.Field.ReducedMotion = true
	}

	var clicker *sound.Clicker
	if cfg.Sound.Enabled {
		clicker = sound.NewClicker(cfg.Sound)
		if err := clicker.Open(); err != nil {
			slog.Warn("sound disabled", "err", err)
			clicker = nil
		}
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(config.TPS)

	g := game.New(cfg, clicker, debug)
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "run game")
	}
	return nil
}
