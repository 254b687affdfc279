// Command snapshot renders a scripted session of the page to PNG frames
// without opening a window.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/snapshot"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (default $"+config.EnvPath+")")
		frames  = flag.Int("frames", 120, "number of frames to simulate")
		every   = flag.Int("every", 1, "save one frame out of every N")
		out     = flag.String("out", "frames", "output directory")
		width   = flag.Int("w", config.WindowWidth, "viewport width")
		height  = flag.Int("h", config.WindowHeight, "viewport height")
		dpr     = flag.Float64("dpr", 1, "device pixel ratio")
		click   = flag.Int("click", 45, "click every N frames, 0 disables")
		reduced = flag.Bool("reduced-motion", false, "render with reduced motion")
		debug   = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()
	config.SetupLogging(*debug)

	if err := run(*cfgPath, *reduced, snapshot.Options{
		Width: *width, Height: *height, DPR: *dpr,
		Frames: *frames, Every: *every, Dir: *out,
		Script: snapshot.Orbit(*width, *height, *click),
	}); err != nil {
		fmt.Fprintln(os.Stderr, "snapshot:", err)
		os.Exit(1)
	}
}

func run(cfgPath string, reduced bool, o snapshot.Options) error {
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	paths, err := snapshot.Render(ctx, cfg, o)
	if err != nil {
		return err
	}
	slog.Debug("snapshot: last frame", "path", paths[len(paths)-1])
	return nil
}
