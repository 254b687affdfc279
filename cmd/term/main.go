// Command term previews the page in a terminal with mouse support.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/PiyushKingg/yushen/internal/config"
	"github.com/PiyushKingg/yushen/internal/field"
	"github.com/PiyushKingg/yushen/internal/term"
)

func main() {
	var (
		cfgPath = flag.String("config", "", "config file (default $"+config.EnvPath+")")
		reduced = flag.Bool("reduced-motion", false, "freeze particle motion")
		grid    = flag.Bool("grid", false, "use the grid layout with repel interaction")
		debug   = flag.Bool("debug", false, "debug logging")
	)
	flag.Parse()
	// stderr is hidden behind the alternate screen; keep logging quiet
	// unless asked for.
	config.SetupLogging(*debug)

	if err := run(*cfgPath, *reduced, *grid); err != nil {
		fmt.Fprintln(os.Stderr, "term:", err)
		os.Exit(1)
	}
}

func run(cfgPath string, reduced, grid bool) error {
	if err := config.LoadEnv(); err != nil {
		return err
	}
	base := config.Default()
	if grid {
		base.Field = field.GridParams()
	}
	cfg, err := config.LoadOver(base, config.Path(cfgPath))
	if err != nil {
		return err
	}
	if reduced {
		cfg.Field.ReducedMotion = true
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "open terminal")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init terminal")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return term.Run(ctx, screen, cfg)
}
