package main

import (
	"context"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-canopy/internal/config"
	"github.com/willbeason/fractal-canopy/internal/logging"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"log/slog"
	"os"
)

// app is the state shared by every subcommand, filled in before any of them run.
type app struct {
	cfg    config.Config
	logger *slog.Logger
}

func mainCmd() *cobra.Command {
	a := &app{cfg: config.Default(), logger: logging.NewNop()}

	cmd := &cobra.Command{
		Use:   "canopy",
		Short: "Draw fractal trees and play the fractal matching game",
		Args:  cobra.ExactArgs(0),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	cmd.PersistentFlags().String("config", "", "YAML file overriding the canvas, padding and sliders")
	cmd.PersistentFlags().String("log-level", "info", "one of debug, info, warn, error")

	cmd.AddCommand(drawCmd(a), layoutCmd(a), playCmd(a))

	return cmd
}

func (a *app) setup(cmd *cobra.Command) error {
	levelName, err := cmd.Flags().GetString("log-level")
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(levelName)
	if err != nil {
		return err
	}

	a.logger = logging.New(level)
	gg.SetLogger(a.logger)

	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	a.cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	a.logger.Debug("loaded config", "path", path, "sliders", len(a.cfg.Sliders))

	return nil
}

// origin is where trees are rooted: centered, just above the bottom edge.
func (a *app) origin() geometry.XY {
	return geometry.XY{
		X: float64(a.cfg.Canvas.Width) / 2.0,
		Y: float64(a.cfg.Canvas.Height) - a.cfg.Canvas.Margin,
	}
}

func main() {
	ctx := context.Background()

	err := mainCmd().ExecuteContext(ctx)
	if err != nil {
		// At this point the error has already been printed; no need to print again.
		os.Exit(1)
	}
}
