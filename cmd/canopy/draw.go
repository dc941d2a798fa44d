package main

import (
	"fmt"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/game"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/render"
	"github.com/willbeason/fractal-canopy/pkg/transforms"
	"github.com/willbeason/fractal-canopy/pkg/tree"
)

func drawCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Render a single fractal tree to a PNG",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runDraw(cmd)
		},
	}

	addSliderFlags(cmd)
	addViewFlags(cmd)
	cmd.Flags().StringP("out", "o", "out.png", "path of the PNG to write, or - for stdout")
	cmd.Flags().Bool("fit", false, "scale the tree to fill the canvas")
	cmd.Flags().Int("squares", 0, "number of demo squares drawn beneath the tree")

	return cmd
}

func (a *app) runDraw(cmd *cobra.Command) error {
	// At this point usage information has already been printed if obviously incorrect.
	cmd.SilenceUsage = true

	panel := controls.NewPanel(a.cfg.Sliders)
	err := applySliderFlags(cmd, panel)
	if err != nil {
		return err
	}

	params := panel.Params(a.origin())
	segments, err := tree.Generate(params)
	if err != nil {
		return err
	}
	a.logger.Info("generated tree",
		"segments", len(segments),
		"splits", params.SplitCount,
		"iterations", params.IterationCount)

	fit, _ := cmd.Flags().GetBool("fit")
	if fit && len(segments) > 0 {
		lo, hi := geometry.Bounds(segments)
		segments = transforms.ApplyAll(
			transforms.Fit(lo, hi, a.cfg.Canvas.Width, a.cfg.Canvas.Height, a.cfg.Canvas.Margin),
			segments)
	}

	canvas := render.NewCanvas(a.cfg.Canvas.Width, a.cfg.Canvas.Height, gg.Hex(a.cfg.Canvas.Background))
	defer canvas.Close()

	canvas.Style = panel.Style(render.DefaultStyle())
	canvas.Squares, _ = cmd.Flags().GetInt("squares")
	canvas.Replace(segments, game.Levels(panel))

	err = applyViewFlags(cmd, canvas.View, canvas.Width(), canvas.Height())
	if err != nil {
		return err
	}

	err = canvas.Redraw()
	if err != nil {
		return fmt.Errorf("drawing tree: %w", err)
	}

	out, _ := cmd.Flags().GetString("out")
	if out == "-" {
		return canvas.EncodePNG(cmd.OutOrStdout())
	}

	err = canvas.SavePNG(out)
	if err != nil {
		return err
	}
	a.logger.Info("wrote image", "path", out)

	return nil
}
