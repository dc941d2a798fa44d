package main

import (
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/transforms"
)

// addSliderFlags adds a flag for each built-in slider, named after it.
func addSliderFlags(cmd *cobra.Command) {
	for _, s := range controls.Defaults() {
		cmd.Flags().Float64(s.Name, s.Default, s.Label)
	}
}

// applySliderFlags sets only the sliders whose flags were given, so configured
// defaults survive.
func applySliderFlags(cmd *cobra.Command, panel *controls.Panel) error {
	for _, s := range controls.Defaults() {
		if !cmd.Flags().Changed(s.Name) {
			continue
		}

		v, err := cmd.Flags().GetFloat64(s.Name)
		if err != nil {
			return err
		}

		_, err = panel.Set(s.Name, v)
		if err != nil {
			return err
		}
	}

	return nil
}

func addViewFlags(cmd *cobra.Command) {
	cmd.Flags().Float64("pan-x", 0, "horizontal pan in pixels")
	cmd.Flags().Float64("pan-y", 0, "vertical pan in pixels")
	cmd.Flags().Int("zoom", 0, "mouse wheel steps about the canvas center; negative zooms out")
}

func applyViewFlags(cmd *cobra.Command, view *transforms.Viewport, width, height int) error {
	panX, err := cmd.Flags().GetFloat64("pan-x")
	if err != nil {
		return err
	}
	panY, err := cmd.Flags().GetFloat64("pan-y")
	if err != nil {
		return err
	}
	zoom, err := cmd.Flags().GetInt("zoom")
	if err != nil {
		return err
	}

	view.Pan(panX, panY)
	zoomSteps(view, zoom, float64(width)/2, float64(height)/2)

	return nil
}

func zoomSteps(view *transforms.Viewport, steps int, x, y float64) {
	for ; steps > 0; steps-- {
		view.Zoom(x, y, 1)
	}
	for ; steps < 0; steps++ {
		view.Zoom(x, y, -1)
	}
}
