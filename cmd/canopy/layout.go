package main

import (
	"fmt"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-canopy/pkg/layout"
	"text/tabwriter"
)

func layoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Show how the sliders are arranged for a window width",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runLayout(cmd)
		},
	}

	cmd.Flags().Int("width", 0, "window width in pixels; defaults to the canvas width")

	return cmd
}

func (a *app) runLayout(cmd *cobra.Command) error {
	cmd.SilenceUsage = true

	width, err := cmd.Flags().GetInt("width")
	if err != nil {
		return err
	}
	if width <= 0 {
		width = a.cfg.Canvas.Width
	}

	grid := layout.NewGrid(len(a.cfg.Sliders), a.cfg.Padding, width)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "width %d: %d columns, %d rows, sliders %dpx wide\n",
		width, grid.Columns(), layout.Rows(grid.Sliders, grid.Columns()), grid.SliderWidth())

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ROW\tCOLUMN\tSLIDER")
	for i, cell := range grid.Cells() {
		fmt.Fprintf(w, "%d\t%d\t%s\n", cell.Row, cell.Column, a.cfg.Sliders[i].Label)
	}

	return w.Flush()
}
