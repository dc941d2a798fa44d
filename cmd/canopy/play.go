package main

import (
	"bufio"
	"errors"
	"fmt"
	"github.com/gogpu/gg"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"github.com/willbeason/fractal-canopy/pkg/game"
	"github.com/willbeason/fractal-canopy/pkg/render"
	"io"
	"math/rand"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const playHelp = `commands:
  set <slider> <value>   move one of your sliders
  show                   list your sliders
  hint                   reveal one slider of the target
  pan <dx> <dy>          move the view
  drag <x0> <y0> <x1> <y1>
                         drag the view from one screen point to another
  zoom <steps>           zoom about the center; negative zooms out
  view                   reset pan and zoom
  restart                start a new round
  help                   show this message
  quit                   leave the game`

var errQuit = errors.New("quit")

func playCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Match a hidden fractal tree by moving the sliders",
		Long: "Play the matching game in the terminal. The target tree and your tree are\n" +
			"written as PNGs after every change; move the sliders until they match.",
		Args: cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runPlay(cmd)
		},
	}

	cmd.Flags().String("dir", ".", "directory to write target.png and guess.png to")
	cmd.Flags().Int64("seed", 0, "seed for choosing targets; zero picks one from the clock")

	return cmd
}

// session is one run of the matching game.
type session struct {
	a      *app
	game   *game.Game
	target *render.Canvas
	guess  *render.Canvas
	dir    string

	out  io.Writer
	term *termenv.Output
}

func (a *app) runPlay(cmd *cobra.Command) error {
	cmd.SilenceUsage = true

	dir, _ := cmd.Flags().GetString("dir")
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	a.logger.Debug("starting game", "seed", seed)

	background := gg.Hex(a.cfg.Canvas.Background)
	s := &session{
		a:      a,
		game:   game.New(a.cfg.Sliders, rand.New(rand.NewSource(seed))),
		target: render.NewCanvas(a.cfg.Canvas.Width, a.cfg.Canvas.Height, background),
		guess:  render.NewCanvas(a.cfg.Canvas.Width, a.cfg.Canvas.Height, background),
		dir:    dir,
		out:    cmd.OutOrStdout(),
		term:   termenv.NewOutput(cmd.OutOrStdout()),
	}
	defer s.target.Close()
	defer s.guess.Close()

	return s.run(cmd.InOrStdin())
}

func (s *session) run(in io.Reader) error {
	fmt.Fprintln(s.out, s.term.String("Fractal Matching Game").Bold())
	fmt.Fprintln(s.out, playHelp)

	err := s.redraw()
	if err != nil {
		return err
	}
	s.status()

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			break
		}

		err = s.handle(strings.Fields(scanner.Text()))
		switch {
		case errors.Is(err, errQuit):
			return nil
		case err != nil:
			fmt.Fprintln(s.out, s.term.String(err.Error()).Foreground(s.term.Color("#f87171")))
		}
	}

	return scanner.Err()
}

func (s *session) handle(fields []string) error {
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "exit", "q":
		return errQuit
	case "help", "?":
		fmt.Fprintln(s.out, playHelp)
		return nil
	case "show":
		s.show()
		return nil
	case "hint":
		s.hint()
		return nil
	case "set":
		return s.set(fields[1:])
	case "pan":
		return s.pan(fields[1:])
	case "drag":
		return s.drag(fields[1:])
	case "zoom":
		return s.zoom(fields[1:])
	case "view":
		s.target.View.Reset()
		s.guess.View.Reset()
		return s.redraw()
	case "restart":
		s.game.Restart()
		fmt.Fprintf(s.out, "round %d\n", s.game.Rounds+1)
		err := s.redraw()
		if err != nil {
			return err
		}
		s.status()
		return nil
	}

	return fmt.Errorf("unknown command %q, try help", fields[0])
}

func (s *session) set(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: set <slider> <value>")
	}

	v, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("value %q: %w", args[1], err)
	}

	got, err := s.game.Set(args[0], v)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s = %v\n", args[0], got)

	err = s.redraw()
	if err != nil {
		return err
	}
	s.status()

	return nil
}

func (s *session) pan(args []string) error {
	if len(args) != 2 {
		return errors.New("usage: pan <dx> <dy>")
	}

	dx, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}
	dy, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return err
	}

	s.target.View.Pan(dx, dy)
	s.guess.View.Pan(dx, dy)

	return s.redraw()
}

// drag marks the first point and drags to the second, as a mouse press and
// motion would.
func (s *session) drag(args []string) error {
	if len(args) != 4 {
		return errors.New("usage: drag <x0> <y0> <x1> <y1>")
	}

	var pts [4]float64
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return err
		}
		pts[i] = v
	}

	for _, c := range []*render.Canvas{s.target, s.guess} {
		c.View.StartPan(pts[0], pts[1])
		c.View.DragTo(pts[2], pts[3])
	}

	return s.redraw()
}

func (s *session) zoom(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: zoom <steps>")
	}

	steps, err := strconv.Atoi(args[0])
	if err != nil {
		return err
	}

	x := float64(s.guess.Width()) / 2
	y := float64(s.guess.Height()) / 2
	zoomSteps(s.target.View, steps, x, y)
	zoomSteps(s.guess.View, steps, x, y)

	return s.redraw()
}

// redraw regenerates both trees and replaces what was drawn before.
func (s *session) redraw() error {
	target, guess, err := s.game.Trees(s.a.origin())
	if err != nil {
		return err
	}

	s.target.Style = s.game.Target().Style(render.DefaultStyle())
	s.target.Replace(target, game.Levels(s.game.Target()))
	s.guess.Style = s.game.Guess().Style(render.DefaultStyle())
	s.guess.Replace(guess, game.Levels(s.game.Guess()))

	for name, c := range map[string]*render.Canvas{"target.png": s.target, "guess.png": s.guess} {
		err = c.Redraw()
		if err != nil {
			return err
		}

		path := filepath.Join(s.dir, name)
		err = c.SavePNG(path)
		if err != nil {
			return err
		}
		s.a.logger.Debug("wrote image", "path", path, "segments", len(c.Segments()))
	}

	return nil
}

func (s *session) status() {
	if s.game.Matched() {
		fmt.Fprintln(s.out, s.term.String("Congratulations!").Bold().Foreground(s.term.Color("#4ade80")))
		fmt.Fprintln(s.out, "You have matched all the parameters of fractal trees. Type restart to try again or quit to exit.")
		return
	}

	fmt.Fprintf(s.out, "%d of %d sliders still differ\n", len(s.game.Mismatched()), len(s.game.Guess().Specs()))
}

func (s *session) show() {
	for _, spec := range s.game.Guess().Specs() {
		fmt.Fprintf(s.out, "  %-14s %-24s %8v  [%v..%v]\n",
			spec.Name, spec.Label, s.game.Guess().Get(spec.Name), spec.From, spec.To)
	}
}

func (s *session) hint() {
	spec, v, ok := s.game.Hint()
	if !ok {
		fmt.Fprintln(s.out, "nothing left to match")
		return
	}

	fmt.Fprintf(s.out, "%s (%s) of the target is %v\n", spec.Label, spec.Name, v)
}
