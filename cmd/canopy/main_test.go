package main

import (
	"bytes"
	"image/png"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-canopy/internal/config"
	"github.com/willbeason/fractal-canopy/internal/logging"
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/game"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/render"
	"github.com/willbeason/fractal-canopy/pkg/tree"
)

// smallConfig keeps trees and canvases small enough for quick tests.
const smallConfig = `
canvas:
  width: 240
  height: 160
  margin: 10
sliders:
  - {name: trunk-length, label: "Trunk's Length", from: 10, to: 60, resolution: 1, default: 40}
  - {name: splits, label: Branch Splits, from: 2, to: 3, resolution: 1, default: 2}
  - {name: length-ratio, label: Length Ratio, from: 0.2, to: 1.2, resolution: 0.1, default: 0.7}
  - {name: angle, label: Angle Between Branches, from: 0, to: 180, resolution: 10, default: 40}
  - {name: iterations, label: Iterations, from: 1, to: 4, resolution: 1, default: 3}
`

func writeSmallConfig(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "canopy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(smallConfig), 0o600))

	return path
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := mainCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append(args, "--log-level", "error"))

	err := cmd.Execute()

	return out.String(), err
}

func TestDraw(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	_, err := execute(t, "", "draw", "--config", writeSmallConfig(t),
		"--out", out, "--splits", "3", "--iterations", "4", "--zoom=-2", "--pan-x=5", "--squares", "1")
	require.NoError(t, err)

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestDraw_Fit(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	_, err := execute(t, "", "draw", "--config", writeSmallConfig(t), "--out", out, "--fit")

	require.NoError(t, err)
	assert.FileExists(t, out)
}

func TestDraw_UnknownSliderFlag(t *testing.T) {
	out := filepath.Join(t.TempDir(), "tree.png")

	// The small config has no angle-offset slider, so the flag cannot apply.
	_, err := execute(t, "", "draw", "--config", writeSmallConfig(t), "--out", out, "--angle-offset", "10")

	require.ErrorIs(t, err, controls.ErrUnknownControl)
	assert.NoFileExists(t, out)
}

func TestDraw_BadConfig(t *testing.T) {
	_, err := execute(t, "", "draw", "--config", filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLayout(t *testing.T) {
	out, err := execute(t, "", "layout", "--width", "1200")
	require.NoError(t, err)

	assert.Contains(t, out, "width 1200: 4 columns, 2 rows")
	assert.Contains(t, out, "Leaf Color")
}

func TestPlay_Script(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "show\nhint\nbogus\nset splits 3\nset splits\nzoom 1\npan 3 4\nview\nquit\nshow\n",
		"play", "--config", writeSmallConfig(t), "--dir", dir, "--seed", "42")
	require.NoError(t, err)

	assert.Contains(t, out, "Fractal Matching Game")
	assert.Contains(t, out, "of the target is")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Contains(t, out, "splits = 3")
	assert.Contains(t, out, "usage: set <slider> <value>")
	assert.FileExists(t, filepath.Join(dir, "target.png"))
	assert.FileExists(t, filepath.Join(dir, "guess.png"))
}

func newTestSession(t *testing.T, out *bytes.Buffer) *session {
	t.Helper()

	cfg, err := config.Load(writeSmallConfig(t))
	require.NoError(t, err)

	a := &app{cfg: cfg, logger: logging.NewNop()}
	s := &session{
		a:      a,
		game:   game.New(cfg.Sliders, rand.New(rand.NewSource(9))),
		target: render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, gg.White),
		guess:  render.NewCanvas(cfg.Canvas.Width, cfg.Canvas.Height, gg.White),
		dir:    t.TempDir(),
		out:    out,
		term:   termenv.NewOutput(out),
	}
	t.Cleanup(func() {
		_ = s.target.Close()
		_ = s.guess.Close()
	})

	return s
}

func TestSession_Win(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	for _, spec := range s.game.Target().Specs() {
		v := s.game.Target().Get(spec.Name)
		require.NoError(t, s.handle([]string{"set", spec.Name, strconvFloat(v)}))
	}

	assert.True(t, s.game.Matched())
	assert.Contains(t, out.String(), "Congratulations!")

	require.NoError(t, s.handle([]string{"restart"}))
	assert.Equal(t, 1, s.game.Rounds)
	assert.Contains(t, out.String(), "round 2")

	assert.ErrorIs(t, s.handle([]string{"quit"}), errQuit)
}

func strconvFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func TestSession_Drag(t *testing.T) {
	var out bytes.Buffer
	s := newTestSession(t, &out)

	require.NoError(t, s.handle([]string{"drag", "10", "10", "40", "30"}))
	require.NoError(t, s.handle([]string{"drag", "0", "0", "5", "5"}))

	for _, c := range []*render.Canvas{s.target, s.guess} {
		got := c.View.Apply(geometry.XY{})
		assert.InDelta(t, 35.0, got.X, 1e-9)
		assert.InDelta(t, 25.0, got.Y, 1e-9)
	}

	assert.Error(t, s.handle([]string{"drag", "1", "2", "3"}))
	assert.Error(t, s.handle([]string{"drag", "1", "2", "3", "x"}))
}

func TestDraw_Stdout(t *testing.T) {
	out, err := execute(t, "", "draw", "--config", writeSmallConfig(t), "--out", "-")
	require.NoError(t, err)

	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 240, img.Bounds().Dx())
	assert.Equal(t, 160, img.Bounds().Dy())
}

func TestDraw_TreeTooLarge(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
canvas: {width: 64, height: 64}
sliders:
  - {name: splits, from: 1, to: 7, resolution: 1, default: 2}
  - {name: iterations, from: 1, to: 100, resolution: 1, default: 3}
`), 0o600))
	out := filepath.Join(t.TempDir(), "tree.png")

	_, err := execute(t, "", "draw", "--config", path, "--out", out, "--iterations", "70")

	require.ErrorIs(t, err, tree.ErrInvalidParams)
	assert.NoFileExists(t, out)
}
