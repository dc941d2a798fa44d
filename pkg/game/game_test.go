package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/tree"
)

func newGame(seed int64) *Game {
	return New(controls.Defaults(), rand.New(rand.NewSource(seed)))
}

// solve copies every target value onto the player's sliders.
func solve(t *testing.T, g *Game) {
	t.Helper()

	for _, s := range g.Target().Specs() {
		_, err := g.Set(s.Name, g.Target().Get(s.Name))
		require.NoError(t, err)
	}
}

func TestNew_TargetDiffers(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := newGame(seed)

		assert.False(t, g.Matched())
		assert.NotEmpty(t, g.Mismatched())
	}
}

func TestGame_Match(t *testing.T) {
	g := newGame(1)

	solve(t, g)

	assert.True(t, g.Matched())
	assert.Empty(t, g.Mismatched())

	_, _, ok := g.Hint()
	assert.False(t, ok)
}

func TestGame_Hint(t *testing.T) {
	g := newGame(2)

	spec, v, ok := g.Hint()
	require.True(t, ok)
	assert.Equal(t, g.Mismatched()[0], spec.Name)

	_, err := g.Set(spec.Name, v)
	require.NoError(t, err)
	assert.NotContains(t, g.Mismatched(), spec.Name)
}

func TestGame_Restart(t *testing.T) {
	g := newGame(3)
	solve(t, g)

	g.Restart()

	assert.Equal(t, 1, g.Rounds)
	assert.False(t, g.Matched())
	assert.Empty(t, g.Guess().Differences(controls.NewPanel(controls.Defaults())))

	// Restarting an unfinished round does not count it.
	g.Restart()
	assert.Equal(t, 1, g.Rounds)
}

func TestGame_SetUnknown(t *testing.T) {
	g := newGame(4)

	_, err := g.Set("roots", 3)

	require.ErrorIs(t, err, controls.ErrUnknownControl)
}

func TestGame_Trees(t *testing.T) {
	g := newGame(5)
	origin := geometry.XY{X: 600, Y: 700}

	target, guess, err := g.Trees(origin)
	require.NoError(t, err)

	tp := g.Target().Params(origin)
	gp := g.Guess().Params(origin)
	assert.Len(t, target, tree.Count(tp.SplitCount, tp.IterationCount))
	assert.Len(t, guess, tree.Count(gp.SplitCount, gp.IterationCount))
	if len(guess) > 0 {
		assert.Equal(t, origin, guess[0].Start)
	}
}

func TestLevels(t *testing.T) {
	p := controls.NewPanel(controls.Defaults())

	_, err := p.Set(controls.Iterations, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, Levels(p))

	_, err = p.Set(controls.Iterations, 7)
	require.NoError(t, err)
	assert.Equal(t, 6, Levels(p))
}
