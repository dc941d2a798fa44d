// Package game is the fractal matching game: the player moves the sliders until
// their tree matches a hidden target tree.
package game

import (
	"github.com/willbeason/fractal-canopy/pkg/controls"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"math/rand"
)

type Game struct {
	target *controls.Panel
	guess  *controls.Panel

	r *rand.Rand

	// Rounds counts completed matches.
	Rounds int
}

// New starts a game with a random target drawn from r.
func New(specs []controls.Spec, r *rand.Rand) *Game {
	g := &Game{
		target: controls.NewPanel(specs),
		guess:  controls.NewPanel(specs),
		r:      r,
	}
	g.newTarget()

	return g
}

// newTarget picks a target which does not already match the player's sliders.
func (g *Game) newTarget() {
	for attempt := 0; attempt < 100; attempt++ {
		g.target.Randomize(g.r)
		if !g.Matched() {
			return
		}
	}
}

// Set moves one of the player's sliders.
func (g *Game) Set(name string, v float64) (float64, error) {
	return g.guess.Set(name, v)
}

func (g *Game) Guess() *controls.Panel {
	return g.guess
}

func (g *Game) Target() *controls.Panel {
	return g.target
}

// Mismatched lists the sliders the player has not yet matched.
func (g *Game) Mismatched() []string {
	return g.target.Differences(g.guess)
}

func (g *Game) Matched() bool {
	return len(g.Mismatched()) == 0
}

// Restart records a finished round, resets the player's sliders and hides a
// new target.
func (g *Game) Restart() {
	if g.Matched() {
		g.Rounds++
	}

	g.guess.Reset()
	g.newTarget()
}

// Hint reveals the target value of the first unmatched slider.
func (g *Game) Hint() (controls.Spec, float64, bool) {
	mismatched := g.Mismatched()
	if len(mismatched) == 0 {
		return controls.Spec{}, 0, false
	}

	spec, err := g.target.Spec(mismatched[0])
	if err != nil {
		return controls.Spec{}, 0, false
	}

	return spec, g.target.Get(spec.Name), true
}

// Trees generates the target and guess trees rooted at origin.
func (g *Game) Trees(origin geometry.XY) (target, guess []geometry.Segment, err error) {
	target, err = generate(g.target, origin)
	if err != nil {
		return nil, nil, err
	}

	guess, err = generate(g.guess, origin)
	if err != nil {
		return nil, nil, err
	}

	return target, guess, nil
}
