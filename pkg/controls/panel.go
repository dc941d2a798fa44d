package controls

import (
	"errors"
	"fmt"
	"github.com/willbeason/fractal-canopy/pkg/geometry"
	"github.com/willbeason/fractal-canopy/pkg/render"
	"github.com/willbeason/fractal-canopy/pkg/tree"
	"math"
	"math/rand"
	"sort"
)

var ErrUnknownControl = errors.New("unknown control")

// A Panel holds the current value of every slider.
type Panel struct {
	specs  []Spec
	byName map[string]int
	values []float64
}

func NewPanel(specs []Spec) *Panel {
	p := &Panel{
		specs:  specs,
		byName: make(map[string]int, len(specs)),
		values: make([]float64, len(specs)),
	}

	for i, s := range specs {
		p.byName[s.Name] = i
	}
	p.Reset()

	return p
}

// Reset returns every slider to its default.
func (p *Panel) Reset() {
	for i, s := range p.specs {
		p.values[i] = s.Snap(s.Default)
	}
}

func (p *Panel) Specs() []Spec {
	return p.specs
}

func (p *Panel) Spec(name string) (Spec, error) {
	i, ok := p.byName[name]
	if !ok {
		return Spec{}, fmt.Errorf("%w %q, want one of %v", ErrUnknownControl, name, p.Names())
	}

	return p.specs[i], nil
}

// Names lists the slider names in sorted order.
func (p *Panel) Names() []string {
	names := make([]string, 0, len(p.specs))
	for _, s := range p.specs {
		names = append(names, s.Name)
	}
	sort.Strings(names)

	return names
}

// Set moves the named slider as close to v as it can go and returns the value
// it settled on.
func (p *Panel) Set(name string, v float64) (float64, error) {
	i, ok := p.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w %q, want one of %v", ErrUnknownControl, name, p.Names())
	}
	if math.IsNaN(v) {
		return 0, fmt.Errorf("control %q: value is not a number", name)
	}

	p.values[i] = p.specs[i].Snap(v)

	return p.values[i], nil
}

// Get returns the named slider's value, or zero if there is no such slider.
func (p *Panel) Get(name string) float64 {
	i, ok := p.byName[name]
	if !ok {
		return 0
	}

	return p.values[i]
}

// Randomize moves every slider to a uniformly chosen step.
func (p *Panel) Randomize(r *rand.Rand) {
	for i, s := range p.specs {
		step := r.Intn(s.Steps())
		p.values[i] = s.Snap(math.Min(s.From, s.To) + float64(step)*s.Resolution)
	}
}

// Copy returns an independent Panel with the same values.
func (p *Panel) Copy() *Panel {
	result := NewPanel(p.specs)
	copy(result.values, p.values)

	return result
}

// Differences lists the names of sliders whose values do not match other's.
// Sliders missing from other always differ.
func (p *Panel) Differences(other *Panel) []string {
	var result []string
	for i, s := range p.specs {
		j, ok := other.byName[s.Name]
		if !ok || !s.Equal(p.values[i], other.values[j]) {
			result = append(result, s.Name)
		}
	}

	return result
}

// Params converts the sliders into generator parameters rooted at origin.
// Sliders absent from the panel fall back to the built-in defaults.
func (p *Panel) Params(origin geometry.XY) tree.Params {
	ratio := p.value(LengthRatio)

	return tree.Params{
		Origin:         origin,
		InitialLength:  p.value(TrunkLength),
		StartAngle:     tree.Up + p.value(AngleOffset),
		AngleSpread:    p.value(Angle),
		SplitCount:     int(math.Round(p.value(Splits))),
		IterationCount: int(math.Round(p.value(Iterations))),
		LengthDecay:    1.0 / ratio,
	}
}

// Style applies the colour sliders to base.
func (p *Panel) Style(base render.Style) render.Style {
	base.TrunkHue = p.value(TrunkColor)
	base.LeafHue = p.value(LeafColor)

	return base
}

func (p *Panel) value(name string) float64 {
	if i, ok := p.byName[name]; ok {
		return p.values[i]
	}

	for _, s := range Defaults() {
		if s.Name == name {
			return s.Default
		}
	}

	return 0
}
