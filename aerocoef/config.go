package aerocoef

import "fmt"

// ChannelConfig fixes how one coefficient channel is fitted.
type ChannelConfig struct {
	Degree      int
	DegreeType  DegreeType
	Inequality  Inequality
	Constraints []BoundaryConstraint
	Bounds      Bounds
	Options     *FitOptions
}

// FitConfigSet holds one configuration per coefficient channel, in channel
// order Cx, Cy, Cz, Cxx, Cyy, Czz. Every channel must be configured
// explicitly; there is no silent default.
type FitConfigSet [NumChannels]ChannelConfig

func (cfg *FitConfigSet) validate() error {
	if cfg == nil {
		return fmt.Errorf("%w: a per-channel fit configuration is required", ErrUnsupported)
	}
	for ch := range cfg {
		if cfg[ch].Degree < 1 {
			return fmt.Errorf("%w: channel %s has no fit configuration",
				ErrUnsupported, ChannelName(ch))
		}
	}
	return nil
}

// FreeFitConfig returns the reference unconstrained configuration: the
// per-channel degrees settled during the extrapolation study.
func FreeFitConfig() *FitConfigSet {
	degrees := [NumChannels]int{2, 2, 1, 1, 3, 4}
	var cfg FitConfigSet
	for ch := range cfg {
		cfg[ch] = ChannelConfig{
			Degree:     degrees[ch],
			DegreeType: MaxDegree,
			Bounds:     DefaultBounds(),
		}
	}
	return &cfg
}

// ConstrainedFitConfig returns the reference constrained configuration. The
// edge conditions pin each surface where symmetry and physics fix its value:
// a channel that is odd under a quadrant mirror must vanish on the matching
// fold boundary, and slopes are flattened where the folded surface has to
// continue smoothly.
func ConstrainedFitConfig() *FitConfigSet {
	degrees := [NumChannels]int{3, 4, 4, 4, 4, 4}
	var cfg FitConfigSet
	for ch := range cfg {
		cfg[ch] = ChannelConfig{
			Degree:     degrees[ch],
			DegreeType: MaxDegree,
			Bounds:     DefaultBounds(),
		}
	}

	cfg[ChCx].Constraints = []BoundaryConstraint{
		ValueAt(AtStart, FullRange, 0),
		ValueAt(FullRange, AtStart, 0),
		ValueAt(FullRange, AtEnd, 0),
		FlatInBeta(AtEnd, FullRange),
	}
	cfg[ChCy].Constraints = []BoundaryConstraint{
		ValueAt(AtEnd, FullRange, 0),
		ValueAt(FullRange, AtStart, 0),
		ValueAt(FullRange, AtEnd, 0),
		FlatInBeta(AtStart, FullRange),
		FlatInBeta(AtEnd, AtMiddle),
	}
	cfg[ChCz].Constraints = []BoundaryConstraint{
		ValueAt(AtEnd, AtMiddle, 0),
		ValueAt(FullRange, AtStart, -2),
		ValueAt(FullRange, AtEnd, 2),
		FlatInBeta(AtStart, FullRange),
		FlatInBeta(AtEnd, FullRange),
	}
	cfg[ChCxx].Constraints = []BoundaryConstraint{
		ValueAt(AtEnd, FullRange, 0),
		ValueAt(FullRange, AtStart, 0),
		ValueAt(FullRange, AtEnd, 0),
		FlatInBeta(AtStart, FullRange),
		FlatInBeta(AtEnd, AtMiddle),
	}
	cfg[ChCyy].Constraints = []BoundaryConstraint{
		ValueAt(AtStart, FullRange, 0),
		ValueAt(FullRange, AtStart, 0),
		ValueAt(FullRange, AtEnd, 0),
		FlatInBeta(AtEnd, FullRange),
	}
	cfg[ChCzz].Constraints = []BoundaryConstraint{
		ValueAt(AtStart, FullRange, 0),
		ValueAt(AtEnd, FullRange, 0),
		ValueAt(FullRange, AtStart, 0),
		ValueAt(FullRange, AtEnd, 0),
	}
	return &cfg
}
