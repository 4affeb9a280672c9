package aerocoef

import "fmt"

// Strategy selects the interpolation/extrapolation model.
type Strategy int

const (
	FreeFit        Strategy = iota // unconstrained 2D polynomial fit
	ConstrainedFit                 // 2D polynomial fit with boundary conditions
	CosineRule                     // zero-yaw slice times cos^2(yaw)
	CosineRule2D                   // cosine rule with combined yaw/theta tilt
	Hybrid                         // declared placeholder, see hybridEvaluator
)

var strategyNames = map[Strategy]string{
	FreeFit:        "free",
	ConstrainedFit: "cons",
	CosineRule:     "cosine",
	CosineRule2D:   "cosine2d",
	Hybrid:         "hybrid",
}

func (s Strategy) String() string {
	if name, ok := strategyNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// ParseStrategy maps a CLI token onto a Strategy.
func ParseStrategy(tok string) (Strategy, error) {
	for s, name := range strategyNames {
		if name == tok {
			return s, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown strategy %q", ErrUnsupported, tok)
}

// Frame selects the reference frame of the returned coefficients.
type Frame int

const (
	Structural Frame = iota // deck-local axes
	WindNormal              // axes tied to the wind component normal to the deck
	BothFrames
)

var frameNames = map[Frame]string{
	Structural: "Ls",
	WindNormal: "Lnw",
	BothFrames: "both",
}

func (f Frame) String() string {
	if name, ok := frameNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Frame(%d)", int(f))
}

// ParseFrame maps a CLI token onto a Frame.
func ParseFrame(tok string) (Frame, error) {
	for f, name := range frameNames {
		if name == tok {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown frame %q", ErrUnsupported, tok)
}

// evaluator computes the six structural-frame channel vectors for a folded
// query. Implementations re-apply the quadrant signs themselves, directly
// after the model value is known; the orchestrator only rotates frames.
type evaluator interface {
	evaluate(tbl *Table, q *foldedQuery, cfg *FitConfigSet) ([NumChannels][]float64, error)
}

func (s Strategy) evaluator() (evaluator, error) {
	switch s {
	case FreeFit:
		return freeFitEvaluator{}, nil
	case ConstrainedFit:
		return consFitEvaluator{}, nil
	case CosineRule:
		return cosineEvaluator{}, nil
	case CosineRule2D:
		return cosineEvaluator{combinedTilt: true}, nil
	case Hybrid:
		return hybridEvaluator{fit: freeFitEvaluator{}, cosine: cosineEvaluator{}}, nil
	}
	return nil, fmt.Errorf("%w: unknown strategy %d", ErrUnsupported, int(s))
}

func applySigns(vals, signs []float64) {
	for i := range vals {
		vals[i] *= signs[i]
	}
}

// freeFitEvaluator fits every channel without constraints; only the degree,
// degree type and bounds of the channel configuration are honored.
type freeFitEvaluator struct{}

func (freeFitEvaluator) evaluate(tbl *Table, q *foldedQuery, cfg *FitConfigSet) ([NumChannels][]float64, error) {
	var out [NumChannels][]float64
	if err := cfg.validate(); err != nil {
		return out, err
	}
	for ch := 0; ch < NumChannels; ch++ {
		cc := cfg[ch]
		vals, err := ConsPolyFit(tbl.Betas, tbl.Thetas, tbl.Coefs[ch],
			q.betas, q.thetas, cc.Bounds, cc.Degree, NoInequality, nil,
			cc.DegreeType, cc.Options)
		if err != nil {
			return out, fmt.Errorf("channel %s: %w", ChannelName(ch), err)
		}
		applySigns(vals, q.signs[ch])
		out[ch] = vals
	}
	return out, nil
}

// consFitEvaluator fits every channel with its configured boundary and
// inequality constraints.
type consFitEvaluator struct{}

func (consFitEvaluator) evaluate(tbl *Table, q *foldedQuery, cfg *FitConfigSet) ([NumChannels][]float64, error) {
	var out [NumChannels][]float64
	if err := cfg.validate(); err != nil {
		return out, err
	}
	for ch := 0; ch < NumChannels; ch++ {
		cc := cfg[ch]
		vals, err := ConsPolyFit(tbl.Betas, tbl.Thetas, tbl.Coefs[ch],
			q.betas, q.thetas, cc.Bounds, cc.Degree, cc.Inequality, cc.Constraints,
			cc.DegreeType, cc.Options)
		if err != nil {
			return out, fmt.Errorf("channel %s: %w", ChannelName(ch), err)
		}
		applySigns(vals, q.signs[ch])
		out[ch] = vals
	}
	return out, nil
}

// hybridEvaluator is a declared composite of the free fit and the cosine
// rule. The blend law between the two was never settled in the wind-tunnel
// study, so evaluation is refused rather than guessing one.
type hybridEvaluator struct {
	fit    evaluator
	cosine evaluator
}

func (hybridEvaluator) evaluate(*Table, *foldedQuery, *FitConfigSet) ([NumChannels][]float64, error) {
	var out [NumChannels][]float64
	return out, fmt.Errorf("%w: hybrid blend policy is not defined", ErrUnsupported)
}
