package aerocoef

import (
	"fmt"
	"math"
)

// derivStep is the angular perturbation used by the centered differences.
const derivStep = 0.001 // rad

// derivNudge is how far a query yaw sitting on a fold boundary is moved
// before differencing: just over twice the step, so that neither perturbed
// point straddles the sign flip of the folding.
const derivNudge = 2.1 * derivStep

// foldBoundaries lists the yaws where the quadrant folding flips signs.
var foldBoundaries = [5]float64{-math.Pi, -math.Pi / 2, 0, math.Pi / 2, math.Pi}

// safeDerivativeBetas copies the yaws and nudges any value within derivStep
// of a fold boundary toward the inside of its quadrant. A centered
// difference across a boundary straddles a sign flip and blows up by orders
// of magnitude, so the evaluation point is moved instead. The function
// reports which points were nudged and which remain too close to a boundary
// for the difference to be trusted.
func safeDerivativeBetas(betas []float64) (safe []float64, nudged, suspect []int) {
	safe = append([]float64{}, betas...)
	for i, b := range betas {
		adj := 0.0
		switch {
		case math.Abs(b+math.Pi) < derivStep,
			math.Abs(b+math.Pi/2) < derivStep,
			math.Abs(b) < derivStep:
			adj = derivNudge
		case math.Abs(b-math.Pi/2) < derivStep,
			math.Abs(b-math.Pi) < derivStep:
			adj = -derivNudge
		}
		if adj != 0 {
			safe[i] = b + adj
			nudged = append(nudged, i)
		}
	}
	for i, b := range safe {
		for _, bound := range foldBoundaries {
			if math.Abs(b-bound) <= derivStep {
				suspect = append(suspect, i)
				break
			}
		}
	}
	return safe, nudged, suspect
}

// DerivativeSet holds the angle gradients of the six coefficient surfaces:
// dC/dyaw and dC/dtheta per channel per query point, channel order Cx, Cy,
// Cz, Cxx, Cyy, Czz.
type DerivativeSet struct {
	DBeta  [NumChannels][]float64
	DTheta [NumChannels][]float64
}

// CoefficientDerivatives estimates the angle gradients of the coefficient
// surfaces by centered finite differences: the orchestrator is evaluated at
// the center and at yaw+-step and theta+-step, and each axis is differenced.
// Yaws too close to a fold boundary are nudged first (see
// safeDerivativeBetas); if a point still sits within one step of a boundary
// a warning is logged and the best-effort value is returned.
//
// The structural frame is required for directionally correct theta
// derivatives. The wind-normal frame rotates with theta itself, which
// corrupts a plain finite difference; requesting it logs a warning and
// proceeds.
func (tbl *Table) CoefficientDerivatives(betas, thetas []float64, strategy Strategy, frame Frame, cfg *FitConfigSet) (*DerivativeSet, error) {
	if frame == BothFrames {
		return nil, fmt.Errorf("%w: derivatives require a single frame", ErrUnsupported)
	}
	if err := validateAngles(betas, thetas); err != nil {
		return nil, err
	}
	if frame == WindNormal {
		logger.Warnf("wind-normal frame theta-derivatives are unreliable; use the structural frame")
	}

	safeBetas, nudged, suspect := safeDerivativeBetas(betas)
	if len(nudged) > 0 {
		logger.Warnf("nudged %d query yaw(s) off a fold boundary before differencing", len(nudged))
	}
	if len(suspect) > 0 {
		logger.Warnf("derivatives at %d query point(s) may be invalid: yaw still within %g rad of a fold boundary",
			len(suspect), derivStep)
	}

	shift := func(xs []float64, d float64) []float64 {
		out := make([]float64, len(xs))
		for i, x := range xs {
			out[i] = x + d
		}
		return out
	}
	safeThetas := append([]float64{}, thetas...)
	points := [5]struct{ betas, thetas []float64 }{
		{safeBetas, safeThetas},                        // center
		{shift(safeBetas, -derivStep), safeThetas},     // yaw-
		{shift(safeBetas, +derivStep), safeThetas},     // yaw+
		{safeBetas, shift(safeThetas, -derivStep)},     // theta-
		{safeBetas, shift(safeThetas, +derivStep)},     // theta+
	}

	// The five evaluations are pure given the table, so they run
	// concurrently.
	type evalResult struct {
		idx int
		ev  *Evaluation
		err error
	}
	c := make(chan evalResult, len(points))
	for i := range points {
		go func(i int) {
			ev, err := tbl.Coefficients(points[i].betas, points[i].thetas, strategy, frame, cfg)
			c <- evalResult{i, ev, err}
		}(i)
	}
	var results [5]*Evaluation
	var errs [5]error
	for range points {
		r := <-c
		results[r.idx], errs[r.idx] = r.ev, r.err
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	channels := func(e *Evaluation) [NumChannels][]float64 {
		if frame == WindNormal {
			return e.WindNormal
		}
		return e.Structural
	}
	betaPrev, betaNext := channels(results[1]), channels(results[2])
	thetaPrev, thetaNext := channels(results[3]), channels(results[4])

	n := len(betas)
	out := &DerivativeSet{}
	for ch := 0; ch < NumChannels; ch++ {
		out.DBeta[ch] = make([]float64, n)
		out.DTheta[ch] = make([]float64, n)
		for i := 0; i < n; i++ {
			out.DBeta[ch][i] = (betaNext[ch][i] - betaPrev[ch][i]) / (2 * derivStep)
			out.DTheta[ch][i] = (thetaNext[ch][i] - thetaPrev[ch][i]) / (2 * derivStep)
		}
	}
	return out, nil
}
