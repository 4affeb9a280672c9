package aerocoef

import (
	"fmt"
	"math"
)

// quadrantSigns lists the per-channel sign multipliers for each fold
// quadrant, channel order Cx, Cy, Cz, Cxx, Cyy, Czz. The cross-section is
// symmetric, so a coefficient at any yaw equals the coefficient at the
// folded yaw times the sign of its quadrant.
var quadrantSigns = [4][NumChannels]float64{
	{+1, +1, +1, +1, +1, +1}, // yaw in [0,90] deg
	{+1, -1, +1, -1, +1, -1}, // yaw in (90,180] deg
	{-1, +1, +1, +1, -1, -1}, // yaw in [-90,0) deg
	{-1, -1, +1, -1, -1, +1}, // yaw in [-180,-90) deg
}

// FoldYaw maps a yaw in [-180,180] deg (radians) onto the canonical [0,90]
// deg quadrant and returns the sign multipliers that carry the symmetry
// information lost by the folding.
func FoldYaw(beta float64) (folded float64, signs [NumChannels]float64) {
	switch {
	case 0 <= beta && beta <= math.Pi/2:
		return beta, quadrantSigns[0]
	case math.Pi/2 < beta && beta <= math.Pi:
		return math.Pi - beta, quadrantSigns[1]
	case -math.Pi/2 <= beta && beta < 0:
		return -beta, quadrantSigns[2]
	default: // [-180,-90) deg
		return math.Pi + beta, quadrantSigns[3]
	}
}

// validateAngles checks the query preconditions: equal-length sequences,
// |theta| <= 90 deg and |yaw| <= 180 deg.
func validateAngles(betas, thetas []float64) error {
	if len(betas) != len(thetas) {
		return fmt.Errorf("%w: yaw and theta sequences have lengths %d and %d",
			ErrShape, len(betas), len(thetas))
	}
	for i, t := range thetas {
		if math.Abs(t) > math.Pi/2 {
			return fmt.Errorf("%w: theta[%d] = %.6f rad is outside [-90,90] deg",
				ErrAngleRange, i, t)
		}
	}
	for i, b := range betas {
		if math.Abs(b) > math.Pi {
			return fmt.Errorf("%w: yaw[%d] = %.6f rad is outside [-180,180] deg",
				ErrAngleRange, i, b)
		}
	}
	return nil
}

// foldedQuery is a validated query with the yaws folded into the canonical
// quadrant. Every slice is a fresh copy; the caller's sequences are never
// touched.
type foldedQuery struct {
	betas     []float64              // folded into [0,90] deg
	origBetas []float64              // caller's yaws (frame rotation needs them)
	thetas    []float64              // caller's thetas
	signs     [NumChannels][]float64 // sign multipliers per channel per point
}

func foldAngles(betas, thetas []float64) (*foldedQuery, error) {
	if err := validateAngles(betas, thetas); err != nil {
		return nil, err
	}
	n := len(betas)
	q := &foldedQuery{
		betas:     make([]float64, n),
		origBetas: append([]float64{}, betas...),
		thetas:    append([]float64{}, thetas...),
	}
	for ch := range q.signs {
		q.signs[ch] = make([]float64, n)
	}
	for i, b := range betas {
		folded, signs := FoldYaw(b)
		q.betas[i] = folded
		for ch := 0; ch < NumChannels; ch++ {
			q.signs[ch][i] = signs[ch]
		}
	}
	return q, nil
}
