package aerocoef

import (
	"fmt"
	"math"
)

// zeroYawTol selects the zero-yaw measurement strip.
const zeroYawTol = 1e-9

// cosineZeroChannels marks the channels the cosine rule leaves identically
// zero: the axial force and the two bending moments are not governed by the
// rule. This is the model's physical simplification, not a gap.
var cosineZeroChannels = [NumChannels]bool{
	ChCx:  true,
	ChCyy: true,
	ChCzz: true,
}

// cosineEvaluator approximates C(yaw,theta) = C(0,theta) * attenuation. The
// zero-yaw values come from a 1D fit across theta on the zero-yaw
// measurement strip; attenuation is cos^2(yaw), or with combinedTilt the
// blend sin^2(theta) + cos^2(yaw)*cos^2(theta) that accounts for the wind
// tilting out of the horizontal plane.
type cosineEvaluator struct {
	combinedTilt bool
}

func (e cosineEvaluator) evaluate(tbl *Table, q *foldedQuery, cfg *FitConfigSet) ([NumChannels][]float64, error) {
	var out [NumChannels][]float64
	if err := cfg.validate(); err != nil {
		return out, err
	}

	var slice []int
	for i, b := range tbl.Betas {
		if math.Abs(b) <= zeroYawTol {
			slice = append(slice, i)
		}
	}
	if len(slice) == 0 {
		return out, fmt.Errorf("cosine rule: measurement table has no zero-yaw samples")
	}
	sliceThetas := make([]float64, len(slice))
	for k, i := range slice {
		sliceThetas[k] = tbl.Thetas[i]
	}

	n := len(q.betas)
	evalThetas := q.thetas
	if e.combinedTilt {
		evalThetas = make([]float64, n)
		for i := range evalThetas {
			evalThetas[i] = SkewAngle(q.betas[i], q.thetas[i])
		}
	}

	factor := make([]float64, n)
	for i := range factor {
		cb := math.Cos(q.betas[i])
		if e.combinedTilt {
			st := math.Sin(q.thetas[i])
			ct := math.Cos(q.thetas[i])
			factor[i] = st*st + cb*cb*ct*ct
		} else {
			factor[i] = cb * cb
		}
	}

	for ch := 0; ch < NumChannels; ch++ {
		out[ch] = make([]float64, n)
		if cosineZeroChannels[ch] {
			continue
		}
		sliceVals := make([]float64, len(slice))
		for k, i := range slice {
			sliceVals[k] = tbl.Coefs[ch][i]
		}
		zeroYaw, err := fit1D(sliceThetas, sliceVals, cfg[ch].Degree, cfg[ch].Bounds.Theta)
		if err != nil {
			return out, fmt.Errorf("channel %s: %w", ChannelName(ch), err)
		}
		for i := 0; i < n; i++ {
			out[ch][i] = zeroYaw(evalThetas[i]) * factor[i]
		}
		applySigns(out[ch], q.signs[ch])
	}
	return out, nil
}
