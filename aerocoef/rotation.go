package aerocoef

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SkewAngle returns the wind inclination measured in the plane normal to the
// girder axis. At zero yaw it reduces to theta itself.
func SkewAngle(beta, theta float64) float64 {
	return math.Atan2(math.Sin(theta), math.Cos(theta)*math.Cos(beta))
}

// SkewAngles is SkewAngle over paired angle sequences.
func SkewAngles(betas, thetas []float64) []float64 {
	out := make([]float64, len(betas))
	for i := range out {
		out[i] = SkewAngle(betas[i], thetas[i])
	}
	return out
}

// RotationWindNormal builds the per-point 6x6 operator taking
// structural-frame coefficient vectors into the wind-normal frame. The
// force and moment triplets rotate with the same 3x3 block: the first
// wind-normal axis follows the normal wind component in the plane
// perpendicular to the girder, the second runs along the girder (flipped
// when the wind comes from behind the deck), the third completes the
// right-handed triad.
func RotationWindNormal(betas, skews []float64) []*mat.Dense {
	ops := make([]*mat.Dense, len(betas))
	for i := range betas {
		t := skews[i]
		axis := 1.0
		if math.Cos(betas[i]) < 0 {
			axis = -1.0
		}
		c, s := math.Cos(t), math.Sin(t)
		r3 := [3][3]float64{
			{0, c, s},
			{axis, 0, 0},
			{0, axis * s, -axis * c},
		}
		T := mat.NewDense(6, 6, nil)
		for a := 0; a < 3; a++ {
			for b := 0; b < 3; b++ {
				T.Set(a, b, r3[a][b])
				T.Set(a+3, b+3, r3[a][b])
			}
		}
		ops[i] = T
	}
	return ops
}

// toWindNormal projects six structural channel vectors through per-point
// rotation operators. Channel order is preserved.
func toWindNormal(ops []*mat.Dense, ls [NumChannels][]float64) [NumChannels][]float64 {
	n := len(ops)
	var out [NumChannels][]float64
	for ch := range out {
		out[ch] = make([]float64, n)
	}
	cv := mat.NewVecDense(NumChannels, nil)
	res := mat.NewVecDense(NumChannels, nil)
	for i := 0; i < n; i++ {
		for ch := 0; ch < NumChannels; ch++ {
			cv.SetVec(ch, ls[ch][i])
		}
		res.MulVec(ops[i], cv)
		for ch := 0; ch < NumChannels; ch++ {
			out[ch][i] = res.AtVec(ch)
		}
	}
	return out
}
