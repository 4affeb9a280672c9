package aerocoef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"
)

func Test_SkewAngle(t *testing.T) {
	assert.InDelta(t, Rad(10), SkewAngle(0, Rad(10)), 1e-15)
	assert.InDelta(t, 0, SkewAngle(Rad(60), 0), 1e-15)
	// The skew angle grows with yaw for a fixed positive inclination.
	assert.Greater(t, SkewAngle(Rad(60), Rad(10)), Rad(10))
}

func Test_RotationWindNormal_Orthonormal(t *testing.T) {
	betas := []float64{0, Rad(45), Rad(135)}
	thetas := []float64{Rad(5), Rad(-8), Rad(12)}
	ops := RotationWindNormal(betas, SkewAngles(betas, thetas))

	for _, T := range ops {
		var p mat.Dense
		p.Mul(T.T(), T)
		for a := 0; a < 6; a++ {
			for b := 0; b < 6; b++ {
				want := 0.0
				if a == b {
					want = 1.0
				}
				assert.InDelta(t, want, p.At(a, b), 1e-12)
			}
		}
		assert.InDelta(t, 1.0, mat.Det(T), 1e-12)
	}
}

func Test_toWindNormal_PreservesNorm(t *testing.T) {
	betas := []float64{Rad(30)}
	thetas := []float64{Rad(5)}
	ops := RotationWindNormal(betas, SkewAngles(betas, thetas))

	var ls [NumChannels][]float64
	vals := [NumChannels]float64{0.1, 0.9, -0.4, 0.02, 0.05, -0.07}
	for ch := range ls {
		ls[ch] = []float64{vals[ch]}
	}
	out := toWindNormal(ops, ls)

	var before, after float64
	for ch := 0; ch < 3; ch++ {
		before += vals[ch] * vals[ch]
		after += out[ch][0] * out[ch][0]
	}
	assert.InDelta(t, math.Sqrt(before), math.Sqrt(after), 1e-12)
}
