package aerocoef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CosineRule(t *testing.T) {
	tbl := testTable()
	betas := []float64{0, Rad(60)}
	thetas := []float64{Rad(2), Rad(2)}

	ev, err := tbl.Coefficients(betas, thetas, CosineRule, Structural, FreeFitConfig())
	assert.NoError(t, err)

	// Cy on the zero-yaw strip is flat 1, so the model is cos^2(yaw).
	assert.InDelta(t, 1.0, ev.Structural[ChCy][0], 1e-9)
	assert.InDelta(t, 0.25, ev.Structural[ChCy][1], 1e-9)

	// The rule does not model the axial force and the bending moments.
	for _, ch := range []int{ChCx, ChCyy, ChCzz} {
		assert.Equal(t, 0.0, ev.Structural[ch][0])
		assert.Equal(t, 0.0, ev.Structural[ch][1])
	}
}

func Test_CosineRule_MirroredYaw(t *testing.T) {
	tbl := testTable()

	ev, err := tbl.Coefficients([]float64{Rad(110)}, []float64{Rad(2)}, CosineRule, Structural, FreeFitConfig())
	assert.NoError(t, err)

	// 110 deg folds to 70 deg and Cy is odd across the 90 deg boundary.
	c := math.Cos(Rad(70))
	assert.InDelta(t, -c*c, ev.Structural[ChCy][0], 1e-9)
}

func Test_CosineRule2D(t *testing.T) {
	tbl := testTable()
	betas := []float64{0, Rad(90)}
	thetas := []float64{Rad(10), Rad(10)}

	ev, err := tbl.Coefficients(betas, thetas, CosineRule2D, Structural, FreeFitConfig())
	assert.NoError(t, err)

	// At zero yaw the combined attenuation is exactly 1.
	assert.InDelta(t, 1.0, ev.Structural[ChCy][0], 1e-9)

	// At 90 deg yaw only the vertical wind component survives.
	st := math.Sin(Rad(10))
	assert.InDelta(t, st*st, ev.Structural[ChCy][1], 1e-9)
}

func Test_CosineRule_NoZeroYawSamples(t *testing.T) {
	tbl := &Table{
		Betas:  []float64{Rad(30), Rad(60)},
		Thetas: []float64{0, 0},
		Alphas: []float64{0, 0},
	}
	for ch := 0; ch < NumChannels; ch++ {
		tbl.Coefs[ch] = []float64{0.1, 0.2}
	}
	_, err := tbl.Coefficients([]float64{Rad(45)}, []float64{0}, CosineRule, Structural, FreeFitConfig())
	assert.Error(t, err)
}
