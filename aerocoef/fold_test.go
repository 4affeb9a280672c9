package aerocoef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Folding inside the canonical quadrant is the identity with all signs +1.
func Test_FoldYaw_Identity(t *testing.T) {
	for _, deg := range []float64{0, 10, 30, 45, 60, 89, 90} {
		folded, signs := FoldYaw(Rad(deg))
		assert.Equal(t, Rad(deg), folded)
		for ch := 0; ch < NumChannels; ch++ {
			assert.Equal(t, 1.0, signs[ch])
		}
	}
}

func Test_FoldYaw_Quadrants(t *testing.T) {
	cases := []struct {
		beta   float64
		folded float64
		signs  [NumChannels]float64
	}{
		{Rad(110), Rad(70), [NumChannels]float64{+1, -1, +1, -1, +1, -1}},
		{Rad(180), Rad(0), [NumChannels]float64{+1, -1, +1, -1, +1, -1}},
		{Rad(-60), Rad(60), [NumChannels]float64{-1, +1, +1, +1, -1, -1}},
		{Rad(-160), Rad(20), [NumChannels]float64{-1, -1, +1, -1, -1, +1}},
	}
	for _, c := range cases {
		folded, signs := FoldYaw(c.beta)
		assert.InDelta(t, c.folded, folded, 1e-12)
		assert.Equal(t, c.signs, signs)
	}
}

func Test_validateAngles(t *testing.T) {
	err := validateAngles([]float64{Rad(181)}, []float64{0})
	assert.ErrorIs(t, err, ErrAngleRange)

	err = validateAngles([]float64{0}, []float64{Rad(91)})
	assert.ErrorIs(t, err, ErrAngleRange)

	err = validateAngles(make([]float64, 5), make([]float64, 4))
	assert.ErrorIs(t, err, ErrShape)

	assert.NoError(t, validateAngles([]float64{Rad(-180), Rad(180)}, []float64{Rad(-90), Rad(90)}))
}

// The caller's angle sequences must never be modified by the folding.
func Test_foldAngles_DefensiveCopy(t *testing.T) {
	betas := []float64{Rad(110), Rad(-60)}
	thetas := []float64{Rad(5), Rad(-5)}

	q, err := foldAngles(betas, thetas)
	assert.NoError(t, err)

	assert.Equal(t, []float64{Rad(110), Rad(-60)}, betas)
	assert.Equal(t, []float64{Rad(5), Rad(-5)}, thetas)
	assert.InDelta(t, Rad(70), q.betas[0], 1e-12)
	assert.InDelta(t, Rad(60), q.betas[1], 1e-12)
	assert.Equal(t, betas, q.origBetas)
}

// Folding at +-90 and +-180 deg lands exactly on the quadrant edges.
func Test_FoldYaw_Edges(t *testing.T) {
	folded, _ := FoldYaw(-math.Pi / 2)
	assert.InDelta(t, math.Pi/2, folded, 1e-12)

	folded, _ = FoldYaw(-math.Pi)
	assert.InDelta(t, 0, folded, 1e-12)
}
