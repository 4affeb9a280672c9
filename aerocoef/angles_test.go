package aerocoef

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_RadDeg(t *testing.T) {
	assert.InDelta(t, 1.0471975511965976, Rad(60), 1e-15)
	assert.InDelta(t, 60, Deg(Rad(60)), 1e-12)
}

func Test_CorrectedAngles_ZeroAlpha(t *testing.T) {
	betas, thetas := CorrectedAngles([]float64{0, Rad(30), Rad(80)}, []float64{0, 0, 0})
	assert.InDelta(t, 0, betas[0], 1e-15)
	assert.InDelta(t, Rad(30), betas[1], 1e-12)
	assert.InDelta(t, Rad(80), betas[2], 1e-12)
	for _, th := range thetas {
		assert.InDelta(t, 0, th, 1e-15)
	}
}

func Test_CorrectedAngles(t *testing.T) {
	betas, thetas := CorrectedAngles([]float64{Rad(45)}, []float64{Rad(10)})
	assert.InDelta(t, 0.793052, betas[0], 1e-5)
	assert.InDelta(t, -0.123098, thetas[0], 1e-5)
}
