package aerocoef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// testTable builds a dense synthetic measurement grid over the canonical
// quadrant. Cy is exactly cos^2(yaw), so the cosine-rule model reproduces it
// and its yaw derivative in closed form.
func testTable() *Table {
	tbl := &Table{}
	for bd := 0.0; bd <= 90; bd += 15 {
		for td := -10.0; td <= 10; td += 5 {
			b, th := Rad(bd), Rad(td)
			tbl.Betas = append(tbl.Betas, b)
			tbl.Thetas = append(tbl.Thetas, th)
			tbl.Alphas = append(tbl.Alphas, 0)
			cb := math.Cos(b)
			vals := [NumChannels]float64{
				0.05 + 0.1*b + 0.02*th, // Cx
				cb * cb,                // Cy
				-0.3 + 1.2*th,          // Cz
				0.01 + 0.03*b*th,       // Cxx
				0.1 * th,               // Cyy
				0.05 * b,               // Czz
			}
			for ch := 0; ch < NumChannels; ch++ {
				tbl.Coefs[ch] = append(tbl.Coefs[ch], vals[ch])
			}
		}
	}
	return tbl
}

// Evaluating a mirrored yaw must give the folded value with the quadrant
// signs applied: the two calls share every fit.
func Test_Coefficients_QuadrantSymmetry(t *testing.T) {
	tbl := testTable()
	cfg := FreeFitConfig()

	cases := []struct {
		mirrored, folded float64
		signs            [NumChannels]float64
	}{
		{Rad(110), Rad(70), [NumChannels]float64{1, -1, 1, -1, 1, -1}},
		{Rad(-60), Rad(60), [NumChannels]float64{-1, 1, 1, 1, -1, -1}},
		{Rad(-160), Rad(20), [NumChannels]float64{-1, -1, 1, -1, -1, 1}},
	}
	for _, tc := range cases {
		mirror, err := tbl.Coefficients([]float64{tc.mirrored}, []float64{Rad(5)}, FreeFit, Structural, cfg)
		assert.NoError(t, err)
		direct, err := tbl.Coefficients([]float64{tc.folded}, []float64{Rad(5)}, FreeFit, Structural, cfg)
		assert.NoError(t, err)
		for ch := 0; ch < NumChannels; ch++ {
			assert.InDelta(t, tc.signs[ch]*direct.Structural[ch][0], mirror.Structural[ch][0], 1e-12,
				"channel %s at yaw %g deg", ChannelName(ch), Deg(tc.mirrored))
		}
	}
}

func Test_Coefficients_ShapeError(t *testing.T) {
	tbl := &Table{}
	_, err := tbl.Coefficients(make([]float64, 5), make([]float64, 4), FreeFit, Structural, FreeFitConfig())
	assert.ErrorIs(t, err, ErrShape)
}

func Test_Coefficients_AngleRange(t *testing.T) {
	tbl := testTable()
	cfg := FreeFitConfig()

	_, err := tbl.Coefficients([]float64{Rad(200)}, []float64{0}, FreeFit, Structural, cfg)
	assert.ErrorIs(t, err, ErrAngleRange)

	_, err = tbl.Coefficients([]float64{0}, []float64{Rad(100)}, FreeFit, Structural, cfg)
	assert.ErrorIs(t, err, ErrAngleRange)
}

func Test_Coefficients_UnknownStrategy(t *testing.T) {
	tbl := testTable()
	_, err := tbl.Coefficients([]float64{0}, []float64{0}, Strategy(99), Structural, FreeFitConfig())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Coefficients_UnknownFrame(t *testing.T) {
	tbl := testTable()
	_, err := tbl.Coefficients([]float64{0}, []float64{0}, FreeFit, Frame(9), FreeFitConfig())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Coefficients_HybridRefused(t *testing.T) {
	tbl := testTable()
	_, err := tbl.Coefficients([]float64{0}, []float64{0}, Hybrid, Structural, FreeFitConfig())
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Coefficients_NilConfig(t *testing.T) {
	tbl := testTable()
	_, err := tbl.Coefficients([]float64{0}, []float64{0}, FreeFit, Structural, nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_Coefficients_BothFrames(t *testing.T) {
	tbl := testTable()
	cfg := FreeFitConfig()
	betas := []float64{Rad(20), Rad(50)}
	thetas := []float64{Rad(-3), Rad(7)}

	both, err := tbl.Coefficients(betas, thetas, FreeFit, BothFrames, cfg)
	assert.NoError(t, err)
	only, err := tbl.Coefficients(betas, thetas, FreeFit, Structural, cfg)
	assert.NoError(t, err)

	for ch := 0; ch < NumChannels; ch++ {
		assert.NotNil(t, both.WindNormal[ch])
		assert.Len(t, both.WindNormal[ch], len(betas))
		for i := range betas {
			assert.InDelta(t, only.Structural[ch][i], both.Structural[ch][i], 1e-15)
		}
	}
	assert.Nil(t, only.WindNormal[0])
}

func Test_ParseStrategy(t *testing.T) {
	for _, s := range []Strategy{FreeFit, ConstrainedFit, CosineRule, CosineRule2D, Hybrid} {
		got, err := ParseStrategy(s.String())
		assert.NoError(t, err)
		assert.Equal(t, s, got)
	}
	_, err := ParseStrategy("spline")
	assert.ErrorIs(t, err, ErrUnsupported)
}

func Test_ParseFrame(t *testing.T) {
	for _, f := range []Frame{Structural, WindNormal, BothFrames} {
		got, err := ParseFrame(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFrame("global")
	assert.ErrorIs(t, err, ErrUnsupported)
}
