package aerocoef

import "math"

// Rad converts degrees to radians.
func Rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// Deg converts radians to degrees.
func Deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// CorrectedAngles converts test-rig angles (uncorrected yaw of the turntable
// and torsional rotation alpha of the section model) into the skew-wind yaw
// and inclination used by the coefficient surfaces. With alpha = 0 the yaw
// passes through unchanged and the inclination is zero.
func CorrectedAngles(betasUnc, alphas []float64) (betas, thetas []float64) {
	betas = make([]float64, len(betasUnc))
	thetas = make([]float64, len(betasUnc))
	for i := range betasUnc {
		betas[i] = math.Atan(math.Tan(betasUnc[i]) / math.Cos(alphas[i]))
		thetas[i] = -math.Asin(math.Cos(betasUnc[i]) * math.Sin(alphas[i]))
	}
	return betas, thetas
}
