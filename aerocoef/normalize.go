package aerocoef

// Wind-tunnel section model geometry. The test campaign normalized drag by
// the model height, lift and moment by the width, and the axial force by the
// cross-section perimeter.
const (
	modelHeight    = 0.043     // m
	modelWidth     = 0.386     // m
	modelLength    = 2.4       // m
	modelPerimeter = 62.4 / 80 // m, full-scale perimeter over the scale factor
)

// NormalizeToWidth converts drag, lift, moment and axial coefficients from
// the wind-tunnel normalization to the single-width convention of the
// skew-wind formulation. Air density and wind speed cancel; only the
// reference lengths remain.
func NormalizeToWidth(cd, cl, cm, ca float64) (float64, float64, float64, float64) {
	return cd * modelHeight / modelWidth, cl, cm, ca * modelPerimeter / modelWidth
}
