package aerocoef

import (
	"fmt"

	"github.com/hhkbp2/go-logging"
)

var logger = logging.GetLogger("aerocoef")

// Evaluation holds the six coefficient channel vectors produced for a query,
// in one or both reference frames. A frame that was not requested stays nil.
// Channel order is fixed in both frames: Cx, Cy, Cz, Cxx, Cyy, Czz.
type Evaluation struct {
	Structural [NumChannels][]float64
	WindNormal [NumChannels][]float64
}

// Coefficients evaluates the six aerodynamic coefficient surfaces at the
// query angle pairs (radians). The yaws are folded into the canonical
// quadrant for fitting and the quadrant signs are re-applied, so any yaw in
// [-180,180] deg is admissible; the caller's slices are never modified.
// Either all six channels are returned or the call fails as a whole.
func (tbl *Table) Coefficients(betas, thetas []float64, strategy Strategy, frame Frame, cfg *FitConfigSet) (*Evaluation, error) {
	if frame != Structural && frame != WindNormal && frame != BothFrames {
		return nil, fmt.Errorf("%w: unknown frame %d", ErrUnsupported, int(frame))
	}
	q, err := foldAngles(betas, thetas)
	if err != nil {
		return nil, err
	}
	ev, err := strategy.evaluator()
	if err != nil {
		return nil, err
	}
	ls, err := ev.evaluate(tbl, q, cfg)
	if err != nil {
		return nil, err
	}

	out := &Evaluation{}
	if frame == Structural || frame == BothFrames {
		out.Structural = ls
	}
	if frame == WindNormal || frame == BothFrames {
		logger.Warnf("wind-normal frame output has not been carefully validated")
		// The rotation follows the caller's yaws, not the folded ones: the
		// wind-normal frame is attached to the true wind direction, and it
		// must see the sign-corrected structural values.
		skews := SkewAngles(q.origBetas, q.thetas)
		ops := RotationWindNormal(q.origBetas, skews)
		out.WindNormal = toWindNormal(ops, ls)
	}
	return out, nil
}
