package aerocoef

import "errors"

// Error taxonomy. All entry points fail fast with one of these; there is no
// partial result across coefficient channels.
var (
	// ErrAngleRange flags a query angle outside the admissible interval
	// (yaw in [-180,180] deg, theta in [-90,90] deg, both in radians).
	ErrAngleRange = errors.New("angle out of range")

	// ErrShape flags mismatched input sequences.
	ErrShape = errors.New("invalid input shape")

	// ErrUnsupported flags an unknown strategy, frame or solver token, or a
	// missing per-channel fit configuration.
	ErrUnsupported = errors.New("unsupported configuration")
)
