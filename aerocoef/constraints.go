package aerocoef

// EdgeCoord positions a constraint along one axis of the fit domain.
type EdgeCoord int

const (
	// FullRange means the condition holds along the whole axis.
	FullRange EdgeCoord = iota
	AtStart
	AtMiddle
	AtEnd
)

// ConstraintKind selects what a boundary constraint pins: the surface value
// or one of its first partial derivatives.
type ConstraintKind int

const (
	ValueIs      ConstraintKind = iota // F = Value
	BetaSlopeIs                        // dF/dyaw = Value
	ThetaSlopeIs                       // dF/dtheta = Value
)

// BoundaryConstraint pins the fitted surface, or its first partial
// derivative, at a domain edge, corner or midpoint. Leaving one axis at
// FullRange makes it an edge condition; fixing both makes it a point
// condition.
type BoundaryConstraint struct {
	Kind  ConstraintKind
	Beta  EdgeCoord
	Theta EdgeCoord
	Value float64
}

// ValueAt is the value condition F(at) = v.
func ValueAt(beta, theta EdgeCoord, v float64) BoundaryConstraint {
	return BoundaryConstraint{Kind: ValueIs, Beta: beta, Theta: theta, Value: v}
}

// FlatInBeta is the slope condition dF/dyaw(at) = 0, used to continue the
// surface smoothly through the fold boundaries.
func FlatInBeta(beta, theta EdgeCoord) BoundaryConstraint {
	return BoundaryConstraint{Kind: BetaSlopeIs, Beta: beta, Theta: theta}
}

// coordNodes expands an edge coordinate into sample positions in the
// normalized [0,1] axis. A FullRange condition is enforced at degree+1
// uniform nodes, which pins the restricted edge polynomial completely.
func coordNodes(c EdgeCoord, degree int) []float64 {
	switch c {
	case AtStart:
		return []float64{0}
	case AtMiddle:
		return []float64{0.5}
	case AtEnd:
		return []float64{1}
	default:
		k := degree + 1
		nodes := make([]float64, k)
		for i := range nodes {
			nodes[i] = float64(i) / float64(k-1)
		}
		return nodes
	}
}
