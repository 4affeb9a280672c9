package aerocoef

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"
)

// DegreeType selects the polynomial basis: every term with total degree up
// to d, or the full tensor basis with each exponent up to d.
type DegreeType int

const (
	TotalDegree DegreeType = iota
	MaxDegree
)

// Inequality restricts the sign of the fitted surface over the whole fit
// domain.
type Inequality int

const (
	NoInequality Inequality = iota
	Positivity
	Negativity
)

// Bounds is the fit domain, [min,max] per axis, yaw first. Fits are solved
// in coordinates normalized to [0,1]^2 over these bounds.
type Bounds struct {
	Beta  [2]float64
	Theta [2]float64
}

// DefaultBounds covers the canonical quadrant: yaw in [0,90] deg, theta in
// [-90,90] deg.
func DefaultBounds() Bounds {
	return Bounds{
		Beta:  [2]float64{0, math.Pi / 2},
		Theta: [2]float64{-math.Pi / 2, math.Pi / 2},
	}
}

func (b Bounds) normalize(beta, theta float64) (u, v float64) {
	u = (beta - b.Beta[0]) / (b.Beta[1] - b.Beta[0])
	v = (theta - b.Theta[0]) / (b.Theta[1] - b.Theta[0])
	return u, v
}

// FitOptions selects the minimizer used when an inequality constraint forces
// a nonlinear solve, and optionally seeds it.
type FitOptions struct {
	Solver    string // "bfgs" (default) or "neldermead"
	InitGuess []float64
}

// term is one monomial u^i * v^j of the basis.
type term struct {
	i, j int
}

func basisTerms(degree int, dt DegreeType) []term {
	var terms []term
	for i := 0; i <= degree; i++ {
		for j := 0; j <= degree; j++ {
			if dt == TotalDegree && i+j > degree {
				continue
			}
			terms = append(terms, term{i, j})
		}
	}
	return terms
}

func evalTerms(terms []term, u, v float64) []float64 {
	row := make([]float64, len(terms))
	for k, t := range terms {
		row[k] = math.Pow(u, float64(t.i)) * math.Pow(v, float64(t.j))
	}
	return row
}

func evalTermsDU(terms []term, u, v float64) []float64 {
	row := make([]float64, len(terms))
	for k, t := range terms {
		if t.i == 0 {
			continue
		}
		row[k] = float64(t.i) * math.Pow(u, float64(t.i-1)) * math.Pow(v, float64(t.j))
	}
	return row
}

func evalTermsDV(terms []term, u, v float64) []float64 {
	row := make([]float64, len(terms))
	for k, t := range terms {
		if t.j == 0 {
			continue
		}
		row[k] = math.Pow(u, float64(t.i)) * float64(t.j) * math.Pow(v, float64(t.j-1))
	}
	return row
}

// ConsPolyFit fits a 2D polynomial surface to scattered samples and
// evaluates it at the query points. With no constraints this is an ordinary
// least-squares fit. Equality constraints are eliminated exactly through the
// nullspace of the constraint system; an inequality constraint triggers a
// penalized nonlinear solve seeded with the equality-constrained solution.
func ConsPolyFit(dataBetas, dataThetas, dataVals, queryBetas, queryThetas []float64,
	bounds Bounds, degree int, ineq Inequality, cons []BoundaryConstraint,
	dt DegreeType, opts *FitOptions) ([]float64, error) {

	if len(dataBetas) != len(dataThetas) || len(dataBetas) != len(dataVals) {
		return nil, fmt.Errorf("%w: sample columns have lengths %d, %d and %d",
			ErrShape, len(dataBetas), len(dataThetas), len(dataVals))
	}
	if len(queryBetas) != len(queryThetas) {
		return nil, fmt.Errorf("%w: query columns have lengths %d and %d",
			ErrShape, len(queryBetas), len(queryThetas))
	}
	if degree < 1 {
		return nil, fmt.Errorf("%w: polynomial degree %d", ErrUnsupported, degree)
	}

	terms := basisTerms(degree, dt)
	n := len(dataVals)
	V := mat.NewDense(n, len(terms), nil)
	for r := 0; r < n; r++ {
		u, v := bounds.normalize(dataBetas[r], dataThetas[r])
		V.SetRow(r, evalTerms(terms, u, v))
	}
	y := mat.NewVecDense(n, append([]float64{}, dataVals...))

	var (
		coef *mat.VecDense
		A    *mat.Dense
		b    *mat.VecDense
		err  error
	)
	if len(cons) == 0 {
		coef, err = lstsq(V, y)
	} else {
		A, b, err = constraintSystem(cons, terms, degree, bounds)
		if err == nil {
			coef, err = constrainedLstsq(V, y, A, b)
		}
	}
	if err != nil {
		return nil, err
	}

	if ineq != NoInequality {
		coef, err = enforceInequality(V, y, A, b, terms, ineq, coef, opts)
		if err != nil {
			return nil, err
		}
	}

	out := make([]float64, len(queryBetas))
	raw := coef.RawVector().Data
	for i := range out {
		u, v := bounds.normalize(queryBetas[i], queryThetas[i])
		out[i] = floats.Dot(evalTerms(terms, u, v), raw)
	}
	return out, nil
}

// constraintSystem expands the boundary constraints into linear equations on
// the basis coefficients, in normalized coordinates. Slope values given in
// physical angle units are rescaled by the axis span.
func constraintSystem(cons []BoundaryConstraint, terms []term, degree int, bounds Bounds) (*mat.Dense, *mat.VecDense, error) {
	var rows [][]float64
	var rhs []float64
	betaSpan := bounds.Beta[1] - bounds.Beta[0]
	thetaSpan := bounds.Theta[1] - bounds.Theta[0]

	for _, con := range cons {
		for _, u := range coordNodes(con.Beta, degree) {
			for _, v := range coordNodes(con.Theta, degree) {
				var row []float64
				val := con.Value
				switch con.Kind {
				case ValueIs:
					row = evalTerms(terms, u, v)
				case BetaSlopeIs:
					row = evalTermsDU(terms, u, v)
					val *= betaSpan
				case ThetaSlopeIs:
					row = evalTermsDV(terms, u, v)
					val *= thetaSpan
				default:
					return nil, nil, fmt.Errorf("%w: unknown constraint kind %d",
						ErrUnsupported, int(con.Kind))
				}
				rows = append(rows, row)
				rhs = append(rhs, val)
			}
		}
	}

	A := mat.NewDense(len(rows), len(terms), nil)
	for r, row := range rows {
		A.SetRow(r, row)
	}
	return A, mat.NewVecDense(len(rhs), rhs), nil
}

// lstsq solves min ||Ax-y|| through the SVD. Rank deficiency is tolerated
// (zero-yaw slices make pure-theta data degenerate in yaw) by dropping the
// vanishing singular directions, which yields the minimum-norm solution.
func lstsq(A *mat.Dense, y *mat.VecDense) (*mat.VecDense, error) {
	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDThin); !ok {
		return nil, fmt.Errorf("polyfit: SVD factorization failed")
	}
	return svdSolve(&svd, y), nil
}

func svdSolve(svd *mat.SVD, y *mat.VecDense) *mat.VecDense {
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)
	s := svd.Values(nil)

	tol := svdTol(s)
	w := mat.NewVecDense(len(s), nil)
	var col []float64
	for i, sv := range s {
		if sv <= tol {
			continue
		}
		col = mat.Col(col, i, &u)
		w.SetVec(i, floats.Dot(col, y.RawVector().Data)/sv)
	}
	x := mat.NewVecDense(v.RawMatrix().Rows, nil)
	x.MulVec(&v, w)
	return x
}

func svdTol(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return s[0] * 1e-12 * float64(len(s))
}

// constrainedLstsq solves min ||Vx-y|| subject to Ax = b. Constraint rows
// are frequently redundant (edge conditions share corners), so the system is
// reduced through a full SVD of A: a particular solution from the
// pseudoinverse plus an unconstrained least squares over the nullspace.
func constrainedLstsq(V *mat.Dense, y *mat.VecDense, A *mat.Dense, b *mat.VecDense) (*mat.VecDense, error) {
	_, m := V.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(A, mat.SVDFull); !ok {
		return nil, fmt.Errorf("polyfit: SVD factorization of the constraint system failed")
	}
	var ua, va mat.Dense
	svd.UTo(&ua)
	svd.VTo(&va)
	s := svd.Values(nil)
	tol := svdTol(s)

	rank := 0
	for _, sv := range s {
		if sv > tol {
			rank++
		}
	}

	// Particular solution x0 = pinv(A) b.
	w := mat.NewVecDense(m, nil)
	var col []float64
	for i := 0; i < rank; i++ {
		col = mat.Col(col, i, &ua)
		w.SetVec(i, floats.Dot(col, b.RawVector().Data)/s[i])
	}
	x0 := mat.NewVecDense(m, nil)
	x0.MulVec(&va, w)

	if rank >= m {
		// Constraints determine the surface completely.
		return x0, nil
	}

	// Unconstrained directions: the trailing right-singular vectors.
	z := va.Slice(0, m, rank, m).(*mat.Dense)

	var B mat.Dense
	B.Mul(V, z)
	n, _ := V.Dims()
	resid := mat.NewVecDense(n, nil)
	resid.MulVec(V, x0)
	resid.SubVec(y, resid)

	t, err := lstsq(&B, resid)
	if err != nil {
		return nil, err
	}
	x := mat.NewVecDense(m, nil)
	x.MulVec(z, t)
	x.AddVec(x, x0)
	return x, nil
}

// ineqGridN is the sampling density used to check and penalize sign
// violations over the fit domain.
const ineqGridN = 21

// enforceInequality checks the fitted surface on a dense normalized grid
// and, if the sign restriction is violated, re-solves with a quadratic
// penalty on the violations and on the equality constraints, using the
// configured minimizer.
func enforceInequality(V *mat.Dense, y *mat.VecDense, A *mat.Dense, b *mat.VecDense,
	terms []term, ineq Inequality, start *mat.VecDense, opts *FitOptions) (*mat.VecDense, error) {

	m := len(terms)
	grid := make([][]float64, 0, ineqGridN*ineqGridN)
	for i := 0; i < ineqGridN; i++ {
		for j := 0; j < ineqGridN; j++ {
			u := float64(i) / (ineqGridN - 1)
			v := float64(j) / (ineqGridN - 1)
			grid = append(grid, evalTerms(terms, u, v))
		}
	}

	sign := 1.0
	if ineq == Negativity {
		sign = -1.0
	}
	violated := func(x []float64) bool {
		for _, row := range grid {
			if sign*floats.Dot(row, x) < -1e-9 {
				return true
			}
		}
		return false
	}
	if !violated(start.RawVector().Data) {
		return start, nil
	}

	nV, _ := V.Dims()
	const penalty = 1e6
	objective := func(x []float64) float64 {
		sum := 0.0
		for r := 0; r < nV; r++ {
			d := floats.Dot(V.RawRowView(r), x) - y.AtVec(r)
			sum += d * d
		}
		if A != nil {
			nA, _ := A.Dims()
			for r := 0; r < nA; r++ {
				d := floats.Dot(A.RawRowView(r), x) - b.AtVec(r)
				sum += penalty * d * d
			}
		}
		for _, row := range grid {
			if f := sign * floats.Dot(row, x); f < 0 {
				sum += penalty * f * f
			}
		}
		return sum
	}
	gradient := func(grad, x []float64) {
		for k := range grad {
			grad[k] = 0
		}
		for r := 0; r < nV; r++ {
			d := floats.Dot(V.RawRowView(r), x) - y.AtVec(r)
			floats.AddScaled(grad, 2*d, V.RawRowView(r))
		}
		if A != nil {
			nA, _ := A.Dims()
			for r := 0; r < nA; r++ {
				d := floats.Dot(A.RawRowView(r), x) - b.AtVec(r)
				floats.AddScaled(grad, 2*penalty*d, A.RawRowView(r))
			}
		}
		for _, row := range grid {
			if f := sign * floats.Dot(row, x); f < 0 {
				floats.AddScaled(grad, 2*penalty*f*sign, row)
			}
		}
	}

	init := append([]float64{}, start.RawVector().Data...)
	solver := "bfgs"
	if opts != nil {
		if len(opts.InitGuess) == m {
			init = append([]float64{}, opts.InitGuess...)
		}
		if opts.Solver != "" {
			solver = opts.Solver
		}
	}
	var method optimize.Method
	switch solver {
	case "bfgs":
		method = &optimize.BFGS{}
	case "neldermead":
		method = &optimize.NelderMead{}
	default:
		return nil, fmt.Errorf("%w: unknown solver %q", ErrUnsupported, solver)
	}

	problem := optimize.Problem{Func: objective, Grad: gradient}
	result, err := optimize.Minimize(problem, init, nil, method)
	if err != nil {
		return nil, fmt.Errorf("polyfit: inequality solve: %w", err)
	}
	return mat.NewVecDense(m, result.X), nil
}

// fit1D fits a 1D polynomial to samples on one axis and returns an
// evaluator. The cosine-rule model uses this for the zero-yaw slice across
// theta.
func fit1D(xs, ys []float64, degree int, bounds [2]float64) (func(x float64) float64, error) {
	if len(xs) != len(ys) {
		return nil, fmt.Errorf("%w: sample columns have lengths %d and %d",
			ErrShape, len(xs), len(ys))
	}
	m := degree + 1
	span := bounds[1] - bounds[0]
	V := mat.NewDense(len(xs), m, nil)
	for r, x := range xs {
		u := (x - bounds[0]) / span
		row := make([]float64, m)
		for k := 0; k < m; k++ {
			row[k] = math.Pow(u, float64(k))
		}
		V.SetRow(r, row)
	}
	y := mat.NewVecDense(len(ys), append([]float64{}, ys...))
	coef, err := lstsq(V, y)
	if err != nil {
		return nil, err
	}
	raw := append([]float64{}, coef.RawVector().Data...)
	return func(x float64) float64 {
		u := (x - bounds[0]) / span
		sum := 0.0
		for k := len(raw) - 1; k >= 0; k-- {
			sum = sum*u + raw[k]
		}
		return sum
	}, nil
}
