package typedcrf

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// UnaryPotentials computes one score table per node type from the flat
// weight vector: table t has shape (node count of type t) x NumStates(t),
// entry (i, s) the dot product of node i's feature row with state s's
// weight row. The weight vector is read as NumTypes() consecutive
// (states x features) blocks, row-major by state, in type order.
//
// The instance is structurally re-validated; pass instances through
// ValidateInstance once up front to catch shape errors earlier. The result
// is freshly allocated on every call.
func (s *Schema) UnaryPotentials(x *Instance, w []float64) ([][][]float64, error) {
	if len(w) != s.sizeUnaryWeights {
		return nil, fmt.Errorf("%w: expected %d unary weights, got %d",
			ErrWeightSizeMismatch, s.sizeUnaryWeights, len(w))
	}
	if err := s.ValidateInstance(x); err != nil {
		return nil, err
	}

	potentials := make([][][]float64, s.NumTypes())
	wOff := 0
	for typ := 0; typ < s.NumTypes(); typ++ {
		nStates := s.statesPerType[typ]
		nFeatures := s.featuresPerType[typ]
		nNodes := x.NodeCount(typ)
		block := nStates * nFeatures

		potentials[typ] = scoreType(x.NodeFeatures[typ], w[wOff:wOff+block], nNodes, nStates, nFeatures)
		wOff += block
	}
	if wOff != s.sizeUnaryWeights {
		// Offsets are derived once at construction; ending anywhere else
		// is a schema bug, not bad input.
		panic(fmt.Sprintf("typedcrf: consumed %d of %d unary weights", wOff, s.sizeUnaryWeights))
	}
	return potentials, nil
}

// scoreType computes features (nodes x features) times the transpose of the
// weight block (states x features), giving a nodes x states table.
func scoreType(features [][]float64, wBlock []float64, nNodes, nStates, nFeatures int) [][]float64 {
	out := make([][]float64, nNodes)
	for i := range out {
		out[i] = make([]float64, nStates)
	}
	if nNodes == 0 || nFeatures == 0 {
		// Nothing to multiply; the correctly shaped zero table stands.
		return out
	}

	flat := make([]float64, 0, nNodes*nFeatures)
	for _, row := range features {
		flat = append(flat, row...)
	}
	f := mat.NewDense(nNodes, nFeatures, flat)
	wm := mat.NewDense(nStates, nFeatures, wBlock)

	var scores mat.Dense
	scores.Mul(f, wm.T())
	for i := 0; i < nNodes; i++ {
		copy(out[i], scores.RawRowView(i))
	}
	return out
}
