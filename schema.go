// Package typedcrf implements the indexing and unary-potential core of a
// Conditional Random Field over graphs whose nodes belong to distinct types.
//
// Each node type carries its own number of label states and its own feature
// dimensionality. All labels live in one global index space in which every
// type owns a contiguous sub-range, and all unary weights live in one flat
// vector partitioned per type, row-major by state. A Schema freezes that
// layout at construction; instance validation, label validation and potential
// computation are pure functions against it.
//
//	s, _ := typedcrf.NewSchema([]int{2, 3}, []int{4, 6})
//	err := s.ValidateInstance(x)
//	pots, err := s.UnaryPotentials(x, w)
package typedcrf

import (
	"fmt"
	"strings"
)

// Schema describes the node types of a heterogeneous CRF: how many label
// states and input features each type has, and the per-type class weights.
// A Schema is immutable after NewSchema; its derived offset tables are safe
// for unsynchronized concurrent reads.
type Schema struct {
	statesPerType   []int
	featuresPerType []int
	classWeights    []float64 // per-type vectors concatenated in type order

	totalStates      int
	totalFeatures    int
	sizeUnaryWeights int
	totalEdgeStates  int

	// Offset tables, built once by buildOffsets.
	labelBounds     []int // len nTypes+1, cumulative states
	featureSlices   []span
	edgePairOffsets [][]int

	tolerateInferenceFailures bool
}

// SchemaOption configures optional Schema behavior at construction.
type SchemaOption func(*schemaOptions)

type schemaOptions struct {
	classWeights [][]float64
	tolerant     bool
}

// WithClassWeights supplies one class-weight vector per node type, each of
// length equal to that type's state count. Class weights must be given for
// all types or for none; when omitted they default to all-ones per type.
func WithClassWeights(weights [][]float64) SchemaOption {
	return func(o *schemaOptions) { o.classWeights = weights }
}

// WithTolerantInference marks the schema so that a downstream inference
// backend should tolerate inference failures instead of raising them.
// The toggle's state is only exposed here; its semantics belong to the
// inference integration.
func WithTolerantInference() SchemaOption {
	return func(o *schemaOptions) { o.tolerant = true }
}

// NewSchema builds a frozen type schema from the per-type state counts and
// feature dimensionalities. Both slices must have the same length (one entry
// per node type, at least one type); state counts must be positive and
// feature counts non-negative. Construction failures wrap ErrInvalidSchema.
func NewSchema(statesPerType, featuresPerType []int, opts ...SchemaOption) (*Schema, error) {
	var o schemaOptions
	for _, opt := range opts {
		opt(&o)
	}

	nTypes := len(statesPerType)
	if nTypes < 1 {
		return nil, fmt.Errorf("%w: expected at least one node type", ErrInvalidSchema)
	}
	if len(featuresPerType) != nTypes {
		return nil, fmt.Errorf("%w: expected one feature count per node type, got %d for %d types",
			ErrInvalidSchema, len(featuresPerType), nTypes)
	}
	for typ, n := range statesPerType {
		if n < 1 {
			return nil, fmt.Errorf("%w: type %d has %d states, want >= 1", ErrInvalidSchema, typ, n)
		}
	}
	for typ, n := range featuresPerType {
		if n < 0 {
			return nil, fmt.Errorf("%w: type %d has negative feature count %d", ErrInvalidSchema, typ, n)
		}
	}

	s := &Schema{
		statesPerType:             append([]int(nil), statesPerType...),
		featuresPerType:           append([]int(nil), featuresPerType...),
		tolerateInferenceFailures: o.tolerant,
	}
	for typ := 0; typ < nTypes; typ++ {
		s.totalStates += s.statesPerType[typ]
		s.totalFeatures += s.featuresPerType[typ]
		s.sizeUnaryWeights += s.statesPerType[typ] * s.featuresPerType[typ]
	}

	// Class weights are supplied for all types or for none.
	if o.classWeights != nil {
		if len(o.classWeights) != nTypes {
			return nil, fmt.Errorf("%w: expected one class weight vector per node type, got %d for %d types",
				ErrInvalidSchema, len(o.classWeights), nTypes)
		}
		for typ, cw := range o.classWeights {
			if len(cw) != s.statesPerType[typ] {
				return nil, fmt.Errorf("%w: expected one class weight per state for type %d, got %d for %d states",
					ErrInvalidSchema, typ, len(cw), s.statesPerType[typ])
			}
		}
		s.classWeights = make([]float64, 0, s.totalStates)
		for _, cw := range o.classWeights {
			s.classWeights = append(s.classWeights, cw...)
		}
	} else {
		s.classWeights = make([]float64, s.totalStates)
		for i := range s.classWeights {
			s.classWeights[i] = 1.0
		}
	}

	s.buildOffsets()
	return s, nil
}

// NumTypes returns the number of node types.
func (s *Schema) NumTypes() int {
	return len(s.statesPerType)
}

// NumStates returns the number of label states of type typ.
func (s *Schema) NumStates(typ int) int {
	return s.statesPerType[typ]
}

// NumFeatures returns the feature dimensionality of type typ.
func (s *Schema) NumFeatures(typ int) int {
	return s.featuresPerType[typ]
}

// TotalStates returns the size of the global label space.
func (s *Schema) TotalStates() int {
	return s.totalStates
}

// TotalFeatures returns the summed feature dimensionality over all types.
func (s *Schema) TotalFeatures() int {
	return s.totalFeatures
}

// SizeUnaryWeights returns the length of the flat unary weight vector:
// the sum over types of states x features.
func (s *Schema) SizeUnaryWeights() int {
	return s.sizeUnaryWeights
}

// EdgeStateCount returns the number of joint states of an edge from a
// type-t1 node to a type-t2 node.
func (s *Schema) EdgeStateCount(t1, t2 int) int {
	return s.statesPerType[t1] * s.statesPerType[t2]
}

// ClassWeights returns a copy of the per-type class weight vectors
// concatenated in type order (length TotalStates).
func (s *Schema) ClassWeights() []float64 {
	return append([]float64(nil), s.classWeights...)
}

// TolerateInferenceFailures reports whether a downstream inference backend
// should tolerate inference failures instead of raising them.
func (s *Schema) TolerateInferenceFailures() bool {
	return s.tolerateInferenceFailures
}

// SetTolerateInferenceFailures sets the inference-failure toggle and returns
// the new value. Call it before sharing the schema across goroutines.
func (s *Schema) SetTolerateInferenceFailures(tolerate bool) bool {
	s.tolerateInferenceFailures = tolerate
	return s.tolerateInferenceFailures
}

// String summarizes the schema for logs and debugging.
func (s *Schema) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Schema(types: %d, states: %v, features: %v", s.NumTypes(), s.statesPerType, s.featuresPerType)
	if s.tolerateInferenceFailures {
		b.WriteString(", tolerant inference")
	}
	b.WriteString(")")
	return b.String()
}
