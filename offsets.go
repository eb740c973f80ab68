package typedcrf

// span is a half-open [Start, End) interval into a flattened index space.
type span struct {
	Start, End int
}

// buildOffsets derives the three index tables every validation and scoring
// call reads: global label-range bounds per type, per-type slices into the
// concatenated feature space, and the start offset of each (type1, type2)
// pair in the flattened edge-state space. Called exactly once by NewSchema;
// the tables are never mutated afterwards.
func (s *Schema) buildOffsets() {
	nTypes := s.NumTypes()

	// Type t's valid global labels are [labelBounds[t], labelBounds[t+1]).
	s.labelBounds = make([]int, nTypes+1)
	for typ, n := range s.statesPerType {
		s.labelBounds[typ+1] = s.labelBounds[typ] + n
	}

	s.featureSlices = make([]span, nTypes)
	off := 0
	for typ, n := range s.featuresPerType {
		s.featureSlices[typ] = span{Start: off, End: off + n}
		off += n
	}

	// Edge-state offsets fill row-major over all ordered type pairs.
	s.edgePairOffsets = make([][]int, nTypes)
	start := 0
	for t1 := 0; t1 < nTypes; t1++ {
		s.edgePairOffsets[t1] = make([]int, nTypes)
		for t2 := 0; t2 < nTypes; t2++ {
			s.edgePairOffsets[t1][t2] = start
			start += s.statesPerType[t1] * s.statesPerType[t2]
		}
	}
	s.totalEdgeStates = start
}

// LabelBounds returns a copy of the cumulative label bounds: entry t is the
// first global label of type t, entry NumTypes() is TotalStates().
func (s *Schema) LabelBounds() []int {
	return append([]int(nil), s.labelBounds...)
}

// TypeLabelRange returns the half-open global label range [lo, hi) reserved
// for type typ.
func (s *Schema) TypeLabelRange(typ int) (lo, hi int) {
	return s.labelBounds[typ], s.labelBounds[typ+1]
}

// FeatureSlice returns the half-open interval [start, end) of type typ in
// the concatenated per-node feature space.
func (s *Schema) FeatureSlice(typ int) (start, end int) {
	sl := s.featureSlices[typ]
	return sl.Start, sl.End
}

// EdgePairOffset returns the start offset of the (t1, t2) edge-state block
// in the flattened edge-state space.
func (s *Schema) EdgePairOffset(t1, t2 int) int {
	return s.edgePairOffsets[t1][t2]
}

// TotalEdgeStates returns the size of the flattened edge-state space: the
// sum of EdgeStateCount over all ordered type pairs.
func (s *Schema) TotalEdgeStates() int {
	return s.totalEdgeStates
}

// TypeOfLabel returns the node type owning the given global label, or
// ok=false when the label lies outside the global label space.
func (s *Schema) TypeOfLabel(label int) (typ int, ok bool) {
	if label < 0 || label >= s.totalStates {
		return 0, false
	}
	for typ := 0; typ < s.NumTypes(); typ++ {
		if label < s.labelBounds[typ+1] {
			return typ, true
		}
	}
	return 0, false // unreachable, bounds end at totalStates
}
