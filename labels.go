package typedcrf

import "fmt"

// FlattenLabels converts per-type label runs, each numbered locally from 0,
// into one global-space label vector in type order. It is the inverse of
// SplitLabels. Local labels outside [0, NumStates(typ)) are rejected.
func (s *Schema) FlattenLabels(perType [][]int) ([]int, error) {
	nTypes := s.NumTypes()
	if len(perType) != nTypes {
		return nil, fmt.Errorf("%w: expected one label run per node type, got %d for %d types",
			ErrLabelCountMismatch, len(perType), nTypes)
	}

	total := 0
	for _, run := range perType {
		total += len(run)
	}
	flat := make([]int, 0, total)
	for typ, run := range perType {
		lo, _ := s.TypeLabelRange(typ)
		for i, y := range run {
			if y < 0 || y >= s.statesPerType[typ] {
				return nil, fmt.Errorf("%w: local labels of type %d lie in [0, %d), got %d at node %d",
					ErrInconsistentLabel, typ, s.statesPerType[typ], y, i)
			}
			flat = append(flat, lo+y)
		}
	}
	return flat, nil
}

// SplitLabels converts a global-space label vector for the given instance
// into per-type runs numbered locally from 0. The vector is validated with
// ValidateLabels before splitting.
func (s *Schema) SplitLabels(x *Instance, labels []int) ([][]int, error) {
	if err := s.ValidateLabels(x, labels); err != nil {
		return nil, err
	}

	perType := make([][]int, s.NumTypes())
	start := 0
	for typ := 0; typ < s.NumTypes(); typ++ {
		n := x.NodeCount(typ)
		lo, _ := s.TypeLabelRange(typ)
		run := make([]int, n)
		for i, y := range labels[start : start+n] {
			run[i] = y - lo
		}
		perType[typ] = run
		start += n
	}
	return perType, nil
}
