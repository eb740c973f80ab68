package typedcrf

import (
	"fmt"
	"log/slog"
)

// ValidateInstance checks that an instance's shapes agree with the schema
// and that every edge references existing nodes. It never mutates the
// instance; a nil return means the instance is structurally valid.
func (s *Schema) ValidateInstance(x *Instance) error {
	nTypes := s.NumTypes()

	if len(x.NodeFeatures) != nTypes {
		return fmt.Errorf("%w: expected one node feature table per node type, got %d for %d types",
			ErrStructuralMismatch, len(x.NodeFeatures), nTypes)
	}
	for typ, table := range x.NodeFeatures {
		want := s.featuresPerType[typ]
		for i, row := range table {
			if len(row) != want {
				return fmt.Errorf("%w: expected %d features for type %d, got %d at node %d",
					ErrStructuralMismatch, want, typ, len(row), i)
			}
		}
	}

	if len(x.Edges) != 0 && len(x.Edges) != nTypes*nTypes {
		return fmt.Errorf("%w: expected %d edge lists (one per ordered type pair), got %d",
			ErrStructuralMismatch, nTypes*nTypes, len(x.Edges))
	}

	for t1 := 0; t1 < nTypes; t1++ {
		for t2 := 0; t2 < nTypes; t2++ {
			n1, n2 := x.NodeCount(t1), x.NodeCount(t2)
			for _, e := range s.EdgesBetween(x, t1, t2) {
				if e.Src < 0 || e.Dst < 0 {
					return fmt.Errorf("%w: negative node index on edge (%d, %d): type %d to type %d",
						ErrDanglingEdge, e.Src, e.Dst, t1, t2)
				}
				if e.Src >= n1 {
					return fmt.Errorf("%w: edge starts at non-existing node %d of type %d (%d nodes): type %d to type %d",
						ErrDanglingEdge, e.Src, t1, n1, t1, t2)
				}
				if e.Dst >= n2 {
					return fmt.Errorf("%w: edge points to non-existing node %d of type %d (%d nodes): type %d to type %d",
						ErrDanglingEdge, e.Dst, t2, n2, t1, t2)
				}
			}
		}
	}
	return nil
}

// ValidateLabels checks that the label vector has one global-space label per
// node, concatenated in type order, and that every node's label falls inside
// its own type's reserved label range.
func (s *Schema) ValidateLabels(x *Instance, labels []int) error {
	total := x.TotalNodes()
	if len(labels) != total {
		return fmt.Errorf("%w: expected 1 label for each of the %d nodes, got %d labels",
			ErrLabelCountMismatch, total, len(labels))
	}

	start := 0
	for typ := 0; typ < s.NumTypes(); typ++ {
		n := x.NodeCount(typ)
		run := labels[start : start+n]
		lo, hi := s.TypeLabelRange(typ)
		for i, y := range run {
			if y < 0 {
				return fmt.Errorf("%w: got negative label %d for type %d at node %d",
					ErrInconsistentLabel, y, typ, i)
			}
			if y < lo || y >= hi {
				return fmt.Errorf("%w: labels of type %d lie in [%d, %d), got %d at node %d",
					ErrInconsistentLabel, typ, lo, hi, y, i)
			}
		}
		start += n
	}
	return nil
}

// Initialize validates a batch of instances, and their label vectors where
// given, in one pass. labelSets may be nil, or contain nil entries for
// unlabeled instances; otherwise it must parallel instances. The first
// failure is returned wrapped with the offending instance's index.
func (s *Schema) Initialize(instances []*Instance, labelSets [][]int) error {
	if labelSets != nil && len(labelSets) != len(instances) {
		return fmt.Errorf("%w: expected one label vector per instance, got %d for %d instances",
			ErrLabelCountMismatch, len(labelSets), len(instances))
	}
	for i, x := range instances {
		if err := s.ValidateInstance(x); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
		if labelSets == nil || labelSets[i] == nil {
			continue
		}
		if err := s.ValidateLabels(x, labelSets[i]); err != nil {
			return fmt.Errorf("instance %d: %w", i, err)
		}
	}
	slog.Debug("typedcrf batch validated", "instances", len(instances), "types", s.NumTypes())
	return nil
}
