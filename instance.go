package typedcrf

// Edge connects a source node to a target node. Src and Dst are indices
// local to each endpoint type's node list, not global node numbers.
type Edge struct {
	Src int `json:"src"`
	Dst int `json:"dst"`
}

// Instance is one typed graph example: per-type node feature tables and
// per-type-pair edge lists. Instances are read-only to this package.
type Instance struct {
	// NodeFeatures holds one table per node type, table t of shape
	// (node count of type t) x (feature count of type t). A nil or empty
	// table means the instance has no nodes of that type.
	NodeFeatures [][][]float64 `json:"node_features"`

	// Edges holds NumTypes^2 edge lists, ordered row-major by
	// (source type, target type). A nil or empty list means the instance
	// has no edges of that type pair.
	Edges [][]Edge `json:"edges"`
}

// NodeCount returns the number of nodes of type typ in the instance.
func (x *Instance) NodeCount(typ int) int {
	if typ >= len(x.NodeFeatures) {
		return 0
	}
	return len(x.NodeFeatures[typ])
}

// TotalNodes returns the node count summed over all types.
func (x *Instance) TotalNodes() int {
	total := 0
	for typ := range x.NodeFeatures {
		total += len(x.NodeFeatures[typ])
	}
	return total
}

// EdgesBetween returns the instance's edge list from type t1 to type t2,
// which may be empty.
func (s *Schema) EdgesBetween(x *Instance, t1, t2 int) []Edge {
	i := t1*s.NumTypes() + t2
	if i >= len(x.Edges) {
		return nil
	}
	return x.Edges[i]
}
