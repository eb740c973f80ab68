package typedcrf

// InstanceBuilder accumulates typed nodes and edges and produces an
// Instance laid out the way the schema expects: one feature table per type
// and one edge list per ordered type pair, row-major. The builder does not
// validate; run the result through Schema.ValidateInstance.
type InstanceBuilder struct {
	nTypes       int
	nodeFeatures [][][]float64
	edges        [][]Edge
}

// NewInstanceBuilder creates a builder for a graph under the given schema.
func NewInstanceBuilder(s *Schema) *InstanceBuilder {
	n := s.NumTypes()
	return &InstanceBuilder{
		nTypes:       n,
		nodeFeatures: make([][][]float64, n),
		edges:        make([][]Edge, n*n),
	}
}

// AddNode appends a node of the given type and returns its type-local
// index, the index edges use to reference it.
func (b *InstanceBuilder) AddNode(typ int, features []float64) int {
	b.nodeFeatures[typ] = append(b.nodeFeatures[typ], features)
	return len(b.nodeFeatures[typ]) - 1
}

// AddEdge records an edge from node src of type t1 to node dst of type t2,
// both indices type-local as returned by AddNode.
func (b *InstanceBuilder) AddEdge(t1, t2, src, dst int) {
	i := t1*b.nTypes + t2
	b.edges[i] = append(b.edges[i], Edge{Src: src, Dst: dst})
}

// Build returns the accumulated instance. The instance shares storage with
// the builder; do not keep adding to the builder after Build.
func (b *InstanceBuilder) Build() *Instance {
	return &Instance{
		NodeFeatures: b.nodeFeatures,
		Edges:        b.edges,
	}
}
