package typedcrf

import "errors"

// Sentinel errors returned by schema construction, validation and scoring.
// Callers match them with errors.Is; messages returned by the package wrap
// these with per-call context.
var (
	// ErrInvalidSchema reports a malformed type schema at construction:
	// length mismatches between the per-type sequences, or class weights
	// supplied for some types but not all.
	ErrInvalidSchema = errors.New("typedcrf: invalid schema")

	// ErrStructuralMismatch reports an instance whose node-feature or edge
	// tables disagree with the schema's declared shapes.
	ErrStructuralMismatch = errors.New("typedcrf: structural mismatch")

	// ErrDanglingEdge reports an edge referencing a negative or
	// out-of-range node index for its endpoint type.
	ErrDanglingEdge = errors.New("typedcrf: dangling edge")

	// ErrLabelCountMismatch reports a label vector whose length differs
	// from the instance's total node count.
	ErrLabelCountMismatch = errors.New("typedcrf: label count mismatch")

	// ErrInconsistentLabel reports a label outside its node type's reserved
	// sub-range of the global label space.
	ErrInconsistentLabel = errors.New("typedcrf: inconsistent label")

	// ErrWeightSizeMismatch reports a weight vector whose length differs
	// from the schema's unary weight size.
	ErrWeightSizeMismatch = errors.New("typedcrf: weight size mismatch")
)
