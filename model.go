package typedcrf

import (
	"encoding/json"
	"fmt"
	"os"
)

// Model pairs a schema with the flat unary weight vector it indexes.
// Weights are held by reference; training loops may swap in fresh vectors
// of the same length between scoring calls.
type Model struct {
	Schema  *Schema
	Weights []float64
}

// NewModel binds a weight vector to a schema, rejecting vectors whose
// length differs from the schema's unary weight size.
func NewModel(s *Schema, weights []float64) (*Model, error) {
	if len(weights) != s.SizeUnaryWeights() {
		return nil, fmt.Errorf("%w: expected %d unary weights, got %d",
			ErrWeightSizeMismatch, s.SizeUnaryWeights(), len(weights))
	}
	return &Model{Schema: s, Weights: weights}, nil
}

// UnaryPotentials scores the instance with the model's current weights.
func (m *Model) UnaryPotentials(x *Instance) ([][][]float64, error) {
	return m.Schema.UnaryPotentials(x, m.Weights)
}

// modelJSON is the serialized form: the schema's construction inputs plus
// the weights. Derived offset tables are rebuilt on load, not stored.
type modelJSON struct {
	StatesPerType   []int       `json:"states_per_type"`
	FeaturesPerType []int       `json:"features_per_type"`
	ClassWeights    [][]float64 `json:"class_weights,omitempty"`
	Tolerant        bool        `json:"tolerant_inference,omitempty"`
	Weights         []float64   `json:"weights"`
}

// MarshalModel serializes the model to JSON bytes.
func MarshalModel(m *Model) ([]byte, error) {
	s := m.Schema
	mj := modelJSON{
		StatesPerType:   append([]int(nil), s.statesPerType...),
		FeaturesPerType: append([]int(nil), s.featuresPerType...),
		Tolerant:        s.tolerateInferenceFailures,
		Weights:         m.Weights,
	}
	if !s.hasDefaultClassWeights() {
		mj.ClassWeights = make([][]float64, s.NumTypes())
		for typ := 0; typ < s.NumTypes(); typ++ {
			lo, hi := s.TypeLabelRange(typ)
			mj.ClassWeights[typ] = append([]float64(nil), s.classWeights[lo:hi]...)
		}
	}
	return json.MarshalIndent(mj, "", "  ")
}

// UnmarshalModel deserializes a model from JSON bytes, rebuilding and
// re-validating the schema and its offset tables through NewSchema.
func UnmarshalModel(data []byte) (*Model, error) {
	var mj modelJSON
	if err := json.Unmarshal(data, &mj); err != nil {
		return nil, err
	}
	var opts []SchemaOption
	if mj.ClassWeights != nil {
		opts = append(opts, WithClassWeights(mj.ClassWeights))
	}
	if mj.Tolerant {
		opts = append(opts, WithTolerantInference())
	}
	s, err := NewSchema(mj.StatesPerType, mj.FeaturesPerType, opts...)
	if err != nil {
		return nil, err
	}
	return NewModel(s, mj.Weights)
}

// SaveModel serializes the model to a JSON file.
func SaveModel(m *Model, path string) error {
	data, err := MarshalModel(m)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadModel deserializes a model from a JSON file.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return UnmarshalModel(data)
}

func (s *Schema) hasDefaultClassWeights() bool {
	for _, w := range s.classWeights {
		if w != 1.0 {
			return false
		}
	}
	return true
}
