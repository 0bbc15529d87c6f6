package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Categorical labels produced by the classifier.
const (
	LabelNormal  = 0
	LabelFailure = 1
)

// Model is a serialized linear classifier over named feature columns.
// Columns fixes both the names and the order the model was trained with;
// input rows must provide every column.
type Model struct {
	Columns   []string           `json:"columns"`
	Weights   map[string]float64 `json:"weights"`
	Intercept float64            `json:"intercept"`
	Threshold float64            `json:"threshold"`
}

// LoadModel reads and parses a model artifact from disk.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read model file: %w", err)
	}

	var model Model
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model: %w", err)
	}

	if len(model.Columns) == 0 {
		return nil, fmt.Errorf("model artifact has no feature columns")
	}
	for _, col := range model.Columns {
		if _, ok := model.Weights[col]; !ok {
			return nil, fmt.Errorf("model artifact missing weight for column %q", col)
		}
	}

	return &model, nil
}

// Predict returns the categorical label for a single feature row: LabelFailure
// when the linear score reaches the decision threshold, LabelNormal otherwise.
// A column the model was trained on but absent from the row is an error.
func (m *Model) Predict(row map[string]float64) (int, error) {
	score := m.Intercept
	for _, col := range m.Columns {
		value, ok := row[col]
		if !ok {
			return 0, fmt.Errorf("feature column %q missing from input", col)
		}
		score += m.Weights[col] * value
	}

	if score >= m.Threshold {
		return LabelFailure, nil
	}
	return LabelNormal, nil
}

// CreateSampleModel writes a usable demo artifact for local development.
// The weights make readings with a vibration peak above roughly 4.3g
// classify as failing.
func CreateSampleModel(path string) error {
	model := Model{
		Columns: []string{
			"mean_bearing_1",
			"std_bearing_1",
			"max_bearing_1",
			"min_bearing_1",
		},
		Weights: map[string]float64{
			"mean_bearing_1": 0.5,
			"std_bearing_1":  1.0,
			"max_bearing_1":  0.4,
			"min_bearing_1":  0.2,
		},
		Intercept: 0.0,
		Threshold: 5.0,
	}

	data, err := json.MarshalIndent(model, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write model file: %w", err)
	}

	return nil
}
