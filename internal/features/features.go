package features

import (
	"bearingml/internal/models"
)

// defaultStd is the placeholder standard deviation used for every record,
// since a single reading carries no spread information.
const defaultStd = 0.1

// Multipliers approximating the window max/min from a single peak value.
const (
	maxFactor = 1.2
	minFactor = 0.8
)

// Synthesize builds the fixed-shape feature record the model was trained on
// from a single sparse reading. The mean/max/min values are fixed-multiplier
// approximations of windowed statistics, not real aggregates; the formula
// matches what the model saw during training and must not be changed without
// retraining.
func Synthesize(reading models.Reading) models.FeatureRecord {
	peak := reading.VibrationPeakG
	return models.FeatureRecord{
		MeanBearing1: peak,
		StdBearing1:  defaultStd,
		MaxBearing1:  peak * maxFactor,
		MinBearing1:  peak * minFactor,
	}
}
