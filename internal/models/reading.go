package models

// Reading is a single sparse vibration reading from a bearing sensor.
// Only the peak magnitude is used; any other fields the sensor sends are
// ignored, and a missing peak defaults to zero.
type Reading struct {
	VibrationPeakG float64 `json:"vibration_peak_g"`
}

// FeatureRecord is the fixed-shape numeric row handed to the trained model.
// The values are synthesized from a single peak reading rather than computed
// over a real sample window; see internal/features.
type FeatureRecord struct {
	MeanBearing1 float64 `json:"mean_bearing_1"`
	StdBearing1  float64 `json:"std_bearing_1"`
	MaxBearing1  float64 `json:"max_bearing_1"`
	MinBearing1  float64 `json:"min_bearing_1"`
}

// Row returns the record keyed by the column names the model was trained on.
func (f FeatureRecord) Row() map[string]float64 {
	return map[string]float64{
		"mean_bearing_1": f.MeanBearing1,
		"std_bearing_1":  f.StdBearing1,
		"max_bearing_1":  f.MaxBearing1,
		"min_bearing_1":  f.MinBearing1,
	}
}
