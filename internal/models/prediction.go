package models

// Regression status values reported to callers.
const (
	StatusNormal   = "Normal"
	StatusCritical = "Critical"
	StatusUnknown  = "Unknown"
	StatusError    = "Error"
)

// Confidence levels reported in the classification block.
const (
	ConfidenceHigh = "High"
	ConfidenceLow  = "Low"
)

// Classification is the failure-classification block of a prediction.
type Classification struct {
	WillFailSoon       bool    `json:"will_fail_soon"`
	FailureProbability float64 `json:"failure_probability"`
	Confidence         string  `json:"confidence"`
	ThresholdMinutes   int     `json:"threshold_minutes,omitempty"`
}

// Regression is the time-to-failure estimate block of a prediction.
type Regression struct {
	MinutesToFailure int    `json:"minutes_to_failure"`
	HoursToFailure   int    `json:"hours_to_failure"`
	Status           string `json:"status"`
}

// PredictionResult is the full prediction payload returned to callers.
// Timestamp and ReadingsUsed are only set on successful model invocations;
// Error is only set on degraded results.
type PredictionResult struct {
	Error          string         `json:"error,omitempty"`
	Classification Classification `json:"classification"`
	Regression     Regression     `json:"regression"`
	Timestamp      string         `json:"timestamp,omitempty"`
	ReadingsUsed   int            `json:"readings_used,omitempty"`
}
