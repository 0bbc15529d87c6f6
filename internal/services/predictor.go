package services

import (
	"time"

	"go.uber.org/zap"

	"bearingml/internal/features"
	"bearingml/internal/models"
)

// Classifier is the categorical predict operation of a loaded model.
type Classifier interface {
	Predict(row map[string]float64) (int, error)
}

// outcome is the enumerated categorical result of a model invocation.
type outcome int

const (
	outcomeNormal outcome = iota
	outcomeFailure
)

// failureLabel is the model label meaning "will fail"; every other label is
// treated as normal.
const failureLabel = 1

func outcomeOf(label int) outcome {
	if label == failureLabel {
		return outcomeFailure
	}
	return outcomeNormal
}

// resultTemplate is a fixed payload pair for one outcome.
type resultTemplate struct {
	classification models.Classification
	regression     models.Regression
}

var outcomeTemplates = map[outcome]resultTemplate{
	outcomeFailure: {
		classification: models.Classification{
			WillFailSoon:       true,
			FailureProbability: 0.85,
			Confidence:         models.ConfidenceHigh,
			ThresholdMinutes:   60,
		},
		regression: models.Regression{
			MinutesToFailure: 1440, // 24 hours
			HoursToFailure:   24,
			Status:           models.StatusCritical,
		},
	},
	outcomeNormal: {
		classification: models.Classification{
			WillFailSoon:       false,
			FailureProbability: 0.15,
			Confidence:         models.ConfidenceHigh,
			ThresholdMinutes:   60,
		},
		regression: models.Regression{
			MinutesToFailure: 43200, // 30 days
			HoursToFailure:   720,
			Status:           models.StatusNormal,
		},
	},
}

// Placeholder estimate reported when no real prediction is available.
const (
	degradedMinutes = 999999
	degradedHours   = 16666
)

var degradedClassification = models.Classification{
	WillFailSoon:       false,
	FailureProbability: 0.0,
	Confidence:         models.ConfidenceLow,
}

// Predictor maps a sparse vibration reading to a bearing failure prediction.
// The classifier is captured once at construction; passing nil puts the
// predictor in degraded mode for its whole lifetime.
type Predictor struct {
	model  Classifier
	logger *zap.SugaredLogger
}

// NewPredictor creates a new Predictor instance.
func NewPredictor(model Classifier, logger *zap.SugaredLogger) *Predictor {
	return &Predictor{model: model, logger: logger}
}

// Loaded reports whether a model is backing this predictor.
func (p *Predictor) Loaded() bool {
	return p.model != nil
}

// Predict runs the full reading-to-result transform. It never fails past its
// boundary: model load and invocation problems are folded into the returned
// payload as an error string plus degraded blocks.
func (p *Predictor) Predict(reading models.Reading) models.PredictionResult {
	if p.model == nil {
		return models.PredictionResult{
			Error:          "Model not loaded",
			Classification: degradedClassification,
			Regression: models.Regression{
				MinutesToFailure: degradedMinutes,
				HoursToFailure:   degradedHours,
				Status:           models.StatusUnknown,
			},
		}
	}

	record := features.Synthesize(reading)

	label, err := p.model.Predict(record.Row())
	if err != nil {
		p.logger.Errorw("prediction failed", "error", err)
		return models.PredictionResult{
			Error:          err.Error(),
			Classification: degradedClassification,
			Regression: models.Regression{
				MinutesToFailure: degradedMinutes,
				HoursToFailure:   degradedHours,
				Status:           models.StatusError,
			},
		}
	}

	template := outcomeTemplates[outcomeOf(label)]
	return models.PredictionResult{
		Classification: template.classification,
		Regression:     template.regression,
		Timestamp:      time.Now().UTC().Format(time.RFC3339Nano),
		ReadingsUsed:   1,
	}
}
