package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bearingml/internal/handlers"
	"bearingml/internal/models"
)

type stubPredictor struct {
	result  models.PredictionResult
	reading *models.Reading
}

func (s *stubPredictor) Predict(reading models.Reading) models.PredictionResult {
	s.reading = &reading
	return s.result
}

func normalResult() models.PredictionResult {
	return models.PredictionResult{
		Classification: models.Classification{
			WillFailSoon:       false,
			FailureProbability: 0.15,
			Confidence:         "High",
			ThresholdMinutes:   60,
		},
		Regression: models.Regression{
			MinutesToFailure: 43200,
			HoursToFailure:   720,
			Status:           "Normal",
		},
		Timestamp:    "2026-01-02T03:04:05Z",
		ReadingsUsed: 1,
	}
}

func newHandler(predictor handlers.Predictor, output handlers.Output) *handlers.PredictHandler {
	return handlers.NewPredictHandler(predictor, output, zap.NewNop().Sugar())
}

func TestHandleSuccess(t *testing.T) {
	stub := &stubPredictor{result: normalResult()}
	handler := newHandler(stub, handlers.OutputBoth)

	resp := handler.Handle(handlers.Request{Body: `{"sensorData": {"vibration_peak_g": 2.5}}`})

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	assert.Equal(t, "*", resp.Headers["Access-Control-Allow-Origin"])
	assert.Equal(t, "GET, POST, OPTIONS", resp.Headers["Access-Control-Allow-Methods"])
	assert.Equal(t, "Content-Type", resp.Headers["Access-Control-Allow-Headers"])

	require.NotNil(t, stub.reading)
	assert.Equal(t, 2.5, stub.reading.VibrationPeakG)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Contains(t, body, "classification")
	assert.Contains(t, body, "regression")
	assert.Equal(t, "2026-01-02T03:04:05Z", body["timestamp"])
	assert.Equal(t, float64(1), body["readings_used"])
	assert.NotContains(t, body, "error")
}

func TestHandleMissingBodyDefaultsToEmptyObject(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "empty object", body: "{}"},
		{name: "no sensorData field", body: `{"other": 1}`},
		{name: "empty sensorData", body: `{"sensorData": {}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubPredictor{result: normalResult()}
			handler := newHandler(stub, handlers.OutputBoth)

			resp := handler.Handle(handlers.Request{Body: tt.body})

			assert.Equal(t, http.StatusOK, resp.StatusCode)
			require.NotNil(t, stub.reading)
			assert.Zero(t, stub.reading.VibrationPeakG)
		})
	}
}

func TestHandleMalformedBody(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputBoth)

	resp := handler.Handle(handlers.Request{Body: `{"sensorData": `})

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Headers["Content-Type"])
	// no CORS headers on the failure path
	assert.NotContains(t, resp.Headers, "Access-Control-Allow-Origin")

	var body map[string]string
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.NotEmpty(t, body["error"])
}

func TestHandleInnerErrorStillReturns200(t *testing.T) {
	degraded := models.PredictionResult{
		Error: "Model not loaded",
		Classification: models.Classification{
			Confidence: "Low",
		},
		Regression: models.Regression{
			MinutesToFailure: 999999,
			HoursToFailure:   16666,
			Status:           "Unknown",
		},
	}
	handler := newHandler(&stubPredictor{result: degraded}, handlers.OutputBoth)

	resp := handler.Handle(handlers.Request{Body: "{}"})

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Equal(t, "Model not loaded", body["error"])
	assert.NotContains(t, body, "timestamp")
	assert.NotContains(t, body, "readings_used")
}

func TestHandleClassificationOnly(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputClassification)

	resp := handler.Handle(handlers.Request{Body: "{}"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Contains(t, body, "classification")
	assert.NotContains(t, body, "regression")
	assert.Equal(t, float64(1), body["readings_used"])
}

func TestHandleRegressionOnly(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputRegression)

	resp := handler.Handle(handlers.Request{Body: "{}"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &body))
	assert.Contains(t, body, "regression")
	assert.NotContains(t, body, "classification")
}

func TestServeHTTP(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputBoth)

	req := httptest.NewRequest(http.MethodPost, "/predict/both",
		strings.NewReader(`{"sensorData": {"vibration_peak_g": 1.0}}`))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "classification")
}

func TestServeHTTPMalformedBody(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputBoth)

	req := httptest.NewRequest(http.MethodPost, "/predict/both", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body["error"])
}

func TestServeHTTPPreflight(t *testing.T) {
	handler := newHandler(&stubPredictor{result: normalResult()}, handlers.OutputBoth)

	req := httptest.NewRequest(http.MethodOptions, "/predict/both", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}
