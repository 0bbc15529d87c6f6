package handlers

import (
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"bearingml/internal/models"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Request is the platform-neutral envelope handed to the predict handler:
// a raw JSON body string, the shape serverless platforms deliver.
type Request struct {
	Body string
}

// Response mirrors a serverless proxy response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// Output selects which prediction blocks an endpoint returns.
type Output int

const (
	OutputBoth Output = iota
	OutputClassification
	OutputRegression
)

// predictBody is the expected request body shape.
type predictBody struct {
	SensorData models.Reading `json:"sensorData"`
}

// classificationResult is the body of the classification-only endpoint.
type classificationResult struct {
	Error          string                `json:"error,omitempty"`
	Classification models.Classification `json:"classification"`
	Timestamp      string                `json:"timestamp,omitempty"`
	ReadingsUsed   int                   `json:"readings_used,omitempty"`
}

// regressionResult is the body of the regression-only endpoint.
type regressionResult struct {
	Error        string            `json:"error,omitempty"`
	Regression   models.Regression `json:"regression"`
	Timestamp    string            `json:"timestamp,omitempty"`
	ReadingsUsed int               `json:"readings_used,omitempty"`
}

// Predictor is the prediction operation the handler forwards readings to.
type Predictor interface {
	Predict(reading models.Reading) models.PredictionResult
}

// PredictHandler handles POST /predict/{both,classification,regression}
// requests. One instance serves one output shape.
type PredictHandler struct {
	predictor Predictor
	output    Output
	logger    *zap.SugaredLogger
}

// NewPredictHandler creates a new PredictHandler instance.
func NewPredictHandler(predictor Predictor, output Output, logger *zap.SugaredLogger) *PredictHandler {
	return &PredictHandler{
		predictor: predictor,
		output:    output,
		logger:    logger,
	}
}

// Handle runs the request/response transform. A missing body is treated as an
// empty object; a malformed body or an unserializable result is the only path
// to a 500. Inner prediction failures still produce a 200 because the
// predictor always returns a well-formed payload.
func (h *PredictHandler) Handle(req Request) Response {
	body := req.Body
	if body == "" {
		body = "{}"
	}

	var parsed predictBody
	if err := json.Unmarshal([]byte(body), &parsed); err != nil {
		h.logger.Errorw("handler error", "error", err)
		return errorResponse(err)
	}

	result := h.predictor.Predict(parsed.SensorData)

	payload, err := json.Marshal(h.project(result))
	if err != nil {
		h.logger.Errorw("handler error", "error", err)
		return errorResponse(err)
	}

	return Response{
		StatusCode: http.StatusOK,
		Headers:    corsHeaders(),
		Body:       string(payload),
	}
}

// project narrows the full result to the blocks this endpoint exposes.
func (h *PredictHandler) project(result models.PredictionResult) interface{} {
	switch h.output {
	case OutputClassification:
		return classificationResult{
			Error:          result.Error,
			Classification: result.Classification,
			Timestamp:      result.Timestamp,
			ReadingsUsed:   result.ReadingsUsed,
		}
	case OutputRegression:
		return regressionResult{
			Error:        result.Error,
			Regression:   result.Regression,
			Timestamp:    result.Timestamp,
			ReadingsUsed: result.ReadingsUsed,
		}
	default:
		return result
	}
}

// ServeHTTP adapts the serverless-style contract to the development server.
func (h *PredictHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writeHeaders(w, corsHeaders())
		w.WriteHeader(http.StatusNoContent)
		return
	}

	var body string
	if r.Body != nil {
		raw, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Errorw("failed to read request body", "error", err)
			writeResponse(w, errorResponse(err))
			return
		}
		body = string(raw)
	}

	writeResponse(w, h.Handle(Request{Body: body}))
}

func corsHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
		"Access-Control-Allow-Headers": "Content-Type",
	}
}

// errorResponse builds the 500 envelope. No CORS headers on this path.
func errorResponse(err error) Response {
	body, marshalErr := json.Marshal(map[string]string{"error": err.Error()})
	if marshalErr != nil {
		body = []byte(`{"error":"internal error"}`)
	}
	return Response{
		StatusCode: http.StatusInternalServerError,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}
}

func writeHeaders(w http.ResponseWriter, headers map[string]string) {
	for key, value := range headers {
		w.Header().Set(key, value)
	}
}

func writeResponse(w http.ResponseWriter, resp Response) {
	writeHeaders(w, resp.Headers)
	w.WriteHeader(resp.StatusCode)
	io.WriteString(w, resp.Body)
}
