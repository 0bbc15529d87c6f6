package handlers

import (
	"net/http"
	"time"
)

// HealthResponse represents the health check response structure.
type HealthResponse struct {
	Status      string `json:"status"`
	ModelLoaded bool   `json:"model_loaded"`
	Timestamp   string `json:"timestamp"`
}

// ModelState reports whether the process-wide model loaded at startup.
type ModelState interface {
	Loaded() bool
}

// HealthHandler handles GET /health requests. The service stays "healthy"
// even in degraded mode; model_loaded tells callers which mode they are in.
type HealthHandler struct {
	model ModelState
}

// NewHealthHandler creates a new HealthHandler instance.
func NewHealthHandler(model ModelState) *HealthHandler {
	return &HealthHandler{model: model}
}

// Handle handles the health request.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	body, _ := json.Marshal(HealthResponse{
		Status:      "healthy",
		ModelLoaded: h.model.Loaded(),
		Timestamp:   time.Now().UTC().Format(time.RFC3339Nano),
	})
	w.Write(body)
}
