package http

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/greengarden/greengarden-server/internal/logger"
)

// Health answers liveness checks.
type Health struct {
	checks map[string]HealthCheck
	logger *logger.Logger
}

func NewHealth(checks map[string]HealthCheck, logger *logger.Logger) *Health {
	return &Health{checks: checks, logger: logger}
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *Health) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	names := make([]string, 0, len(h.checks))
	for name := range h.checks {
		names = append(names, name)
	}
	sort.Strings(names)

	resp := healthResponse{Status: "ok", Checks: make(map[string]string, len(names))}
	code := http.StatusOK

	for _, name := range names {
		if err := h.checks[name](r.Context()); err != nil {
			h.logger.Warn("Health handler: check failed",
				"check", name,
				"error", err.Error())
			resp.Checks[name] = err.Error()
			resp.Status = "unavailable"
			code = http.StatusServiceUnavailable
			continue
		}
		resp.Checks[name] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(resp)
}
