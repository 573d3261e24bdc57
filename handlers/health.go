package handlers

import (
	"net/http"
	"time"

	"github.com/pocketbase/pocketbase/core"
)

const serviceVersion = "2.0.0"

// HandleHealth returns the service health handler.
func HandleHealth() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		return e.JSON(http.StatusOK, map[string]any{
			"status":    "OK",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   serviceVersion,
			"service":   "Generatore Preventivi AbitaLab",
		})
	}
}
