package handlers

import (
	"github.com/pocketbase/pocketbase/core"

	"quotegeneration/templates"
)

// HandleHome returns the landing page handler.
func HandleHome() func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return templates.Home().Render(e.Request.Context(), e.Response)
	}
}
