// Package handlers exposes the lifecycle services over /api/v2 REST routes.
// Each entity gets its own handler; route registration happens on a plain
// http.ServeMux with method patterns.
package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/swaggo/swag"

	"github.com/pagosclm/pagos-service/internal/domain"
	"github.com/pagosclm/pagos-service/internal/interfaces/rest"
)

// parseID extracts the {id} path segment as a UUID, writing a 400 and
// returning false when it is malformed.
func parseID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		rest.RespondError(w, domain.NewValidationError("id must be a valid UUID"))
		return uuid.Nil, false
	}
	return id, true
}

// RegisterDocsRoutes serves the generated OpenAPI document.
func RegisterDocsRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /swagger/doc.json", func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	})
}
