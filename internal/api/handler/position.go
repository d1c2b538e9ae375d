package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/teamhubhq/teamhub/internal/api/response"
	"github.com/teamhubhq/teamhub/internal/services/position"
)

// PositionHandler handles position metadata requests
type PositionHandler struct{}

// NewPositionHandler creates a new PositionHandler
func NewPositionHandler() *PositionHandler {
	return &PositionHandler{}
}

// Fields handles GET /positions/{code}/fields. The code is normalised
// first, so full labels like "Quarterback" resolve the same fields as
// "QB". Unregistered codes return empty lists rather than an error.
func (h *PositionHandler) Fields(w http.ResponseWriter, r *http.Request) {
	canonical := position.Normalize(mux.Vars(r)["code"])

	response.JSON(w, http.StatusOK, response.PositionFields{
		Position:      canonical,
		Fields:        position.StatFields(canonical),
		SummaryFields: position.SummaryFields(canonical),
	})
}
