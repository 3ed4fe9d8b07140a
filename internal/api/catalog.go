package api

import (
	"net/http"

	"github.com/MikeSquared-Agency/Concord/internal/engine"
	"github.com/MikeSquared-Agency/Concord/internal/roster"
)

type CatalogHandler struct {
	roster   *roster.Roster
	defaults defaultsResponse
}

type defaultsResponse struct {
	Activation engine.Activation `json:"activation"`
	Normalize  bool              `json:"normalize"`
}

type countriesResponse struct {
	Countries     []roster.Country `json:"countries"`
	DefaultInputs []float64        `json:"default_inputs"`
	Defaults      defaultsResponse `json:"defaults"`
}

func NewCatalogHandler(r *roster.Roster, activation engine.Activation, normalize bool) *CatalogHandler {
	return &CatalogHandler{
		roster:   r,
		defaults: defaultsResponse{Activation: activation, Normalize: normalize},
	}
}

// Countries lists the roster in positional order.
// GET /api/v1/countries
func (h *CatalogHandler) Countries(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, countriesResponse{
		Countries:     h.roster.Countries(),
		DefaultInputs: h.roster.DefaultInputs(),
		Defaults:      h.defaults,
	})
}

// Activations lists the supported transfer functions.
// GET /api/v1/activations
func (h *CatalogHandler) Activations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"activations": engine.Activations(),
		"default":     h.defaults.Activation,
	})
}
