package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MikeSquared-Agency/Concord/internal/engine"
	"github.com/MikeSquared-Agency/Concord/internal/scoring"
)

const kindUnknownCountry = "unknown_country"

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// errorKind extends engine.ErrorKind with the errors raised while resolving
// a request against the roster.
func errorKind(err error) string {
	if errors.Is(err, scoring.ErrUnknownCountry) {
		return kindUnknownCountry
	}
	return engine.ErrorKind(err)
}

func statusForKind(kind string) int {
	switch kind {
	case engine.KindLengthMismatch, engine.KindUnknownActivation, kindUnknownCountry:
		return http.StatusBadRequest
	case engine.KindDivideByZero, engine.KindNonFinite:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := errorKind(err)
	writeJSON(w, statusForKind(kind), errorResponse{Error: err.Error(), Kind: kind})
}
