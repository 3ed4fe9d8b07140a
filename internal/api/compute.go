package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/MikeSquared-Agency/Concord/internal/engine"
	"github.com/MikeSquared-Agency/Concord/internal/hermes"
	"github.com/MikeSquared-Agency/Concord/internal/metrics"
	"github.com/MikeSquared-Agency/Concord/internal/scoring"
)

type ComputeHandler struct {
	scorer  *scoring.Scorer
	hermes  hermes.Client
	metrics *metrics.Recorder
	logger  *slog.Logger
}

func NewComputeHandler(s *scoring.Scorer, h hermes.Client, m *metrics.Recorder, logger *slog.Logger) *ComputeHandler {
	return &ComputeHandler{scorer: s, hermes: h, metrics: m, logger: logger}
}

type ComputeRequest struct {
	Inputs          []float64          `json:"inputs,omitempty"`
	Weights         []float64          `json:"weights,omitempty"`
	InputOverrides  map[string]float64 `json:"input_overrides,omitempty"`
	WeightOverrides map[string]float64 `json:"weight_overrides,omitempty"`
	Activation      *string            `json:"activation,omitempty"`
	Normalize       *bool              `json:"normalize,omitempty"`
}

// Compute runs one computation from the caller's control state.
// POST /api/v1/compute
func (h *ComputeHandler) Compute(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	sreq := scoring.Request{
		Inputs:          req.Inputs,
		Weights:         req.Weights,
		InputOverrides:  req.InputOverrides,
		WeightOverrides: req.WeightOverrides,
		ActivationName:  req.Activation,
		Normalize:       req.Normalize,
	}

	result, err := h.scorer.Score(sreq)
	if err != nil {
		h.fail(w, err)
		return
	}

	h.metrics.Computed(result.Activation.String(), result.WeightedSum)
	h.publish(hermes.SubjectComputeCompleted(result.ComputationID.String()), hermes.ComputeCompletedEvent{
		ComputationID: result.ComputationID.String(),
		Activation:    result.Activation.String(),
		Normalized:    result.Normalized,
		Size:          len(result.Contributions),
		WeightedSum:   result.WeightedSum,
		Output:        result.Output,
		Timestamp:     time.Now().UTC(),
	})

	writeJSON(w, http.StatusOK, result)
}

type NormalizeRequest struct {
	Weights []float64 `json:"weights"`
}

type NormalizeResponse struct {
	Weights []float64 `json:"weights"`
	Sum     float64   `json:"sum"`
}

// Normalize rescales a weight vector to sum to one.
// POST /api/v1/normalize
func (h *ComputeHandler) Normalize(w http.ResponseWriter, r *http.Request) {
	var req NormalizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	normalized, err := engine.Normalize(req.Weights)
	if err != nil {
		h.metrics.Failed(errorKind(err))
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, NormalizeResponse{Weights: normalized, Sum: floats.Sum(normalized)})
}

func (h *ComputeHandler) fail(w http.ResponseWriter, err error) {
	kind := errorKind(err)
	h.metrics.Failed(kind)

	id := uuid.New().String()
	h.publish(hermes.SubjectComputeFailed(id), hermes.ComputeFailedEvent{
		ComputationID: id,
		Kind:          kind,
		Error:         err.Error(),
		Timestamp:     time.Now().UTC(),
	})
	h.logger.Debug("computation rejected", "kind", kind, "error", err)

	writeError(w, err)
}

func (h *ComputeHandler) publish(subject string, event interface{}) {
	if h.hermes == nil {
		return
	}
	if err := h.hermes.Publish(subject, event); err != nil {
		h.logger.Warn("failed to publish event", "subject", subject, "error", err)
	}
}
