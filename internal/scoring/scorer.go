package scoring

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MikeSquared-Agency/Concord/internal/engine"
	"github.com/MikeSquared-Agency/Concord/internal/roster"
)

// Contribution captures one country's share of the weighted sum.
type Contribution struct {
	Name     string  `json:"name"`
	Code     string  `json:"code"`
	FlagURL  string  `json:"flag_url"`
	Input    float64 `json:"input"`
	Weight   float64 `json:"weight"`
	Weighted float64 `json:"weighted"`
}

// Result is the full breakdown of a single computation.
type Result struct {
	ComputationID uuid.UUID         `json:"computation_id"`
	Activation    engine.Activation `json:"activation"`
	Normalized    bool              `json:"normalized"`
	WeightedSum   float64           `json:"weighted_sum"`
	Output        float64           `json:"output"`
	Contributions []Contribution    `json:"contributions"`
}

// Request carries the caller's current control state. Nil vectors fall back
// to roster defaults; nil Activation/Normalize fall back to the scorer's.
// ActivationName, when set, is parsed after the vectors are checked and
// takes precedence over Activation.
type Request struct {
	Inputs          []float64
	Weights         []float64
	WeightOverrides map[string]float64
	InputOverrides  map[string]float64
	Activation      *engine.Activation
	ActivationName  *string
	Normalize       *bool
}

// Defaults are the settings used when a request leaves them unset.
type Defaults struct {
	Activation engine.Activation
	Normalize  bool
}

// Scorer binds the engine to a roster so results can be reported per country.
type Scorer struct {
	roster   *roster.Roster
	defaults Defaults
	logger   *slog.Logger
}

// NewScorer creates a Scorer over the given roster.
func NewScorer(r *roster.Roster, defaults Defaults, logger *slog.Logger) *Scorer {
	return &Scorer{
		roster:   r,
		defaults: defaults,
		logger:   logger,
	}
}

func (s *Scorer) Roster() *roster.Roster { return s.roster }

func (s *Scorer) Defaults() Defaults { return s.defaults }

// Score resolves the request against the roster and runs the engine.
func (s *Scorer) Score(req Request) (Result, error) {
	inputs, weights, err := s.vectors(req)
	if err != nil {
		return Result{}, err
	}

	kind, err := s.activation(req)
	if err != nil {
		return Result{}, err
	}
	normalize := s.defaults.Normalize
	if req.Normalize != nil {
		normalize = *req.Normalize
	}

	res, err := engine.Compute(engine.Request{
		Inputs:     inputs,
		Weights:    weights,
		Activation: kind,
		Normalize:  normalize,
	})
	if err != nil {
		return Result{}, err
	}

	contributions := make([]Contribution, len(inputs))
	for i := range inputs {
		c := s.roster.At(i)
		contributions[i] = Contribution{
			Name:     c.Name,
			Code:     c.Code,
			FlagURL:  c.FlagURL,
			Input:    inputs[i],
			Weight:   res.Weights[i],
			Weighted: inputs[i] * res.Weights[i],
		}
	}

	result := Result{
		ComputationID: uuid.New(),
		Activation:    kind,
		Normalized:    normalize,
		WeightedSum:   res.WeightedSum,
		Output:        res.Output,
		Contributions: contributions,
	}

	s.logger.Debug("computation scored",
		"computation_id", result.ComputationID,
		"activation", kind.String(),
		"normalized", normalize,
		"weighted_sum", res.WeightedSum,
		"output", res.Output,
	)
	return result, nil
}

func (s *Scorer) activation(req Request) (engine.Activation, error) {
	switch {
	case req.ActivationName != nil:
		return engine.ParseActivation(*req.ActivationName)
	case req.Activation != nil:
		return *req.Activation, nil
	default:
		return s.defaults.Activation, nil
	}
}

// vectors fills in roster defaults, applies overrides, and checks that both
// vectors line up with the roster before any arithmetic happens.
func (s *Scorer) vectors(req Request) ([]float64, []float64, error) {
	inputs := req.Inputs
	if inputs == nil {
		inputs = s.roster.DefaultInputs()
	}
	weights := req.Weights
	if weights == nil {
		weights = s.roster.DefaultWeights()
	}

	n := s.roster.Len()
	if len(inputs) != len(weights) || len(inputs) != n {
		return nil, nil, fmt.Errorf("%w: roster has %d countries, got %d inputs and %d weights",
			engine.ErrLengthMismatch, n, len(inputs), len(weights))
	}

	var err error
	if len(req.InputOverrides) > 0 {
		if inputs, err = ApplyOverrides(s.roster, inputs, req.InputOverrides); err != nil {
			return nil, nil, err
		}
	}
	if len(req.WeightOverrides) > 0 {
		if weights, err = ApplyOverrides(s.roster, weights, req.WeightOverrides); err != nil {
			return nil, nil, err
		}
	}
	return inputs, weights, nil
}
