// Package engine implements the weighted-sum activation pipeline:
// weight normalization, the dot product of inputs and weights, and the
// transfer function applied to the result. Every function is pure.
package engine

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Request is one computation. Nothing is retained between requests.
type Request struct {
	Inputs     []float64
	Weights    []float64
	Activation Activation
	Normalize  bool
}

// Result holds both the raw weighted sum and the activated output.
// Weights is the vector actually used, normalized when requested.
type Result struct {
	WeightedSum float64   `json:"weighted_sum"`
	Output      float64   `json:"output"`
	Weights     []float64 `json:"weights"`
}

// Normalize divides every weight by the sum of all weights.
// The input slice is left untouched.
func Normalize(weights []float64) ([]float64, error) {
	sum := floats.Sum(weights)
	if sum == 0 {
		return nil, fmt.Errorf("normalize %d weights: %w", len(weights), ErrDivideByZero)
	}
	if !finite(sum) {
		return nil, fmt.Errorf("normalize %d weights: sum is %v: %w", len(weights), sum, ErrNonFinite)
	}
	out := make([]float64, len(weights))
	for i, w := range weights {
		out[i] = w / sum
	}
	return out, nil
}

// WeightedSum returns the dot product of inputs and weights.
func WeightedSum(inputs, weights []float64) (float64, error) {
	if err := checkLengths(inputs, weights); err != nil {
		return 0, err
	}
	return floats.Dot(inputs, weights), nil
}

// Compute validates the request, optionally normalizes the weights, then
// applies the activation to the weighted sum.
func Compute(req Request) (Result, error) {
	if err := checkLengths(req.Inputs, req.Weights); err != nil {
		return Result{}, err
	}
	if !req.Activation.Valid() {
		return Result{}, fmt.Errorf("%w: %s", ErrUnknownActivation, req.Activation)
	}

	weights := req.Weights
	if req.Normalize {
		normalized, err := Normalize(weights)
		if err != nil {
			return Result{}, err
		}
		weights = normalized
	} else {
		weights = make([]float64, len(req.Weights))
		copy(weights, req.Weights)
	}

	z := floats.Dot(req.Inputs, weights)
	if !finite(z) {
		return Result{}, fmt.Errorf("weighted sum is %v: %w", z, ErrNonFinite)
	}
	out, err := Apply(z, req.Activation)
	if err != nil {
		return Result{}, err
	}
	if !finite(out) {
		return Result{}, fmt.Errorf("%s output is %v: %w", req.Activation, out, ErrNonFinite)
	}

	return Result{
		WeightedSum: z,
		Output:      out,
		Weights:     weights,
	}, nil
}

func checkLengths(inputs, weights []float64) error {
	if len(inputs) != len(weights) {
		return fmt.Errorf("%w: %d inputs, %d weights", ErrLengthMismatch, len(inputs), len(weights))
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
