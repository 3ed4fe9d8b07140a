package engine

import (
	"fmt"
	"math"
	"strings"
)

// Activation is the transfer function applied to the weighted sum.
type Activation uint8

const (
	Linear Activation = iota
	Sigmoid
	Tanh
	ReLU
)

var activationNames = [...]string{
	Linear:  "linear",
	Sigmoid: "sigmoid",
	Tanh:    "tanh",
	ReLU:    "relu",
}

// Activations returns every supported activation in display order.
func Activations() []Activation {
	return []Activation{Linear, Sigmoid, Tanh, ReLU}
}

// ParseActivation resolves a case-insensitive activation name.
func ParseActivation(name string) (Activation, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range activationNames {
		if candidate == n {
			return Activation(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownActivation, name)
}

func (a Activation) Valid() bool {
	return int(a) < len(activationNames)
}

func (a Activation) String() string {
	if !a.Valid() {
		return fmt.Sprintf("activation(%d)", uint8(a))
	}
	return activationNames[a]
}

func (a Activation) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownActivation, uint8(a))
	}
	return []byte(activationNames[a]), nil
}

func (a *Activation) UnmarshalText(text []byte) error {
	parsed, err := ParseActivation(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Apply runs the activation on z.
func Apply(z float64, kind Activation) (float64, error) {
	switch kind {
	case Linear:
		return z, nil
	case Sigmoid:
		return sigmoid(z), nil
	case Tanh:
		return math.Tanh(z), nil
	case ReLU:
		return math.Max(0, z), nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnknownActivation, kind)
	}
}

// sigmoid only ever exponentiates a non-positive argument, so it cannot overflow.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
