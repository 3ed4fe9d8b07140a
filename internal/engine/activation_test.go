package engine

import (
	"encoding/json"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseActivation(t *testing.T) {
	tests := []struct {
		in   string
		want Activation
	}{
		{"linear", Linear},
		{"sigmoid", Sigmoid},
		{"tanh", Tanh},
		{"ReLU", ReLU},
		{" RELU ", ReLU},
		{"Sigmoid", Sigmoid},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseActivation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseActivation("softmax")
	assert.ErrorIs(t, err, ErrUnknownActivation)
	_, err = ParseActivation("")
	assert.ErrorIs(t, err, ErrUnknownActivation)
}

func TestActivationString(t *testing.T) {
	assert.Equal(t, "relu", ReLU.String())
	assert.Equal(t, "activation(7)", Activation(7).String())
	assert.False(t, Activation(4).Valid())
	assert.Len(t, Activations(), 4)
}

func TestActivationJSON(t *testing.T) {
	var payload struct {
		Kind Activation `json:"kind"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"kind":"tanh"}`), &payload))
	assert.Equal(t, Tanh, payload.Kind)

	out, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{"kind":"tanh"}`, string(out))

	err = json.Unmarshal([]byte(`{"kind":"gelu"}`), &payload)
	assert.ErrorIs(t, err, ErrUnknownActivation)

	payload.Kind = Activation(12)
	_, err = json.Marshal(payload)
	assert.Error(t, err)
}

func TestApplyLinearIsExact(t *testing.T) {
	for _, z := range []float64{0, -0.1, 1e-300, 123456.789, -1e300} {
		got, err := Apply(z, Linear)
		require.NoError(t, err)
		assert.Equal(t, z, got)
	}
}

func TestApplyRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		z := rng.Float64()*20 - 10

		s, err := Apply(z, Sigmoid)
		require.NoError(t, err)
		assert.Greater(t, s, 0.0)
		assert.Less(t, s, 1.0)

		th, err := Apply(z, Tanh)
		require.NoError(t, err)
		assert.Greater(t, th, -1.0)
		assert.Less(t, th, 1.0)

		r, err := Apply(z, ReLU)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, r, 0.0)
	}
}

func TestSigmoidStableAtExtremes(t *testing.T) {
	for _, z := range []float64{-1e6, -800, -701, 701, 800, 1e6, math.MaxFloat64, -math.MaxFloat64} {
		s, err := Apply(z, Sigmoid)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(s), "z=%g", z)
		assert.GreaterOrEqual(t, s, 0.0)
		assert.LessOrEqual(t, s, 1.0)
	}

	s, _ := Apply(-700, Sigmoid)
	assert.Greater(t, s, 0.0)
}

func TestSigmoidSymmetry(t *testing.T) {
	for _, z := range []float64{0.5, 1, 3, 12} {
		pos, _ := Apply(z, Sigmoid)
		neg, _ := Apply(-z, Sigmoid)
		assert.InDelta(t, 1.0, pos+neg, 1e-12)
	}
}

func TestApplyReLU(t *testing.T) {
	got, _ := Apply(-3, ReLU)
	assert.Equal(t, 0.0, got)
	got, _ = Apply(2.5, ReLU)
	assert.Equal(t, 2.5, got)
}

func TestApplyUnknown(t *testing.T) {
	_, err := Apply(1, Activation(200))
	assert.ErrorIs(t, err, ErrUnknownActivation)
}
