package scoring

import (
	"errors"
	"fmt"

	"github.com/MikeSquared-Agency/Concord/internal/roster"
)

// ErrUnknownCountry is returned when a weight override names a country
// that is not on the roster.
var ErrUnknownCountry = errors.New("unknown country")

// ApplyOverrides returns a copy of base with the named entries replaced.
// Keys are country names or ISO codes.
func ApplyOverrides(r *roster.Roster, base []float64, overrides map[string]float64) ([]float64, error) {
	out := make([]float64, len(base))
	copy(out, base)
	for key, v := range overrides {
		_, i, ok := r.Lookup(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCountry, key)
		}
		out[i] = v
	}
	return out, nil
}
