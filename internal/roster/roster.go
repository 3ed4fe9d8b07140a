// Package roster holds the fixed set of countries fed into the simulator,
// with their GDP-derived default weights and flag asset references.
package roster

import (
	"fmt"
	"strings"
)

// DefaultFlagBaseURL is where flag images are served from. Images are only
// ever referenced by URL; nothing here downloads them.
const DefaultFlagBaseURL = "https://flagcdn.com"

// DefaultInput is the starting input value for every country.
const DefaultInput = 1.0

// Country is one named entity in the input vector.
type Country struct {
	Name          string  `json:"name"`
	Code          string  `json:"code"`
	DefaultWeight float64 `json:"default_weight"`
	FlagURL       string  `json:"flag_url"`
}

var countries = []Country{
	{Name: "USA", Code: "US", DefaultWeight: 0.25},
	{Name: "China", Code: "CN", DefaultWeight: 0.22},
	{Name: "Germany", Code: "DE", DefaultWeight: 0.08},
	{Name: "Russia", Code: "RU", DefaultWeight: 0.07},
	{Name: "UK", Code: "GB", DefaultWeight: 0.06},
	{Name: "France", Code: "FR", DefaultWeight: 0.05},
	{Name: "Japan", Code: "JP", DefaultWeight: 0.04},
	{Name: "India", Code: "IN", DefaultWeight: 0.03},
	{Name: "Canada", Code: "CA", DefaultWeight: 0.02},
	{Name: "Brazil", Code: "BR", DefaultWeight: 0.02},
	{Name: "Italy", Code: "IT", DefaultWeight: 0.015},
	{Name: "South Korea", Code: "KR", DefaultWeight: 0.015},
	{Name: "Australia", Code: "AU", DefaultWeight: 0.01},
	{Name: "Spain", Code: "ES", DefaultWeight: 0.01},
	{Name: "Mexico", Code: "MX", DefaultWeight: 0.009},
	{Name: "Netherlands", Code: "NL", DefaultWeight: 0.008},
	{Name: "Turkey", Code: "TR", DefaultWeight: 0.007},
	{Name: "Saudi Arabia", Code: "SA", DefaultWeight: 0.006},
	{Name: "Sweden", Code: "SE", DefaultWeight: 0.005},
	{Name: "Switzerland", Code: "CH", DefaultWeight: 0.004},
}

// Roster is an ordered, read-only list of countries.
type Roster struct {
	countries []Country
	byKey     map[string]int
}

// New builds the default roster with flag URLs rooted at flagBaseURL.
// An empty base falls back to DefaultFlagBaseURL.
func New(flagBaseURL string) *Roster {
	if flagBaseURL == "" {
		flagBaseURL = DefaultFlagBaseURL
	}
	flagBaseURL = strings.TrimRight(flagBaseURL, "/")

	r := &Roster{
		countries: make([]Country, len(countries)),
		byKey:     make(map[string]int, len(countries)*2),
	}
	for i, c := range countries {
		c.FlagURL = fmt.Sprintf("%s/%s.png", flagBaseURL, strings.ToLower(c.Code))
		r.countries[i] = c
		r.byKey[strings.ToLower(c.Name)] = i
		r.byKey[strings.ToLower(c.Code)] = i
	}
	return r
}

// Len returns the number of countries, i.e. the vector length N.
func (r *Roster) Len() int { return len(r.countries) }

// Countries returns a copy of the roster in positional order.
func (r *Roster) Countries() []Country {
	out := make([]Country, len(r.countries))
	copy(out, r.countries)
	return out
}

// At returns the country at position i.
func (r *Roster) At(i int) Country { return r.countries[i] }

// Lookup finds a country by name or ISO code, case-insensitively, and
// returns its position.
func (r *Roster) Lookup(key string) (Country, int, bool) {
	i, ok := r.byKey[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return Country{}, -1, false
	}
	return r.countries[i], i, true
}

// DefaultWeights returns the GDP-derived weight vector.
func (r *Roster) DefaultWeights() []float64 {
	out := make([]float64, len(r.countries))
	for i, c := range r.countries {
		out[i] = c.DefaultWeight
	}
	return out
}

// DefaultInputs returns an input vector of DefaultInput values.
func (r *Roster) DefaultInputs() []float64 {
	out := make([]float64, len(r.countries))
	for i := range out {
		out[i] = DefaultInput
	}
	return out
}
