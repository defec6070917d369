// Package cad implements the cylindrical algebraic decomposition
// engine: projection, the sample tree and lifting procedure, and
// constraint satisfaction.
package cad

import "github.com/real-cad/cad/isolate"

// Ordering chooses the total order applied to each elimination set.
// The three choices are mutually exclusive.
type Ordering int

const (
	// NoPreference keeps the order elimination produced.
	NoPreference Ordering = iota
	LowDegreeFirst
	OddDegreeFirst
	EvenDegreeFirst
)

// Settings bundles the CAD tuning flags.
type Settings struct {
	Ordering Ordering

	EagerLifting            bool
	SimplifyByGroebner      bool
	SimplifyByRootCounting  bool
	SimplifyBySquarefreeing bool
	PreferNumericSamples    bool
	PreferSamplesByIsRoot   bool
	PreferNonRootSamples    bool

	IsolationStrategy isolate.Strategy
}

// DefaultSettings uses ternary sample isolation with no ordering
// preference and no simplification passes.
func DefaultSettings() Settings {
	return Settings{IsolationStrategy: isolate.DefaultStrategy}
}

// normalize applies the EagerLifting implication.
func (s Settings) normalize() Settings {
	if s.EagerLifting {
		s.PreferNumericSamples = true
	}
	return s
}
