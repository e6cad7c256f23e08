// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"github.com/sudham123/exoscenes/planet"
)

// StringField extracts a categorical field from a record.
type StringField func(r *planet.Record) string

// FloatField extracts a numeric field from a record.
type FloatField func(r *planet.Record) float64

// Record fields used by the scenes.
var (
	ByType   StringField = func(r *planet.Record) string { return r.PlanetType }
	ByMethod StringField = func(r *planet.Record) string { return r.DetectionMethod }

	ByDistance      FloatField = func(r *planet.Record) float64 { return r.Distance }
	ByMagnitude     FloatField = func(r *planet.Record) float64 { return r.StellarMagnitude }
	ByOrbitalRadius FloatField = func(r *planet.Record) float64 { return r.OrbitalRadius }
)

// A Predicate is a named test on a record.
type Predicate struct {
	Name  string
	Match func(r *planet.Record) bool
}

// Category returns a predicate matching records whose field is in
// sel. If sel is empty, the predicate matches everything when
// emptyMatchesAll is set and nothing otherwise.
func Category(name string, field StringField, sel Selection, emptyMatchesAll bool) Predicate {
	return Predicate{name, func(r *planet.Record) bool {
		if sel.Empty() {
			return emptyMatchesAll
		}
		return sel.Has(field(r))
	}}
}

// YearAtMost returns a predicate matching records discovered in or
// before max. Records without a valid year never match.
func YearAtMost(max int) Predicate {
	return Predicate{"year", func(r *planet.Record) bool {
		return r.YearValid() && r.DiscoveryYear <= max
	}}
}

// Within returns a predicate matching records whose field lies in
// rng, bounds included. Invalid (NaN) fields never match.
func Within(name string, field FloatField, rng Range) Predicate {
	return Predicate{name, func(r *planet.Record) bool {
		return rng.Contains(field(r))
	}}
}

// AtMost returns a predicate matching records whose field is valid
// and <= max.
func AtMost(name string, field FloatField, max float64) Predicate {
	return Predicate{name, func(r *planet.Record) bool {
		v := field(r)
		return planet.Valid(v) && v <= max
	}}
}

// Positive returns a predicate matching records whose field is valid
// and strictly greater than zero.
func Positive(name string, field FloatField) Predicate {
	return Predicate{name, func(r *planet.Record) bool {
		v := field(r)
		return planet.Valid(v) && v > 0
	}}
}

// A Set is a conjunction of predicates.
//
// The zero Set matches every record.
type Set struct {
	preds   []Predicate
	nothing bool
}

// Add appends p to s and returns s.
func (s *Set) Add(p ...Predicate) *Set {
	s.preds = append(s.preds, p...)
	return s
}

// MatchNothing makes s reject every record without consulting its
// predicates.
func (s *Set) MatchNothing() *Set {
	s.nothing = true
	return s
}

// MatchesNothing reports whether MatchNothing was called on s.
func (s *Set) MatchesNothing() bool {
	return s.nothing
}

// Match reports whether r satisfies every predicate in s.
func (s *Set) Match(r *planet.Record) bool {
	if s.nothing {
		return false
	}
	for _, p := range s.preds {
		if !p.Match(r) {
			return false
		}
	}
	return true
}

// Len returns the number of predicates in s.
func (s *Set) Len() int {
	return len(s.preds)
}

// Names returns the names of the predicates in s, in order.
func (s *Set) Names() []string {
	names := make([]string, len(s.preds))
	for i, p := range s.preds {
		names[i] = p.Name
	}
	return names
}
