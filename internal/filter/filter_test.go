// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package filter

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sudham123/exoscenes/planet"
)

func TestSelection(t *testing.T) {
	s := NewSelection("Transit", "Imaging", "Transit")
	if diff := cmp.Diff([]string{"Transit", "Imaging"}, s.Values()); diff != "" {
		t.Errorf("Values mismatch (-want +got):\n%s", diff)
	}
	if !s.Has("Imaging") || s.Has("Microlensing") {
		t.Errorf("Has wrong for %v", s)
	}
	if s.Empty() || s.Len() != 2 {
		t.Errorf("Len = %d, Empty = %v", s.Len(), s.Empty())
	}

	var zero Selection
	if !zero.Empty() || zero.Has("") {
		t.Errorf("zero Selection not empty")
	}
	if !BothEmpty(zero, NewSelection()) || BothEmpty(zero, s) {
		t.Errorf("BothEmpty wrong")
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{1, 3}
	for _, test := range []struct {
		x    float64
		want bool
	}{
		{0.5, false},
		{1, true},
		{2, true},
		{3, true},
		{3.5, false},
		{math.NaN(), false},
	} {
		if got := r.Contains(test.x); got != test.want {
			t.Errorf("%v.Contains(%v) = %v; want %v", r, test.x, got, test.want)
		}
	}
	// NaN must be excluded even for infinite bounds.
	if (Range{math.Inf(-1), math.Inf(1)}).Contains(math.NaN()) {
		t.Errorf("infinite range contains NaN")
	}
}

func TestCategory(t *testing.T) {
	gas := &planet.Record{PlanetType: "Gas Giant"}
	rock := &planet.Record{PlanetType: "Terrestrial"}

	sel := NewSelection("Gas Giant")
	p := Category("type", ByType, sel, true)
	if !p.Match(gas) || p.Match(rock) {
		t.Errorf("Category(%v) matched wrong records", sel)
	}

	all := Category("type", ByType, Selection{}, true)
	none := Category("type", ByType, Selection{}, false)
	if !all.Match(gas) || !all.Match(rock) {
		t.Errorf("empty selection with bypass should match everything")
	}
	if none.Match(gas) || none.Match(rock) {
		t.Errorf("empty selection without bypass should match nothing")
	}
}

func TestYearAtMost(t *testing.T) {
	p := YearAtMost(2010)
	for _, test := range []struct {
		year int
		want bool
	}{
		{2009, true},
		{2010, true},
		{2011, false},
		{planet.InvalidYear, false},
	} {
		if got := p.Match(&planet.Record{DiscoveryYear: test.year}); got != test.want {
			t.Errorf("YearAtMost(2010) on %d = %v; want %v", test.year, got, test.want)
		}
	}
}

func TestPositiveAndAtMost(t *testing.T) {
	pos := Positive("distance", ByDistance)
	for _, test := range []struct {
		d    float64
		want bool
	}{
		{-1, false},
		{0, false},
		{0.1, true},
		{math.NaN(), false},
	} {
		if got := pos.Match(&planet.Record{Distance: test.d}); got != test.want {
			t.Errorf("Positive on %v = %v; want %v", test.d, got, test.want)
		}
	}

	le := AtMost("orbit", ByOrbitalRadius, 1000)
	if !le.Match(&planet.Record{OrbitalRadius: 1000}) || le.Match(&planet.Record{OrbitalRadius: 1000.5}) || le.Match(&planet.Record{OrbitalRadius: math.NaN()}) {
		t.Errorf("AtMost(1000) wrong")
	}
}

func TestSetAndLaw(t *testing.T) {
	recs := []planet.Record{
		{PlanetType: "Gas Giant", DetectionMethod: "Transit", DiscoveryYear: 2001, Distance: 10},
		{PlanetType: "Gas Giant", DetectionMethod: "Radial Velocity", DiscoveryYear: 2011, Distance: math.NaN()},
		{PlanetType: "Super Earth", DetectionMethod: "Transit", DiscoveryYear: 2015, Distance: 500},
		{PlanetType: "Neptune-like", DetectionMethod: "Imaging", DiscoveryYear: planet.InvalidYear, Distance: 80},
	}
	preds := []Predicate{
		Category("type", ByType, NewSelection("Gas Giant", "Super Earth"), true),
		Category("method", ByMethod, NewSelection("Transit"), true),
		YearAtMost(2012),
		Within("distance", ByDistance, Range{0, 100}),
	}

	count := func(s *Set) int {
		n := 0
		for i := range recs {
			if s.Match(&recs[i]) {
				n++
			}
		}
		return n
	}

	// Adding predicates never grows the result.
	var s Set
	last := count(&s)
	if last != len(recs) {
		t.Fatalf("empty Set matched %d of %d", last, len(recs))
	}
	for _, p := range preds {
		s.Add(p)
		n := count(&s)
		if n > last {
			t.Errorf("adding %s grew the result from %d to %d", p.Name, last, n)
		}
		last = n
	}
	if last != 1 {
		t.Errorf("full Set matched %d; want 1", last)
	}
	if diff := cmp.Diff([]string{"type", "method", "year", "distance"}, s.Names()); diff != "" {
		t.Errorf("Names mismatch (-want +got):\n%s", diff)
	}

	s.MatchNothing()
	if n := count(&s); n != 0 || !s.MatchesNothing() {
		t.Errorf("MatchNothing Set matched %d", n)
	}
}
