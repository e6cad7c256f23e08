// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package query computes the views each scene charts.
//
// Every function here is pure: it reads the store and a filter
// state and returns freshly allocated results. Nothing is cached
// between calls, so a view is always recomputed from the full
// store.
package query

import (
	"fmt"
	"sort"

	"github.com/sudham123/exoscenes/internal/filter"
	"github.com/sudham123/exoscenes/planet"
)

// UnknownType is the planet type scene 2 leaves out of its counts.
const UnknownType = "Unknown"

// MaxOrbitalRadius is the largest orbital radius (AU) scene 4 plots.
const MaxOrbitalRadius = 1000

// JupiterMass is the mass of Jupiter in Earth masses.
const JupiterMass = 317.8

// Apply returns the records of store that match set, in store order.
func Apply(store *planet.Store, set *filter.Set) []planet.Record {
	if set.MatchesNothing() {
		return []planet.Record{}
	}
	return store.Select(set.Match)
}

// Scene2Set returns the predicates for the type-count bar chart.
//
// The method group has no "match all" fallback: with no methods
// selected, nothing matches.
func Scene2Set(st filter.State) *filter.Set {
	return new(filter.Set).Add(
		filter.YearAtMost(st.YearMax),
		filter.Category("method", filter.ByMethod, st.Methods, false),
	)
}

// categories adds the type and method predicates shared by scenes 3
// through 5. Either group on its own matches everything when empty,
// but if both are empty the set matches nothing.
func categories(st filter.State, s *filter.Set) *filter.Set {
	if filter.BothEmpty(st.Types, st.Methods) {
		s.MatchNothing()
	}
	return s.Add(
		filter.Category("type", filter.ByType, st.Types, true),
		filter.Category("method", filter.ByMethod, st.Methods, true),
	)
}

// Scene3Set returns the predicates for the discoveries-per-year
// line chart.
func Scene3Set(st filter.State) *filter.Set {
	return categories(st, new(filter.Set))
}

// Scene4Set returns the predicates for the mass versus orbit
// scatter plot.
func Scene4Set(st filter.State) *filter.Set {
	s := categories(st, new(filter.Set))
	return s.Add(
		filter.YearAtMost(st.YearMax),
		filter.AtMost("orbital radius", filter.ByOrbitalRadius, MaxOrbitalRadius),
	)
}

// Scene5Set returns the predicates for the distance versus stellar
// magnitude scatter plot.
func Scene5Set(st filter.State) *filter.Set {
	s := categories(st, new(filter.Set))
	return s.Add(
		filter.YearAtMost(st.YearMax),
		filter.Within("distance", filter.ByDistance, st.Distance),
		filter.Within("magnitude", filter.ByMagnitude, st.Magnitude),
		filter.Positive("distance valid", filter.ByDistance),
		filter.Positive("magnitude valid", filter.ByMagnitude),
	)
}

// TypeCount is the number of planets of one type.
type TypeCount struct {
	Type  string
	Count int
}

// TypeCounts groups recs by planet type. Groups appear in the order
// their type is first encountered. The UnknownType group is omitted.
func TypeCounts(recs []planet.Record) []TypeCount {
	out := []TypeCount{}
	index := make(map[string]int)
	for i := range recs {
		typ := recs[i].PlanetType
		j, ok := index[typ]
		if !ok {
			j = len(out)
			index[typ] = j
			out = append(out, TypeCount{Type: typ})
		}
		out[j].Count++
	}
	// Filter in place, keeping order.
	kept := out[:0]
	for _, tc := range out {
		if tc.Type != UnknownType {
			kept = append(kept, tc)
		}
	}
	return kept
}

// YearCount is the number of planets discovered in one year.
type YearCount struct {
	Year  int
	Count int
}

// YearCounts groups recs by discovery year, in ascending year order.
// Records without a valid year are skipped.
func YearCounts(recs []planet.Record) []YearCount {
	counts := make(map[int]int)
	for i := range recs {
		if recs[i].YearValid() {
			counts[recs[i].DiscoveryYear]++
		}
	}
	out := make([]YearCount, 0, len(counts))
	for y, n := range counts {
		out = append(out, YearCount{y, n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// MassPoint is a record with its mass expressed in Earth masses.
type MassPoint struct {
	planet.Record
	EarthMasses float64
}

// EarthMasses returns the mass of r in Earth masses.
//
// Masses relative to Jupiter are scaled by JupiterMass. Any other
// reference body, Earth or not, is taken to already be Earth-relative.
// That is an approximation for bodies other than Earth.
func EarthMasses(r *planet.Record) float64 {
	if r.MassWrt == "Jupiter" {
		return r.MassMultiplier * JupiterMass
	}
	return r.MassMultiplier
}

// MassOrbits attaches Earth-normalized masses to recs.
func MassOrbits(recs []planet.Record) []MassPoint {
	out := make([]MassPoint, len(recs))
	for i := range recs {
		out[i] = MassPoint{recs[i], EarthMasses(&recs[i])}
	}
	return out
}

// MostCommon returns the type with the largest count. Ties go to the
// earliest entry. It returns false if counts is empty.
func MostCommon(counts []TypeCount) (TypeCount, bool) {
	if len(counts) == 0 {
		return TypeCount{}, false
	}
	best := counts[0]
	for _, c := range counts[1:] {
		if c.Count > best.Count {
			best = c
		}
	}
	return best, true
}

// Kepler mission annotation windows, inclusive.
var keplerWindows = [][2]int{{2010, 2012}, {2013, 2014}}

// KeplerPeak returns the year to annotate as the Kepler mission's
// effect: the busiest year in 2010–2012, or if no year in that window
// has discoveries, the busiest year in 2013–2014. Ties go to the
// earliest year. If neither window has any entries, KeplerPeak
// returns false and no annotation is drawn.
func KeplerPeak(years []YearCount) (YearCount, bool) {
	for _, w := range keplerWindows {
		var best YearCount
		found := false
		for _, y := range years {
			if y.Year < w[0] || y.Year > w[1] {
				continue
			}
			if !found || y.Count > best.Count {
				best, found = y, true
			}
		}
		if found {
			return best, true
		}
	}
	return YearCount{}, false
}

// Summary returns the one-line description shown when a type's bar is
// clicked. filtered is the full filtered record list; the first record
// of type typ in it is given as an example.
func Summary(typ string, count, yearMax int, filtered []planet.Record) string {
	example := "N/A"
	for i := range filtered {
		if filtered[i].PlanetType == typ {
			if filtered[i].Name != "" {
				example = filtered[i].Name
			}
			break
		}
	}
	return fmt.Sprintf("Type: %s, count: %d (up to %d). Example: %s", typ, count, yearMax, example)
}
