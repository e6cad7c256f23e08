// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"math"

	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/stats"
	"github.com/sudham123/exoscenes/planet"
)

// TypeCountTable returns counts as a table with "type" and "count"
// columns.
func TypeCountTable(counts []TypeCount) *table.Table {
	types := make([]string, len(counts))
	ns := make([]int, len(counts))
	for i, c := range counts {
		types[i], ns[i] = c.Type, c.Count
	}
	return new(table.Builder).Add("type", types).Add("count", ns).Done()
}

// YearCountTable returns counts as a table with "year" and "count"
// columns.
func YearCountTable(counts []YearCount) *table.Table {
	years := make([]int, len(counts))
	ns := make([]int, len(counts))
	for i, c := range counts {
		years[i], ns[i] = c.Year, c.Count
	}
	return new(table.Builder).Add("year", years).Add("count", ns).Done()
}

// MassTable returns points as a table of name, orbital radius, and
// Earth masses.
func MassTable(points []MassPoint) *table.Table {
	names := make([]string, len(points))
	orbits := make([]float64, len(points))
	masses := make([]float64, len(points))
	for i, p := range points {
		names[i], orbits[i], masses[i] = p.Name, p.OrbitalRadius, p.EarthMasses
	}
	return new(table.Builder).
		Add("name", names).
		Add("orbital radius", orbits).
		Add("earth masses", masses).
		Done()
}

// RecordTable returns recs as a table of name, distance, and stellar
// magnitude.
func RecordTable(recs []planet.Record) *table.Table {
	names := make([]string, len(recs))
	dists := make([]float64, len(recs))
	mags := make([]float64, len(recs))
	for i := range recs {
		names[i], dists[i], mags[i] = recs[i].Name, recs[i].Distance, recs[i].StellarMagnitude
	}
	return new(table.Builder).
		Add("name", names).
		Add("distance", dists).
		Add("stellar magnitude", mags).
		Done()
}

// Spread summarizes the valid values of one numeric field.
type Spread struct {
	N        int
	Min, Max float64
	Mean     float64
}

// DistanceSpread summarizes the valid distances in recs.
func DistanceSpread(recs []planet.Record) Spread {
	var xs []float64
	for i := range recs {
		if planet.Valid(recs[i].Distance) {
			xs = append(xs, recs[i].Distance)
		}
	}
	if len(xs) == 0 {
		return Spread{Min: math.NaN(), Max: math.NaN(), Mean: math.NaN()}
	}
	min, max := stats.Bounds(xs)
	return Spread{N: len(xs), Min: min, Max: max, Mean: stats.Mean(xs)}
}
