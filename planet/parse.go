// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package planet reads exoplanet catalog files.
//
// A catalog is a CSV file with a header row naming the columns in
// Header. Each data row becomes one Record. Numeric fields that
// cannot be parsed are stored as NaN (or InvalidYear for the
// discovery year) rather than failing the load; consumers that need
// a valid value must check for it explicitly.
package planet

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Header is the set of columns every catalog must provide, in the
// order they conventionally appear.
var Header = []string{
	"name",
	"distance",
	"stellar_magnitude",
	"planet_type",
	"discovery_year",
	"mass_multiplier",
	"mass_wrt",
	"radius_multiplier",
	"radius_wrt",
	"orbital_radius",
	"orbital_period",
	"eccentricity",
	"detection_method",
}

// InvalidYear is the DiscoveryYear of a record whose year column
// could not be parsed.
const InvalidYear = math.MinInt32

// Record is a single planet (a single row of a catalog).
type Record struct {
	Name string

	// Distance is the distance to the host system in parsecs.
	Distance float64

	StellarMagnitude float64
	PlanetType       string
	DiscoveryYear    int

	// MassMultiplier is the planet mass as a multiple of the
	// body named by MassWrt ("Jupiter", "Earth", ...).
	MassMultiplier float64
	MassWrt        string

	RadiusMultiplier float64
	RadiusWrt        string

	// OrbitalRadius is in astronomical units.
	OrbitalRadius float64

	OrbitalPeriod   float64
	Eccentricity    float64
	DetectionMethod string
}

// YearValid reports whether r has a parsed discovery year.
func (r *Record) YearValid() bool {
	return r.DiscoveryYear != InvalidYear
}

// Valid reports whether x holds a parsed numeric value.
func Valid(x float64) bool {
	return !math.IsNaN(x)
}

// Parse reads a catalog from r. It returns one Record per data row,
// in file order. Columns are located by header name, so their order
// does not matter, but all of Header must be present.
//
// Parse fails only if the file itself is malformed: a missing
// column, a row with the wrong number of fields, or a read error.
func Parse(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty catalog: missing header")
	} else if err != nil {
		return nil, err
	}
	col := make(map[string]int, len(head))
	for i, name := range head {
		col[strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))] = i
	}
	idx := make([]int, len(Header))
	for i, name := range Header {
		j, ok := col[name]
		if !ok {
			return nil, fmt.Errorf("catalog header missing column %q", name)
		}
		idx[i] = j
	}

	records := []Record{}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		f := func(i int) string { return strings.TrimSpace(row[idx[i]]) }
		records = append(records, Record{
			Name:             f(0),
			Distance:         parseFloat(f(1)),
			StellarMagnitude: parseFloat(f(2)),
			PlanetType:       f(3),
			DiscoveryYear:    parseYear(f(4)),
			MassMultiplier:   parseFloat(f(5)),
			MassWrt:          f(6),
			RadiusMultiplier: parseFloat(f(7)),
			RadiusWrt:        f(8),
			OrbitalRadius:    parseFloat(f(9)),
			OrbitalPeriod:    parseFloat(f(10)),
			Eccentricity:     parseFloat(f(11)),
			DetectionMethod:  f(12),
		})
	}
	return records, nil
}

func parseFloat(s string) float64 {
	if s == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func parseYear(s string) int {
	if y, err := strconv.Atoi(s); err == nil {
		return y
	}
	// Some exports write years as "2011.0".
	v := parseFloat(s)
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return InvalidYear
	}
	return int(v)
}

// Load parses a catalog from r and returns it as a Store.
func Load(r io.Reader) (*Store, error) {
	recs, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return &Store{recs: recs}, nil
}

// LoadFile is like Load, but reads the catalog at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
