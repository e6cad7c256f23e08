// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package query

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sudham123/exoscenes/internal/filter"
	"github.com/sudham123/exoscenes/planet"
)

var nan = math.NaN()

func testStore() *planet.Store {
	return planet.NewStore([]planet.Record{
		{Name: "a", PlanetType: "Gas Giant", DetectionMethod: "Radial Velocity", DiscoveryYear: 2009, Distance: 20, StellarMagnitude: 5, MassMultiplier: 2, MassWrt: "Jupiter", OrbitalRadius: 1.5},
		{Name: "b", PlanetType: "Super Earth", DetectionMethod: "Transit", DiscoveryYear: 2011, Distance: 300, StellarMagnitude: 12, MassMultiplier: 3, MassWrt: "Earth", OrbitalRadius: 0.05},
		{Name: "c", PlanetType: "Gas Giant", DetectionMethod: "Transit", DiscoveryYear: 2011, Distance: nan, StellarMagnitude: 11, MassMultiplier: 0.5, MassWrt: "Jupiter", OrbitalRadius: 0.1},
		{Name: "d", PlanetType: "Unknown", DetectionMethod: "Transit", DiscoveryYear: 2014, Distance: 800, StellarMagnitude: nan, MassMultiplier: 7, MassWrt: "Earth", OrbitalRadius: 2000},
		{Name: "e", PlanetType: "Neptune-like", DetectionMethod: "Direct Imaging", DiscoveryYear: 2009, Distance: 40, StellarMagnitude: 0, MassMultiplier: 20, MassWrt: "Neptune", OrbitalRadius: 80},
		{Name: "f", PlanetType: "Terrestrial", DetectionMethod: "Transit", DiscoveryYear: planet.InvalidYear, Distance: 0, StellarMagnitude: 13, MassMultiplier: 1, MassWrt: "Earth", OrbitalRadius: nan},
	})
}

func names(recs []planet.Record) []string {
	out := []string{}
	for _, r := range recs {
		out = append(out, r.Name)
	}
	return out
}

func TestScene2(t *testing.T) {
	store := testStore()
	all := filter.NewSelection("Radial Velocity", "Transit", "Direct Imaging")

	// Empty method selection matches nothing, whatever the year.
	for _, year := range []int{1990, 2011, 3000} {
		st := filter.State{YearMax: year}
		if got := Apply(store, Scene2Set(st)); len(got) != 0 {
			t.Errorf("year %d, no methods: got %v; want none", year, names(got))
		}
	}

	st := filter.State{Methods: all, YearMax: 2011}
	recs := Apply(store, Scene2Set(st))
	if diff := cmp.Diff([]string{"a", "b", "c", "e"}, names(recs)); diff != "" {
		t.Errorf("filtered mismatch (-want +got):\n%s", diff)
	}
	want := []TypeCount{{"Gas Giant", 2}, {"Super Earth", 1}, {"Neptune-like", 1}}
	if diff := cmp.Diff(want, TypeCounts(recs)); diff != "" {
		t.Errorf("TypeCounts mismatch (-want +got):\n%s", diff)
	}
}

func TestTypeCountsExcludeUnknown(t *testing.T) {
	store := testStore()
	st := filter.State{Methods: filter.NewSelection("Transit", "Radial Velocity", "Direct Imaging"), YearMax: 2020}
	recs := Apply(store, Scene2Set(st))
	sum := 0
	for _, c := range TypeCounts(recs) {
		if c.Type == UnknownType {
			t.Errorf("counts include %q", UnknownType)
		}
		sum += c.Count
	}
	known := 0
	for _, r := range recs {
		if r.PlanetType != UnknownType {
			known++
		}
	}
	if sum != known {
		t.Errorf("sum of counts = %d; want %d", sum, known)
	}
}

func TestCategoryZeroSelection(t *testing.T) {
	store := testStore()
	sets := map[string]func(filter.State) *filter.Set{
		"scene3": Scene3Set,
		"scene4": Scene4Set,
		"scene5": Scene5Set,
	}
	wide := filter.State{
		YearMax:   3000,
		Distance:  filter.Range{Min: -1e9, Max: 1e9},
		Magnitude: filter.Range{Min: -1e9, Max: 1e9},
	}
	for name, set := range sets {
		st := wide
		if got := Apply(store, set(st)); len(got) != 0 {
			t.Errorf("%s: both groups empty matched %v", name, names(got))
		}

		// Only types selected: methods act as "all".
		st.Types = filter.NewSelection("Gas Giant")
		for _, r := range Apply(store, set(st)) {
			if r.PlanetType != "Gas Giant" {
				t.Errorf("%s: types only matched %q", name, r.Name)
			}
		}

		// Only methods selected: types act as "all".
		st.Types = filter.Selection{}
		st.Methods = filter.NewSelection("Transit")
		for _, r := range Apply(store, set(st)) {
			if r.DetectionMethod != "Transit" {
				t.Errorf("%s: methods only matched %q", name, r.Name)
			}
		}
	}

	st := wide
	st.Methods = filter.NewSelection("Transit")
	if diff := cmp.Diff([]string{"b", "c", "d", "f"}, names(Apply(store, Scene3Set(st)))); diff != "" {
		t.Errorf("scene 3 methods only (-want +got):\n%s", diff)
	}
}

func TestYearCounts(t *testing.T) {
	recs := []planet.Record{{DiscoveryYear: 2011}, {DiscoveryYear: 2009}, {DiscoveryYear: 2009}, {DiscoveryYear: planet.InvalidYear}}
	want := []YearCount{{2009, 2}, {2011, 1}}
	if diff := cmp.Diff(want, YearCounts(recs)); diff != "" {
		t.Errorf("YearCounts mismatch (-want +got):\n%s", diff)
	}
	if got := YearCounts(nil); len(got) != 0 {
		t.Errorf("YearCounts(nil) = %v", got)
	}
}

func TestEarthMasses(t *testing.T) {
	for _, test := range []struct {
		mult float64
		wrt  string
		want float64
	}{
		{2, "Jupiter", 635.6},
		{3, "Earth", 3},
		// Other reference bodies pass through unchanged. This is
		// a known approximation, not a physical conversion.
		{20, "Neptune", 20},
		{1, "", 1},
	} {
		got := EarthMasses(&planet.Record{MassMultiplier: test.mult, MassWrt: test.wrt})
		if math.Abs(got-test.want) > 1e-9 {
			t.Errorf("EarthMasses(%v %s) = %v; want %v", test.mult, test.wrt, got, test.want)
		}
	}
}

func TestScene4(t *testing.T) {
	st := filter.State{Types: filter.NewSelection("Gas Giant", "Super Earth", "Unknown", "Neptune-like", "Terrestrial"), YearMax: 3000}
	pts := MassOrbits(Apply(testStore(), Scene4Set(st)))
	// d is beyond 1000 AU and f has no orbital radius.
	if diff := cmp.Diff([]string{"a", "b", "c", "e"}, names(recordsOf(pts))); diff != "" {
		t.Errorf("scene 4 mismatch (-want +got):\n%s", diff)
	}
	if math.Abs(pts[0].EarthMasses-635.6) > 1e-9 {
		t.Errorf("a: EarthMasses = %v", pts[0].EarthMasses)
	}

	st.YearMax = 2009
	pts = MassOrbits(Apply(testStore(), Scene4Set(st)))
	if diff := cmp.Diff([]string{"a", "e"}, names(recordsOf(pts))); diff != "" {
		t.Errorf("scene 4 year 2009 mismatch (-want +got):\n%s", diff)
	}
}

func recordsOf(pts []MassPoint) []planet.Record {
	out := make([]planet.Record, len(pts))
	for i, p := range pts {
		out[i] = p.Record
	}
	return out
}

func TestScene5ExcludesInvalid(t *testing.T) {
	store := testStore()
	st := filter.State{
		Types:   filter.NewSelection("Gas Giant", "Super Earth", "Unknown", "Neptune-like", "Terrestrial"),
		YearMax: 3000,
	}
	for _, rng := range []filter.Range{
		{Min: 0, Max: 1000},
		{Min: math.Inf(-1), Max: math.Inf(1)},
		{Min: -100, Max: 100},
	} {
		st.Distance, st.Magnitude = rng, rng
		for _, r := range Apply(store, Scene5Set(st)) {
			switch r.Name {
			case "c", "d", "e", "f":
				t.Errorf("range %v: %s has invalid or non-positive distance/magnitude but was kept", rng, r.Name)
			}
		}
	}

	st.Distance = filter.Range{Min: 0, Max: 100}
	st.Magnitude = filter.Range{Min: 0, Max: 20}
	if diff := cmp.Diff([]string{"a"}, names(Apply(store, Scene5Set(st)))); diff != "" {
		t.Errorf("scene 5 mismatch (-want +got):\n%s", diff)
	}
}

func TestMostCommon(t *testing.T) {
	if _, ok := MostCommon(nil); ok {
		t.Errorf("MostCommon(nil) reported a result")
	}
	got, _ := MostCommon([]TypeCount{{"a", 1}, {"b", 3}, {"c", 3}, {"d", 2}})
	if got.Type != "b" {
		t.Errorf("MostCommon = %v; want first maximum b", got)
	}
}

func TestKeplerPeak(t *testing.T) {
	for _, test := range []struct {
		years []YearCount
		want  YearCount
		ok    bool
	}{
		{[]YearCount{{2009, 50}, {2010, 4}, {2011, 9}, {2012, 9}, {2014, 100}}, YearCount{2011, 9}, true},
		{[]YearCount{{2009, 50}, {2013, 7}, {2014, 7}, {2016, 100}}, YearCount{2013, 7}, true},
		{[]YearCount{{2009, 50}, {2016, 100}}, YearCount{}, false},
		{nil, YearCount{}, false},
	} {
		got, ok := KeplerPeak(test.years)
		if got != test.want || ok != test.ok {
			t.Errorf("KeplerPeak(%v) = %v, %v; want %v, %v", test.years, got, ok, test.want, test.ok)
		}
	}
}

func TestSummary(t *testing.T) {
	recs := []planet.Record{{Name: "x", PlanetType: "Gas Giant"}, {Name: "y", PlanetType: "Super Earth"}}
	if got, want := Summary("Super Earth", 1, 2015, recs), "Type: Super Earth, count: 1 (up to 2015). Example: y"; got != want {
		t.Errorf("Summary = %q; want %q", got, want)
	}
	if got, want := Summary("Terrestrial", 0, 2015, recs), "Type: Terrestrial, count: 0 (up to 2015). Example: N/A"; got != want {
		t.Errorf("Summary = %q; want %q", got, want)
	}
}

func TestApplyIsRepeatable(t *testing.T) {
	store := testStore()
	st := filter.State{Methods: filter.NewSelection("Transit"), YearMax: 2020}
	first := TypeCounts(Apply(store, Scene2Set(st)))
	second := TypeCounts(Apply(store, Scene2Set(st)))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated query differs (-first +second):\n%s", diff)
	}
}
