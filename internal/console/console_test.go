// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package console

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/internal/scene"
	"github.com/sudham123/exoscenes/planet"
)

func newConsole() (*Console, *scene.Presentation, *bytes.Buffer) {
	store := planet.NewStore([]planet.Record{
		{Name: "51 Pegasi b", PlanetType: "Gas Giant", DetectionMethod: "Radial Velocity", DiscoveryYear: 1995,
			Distance: 15.5, StellarMagnitude: 5.45, MassMultiplier: 0.46, MassWrt: "Jupiter", OrbitalRadius: 0.05},
		{Name: "Kepler-22 b", PlanetType: "Super Earth", DetectionMethod: "Transit", DiscoveryYear: 2011,
			Distance: 190, StellarMagnitude: 11.7, MassMultiplier: 9.1, MassWrt: "Earth", OrbitalRadius: 0.85},
	})
	p := scene.New(store, config.Default(), nil)
	var out bytes.Buffer
	return New(p, &out, nil), p, &out
}

func TestRun(t *testing.T) {
	c, p, out := newConsole()
	script := strings.Join([]string{
		"next",
		"click 2 0",
		`uncheck 2 methods "Radial Velocity"`,
		"marks 2",
		"set 2 year 1990",
		"marks 2",
		"bogus",
		"hover 5 1 100 50",
		"quit",
		"next",
	}, "\n")
	if err := c.Run(strings.NewReader(script)); err != nil {
		t.Fatal(err)
	}
	got := out.String()
	for _, want := range []string{
		"scene 2: Planet Types",
		"Type: Gas Giant, count: 1 (up to 2023). Example: 51 Pegasi b",
		"0\tSuper Earth\tCount: 1; Year: ≤2023",
		"No planets found with selected filters",
		`error: unknown command "bogus"`,
		"scene 5 at (110, 40):",
		"  Kepler-22 b",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
	// Nothing runs after quit.
	if n := p.Active().Number(); n != 2 {
		t.Errorf("active scene %d; want 2", n)
	}
}

func TestExecErrors(t *testing.T) {
	c, _, _ := newConsole()
	for _, line := range []string{
		"show",
		"show x",
		"show 9",
		"check 2 methods Teleportation",
		"set 2 year soon",
		"set 2 nope 3",
		"hover 2 0 x y",
		"click 2 17",
		`check 2 "methods`,
	} {
		if err := c.Exec(line); err == nil {
			t.Errorf("%q succeeded", line)
		}
	}
	if err := c.Exec("   "); err != nil {
		t.Errorf("blank line: %v", err)
	}
}

func TestSVGFile(t *testing.T) {
	c, _, _ := newConsole()
	path := filepath.Join(t.TempDir(), "scene3.svg")
	if err := c.Exec("svg 3 " + path); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(data, []byte("Discovery Year")) {
		t.Errorf("scene 3 SVG lacks its axis title:\n%s", data)
	}
}
