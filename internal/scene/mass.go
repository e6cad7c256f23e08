// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"math"
	"strconv"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/internal/query"
	"github.com/sudham123/exoscenes/planet"
)

// MassScene is the scatter plot of planet mass (in Earth masses)
// against orbital radius.
type MassScene struct {
	base
	points []query.MassPoint
}

const (
	massWidth  = 700
	massHeight = 500

	// Fixed axis domains. Points outside them are drawn where they
	// fall, off the plot area.
	massMaxOrbit = 500
	massMaxMass  = 10000
)

var massMargin = chart.Margin{Top: 30, Right: 30, Bottom: 80, Left: 80}

func newMassScene(num int, store *planet.Store, cfg *config.Config, tips *TooltipSlot, obs Observer) *MassScene {
	in := cfg.Scenes.Scene4
	p := NewPanel()
	p.AddGroup(GroupTypes, cfg.Types, in.Types)
	p.AddGroup(GroupMethods, cfg.Methods, in.Methods)
	p.AddSlider(SliderYear, cfg.Years.Min, cfg.Years.Max, float64(in.Year))
	s := &MassScene{}
	s.base = base{
		num:    num,
		title:  "Mass and Orbit",
		store:  store,
		panel:  p,
		canvas: chart.New(massWidth, massHeight),
		tips:   tips,
		obs:    obs,
		draw:   s.draw,
	}
	s.start()
	return s
}

func (s *MassScene) draw() {
	s.echo(SliderYear, RegionYear)
	s.points = query.MassOrbits(query.Apply(s.store, query.Scene4Set(s.state())))

	c := s.canvas
	if len(s.points) == 0 {
		c.Message(massWidth/2, massHeight/2, "No data found with selected filters")
		return
	}

	f := chart.NewFrame(massWidth, massHeight, massMargin)
	x := chart.NewLinear(0, massMaxOrbit, 0, f.Width)
	y := chart.NewLinear(0, massMaxMass, f.Height, 0).Nice()

	c.AxisBottom(f, chart.LinearTicks(x, 10, nil), 0)
	c.AxisLeft(f, chart.LinearTicks(y, 10, nil))
	c.YLabel(f, "Mass (Earth Masses)")
	c.XLabel(f, "Orbital Radius (AU)")
	c.Title(f, fmt.Sprintf("Planet Mass vs Orbital Distance (≤%d AU)", query.MaxOrbitalRadius))

	for _, p := range s.points {
		px, py := f.At(x.Map(p.OrbitalRadius), y.Map(p.EarthMasses))
		if math.IsNaN(px) || math.IsNaN(py) {
			continue
		}
		tip := []string{
			p.Name,
			fmt.Sprintf("Mass: %.1f Earth masses", p.EarthMasses),
			"Orbit: " + strconv.FormatFloat(p.OrbitalRadius, 'f', -1, 64) + " AU",
			"Type: " + p.PlanetType,
			"Method: " + p.DetectionMethod,
		}
		c.AddMark(chart.Element{Shape: chart.Circle, X: px, Y: py, R: 4, Fill: chart.PointColor},
			p.Name, tip, chart.Hover{R: 6})
	}
}

// Points returns the points computed by the last cycle, including
// any that could not be drawn.
func (s *MassScene) Points() []query.MassPoint {
	return s.points
}
