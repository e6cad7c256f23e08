// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/internal/query"
	"github.com/sudham123/exoscenes/planet"
)

// BrightnessScene is the scatter plot of distance against host star
// magnitude, restricted to slider-controlled ranges.
type BrightnessScene struct {
	base
	recs []planet.Record
}

const (
	brightnessWidth  = 700
	brightnessHeight = 500

	// The canvas is taller than the chart so the count caption
	// below the x axis title stays visible.
	brightnessCanvasHeight = 530
)

var brightnessMargin = chart.Margin{Top: 30, Right: 30, Bottom: 80, Left: 80}

func newBrightnessScene(num int, store *planet.Store, cfg *config.Config, tips *TooltipSlot, obs Observer) *BrightnessScene {
	in := cfg.Scenes.Scene5
	p := NewPanel()
	p.AddGroup(GroupTypes, cfg.Types, in.Types)
	p.AddGroup(GroupMethods, cfg.Methods, in.Methods)
	p.AddSlider(SliderYear, cfg.Years.Min, cfg.Years.Max, float64(in.Year))
	p.AddSlider(SliderDistanceMin, cfg.Distance.Min, cfg.Distance.Max, in.Distance.Min)
	p.AddSlider(SliderDistanceMax, cfg.Distance.Min, cfg.Distance.Max, in.Distance.Max)
	p.AddSlider(SliderMagnitudeMin, cfg.Magnitude.Min, cfg.Magnitude.Max, in.Magnitude.Min)
	p.AddSlider(SliderMagnitudeMax, cfg.Magnitude.Min, cfg.Magnitude.Max, in.Magnitude.Max)
	s := &BrightnessScene{}
	s.base = base{
		num:    num,
		title:  "Distance and Brightness",
		store:  store,
		panel:  p,
		canvas: chart.New(brightnessWidth, brightnessCanvasHeight),
		tips:   tips,
		obs:    obs,
		draw:   s.draw,
	}
	s.start()
	return s
}

func (s *BrightnessScene) draw() {
	st := s.state()
	s.echo(
		SliderYear, RegionYear,
		SliderDistanceMin, RegionDistanceMin,
		SliderDistanceMax, RegionDistanceMax,
		SliderMagnitudeMin, RegionMagnitudeMin,
		SliderMagnitudeMax, RegionMagnitudeMax,
	)
	s.recs = query.Apply(s.store, query.Scene5Set(st))

	c := s.canvas
	if len(s.recs) == 0 {
		c.Message(brightnessWidth/2, brightnessHeight/2, "No data found with selected filters and ranges")
		return
	}

	f := chart.NewFrame(brightnessWidth, brightnessHeight, brightnessMargin)
	x := chart.NewLinear(st.Distance.Min, st.Distance.Max, 0, f.Width)
	y := chart.NewLinear(st.Magnitude.Min, st.Magnitude.Max, f.Height, 0)

	c.AxisBottom(f, chart.LinearTicks(x, 10, nil), 0)
	c.AxisLeft(f, chart.LinearTicks(y, 10, nil))
	c.YLabel(f, "Stellar Magnitude")
	c.XLabel(f, "Distance (parsecs)")
	c.Title(f, "Planet Distance vs Host Star Brightness")
	c.Caption(f, f.Width/2, f.Height+f.Bottom+20, 12, fmt.Sprintf("%d planets shown", len(s.recs)))

	for _, r := range s.recs {
		px, py := f.At(x.Map(r.Distance), y.Map(r.StellarMagnitude))
		tip := []string{
			r.Name,
			fmt.Sprintf("Distance: %.1f pc", r.Distance),
			fmt.Sprintf("Stellar Magnitude: %.2f", r.StellarMagnitude),
			"Type: " + r.PlanetType,
			"Method: " + r.DetectionMethod,
		}
		c.AddMark(chart.Element{Shape: chart.Circle, X: px, Y: py, R: 4, Fill: chart.PointColor},
			r.Name, tip, chart.Hover{R: 6})
	}
}

// Records returns the records plotted by the last cycle.
func (s *BrightnessScene) Records() []planet.Record {
	return s.recs
}
