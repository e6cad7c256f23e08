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

// TypeScene is the bar chart of planet counts by type, filtered by
// detection method and a discovery year ceiling. Clicking a bar
// writes a summary of that type into the info region.
type TypeScene struct {
	base

	// The view of the last cycle, for Click.
	filtered []planet.Record
	counts   []query.TypeCount
	yearMax  int
}

const (
	typeSVGWidth  = 800
	typeSVGHeight = 450
	typeWidth     = 700
)

var typeMargin = chart.Margin{Top: 30, Right: 30, Bottom: 90, Left: 90}

func newTypeScene(num int, store *planet.Store, cfg *config.Config, tips *TooltipSlot, obs Observer) *TypeScene {
	in := cfg.Scenes.Scene2
	p := NewPanel()
	p.AddGroup(GroupMethods, cfg.Methods, in.Methods)
	p.AddSlider(SliderYear, cfg.Years.Min, cfg.Years.Max, float64(in.Year))
	s := &TypeScene{}
	s.base = base{
		num:    num,
		title:  "Planet Types",
		store:  store,
		panel:  p,
		canvas: chart.New(typeSVGWidth, typeSVGHeight),
		tips:   tips,
		obs:    obs,
		draw:   s.draw,
		click:  s.clicked,
	}
	s.start()
	return s
}

func (s *TypeScene) draw() {
	st := s.state()
	s.echo(SliderYear, RegionYear)
	s.filtered = query.Apply(s.store, query.Scene2Set(st))
	s.counts = query.TypeCounts(s.filtered)
	s.yearMax = st.YearMax

	c := s.canvas
	if len(s.counts) == 0 {
		c.Message(typeWidth/2, typeSVGHeight/2, "No planets found with selected filters")
		return
	}

	f := chart.NewFrame(typeWidth, typeSVGHeight, typeMargin)
	types := make([]string, len(s.counts))
	max := 0
	for i, tc := range s.counts {
		types[i] = tc.Type
		if tc.Count > max {
			max = tc.Count
		}
	}
	x := chart.NewBand(types, 0, f.Width, 0.3)
	y := chart.NewLinear(0, float64(max), f.Height, 0).Nice()

	c.AxisBottom(f, chart.BandTicks(x), -45)
	c.AxisLeft(f, chart.LinearTicks(y, 10, nil))
	c.YLabel(f, "Number of Planets")
	c.XLabel(f, "Planet Type")

	bw := x.Bandwidth()
	for _, tc := range s.counts {
		px, _ := x.Pos(tc.Type)
		py := y.Map(float64(tc.Count))
		ax, ay := f.At(px, py)
		tip := []string{
			tc.Type,
			fmt.Sprintf("Count: %d", tc.Count),
			fmt.Sprintf("Year: ≤%d", st.YearMax),
		}
		c.AddMark(chart.Element{Shape: chart.Rect, X: ax, Y: ay, W: bw, H: f.Height - py, Fill: chart.BarColor},
			tc.Type, tip, chart.Hover{Fill: chart.BarHoverColor})
	}

	if best, ok := query.MostCommon(s.counts); ok {
		px, _ := x.Pos(best.Type)
		ax, ay := f.At(px+bw/2, y.Map(float64(best.Count)))
		c.Add(chart.Element{Shape: chart.Text, X: ax, Y: ay - 10, Text: "Most Common",
			Anchor: "middle", Fill: chart.AnnotationColor, FontSize: 11, Bold: true})
		c.Add(chart.Element{Shape: chart.Line, X: ax, Y: ay - 15, X2: ax, Y2: ay - 5,
			Stroke: chart.AnnotationColor, StrokeWidth: 1.5})
	}
}

func (s *TypeScene) clicked(m *chart.Mark) {
	tc := s.counts[m.Index]
	s.panel.SetText(RegionInfo, query.Summary(tc.Type, tc.Count, s.yearMax, s.filtered))
}

// Counts returns the type counts drawn by the last cycle.
func (s *TypeScene) Counts() []query.TypeCount {
	return s.counts
}
