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

// TimelineScene is the line chart of discoveries per year, filtered
// by planet type and detection method.
type TimelineScene struct {
	base
	years []query.YearCount
}

const (
	timelineWidth  = 700
	timelineHeight = 400

	// fewRecords is the record count below which the total is
	// spelled out above the chart.
	fewRecords = 10
)

var timelineMargin = chart.Margin{Top: 30, Right: 30, Bottom: 60, Left: 80}

func newTimelineScene(num int, store *planet.Store, cfg *config.Config, tips *TooltipSlot, obs Observer) *TimelineScene {
	in := cfg.Scenes.Scene3
	p := NewPanel()
	p.AddGroup(GroupTypes, cfg.Types, in.Types)
	p.AddGroup(GroupMethods, cfg.Methods, in.Methods)
	s := &TimelineScene{}
	s.base = base{
		num:    num,
		title:  "Discoveries Over Time",
		store:  store,
		panel:  p,
		canvas: chart.New(timelineWidth, timelineHeight),
		tips:   tips,
		obs:    obs,
		draw:   s.draw,
	}
	s.start()
	return s
}

func (s *TimelineScene) draw() {
	filtered := query.Apply(s.store, query.Scene3Set(s.state()))
	s.years = query.YearCounts(filtered)

	c := s.canvas
	if len(s.years) == 0 {
		c.Message(timelineWidth/2, timelineHeight/2, "Please select at least one filter to view data")
		return
	}

	f := chart.NewFrame(timelineWidth, timelineHeight, timelineMargin)
	first, last := s.years[0].Year, s.years[len(s.years)-1].Year
	max := 0
	for _, yc := range s.years {
		if yc.Count > max {
			max = yc.Count
		}
	}
	x := chart.NewLinear(float64(first), float64(last), 0, f.Width)
	y := chart.NewLinear(0, float64(max), f.Height, 0).Nice()

	c.AxisBottom(f, yearTicks(x), 0)
	c.AxisLeft(f, chart.LinearTicks(y, 10, nil))
	c.YLabel(f, "Number of Discoveries")
	c.XLabel(f, "Discovery Year")
	if len(filtered) < fewRecords {
		c.Caption(f, f.Width/2, -10, 14, fmt.Sprintf("Total: %d planets found", len(filtered)))
	}

	pos := func(yc query.YearCount) (float64, float64) {
		return f.At(x.Map(float64(yc.Year)), y.Map(float64(yc.Count)))
	}
	line := make([]chart.Point, len(s.years))
	for i, yc := range s.years {
		line[i].X, line[i].Y = pos(yc)
	}
	c.Add(chart.Element{Shape: chart.Path, Points: line, Fill: "none", Stroke: chart.PointColor, StrokeWidth: 3})

	for _, yc := range s.years {
		px, py := pos(yc)
		year := strconv.Itoa(yc.Year)
		tip := []string{year, fmt.Sprintf("Discoveries: %d", yc.Count)}
		c.AddMark(chart.Element{Shape: chart.Circle, X: px, Y: py, R: 4, Fill: chart.PointColor},
			year, tip, chart.Hover{R: 6})
	}

	if peak, ok := query.KeplerPeak(s.years); ok {
		px, py := pos(peak)
		c.Add(chart.Element{Shape: chart.Line, X: px, Y: py - 10, X2: px, Y2: py - 30,
			Stroke: chart.AnnotationColor, StrokeWidth: 2, Dash: "5,5"})
		c.Add(chart.Element{Shape: chart.Text, X: px, Y: py - 45, Text: "NASA Kepler Mission",
			Anchor: "middle", Fill: chart.AnnotationColor, FontSize: 12, Bold: true})
	}
}

// yearTicks returns up to eight whole-year ticks of x.
func yearTicks(x *chart.Linear) []chart.Tick {
	var ticks []chart.Tick
	for _, v := range x.Ticks(8) {
		if v != math.Trunc(v) {
			continue
		}
		ticks = append(ticks, chart.Tick{Pos: x.Map(v), Label: chart.IntFormat(v)})
	}
	return ticks
}

// Years returns the per-year counts drawn by the last cycle.
func (s *TimelineScene) Years() []query.YearCount {
	return s.years
}
