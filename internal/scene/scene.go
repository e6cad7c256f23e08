// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene implements the five slides of the presentation and
// the controller that keeps each chart in step with its controls.
//
// Every scene owns a Panel and a chart.Canvas. Whenever a control of
// the panel changes, the scene reads the whole panel, recomputes its
// view from the full planet store, and redraws its canvas from
// scratch. Pointer events (Hover, Leave, Click) address marks by
// their index in the canvas.
package scene

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/filter"
	"github.com/sudham123/exoscenes/planet"
)

// A Scene is one slide of the presentation.
type Scene interface {
	// Number is the 1-based position of the scene.
	Number() int
	Title() string
	Panel() *Panel
	Canvas() *chart.Canvas

	// Update runs a full recompute and redraw cycle.
	Update()

	// Hover highlights mark and shows its tooltip near the pointer
	// position x, y.
	Hover(mark int, x, y float64) error
	// Leave undoes Hover.
	Leave(mark int) error
	// Click activates mark. Scenes without click behavior ignore it.
	Click(mark int) error
}

// An Observer is told about every completed update cycle: which
// scene ran, how many marks it drew, and how long it took.
type Observer func(scene int, marks int, d time.Duration)

// base holds what every scene shares. Concrete scenes set draw and,
// optionally, click.
type base struct {
	num    int
	title  string
	store  *planet.Store
	panel  *Panel
	canvas *chart.Canvas
	tips   *TooltipSlot
	obs    Observer

	draw  func()
	click func(m *chart.Mark)
}

func (b *base) Number() int           { return b.num }
func (b *base) Title() string         { return b.title }
func (b *base) Panel() *Panel         { return b.panel }
func (b *base) Canvas() *chart.Canvas { return b.canvas }

// start performs the initial cycle and subscribes b to its panel.
func (b *base) start() {
	b.panel.Subscribe(b.Update)
	b.Update()
}

func (b *base) Update() {
	t0 := time.Now()
	// The old marks are about to disappear.
	b.tips.ClearOwner(b.num)
	b.canvas.Clear()
	b.draw()
	if b.obs != nil {
		b.obs(b.num, len(b.canvas.Marks()), time.Since(t0))
	}
}

func (b *base) mark(i int) (*chart.Mark, error) {
	m := b.canvas.Mark(i)
	if m == nil {
		return nil, fmt.Errorf("scene %d has no mark %d", b.num, i)
	}
	return m, nil
}

func (b *base) Hover(i int, x, y float64) error {
	m, err := b.mark(i)
	if err != nil {
		return err
	}
	m.Highlight()
	b.tips.Show(b.num, m, chart.NewTooltip(m.Tooltip, x, y))
	return nil
}

func (b *base) Leave(i int) error {
	m, err := b.mark(i)
	if err != nil {
		return err
	}
	m.Restore()
	b.tips.Clear()
	return nil
}

func (b *base) Click(i int) error {
	m, err := b.mark(i)
	if err != nil {
		return err
	}
	if b.click != nil {
		b.click(m)
	}
	return nil
}

// state reads the filter state from the panel. Controls the panel
// lacks read as empty.
func (b *base) state() filter.State {
	p := b.panel
	st := filter.State{
		Types:     p.Checked(GroupTypes),
		Methods:   p.Checked(GroupMethods),
		Distance:  filter.Range{Min: p.Value(SliderDistanceMin), Max: p.Value(SliderDistanceMax)},
		Magnitude: filter.Range{Min: p.Value(SliderMagnitudeMin), Max: p.Value(SliderMagnitudeMax)},
	}
	// Scenes without a year slider leave YearMax unset.
	if v := p.Value(SliderYear); !math.IsNaN(v) {
		st.YearMax = int(v)
	}
	return st
}

// echo writes the current value of each slider into its display
// region.
func (b *base) echo(pairs ...string) {
	for i := 0; i+1 < len(pairs); i += 2 {
		b.panel.SetText(pairs[i+1], formatValue(b.panel.Value(pairs[i])))
	}
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
