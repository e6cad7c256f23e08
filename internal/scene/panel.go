// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"math"
	"sort"

	"github.com/sudham123/exoscenes/internal/filter"
)

// Control and display names used by the scenes.
const (
	GroupTypes   = "types"
	GroupMethods = "methods"

	SliderYear         = "year"
	SliderDistanceMin  = "distance-min"
	SliderDistanceMax  = "distance-max"
	SliderMagnitudeMin = "magnitude-min"
	SliderMagnitudeMax = "magnitude-max"

	RegionYear         = "year-display"
	RegionInfo         = "info"
	RegionDistanceMin  = "distance-min-display"
	RegionDistanceMax  = "distance-max-display"
	RegionMagnitudeMin = "magnitude-min-display"
	RegionMagnitudeMax = "magnitude-max-display"
)

// CheckGroup is a group of checkboxes.
type CheckGroup struct {
	Name    string
	Options []string
	checked map[string]bool
}

// Slider is a single-value numeric input.
type Slider struct {
	Name     string
	Min, Max float64
	Value    float64
}

// Panel is the control surface of one scene: checkbox groups, sliders,
// and text regions the scene writes into. Changing a control calls
// every subscriber synchronously, in subscription order.
type Panel struct {
	groups  []*CheckGroup
	sliders []*Slider
	texts   map[string]string
	subs    []func()
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	return &Panel{texts: make(map[string]string)}
}

// AddGroup adds a checkbox group with the given options. The options
// in checked start checked.
func (p *Panel) AddGroup(name string, options, checked []string) *CheckGroup {
	g := &CheckGroup{Name: name, Options: append([]string(nil), options...), checked: make(map[string]bool)}
	for _, c := range checked {
		g.checked[c] = true
	}
	p.groups = append(p.groups, g)
	return g
}

// AddSlider adds a slider with bounds [min, max] and initial value
// v, clamped to the bounds.
func (p *Panel) AddSlider(name string, min, max, v float64) *Slider {
	s := &Slider{Name: name, Min: min, Max: max}
	s.Value = s.clamp(v)
	p.sliders = append(p.sliders, s)
	return s
}

func (s *Slider) clamp(v float64) float64 {
	return math.Max(s.Min, math.Min(s.Max, v))
}

// Subscribe arranges for fn to be called after every control change.
func (p *Panel) Subscribe(fn func()) {
	p.subs = append(p.subs, fn)
}

func (p *Panel) changed() {
	for _, fn := range p.subs {
		fn()
	}
}

// Groups returns the checkbox groups of p.
func (p *Panel) Groups() []*CheckGroup {
	return p.groups
}

// Sliders returns the sliders of p.
func (p *Panel) Sliders() []*Slider {
	return p.sliders
}

func (p *Panel) group(name string) *CheckGroup {
	for _, g := range p.groups {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (p *Panel) slider(name string) *Slider {
	for _, s := range p.sliders {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// IsChecked reports whether option is checked in g.
func (g *CheckGroup) IsChecked(option string) bool {
	return g.checked[option]
}

// Checked returns the checked options of group, in option order.
func (p *Panel) Checked(group string) filter.Selection {
	g := p.group(group)
	if g == nil {
		return filter.Selection{}
	}
	var vals []string
	for _, o := range g.Options {
		if g.checked[o] {
			vals = append(vals, o)
		}
	}
	return filter.NewSelection(vals...)
}

// Value returns the current value of slider.
func (p *Panel) Value(slider string) float64 {
	if s := p.slider(slider); s != nil {
		return s.Value
	}
	return math.NaN()
}

// SetChecked checks or unchecks option in group and notifies
// subscribers.
func (p *Panel) SetChecked(group, option string, checked bool) error {
	g := p.group(group)
	if g == nil {
		return fmt.Errorf("no checkbox group %q", group)
	}
	known := false
	for _, o := range g.Options {
		if o == option {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("group %q has no option %q", group, option)
	}
	if checked {
		g.checked[option] = true
	} else {
		delete(g.checked, option)
	}
	p.changed()
	return nil
}

// Toggle flips option in group and notifies subscribers.
func (p *Panel) Toggle(group, option string) error {
	g := p.group(group)
	if g == nil {
		return fmt.Errorf("no checkbox group %q", group)
	}
	return p.SetChecked(group, option, !g.checked[option])
}

// SetValue moves slider to v, clamped to its bounds, and notifies
// subscribers.
func (p *Panel) SetValue(slider string, v float64) error {
	s := p.slider(slider)
	if s == nil {
		return fmt.Errorf("no slider %q", slider)
	}
	if math.IsNaN(v) {
		return fmt.Errorf("slider %q: value is not a number", slider)
	}
	s.Value = s.clamp(v)
	p.changed()
	return nil
}

// SetText sets the content of a display region. It does not notify
// subscribers.
func (p *Panel) SetText(region, text string) {
	p.texts[region] = text
}

// Text returns the content of a display region.
func (p *Panel) Text(region string) string {
	return p.texts[region]
}

// Regions returns the names of the display regions written so far,
// sorted.
func (p *Panel) Regions() []string {
	names := make([]string, 0, len(p.texts))
	for name := range p.texts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
