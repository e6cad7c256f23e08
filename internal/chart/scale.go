// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"math"
	"strconv"

	"github.com/aclements/go-moremath/scale"
	"github.com/dustin/go-humanize"
)

// defaultTicks is the number of ticks axes aim for.
const defaultTicks = 10

// Linear maps a continuous domain onto an output range.
type Linear struct {
	s      scale.Linear
	r0, r1 float64
}

// NewLinear returns a scale mapping [min, max] onto [r0, r1]. r1 may
// be less than r0 to flip an axis.
func NewLinear(min, max, r0, r1 float64) *Linear {
	return &Linear{s: scale.Linear{Min: min, Max: max}, r0: r0, r1: r1}
}

// Nice extends the domain of l to round tick values.
func (l *Linear) Nice() *Linear {
	if l.degenerate() {
		return l
	}
	l.s.Nice(scale.TickOptions{Max: defaultTicks})
	return l
}

func (l *Linear) degenerate() bool {
	return !(l.s.Min < l.s.Max)
}

// Domain returns the input domain of l.
func (l *Linear) Domain() (min, max float64) {
	return l.s.Min, l.s.Max
}

// Map maps x from the domain to the range of l. Values outside the
// domain extrapolate linearly. A single-value domain maps everything
// to the middle of the range.
func (l *Linear) Map(x float64) float64 {
	if l.degenerate() {
		return (l.r0 + l.r1) / 2
	}
	return l.r0 + l.s.Map(x)*(l.r1-l.r0)
}

// Ticks returns at most n tick values spanning the domain of l.
func (l *Linear) Ticks(n int) []float64 {
	if l.degenerate() {
		return []float64{l.s.Min}
	}
	major, _ := l.s.Ticks(scale.TickOptions{Max: n})
	return major
}

// Band maps discrete categories onto evenly spaced bands.
type Band struct {
	domain  []string
	index   map[string]int
	r0, r1  float64
	padding float64
}

// NewBand returns a band scale of domain over [r0, r1]. padding is
// the fraction of each step left empty between bands, and also the
// number of steps left empty at each end.
func NewBand(domain []string, r0, r1, padding float64) *Band {
	index := make(map[string]int, len(domain))
	for i, d := range domain {
		if _, ok := index[d]; !ok {
			index[d] = i
		}
	}
	return &Band{domain, index, r0, r1, padding}
}

func (b *Band) step() float64 {
	return (b.r1 - b.r0) / math.Max(1, float64(len(b.domain))-b.padding+2*b.padding)
}

func (b *Band) start() float64 {
	n := float64(len(b.domain))
	return b.r0 + (b.r1-b.r0-b.step()*(n-b.padding))/2
}

// Pos returns the start of v's band. ok is false if v is not in the
// domain.
func (b *Band) Pos(v string) (pos float64, ok bool) {
	i, ok := b.index[v]
	if !ok {
		return math.NaN(), false
	}
	return b.start() + b.step()*float64(i), true
}

// Bandwidth returns the width of each band.
func (b *Band) Bandwidth() float64 {
	return b.step() * (1 - b.padding)
}

// Domain returns the categories of b.
func (b *Band) Domain() []string {
	return b.domain
}

// Tick is a labeled position along an axis.
type Tick struct {
	Pos   float64
	Label string
}

// LinearTicks returns about n ticks of l labeled by format. If format
// is nil, numbers get thousands separators.
func LinearTicks(l *Linear, n int, format func(float64) string) []Tick {
	if format == nil {
		format = humanize.Commaf
	}
	var ticks []Tick
	for _, v := range l.Ticks(n) {
		ticks = append(ticks, Tick{l.Map(v), format(v)})
	}
	return ticks
}

// IntFormat formats a tick as an integer with no separators.
func IntFormat(v float64) string {
	return strconv.Itoa(int(math.Round(v)))
}

// BandTicks returns a tick centered on each band of b.
func BandTicks(b *Band) []Tick {
	ticks := make([]Tick, 0, len(b.domain))
	for _, d := range b.domain {
		pos, _ := b.Pos(d)
		ticks = append(ticks, Tick{pos + b.Bandwidth()/2, d})
	}
	return ticks
}
