// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Colors shared by the scenes.
const (
	LabelColor      = "#ccd6f6"
	AnnotationColor = "#ff6b6b"
	PointColor      = "#1d8cf8"
	BarColor        = "steelblue"
	BarHoverColor   = "#63b3ed"
)

// Hover describes how a mark changes while highlighted. Zero fields
// are left unchanged.
type Hover struct {
	Fill string
	R    float64
}

type hoverState struct {
	fill string
	r    float64
}

// A Mark is an element bound to one data item.
type Mark struct {
	*Element

	// Index is the position of the mark in its canvas.
	Index int

	// Key identifies the data item (a category, a year, a planet
	// name).
	Key string

	// Tooltip is the tooltip text, one entry per line. The first
	// line is the heading.
	Tooltip []string

	hover       Hover
	base        hoverState
	highlighted bool
}

// Highlight applies m's hover style.
func (m *Mark) Highlight() {
	if m.hover.Fill != "" {
		m.Fill = m.hover.Fill
	}
	if m.hover.R != 0 {
		m.R = m.hover.R
	}
	m.highlighted = true
}

// Restore undoes Highlight.
func (m *Mark) Restore() {
	m.Fill, m.R = m.base.fill, m.base.r
	m.highlighted = false
}

// Highlighted reports whether m is currently highlighted.
func (m *Mark) Highlighted() bool {
	return m.highlighted
}

// Tooltip offsets from the pointer position.
const (
	tooltipDX = 10
	tooltipDY = -10
)

// A Tooltip is a floating box of text near the pointer.
type Tooltip struct {
	Lines []string
	X, Y  float64
}

// NewTooltip returns a tooltip showing lines, placed relative to the
// pointer at px, py.
func NewTooltip(lines []string, px, py float64) *Tooltip {
	return &Tooltip{Lines: append([]string(nil), lines...), X: px + tooltipDX, Y: py + tooltipDY}
}
