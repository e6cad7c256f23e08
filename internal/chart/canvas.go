// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chart is a small retained-mode chart canvas.
//
// A Canvas holds an ordered list of drawing elements. Some elements
// are marks: elements bound to one data item, which carry tooltip
// text and can be highlighted while the pointer is over them.
// Scenes redraw by clearing the canvas and adding every element
// again; there is no diffing.
package chart

import (
	"fmt"
)

// Shape is the kind of an Element.
type Shape int

const (
	Text Shape = iota
	Rect
	Circle
	Line
	Path
	Image
)

func (s Shape) String() string {
	switch s {
	case Text:
		return "text"
	case Rect:
		return "rect"
	case Circle:
		return "circle"
	case Line:
		return "line"
	case Path:
		return "path"
	case Image:
		return "image"
	}
	return fmt.Sprintf("Shape(%d)", int(s))
}

// Point is a position in canvas coordinates.
type Point struct {
	X, Y float64
}

// Element is a single drawing element. Which fields are meaningful
// depends on Shape.
type Element struct {
	Shape Shape

	// X, Y is the rectangle or image origin, circle center, line
	// start, or text anchor point.
	X, Y float64

	// X2, Y2 is the end of a line.
	X2, Y2 float64

	// W, H is the size of a rectangle or image.
	W, H float64

	// R is the radius of a circle.
	R float64

	// Points is the polyline of a path.
	Points []Point

	// Text is the content of a text element or the href of an
	// image.
	Text string

	Fill        string
	Stroke      string
	StrokeWidth float64
	Dash        string

	// Anchor is the SVG text-anchor of a text element.
	Anchor   string
	FontSize float64
	Bold     bool

	// Rotate rotates the element by this many degrees around X, Y.
	Rotate float64

	// DX and DY are text offsets in em units.
	DX, DY float64

	mark *Mark
}

// Mark returns the mark bound to e, or nil if e is decoration.
func (e *Element) Mark() *Mark {
	return e.mark
}

// Canvas is an ordered collection of elements.
type Canvas struct {
	Width, Height int

	elts  []*Element
	marks []*Mark
}

// New returns an empty width x height canvas.
func New(width, height int) *Canvas {
	return &Canvas{Width: width, Height: height}
}

// Clear removes every element and mark from c.
func (c *Canvas) Clear() {
	c.elts = nil
	c.marks = nil
}

// Add appends a copy of e to c and returns it.
func (c *Canvas) Add(e Element) *Element {
	e.mark = nil
	p := &e
	c.elts = append(c.elts, p)
	return p
}

// AddMark appends e to c as a mark identified by key.
func (c *Canvas) AddMark(e Element, key string, tooltip []string, hover Hover) *Mark {
	el := c.Add(e)
	m := &Mark{
		Element: el,
		Index:   len(c.marks),
		Key:     key,
		Tooltip: tooltip,
		hover:   hover,
		base:    hoverState{el.Fill, el.R},
	}
	el.mark = m
	c.marks = append(c.marks, m)
	return m
}

// Elements returns the elements of c in drawing order.
func (c *Canvas) Elements() []*Element {
	return c.elts
}

// Marks returns the marks of c in the order they were added.
func (c *Canvas) Marks() []*Mark {
	return c.marks
}

// Mark returns the i'th mark of c, or nil if there is none.
func (c *Canvas) Mark(i int) *Mark {
	if i < 0 || i >= len(c.marks) {
		return nil
	}
	return c.marks[i]
}

// Empty reports whether c has no elements.
func (c *Canvas) Empty() bool {
	return len(c.elts) == 0
}

// Texts returns the content of every text element of c, in order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, e := range c.elts {
		if e.Shape == Text {
			out = append(out, e.Text)
		}
	}
	return out
}

// Message draws a single centered message at x, y. Scenes use it to
// show that a filter matched nothing.
func (c *Canvas) Message(x, y float64, text string) *Element {
	return c.Add(Element{Shape: Text, X: x, Y: y, Text: text, Anchor: "middle", Fill: LabelColor})
}
