// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

import (
	"fmt"
	"html"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// fontSize is the default font size in pixels.
const fontSize = 14

// RenderOptions control the interactive parts of SVG output.
type RenderOptions struct {
	// Tooltip, if non-nil, is drawn above everything else.
	Tooltip *Tooltip

	// Link, if non-nil, returns the URL a mark links to, or "".
	Link func(m *Mark) string
}

// WriteSVG renders c as an SVG document to w.
//
// Each mark is wrapped in a group with a <title> holding its tooltip
// text, so plain SVG viewers still show something on hover.
func (c *Canvas) WriteSVG(w io.Writer, opts *RenderOptions) error {
	if opts == nil {
		opts = &RenderOptions{}
	}
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(c.Width, c.Height, fmt.Sprintf(`font-size="%dpx" font-family="Roboto,Helvetica,Arial,sans-serif"`, fontSize))
	for _, e := range c.elts {
		m := e.mark
		if m == nil {
			writeElement(s, e)
			continue
		}
		s.Group(fmt.Sprintf(`class="mark" data-mark="%d"`, m.Index))
		if len(m.Tooltip) > 0 {
			s.Title(strings.Join(m.Tooltip, "\n"))
		}
		href := ""
		if opts.Link != nil {
			href = opts.Link(m)
		}
		if href != "" {
			s.Link(html.EscapeString(href), html.EscapeString(m.Key))
		}
		writeElement(s, e)
		if href != "" {
			s.LinkEnd()
		}
		s.Gend()
	}
	if opts.Tooltip != nil {
		writeTooltip(s, opts.Tooltip)
	}
	s.End()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	if err != nil {
		e.err = err
	}
	return n, err
}

func ri(x float64) int {
	return int(math.Round(x))
}

func writeElement(s *svg.SVG, e *Element) {
	a := attrs(e)
	switch e.Shape {
	case Text:
		s.Text(ri(e.X), ri(e.Y), e.Text, a...)
	case Rect:
		s.Rect(ri(e.X), ri(e.Y), ri(e.W), ri(e.H), a...)
	case Circle:
		s.Circle(ri(e.X), ri(e.Y), ri(e.R), a...)
	case Line:
		s.Line(ri(e.X), ri(e.Y), ri(e.X2), ri(e.Y2), a...)
	case Path:
		xs := make([]int, len(e.Points))
		ys := make([]int, len(e.Points))
		for i, p := range e.Points {
			xs[i], ys[i] = ri(p.X), ri(p.Y)
		}
		s.Polyline(xs, ys, a...)
	case Image:
		s.Image(ri(e.X), ri(e.Y), ri(e.W), ri(e.H), html.EscapeString(e.Text), a...)
	}
}

// attrs returns e's presentation attributes in the form svgo
// expects: a single string of name="value" pairs, or nothing.
func attrs(e *Element) []string {
	var a []string
	add := func(name, format string, args ...interface{}) {
		a = append(a, name+`="`+html.EscapeString(fmt.Sprintf(format, args...))+`"`)
	}
	if e.Fill != "" {
		add("fill", "%s", e.Fill)
	}
	if e.Stroke != "" {
		add("stroke", "%s", e.Stroke)
		if e.StrokeWidth != 0 {
			add("stroke-width", "%g", e.StrokeWidth)
		}
	}
	if e.Dash != "" {
		add("stroke-dasharray", "%s", e.Dash)
	}
	if e.Shape == Text {
		if e.Anchor != "" {
			add("text-anchor", "%s", e.Anchor)
		}
		if e.FontSize != 0 {
			add("font-size", "%gpx", e.FontSize)
		}
		if e.Bold {
			add("font-weight", "bold")
		}
		if e.DX != 0 {
			add("dx", "%gem", e.DX)
		}
		if e.DY != 0 {
			add("dy", "%gem", e.DY)
		}
	}
	if e.Rotate != 0 {
		add("transform", "rotate(%g %d %d)", e.Rotate, ri(e.X), ri(e.Y))
	}
	if len(a) == 0 {
		return nil
	}
	return []string{strings.Join(a, " ")}
}

// Tooltip box geometry, in pixels.
const (
	tipPadX     = 12
	tipPadY     = 8
	tipLine     = 16
	tipCharW    = 7
	tipFontSize = 12
)

func writeTooltip(s *svg.SVG, t *Tooltip) {
	width := 0
	for _, l := range t.Lines {
		if n := len([]rune(l)); n > width {
			width = n
		}
	}
	w := width*tipCharW + 2*tipPadX
	h := len(t.Lines)*tipLine + 2*tipPadY
	s.Gtransform(fmt.Sprintf("translate(%d,%d)", ri(t.X), ri(t.Y)))
	s.Roundrect(0, 0, w, h, 4, 4, `class="tooltip" fill="black" fill-opacity="0.8"`)
	for i, l := range t.Lines {
		style := fmt.Sprintf(`fill="white" font-size="%dpx"`, tipFontSize)
		if i == 0 {
			style += ` font-weight="bold"`
		}
		s.Text(tipPadX, tipPadY+(i+1)*tipLine-4, l, style)
	}
	s.Gend()
}
