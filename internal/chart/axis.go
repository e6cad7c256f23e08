// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chart

// Margin is the space around a plot area.
type Margin struct {
	Top, Right, Bottom, Left float64
}

// Frame is the plot area of a chart in canvas coordinates, together
// with the margin around it.
type Frame struct {
	Margin
	Width, Height float64
}

// NewFrame returns the plot area left inside a width x height chart
// by margin m.
func NewFrame(width, height float64, m Margin) Frame {
	return Frame{m, width - m.Left - m.Right, height - m.Top - m.Bottom}
}

// At translates plot-area coordinates to canvas coordinates.
func (f Frame) At(x, y float64) (float64, float64) {
	return f.Left + x, f.Top + y
}

const (
	tickSize  = 6
	tickColor = "#8892b0"
	axisFont  = 10
)

// AxisBottom draws a horizontal axis along the bottom of f. If
// rotate is non-zero, tick labels are rotated by that many degrees
// and anchored at their end.
func (c *Canvas) AxisBottom(f Frame, ticks []Tick, rotate float64) {
	x0, y := f.At(0, f.Height)
	x1 := x0 + f.Width
	c.Add(Element{Shape: Line, X: x0, Y: y, X2: x1, Y2: y, Stroke: tickColor, StrokeWidth: 1})
	for _, t := range ticks {
		x := x0 + t.Pos
		c.Add(Element{Shape: Line, X: x, Y: y, X2: x, Y2: y + tickSize, Stroke: tickColor, StrokeWidth: 1})
		label := Element{Shape: Text, X: x, Y: y + tickSize + 3, Text: t.Label, Fill: LabelColor, FontSize: axisFont, Anchor: "middle", DY: 0.71}
		if rotate != 0 {
			label.Anchor = "end"
			label.Rotate = rotate
			label.DX, label.DY = -0.8, 0.15
			label.FontSize = 12
		}
		c.Add(label)
	}
}

// AxisLeft draws a vertical axis along the left of f.
func (c *Canvas) AxisLeft(f Frame, ticks []Tick) {
	x, y0 := f.At(0, 0)
	y1 := y0 + f.Height
	c.Add(Element{Shape: Line, X: x, Y: y0, X2: x, Y2: y1, Stroke: tickColor, StrokeWidth: 1})
	for _, t := range ticks {
		y := y0 + t.Pos
		c.Add(Element{Shape: Line, X: x - tickSize, Y: y, X2: x, Y2: y, Stroke: tickColor, StrokeWidth: 1})
		c.Add(Element{Shape: Text, X: x - tickSize - 3, Y: y, Text: t.Label, Fill: LabelColor, FontSize: axisFont, Anchor: "end", DY: 0.32})
	}
}

// XLabel draws the x axis title centered below f.
func (c *Canvas) XLabel(f Frame, text string) {
	x, y := f.At(f.Width/2, f.Height+f.Bottom-10)
	c.Add(Element{Shape: Text, X: x, Y: y, Text: text, Anchor: "middle", Fill: LabelColor})
}

// YLabel draws the y axis title rotated along the left edge of the
// chart.
func (c *Canvas) YLabel(f Frame, text string) {
	x, y := f.At(-f.Left, f.Height/2)
	c.Add(Element{Shape: Text, X: x, Y: y, Text: text, Anchor: "middle", Fill: LabelColor, Rotate: -90, DY: 1})
}

// Title draws a bold heading centered above f.
func (c *Canvas) Title(f Frame, text string) {
	x, y := f.At(f.Width/2, -10)
	c.Add(Element{Shape: Text, X: x, Y: y, Text: text, Anchor: "middle", Fill: LabelColor, FontSize: 16, Bold: true})
}

// Caption draws plain text centered at plot-area position x, y.
func (c *Canvas) Caption(f Frame, x, y float64, size float64, text string) {
	ax, ay := f.At(x, y)
	c.Add(Element{Shape: Text, X: ax, Y: ay, Text: text, Anchor: "middle", Fill: LabelColor, FontSize: size})
}
