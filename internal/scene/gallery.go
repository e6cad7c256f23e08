// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"golang.org/x/image/draw"

	"github.com/sudham123/exoscenes/internal/chart"
)

// Gallery is the opening slide: a grid of images with no controls.
type Gallery struct {
	base
	images []string

	// Href, if non-nil, maps the i'th image path to the URL the
	// chart refers to it by. By default the path is used as is.
	Href func(i int, path string) string
}

// Gallery layout, in pixels.
const (
	ThumbWidth  = 200
	thumbHeight = 150
	thumbMargin = 10
	galleryCols = 3
)

func newGallery(num int, images []string, tips *TooltipSlot, obs Observer) *Gallery {
	rows := (len(images) + galleryCols - 1) / galleryCols
	cell := ThumbWidth + 2*thumbMargin
	s := &Gallery{images: append([]string(nil), images...)}
	s.base = base{
		num:    num,
		title:  "Exoplanets",
		panel:  NewPanel(),
		canvas: chart.New(galleryCols*cell, rows*(thumbHeight+2*thumbMargin)),
		tips:   tips,
		obs:    obs,
		draw:   s.draw,
	}
	s.start()
	return s
}

func (s *Gallery) draw() {
	for i, path := range s.images {
		href := path
		if s.Href != nil {
			href = s.Href(i, path)
		}
		col, row := i%galleryCols, i/galleryCols
		s.canvas.Add(chart.Element{
			Shape: chart.Image,
			X:     float64(col*(ThumbWidth+2*thumbMargin) + thumbMargin),
			Y:     float64(row*(thumbHeight+2*thumbMargin) + thumbMargin),
			W:     ThumbWidth,
			H:     thumbHeight,
			Text:  href,
		})
	}
}

// Images returns the configured image paths.
func (s *Gallery) Images() []string {
	return s.images
}

// Thumbnail decodes a PNG or JPEG image from r and scales it to the
// given width, keeping its aspect ratio.
func Thumbnail(r io.Reader, width int) (image.Image, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return nil, err
	}
	sb := src.Bounds()
	if sb.Dx() == 0 || sb.Dy() == 0 {
		return nil, fmt.Errorf("empty %dx%d image", sb.Dx(), sb.Dy())
	}
	height := sb.Dy() * width / sb.Dx()
	if height < 1 {
		height = 1
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.BiLinear.Scale(dst, dst.Bounds(), src, sb, draw.Over, nil)
	return dst, nil
}
