// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/planet"
)

// A Presentation is the ordered set of scenes, one of which is
// active at a time.
type Presentation struct {
	Gallery    *Gallery
	Types      *TypeScene
	Timeline   *TimelineScene
	Mass       *MassScene
	Brightness *BrightnessScene

	scenes []Scene
	tips   TooltipSlot
	active int
}

// New builds every scene over store, with controls set up as cfg
// describes, and renders each once. obs, if non-nil, is called after
// every update cycle of every scene.
func New(store *planet.Store, cfg *config.Config, obs Observer) *Presentation {
	p := new(Presentation)
	p.Gallery = newGallery(1, cfg.Gallery, &p.tips, obs)
	p.Types = newTypeScene(2, store, cfg, &p.tips, obs)
	p.Timeline = newTimelineScene(3, store, cfg, &p.tips, obs)
	p.Mass = newMassScene(4, store, cfg, &p.tips, obs)
	p.Brightness = newBrightnessScene(5, store, cfg, &p.tips, obs)
	p.scenes = []Scene{p.Gallery, p.Types, p.Timeline, p.Mass, p.Brightness}
	return p
}

// Scenes returns every scene, in order.
func (p *Presentation) Scenes() []Scene {
	return p.scenes
}

// Scene returns scene n, counting from 1.
func (p *Presentation) Scene(n int) (Scene, error) {
	if n < 1 || n > len(p.scenes) {
		return nil, fmt.Errorf("no scene %d (have 1-%d)", n, len(p.scenes))
	}
	return p.scenes[n-1], nil
}

// Active returns the scene being shown.
func (p *Presentation) Active() Scene {
	return p.scenes[p.active]
}

// Show makes scene n active. Switching to another scene removes
// the live tooltip.
func (p *Presentation) Show(n int) error {
	if _, err := p.Scene(n); err != nil {
		return err
	}
	if n-1 != p.active {
		p.tips.Clear()
	}
	p.active = n - 1
	return nil
}

// Next advances to the following scene, wrapping from the last to
// the first.
func (p *Presentation) Next() Scene {
	p.Show((p.active+1)%len(p.scenes) + 1)
	return p.Active()
}

// Prev goes back to the preceding scene, wrapping from the first to
// the last.
func (p *Presentation) Prev() Scene {
	n := len(p.scenes)
	p.Show((p.active+n-1)%n + 1)
	return p.Active()
}

// Tooltip returns the live tooltip and the number of the scene that
// owns it, or nil, 0.
func (p *Presentation) Tooltip() (*chart.Tooltip, int) {
	return p.tips.Current()
}
