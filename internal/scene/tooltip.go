// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import "github.com/sudham123/exoscenes/internal/chart"

// TooltipSlot holds the one tooltip that may be visible across all
// scenes. Showing a tooltip replaces whatever was there before and
// un-highlights the mark it belonged to.
type TooltipSlot struct {
	owner int
	mark  *chart.Mark
	tip   *chart.Tooltip
}

// Show makes tip, belonging to mark m of scene owner, the live
// tooltip.
func (t *TooltipSlot) Show(owner int, m *chart.Mark, tip *chart.Tooltip) {
	if t.mark != nil && t.mark != m {
		t.mark.Restore()
	}
	t.owner, t.mark, t.tip = owner, m, tip
}

// Clear removes the live tooltip, if any.
func (t *TooltipSlot) Clear() {
	if t.mark != nil {
		t.mark.Restore()
	}
	t.owner, t.mark, t.tip = 0, nil, nil
}

// ClearOwner removes the live tooltip if it belongs to scene owner.
func (t *TooltipSlot) ClearOwner(owner int) {
	if t.tip != nil && t.owner == owner {
		t.Clear()
	}
}

// Current returns the live tooltip and the scene that owns it, or
// nil, 0.
func (t *TooltipSlot) Current() (*chart.Tooltip, int) {
	return t.tip, t.owner
}
