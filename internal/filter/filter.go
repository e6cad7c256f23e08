// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package filter implements the predicates scenes use to select
// planets.
//
// A State is a snapshot of a scene's controls. Scenes turn a State
// into a Set of named predicates, which are combined with logical
// AND. A Set may also be marked to match nothing, which is how scenes
// express "no categories selected at all".
package filter

import (
	"fmt"
	"math"

	"github.com/aclements/go-gg/generic/slice"
)

// Selection is an ordered set of selected category values.
type Selection struct {
	vals []string
	set  map[string]bool
}

// NewSelection returns a Selection of vals. Duplicates are dropped;
// the first occurrence determines the order.
func NewSelection(vals ...string) Selection {
	if len(vals) == 0 {
		return Selection{}
	}
	vals = slice.Nub(append([]string(nil), vals...)).([]string)
	set := make(map[string]bool, len(vals))
	for _, v := range vals {
		set[v] = true
	}
	return Selection{vals, set}
}

// Empty reports whether nothing is selected.
func (s Selection) Empty() bool {
	return len(s.vals) == 0
}

// Len returns the number of selected values.
func (s Selection) Len() int {
	return len(s.vals)
}

// Has reports whether v is selected.
func (s Selection) Has(v string) bool {
	return s.set[v]
}

// Values returns the selected values in selection order.
func (s Selection) Values() []string {
	return append([]string(nil), s.vals...)
}

func (s Selection) String() string {
	return fmt.Sprint(s.vals)
}

// BothEmpty reports whether neither a nor b selects anything.
func BothEmpty(a, b Selection) bool {
	return a.Empty() && b.Empty()
}

// Range is an inclusive numeric range.
type Range struct {
	Min, Max float64
}

// Contains reports whether Min <= x <= Max. NaN is never contained,
// regardless of the bounds.
func (r Range) Contains(x float64) bool {
	if math.IsNaN(x) {
		return false
	}
	return r.Min <= x && x <= r.Max
}

func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// State is a snapshot of the control values of one scene. Fields a
// scene has no control for are left at their zero value and ignored
// by that scene.
type State struct {
	Types   Selection
	Methods Selection

	// YearMax is the discovery year ceiling.
	YearMax int

	Distance  Range
	Magnitude Range
}
