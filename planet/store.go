// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package planet

// Store is a read-only, ordered set of Records. A Store never changes
// after it is created, so it may be shared freely between goroutines.
type Store struct {
	recs []Record
}

// NewStore returns a Store holding a copy of recs.
func NewStore(recs []Record) *Store {
	return &Store{recs: append([]Record(nil), recs...)}
}

// Len returns the number of records in s.
func (s *Store) Len() int {
	return len(s.recs)
}

// At returns the i'th record of s.
func (s *Store) At(i int) Record {
	return s.recs[i]
}

// Each calls fn for each record of s in order.
func (s *Store) Each(fn func(r *Record)) {
	for i := range s.recs {
		// Hand out a copy so fn cannot modify the store.
		r := s.recs[i]
		fn(&r)
	}
}

// Select returns a new slice of the records for which keep returns
// true, in store order.
func (s *Store) Select(keep func(r *Record) bool) []Record {
	out := []Record{}
	s.Each(func(r *Record) {
		if keep(r) {
			out = append(out, *r)
		}
	})
	return out
}
