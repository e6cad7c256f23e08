// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recomputes = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "exoscenes",
		Name:      "recompute_total",
		Help:      "Completed chart update cycles.",
	}, []string{"scene"})

	recomputeDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "exoscenes",
		Name:      "recompute_duration_seconds",
		Help:      "Time to filter, aggregate, and redraw one scene.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
	}, []string{"scene"})

	marksDrawn = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "exoscenes",
		Name:      "marks",
		Help:      "Marks drawn by the latest cycle of each scene.",
	}, []string{"scene"})
)

// observe records one update cycle. It is a scene.Observer.
func observe(scene, marks int, d time.Duration) {
	label := strconv.Itoa(scene)
	recomputes.WithLabelValues(label).Inc()
	recomputeDuration.WithLabelValues(label).Observe(d.Seconds())
	marksDrawn.WithLabelValues(label).Set(float64(marks))
}
