// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package server

import (
	"context"
	"image"
	"image/png"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/planet"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func testServer(t *testing.T) *Server {
	t.Helper()
	assets := t.TempDir()
	f, err := os.Create(filepath.Join(assets, "earth.png"))
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 40, 20))); err != nil {
		t.Fatal(err)
	}
	f.Close()

	cfg := config.Default()
	cfg.Gallery = []string{"earth.png", "missing.png"}
	store := planet.NewStore([]planet.Record{
		{Name: "HD 209458 b", PlanetType: "Gas Giant", DetectionMethod: "Radial Velocity", DiscoveryYear: 1999,
			Distance: 48, StellarMagnitude: 7.65, MassMultiplier: 0.69, MassWrt: "Jupiter", OrbitalRadius: 0.047},
		{Name: "TRAPPIST-1 e", PlanetType: "Terrestrial", DetectionMethod: "Transit", DiscoveryYear: 2017,
			Distance: 12, StellarMagnitude: 18.8, MassMultiplier: 0.69, MassWrt: "Earth", OrbitalRadius: 0.029},
	})
	return New(store, cfg, assets, nil)
}

func get(t *testing.T, h http.Handler, url string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest("GET", url, nil))
	return w
}

func TestRoutes(t *testing.T) {
	h := testServer(t).Handler()
	for _, test := range []struct {
		url    string
		status int
		want   []string
	}{
		{"/healthz", 200, []string{"ok"}},
		{"/", 200, []string{`href="/scenes/3"`, "Discoveries Over Time"}},
		{"/scenes/1", 200, []string{`/gallery/0`, "next"}},
		{"/scenes/2", 200, []string{"<svg", `/scenes/2/marks/0/click`, "Gas Giant", `href="/scenes/1"`, `href="/scenes/3"`}},
		{"/scenes/5", 200, []string{"2 planets shown", "distance-max-display: 1000", `href="/scenes/1"`}},
		{"/scenes/3/chart.svg", 200, []string{"<svg", "Number of Discoveries"}},
		{"/scenes/0", 404, nil},
		{"/scenes/six", 404, nil},
		{"/scenes/2/marks/x/click", 400, nil},
		{"/scenes/2/marks/7/click", 400, nil},
		{"/scenes/2?apply=1&year=next+year", 400, nil},
		{"/gallery/0", 200, nil},
		{"/gallery/1", 404, nil},
		{"/gallery/9", 404, nil},
	} {
		w := get(t, h, test.url)
		if w.Code != test.status {
			t.Errorf("GET %s: status %d; want %d", test.url, w.Code, test.status)
			continue
		}
		for _, want := range test.want {
			if !strings.Contains(w.Body.String(), want) {
				t.Errorf("GET %s: body missing %q", test.url, want)
			}
		}
	}
}

func TestFormUpdatesScene(t *testing.T) {
	h := testServer(t).Handler()
	body := get(t, h, "/scenes/2?apply=1&methods=Transit&year=2020").Body.String()
	if !strings.Contains(body, "Terrestrial") || strings.Contains(body, "Gas Giant</text>") {
		t.Errorf("transit-only page:\n%s", body)
	}
	if !strings.Contains(body, "year-display: 2020") {
		t.Errorf("year display not updated")
	}

	// Submitting with nothing checked empties the chart.
	body = get(t, h, "/scenes/2?apply=1").Body.String()
	if !strings.Contains(body, "No planets found with selected filters") {
		t.Errorf("empty selection page:\n%s", body)
	}
}

func TestClickAndHover(t *testing.T) {
	h := testServer(t).Handler()
	w := get(t, h, "/scenes/2/marks/0/click")
	if w.Code != http.StatusSeeOther || w.Header().Get("Location") != "/scenes/2" {
		t.Fatalf("click: %d to %q", w.Code, w.Header().Get("Location"))
	}
	if body := get(t, h, "/scenes/2").Body.String(); !strings.Contains(body, "Example: HD 209458 b") {
		t.Errorf("info region not filled after click")
	}

	if w := get(t, h, "/scenes/4/marks/1/hover?x=50&y=60"); w.Code != http.StatusSeeOther {
		t.Fatalf("hover: %d", w.Code)
	}
	svg := get(t, h, "/scenes/4/chart.svg").Body.String()
	if !strings.Contains(svg, `class="tooltip"`) || !strings.Contains(svg, "TRAPPIST-1 e") {
		t.Errorf("hovered chart lacks tooltip:\n%s", svg)
	}
	// The tooltip belongs to scene 4 only.
	if strings.Contains(get(t, h, "/scenes/5/chart.svg").Body.String(), `class="tooltip"`) {
		t.Errorf("scene 5 shows scene 4's tooltip")
	}
	if w := get(t, h, "/scenes/4/marks/1/hover?x=fifty&y=60"); w.Code != http.StatusBadRequest {
		t.Errorf("hover with bad position: %d", w.Code)
	}
	get(t, h, "/scenes/4/marks/1/leave")
	if strings.Contains(get(t, h, "/scenes/4/chart.svg").Body.String(), `class="tooltip"`) {
		t.Errorf("tooltip survived leave")
	}
}

func TestMetrics(t *testing.T) {
	h := testServer(t).Handler()
	get(t, h, "/scenes/3?apply=1&types=Terrestrial")
	body := get(t, h, "/metrics").Body.String()
	for _, want := range []string{
		`exoscenes_recompute_total{scene="3"}`,
		`exoscenes_recompute_duration_seconds_bucket{scene="2"`,
		`exoscenes_marks{scene="5"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}

func TestListenAndServe(t *testing.T) {
	s := testServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()

	// Give the listener a moment, then shut down.
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("ListenAndServe: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServeOverNetwork(t *testing.T) {
	ts := httptest.NewServer(testServer(t).Handler())
	defer ts.Close()
	resp, err := http.Get(ts.URL + "/gallery/0")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Content-Type = %q", ct)
	}
	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Errorf("thumbnail is %v; want 200x100", b)
	}
	io.Copy(io.Discard, resp.Body)
}
