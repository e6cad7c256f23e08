// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server serves a presentation over HTTP.
//
// Each scene is an HTML page holding its controls as a plain form,
// its display regions, and its chart as inline SVG. Submitting the
// form changes the controls, which runs the scene's update cycle
// before the page is rendered. All scene state lives in one
// Presentation, so requests are handled one at a time.
package server

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"image/png"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/internal/scene"
	"github.com/sudham123/exoscenes/planet"
)

// A Server serves one presentation.
type Server struct {
	log    *zap.Logger
	assets string

	mu sync.Mutex // guards p
	p  *scene.Presentation
}

// New returns a server presenting store. Gallery image paths in cfg
// are resolved relative to assets.
func New(store *planet.Store, cfg *config.Config, assets string, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{log: log, assets: assets}
	s.p = scene.New(store, cfg, func(n, marks int, d time.Duration) {
		observe(n, marks, d)
		s.log.Debug("update cycle", zap.Int("scene", n), zap.Int("marks", marks), zap.Duration("elapsed", d))
	})
	s.p.Gallery.Href = func(i int, _ string) string {
		return fmt.Sprintf("/gallery/%d", i)
	}
	s.p.Gallery.Update()
	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("ok\n"))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/", s.index)
	r.Get("/gallery/{i}", s.thumbnail)
	r.Route("/scenes/{n}", func(r chi.Router) {
		r.Get("/", s.page)
		r.Get("/chart.svg", s.chart)
		r.Route("/marks/{mark}", func(r chi.Router) {
			for _, ev := range []struct {
				name string
				fn   func(sc scene.Scene, mark int, r *http.Request) error
			}{
				{"click", clickMark},
				{"hover", hoverMark},
				{"leave", leaveMark},
			} {
				h := s.markEvent(ev.fn)
				r.Get("/"+ev.name, h)
				r.Post("/"+ev.name, h)
			}
		})
	})
	return r
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// ListenAndServe serves on addr until ctx is done, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.log.Info("listening", zap.String("addr", addr))
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// sceneParam returns the scene named by the {n} URL parameter.
func (s *Server) sceneParam(r *http.Request) (scene.Scene, error) {
	n, err := strconv.Atoi(chi.URLParam(r, "n"))
	if err != nil {
		return nil, fmt.Errorf("bad scene number %q", chi.URLParam(r, "n"))
	}
	return s.p.Scene(n)
}

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.render(w, indexTmpl, s.p.Scenes())
}

func (s *Server) render(w http.ResponseWriter, t *template.Template, data interface{}) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		s.log.Error("rendering page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}

type region struct {
	Name, Text string
}

type pageData struct {
	Number, Count, Prev, Next int
	Title                     string
	Groups                    []*scene.CheckGroup
	Sliders                   []*scene.Slider
	Regions                   []region
	Chart                     template.HTML
}

func (s *Server) page(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, err := s.sceneParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.Form.Get("apply") != "" {
		if err := applyForm(sc.Panel(), r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}
	s.p.Show(sc.Number())

	var svg bytes.Buffer
	if err := sc.Canvas().WriteSVG(&svg, s.renderOptions(sc)); err != nil {
		s.log.Error("rendering chart", zap.Int("scene", sc.Number()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	count := len(s.p.Scenes())
	data := pageData{
		Number:  sc.Number(),
		Count:   count,
		Prev:    (sc.Number()+count-2)%count + 1,
		Next:    sc.Number()%count + 1,
		Title:   sc.Title(),
		Groups:  sc.Panel().Groups(),
		Sliders: sc.Panel().Sliders(),
		// The chart is generated by WriteSVG, which escapes all
		// data-derived text.
		Chart: template.HTML(svg.String()),
	}
	for _, name := range sc.Panel().Regions() {
		data.Regions = append(data.Regions, region{name, sc.Panel().Text(name)})
	}
	s.render(w, sceneTmpl, data)
}

// applyForm sets every control of p to the value submitted in r.
// Each control that actually changes runs one update cycle.
func applyForm(p *scene.Panel, r *http.Request) error {
	for _, g := range p.Groups() {
		want := make(map[string]bool)
		for _, v := range r.Form[g.Name] {
			want[v] = true
		}
		for _, o := range g.Options {
			if want[o] != g.IsChecked(o) {
				if err := p.SetChecked(g.Name, o, want[o]); err != nil {
					return err
				}
			}
		}
	}
	for _, sl := range p.Sliders() {
		str := r.Form.Get(sl.Name)
		if str == "" {
			continue
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("%s: bad value %q", sl.Name, str)
		}
		if v != sl.Value {
			if err := p.SetValue(sl.Name, v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Server) renderOptions(sc scene.Scene) *chart.RenderOptions {
	opts := &chart.RenderOptions{}
	if tip, owner := s.p.Tooltip(); owner == sc.Number() {
		opts.Tooltip = tip
	}
	if _, ok := sc.(*scene.TypeScene); ok {
		opts.Link = func(m *chart.Mark) string {
			return fmt.Sprintf("/scenes/%d/marks/%d/click", sc.Number(), m.Index)
		}
	}
	return opts
}

func (s *Server) chart(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sc, err := s.sceneParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	var buf bytes.Buffer
	if err := sc.Canvas().WriteSVG(&buf, s.renderOptions(sc)); err != nil {
		s.log.Error("rendering chart", zap.Int("scene", sc.Number()), zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	buf.WriteTo(w)
}

func clickMark(sc scene.Scene, mark int, r *http.Request) error {
	return sc.Click(mark)
}

func hoverMark(sc scene.Scene, mark int, r *http.Request) error {
	x, errx := strconv.ParseFloat(r.FormValue("x"), 64)
	y, erry := strconv.ParseFloat(r.FormValue("y"), 64)
	if errx != nil || erry != nil {
		return fmt.Errorf("bad pointer position x=%q y=%q", r.FormValue("x"), r.FormValue("y"))
	}
	return sc.Hover(mark, x, y)
}

func leaveMark(sc scene.Scene, mark int, r *http.Request) error {
	return sc.Leave(mark)
}

// markEvent returns a handler that delivers a pointer event to a
// mark and redirects back to the scene page.
func (s *Server) markEvent(fn func(sc scene.Scene, mark int, r *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()
		sc, err := s.sceneParam(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		mark, err := strconv.Atoi(chi.URLParam(r, "mark"))
		if err != nil {
			http.Error(w, "bad mark", http.StatusBadRequest)
			return
		}
		if err := fn(sc, mark, r); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Redirect(w, r, fmt.Sprintf("/scenes/%d", sc.Number()), http.StatusSeeOther)
	}
}

func (s *Server) thumbnail(w http.ResponseWriter, r *http.Request) {
	images := s.p.Gallery.Images()
	i, err := strconv.Atoi(chi.URLParam(r, "i"))
	if err != nil || i < 0 || i >= len(images) {
		http.NotFound(w, r)
		return
	}
	f, err := os.Open(filepath.Join(s.assets, images[i]))
	if err != nil {
		s.log.Warn("gallery image", zap.Int("index", i), zap.Error(err))
		http.NotFound(w, r)
		return
	}
	defer f.Close()
	img, err := scene.Thumbnail(f, scene.ThumbWidth)
	if err != nil {
		s.log.Warn("gallery image", zap.String("path", images[i]), zap.Error(err))
		http.Error(w, "bad image", http.StatusInternalServerError)
		return
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	buf.WriteTo(w)
}
