// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sudham123/exoscenes/internal/chart"
	"github.com/sudham123/exoscenes/internal/scene"
)

var cmdRenderFlags = flag.NewFlagSet(os.Args[0]+" render", flag.ExitOnError)

var render struct {
	outDir string
}

func init() {
	f := cmdRenderFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s render [flags] data.csv\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&render.outDir, "o", ".", "write sceneN.svg files to `directory`")
	registerSubcommand("render", "[flags] data.csv - write each scene as SVG", cmdRender, f)
}

func cmdRender() {
	store := loadStore(cmdRenderFlags)
	p := scene.New(store, loadConfig(), nil)
	if err := os.MkdirAll(render.outDir, 0777); err != nil {
		fatal("creating output directory", err)
	}

	// Canvases are only read from here on, so scenes can be written
	// concurrently.
	var g errgroup.Group
	for _, s := range p.Scenes() {
		g.Go(func() error {
			path := filepath.Join(render.outDir, fmt.Sprintf("scene%d.svg", s.Number()))
			if err := writeSVG(path, s.Canvas()); err != nil {
				return fmt.Errorf("scene %d: %w", s.Number(), err)
			}
			log().Info("wrote scene", zap.Int("scene", s.Number()), zap.String("path", path),
				zap.Int("marks", len(s.Canvas().Marks())))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fatal("rendering", err)
	}
	log().Sync()
}

func writeSVG(path string, c *chart.Canvas) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := c.WriteSVG(f, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
