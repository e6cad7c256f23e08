// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sudham123/exoscenes/internal/chart"
)

func TestSubcommands(t *testing.T) {
	for _, name := range []string{"render", "table", "console", "serve"} {
		sub, ok := subcommands[name]
		if !ok {
			t.Errorf("subcommand %q not registered", name)
			continue
		}
		if sub.flags == nil || sub.cmd == nil || sub.desc == "" {
			t.Errorf("subcommand %q incompletely registered", name)
		}
	}
	if f := cmdRenderFlags.Lookup("o"); f == nil || f.DefValue != "." {
		t.Errorf("render -o flag missing or wrong default")
	}
	if f := cmdTableFlags.Lookup("scene"); f == nil || f.DefValue != "2" {
		t.Errorf("table -scene flag missing or wrong default")
	}
}

func TestWriteSVG(t *testing.T) {
	c := chart.New(100, 50)
	c.Message(50, 25, "hello")
	path := filepath.Join(t.TempDir(), "scene1.svg")
	if err := writeSVG(path, c); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("SVG lacks message:\n%s", data)
	}
	if err := writeSVG(filepath.Join(t.TempDir(), "missing", "x.svg"), c); err == nil {
		t.Errorf("writing into a missing directory succeeded")
	}
}
