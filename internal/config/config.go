// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config describes the controls of a presentation: which
// category options exist, slider bounds, and the state every control
// starts in.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Bounds is an inclusive numeric interval.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Initial is the starting control state of one scene. Fields a scene
// has no control for are ignored.
type Initial struct {
	Types     []string `yaml:"types"`
	Methods   []string `yaml:"methods"`
	Year      int      `yaml:"year"`
	Distance  Bounds   `yaml:"distance"`
	Magnitude Bounds   `yaml:"magnitude"`
}

// Config is a presentation configuration.
type Config struct {
	// Types and Methods are the checkbox options of the type and
	// detection method groups.
	Types   []string `yaml:"types"`
	Methods []string `yaml:"methods"`

	// Years, Distance, and Magnitude are slider bounds.
	Years     Bounds `yaml:"years"`
	Distance  Bounds `yaml:"distance"`
	Magnitude Bounds `yaml:"magnitude"`

	// Gallery lists the images of the opening scene.
	Gallery []string `yaml:"gallery"`

	Scenes struct {
		Scene2 Initial `yaml:"scene2"`
		Scene3 Initial `yaml:"scene3"`
		Scene4 Initial `yaml:"scene4"`
		Scene5 Initial `yaml:"scene5"`
	} `yaml:"scenes"`
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(new(Config), defaultYAML)
	if err != nil {
		panic("bad built-in config: " + err.Error())
	}
	return cfg
}

// Load reads the configuration at path. Settings missing from the
// file keep their default values, except that default initial
// selections naming options the file removed are dropped.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := decode(Default(), data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// named records which initial selections a configuration file
// spells out itself.
type named struct {
	Scenes map[string]struct {
		Types   *[]string `yaml:"types"`
		Methods *[]string `yaml:"methods"`
	} `yaml:"scenes"`
}

func decode(cfg *Config, data []byte) (*Config, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, err
	}
	var n named
	if err := yaml.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	for name, in := range cfg.initials() {
		given := n.Scenes[name]
		if given.Types == nil {
			in.Types = keep(in.Types, cfg.Types)
		}
		if given.Methods == nil {
			in.Methods = keep(in.Methods, cfg.Methods)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) initials() map[string]*Initial {
	s := &cfg.Scenes
	return map[string]*Initial{"scene2": &s.Scene2, "scene3": &s.Scene3, "scene4": &s.Scene4, "scene5": &s.Scene5}
}

// keep returns the values of vals that appear in opts, in order.
func keep(vals, opts []string) []string {
	have := make(map[string]bool, len(opts))
	for _, o := range opts {
		have[o] = true
	}
	out := []string{}
	for _, v := range vals {
		if have[v] {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks that cfg's bounds are ordered and that every initial
// control value is one the controls can actually hold.
func (cfg *Config) Validate() error {
	var errs []error
	check := func(what string, b Bounds) {
		if b.Min > b.Max {
			errs = append(errs, fmt.Errorf("%s: min %g > max %g", what, b.Min, b.Max))
		}
	}
	check("years", cfg.Years)
	check("distance", cfg.Distance)
	check("magnitude", cfg.Magnitude)

	within := func(what string, v float64, b Bounds) {
		if v < b.Min || v > b.Max {
			errs = append(errs, fmt.Errorf("%s: %g outside [%g, %g]", what, v, b.Min, b.Max))
		}
	}
	options := func(what string, vals, opts []string) {
		have := make(map[string]bool, len(opts))
		for _, o := range opts {
			have[o] = true
		}
		for _, v := range vals {
			if !have[v] {
				errs = append(errs, fmt.Errorf("%s: unknown option %q", what, v))
			}
		}
	}

	s := &cfg.Scenes
	options("scene2 methods", s.Scene2.Methods, cfg.Methods)
	within("scene2 year", float64(s.Scene2.Year), cfg.Years)
	for _, sc := range []struct {
		name string
		in   *Initial
	}{{"scene3", &s.Scene3}, {"scene4", &s.Scene4}, {"scene5", &s.Scene5}} {
		options(sc.name+" types", sc.in.Types, cfg.Types)
		options(sc.name+" methods", sc.in.Methods, cfg.Methods)
	}
	within("scene4 year", float64(s.Scene4.Year), cfg.Years)
	within("scene5 year", float64(s.Scene5.Year), cfg.Years)
	for _, b := range []struct {
		name  string
		v     Bounds
		outer Bounds
	}{
		{"scene5 distance", s.Scene5.Distance, cfg.Distance},
		{"scene5 magnitude", s.Scene5.Magnitude, cfg.Magnitude},
	} {
		within(b.name+" min", b.v.Min, b.outer)
		within(b.name+" max", b.v.Max, b.outer)
	}
	return errors.Join(errs...)
}
