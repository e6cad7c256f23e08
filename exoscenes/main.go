// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Exoscenes presents a catalog of exoplanets as five interactive
// charts.
//
// Usage:
//
//	exoscenes [-config file] [-v] <subcommand> [flags] data.csv
//
// The catalog is a CSV file with a header row naming at least the
// columns name, distance, stellar_magnitude, planet_type,
// discovery_year, mass_multiplier, mass_wrt, radius_multiplier,
// radius_wrt, orbital_radius, orbital_period, eccentricity, and
// detection_method.
//
// The scenes are an image gallery, planet counts by type, discoveries
// per year, mass against orbital radius, and distance against host
// star brightness. Each scene except the first has checkbox and
// slider controls; changing a control recomputes that scene's chart
// from the full catalog.
//
// Subcommands:
//
//	render   write each scene's chart as an SVG file
//	table    print the data behind one scene's chart
//	console  drive the scenes from typed commands
//	serve    serve the scenes as web pages
//
// The -config flag names a YAML file overriding the built-in control
// options and initial control values.
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/sudham123/exoscenes/internal/config"
	"github.com/sudham123/exoscenes/planet"
)

var (
	flagConfig  = flag.String("config", "", "read presentation settings from `file`")
	flagVerbose = flag.Bool("v", false, "log debugging information")
)

type subcommand struct {
	desc  string
	cmd   func()
	flags *flag.FlagSet
}

var subcommands = make(map[string]*subcommand)

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{desc, cmd, flags}
}

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <subcommand> [subcommand flags] data.csv\n\n", os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nSubcommands:\n")
		names := make([]string, 0, len(subcommands))
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	sub, ok := subcommands[flag.Arg(0)]
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}

var logger *zap.Logger

// log returns the process logger, creating it on first use.
func log() *zap.Logger {
	if logger != nil {
		return logger
	}
	cfg := zap.NewProductionConfig()
	if *flagVerbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	l, err := cfg.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating logger: %s\n", err)
		os.Exit(1)
	}
	logger = l
	return logger
}

// fatal logs msg and err and exits.
func fatal(msg string, err error) {
	log().Error(msg, zap.Error(err))
	log().Sync()
	os.Exit(1)
}

// loadConfig returns the settings named by -config, or the built-in
// ones.
func loadConfig() *config.Config {
	if *flagConfig == "" {
		return config.Default()
	}
	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fatal("loading config", err)
	}
	return cfg
}

// loadStore reads the catalog named by the single positional
// argument of fs.
func loadStore(fs *flag.FlagSet) *planet.Store {
	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(2)
	}
	store, err := planet.LoadFile(fs.Arg(0))
	if err != nil {
		fatal("loading catalog", err)
	}
	log().Debug("loaded catalog", zap.String("path", fs.Arg(0)), zap.Int("planets", store.Len()))
	return store
}
