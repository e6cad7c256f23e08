// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/aclements/go-gg/table"
	"github.com/dustin/go-humanize"

	"github.com/sudham123/exoscenes/internal/query"
	"github.com/sudham123/exoscenes/internal/scene"
)

var cmdTableFlags = flag.NewFlagSet(os.Args[0]+" table", flag.ExitOnError)

var tableScene int

func init() {
	f := cmdTableFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s table [flags] data.csv\n", os.Args[0])
		f.PrintDefaults()
	}
	f.IntVar(&tableScene, "scene", 2, "print the data of scene `N` (2-5)")
	registerSubcommand("table", "[flags] data.csv - print the data behind a chart", cmdTable, f)
}

func cmdTable() {
	store := loadStore(cmdTableFlags)
	p := scene.New(store, loadConfig(), nil)

	var tab *table.Table
	switch tableScene {
	case 2:
		tab = query.TypeCountTable(p.Types.Counts())
	case 3:
		tab = query.YearCountTable(p.Timeline.Years())
	case 4:
		tab = query.MassTable(p.Mass.Points())
	case 5:
		recs := p.Brightness.Records()
		tab = query.RecordTable(recs)
		defer func() {
			sp := query.DistanceSpread(recs)
			if sp.N == 0 {
				return
			}
			fmt.Printf("\n%s planets, %s to %s pc, mean %s pc\n",
				humanize.Comma(int64(sp.N)), humanize.Commaf(sp.Min), humanize.Commaf(sp.Max),
				humanize.FormatFloat("#,###.#", sp.Mean))
		}()
	default:
		cmdTableFlags.Usage()
		os.Exit(2)
	}
	if tab.Len() == 0 {
		fmt.Println(p.Scenes()[tableScene-1].Canvas().Texts()[0])
		return
	}
	if err := table.Fprint(os.Stdout, tab); err != nil {
		fatal("printing table", err)
	}
}
