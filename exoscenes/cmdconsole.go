// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sudham123/exoscenes/internal/console"
	"github.com/sudham123/exoscenes/internal/scene"
)

var cmdConsoleFlags = flag.NewFlagSet(os.Args[0]+" console", flag.ExitOnError)

func init() {
	f := cmdConsoleFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s console data.csv\n", os.Args[0])
		f.PrintDefaults()
	}
	registerSubcommand("console", "data.csv - drive the scenes from typed commands", cmdConsole, f)
}

func cmdConsole() {
	store := loadStore(cmdConsoleFlags)
	p := scene.New(store, loadConfig(), nil)
	c := console.New(p, os.Stdout, log())
	fmt.Println(`Type "help" for a list of commands.`)
	if err := c.Run(os.Stdin); err != nil {
		fatal("reading commands", err)
	}
}
