// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sudham123/exoscenes/internal/server"
)

var cmdServeFlags = flag.NewFlagSet(os.Args[0]+" serve", flag.ExitOnError)

var serve struct {
	addr   string
	assets string
}

func init() {
	f := cmdServeFlags
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s serve [flags] data.csv\n", os.Args[0])
		f.PrintDefaults()
	}
	f.StringVar(&serve.addr, "addr", "localhost:8080", "listen on `address`")
	f.StringVar(&serve.assets, "assets", ".", "resolve gallery images relative to `directory`")
	registerSubcommand("serve", "[flags] data.csv - serve the scenes over HTTP", cmdServe, f)
}

func cmdServe() {
	store := loadStore(cmdServeFlags)
	s := server.New(store, loadConfig(), serve.assets, log())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := s.ListenAndServe(ctx, serve.addr); err != nil {
		fatal("serving", err)
	}
	log().Sync()
}
