// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package console drives a presentation from line-oriented text
// commands, one command per line with shell-style quoting.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/kballard/go-shellquote"
	"go.uber.org/zap"

	"github.com/sudham123/exoscenes/internal/scene"
)

// errQuit stops Run.
var errQuit = errors.New("quit")

// A Console executes commands against a presentation.
type Console struct {
	p   *scene.Presentation
	out io.Writer
	log *zap.Logger
}

// New returns a console for p that writes its output to out.
func New(p *scene.Presentation, out io.Writer, log *zap.Logger) *Console {
	if log == nil {
		log = zap.NewNop()
	}
	return &Console{p: p, out: out, log: log}
}

type command struct {
	args string
	help string
	run  func(c *Console, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"show":    {"N", "make scene N active", (*Console).show},
		"next":    {"", "advance to the next scene", (*Console).next},
		"prev":    {"", "go back to the previous scene", (*Console).prev},
		"check":   {"N GROUP VALUE", "check a checkbox", (*Console).check},
		"uncheck": {"N GROUP VALUE", "uncheck a checkbox", (*Console).uncheck},
		"set":     {"N SLIDER VALUE", "move a slider", (*Console).set},
		"hover":   {"N MARK X Y", "move the pointer over a mark", (*Console).hover},
		"leave":   {"N MARK", "move the pointer off a mark", (*Console).leave},
		"click":   {"N MARK", "click a mark", (*Console).click},
		"text":    {"N REGION", "print a display region", (*Console).text},
		"svg":     {"N [FILE]", "write the chart of scene N as SVG", (*Console).svg},
		"marks":   {"N", "list the marks of scene N", (*Console).marks},
		"panel":   {"N", "list the controls of scene N", (*Console).panel},
		"tooltip": {"", "print the live tooltip", (*Console).tooltip},
		"help":    {"", "list commands", (*Console).help},
		"quit":    {"", "leave the console", func(*Console, []string) error { return errQuit }},
	}
}

// Run reads commands from r until EOF or "quit". A failing command
// prints its error and the console carries on.
func (c *Console) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	for {
		fmt.Fprint(c.out, "> ")
		if !sc.Scan() {
			fmt.Fprintln(c.out)
			return sc.Err()
		}
		err := c.Exec(sc.Text())
		if err == errQuit {
			return nil
		}
		if err != nil {
			fmt.Fprintf(c.out, "error: %v\n", err)
		}
	}
}

// Exec runs a single command line.
func (c *Console) Exec(line string) error {
	words, err := shellquote.Split(line)
	if err != nil {
		return err
	}
	if len(words) == 0 {
		return nil
	}
	cmd, ok := commands[words[0]]
	if !ok {
		return fmt.Errorf("unknown command %q (try help)", words[0])
	}
	c.log.Debug("command", zap.Strings("words", words))
	return cmd.run(c, words[1:])
}

func (c *Console) scene(args []string, n int) (scene.Scene, error) {
	if len(args) < n {
		return nil, fmt.Errorf("want %d arguments, got %d", n, len(args))
	}
	num, err := strconv.Atoi(args[0])
	if err != nil {
		return nil, fmt.Errorf("bad scene number %q", args[0])
	}
	return c.p.Scene(num)
}

func parseMark(arg string) (int, error) {
	i, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("bad mark %q", arg)
	}
	return i, nil
}

func (c *Console) show(args []string) error {
	s, err := c.scene(args, 1)
	if err != nil {
		return err
	}
	if err := c.p.Show(s.Number()); err != nil {
		return err
	}
	c.announce(s)
	return nil
}

func (c *Console) next(args []string) error {
	c.announce(c.p.Next())
	return nil
}

func (c *Console) prev(args []string) error {
	c.announce(c.p.Prev())
	return nil
}

func (c *Console) announce(s scene.Scene) {
	fmt.Fprintf(c.out, "scene %d: %s\n", s.Number(), s.Title())
}

func (c *Console) check(args []string) error   { return c.setChecked(args, true) }
func (c *Console) uncheck(args []string) error { return c.setChecked(args, false) }

func (c *Console) setChecked(args []string, on bool) error {
	s, err := c.scene(args, 3)
	if err != nil {
		return err
	}
	return s.Panel().SetChecked(args[1], args[2], on)
}

func (c *Console) set(args []string) error {
	s, err := c.scene(args, 3)
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("bad value %q", args[2])
	}
	return s.Panel().SetValue(args[1], v)
}

func (c *Console) hover(args []string) error {
	s, err := c.scene(args, 4)
	if err != nil {
		return err
	}
	i, err := parseMark(args[1])
	if err != nil {
		return err
	}
	x, errx := strconv.ParseFloat(args[2], 64)
	y, erry := strconv.ParseFloat(args[3], 64)
	if errx != nil || erry != nil {
		return fmt.Errorf("bad pointer position %q %q", args[2], args[3])
	}
	if err := s.Hover(i, x, y); err != nil {
		return err
	}
	return c.tooltip(nil)
}

func (c *Console) leave(args []string) error {
	s, err := c.scene(args, 2)
	if err != nil {
		return err
	}
	i, err := parseMark(args[1])
	if err != nil {
		return err
	}
	return s.Leave(i)
}

func (c *Console) click(args []string) error {
	s, err := c.scene(args, 2)
	if err != nil {
		return err
	}
	i, err := parseMark(args[1])
	if err != nil {
		return err
	}
	if err := s.Click(i); err != nil {
		return err
	}
	if info := s.Panel().Text(scene.RegionInfo); info != "" {
		fmt.Fprintln(c.out, info)
	}
	return nil
}

func (c *Console) text(args []string) error {
	s, err := c.scene(args, 2)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, s.Panel().Text(args[1]))
	return nil
}

func (c *Console) svg(args []string) error {
	s, err := c.scene(args, 1)
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return s.Canvas().WriteSVG(c.out, nil)
	}
	f, err := os.Create(args[1])
	if err != nil {
		return err
	}
	if err := s.Canvas().WriteSVG(f, nil); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func (c *Console) marks(args []string) error {
	s, err := c.scene(args, 1)
	if err != nil {
		return err
	}
	for _, m := range s.Canvas().Marks() {
		detail := ""
		if len(m.Tooltip) > 1 {
			detail = strings.Join(m.Tooltip[1:], "; ")
		}
		fmt.Fprintf(c.out, "%d\t%s\t%s\n", m.Index, m.Key, detail)
	}
	if texts := s.Canvas().Texts(); len(s.Canvas().Marks()) == 0 && len(texts) > 0 {
		fmt.Fprintln(c.out, texts[0])
	}
	return nil
}

func (c *Console) panel(args []string) error {
	s, err := c.scene(args, 1)
	if err != nil {
		return err
	}
	p := s.Panel()
	for _, g := range p.Groups() {
		fmt.Fprintf(c.out, "%s:\n", g.Name)
		for _, o := range g.Options {
			box := "[ ]"
			if g.IsChecked(o) {
				box = "[x]"
			}
			fmt.Fprintf(c.out, "  %s %s\n", box, o)
		}
	}
	for _, sl := range p.Sliders() {
		fmt.Fprintf(c.out, "%s: %g (%g-%g)\n", sl.Name, sl.Value, sl.Min, sl.Max)
	}
	return nil
}

func (c *Console) tooltip(args []string) error {
	tip, owner := c.p.Tooltip()
	if tip == nil {
		fmt.Fprintln(c.out, "no tooltip")
		return nil
	}
	fmt.Fprintf(c.out, "scene %d at (%g, %g):\n", owner, tip.X, tip.Y)
	for _, l := range tip.Lines {
		fmt.Fprintf(c.out, "  %s\n", l)
	}
	return nil
}

func (c *Console) help(args []string) error {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		cmd := commands[name]
		fmt.Fprintf(c.out, "  %-24s %s\n", strings.TrimSpace(name+" "+cmd.args), cmd.help)
	}
	return nil
}
