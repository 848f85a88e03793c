package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/notify"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/store/jsonstore"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// Options carry everything a subcommand needs; main builds them from config and flags.
type Options struct {
	DataFile string
	Notify   bool // desktop notification for today's items when the window opens
	Logger   zerolog.Logger

	// Test hooks; zero values mean the real thing.
	Now      func() time.Time
	Notifier notify.Sender
	RunUI    func(*store.Store) error
	Stdout   io.Writer
}

func (o Options) newStore() *store.Store {
	opts := []store.Option{store.WithLogger(o.Logger)}
	if o.Now != nil {
		opts = append(opts, store.WithClock(o.Now))
	}
	return store.New(o.DataFile, opts...)
}

func (o Options) stdout() io.Writer {
	if o.Stdout != nil {
		return o.Stdout
	}
	return os.Stdout
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
// With no subcommand it opens the window.
func Run(args []string, opt Options) int {
	if len(args) == 0 {
		return doUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp()
		return 0

	case "ui":
		return doUI(opt)

	case "ls":
		f := model.FilterAll
		if len(a) == 1 && a[0] == "today" {
			f = model.FilterToday
		} else if len(a) > 0 {
			ui.Fail("usage: todolist ls [today]")
			return 2
		}
		return doList(opt, f)

	case "add":
		return doAdd(opt, a)

	case "rm":
		if len(a) != 1 {
			ui.Fail("usage: todolist rm <index>")
			return 2
		}
		n, err := strconv.Atoi(a[0])
		if err != nil {
			ui.Fail("rm: not a number: " + a[0])
			return 2
		}
		return doRemove(opt, n)

	case "export":
		if len(a) > 1 {
			ui.Fail("usage: todolist export [path]")
			return 2
		}
		path := ""
		if len(a) == 1 {
			path = a[0]
		}
		return doExport(opt, path)

	case "init":
		return doInit(opt)
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todolist - a small todo list manager

Usage:
  todolist [flags] [subcommand] [args]

Flags:
  -file <path>       Data file (default TodoList.txt)
  -config <path>     Config file (default ~/.config/todolist/config.yaml)
  -theme <name>      classic | neon | mono

Subcommands:
  (none), ui                         Open the todo window
  ls [today]                         List items by deadline
  add [-detail t] [-due dd-MM-yyyy] <description...>
                                     Add an item (deadline defaults to today)
  rm <index>                         Remove item at 1-based index from ls
  export [path]                      Write the list as JSON (stdout by default)
  init                               Create an empty data file

Window keys:
  a add   d/del delete   t today only   c copy detail   q quit

Examples:
  todolist init
  todolist add -due 24-12-2030 -detail "wrap them" "Buy gifts"
  todolist ls today
  todolist rm 2
`)
}

// -------------- subcommand impls ----------------

// doUI is the window lifecycle: load (fatal on failure), show, save (logged on failure).
func doUI(opt Options) int {
	s := opt.newStore()
	if err := s.Load(); err != nil {
		opt.Logger.Error().Err(err).Str("component", "cli").Msg("couldn't load todo items")
		ui.Fail("Couldn't load todo items")
		ui.Fail(err.Error())
		if errors.Is(err, fs.ErrNotExist) {
			fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `todolist init` to create "+s.Path()))
		}
		return 1
	}

	if opt.Notify {
		if err := notify.DueToday(s.Items(), s.Today(), opt.Notifier); err != nil {
			opt.Logger.Warn().Err(err).Str("component", "cli").Msg("due-today notification failed")
		}
	}

	run := opt.RunUI
	if run == nil {
		run = func(s *store.Store) error { return tui.Run(s, tui.WithLogger(opt.Logger)) }
	}
	code := 0
	if err := run(s); err != nil {
		opt.Logger.Error().Err(err).Str("component", "cli").Msg("window failed")
		ui.Fail("ui: " + err.Error())
		code = 1
	}

	if err := s.Save(); err != nil {
		opt.Logger.Error().Err(err).Str("component", "cli").Msg("couldn't save todo items")
		ui.Fail(err.Error())
	}
	return code
}

func doList(opt Options, f model.Filter) int {
	s := opt.newStore()
	if err := s.Load(); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	ui.FPanel(opt.stdout(), listLines(s, f))
	return 0
}

func listLines(s *store.Store, f model.Filter) []string {
	t := ui.Current()
	today := s.Today()
	all := model.View(s.Items(), model.FilterAll, today)
	shown := model.View(s.Items(), f, today)

	header := fmt.Sprintf("%s  %s %d", ui.C(t.Title, "Todo List"), ui.C(t.Accent, "Total"), len(all))
	if f == model.FilterToday {
		header += "  " + ui.C(t.DueToday, fmt.Sprintf("Today %d", len(shown)))
	}
	lines := []string{header, ""}
	if len(shown) == 0 {
		lines = append(lines, ui.C(t.Muted, "no items"))
	}
	for _, it := range shown {
		// indexes always refer to the full list so rm works from either view
		idx := ui.C(t.Muted, fmt.Sprintf("%2d.", model.IndexOf(all, it)+1))
		desc := it.Description
		switch model.UrgencyOf(it, today) {
		case model.DueToday:
			desc = ui.C(t.DueToday, desc)
		case model.DueTomorrow:
			desc = ui.C(t.DueTomorrow, desc)
		}
		lines = append(lines, fmt.Sprintf("%s %s  %s", idx, ui.C(t.Muted, it.Deadline.String()), desc))
	}
	lines = append(lines, "", ui.C(t.Muted, "Tip: add with `todolist add \"Buy milk\"`"))
	return lines
}

func doAdd(opt Options, args []string) int {
	fset := flag.NewFlagSet("add", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	detail := fset.String("detail", "", "free-text detail")
	due := fset.String("due", "", "deadline, dd-MM-yyyy (default today)")
	if err := fset.Parse(args); err != nil {
		ui.Fail("add: " + err.Error())
		return 2
	}
	desc := strings.TrimSpace(strings.Join(fset.Args(), " "))
	if desc == "" {
		ui.Fail("usage: todolist add [-detail text] [-due dd-MM-yyyy] <description...>")
		return 2
	}
	// one record per line, fields split on tabs
	if strings.ContainsAny(desc, "\t\r\n") || strings.Contains(*detail, "\t") {
		ui.Fail("add: description must be a single line and fields must not contain tabs")
		return 2
	}

	s := opt.newStore()
	if err := s.Load(); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	deadline := s.Today()
	if *due != "" {
		d, err := model.ParseDate(*due)
		if err != nil {
			ui.Fail("add: " + err.Error())
			return 2
		}
		deadline = d
	}

	it := model.NewItem(desc, strings.TrimSpace(*detail), deadline)
	s.Add(it)
	if !s.Contains(it) {
		fmt.Fprintln(opt.stdout(), ui.C(ui.Current().Muted, "not added: deadline "+deadline.String()+" is in the past"))
		return 0
	}
	if err := s.Save(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.FOK(opt.stdout(), "added")
	return 0
}

func doRemove(opt Options, userIndex int) int {
	s := opt.newStore()
	if err := s.Load(); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	all := model.View(s.Items(), model.FilterAll, s.Today())
	if userIndex < 1 || userIndex > len(all) {
		ui.Fail(fmt.Sprintf("index out of range: have %d, got %d", len(all), userIndex))
		fmt.Fprintln(os.Stderr, ui.C(ui.Current().Muted, "Hint: run `todolist ls` to see valid indexes"))
		return 2
	}
	s.Delete(all[userIndex-1])
	if err := s.Save(); err != nil {
		ui.Fail("save: " + err.Error())
		return 1
	}
	ui.FOK(opt.stdout(), "removed")
	return 0
}

func doExport(opt Options, path string) int {
	s := opt.newStore()
	if err := s.Load(); err != nil {
		ui.Fail("load: " + err.Error())
		return 1
	}
	var err error
	if path == "" {
		err = jsonstore.Write(opt.stdout(), s.Items())
	} else {
		err = jsonstore.Save(path, s.Items())
	}
	if err != nil {
		ui.Fail("export: " + err.Error())
		return 1
	}
	return 0
}

func doInit(opt Options) int {
	s := opt.newStore()
	f, err := os.OpenFile(s.Path(), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			ui.FOK(opt.stdout(), s.Path()+" already exists")
			return 0
		}
		ui.Fail("init: " + err.Error())
		return 1
	}
	if err := f.Close(); err != nil {
		ui.Fail("init: " + err.Error())
		return 1
	}
	ui.FOK(opt.stdout(), "created "+s.Path())
	return 0
}
