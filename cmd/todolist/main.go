package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/idilsaglam/todolist/internal/cli"
	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/ui"
)

func main() {
	// Root flags (apply to every subcommand)
	dataFile := flag.String("file", "", "data file (overrides config)")
	configPath := flag.String("config", "", "config file path")
	theme := flag.String("theme", "", "classic | neon | mono")
	flag.Usage = cli.PrintHelp
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		ui.Fail("config: " + err.Error())
		os.Exit(1)
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *theme != "" {
		cfg.Theme = *theme
	}
	ui.SetTheme(cfg.Theme)

	args := flag.Args()
	logOpts := logging.Options{Level: cfg.Log.Level, File: cfg.Log.File}
	// The window owns the terminal; only plain subcommands log to stderr.
	if len(args) > 0 && args[0] != "ui" {
		logOpts.Console = os.Stderr
	}
	logger, closer := logging.New(logOpts)

	code := cli.Run(args, cli.Options{
		DataFile: cfg.DataFile,
		Notify:   cfg.NotifyDueToday,
		Logger:   logger,
	})
	if code != 0 {
		fmt.Fprintln(os.Stderr)
	}
	closer.Close()
	os.Exit(code)
}
