// cmd/seek/main.go
package main

import (
	"errors"
	"flag"
	"fmt"
	stlog "log" // Use standard log for FATAL errors before logger is ready
	"os"

	"github.com/bethropolis/seek/internal/app"
	"github.com/bethropolis/seek/internal/config"
	"github.com/bethropolis/seek/internal/logger"
	"github.com/bethropolis/seek/internal/types"
)

const (
	exitError    = 1
	exitNotFound = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// --- Argument & Flag Parsing ---
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [flags] needle [file]\n       %s -clipboard [flags] [file]\n\nWith no file, or file '-', the input is read from stdin.\n\nFlags:\n", config.AppName, config.AppName)
		fs.PrintDefaults()
	}
	flags := config.NewFlags(fs)
	rest, err := flags.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return exitError
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		return 0
	}

	req := app.Request{
		FromClipboard: *flags.Clipboard,
		All:           *flags.All,
		Count:         *flags.Count,
		Cursor:        types.Position{Line: *flags.Row, Col: *flags.Col},
		FilePath:      "-",
	}
	if !req.FromClipboard {
		if len(rest) == 0 {
			fs.Usage()
			return exitError
		}
		req.Needle, rest = rest[0], rest[1:]
	}
	if len(rest) > 0 {
		req.FilePath = rest[0]
	}
	if flags.IsSet("replace") {
		req.Replace = flags.Replace
	}

	// --- Configuration ---
	cfg, err := config.Load(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Printf("Error: %v", err)
		return exitError
	}
	if *flags.Selection != "" {
		r, err := app.ParseRange(*flags.Selection)
		if err != nil {
			stlog.Printf("Error: %v", err)
			return exitError
		}
		req.Selection = &r
		// A selection without an explicit scope restricts the search to it.
		if !flags.IsSet("scope") {
			cfg.Search.Scope = "selection"
		}
	}

	// --- Logger Initialization ---
	logOutput, closeLog, err := logger.OpenOutput(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Printf("Error: %v", err)
		return exitError
	}
	defer closeLog()
	logger.InitWithConfig(cfg.Logger, logger.ParseLevel(cfg.Logger.LogLevel), logOutput)
	logger.Debugf("Starting %s %s", config.AppName, config.Version)

	// --- Create and Run App ---
	seekApp, err := app.NewApp(cfg, req, os.Stdin, os.Stdout)
	if err != nil {
		logger.Errorf("Error initializing search: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitError
	}
	defer seekApp.Close()

	n, err := seekApp.Run()
	if err != nil {
		logger.Errorf("Search failed: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		return exitError
	}
	if n == 0 {
		return exitNotFound
	}
	return 0
}
