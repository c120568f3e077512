// internal/config/flags.go
package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/seek/internal/logger"
)

// Flags holds values parsed from command-line flags.
// Only flags that were actually set override the configuration.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath *string
	Version        *bool
	LogLevel       *string
	LogFilePath    *string
	EnableTags     *string
	DisableTags    *string

	Wrap            *bool
	CaseSensitive   *bool
	WholeWord       *bool
	RegExp          *bool
	Backwards       *bool
	Scope           *string
	Marker          *bool
	SystemClipboard *bool

	// Search target; not part of the configuration file.
	Row       *int
	Col       *int
	Selection *string
	All       *bool
	Count     *bool
	Clipboard *bool
	Replace   *string
}

// NewFlags defines the command-line flags on fs.
func NewFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")

	f.Wrap = fs.Bool("wrap", false, "Wrap around the document boundary")
	f.CaseSensitive = fs.Bool("case", false, "Case-sensitive matching")
	f.WholeWord = fs.Bool("word", false, "Match whole words only")
	f.RegExp = fs.Bool("regexp", false, "Treat the needle as a regular expression")
	f.Backwards = fs.Bool("backwards", false, "Search backwards from the cursor")
	f.Scope = fs.String("scope", "", "Search scope: all or selection")
	f.Marker = fs.Bool("marker", true, "Underline matches in the output")
	f.SystemClipboard = fs.Bool("system-clipboard", false, "Use the system clipboard for -clipboard")

	f.Row = fs.Int("row", 0, "Cursor line (0-based)")
	f.Col = fs.Int("col", 0, "Cursor column in characters (0-based)")
	f.Selection = fs.String("sel", "", "Selection as line:col-line:col (0-based); implies -scope selection. Forward searches start at its start, backward ones at its end")
	f.All = fs.Bool("all", false, "Report every match in scope instead of the first (always wraps, ignoring -wrap)")
	f.Count = fs.Bool("count", false, "Print only the number of matches in scope (always wraps, ignoring -wrap)")
	f.Clipboard = fs.Bool("clipboard", false, "Read the needle from the clipboard")
	f.Replace = fs.String("replace", "", "Replace every match in scope with this text (always wraps, ignoring -wrap); files are rewritten, stdin is printed")
	return f
}

// Parse parses args and returns the remaining non-flag arguments.
func (f *Flags) Parse(args []string) ([]string, error) {
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// IsSet reports whether the named flag was given on the command line.
func (f *Flags) IsSet(name string) bool {
	set := false
	f.fs.Visit(func(fl *flag.Flag) {
		if fl.Name == name {
			set = true
		}
	})
	return set
}

// ApplyOverrides updates cfg with the flags that were set.
func (f *Flags) ApplyOverrides(cfg *Config) {
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s", fl.Name)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "wrap":
			cfg.Search.Wrap = *f.Wrap
		case "case":
			cfg.Search.CaseSensitive = *f.CaseSensitive
		case "word":
			cfg.Search.WholeWord = *f.WholeWord
		case "regexp":
			cfg.Search.RegExp = *f.RegExp
		case "backwards":
			cfg.Search.Backwards = *f.Backwards
		case "scope":
			if *f.Scope != "" {
				cfg.Search.Scope = *f.Scope
			}
		case "marker":
			cfg.Search.Marker = *f.Marker
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		}
	})
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
