package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/xonecas/delta/internal/config"
	"github.com/xonecas/delta/internal/session"
	"github.com/xonecas/delta/internal/store"
	"github.com/xonecas/delta/internal/theme"
	"github.com/xonecas/delta/internal/tui"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags := flag.NewFlagSet("delta", flag.ContinueOnError)
	configPath := flags.String("config", "", "config file (default ~/.config/delta/config.toml)")
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: delta [-config path] file...")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		flags.Usage()
		return 2
	}

	if *configPath == "" {
		if p, err := config.DefaultPath(); err == nil {
			*configPath = p
		}
	}
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "delta: %v\n", err)
		return 1
	}

	dataDir, err := config.EnsureDataDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "delta: data dir: %v\n", err)
	}
	closeLog := setupLogging(cfg.Log, dataDir)
	defer closeLog()

	opts := session.Options{
		TabWidth:    cfg.Editor.TabWidth,
		ExpandTabs:  cfg.Editor.ExpandTabs,
		PageJump:    cfg.Editor.PageJump,
		MaxFileSize: cfg.Editor.MaxFileSize,
	}
	if cfg.Editor.RestoreCursor && dataDir != "" {
		positions, err := store.Open(filepath.Join(dataDir, "positions.db"), store.DefaultMaxEntries)
		if err != nil {
			log.Warn().Err(err).Msg("cursor positions will not be remembered")
		} else {
			defer positions.Close()
			opts.Positions = positions
		}
	}

	palette, ok := theme.FromChroma(cfg.UI.ThemeOrDefault())
	if !ok {
		log.Warn().Str("theme", cfg.UI.Theme).Msg("unknown theme, using default colors")
	}
	view := tui.Options{
		Palette:     palette,
		LineNumbers: cfg.UI.LineNumbers,
		TabWidth:    cfg.Editor.TabWidth,
	}

	for _, path := range flags.Args() {
		sess, err := session.Open(path, opts)
		if err != nil {
			log.Error().Err(err).Str("file", path).Msg("open failed")
			fmt.Fprintf(os.Stderr, "delta: %s: %s\n", path, session.StatusFor(err))
			return 1
		}
		if _, err := tea.NewProgram(tui.New(sess, view)).Run(); err != nil {
			log.Error().Err(err).Str("file", path).Msg("program failed")
			fmt.Fprintf(os.Stderr, "delta: %v\n", err)
			return 1
		}
	}
	return 0
}

// setupLogging points the global zerolog logger at the configured file. Logs
// never go to the terminal, which belongs to the editor.
func setupLogging(cfg config.LogConfig, dataDir string) func() {
	path := cfg.File
	if path == "" {
		if dataDir == "" {
			log.Logger = zerolog.Nop()
			return func() {}
		}
		path = filepath.Join(dataDir, "delta.log")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "delta: log file: %v\n", err)
		log.Logger = zerolog.Nop()
		return func() {}
	}
	log.Logger = zerolog.New(f).Level(cfg.ZerologLevel()).With().Timestamp().Logger()
	return func() { _ = f.Close() }
}
