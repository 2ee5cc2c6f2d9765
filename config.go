package main

import (
	"path/filepath"

	"github.com/filetug/ftexplorer/pkg/ftlog"
	"github.com/filetug/ftexplorer/pkg/ftsettings"
)

type cliFlags struct {
	logFile      string
	logLevel     string
	dataDir      string
	settingsFile string
	watch        bool
	cpuProfile   string
	memProfile   string
	pprofAddr    string

	// changed reports whether a flag was set on the command line
	changed func(name string) bool
}

func (f cliFlags) isSet(name string) bool {
	return f.changed != nil && f.changed(name)
}

// config is what the explorer starts with once flags and the settings file
// are merged. Flags win.
type config struct {
	dataDir   string
	logFile   string
	logLevel  string
	watch     bool
	bookmarks []ftsettings.Bookmark
}

var appDataDir = ftsettings.AppDataDir

// loadConfig never fails to produce a config; a settings error is returned
// alongside the defaults so it can be logged.
func loadConfig(flags cliFlags) (cfg config, err error) {
	cfg.dataDir = flags.dataDir
	if cfg.dataDir == "" {
		// left empty, the platform data dir is resolved later
		cfg.dataDir, _ = appDataDir()
	}

	settingsFile := flags.settingsFile
	if settingsFile == "" && cfg.dataDir != "" {
		settingsFile = filepath.Join(cfg.dataDir, ftsettings.SettingsFileName)
	}
	var settings ftsettings.Settings
	if settingsFile != "" {
		settings, err = ftsettings.Load(settingsFile)
	}

	cfg.logLevel = settings.LogLevel
	if flags.isSet("log-level") {
		cfg.logLevel = flags.logLevel
	}

	cfg.logFile = settings.LogFile
	if flags.isSet("log-file") {
		cfg.logFile = flags.logFile
	}
	if cfg.logFile == "" {
		if cfg.dataDir != "" {
			cfg.logFile = filepath.Join(cfg.dataDir, ftlog.FileName)
		} else {
			cfg.logFile = ftlog.Stderr
		}
	}

	cfg.watch = settings.Watch
	if flags.isSet("watch") {
		cfg.watch = flags.watch
	}
	cfg.bookmarks = settings.ExpandedBookmarks()
	return cfg, err
}
