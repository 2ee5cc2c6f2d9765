package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	_ "net/http/pprof"
	"os"
	"runtime/pprof"

	"github.com/filetug/ftexplorer/pkg/explorer"
	"github.com/filetug/ftexplorer/pkg/files/osfile"
	"github.com/filetug/ftexplorer/pkg/ftdrives"
	"github.com/filetug/ftexplorer/pkg/ftlog"
	"github.com/filetug/ftexplorer/pkg/ftnav"
	"github.com/filetug/ftexplorer/pkg/ftpaths"
	"github.com/filetug/ftexplorer/pkg/ftwatch"
	"github.com/filetug/ftexplorer/pkg/profiling"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var httpListenAndServe = http.ListenAndServe
var osExit = os.Exit
var osStderr io.Writer = os.Stderr
var pprofStopCPUProfile = pprof.StopCPUProfile

var newPlatformPaths = ftpaths.NewPlatformPaths
var newTviewApp = tview.NewApplication
var setupApp = explorer.SetupApp

var enumerateDrives = func(ctx context.Context, logger zerolog.Logger) []ftdrives.DriveRoot {
	return ftdrives.NewEnumerator(ftdrives.WithLogger(logger)).Enumerate(ctx)
}

var newWatcher = func(onChange func(dir string), logger zerolog.Logger) (dirWatcher, error) {
	return ftwatch.New(onChange, ftwatch.WithLogger(logger))
}

type dirWatcher interface {
	explorer.DirWatcher
	Close() error
}

type application interface{ Run() error }

var run = func(app application) error {
	return app.Run()
}

func main() {
	osExit(execute(os.Args[1:]))
}

func execute(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(osStderr, "ftexplorer: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var flags cliFlags
	cmd := &cobra.Command{
		Use:           "ftexplorer",
		Short:         "Terminal file explorer",
		Long:          "ftexplorer shows well-known folders and drives on the left and the current directory on the right.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags.changed = cmd.Flags().Changed
			return runExplorer(cmd.Context(), flags)
		},
	}
	f := cmd.Flags()
	f.StringVar(&flags.logFile, "log-file", "", "write logs to `file` (- for stderr)")
	f.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.StringVar(&flags.dataDir, "data-dir", "", "application data `dir`")
	f.StringVar(&flags.settingsFile, "settings", "", "settings `file` (YAML)")
	f.BoolVar(&flags.watch, "watch", false, "refresh the listing when the directory changes")
	f.StringVar(&flags.cpuProfile, "cpuprofile", "", "write cpu profile to `file`")
	f.StringVar(&flags.memProfile, "memprofile", "", "write memory profile to `file`")
	f.StringVar(&flags.pprofAddr, "pprof", "", "start pprof http server on `address` (e.g. localhost:6060)")
	return cmd
}

func runExplorer(ctx context.Context, flags cliFlags) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if flags.pprofAddr != "" {
		stderr, listenAndServe := osStderr, httpListenAndServe
		go func() {
			if err := listenAndServe(flags.pprofAddr, nil); err != nil {
				_, _ = fmt.Fprintf(stderr, "pprof server error: %v\n", err)
			}
		}()
	}

	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(osStderr, "Recovered from panic: %v\n", r)
			pprofStopCPUProfile()
			osExit(1)
		}
	}()

	if flags.cpuProfile != "" {
		stopCPUProfiling := profiling.DoCPUProfiling(flags.cpuProfile)
		defer stopCPUProfiling()
	}
	if flags.memProfile != "" {
		writeMemProfile := profiling.DoMemProfiling(flags.memProfile)
		defer writeMemProfile()
	}

	cfg, settingsErr := loadConfig(flags)

	logger, closer, logErr := ftlog.New(ftlog.Options{Level: cfg.logLevel, FilePath: cfg.logFile})
	if logErr != nil {
		level, err := ftlog.ParseLevel(cfg.logLevel)
		if err != nil {
			return err
		}
		logger = ftlog.NewWithWriter(osStderr, level)
		logger.Warn().Err(logErr).Str("path", cfg.logFile).Msg("logging to stderr")
	}
	defer func() {
		_ = closer.Close()
	}()
	if settingsErr != nil {
		logger.Warn().Err(settingsErr).Msg("using default settings")
	}

	registry, err := ftpaths.Resolve(ctx, newPlatformPaths(),
		ftpaths.WithLogger(logger),
		ftpaths.WithAppDataDir(cfg.dataDir),
	)
	if err != nil {
		logger.Error().Err(err).Msg("cannot determine well-known locations")
		return err
	}

	nav := ftnav.New(
		osfile.NewLister(osfile.WithLogger(logger)),
		ftnav.WithLogger(logger),
	)
	tviewApp := newTviewApp()
	e := setupApp(ctx, explorer.NewApp(tviewApp), explorer.Deps{
		Registry:  registry,
		Drives:    enumerateDrives(ctx, logger),
		Bookmarks: cfg.bookmarks,
		Navigator: nav,
		Logger:    logger,
	})

	if cfg.watch {
		w, err := newWatcher(e.DirChanged, logger)
		if err != nil {
			logger.Warn().Err(err).Msg("directory watching is disabled")
		} else {
			defer func() {
				_ = w.Close()
			}()
			e.SetWatcher(w)
		}
	}

	logger.Info().
		Int("locations", len(registry.Locations())).
		Int("bookmarks", len(cfg.bookmarks)).
		Bool("watch", cfg.watch).
		Msg("starting")
	return run(tviewApp)
}
