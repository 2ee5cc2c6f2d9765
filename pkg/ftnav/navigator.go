package ftnav

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/rs/zerolog"
)

var ErrNotNavigated = errors.New("no directory has been opened yet")

// Navigator is the only writer of State. It is not safe for concurrent use;
// callers run it on the UI event goroutine.
type Navigator struct {
	lister    files.Lister
	logger    zerolog.Logger
	state     State
	listeners []func(State)
}

type Option func(nav *Navigator)

func WithLogger(logger zerolog.Logger) Option {
	return func(nav *Navigator) {
		nav.logger = logger
	}
}

func New(lister files.Lister, options ...Option) *Navigator {
	nav := &Navigator{
		lister: lister,
		logger: zerolog.Nop(),
		state:  State{Label: DefaultLabel},
	}
	for _, option := range options {
		option(nav)
	}
	return nav
}

// Current returns a copy of the current state.
func (nav *Navigator) Current() State {
	return nav.state.clone()
}

// OnChange registers f to be called after every successful navigation.
func (nav *Navigator) OnChange(f func(State)) {
	nav.listeners = append(nav.listeners, f)
}

// Navigate lists req.Path and, on success, replaces label, path and entries
// in a single assignment. On failure the state is left as it was.
func (nav *Navigator) Navigate(ctx context.Context, req Request) (State, error) {
	entries, err := nav.lister.List(ctx, req.Path)
	if err != nil {
		nav.logger.Warn().Err(err).
			Str("label", req.Label).
			Str("path", req.Path).
			Msg("navigation rejected")
		return nav.Current(), err
	}
	if entries == nil {
		entries = []files.DirEntry{}
	}
	nav.state = State{Label: req.Label, Path: req.Path, Entries: entries}
	nav.logger.Debug().
		Str("label", req.Label).
		Str("path", req.Path).
		Int("entries", len(entries)).
		Msg("navigated")

	current := nav.Current()
	for _, listener := range nav.listeners {
		listener(current)
	}
	return current, nil
}

// Refresh lists the current directory again.
func (nav *Navigator) Refresh(ctx context.Context) (State, error) {
	if !nav.state.Navigated() {
		return nav.Current(), ErrNotNavigated
	}
	return nav.Navigate(ctx, Request{Label: nav.state.Label, Path: nav.state.Path})
}

// Parent navigates to the directory containing the current one, labelled by
// its base name. At the file system root it refreshes.
func (nav *Navigator) Parent(ctx context.Context) (State, error) {
	if !nav.state.Navigated() {
		return nav.Current(), ErrNotNavigated
	}
	parent := filepath.Dir(nav.state.Path)
	if parent == nav.state.Path {
		return nav.Refresh(ctx)
	}
	return nav.Navigate(ctx, Request{Label: labelOf(parent), Path: parent})
}

// Open navigates into a directory entry of the current listing.
func (nav *Navigator) Open(ctx context.Context, entry files.DirEntry) (State, error) {
	return nav.Navigate(ctx, Request{Label: entry.Name, Path: entry.Path})
}

func labelOf(p string) string {
	base := filepath.Base(p)
	if base == "." || base == string(filepath.Separator) {
		return p
	}
	return base
}
