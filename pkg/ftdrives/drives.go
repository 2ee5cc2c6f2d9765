// Package ftdrives lists mounted volumes that the process can access.
package ftdrives

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// DriveRoot is the top-level path of a mounted volume.
type DriveRoot struct {
	Path string
}

// MountSource reports mount points in OS order.
type MountSource interface {
	Mounts(ctx context.Context) ([]string, error)
}

// ProbeError is logged for a volume excluded because its metadata could not be read.
type ProbeError struct {
	Path string
	Err  error
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("access denied to drive %s: %v", e.Path, e.Err)
}

func (e *ProbeError) Unwrap() error {
	return e.Err
}

type Enumerator struct {
	source MountSource
	probe  func(path string) error
	logger zerolog.Logger
}

type Option func(e *Enumerator)

func WithLogger(logger zerolog.Logger) Option {
	return func(e *Enumerator) {
		e.logger = logger
	}
}

func WithSource(source MountSource) Option {
	return func(e *Enumerator) {
		e.source = source
	}
}

// WithProbe replaces the accessibility check, os.Stat by default.
func WithProbe(probe func(path string) error) Option {
	return func(e *Enumerator) {
		e.probe = probe
	}
}

var osStat = os.Stat

func statProbe(path string) error {
	_, err := osStat(path)
	return err
}

func NewEnumerator(options ...Option) *Enumerator {
	e := &Enumerator{
		source: newPlatformSource(),
		probe:  statProbe,
		logger: zerolog.Nop(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

// Enumerate returns accessible drive roots. Inaccessible volumes are dropped
// with a diagnostic; a failing mount source yields an empty list.
func (e *Enumerator) Enumerate(ctx context.Context) []DriveRoot {
	mounts, err := e.source.Mounts(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to list mounted volumes")
		return nil
	}
	drives := make([]DriveRoot, 0, len(mounts))
	seen := make(map[string]struct{}, len(mounts))
	for _, mount := range mounts {
		if mount == "" {
			continue
		}
		mount = filepath.Clean(mount)
		if _, ok := seen[mount]; ok {
			continue
		}
		seen[mount] = struct{}{}
		if probeErr := e.probe(mount); probeErr != nil {
			e.logger.Warn().Err(&ProbeError{Path: mount, Err: probeErr}).
				Str("path", mount).
				Msg("drive excluded")
			continue
		}
		drives = append(drives, DriveRoot{Path: mount})
	}
	e.logger.Debug().Int("count", len(drives)).Msg("drives enumerated")
	return drives
}
