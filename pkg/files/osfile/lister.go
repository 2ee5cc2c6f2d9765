// Package osfile lists directories of the local file system.
package osfile

import (
	"context"
	"os"
	"path/filepath"

	"github.com/filetug/ftexplorer/pkg/files"
	"github.com/rs/zerolog"
)

var osStat = os.Stat
var osOpen = os.Open

var _ files.Lister = (*Lister)(nil)

type Lister struct {
	logger zerolog.Logger
}

type Option func(l *Lister)

func WithLogger(logger zerolog.Logger) Option {
	return func(l *Lister) {
		l.logger = logger
	}
}

func NewLister(options ...Option) *Lister {
	l := &Lister{logger: zerolog.Nop()}
	for _, option := range options {
		option(l)
	}
	return l
}

// List returns the immediate children of dirPath in the order the OS reports
// them. Hidden files and symbolic links are included as they are; a link is
// not followed, so IsDir describes the link itself.
func (l *Lister) List(ctx context.Context, dirPath string) ([]files.DirEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	info, err := osStat(dirPath)
	if err != nil {
		return nil, files.NewListError(dirPath, err)
	}
	if !info.IsDir() {
		return nil, &files.ListError{Kind: files.NotADirectory, Path: dirPath}
	}

	dir, err := osOpen(dirPath)
	if err != nil {
		return nil, files.NewListError(dirPath, err)
	}
	defer func() {
		_ = dir.Close()
	}()

	children, err := dir.ReadDir(-1)
	if err != nil {
		return nil, files.NewListError(dirPath, err)
	}

	entries := make([]files.DirEntry, 0, len(children))
	for _, child := range children {
		name := child.Name()
		childPath := filepath.Join(dirPath, name)
		var options []files.DirEntryOption
		if fi, infoErr := child.Info(); infoErr == nil {
			options = append(options,
				files.Size(uint64(max(fi.Size(), 0))),
				files.ModTime(fi.ModTime()),
			)
		} else {
			// entry may have vanished after the directory was read
			l.logger.Debug().Err(infoErr).Str("path", childPath).Msg("no file info")
		}
		entries = append(entries, files.NewDirEntry(childPath, name, child.IsDir(), options...))
	}
	l.logger.Debug().Str("path", dirPath).Int("count", len(entries)).Msg("directory listed")
	return entries, nil
}
