package profiling

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/pprof"
	"time"
)

var pprofWriteHeapProfile = func(w io.Writer) error {
	return pprof.WriteHeapProfile(w)
}

var memProfilingInterval = 10 * time.Second

// DoMemProfiling periodically overwrites filePath with a heap profile.
// The returned function writes one immediately, e.g. before exit.
func DoMemProfiling(filePath string) (writeMemProfile func()) {
	writeMemProfile = func() {
		f, err := osCreate(filePath)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not create memory profile: %v\n", err)
			return
		}
		defer func() {
			_ = f.Close()
		}()
		runtime.GC()
		if err = pprofWriteHeapProfile(f); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "could not write memory profile: %v\n", err)
		}
	}
	interval := memProfilingInterval
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for range ticker.C {
			writeMemProfile()
		}
	}()
	return writeMemProfile
}
