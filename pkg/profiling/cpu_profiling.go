// Package profiling writes CPU and heap profiles when enabled by flags.
package profiling

import (
	"fmt"
	"os"
	"runtime/pprof"
)

var osCreate = os.Create
var pprofStartCPUProfile = pprof.StartCPUProfile
var pprofStopCPUProfile = pprof.StopCPUProfile

// DoCPUProfiling starts CPU profiling into filePath and returns the function
// that stops it. The returned function is never nil.
func DoCPUProfiling(filePath string) (stop func()) {
	f, err := osCreate(filePath)
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not create CPU profile: %v\n", err)
		return func() {}
	}
	if err = pprofStartCPUProfile(f); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "could not start CPU profile: %v\n", err)
		_ = f.Close()
		return func() {}
	}
	return func() {
		pprofStopCPUProfile()
		_ = f.Close()
	}
}
