package profiling

import (
	"fmt"
	"log"
	"os"
	"runtime"

	"colorpicker/pkg/options"

	"github.com/grafana/pyroscope-go"
)

const applicationName = "colorpicker.golang.app"

// SetupProfiling starts the pyroscope agent when profiling is enabled. The
// returned stop function is never nil.
func SetupProfiling(opts *options.Options, logger *log.Logger) (stop func(), err error) {
	if !opts.Profiling {
		return func() {}, nil
	}

	runtime.SetMutexProfileFraction(5)
	runtime.SetBlockProfileRate(5)
	profiler, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: applicationName,
		ServerAddress:   opts.ProfilerAddress,
		Logger:          pyroscope.StandardLogger,
		Tags:            map[string]string{"hostname": hostname()},
		ProfileTypes: []pyroscope.ProfileType{
			pyroscope.ProfileCPU,
			pyroscope.ProfileAllocObjects,
			pyroscope.ProfileAllocSpace,
			pyroscope.ProfileInuseObjects,
			pyroscope.ProfileInuseSpace,
			pyroscope.ProfileGoroutines,
			pyroscope.ProfileMutexCount,
			pyroscope.ProfileMutexDuration,
			pyroscope.ProfileBlockCount,
			pyroscope.ProfileBlockDuration,
		},
	})
	if err != nil {
		return func() {}, fmt.Errorf("start profiler: %w", err)
	}
	logger.Println("Profiling to", opts.ProfilerAddress)

	return func() {
		if err := profiler.Stop(); err != nil {
			logger.Println("Failed to stop profiler:", err)
		}
	}, nil
}

func hostname() string {
	if name, err := os.Hostname(); err == nil {
		return name
	}
	return "unknown"
}
