package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/pprof"
	"runtime/trace"
	"time"

	"github.com/rs/zerolog"
)

// profiler writes a CPU profile and an execution trace covering one run
type profiler struct {
	dir    string
	logger zerolog.Logger

	cpuFile   *os.File
	traceFile *os.File
}

// startProfiler starts CPU profiling and tracing into dir. Files are named
// after the start time.
func startProfiler(dir string, logger zerolog.Logger) (*profiler, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create profile dir: %w", err)
	}
	baseName := "headless-" + time.Now().Format("20060102-150405")
	p := &profiler{dir: dir, logger: logger}

	var err error
	p.cpuFile, err = os.Create(filepath.Join(dir, baseName+".cpu.prof"))
	if err != nil {
		return nil, fmt.Errorf("failed to create profile file: %w", err)
	}
	if err := pprof.StartCPUProfile(p.cpuFile); err != nil {
		p.cpuFile.Close()
		return nil, fmt.Errorf("failed to start CPU profile: %w", err)
	}

	p.traceFile, err = os.Create(filepath.Join(dir, baseName+".trace"))
	if err != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		return nil, fmt.Errorf("failed to create trace file: %w", err)
	}
	if err := trace.Start(p.traceFile); err != nil {
		pprof.StopCPUProfile()
		p.cpuFile.Close()
		p.traceFile.Close()
		return nil, fmt.Errorf("failed to start trace: %w", err)
	}
	return p, nil
}

// Stop ends profiling and closes both files
func (p *profiler) Stop() error {
	pprof.StopCPUProfile()
	trace.Stop()
	err := errors.Join(p.cpuFile.Close(), p.traceFile.Close())
	p.logger.Info().
		Str("cpu", p.cpuFile.Name()).
		Str("trace", p.traceFile.Name()).
		Msg("profile saved")
	return err
}
