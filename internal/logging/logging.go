package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// DebugVar enables the debug log when truthy.
const DebugVar = "BLOOM_SPLASH_DEBUG"

// DefaultDebugLog is where debug output lands.
const DefaultDebugLog = "/tmp/BloomSplash.log"

// Options configure New.
type Options struct {
	Debug    bool
	LogPath  string    // debug log file; empty uses DefaultDebugLog
	Stderr   io.Writer // nil uses os.Stderr
	LaunchID string
}

// Truthy reports whether a flag value enables a feature: "1", or anything
// starting with t or y in either case.
func Truthy(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	if value == "1" {
		return true
	}
	switch value[0] {
	case 't', 'T', 'y', 'Y':
		return true
	}
	return false
}

// Locked wraps w so the logger and other writers sharing it do not interleave
// partial lines. Wrapping an already locked writer returns it unchanged.
func Locked(w io.Writer) zapcore.WriteSyncer {
	return zapcore.Lock(zapcore.AddSync(w))
}

// New returns a logger and a function that flushes and closes its outputs.
// Failing to open the debug log is reported on stderr and otherwise ignored.
func New(opts Options) (*zap.Logger, func()) {
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	encCfg.CallerKey = ""
	encCfg.NameKey = "logger"
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		Locked(stderr),
		zapcore.WarnLevel,
	)

	cores := []zapcore.Core{consoleCore}
	closers := []func(){}

	if opts.Debug {
		path := opts.LogPath
		if strings.TrimSpace(path) == "" {
			path = DefaultDebugLog
		}
		file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(stderr, "bloom-splash: open debug log: %v\n", err)
		} else {
			fileCfg := zap.NewDevelopmentEncoderConfig()
			fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
			cores = append(cores, zapcore.NewCore(
				zapcore.NewConsoleEncoder(fileCfg),
				Locked(file),
				zapcore.DebugLevel,
			))
			closers = append(closers, func() { _ = file.Close() })
		}
	}

	logger := zap.New(zapcore.NewTee(cores...)).Named("bloom-splash")
	if opts.LaunchID != "" {
		logger = logger.With(zap.String("launch", opts.LaunchID))
	}

	return logger, func() {
		_ = logger.Sync()
		for _, closeFn := range closers {
			closeFn()
		}
	}
}
