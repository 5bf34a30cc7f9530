// Package logging builds the zap logger shared by the command line tools and
// the GUI: a human readable console stream plus a JSON run log on disk.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Run log rotation limits
const (
	MaxLogSizeMB  = 20
	MaxLogBackups = 10
	MaxLogAgeDays = 90
)

// Options configures New
type Options struct {
	Dir     string    // run log directory; empty disables the file log
	Prefix  string    // run log name prefix, e.g. "process_data"
	Verbose bool      // debug level instead of info
	Console io.Writer // defaults to os.Stderr
	Now     func() time.Time
}

// RunLogName returns "<prefix>_YYYYMMDD_HHMMSS.log"
func RunLogName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s_%s.log", prefix, t.Format("20060102_150405"))
}

// New builds a logger. The returned path is the run log file, empty when
// file logging is disabled. Callers should Sync the logger before exit.
func New(opts Options) (*zap.Logger, string, error) {
	level := zapcore.InfoLevel
	if opts.Verbose {
		level = zapcore.DebugLevel
	}
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05")
	consoleCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.AddSync(console), level),
	}

	var path string
	if opts.Dir != "" {
		if err := os.MkdirAll(opts.Dir, 0755); err != nil {
			return nil, "", fmt.Errorf("failed to create log dir %s: %w", opts.Dir, err)
		}
		prefix := opts.Prefix
		if prefix == "" {
			prefix = "flexlab"
		}
		path = filepath.Join(opts.Dir, RunLogName(prefix, now()))
		rotator := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    MaxLogSizeMB,
			MaxBackups: MaxLogBackups,
			MaxAge:     MaxLogAgeDays,
		}
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), level))
	}

	return zap.New(zapcore.NewTee(cores...)), path, nil
}
