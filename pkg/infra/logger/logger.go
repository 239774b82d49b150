package logger

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

type Options struct {
	// Level falls back to LOG_LEVEL, then info.
	Level string
	// Dir holds <service>.log. Empty disables the file sink.
	Dir string
	// Console mirrors entries to stdout.
	Console bool
}

// NewLogger builds the JSON logger used by every component. The returned
// func flushes and closes the async sinks.
func NewLogger(service string, opts Options) (*logrus.Logger, func()) {
	logger := logrus.New()

	logger.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyTime: "time",
			logrus.FieldKeyMsg:  "msg",
		},
	})
	logger.SetLevel(parseLevel(opts.Level))

	var closers []func()
	logger.SetOutput(os.Stdout)

	if opts.Dir != "" {
		logFile := filepath.Join(filepath.Clean(opts.Dir), service+".log")
		asyncWriter, err := NewAsyncFileWriter(logFile, 32*1024)
		if err != nil {
			logger.WithError(err).Warn("file logging disabled")
		} else {
			logger.SetOutput(asyncWriter)
			closers = append(closers, asyncWriter.Close)
			if opts.Console {
				hook := NewAsyncConsoleHook(1000)
				logger.AddHook(hook)
				closers = append(closers, hook.Close)
			}
		}
	}

	return logger, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}

func parseLevel(level string) logrus.Level {
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	parsed, err := logrus.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return logrus.InfoLevel
	}
	return parsed
}
