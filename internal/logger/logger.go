// Package logger configures the process-wide logrus logger and hands out
// prefixed entries to the rest of the module.
package logger

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

const timestampFormat = "2006-01-02 15:04:05"

// Config controls logger initialisation.
type Config struct {
	// Verbosity counts -v flags: 0 info, 1 debug, 2+ trace.
	Verbosity int
	// Level overrides Verbosity when set (e.g. "warn").
	Level string
	// File enables rotated file output when non-empty.
	File string
}

// Init configures the standard logger.
func Init(cfg Config) error {
	level, err := levelFor(cfg)
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	logrus.SetOutput(os.Stderr)
	logrus.SetFormatter(newFormatter(isTerminal(os.Stderr)))
	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))

	if cfg.File == "" {
		return nil
	}

	hook, err := NewRotateFileHook(RotateFileConfig{
		Filename:   cfg.File,
		MaxSize:    5,
		MaxBackups: 10,
		MaxAge:     90,
		Level:      level,
		Formatter:  newFormatter(false),
	})
	if err != nil {
		return errors.Wrap(err, "failed initialising rotating file log")
	}
	logrus.AddHook(hook)
	return nil
}

// GetLogger returns an entry tagged with prefix.
func GetLogger(prefix string) *logrus.Entry {
	return logrus.WithFields(logrus.Fields{"prefix": prefix})
}

func levelFor(cfg Config) (logrus.Level, error) {
	if cfg.Level != "" {
		level, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
		if err != nil {
			return logrus.InfoLevel, errors.Wrapf(err, "invalid log level %q", cfg.Level)
		}
		return level, nil
	}

	switch {
	case cfg.Verbosity <= 0:
		return logrus.InfoLevel, nil
	case cfg.Verbosity == 1:
		return logrus.DebugLevel, nil
	default:
		return logrus.TraceLevel, nil
	}
}

func newFormatter(colors bool) *prefixed.TextFormatter {
	return &prefixed.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: timestampFormat,
		ForceColors:     colors,
		DisableColors:   !colors,
		ForceFormatting: true,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
