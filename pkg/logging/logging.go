package logging

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

type Config struct {
	Level  string
	Format string // text|json
	Out    io.Writer
}

// New builds the process logger. Unknown levels fall back to info.
func New(cfg Config) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	if cfg.Out != nil {
		l.SetOutput(cfg.Out)
	}
	lvl, err := logrus.ParseLevel(strings.TrimSpace(cfg.Level))
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)
	if strings.EqualFold(cfg.Format, "json") {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return l
}

// Discard is for tests and library defaults.
func Discard() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return logrus.NewEntry(l)
}
