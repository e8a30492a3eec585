package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// SetupLogger configures the global logger to write to stderr; stdout is
// reserved for command output. An unknown level falls back to info.
func SetupLogger(level string) {
	setup(os.Stderr, level, term.IsTerminal(int(os.Stderr.Fd())))
}

func setup(out io.Writer, level string, colors bool) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}

	logrus.SetOutput(out)
	logrus.SetLevel(lvl)
	logrus.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colors,
		DisableColors:    !colors,
		DisableTimestamp: lvl < logrus.DebugLevel,
	})

	if err != nil && level != "" {
		logrus.WithField("level", level).Warn("unknown log level, using info")
	}
}
