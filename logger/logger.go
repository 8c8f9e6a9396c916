package logger

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Log is the shared logger instance. It is usable as soon as the package is
// imported; Init applies the configured level and formatter on top.
var Log = logrus.New()

func Init(level string) {
	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	Log.SetLevel(parsed)
}
