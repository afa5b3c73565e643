package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Init sets a text formatter with full timestamps and parses level
// ("debug", "info", "warn", "error").
func Init(level string) error {
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	log.SetLevel(lvl)
	return nil
}

// SetOutput redirects log output. The TUI uses it to keep logs off the screen.
func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

// entry attaches the optional field map; only the first one is used.
func entry(fields []map[string]interface{}) *logrus.Entry {
	if len(fields) > 0 {
		return log.WithFields(fields[0])
	}
	return logrus.NewEntry(log)
}

func Debug(msg string, fields ...map[string]interface{}) {
	entry(fields).Debug(msg)
}

func Info(msg string, fields ...map[string]interface{}) {
	entry(fields).Info(msg)
}

// Warn is used for malformed settings that fall back to their defaults.
func Warn(msg string, fields ...map[string]interface{}) {
	entry(fields).Warn(msg)
}

func Error(msg string, err error, fields ...map[string]interface{}) {
	entry(fields).WithError(err).Error(msg)
}
