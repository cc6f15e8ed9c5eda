package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

const (
	debug   = "debug"
	warning = "warning"
	info    = "info"
	error_  = "error"
	fatal   = "fatal"
)

// Log доступен и до InitLogger, чтобы пакеты можно было использовать в тестах
var Log = logrus.New()

func InitLogger(logLevel string) *logrus.Logger {
	Log = logrus.New()

	Log.SetOutput(os.Stderr)
	Log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	switch logLevel {
	case debug:
		Log.SetLevel(logrus.DebugLevel)
	case warning:
		Log.SetLevel(logrus.WarnLevel)
	case info:
		Log.SetLevel(logrus.InfoLevel)
	case error_:
		Log.SetLevel(logrus.ErrorLevel)
	case fatal:
		Log.SetLevel(logrus.FatalLevel)
	default:
		Log.SetLevel(logrus.WarnLevel)
	}

	return Log
}
