package logging

import (
	"os"

	oplogging "github.com/op/go-logging"
)

type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warning(args ...interface{})
	Warningf(format string, args ...interface{})
}

const (
	logModule = "gemini-teamcity"
)

var (
	log = oplogging.MustGetLogger(logModule)

	// Stdout carries the service messages, everything else goes to stderr.
	backend = oplogging.AddModuleLevel(oplogging.NewBackendFormatter(
		oplogging.NewLogBackend(os.Stderr, "", 0),
		oplogging.MustStringFormatter(`%{time:15:04:05.000} %{level:.4s} %{message}`),
	))
)

// MustGetLogger returns the application's default logger.
func MustGetLogger() Logger {
	log.SetBackend(backend)
	return log
}

// SetLevel sets the desired log level for the default logger.
func SetLevel(loglevel string) {
	level, err := oplogging.LogLevel(loglevel)
	if err != nil {
		level = oplogging.WARNING
		log.Warningf("invalid log level %q, fall back to WARNING", loglevel)
	}
	backend.SetLevel(level, logModule)
}
