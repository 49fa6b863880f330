// file: internals/logger/logger.go

// Package logger is the app-level structured logger used by services and
// background workers. Request-level logging stays with the fiber middleware;
// this one writes rotated files plus stdout.
package logger

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	loggers   = make(map[string]*logrus.Logger)
	loggersMu sync.Mutex
)

// GetLogger returns (creating on first use) the named logger. Each name gets
// its own rotated file under LOG_DIR (default ./logs).
func GetLogger(name string) *logrus.Logger {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if l, ok := loggers[name]; ok {
		return l
	}
	l := newLogger(name)
	loggers[name] = l
	return l
}

// GetAppLogger is the default logger for services and workers.
func GetAppLogger() *logrus.Logger {
	return GetLogger("app")
}

func newLogger(name string) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05.000",
	})

	dir := os.Getenv("LOG_DIR")
	if dir == "" {
		dir = "logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		l.SetOutput(os.Stdout)
		return l
	}

	fileWriter := &lumberjack.Logger{
		Filename:   filepath.Join(dir, name+".log"),
		MaxSize:    50, // MB
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
	l.SetOutput(io.MultiWriter(os.Stdout, fileWriter))
	return l
}
