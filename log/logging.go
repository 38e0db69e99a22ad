// SPDX-License-Identifier: GPL-3.0-or-later
package log

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

// One named logger per subsystem so log lines can be told apart at a
// glance. Prefixes are two letters to keep aligned output narrow.
const (
	LOG_MAIN        = "MA"
	LOG_GMAILSYNC   = "GS"
	LOG_PERSISTENCE = "PI"
	LOG_IMAP        = "IM"
)

var loggers map[string]*logrus.Logger

type prefixFormatter struct {
	formatter logrus.Formatter
	prefix    []byte
}

func newPrefixFormatter(prefix string) *prefixFormatter {
	formatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		DisableColors:   strings.Contains(runtime.GOOS, "windows"),
	}

	return &prefixFormatter{
		formatter: formatter,
		prefix:    []byte(fmt.Sprintf("%s:\t", prefix)),
	}
}

func (f *prefixFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	text, err := f.formatter.Format(entry)
	if err != nil {
		return nil, err
	}
	return append(f.prefix, text...), nil
}

func getLevel(loglevel string) logrus.Level {
	level, err := logrus.ParseLevel(strings.ToLower(loglevel))
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

func InitLogging(loglevel string) {
	loggers = make(map[string]*logrus.Logger)
	for _, prefix := range []string{
		LOG_MAIN,
		LOG_GMAILSYNC,
		LOG_PERSISTENCE,
		LOG_IMAP,
	} {
		l := logrus.New()
		l.Level = getLevel(loglevel)
		l.Formatter = newPrefixFormatter(prefix)
		loggers[prefix] = l
	}
}

func SetLogLevel(loglevel string) {
	for _, l := range loggers {
		l.Level = getLevel(loglevel)
	}
}

func Logger(logger string) *logrus.Logger {
	l, ok := loggers[logger]
	if !ok {
		panic("Logger " + logger + " unknown")
	}

	return l
}
