package main

import (
	"github.com/heroiclabs/nakama-common/runtime"
	"github.com/sirupsen/logrus"
)

// logrusLogger adapts a logrus entry to runtime.Logger so engines log the
// same way inside and outside Nakama.
type logrusLogger struct {
	entry *logrus.Entry
}

func newLogger(l *logrus.Logger) runtime.Logger {
	return logrusLogger{entry: logrus.NewEntry(l)}
}

func (l logrusLogger) Debug(format string, v ...interface{}) { l.entry.Debugf(format, v...) }
func (l logrusLogger) Info(format string, v ...interface{})  { l.entry.Infof(format, v...) }
func (l logrusLogger) Warn(format string, v ...interface{})  { l.entry.Warnf(format, v...) }
func (l logrusLogger) Error(format string, v ...interface{}) { l.entry.Errorf(format, v...) }

func (l logrusLogger) WithField(key string, v interface{}) runtime.Logger {
	return logrusLogger{entry: l.entry.WithField(key, v)}
}

func (l logrusLogger) WithFields(fields map[string]interface{}) runtime.Logger {
	return logrusLogger{entry: l.entry.WithFields(logrus.Fields(fields))}
}

func (l logrusLogger) Fields() map[string]interface{} {
	return l.entry.Data
}
