package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/aragroup1/seoctl/internal/log"
)

// NewLogrus returns a new log.Logger for a logrus implementation.
func NewLogrus(l *logrus.Entry) log.Logger {
	return logger{entry: l}
}

type logger struct {
	entry *logrus.Entry
}

func (l logger) Infof(format string, args ...interface{}) { l.entry.Infof(format, args...) }
func (l logger) Warningf(format string, args ...interface{}) {
	l.entry.Warningf(format, args...)
}
func (l logger) Errorf(format string, args ...interface{}) { l.entry.Errorf(format, args...) }
func (l logger) Debugf(format string, args ...interface{}) { l.entry.Debugf(format, args...) }

func (l logger) WithValues(kv map[string]interface{}) log.Logger {
	return logger{entry: l.entry.WithFields(kv)}
}
