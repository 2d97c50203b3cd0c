// Package logger adapts logrus to the service logging interface: leveled
// console output with a colored component tag per subsystem.
package logger

import (
	"errors"
	"io"

	"github.com/beka-birhanu/labyrinth-api/service/i"
	"github.com/sirupsen/logrus"
)

const colorReset = "\033[0m"

var ErrEmptyComponent = errors.New("logger component must not be empty")

// Logrus implements i.Logger over a tagged logrus entry.
type Logrus struct {
	entry *logrus.Entry
}

// New creates a logger writing to out, tagging every line with the component
// name wrapped in the given ANSI color.
func New(component, color string, out io.Writer) (i.Logger, error) {
	if component == "" {
		return nil, ErrEmptyComponent
	}

	base := logrus.New()
	base.SetOutput(out)
	base.SetFormatter(&logrus.TextFormatter{
		ForceColors:   true,
		FullTimestamp: true,
	})

	return &Logrus{entry: base.WithField("component", color+component+colorReset)}, nil
}

// Debug logs messages useful only while developing.
func (l *Logrus) Debug(msg string) {
	l.entry.Debug(msg)
}

// Info logs normal operational messages.
func (l *Logrus) Info(msg string) {
	l.entry.Info(msg)
}

// Warn logs recoverable oddities.
func (l *Logrus) Warn(msg string) {
	l.entry.Warn(msg)
}

// Error logs failures.
func (l *Logrus) Error(msg string) {
	l.entry.Error(msg)
}
