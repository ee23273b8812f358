// Package logging provides the process-wide logrus logger and a compact
// formatter suited to single-interface daemon output.
package logging

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// LogConfig represents logging configuration.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json, text, simple, or compact
}

// CompactFormatter renders entries as
// [TIME][LEVEL][component][interface] message (k=v, ...).
type CompactFormatter struct {
	ShowTime bool
}

// Format renders a single log entry.
func (f *CompactFormatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := &bytes.Buffer{}
	if entry.Buffer != nil {
		b = entry.Buffer
	}

	if f.ShowTime {
		fmt.Fprintf(b, "[%s]", entry.Time.Format("15:04:05"))
	}
	fmt.Fprintf(b, "[%s]", strings.ToUpper(entry.Level.String()))

	// component and interface get dedicated bracket slots up front
	if component, ok := entry.Data["component"]; ok {
		fmt.Fprintf(b, "[%s]", component)
	}
	if iface, ok := entry.Data["interface"]; ok {
		fmt.Fprintf(b, "[%s]", iface)
	}

	b.WriteString(" ")
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		if k != "component" && k != "interface" {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		sort.Strings(keys)
		b.WriteString(" (")
		for i, k := range keys {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(b, "%s=%v", k, entry.Data[k])
		}
		b.WriteString(")")
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// InitLogger initializes the global logger with the provided configuration.
func InitLogger(config LogConfig) {
	logger = logrus.New()

	level, err := logrus.ParseLevel(config.Level)
	if err != nil {
		level = logrus.InfoLevel
		logger.Warnf("Invalid log level '%s', defaulting to 'info'", config.Level)
	}
	logger.SetLevel(level)

	switch strings.ToLower(config.Format) {
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
	case "simple":
		logger.SetFormatter(&CompactFormatter{ShowTime: false})
	case "compact":
		logger.SetFormatter(&CompactFormatter{ShowTime: true})
	case "text", "":
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
		logger.Warnf("Invalid log format '%s', defaulting to 'text'", config.Format)
	}

	logger.SetOutput(os.Stdout)
}

// GetLogger returns the global logger instance, initializing it with
// defaults if needed.
func GetLogger() *logrus.Logger {
	if logger == nil {
		InitLogger(LogConfig{Level: "info", Format: "text"})
	}
	return logger
}

// WithComponent returns an entry tagged with a component name.
func WithComponent(component string) *logrus.Entry {
	return GetLogger().WithField("component", component)
}

// WithComponentAndInterface returns an entry tagged with a component and
// the interface it operates on.
func WithComponentAndInterface(component, iface string) *logrus.Entry {
	return GetLogger().WithFields(logrus.Fields{
		"component": component,
		"interface": iface,
	})
}
