// Package logging builds the process logger and the gin request logger.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Output formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// New returns a logger configured for env. Level and format override the
// environment defaults when non-empty; invalid overrides are reported on
// the returned logger and ignored.
//
//	development: text, debug
//	test:        text, warn
//	production:  json, info
func New(env, level, format string) *logrus.Logger {
	return NewWithOutput(os.Stderr, env, level, format)
}

// NewWithOutput is New writing to w.
func NewWithOutput(w io.Writer, env, level, format string) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)

	switch env {
	case "production":
		log.SetLevel(logrus.InfoLevel)
		format = orDefault(format, FormatJSON)
	case "test":
		log.SetLevel(logrus.WarnLevel)
		format = orDefault(format, FormatText)
	default:
		log.SetLevel(logrus.DebugLevel)
		format = orDefault(format, FormatText)
	}

	switch format {
	case FormatJSON:
		log.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	case FormatText:
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
	default:
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true, FullTimestamp: true})
		log.WithField("format", format).Warn("unknown log format, using text")
	}

	if level != "" {
		lvl, err := logrus.ParseLevel(level)
		if err != nil {
			log.WithField("level", level).Warn("invalid log level, using environment default")
		} else {
			log.SetLevel(lvl)
		}
	}
	return log
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// Discard returns a logger that drops everything. Used by tests and by
// commands that must keep stdout clean.
func Discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	log.SetLevel(logrus.PanicLevel)
	return log
}

// Middleware logs one line per request with method, path, status and
// latency. 5xx responses log at error level, 4xx at warn.
func Middleware(log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		c.Next()

		status := c.Writer.Status()
		entry := log.WithFields(logrus.Fields{
			"method":  c.Request.Method,
			"path":    path,
			"status":  status,
			"latency": time.Since(start),
			"client":  c.ClientIP(),
		})
		if len(c.Errors) > 0 {
			entry = entry.WithField("errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			entry.Error("request")
		case status >= 400:
			entry.Warn("request")
		default:
			entry.Info("request")
		}
	}
}
