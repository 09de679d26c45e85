package logging

import (
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
)

const flushTimeout = 2 * time.Second

// SentryHook forwards logrus entries of the configured levels to Sentry
type SentryHook struct {
	levels []logrus.Level
}

func NewSentryHook(levels []logrus.Level) *SentryHook {
	return &SentryHook{
		levels: levels,
	}
}

func (h *SentryHook) Levels() []logrus.Level {
	return h.levels
}

func (h *SentryHook) Fire(entry *logrus.Entry) error {
	switch entry.Level {
	case logrus.PanicLevel, logrus.FatalLevel:
		sentry.CaptureMessage(entry.Message)
		// sentry events are sent async, flush before the process dies
		sentry.Flush(flushTimeout)
	default:
		sentry.WithScope(func(scope *sentry.Scope) {
			scope.SetLevel(sentryLevel(entry.Level))
			for k, v := range entry.Data {
				scope.SetExtra(k, v)
			}
			sentry.CaptureMessage(entry.Message)
		})
	}
	return nil
}

func sentryLevel(level logrus.Level) sentry.Level {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel:
		return sentry.LevelFatal
	case logrus.ErrorLevel:
		return sentry.LevelError
	case logrus.WarnLevel:
		return sentry.LevelWarning
	case logrus.DebugLevel, logrus.TraceLevel:
		return sentry.LevelDebug
	default:
		return sentry.LevelInfo
	}
}
