package logging

import (
	"context"
	"log/slog"
	"time"
)

// DefaultWindow is how long a (category, message) pair suppresses repeats.
const DefaultWindow = 5 * time.Minute

type dedupKey struct {
	category string
	message  string
	time     time.Time
}

// DedupLogger suppresses repeated identical messages, keyed by
// (category, message), within a sliding time window. Old keys are evicted
// lazily on each log call by scanning a FIFO queue from the head, so the
// dedup state stays bounded over a long run. Safe for reentrant
// single-threaded use only.
type DedupLogger struct {
	location string
	window   time.Duration
	logger   *slog.Logger
	counts   map[string]map[string]int
	queue    []dedupKey
	now      func() time.Time
}

// NewDedup creates a DedupLogger with the default window. location names the
// component doing the logging and is attached to every record.
func NewDedup(logger *slog.Logger, location string) *DedupLogger {
	return NewDedupWindow(logger, location, DefaultWindow)
}

// NewDedupWindow creates a DedupLogger with an explicit suppression window.
func NewDedupWindow(logger *slog.Logger, location string, window time.Duration) *DedupLogger {
	return &DedupLogger{
		location: location,
		window:   window,
		logger:   logger,
		counts:   make(map[string]map[string]int),
		now:      time.Now,
	}
}

// Info logs message at info level unless an identical (category, message)
// was logged within the window.
func (l *DedupLogger) Info(category, message string, args ...any) {
	l.log(slog.LevelInfo, category, message, args)
}

// Warn logs message at warn level unless suppressed.
func (l *DedupLogger) Warn(category, message string, args ...any) {
	l.log(slog.LevelWarn, category, message, args)
}

// Error logs message at error level unless suppressed.
func (l *DedupLogger) Error(category, message string, args ...any) {
	l.log(slog.LevelError, category, message, args)
}

func (l *DedupLogger) log(level slog.Level, category, message string, args []any) {
	now := l.now()
	l.cleanUp(now)
	if !l.hasKeyOrPut(category, message, now) {
		attrs := append([]any{"location", l.location, "category", category}, args...)
		l.logger.Log(context.Background(), level, message, attrs...)
	}
}

// hasKeyOrPut records the occurrence and reports whether the pair was
// already live in the window.
func (l *DedupLogger) hasKeyOrPut(category, message string, now time.Time) bool {
	l.queue = append(l.queue, dedupKey{category: category, message: message, time: now})

	byMessage, ok := l.counts[category]
	if !ok {
		byMessage = make(map[string]int)
		l.counts[category] = byMessage
	}
	byMessage[message]++
	return byMessage[message] > 1
}

// cleanUp drops reference counts for queue entries older than the window,
// scanning from the head until a live entry is found.
func (l *DedupLogger) cleanUp(now time.Time) {
	i := 0
	for ; i < len(l.queue); i++ {
		if now.Sub(l.queue[i].time) < l.window {
			break
		}
	}
	if i == 0 {
		return
	}

	expired := l.queue[:i]
	l.queue = l.queue[i:]

	for _, key := range expired {
		byMessage := l.counts[key.category]
		if byMessage == nil {
			continue
		}
		byMessage[key.message]--
		if byMessage[key.message] <= 0 {
			delete(byMessage, key.message)
			if len(byMessage) == 0 {
				delete(l.counts, key.category)
			}
		}
	}
}
