package logging

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDedup(t *testing.T) (*DedupLogger, *bytes.Buffer, *time.Time) {
	t.Helper()
	var buf bytes.Buffer
	now := time.Date(2021, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewDedupWindow(NewLogger(&buf, "info"), "test", time.Minute)
	l.now = func() time.Time { return now }
	return l, &buf, &now
}

func TestDedupSuppressesRepeats(t *testing.T) {
	l, buf, _ := newTestDedup(t)

	l.Warn("NORMALIZATION", "bad name")
	l.Warn("NORMALIZATION", "bad name")
	l.Warn("NORMALIZATION", "bad name")

	assert.Equal(t, 1, strings.Count(buf.String(), "bad name"))
}

func TestDedupKeyedByCategoryAndMessage(t *testing.T) {
	l, buf, _ := newTestDedup(t)

	l.Warn("NORMALIZATION", "bad name")
	l.Warn("NORMALIZATION", "other name")
	l.Error("MAPPING", "bad name")

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, "bad name"))
	assert.Equal(t, 1, strings.Count(out, "other name"))
}

func TestDedupWindowEviction(t *testing.T) {
	l, buf, now := newTestDedup(t)

	l.Info("CAT", "msg")
	l.Info("CAT", "msg")
	require.Equal(t, 1, strings.Count(buf.String(), "msg"))

	// After the window slides past the first occurrences the message logs again.
	*now = now.Add(2 * time.Minute)
	l.Info("CAT", "msg")
	assert.Equal(t, 2, strings.Count(buf.String(), "msg"))
}

func TestDedupQueueBounded(t *testing.T) {
	l, _, now := newTestDedup(t)

	for i := 0; i < 100; i++ {
		l.Info("CAT", "msg")
		*now = now.Add(time.Second)
	}

	// 60s window, 1s steps: the lazy head scan keeps roughly a window's worth.
	assert.Less(t, len(l.queue), 70)
	assert.NotEmpty(t, l.counts)
}
