package logger_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/vocabflash/internal/logger"
)

func fixedClock() time.Time {
	return time.Date(2024, 5, 15, 10, 30, 0, 0, time.UTC)
}

func newBufferLogger(level logger.Level) (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := logger.New(
		logger.WithOutput(&buf),
		logger.WithLevel(level),
		logger.WithColors(false),
		logger.WithClock(fixedClock),
	)
	return l, &buf
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want logger.Level
	}{
		{"debug", logger.DEBUG},
		{"INFO", logger.INFO},
		{"warning", logger.WARN},
		{" error ", logger.ERROR},
		{"bogus", logger.INFO},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.in))
		})
	}
}

func TestValidLevel(t *testing.T) {
	assert.True(t, logger.ValidLevel("warn"))
	assert.False(t, logger.ValidLevel(""))
	assert.False(t, logger.ValidLevel("TRACE"))
}

func TestLogger_FiltersBelowLevel(t *testing.T) {
	l, buf := newBufferLogger(logger.WARN)

	l.Info("hidden")
	l.Warn("shown %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown 1")
	assert.Contains(t, out, "2024-05-15 10:30:00.000 WARN")
}

func TestLogger_FieldsAreSorted(t *testing.T) {
	l, buf := newBufferLogger(logger.DEBUG)

	l.WithFields(map[string]any{"zeta": 1, "alpha": "a"}).WithField("mid", true).Info("msg")

	line := strings.TrimSpace(buf.String())
	assert.True(t, strings.HasSuffix(line, "msg alpha=a mid=true zeta=1"), line)
}

func TestLogger_DerivedDoesNotMutateParent(t *testing.T) {
	l, buf := newBufferLogger(logger.DEBUG)

	_ = l.WithField("session_id", "abc").WithPrefix("study")
	l.Info("plain")

	out := buf.String()
	assert.NotContains(t, out, "session_id")
	assert.NotContains(t, out, "[study]")
}

func TestLogger_PrefixAndError(t *testing.T) {
	l, buf := newBufferLogger(logger.DEBUG)

	l.WithPrefix("llm").WithError(errors.New("boom")).Error("call failed")

	out := buf.String()
	assert.Contains(t, out, "[llm]")
	assert.Contains(t, out, "error=boom")
	assert.Contains(t, out, "logger_test.go")
}

func TestLogger_WithNilErrorIsNoop(t *testing.T) {
	l, _ := newBufferLogger(logger.DEBUG)
	assert.Same(t, l, l.WithError(nil))
}

func TestContextRoundTrip(t *testing.T) {
	l, _ := newBufferLogger(logger.DEBUG)

	ctx := logger.NewContext(context.Background(), l)

	assert.Same(t, l, logger.FromContext(ctx))
	assert.Same(t, logger.Default(), logger.FromContext(context.Background()))
}
