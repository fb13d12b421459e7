package logs

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

func TestLogger(t *testing.T) {
	dscope.New(new(Module)).Call(func(
		logger Logger,
	) {
		logger.Info("test", "hello", "world!")
	})
}

func TestHandlerSpan(t *testing.T) {
	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		ctx := context.WithValue(context.Background(), SpanKey, Span("foo"))
		logger.With("name", "add_str").InfoContext(ctx, "call")
		line := buf.String()
		if !strings.Contains(line, "logs.span=foo") {
			t.Fatalf("got %v", line)
		}
		if !strings.Contains(line, "name=add_str") {
			t.Fatalf("got %v", line)
		}
	})
}

func TestLevel(t *testing.T) {
	defer SetLevel(Level())

	buf := new(bytes.Buffer)
	dscope.New(new(Module)).Fork(
		func() Writer {
			return buf
		},
	).Call(func(
		logger Logger,
	) {
		buf.Reset()
		SetLevel(slog.LevelWarn)
		logger.Info("foo")
		if buf.Len() > 0 {
			t.Fatalf("got %v", buf.String())
		}
		SetLevel(slog.LevelInfo)
		logger.Info("foo")
		if !strings.Contains(buf.String(), "msg=foo") {
			t.Fatalf("got %v", buf.String())
		}
	})
}

func TestParseLevel(t *testing.T) {
	for str, expected := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		l, err := ParseLevel(str)
		if err != nil {
			t.Fatal(err)
		}
		if l != expected {
			t.Fatalf("%s: got %v", str, l)
		}
	}
	if _, err := ParseLevel("foo"); err == nil {
		t.Fatal("should error")
	}
}
