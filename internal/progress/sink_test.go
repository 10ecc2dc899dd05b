package progress

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestChannelSinkDeliversInOrder(t *testing.T) {
	ch := make(chan string, 4)
	sink := NewChannelSink(ch, nil)

	sink.Emit("one")
	sink.Emit("two")
	sink.Emit("three")
	close(ch)

	var got []string
	for msg := range ch {
		got = append(got, msg)
	}
	want := []string{"one", "two", "three"}
	if len(got) != len(want) {
		t.Fatalf("received %d messages, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestChannelSinkFullChannelFallsBackToLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ch := make(chan string, 1)
	sink := NewChannelSink(ch, logger)

	sink.Emit("fits")
	sink.Emit("overflows") // must not block

	if got := <-ch; got != "fits" {
		t.Fatalf("channel message = %q, want %q", got, "fits")
	}
	if !strings.Contains(buf.String(), "overflows") {
		t.Fatalf("expected overflow message in log output, got %q", buf.String())
	}
}

func TestChannelSinkNilChannelUsesLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	sink := NewChannelSink(nil, logger)
	sink.Emit("logged locally")

	if !strings.Contains(buf.String(), "logged locally") {
		t.Fatalf("expected message in log output, got %q", buf.String())
	}
}

func TestLogSinkNilLoggerDiscards(t *testing.T) {
	sink := NewLogSink(nil)
	sink.Emit("dropped") // must not panic
}
