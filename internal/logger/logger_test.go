package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestTimedLogsWhenEnabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "", log.InfoLevel)
	v, err := Timed(l, true, func() (int, error) { return 42, nil })
	if err != nil || v != 42 {
		t.Fatalf("unexpected result %d, %v", v, err)
	}
	if !strings.Contains(buf.String(), "Returned in") {
		t.Fatalf("expected timing line, got %q", buf.String())
	}
}

func TestTimedSilentWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "", log.InfoLevel)
	want := errors.New("boom")
	_, err := Timed(l, false, func() (string, error) { return "", want })
	if !errors.Is(err, want) {
		t.Fatalf("expected error to pass through, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
