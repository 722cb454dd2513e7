package memlog_test

import (
	"testing"

	"github.com/rs/zerolog"

	"github.com/ja-he/annales/internal/memlog"
)

func TestLogWithZerolog(t *testing.T) {
	l := memlog.New(0)
	logger := zerolog.New(l)

	logger.Info().Str("event", "battle-of-actium").Msg("selected")
	logger.Warn().Int("count", 2).Msg("duplicates")

	entries := l.Get()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if memlog.Field(entries[0], "level") != "info" || memlog.Field(entries[0], "message") != "selected" {
		t.Error("unexpected first entry:", entries[0])
	}
	if memlog.Field(entries[0], "event") != "battle-of-actium" {
		t.Error("field not kept:", entries[0])
	}
	if memlog.Field(entries[1], "count") != "2" {
		t.Error("numeric field not stringified:", entries[1])
	}
	if memlog.Field(entries[1], "missing") != "" {
		t.Error("missing field not empty")
	}
}

func TestLogCapacity(t *testing.T) {
	l := memlog.New(3)
	logger := zerolog.New(l)
	for _, msg := range []string{"a", "b", "c", "d", "e"} {
		logger.Info().Msg(msg)
	}

	entries := l.Get()
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i, expected := range []string{"c", "d", "e"} {
		if memlog.Field(entries[i], "message") != expected {
			t.Errorf("entry %d: expected '%s', got '%s'", i, expected, memlog.Field(entries[i], "message"))
		}
	}
}

func TestLogRejectsNonJSON(t *testing.T) {
	l := memlog.New(0)
	if _, err := l.Write([]byte("not json")); err == nil {
		t.Error("expected error for non-JSON input")
	}
}
