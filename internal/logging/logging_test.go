package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/Leganyst/homeservice-platform/internal/config"
)

func TestNew_JSONWithLevel(t *testing.T) {
	log := New(config.LogConfig{Level: "DEBUG", Format: "json"})
	if log.GetLevel() != logrus.DebugLevel {
		t.Fatalf("level = %s, want debug", log.GetLevel())
	}

	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.WithField("request_id", "abc").Info("hello")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}
	if entry["request_id"] != "abc" || entry["msg"] != "hello" {
		t.Fatalf("entry = %v", entry)
	}
}

func TestNew_UnknownLevelFallsBackToInfo(t *testing.T) {
	log := New(config.LogConfig{Level: "loud"})
	if log.GetLevel() != logrus.InfoLevel {
		t.Fatalf("level = %s, want info", log.GetLevel())
	}
}
