package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestInitializeWriterJSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "debug", Format: "json"}, &buf)
	t.Cleanup(InitializeDefault)

	Debug("converted", zap.String("from", "C"), zap.Float64("result", 212))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not JSON: %v (%s)", err, buf.String())
	}
	if entry["msg"] != "converted" {
		t.Errorf("msg = %v", entry["msg"])
	}
	if entry["from"] != "C" {
		t.Errorf("from = %v", entry["from"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Error("expected timestamp key")
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(DefaultConfig(), &buf)
	t.Cleanup(InitializeDefault)

	Debug("hidden")
	Logger.Info("hidden too")
	Logger.Warn("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug/info should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "visible") {
		t.Errorf("warn should be logged: %s", out)
	}
}

func TestInvalidLevelFallsBackToWarn(t *testing.T) {
	var buf bytes.Buffer
	InitializeWriter(Config{Level: "chatty", Format: "console"}, &buf)
	t.Cleanup(InitializeDefault)

	Logger.Info("dropped")
	Logger.Error("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("info should be dropped with fallback level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("error should be kept")
	}
}

func TestInitializeFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "convert.log")
	if err := Initialize(Config{Level: "info", Format: "json", Output: path}); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	t.Cleanup(InitializeDefault)

	Logger.Info("written", zap.String("component", "test"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"component":"test"`) {
		t.Errorf("log file should hold the entry, got: %s", data)
	}
}
