package logging

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/backmassage/tifconvert/internal/config"
)

func TestNewLogger_NoFile(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	defer l.Close()

	var out, errOut bytes.Buffer
	l.SetOutput(&out, &errOut)
	l.Info("test message")
	l.Error("broken")

	if !strings.Contains(out.String(), "[INFO] test message") {
		t.Errorf("stdout = %q", out.String())
	}
	if !strings.Contains(errOut.String(), "[ERROR] broken") {
		t.Errorf("stderr = %q", errOut.String())
	}
	if strings.Contains(out.String(), "broken") {
		t.Error("errors should not go to stdout")
	}
}

func TestNewLogger_WithFile(t *testing.T) {
	dir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	cfg.LogFile = filepath.Join(dir, "logs", "tifconvert.log")
	cfg.RunID = "run-123"
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var discard bytes.Buffer
	l.SetOutput(&discard, &discard)
	l.Info("to file")
	l.Warn("careful")
	l.Blank()
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(cfg.LogFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var m map[string]any
		if err := json.Unmarshal(sc.Bytes(), &m); err != nil {
			t.Fatalf("log line is not JSON: %q", sc.Text())
		}
		entries = append(entries, m)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d log entries, want 2", len(entries))
	}
	if entries[0]["message"] != "to file" || entries[0]["level"] != "info" {
		t.Errorf("first entry = %v", entries[0])
	}
	if entries[1]["level"] != "warn" || entries[1]["run_id"] != "run-123" {
		t.Errorf("second entry = %v", entries[1])
	}
}

func TestDebug_Gated(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.ColorMode = config.ColorNever
	l, err := NewLogger(&cfg)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	l.SetOutput(&out, &out)

	l.Debug(false, "hidden")
	l.Debug(true, "shown")
	if strings.Contains(out.String(), "hidden") {
		t.Error("Debug(false) should be a no-op")
	}
	if !strings.Contains(out.String(), "[DEBUG] shown") {
		t.Errorf("output = %q", out.String())
	}
}
