package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestZapLoggerWritesToRotatedFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "app.log")
	l := NewZapLogger(logPath, true)

	l.Warn("AuthService", "Failed to publish USER_LOGIN event", map[string]interface{}{"error": "nats: connection closed"})
	l.Info("AssistantService", "usage recorded", nil)
	if err := l.Sync(); err != nil {
		// Syncing stdout can fail on some platforms; the file write is what matters.
		t.Logf("Sync() = %v", err)
	}

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	out := string(data)

	if !strings.Contains(out, `"Failed to publish USER_LOGIN event"`) {
		t.Errorf("log file missing warn message:\n%s", out)
	}
	if !strings.Contains(out, `"module":"AuthService"`) {
		t.Errorf("log file missing module field:\n%s", out)
	}
	if !strings.Contains(out, "nats: connection closed") {
		t.Errorf("log file missing details payload:\n%s", out)
	}
	if !strings.Contains(out, `"level":"WARN"`) {
		t.Errorf("log file missing level field:\n%s", out)
	}
}
