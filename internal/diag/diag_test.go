package diag

import (
	"bytes"
	"strings"
	"testing"
)

func TestNew_Levels(t *testing.T) {
	tests := []struct {
		level     string
		wantInfo  bool
		wantWarn  bool
		wantError bool
	}{
		{level: "debug", wantInfo: true, wantWarn: true, wantError: true},
		{level: "info", wantInfo: true, wantWarn: true, wantError: true},
		{level: "warn", wantWarn: true, wantError: true},
		{level: "error", wantError: true},
		{level: "bogus", wantWarn: true, wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(&buf, tt.level)

			logger.Info("info message")
			logger.Warn("warn message")
			logger.Error("error message")

			out := buf.String()
			if strings.Contains(out, "info message") != tt.wantInfo {
				t.Errorf("info logged = %v, expected %v (output: %q)", !tt.wantInfo, tt.wantInfo, out)
			}
			if strings.Contains(out, "warn message") != tt.wantWarn {
				t.Errorf("warn logged = %v, expected %v (output: %q)", !tt.wantWarn, tt.wantWarn, out)
			}
			if strings.Contains(out, "error message") != tt.wantError {
				t.Errorf("error logged = %v, expected %v (output: %q)", !tt.wantError, tt.wantError, out)
			}
		})
	}
}

func TestNew_Prefix(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "warn").Warn("storage write failed", "location", "/tmp/x")

	out := buf.String()
	if !strings.Contains(out, "sip") {
		t.Errorf("expected prefix in output, got %q", out)
	}
	if !strings.Contains(out, "location=/tmp/x") {
		t.Errorf("expected key/value pair in output, got %q", out)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic and must accept every level
	logger := Discard()
	logger.Error("dropped")
}
