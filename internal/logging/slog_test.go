package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"defaults", Config{}, false},
		{"text", Config{Level: "debug", Format: "text"}, false},
		{"json", Config{Level: "warn", Format: "json"}, false},
		{"bad level", Config{Level: "verbose"}, true},
		{"bad format", Config{Format: "xml"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := New(tt.cfg)
			if tt.wantErr {
				if err == nil {
					t.Errorf("New(%+v) expected error, got nil", tt.cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("New(%+v) unexpected error: %v", tt.cfg, err)
			}
			if logger == nil {
				t.Error("New returned nil logger")
			}
		})
	}
}

func TestNewWritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Config{Level: "info", Format: "json", Output: &buf})
	if err != nil {
		t.Fatalf("New unexpected error: %v", err)
	}

	logger.Info("report created", ReportID("42"))
	if !strings.Contains(buf.String(), `"report_id":"42"`) {
		t.Errorf("log output missing report_id attribute: %q", buf.String())
	}

	buf.Reset()
	logger.Debug("should be filtered")
	if buf.Len() != 0 {
		t.Errorf("debug record emitted at info level: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"info", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"ERROR", slog.LevelError, false},
		{"trace", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseLevel(%q) expected error, got nil", tt.name)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseLevel(%q) unexpected error: %v", tt.name, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestWithOperation(t *testing.T) {
	logger := slog.Default()
	result := WithOperation(logger, "create_report")
	if result == nil {
		t.Error("WithOperation returned nil")
	}
}

func TestWithService(t *testing.T) {
	logger := slog.Default()
	result := WithService(logger, "reports")
	if result == nil {
		t.Error("WithService returned nil")
	}
}

func TestOperationAttr(t *testing.T) {
	attr := Operation("list_templates")
	if attr.Key != KeyOperation {
		t.Errorf("Operation key = %q, want %q", attr.Key, KeyOperation)
	}
	if attr.Value.String() != "list_templates" {
		t.Errorf("Operation value = %q, want %q", attr.Value.String(), "list_templates")
	}
}

func TestServiceAttr(t *testing.T) {
	attr := Service("meetings")
	if attr.Key != KeyService {
		t.Errorf("Service key = %q, want %q", attr.Key, KeyService)
	}
	if attr.Value.String() != "meetings" {
		t.Errorf("Service value = %q, want %q", attr.Value.String(), "meetings")
	}
}

func TestStatusAttr(t *testing.T) {
	attr := Status(StatusSuccess)
	if attr.Key != KeyStatus {
		t.Errorf("Status key = %q, want %q", attr.Key, KeyStatus)
	}
	if attr.Value.String() != StatusSuccess {
		t.Errorf("Status value = %q, want %q", attr.Value.String(), StatusSuccess)
	}
}

func TestAttemptAttr(t *testing.T) {
	attr := Attempt(3)
	if attr.Key != KeyAttempt {
		t.Errorf("Attempt key = %q, want %q", attr.Key, KeyAttempt)
	}
	if attr.Value.Int64() != 3 {
		t.Errorf("Attempt value = %d, want 3", attr.Value.Int64())
	}
}

func TestDurationAttr(t *testing.T) {
	attr := Duration(5 * time.Second)
	if attr.Key != KeyDuration {
		t.Errorf("Duration key = %q, want %q", attr.Key, KeyDuration)
	}
	if attr.Value.Duration() != 5*time.Second {
		t.Errorf("Duration value = %v, want 5s", attr.Value.Duration())
	}
}

func TestReportIDAttr(t *testing.T) {
	attr := ReportID("Y2lzY29z")
	if attr.Key != KeyReportID {
		t.Errorf("ReportID key = %q, want %q", attr.Key, KeyReportID)
	}
	if attr.Value.String() != "Y2lzY29z" {
		t.Errorf("ReportID value = %q, want %q", attr.Value.String(), "Y2lzY29z")
	}
}

func TestTemplateIDAttr(t *testing.T) {
	attr := TemplateID(156)
	if attr.Key != KeyTemplateID {
		t.Errorf("TemplateID key = %q, want %q", attr.Key, KeyTemplateID)
	}
	if attr.Value.Int64() != 156 {
		t.Errorf("TemplateID value = %d, want 156", attr.Value.Int64())
	}
}

func TestErr(t *testing.T) {
	// Test with error
	err := errors.New("request failed")
	attr := Err(err)
	if attr.Key != KeyError {
		t.Errorf("Err key = %q, want %q", attr.Key, KeyError)
	}
	if attr.Value.String() != "request failed" {
		t.Errorf("Err value = %q, want %q", attr.Value.String(), "request failed")
	}

	// Test with nil - should return an empty group that slog will omit
	attr = Err(nil)
	// Empty Group has empty key
	if attr.Key != "" {
		t.Errorf("Err(nil) key = %q, want empty string (empty group)", attr.Key)
	}
}

func TestSanitizeToken(t *testing.T) {
	tests := []struct {
		token    string
		expected string
	}{
		{"", "<empty>"},
		{"abc123", "[token:6 chars]"},
		{"a_very_long_token_string", "[token:24 chars]"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			result := SanitizeToken(tt.token)
			if result != tt.expected {
				t.Errorf("SanitizeToken(%q) = %q, want %q", tt.token, result, tt.expected)
			}
		})
	}
}

func TestStatusConstants(t *testing.T) {
	if StatusSuccess != "success" {
		t.Errorf("StatusSuccess = %q, want %q", StatusSuccess, "success")
	}
	if StatusError != "error" {
		t.Errorf("StatusError = %q, want %q", StatusError, "error")
	}
}
