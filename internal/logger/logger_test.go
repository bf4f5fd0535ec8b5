package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestNew_DevelopmentMode(t *testing.T) {
	logger := New("development")

	if logger == nil {
		t.Fatal("Expected logger to be created")
	}
	if logger.GetZerolog() == nil {
		t.Error("Expected zerolog instance to be available")
	}
}

func TestNew_ProductionMode(t *testing.T) {
	logger := New("production")

	if logger == nil {
		t.Fatal("Expected logger to be created")
	}
	if logger.GetZerolog() == nil {
		t.Error("Expected zerolog instance to be available")
	}
}

func TestInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf)

	logger.Info("info message", map[string]interface{}{
		"key1": "value1",
		"key2": 42,
	})

	output := buf.String()
	if !strings.Contains(output, "info message") {
		t.Error("Expected log output to contain message")
	}
	if !strings.Contains(output, "value1") {
		t.Error("Expected log output to contain field value")
	}
}

func TestError_IncludesError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf)

	logger.Error("something broke", errors.New("boom"), nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v", err)
	}
	if entry["error"] != "boom" {
		t.Errorf("Expected error field to be 'boom', got %v", entry["error"])
	}
	if entry["message"] != "something broke" {
		t.Errorf("Expected message field, got %v", entry["message"])
	}
}

func TestWith_AddsContextFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf).With(map[string]interface{}{
		"session": "abc123",
	})

	logger.Info("with context", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v", err)
	}
	if entry["session"] != "abc123" {
		t.Errorf("Expected session field to carry over, got %v", entry["session"])
	}
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf).WithComponent("catalog")

	logger.Info("component tagged", nil)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse log output as JSON: %v", err)
	}
	if entry["component"] != "catalog" {
		t.Errorf("Expected component field to be 'catalog', got %v", entry["component"])
	}
}
