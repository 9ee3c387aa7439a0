package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"go.trai.ch/ess/internal/adapters/logger"
)

func TestLogger_Info(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Info("some message")

	if !strings.Contains(buf.String(), "some message") {
		t.Errorf("Expected output to contain 'some message', got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", buf.String())
	}
}

func TestLogger_Error(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Error(errPermission{})

	if !strings.Contains(buf.String(), "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", buf.String())
	}
}

type errPermission struct{}

func (errPermission) Error() string { return "permission denied" }

func TestLogger_DebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Debug("hidden detail")

	if buf.Len() != 0 {
		t.Errorf("Expected debug output to be suppressed, got: %s", buf.String())
	}
}

func TestLogger_DebugVisibleWhenVerbose(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)
	lg.SetVerbose(true)

	lg.Debug("visible detail")

	if !strings.Contains(buf.String(), "visible detail") {
		t.Errorf("Expected output to contain 'visible detail', got: %s", buf.String())
	}
}

func TestLogger_WithAsset(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.WithAsset("pkg|styles/main.scss").Info("compiled")

	out := buf.String()
	if !strings.Contains(out, "compiled") {
		t.Errorf("Expected output to contain 'compiled', got: %s", out)
	}
	if !strings.Contains(out, "styles/main.scss") {
		t.Errorf("Expected output to carry the asset id, got: %s", out)
	}
}
