package logger_test

import (
	"bytes"
	"io"
	"os"
	"strings"
	"testing"

	"go.trai.ch/attest/internal/adapters/logger"
)

// captureStderr captures output written to os.Stderr during the execution of fn.
func captureStderr(fn func()) (string, error) {
	originalStderr := os.Stderr

	r, w, err := os.Pipe()
	if err != nil {
		return "", err
	}
	os.Stderr = w

	done := make(chan string, 1)
	go func() {
		buf, _ := io.ReadAll(r)
		done <- string(buf)
	}()

	fn()

	if err := w.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	output := <-done

	if err := r.Close(); err != nil {
		os.Stderr = originalStderr
		return "", err
	}
	os.Stderr = originalStderr

	return output, nil
}

func TestLogger_Info(t *testing.T) {
	output, err := captureStderr(func() {
		// Create the logger inside the capture function so it uses the redirected stderr
		lg := logger.New()
		lg.Info("read 12 coordinates")
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "read 12 coordinates") {
		t.Errorf("Expected output to contain 'read 12 coordinates', got: %s", output)
	}
	if !strings.Contains(output, "INFO") {
		t.Errorf("Expected output to contain 'INFO', got: %s", output)
	}
}

func TestLogger_Error(t *testing.T) {
	output, err := captureStderr(func() {
		lg := logger.New()
		lg.Error(os.ErrPermission)
	})
	if err != nil {
		t.Fatalf("Failed to capture stderr: %v", err)
	}

	if !strings.Contains(output, "permission denied") {
		t.Errorf("Expected output to contain 'permission denied', got: %s", output)
	}
	if !strings.Contains(output, "ERROR") {
		t.Errorf("Expected output to contain 'ERROR', got: %s", output)
	}
}

func TestLogger_SetOutput(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.New()
	lg.SetOutput(&buf)

	lg.Warn("dependency without version")

	if !strings.Contains(buf.String(), "dependency without version") {
		t.Errorf("Expected output to contain warning, got: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "WARN") {
		t.Errorf("Expected output to contain 'WARN', got: %s", buf.String())
	}
}

func TestLogger_LevelFromEnv(t *testing.T) {
	tests := []struct {
		env      string
		wantInfo bool
		wantWarn bool
	}{
		{env: "", wantInfo: true, wantWarn: true},
		{env: "warn", wantInfo: false, wantWarn: true},
		{env: "ERROR", wantInfo: false, wantWarn: false},
		{env: "loud", wantInfo: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run("env="+tt.env, func(t *testing.T) {
			t.Setenv(logger.LevelEnv, tt.env)

			var buf bytes.Buffer
			lg := logger.New()
			lg.SetOutput(&buf)

			lg.Info("described 3 of 3 dependencies")
			lg.Warn("failed to cache resolution")

			if got := strings.Contains(buf.String(), "described 3 of 3"); got != tt.wantInfo {
				t.Errorf("Info logged = %v, want %v; output: %s", got, tt.wantInfo, buf.String())
			}
			if got := strings.Contains(buf.String(), "failed to cache"); got != tt.wantWarn {
				t.Errorf("Warn logged = %v, want %v; output: %s", got, tt.wantWarn, buf.String())
			}
		})
	}
}
