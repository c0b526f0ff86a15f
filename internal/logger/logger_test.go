package logger

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newFileLogger(t *testing.T, config *Config) (*DefaultLogger, string) {
	t.Helper()
	if config.LogFilePath == "" {
		config.LogFilePath = filepath.Join(t.TempDir(), "test.log")
	}
	l, err := NewDefaultLogger(config)
	if err != nil {
		t.Fatalf("NewDefaultLogger failed: %v", err)
	}
	t.Cleanup(func() { l.Close() })
	return l, config.LogFilePath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(data)
}

func TestNewDefaultLogger(t *testing.T) {
	_, logPath := newFileLogger(t, &Config{MaxFileSize: 1024, MaxBackups: 3, Level: LevelDebug})
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created")
	}
}

func TestNewDefaultLoggerCreatesDirectory(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "test.log")
	l, err := NewDefaultLogger(&Config{
		LogFilePath: logPath, MaxFileSize: 1024, MaxBackups: 3, Level: LevelInfo,
	})
	if err != nil {
		t.Fatalf("NewDefaultLogger failed: %v", err)
	}
	defer l.Close()
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("log file was not created in nested directory")
	}
}

func TestLogLevelFiltering(t *testing.T) {
	l, logPath := newFileLogger(t, &Config{MaxFileSize: 1 << 20, MaxBackups: 3, Level: LevelWarn})

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message", errors.New("boom"))

	content := readLog(t, logPath)
	if strings.Contains(content, "debug message") || strings.Contains(content, "info message") {
		t.Error("entries below the minimum level were written")
	}
	if !strings.Contains(content, "warn message") || !strings.Contains(content, "error message") {
		t.Error("entries at or above the minimum level are missing")
	}
}

func TestSetLevel(t *testing.T) {
	l, logPath := newFileLogger(t, &Config{MaxFileSize: 1 << 20, MaxBackups: 3, Level: LevelDebug})

	l.SetLevel(LevelError)
	l.Info("should be dropped")
	l.Error("should be kept", nil)

	content := readLog(t, logPath)
	if strings.Contains(content, "should be dropped") {
		t.Error("entry below the raised level was written")
	}
	if !strings.Contains(content, "should be kept") {
		t.Error("entry at the raised level is missing")
	}
}

func TestStructuredFields(t *testing.T) {
	l, logPath := newFileLogger(t, &Config{MaxFileSize: 1 << 20, MaxBackups: 3, Level: LevelDebug})

	l.Info("rendered",
		String("output", "/tmp/out.pdf"),
		Int("glyphs", 12),
		Float64("offsetX", 1.5),
		Bool("template", true),
	)

	content := readLog(t, logPath)
	for _, want := range []string{"output=/tmp/out.pdf", "glyphs=12", "offsetX=1.5", "template=true"} {
		if !strings.Contains(content, want) {
			t.Errorf("log entry missing field %q:\n%s", want, content)
		}
	}
}

func TestErrorEntryHasStackTrace(t *testing.T) {
	l, logPath := newFileLogger(t, &Config{MaxFileSize: 1 << 20, MaxBackups: 3, Level: LevelDebug})

	l.Error("something failed", errors.New("underlying cause"))

	content := readLog(t, logPath)
	if !strings.Contains(content, `error="underlying cause"`) {
		t.Error("error value missing from entry")
	}
	if !strings.Contains(content, "Stack trace:") {
		t.Error("stack trace missing from error entry")
	}
}

func TestRotation(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "test.log")
	l, _ := newFileLogger(t, &Config{
		LogFilePath: logPath, MaxFileSize: 256, MaxBackups: 2, Level: LevelDebug,
	})

	for i := 0; i < 50; i++ {
		l.Info(fmt.Sprintf("filler entry number %d with some padding text", i))
	}

	if _, err := os.Stat(logPath + ".1"); os.IsNotExist(err) {
		t.Error("expected a rotated backup file")
	}
	info, err := os.Stat(logPath)
	if err != nil {
		t.Fatalf("live log file missing after rotation: %v", err)
	}
	if info.Size() > 1024 {
		t.Errorf("live log file did not rotate, size %d", info.Size())
	}
}

func TestFieldHelpers(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		key   string
	}{
		{"String", String("k", "v"), "k"},
		{"Int", Int("n", 7), "n"},
		{"Int64", Int64("n64", 7), "n64"},
		{"Float64", Float64("f", 1.5), "f"},
		{"Bool", Bool("b", true), "b"},
		{"Any", Any("a", struct{}{}), "a"},
		{"Err", Err(errors.New("x")), "error"},
		{"Err nil", Err(nil), "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.field.Key != tt.key {
				t.Errorf("key = %q, want %q", tt.field.Key, tt.key)
			}
		})
	}
	if Err(nil).Value != nil {
		t.Error("Err(nil) should carry a nil value")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if config.LogFilePath == "" {
		t.Error("default log file path should not be empty")
	}
	if config.MaxFileSize <= 0 {
		t.Error("default max file size should be positive")
	}
	if config.MaxBackups <= 0 {
		t.Error("default max backups should be positive")
	}
}

func TestGlobalLogger(t *testing.T) {
	t.Run("noop before Init", func(t *testing.T) {
		SetGlobalLogger(nil)
		// Must not panic.
		Debug("d")
		Info("i")
		Warn("w")
		Error("e", errors.New("x"))
	})

	t.Run("Init routes to file", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "global.log")
		if err := Init(&Config{
			LogFilePath: logPath, MaxFileSize: 1 << 20, MaxBackups: 2, Level: LevelDebug,
		}); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
		defer Close()

		Info("global entry", String("k", "v"))

		content := readLog(t, logPath)
		if !strings.Contains(content, "global entry") || !strings.Contains(content, "k=v") {
			t.Errorf("global entry missing:\n%s", content)
		}
	})

	t.Run("Close clears the global", func(t *testing.T) {
		if err := Close(); err != nil {
			t.Fatalf("Close failed: %v", err)
		}
		// Back to noop; must not panic.
		Info("after close")
	})
}
