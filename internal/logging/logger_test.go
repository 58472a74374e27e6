package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestLogger(t *testing.T, config *Config) *Logger {
	t.Helper()
	if config.LogDir == "" {
		config.LogDir = t.TempDir()
	}
	logger, err := New(config)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { _ = logger.Close() })
	return logger
}

func readLog(t *testing.T, logger *Logger) string {
	t.Helper()
	content, err := os.ReadFile(logger.LogPath())
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestNew(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	logger := newTestLogger(t, &Config{
		Level:       LevelDebug,
		LogDir:      logDir,
		MaxLogFiles: 5,
		MaxLogAge:   24 * time.Hour,
	})

	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Error("Log directory was not created")
	}

	logPath := logger.LogPath()
	if !strings.HasPrefix(filepath.Base(logPath), "fightsongs_") || !strings.HasSuffix(logPath, ".log") {
		t.Errorf("LogPath() = %q, want fightsongs_*.log", logPath)
	}
	if _, err := os.Stat(logPath); os.IsNotExist(err) {
		t.Error("Log file was not created")
	}
}

func TestNewWithNilConfig(t *testing.T) {
	tmpDir := t.TempDir()
	originalDir, _ := os.Getwd()
	_ = os.Chdir(tmpDir)
	defer func() { _ = os.Chdir(originalDir) }()

	logger, err := New(nil)
	if err != nil {
		t.Fatalf("New(nil) error = %v", err)
	}
	defer logger.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, ".fightsongs", "logs")); err != nil {
		t.Errorf("default log directory missing: %v", err)
	}
}

func TestNewNoop(t *testing.T) {
	logger := NewNoop()
	if logger == nil {
		t.Fatal("NewNoop() returned nil")
	}

	// Should not panic
	logger.Debug("test")
	logger.Info("test")
	logger.Warn("test")
	logger.Error("test")
	if logger.LogPath() != "" {
		t.Errorf("NewNoop().LogPath() = %q, want empty", logger.LogPath())
	}
}

func TestLogLevelFiltering(t *testing.T) {
	tests := []struct {
		level   Level
		present []string
		absent  []string
	}{
		{
			level:   LevelDebug,
			present: []string{"debug message", "info message", "warn message", "error message"},
		},
		{
			level:   LevelWarn,
			present: []string{"warn message", "error message"},
			absent:  []string{"debug message", "info message"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			logger := newTestLogger(t, &Config{Level: tt.level})

			logger.Debug("debug message", "key", "value")
			logger.Info("info message", "key", "value")
			logger.Warn("warn message", "key", "value")
			logger.Error("error message", "key", "value")

			content := readLog(t, logger)
			for _, msg := range tt.present {
				if !strings.Contains(content, msg) {
					t.Errorf("Log file missing %q", msg)
				}
			}
			for _, msg := range tt.absent {
				if strings.Contains(content, msg) {
					t.Errorf("%q should have been filtered", msg)
				}
			}
		})
	}
}

func TestJSONFormat(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, JSONFormat: true})

	logger.Info("test message", "key", "value")

	content := readLog(t, logger)
	if !strings.Contains(content, `"msg":"test message"`) {
		t.Errorf("JSON log missing msg: %s", content)
	}
	if !strings.Contains(content, `"key":"value"`) {
		t.Errorf("JSON log missing key: %s", content)
	}
}

func TestWith(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo})

	logger.With("view", "decade").Info("rendered")

	if content := readLog(t, logger); !strings.Contains(content, "view=decade") {
		t.Errorf("Log should contain view attribute: %s", content)
	}
}

func TestWithContext(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo})

	ctx := context.Background()
	ctx = WithSessionID(ctx, "sess-123")
	ctx = WithInteractionID(ctx, "int-456")

	logger.WithContext(ctx).Info("context message")

	content := readLog(t, logger)
	if !strings.Contains(content, "session_id=sess-123") {
		t.Error("Log should contain session_id from context")
	}
	if !strings.Contains(content, "interaction_id=int-456") {
		t.Error("Log should contain interaction_id from context")
	}
}

func TestWithContextEmpty(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo})

	logger.WithContext(context.Background()).Info("bare message")

	content := readLog(t, logger)
	if strings.Contains(content, "session_id") || strings.Contains(content, "interaction_id") {
		t.Errorf("Log should not contain empty ids: %s", content)
	}
}

func TestContextIDs(t *testing.T) {
	ctx := context.Background()
	if SessionID(ctx) != "" || InteractionID(ctx) != "" {
		t.Error("empty context should have no ids")
	}

	ctx = WithInteractionID(WithSessionID(ctx, "a"), "b")
	if SessionID(ctx) != "a" {
		t.Errorf("SessionID() = %q, want a", SessionID(ctx))
	}
	if InteractionID(ctx) != "b" {
		t.Errorf("InteractionID() = %q, want b", InteractionID(ctx))
	}
}

func TestNewID(t *testing.T) {
	a, b := NewID(), NewID()
	if len(a) != 36 {
		t.Errorf("NewID() = %q, want a 36-char uuid", a)
	}
	if a == b {
		t.Error("NewID() returned the same id twice")
	}
}

func TestCleanup(t *testing.T) {
	tmpDir := t.TempDir()

	for i := 0; i < 10; i++ {
		name := filepath.Join(tmpDir, "fightsongs_20240101_00000"+string(rune('0'+i))+".log")
		if err := os.WriteFile(name, []byte("test"), 0644); err != nil {
			t.Fatalf("Failed to create test log file: %v", err)
		}
	}
	other := filepath.Join(tmpDir, "other.log")
	if err := os.WriteFile(other, []byte("keep"), 0644); err != nil {
		t.Fatalf("Failed to create unrelated file: %v", err)
	}

	config := &Config{
		Level:       LevelInfo,
		LogDir:      tmpDir,
		MaxLogFiles: 5,
	}
	logger := newTestLogger(t, config)

	if err := logger.Cleanup(); err != nil {
		t.Fatalf("Cleanup() error = %v", err)
	}

	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatalf("Failed to read log dir: %v", err)
	}

	count := 0
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), "fightsongs_") {
			count++
		}
	}

	// At most MaxLogFiles plus the current log.
	if count > config.MaxLogFiles+1 {
		t.Errorf("Expected at most %d log files, got %d", config.MaxLogFiles+1, count)
	}
	if _, err := os.Stat(other); err != nil {
		t.Error("Cleanup() removed a file it does not own")
	}
	if _, err := os.Stat(logger.LogPath()); err != nil {
		t.Error("Cleanup() removed the current log")
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level    Level
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{Level(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("Level(%d).String() = %v, want %v", tt.level, got, tt.expected)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{" INFO ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"warn", LevelWarn, false},
		{"Error", LevelError, false},
		{"verbose", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestLevelText(t *testing.T) {
	text, _ := LevelWarn.MarshalText()
	if string(text) != "warn" {
		t.Errorf("MarshalText() = %q, want warn", text)
	}

	var l Level
	if err := l.UnmarshalText([]byte("debug")); err != nil || l != LevelDebug {
		t.Errorf("UnmarshalText(debug) = %v, %v", l, err)
	}
	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText(loud) should fail")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Level != LevelInfo {
		t.Errorf("DefaultConfig().Level = %v, want %v", config.Level, LevelInfo)
	}
	if config.LogDir != ".fightsongs/logs" {
		t.Errorf("DefaultConfig().LogDir = %v, want %v", config.LogDir, ".fightsongs/logs")
	}
	if config.MaxLogFiles != 10 {
		t.Errorf("DefaultConfig().MaxLogFiles = %v, want %v", config.MaxLogFiles, 10)
	}
	if config.MaxLogAge != 7*24*time.Hour {
		t.Errorf("DefaultConfig().MaxLogAge = %v, want %v", config.MaxLogAge, 7*24*time.Hour)
	}
	if config.Console {
		t.Error("DefaultConfig().Console should be false")
	}
}

func TestConsoleOutput(t *testing.T) {
	logger := newTestLogger(t, &Config{Level: LevelInfo, Console: true})

	logger.Info("console test")
	if !strings.Contains(readLog(t, logger), "console test") {
		t.Error("file output missing when console is enabled")
	}
}
