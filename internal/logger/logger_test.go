package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	return string(content)
}

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level    string
		expected []string
		excluded []string
	}{
		{"error", []string{"ERROR"}, []string{"WARN", "INFO", "DEBUG"}},
		{"warn", []string{"ERROR", "WARN"}, []string{"INFO", "DEBUG"}},
		{"", []string{"ERROR", "WARN", "INFO"}, []string{"DEBUG"}},
		{"debug", []string{"ERROR", "WARN", "INFO", "DEBUG"}, nil},
	}

	for _, tt := range tests {
		name := tt.level
		if name == "" {
			name = "default"
		}
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "levels.log")
			l, err := New(ForFile(tt.level, path, false))
			if err != nil {
				t.Fatalf("New: %v", err)
			}

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")
			l.Error("error message")
			_ = l.Sync()

			content := readLog(t, path)
			for _, exp := range tt.expected {
				if !strings.Contains(content, exp) {
					t.Errorf("expected %s in log output", exp)
				}
			}
			for _, exc := range tt.excluded {
				if strings.Contains(content, exc) {
					t.Errorf("unexpected %s in log output for level %q", exc, tt.level)
				}
			}
		})
	}
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	if _, err := New(Options{Level: "verbose"}); err == nil {
		t.Fatal("expected an error for an unknown level")
	}
}

func TestNewWithoutSinks(t *testing.T) {
	l, err := New(Options{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Info("dropped") // must not panic
}

func TestForFile(t *testing.T) {
	opts := ForFile("warn", "", true)
	if opts.File.Path != "" || !opts.Console {
		t.Errorf("unexpected options %+v", opts)
	}

	opts = ForFile("warn", "deformo.log", false)
	if opts.File != DefaultFileConfig("deformo.log") {
		t.Errorf("file config = %+v, want defaults", opts.File)
	}
}

func TestFileWriterRotation(t *testing.T) {
	w := fileWriter(DefaultFileConfig("/tmp/deformo.log"))
	if w.Filename != "/tmp/deformo.log" || w.MaxSize != 10 || w.MaxBackups != 2 || w.MaxAge != 3 {
		t.Errorf("unexpected rotation settings %+v", w)
	}
	if !w.Compress || !w.LocalTime {
		t.Error("expected compressed backups with local timestamps")
	}
}

func TestInitAndNamed(t *testing.T) {
	saved, savedSugar := Log, Sugar
	defer func() { Log, Sugar = saved, savedSugar }()

	Log = nil
	if l := Named("deform"); l == nil {
		t.Fatal("Named before Init should return a no-op logger, got nil")
	}

	path := filepath.Join(t.TempDir(), "named.log")
	if err := Init(ForFile("debug", path, false)); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if Sugar == nil {
		t.Fatal("Init should set Sugar")
	}

	Named("session").Info("stroke started")
	Info("plain")
	Sync()

	content := readLog(t, path)
	if !strings.Contains(content, "session") || !strings.Contains(content, "stroke started") {
		t.Errorf("expected logger name and message in output, got %q", content)
	}
}
