package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestLogger_Make_DefaultConfiguration(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level %v, got %v", DefaultLevel, logger.Level())
	}

	if logger.Format() != DefaultFormat {
		t.Errorf("expected default format %v, got %v", DefaultFormat, logger.Format())
	}

	if logger.caller || !logger.pretty {
		t.Error("expected caller disabled and pretty enabled by default")
	}
}

func TestLogger_ZeroValue_IsNoop(t *testing.T) {
	var logger Logger

	logger.Info("ignored")
	logger.Trace("ignored")

	if logger.With(slog.String("k", "v")).Logger != nil {
		t.Error("expected With on zero logger to stay zero")
	}

	if logger.EnabledAt(t.Context(), LevelError) {
		t.Error("expected zero logger to be disabled")
	}
}

func TestLogger_WithLevel_FiltersMessages(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelError), WithPretty(false))
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("info message logged when level is Error")
	}

	logger.Error("error message")

	if !strings.Contains(buf.String(), "error message") {
		t.Error("error message not logged at Error level")
	}

	buf.Reset()

	logger.Wrap(WithLevel(LevelTrace)).Trace("trace message")

	if !strings.Contains(buf.String(), "level=TRACE") {
		t.Errorf("expected TRACE level name, got: %s", buf.String())
	}
}

func TestLogger_WithCaller_IncludesSource(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithCaller(true), WithLevel(LevelInfo), WithFormat(FormatJSON), WithPretty(false)).
		Info("test message")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller file in output, got: %s", buf.String())
	}
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithLevel(LevelInfo), WithFormat(FormatJSON), WithPretty(false))
	logger.Info("test message", slog.String("key", "value"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v", err)
	}

	if result["msg"] != "test message" || result["key"] != "value" {
		t.Errorf("unexpected JSON record: %v", result)
	}
}

func TestLogger_Pretty(t *testing.T) {
	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithLevel(LevelInfo), WithTimeLayout("none")).
			With(slog.String("file", "a.oden"))
		logger.Info("compiled", slog.Int("statements", 3), slog.Any("error", errors.New("boom")))

		out := buf.String()
		for _, want := range []string{"INFO", "compiled", "file=", "a.oden", "statements=", "3", "boom"} {
			if !strings.Contains(out, want) {
				t.Errorf("expected %q in pretty output, got: %s", want, out)
			}
		}
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer

		logger := Make(&buf, WithLevel(LevelInfo), WithFormat(FormatJSON), WithTimeLayout("none"))
		logger.WithGroup("stl").Info("exported", slog.Int("triangles", 12))

		out := buf.String()
		if !strings.HasPrefix(out, "{\n") || !strings.Contains(out, "triangles") {
			t.Errorf("unexpected pretty JSON output: %s", out)
		}
	})
}

func TestLogger_ConcurrentUse(t *testing.T) {
	var (
		buf bytes.Buffer
		wg  sync.WaitGroup
	)

	logger := Make(&buf, WithLevel(LevelInfo), WithPretty(false))

	for i := range 8 {
		wg.Go(func() {
			logger.With(slog.Int("worker", i)).Info("tick")
		})
	}

	wg.Wait()

	if got := strings.Count(buf.String(), "tick"); got != 8 {
		t.Errorf("expected 8 records, got %d", got)
	}
}
