package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/edstats/linreg/pkg/errors"
)

func TestSetupWithWriterLevels(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupWithWriter("warn", &buf); err != nil {
		t.Fatalf("SetupWithWriter failed: %v", err)
	}

	L().Info().Str(OperationKey, "fit_simple").Msg("should be filtered")
	L().Warn().Msg("should appear")

	out := buf.String()
	if strings.Contains(out, "should be filtered") {
		t.Error("info message logged despite warn level")
	}
	if !strings.Contains(out, "should appear") {
		t.Error("warn message missing from output")
	}
}

func TestSetupRejectsInvalidLevel(t *testing.T) {
	if err := Setup("loud"); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestWarningsRoutedToZerolog(t *testing.T) {
	var buf bytes.Buffer
	if err := SetupWithWriter("debug", &buf); err != nil {
		t.Fatalf("SetupWithWriter failed: %v", err)
	}

	errors.Warn(errors.NewUndefinedMetricWarning("R2", "zero total sum of squares", 0))

	out := buf.String()
	if !strings.Contains(out, "UndefinedMetricWarning") {
		t.Errorf("expected structured warning type in output, got %q", out)
	}
	if !strings.Contains(out, "\"level\":\"warn\"") {
		t.Errorf("expected warn level event, got %q", out)
	}
}
