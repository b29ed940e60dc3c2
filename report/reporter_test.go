package report

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name   string
		want   int
		wantOk bool
	}{
		{"silent", LogLevelSilent, true},
		{"error", LogLevelError, true},
		{"warn", LogLevelWarn, true},
		{"warning", LogLevelWarn, true},
		{"verbose", LogLevelVerbose, true},
		{"loud", LogLevelVerbose, false},
		{"", LogLevelVerbose, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLogLevel(tt.name)
			if got != tt.want || ok != tt.wantOk {
				t.Errorf("ParseLogLevel(%q) = (%d, %v), want (%d, %v)", tt.name, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestReportCompileError(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, LogLevelVerbose)
	rep.SetSource("", "test.kal")

	rep.ReportCompileError(Raise(&TextSpan{StartLine: 2, StartCol: 4, EndLine: 2, EndCol: 5}, "expected `%s`", ")"))

	out := buf.String()
	for _, want := range []string{"test.kal", ":3:5:", "error", "expected `)`"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q does not contain %q", out, want)
		}
	}

	if rep.ErrorCount() != 1 || !rep.AnyErrors() {
		t.Errorf("ErrorCount() = %d, want 1", rep.ErrorCount())
	}
}

func TestSilentReporterStillCounts(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, LogLevelSilent)

	rep.ReportCompileError(Raise(nil, "boom"))
	rep.ReportStdError(errors.New("io failure"))
	rep.ReportInfo("Info", "hidden")

	if buf.Len() != 0 {
		t.Errorf("silent reporter wrote %q", buf.String())
	}
	if rep.ErrorCount() != 2 {
		t.Errorf("ErrorCount() = %d, want 2", rep.ErrorCount())
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	rep := NewReporter(&buf, LogLevelError)

	rep.ReportCompileWarning(nil, "unused %s", "thing")
	rep.ReportInfo("Read extern:", "declare double @sin(double %x)")

	if buf.Len() != 0 {
		t.Errorf("error-level reporter wrote %q", buf.String())
	}
	if rep.WarningCount() != 1 {
		t.Errorf("WarningCount() = %d, want 1", rep.WarningCount())
	}

	buf.Reset()
	rep = NewReporter(&buf, LogLevelVerbose)
	rep.ReportInfo("Read extern:", "declare double @sin(double %x)")
	if !strings.Contains(buf.String(), "declare double @sin") {
		t.Errorf("verbose reporter output %q missing info message", buf.String())
	}
}

func TestDisplaySourceText(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.kal")
	if err := os.WriteFile(path, []byte("def foo(a b)\n  (a+b\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rep := NewReporter(&buf, LogLevelError)
	rep.SetSource(path, "bad.kal")
	rep.ReportCompileError(Raise(&TextSpan{StartLine: 1, StartCol: 2, EndLine: 1, EndCol: 6}, "expected ')'"))

	out := buf.String()
	if !strings.Contains(out, "2 | (a+b") {
		t.Errorf("output %q does not contain the source line", out)
	}
	if !strings.Contains(out, "^^^^") {
		t.Errorf("output %q does not contain the underline", out)
	}
}

func TestNewSpanOver(t *testing.T) {
	start := &TextSpan{StartLine: 0, StartCol: 1, EndLine: 0, EndCol: 2}
	end := &TextSpan{StartLine: 1, StartCol: 3, EndLine: 1, EndCol: 7}

	got := NewSpanOver(start, end)
	want := TextSpan{StartLine: 0, StartCol: 1, EndLine: 1, EndCol: 7}
	if *got != want {
		t.Errorf("NewSpanOver = %+v, want %+v", *got, want)
	}

	if NewSpanOver(nil, end) != end || NewSpanOver(start, nil) != start {
		t.Error("NewSpanOver should fall back to the non-nil span")
	}
}

func TestDisplaySourceTextNonASCII(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wide.kal")
	if err := os.WriteFile(path, []byte("éé (a\nb)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	rep := NewReporter(&buf, LogLevelError)
	rep.SetSource(path, "wide.kal")
	rep.ReportCompileError(Raise(&TextSpan{StartLine: 0, StartCol: 3, EndLine: 1, EndCol: 2}, "bad expression"))

	// the underline of the first line covers the two characters `(a`
	var carets []int
	for _, line := range strings.Split(buf.String(), "\n") {
		if n := strings.Count(line, "^"); n > 0 {
			carets = append(carets, n)
		}
	}

	if len(carets) != 2 || carets[0] != 2 || carets[1] != 2 {
		t.Errorf("underline lengths = %v, want [2 2]:\n%s", carets, buf.String())
	}
}
