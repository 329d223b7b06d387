package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunReport(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-n", "500", "--seed", "3"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "words\t500\nviolations\t0\n") {
		t.Errorf("unexpected report header:\n%s", out.String())
	}
	if !strings.Contains(errOut.String(), `profile "K'kree"`) {
		t.Errorf("stderr = %q, want profile summary", errOut.String())
	}
}

func TestRunOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.txt")
	var out, errOut bytes.Buffer
	if code := run([]string{"-n", "10", "-o", path}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, stderr = %s", code, errOut.String())
	}
	if out.Len() != 0 {
		t.Errorf("stdout = %q, want empty", out.String())
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "\\end\\\n") {
		t.Errorf("report file not terminated:\n%s", data)
	}
}

func TestRunBadWords(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"-n", "0"}, &out, &errOut); code != 1 {
		t.Errorf("exit code = %d, want 1", code)
	}
}

func TestRunOutputErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"missing_dir", filepath.Join(t.TempDir(), "no", "such", "dir", "report.txt")},
		{"device_full", "/dev/full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.path == "/dev/full" {
				if _, err := os.Stat(tt.path); err != nil {
					t.Skip("no /dev/full on this system")
				}
			}
			var out, errOut bytes.Buffer
			if code := run([]string{"-n", "10", "-o", tt.path}, &out, &errOut); code != 1 {
				t.Errorf("exit code = %d, want 1", code)
			}
			if !strings.Contains(errOut.String(), "error: write report") {
				t.Errorf("stderr = %q, want a write error", errOut.String())
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--help"}, &out, &errOut); code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "--words") {
		t.Errorf("help output missing options:\n%s", out.String())
	}
}
