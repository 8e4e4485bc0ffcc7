package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

type runResult struct {
	code   int
	stdout []byte
	stderr []byte
}

func buildGreet(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the binary")
	}
	bin := filepath.Join(t.TempDir(), "greet")
	if runtime.GOOS == "windows" {
		bin += ".exe"
	}
	cmd := exec.Command("go", "build", "-o", bin, "./cmd/greet")
	cmd.Dir = filepath.Join("..", "..")
	cmd.Env = append(os.Environ(), "CGO_ENABLED=0")
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("build failed: %v\n%s", err, string(out))
	}
	return bin
}

func runCmd(t *testing.T, bin string, args ...string) runResult {
	t.Helper()
	cmd := exec.Command(bin, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	code := 0
	if err != nil {
		if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = -1
		}
	}
	return runResult{code: code, stdout: stdout.Bytes(), stderr: stderr.Bytes()}
}

func TestExitCodes(t *testing.T) {
	bin := buildGreet(t)
	cases := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"success", []string{"-l", "english", "--no-figlet", "--no-color"}, 0, ""},
		{"invalidLanguage", []string{"-l", "klingon", "--no-color"}, 2, "Invalid language"},
		{"emptyPool", []string{"-l", "", "--random", "--no-color"}, 3, "no languages"},
		{"unknownFlag", []string{"--sparkles"}, 1, "unknown flag"},
		{"badConfig", []string{"--config", "does-not-exist.cue"}, 1, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := runCmd(t, bin, tc.args...)
			if res.code != tc.wantCode {
				t.Fatalf("want exit %d, got %d (stderr %q)", tc.wantCode, res.code, res.stderr)
			}
			if tc.wantCode == 0 {
				if len(res.stderr) != 0 {
					t.Fatalf("unexpected stderr: %q", res.stderr)
				}
				return
			}
			stderr := string(res.stderr)
			if strings.Count(stderr, "\n") != 1 {
				t.Fatalf("want a single error line, got %q", stderr)
			}
			if tc.wantErr != "" && !strings.Contains(stderr, tc.wantErr) {
				t.Fatalf("want %q in stderr, got %q", tc.wantErr, stderr)
			}
			if len(res.stdout) != 0 {
				t.Fatalf("unexpected stdout: %q", res.stdout)
			}
		})
	}
}

func TestOutputIsDeterministicForSeed(t *testing.T) {
	bin := buildGreet(t)
	args := []string{"--party", "--fortune", "--all-at-once", "--seed", "99", "--width", "90"}
	first := runCmd(t, bin, args...)
	if first.code != 0 {
		t.Fatalf("exit %d: %s", first.code, first.stderr)
	}
	for i := 0; i < 3; i++ {
		again := runCmd(t, bin, args...)
		if !bytes.Equal(first.stdout, again.stdout) {
			t.Fatalf("output changed between runs")
		}
	}
}
