package e2e

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// buildBinary compiles cmd/fibtoolkit into a temporary directory. go test
// runs with the package directory as CWD, so the build runs from the module
// root two levels up.
func buildBinary(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping e2e build in short mode")
	}

	binName := "fibtoolkit"
	if runtime.GOOS == "windows" {
		binName += ".exe"
	}
	binPath := filepath.Join(t.TempDir(), binName)

	cmd := exec.Command("go", "build", "-o", binPath, "./cmd/fibtoolkit")
	cmd.Dir = "../.."
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		t.Fatalf("Failed to build fibtoolkit: %v", err)
	}
	return binPath
}

// TestCLI_E2E verifies the built binary functions correctly
func TestCLI_E2E(t *testing.T) {
	binPath := buildBinary(t)

	tests := []struct {
		name     string
		args     []string
		stdin    string
		wantOut  []string
		wantCode int
	}{
		{
			name:    "REPL session",
			stdin:   "seq 5\nupto 10\nfind 20\ncheck 21\nratio 10\nquit\n",
			wantOut: []string{"First 5 Fibonacci numbers: [0, 1, 1, 2, 3]", "Count: 7 numbers", "F(20) = 6,765", "21 is a Fibonacci number", "Golden ratio: 1.61803399", "Goodbye!"},
		},
		{
			name:    "REPL recovers from bad input",
			stdin:   "frobnicate\nfind -3\nfind 10\n",
			wantOut: []string{"Unknown command: frobnicate", "invalid argument", "F(10) = 55"},
		},
		{
			name:    "Demo",
			args:    []string{"-mode", "demo", "-demo-count", "200"},
			wantOut: []string{"1. BASIC SEQUENCE GENERATION", "7. MATHEMATICAL PROPERTIES", "DEMO COMPLETE"},
		},
		{
			name:    "Demo then REPL",
			args:    []string{"-mode", "demo", "-i"},
			stdin:   "binet 15\n",
			wantOut: []string{"DEMO COMPLETE", "F(15): Iterative=610, Binet=610"},
		},
		{
			name:    "Help",
			args:    []string{"-h"},
			wantOut: []string{"usage", "FIBTOOLKIT_"},
		},
		{
			name:    "Version Flag",
			args:    []string{"--version"},
			wantOut: []string{"fibtoolkit"},
		},
		{
			name:    "Completion",
			args:    []string{"-completion", "bash"},
			wantOut: []string{"complete -F"},
		},
		{
			name:     "Invalid Mode",
			args:     []string{"-mode", "gui"},
			wantOut:  []string{"unknown mode"},
			wantCode: 4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binPath, tt.args...)
			cmd.Env = append(os.Environ(), "NO_COLOR=1")
			cmd.Stdin = strings.NewReader(tt.stdin)
			output, err := cmd.CombinedOutput()
			outStr := string(output)

			code := 0
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				code = exitErr.ExitCode()
			} else if err != nil {
				t.Fatalf("Command failed to run: %v", err)
			}
			if code != tt.wantCode {
				t.Errorf("exit code = %d, want %d\nOutput: %s", code, tt.wantCode, outStr)
			}

			for _, want := range tt.wantOut {
				if !strings.Contains(strings.ToLower(outStr), strings.ToLower(want)) {
					t.Errorf("Output missing expected string.\nExpected: %q\nGot:\n%s", want, outStr)
				}
			}
		})
	}
}
