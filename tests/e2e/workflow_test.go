package e2e

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const TEST_COMMAND_TIMEOUT = 30 * time.Second

type result struct {
	stdout string
	stderr string
	err    error
}

// findBinary resolves the doseprompt binary from DOSEPROMPT_BIN_DIR or ../../bin
func findBinary(t *testing.T) string {
	t.Helper()

	binDir := os.Getenv("DOSEPROMPT_BIN_DIR")
	if binDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			t.Fatalf("Failed to get cwd: %v", err)
		}
		binDir = filepath.Join(cwd, "..", "..", "bin")
	}
	binDir, _ = filepath.Abs(binDir)

	cliPath := filepath.Join(binDir, "doseprompt")
	if _, err := os.Stat(cliPath); os.IsNotExist(err) {
		t.Skipf("CLI binary not found at %s. Please build it first.", cliPath)
	}
	t.Logf("Using binary: %s", cliPath)
	return cliPath
}

// isolatedEnv points every config and data location at a temp dir
func isolatedEnv(t *testing.T) (string, []string) {
	t.Helper()

	tempDir := t.TempDir()
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "HOME=") ||
			strings.HasPrefix(e, "XDG_CONFIG_HOME=") ||
			strings.HasPrefix(e, "DOSEPROMPT_") {
			continue
		}
		env = append(env, e)
	}
	env = append(env,
		fmt.Sprintf("HOME=%s", tempDir),
		fmt.Sprintf("XDG_CONFIG_HOME=%s", tempDir),
		fmt.Sprintf("DOSEPROMPT_CONFIG_DIR=%s", filepath.Join(tempDir, "doseprompt")),
		"NO_COLOR=1",
	)
	return tempDir, env
}

func run(t *testing.T, path string, env []string, args ...string) result {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), TEST_COMMAND_TIMEOUT)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Env = env
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()

	t.Logf("$ doseprompt %s\n%s%s", strings.Join(args, " "), stdout.String(), stderr.String())
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func TestCalendarCommand(t *testing.T) {
	cliPath := findBinary(t)
	_, env := isolatedEnv(t)

	res := run(t, cliPath, env, "calendar", "2024", "2")
	if res.err != nil {
		t.Fatalf("calendar failed: %v\n%s", res.err, res.stderr)
	}

	lines := strings.Split(strings.TrimRight(res.stdout, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("expected title, header and 5 weeks, got %d lines:\n%s", len(lines), res.stdout)
	}
	if !strings.Contains(lines[0], "February 2024") {
		t.Errorf("title line = %q, want February 2024", lines[0])
	}
	for _, day := range []string{"Sun", "Mon", "Sat"} {
		if !strings.Contains(lines[1], day) {
			t.Errorf("header %q is missing %s", lines[1], day)
		}
	}
	if !strings.Contains(lines[len(lines)-1], "29") {
		t.Errorf("last week %q should end on the 29th", lines[len(lines)-1])
	}
}

func TestCalendarRejectsInvalidMonth(t *testing.T) {
	cliPath := findBinary(t)
	_, env := isolatedEnv(t)

	res := run(t, cliPath, env, "calendar", "2024", "13")
	if res.err == nil {
		t.Fatal("expected non-zero exit for month 13")
	}
	if !strings.Contains(res.stderr, "Invalid month") {
		t.Errorf("stderr should explain the failure, got %q", res.stderr)
	}
}

func TestSQLiteStoreCreatesDatabase(t *testing.T) {
	cliPath := findBinary(t)
	tempDir, env := isolatedEnv(t)

	dbPath := filepath.Join(tempDir, "data", "mood.db")
	res := run(t, cliPath, env, "--store", "sqlite", "--db", dbPath, "calendar", "2024", "1")
	if res.err != nil {
		t.Fatalf("calendar with sqlite store failed: %v\n%s", res.err, res.stderr)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database at %s: %v", dbPath, err)
	}

	// second run applies no migrations and must still succeed
	res = run(t, cliPath, env, "--store", "sqlite", "--db", dbPath, "calendar", "2024", "1")
	if res.err != nil {
		t.Fatalf("second run failed: %v\n%s", res.err, res.stderr)
	}
}

func TestPinSetRejectsInvalidPIN(t *testing.T) {
	cliPath := findBinary(t)
	_, env := isolatedEnv(t)

	res := run(t, cliPath, env, "pin", "set", "--pin", "12ab")
	if res.err == nil {
		t.Fatal("expected non-zero exit for a non-numeric PIN")
	}
	if !strings.Contains(res.stderr, "Invalid PIN") {
		t.Errorf("stderr should mention the invalid PIN, got %q", res.stderr)
	}
}

func TestTuiRequiresTerminal(t *testing.T) {
	cliPath := findBinary(t)
	_, env := isolatedEnv(t)

	// stdin and stdout are pipes here
	res := run(t, cliPath, env, "tui")
	if res.err == nil {
		t.Fatal("expected the TUI to refuse a non-terminal session")
	}
}
