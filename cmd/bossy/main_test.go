package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const definition = `
verbose:
  alias: v
  type: boolean
port:
  alias: p
  type: number
  description: Listen port
db:
  type: json
db.host:
  description: Database host
`

func writeDef(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "flags.yaml")
	if err := os.WriteFile(path, []byte(definition), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	t.Setenv("FORCE_COLOR", "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunPrintsJSON(t *testing.T) {
	path := writeDef(t)
	code, stdout, stderr := runCLI(t, "--def", path, "--", "-v", "-p", "80", "file.txt")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d (stderr: %s)", code, stderr)
	}

	want := `{
  "verbose": true,
  "port": 80,
  "_": [
    "file.txt"
  ],
  "v": true,
  "p": 80
}
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestRunObjectRollUp(t *testing.T) {
	path := writeDef(t)
	code, stdout, stderr := runCLI(t, "-d", path, "--object", "db", "--", "--db", `{"port":5432}`, "--db.host", "localhost")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d (stderr: %s)", code, stderr)
	}
	want := "{\n  \"port\": 5432,\n  \"host\": \"localhost\"\n}\n"
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}

	code, stdout, _ = runCLI(t, "-d", path, "-o", "db", "-o", "cache", "--", "--db.host", "h")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout, `"db": {`) || !strings.Contains(stdout, `"cache": {}`) {
		t.Errorf("Expected combined roll-ups, got %s", stdout)
	}
}

func TestRunParseError(t *testing.T) {
	path := writeDef(t)
	code, stdout, stderr := runCLI(t, "--def", path, "--", "--prot", "80")
	if code != 2 {
		t.Errorf("Expected exit 2, got %d", code)
	}
	if stdout != "" {
		t.Errorf("Expected nothing on stdout, got %q", stdout)
	}
	for _, want := range []string{"[ERROR] Unknown option: prot", "Did you mean: port?", "--port"} {
		if !strings.Contains(stderr+stdout, want) {
			t.Errorf("Expected %q in output, got stderr:\n%s", want, stderr)
		}
	}
}

func TestRunUsage(t *testing.T) {
	path := writeDef(t)
	code, stdout, _ := runCLI(t, "--def", path, "--usage", "--header", "app [options]")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	for _, want := range []string{"Usage: app [options]", "-p, --port", "Listen port", "--db.host"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in usage, got:\n%s", want, stdout)
		}
	}
	if strings.Contains(stdout, "\x1b[") {
		t.Errorf("Expected plain usage with NO_COLOR, got %q", stdout)
	}

	_, stdout, _ = runCLI(t, "--def", path, "--usage", "--colors")
	if !strings.Contains(stdout, "\x1b[32m") {
		t.Errorf("Expected --colors to force colour, got %q", stdout)
	}
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI(t, "--help")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	if !strings.Contains(stdout, "Usage: "+header) || !strings.Contains(stdout, "-d, --def") {
		t.Errorf("Expected own usage, got:\n%s", stdout)
	}
}

func TestRunMissingDefinition(t *testing.T) {
	code, _, stderr := runCLI(t)
	if code != 2 {
		t.Errorf("Expected exit 2, got %d", code)
	}
	if !strings.Contains(stderr, "(required)") {
		t.Errorf("Expected usage text naming the required option, got:\n%s", stderr)
	}

	code, _, stderr = runCLI(t, "--def", filepath.Join(t.TempDir(), "nope.yaml"))
	if code != 1 {
		t.Errorf("Expected exit 1 for an unreadable file, got %d", code)
	}
	if !strings.Contains(stderr, "nope.yaml") {
		t.Errorf("Expected the path in the error, got %q", stderr)
	}
}

func TestRunInvalidDefinition(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"a": {"alias": "b"}, "b": {}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	code, _, stderr := runCLI(t, "--def", path)
	if code != 3 {
		t.Errorf("Expected exit 3, got %d", code)
	}
	if !strings.Contains(stderr, "Invalid definition") {
		t.Errorf("Expected definition error, got %q", stderr)
	}
}

func TestRunVerboseTrace(t *testing.T) {
	path := writeDef(t)
	code, stdout, _ := runCLI(t, "--def", path, "--verbose", "--", "-p", "1")
	if code != 0 {
		t.Fatalf("Expected exit 0, got %d", code)
	}
	for _, want := range []string{"[DEBUG] loaded 4 options", `[DEBUG] "1": value for port`} {
		if !strings.Contains(stdout, want) {
			t.Errorf("Expected %q in output, got:\n%s", want, stdout)
		}
	}
}

func TestSplitArgs(t *testing.T) {
	own, rest := splitArgs([]string{"-d", "x", "--", "-a", "--", "b"})
	if diff := cmp.Diff([]string{"-d", "x"}, own); diff != "" {
		t.Errorf("own mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-a", "--", "b"}, rest); diff != "" {
		t.Errorf("rest mismatch (-want +got):\n%s", diff)
	}
}
