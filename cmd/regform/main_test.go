package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jask/regform/internal/keys"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		t.Fatalf("execute %v: %v\n%s", args, err, out.String())
	}
	return out.String()
}

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.toml")
	body := "[keys]\npath = \"" + filepath.ToSlash(filepath.Join(dir, "keybindings.toml")) + "\"\n" +
		"[log]\npath = \"\"\n" +
		"[form]\nyear_span = 5\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestVersionCommand(t *testing.T) {
	out := execute(t, "version")
	if !strings.Contains(out, "regform version "+Version) {
		t.Fatalf("version output = %q", out)
	}
}

func TestConfigCommandShowsEffectiveValues(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir)
	out := execute(t, "config", "--config", path)
	if !strings.Contains(out, "form.year_span:  5") {
		t.Fatalf("config output = %q", out)
	}
}

func TestConfigCommandWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	execute(t, "config", "--config", path, "--write")
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected config file: %v", err)
	}
}

func TestKeysCommandPrintsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir)
	out := execute(t, "keys", "--config", path)
	if !strings.Contains(out, `action = "submit"`) {
		t.Fatalf("keys output missing submit binding:\n%s", out)
	}
}

func TestKeysCommandWriteRoundTrips(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir)
	execute(t, "keys", "--config", path, "--write")

	r, err := keys.Load(filepath.Join(dir, "keybindings.toml"))
	if err != nil {
		t.Fatalf("reload written bindings: %v", err)
	}
	if b := r.Lookup("ctrl+s", keys.ScopeForm); b == nil || b.Action != keys.ActionSubmit {
		t.Fatalf("ctrl+s = %+v, want submit", b)
	}
}

func writeAnswers(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "answers.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write answers: %v", err)
	}
	return path
}

const completeAnswers = `name = "Al"
email = "al@x.com"
contactNumber = "9998887776"
gender = "male"
college = "IIT Bombay"
passingYear = 2027
collegeCity = "Mumbai"
bio = "I build small tools and enjoy learning new languages every year."
`

func TestCheckCommandPasses(t *testing.T) {
	path := writeAnswers(t, t.TempDir(), completeAnswers)
	out := execute(t, "check", path)
	if !strings.Contains(out, "ok: all screens pass") {
		t.Fatalf("check output = %q", out)
	}
}

func TestCheckCommandReportsFailingFields(t *testing.T) {
	path := writeAnswers(t, t.TempDir(), "name = \"A\"\nemail = \"a\u00a0b@x.com\"\n")
	cmd := rootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"check", path})
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected check to fail")
	}
	got := out.String()
	for _, want := range []string{
		"screen 1  name",
		"Name must be at least 2 characters long",
		"Please enter a valid email address",
		"screen 3  bio",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("check output missing %q:\n%s", want, got)
		}
	}
}
