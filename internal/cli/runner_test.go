package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/listboard/internal/board"
	"github.com/idilsaglam/listboard/internal/model"
	"github.com/idilsaglam/listboard/internal/store/jsonstore"
	"github.com/idilsaglam/listboard/internal/tui"
)

type boardRun struct {
	store *board.Store
	opts  tui.Options
	calls int
}

func testOptions(env map[string]string, run *boardRun, runErr error) (Options, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return Options{
		Version: "1.2.3",
		Stdout:  &stdout,
		Stderr:  &stderr,
		Getenv:  func(k string) string { return env[k] },
		NewID:   model.Sequence("id"),
		RunBoard: func(s *board.Store, o tui.Options) error {
			run.calls++
			run.store, run.opts = s, o
			return runErr
		},
	}, &stdout, &stderr
}

func TestRunStartsBoardWithDefaults(t *testing.T) {
	var run boardRun
	opt, _, stderr := testOptions(nil, &run, nil)
	if code := Run(nil, opt); code != 0 {
		t.Fatalf("Run() = %d, stderr=%s", code, stderr)
	}
	if run.calls != 1 {
		t.Fatalf("expected board to run once, got %d", run.calls)
	}
	groups, items := run.store.Stats()
	if groups != 2 || items != 15 {
		t.Fatalf("expected default 10+5 board, got %d groups %d items", groups, items)
	}
	if run.opts.Theme.Name != "classic" || run.opts.ColumnWidth != 28 || run.opts.Logger == nil {
		t.Fatalf("unexpected board options %#v", run.opts)
	}
}

func TestRunAppliesConfigEnvAndFlags(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.toml")
	content := "[board]\nseed_groups = [2, 2, 1]\ncolumn_width = 30\n[keys]\ngrab = \"m\"\n"
	if err := os.WriteFile(cfgPath, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	var run boardRun
	opt, _, stderr := testOptions(map[string]string{"LISTBOARD_CONFIG": cfgPath}, &run, nil)
	if code := Run([]string{"--theme", "mono"}, opt); code != 0 {
		t.Fatalf("Run() = %d, stderr=%s", code, stderr)
	}
	if groups, items := run.store.Stats(); groups != 3 || items != 5 {
		t.Fatalf("expected config seed groups, got %d/%d", groups, items)
	}
	if run.opts.ColumnWidth != 30 || run.opts.Keys.Grab != "m" || run.opts.Theme.Name != "mono" {
		t.Fatalf("unexpected board options %#v", run.opts)
	}
}

func TestRunLoadsSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	if err := os.WriteFile(path, []byte(`[[{"content":"one"}],[{"content":"two"},{"content":"three"}]]`), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	var run boardRun
	opt, _, stderr := testOptions(nil, &run, nil)
	if code := Run([]string{"--seed", path}, opt); code != 0 {
		t.Fatalf("Run() = %d, stderr=%s", code, stderr)
	}
	b := run.store.Board()
	if len(b.Groups) != 2 || b.Groups[1].Items[1].Content != "three" {
		t.Fatalf("unexpected seeded board %#v", b)
	}
}

func TestRunExitCodes(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		runErr error
		want   int
	}{
		{name: "unknown flag", args: []string{"--bogus"}, want: 2},
		{name: "unexpected argument", args: []string{"extra"}, want: 2},
		{name: "invalid theme", args: []string{"--theme", "sepia"}, want: 2},
		{name: "missing seed", args: []string{"--seed", filepath.Join(os.TempDir(), "listboard-missing-seed.json")}, want: 1},
		{name: "board failure", runErr: errors.New("no tty"), want: 1},
		{name: "seed without path", args: []string{"seed"}, want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var run boardRun
			opt, _, stderr := testOptions(nil, &run, tc.runErr)
			if code := Run(tc.args, opt); code != tc.want {
				t.Fatalf("Run(%v) = %d, want %d (stderr=%s)", tc.args, code, tc.want, stderr)
			}
			if stderr.Len() == 0 {
				t.Fatal("expected an error message on stderr")
			}
		})
	}
}

func TestSeedCommandWritesLoadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.json")
	var run boardRun
	opt, stdout, stderr := testOptions(nil, &run, nil)
	if code := Run([]string{"seed", path}, opt); code != 0 {
		t.Fatalf("Run() = %d, stderr=%s", code, stderr)
	}
	if !strings.Contains(stdout.String(), "seed written") || !strings.Contains(stdout.String(), "10 items") {
		t.Fatalf("unexpected output %q", stdout.String())
	}
	b, err := jsonstore.Load(path, model.Sequence("x"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(b.Groups) != 2 || b.ItemCount() != 15 || b.Groups[1].Items[0].Content != "item 10" {
		t.Fatalf("unexpected seed contents %#v", b)
	}
	if run.calls != 0 {
		t.Fatal("seed must not start the board")
	}
}

func TestVersionCommand(t *testing.T) {
	var run boardRun
	opt, stdout, _ := testOptions(nil, &run, nil)
	if code := Run([]string{"version"}, opt); code != 0 {
		t.Fatalf("Run() = %d", code)
	}
	if strings.TrimSpace(stdout.String()) != "listboard 1.2.3" {
		t.Fatalf("unexpected version output %q", stdout.String())
	}
}
