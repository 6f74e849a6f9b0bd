package crepeconfigs

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/reusee/crepe/configs"
	"github.com/reusee/crepe/modes"
	"github.com/reusee/dscope"
)

func withConfig(t *testing.T, content string) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "crepe.cue"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv("CREPE_CONFIG", "")
	t.Setenv("CREPE_LOG_FILE", "")
	t.Setenv("CREPE_SOURCE_FILE", "")
	t.Setenv("CREPE_HIGHLIGHT_STYLE", "")
}

func TestConfigFile(t *testing.T) {
	withConfig(t, `
base_url: "http://backend:8000"
log_file: "/tmp/crepe-test.log"
source_file: "prog.txt"
split_percent: 30
highlight_style: "dracula"
`)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
		logFile LogFile,
		sourceFile SourceFile,
		split SplitPercent,
		style HighlightStyle,
	) {
		paths, err := loader.Paths()
		if err != nil {
			t.Fatal(err)
		}
		if len(paths) != 1 || !strings.HasSuffix(paths[0], "crepe.cue") {
			t.Fatalf("got %v", paths)
		}
		if url := configs.First[string](loader, "base_url"); url != "http://backend:8000" {
			t.Fatalf("got %q", url)
		}
		if logFile != "/tmp/crepe-test.log" {
			t.Fatalf("got %q", logFile)
		}
		if sourceFile != "prog.txt" {
			t.Fatalf("got %q", sourceFile)
		}
		if split != 30 {
			t.Fatalf("got %d", split)
		}
		if style != "dracula" {
			t.Fatalf("got %q", style)
		}
	})
}

func TestDefaults(t *testing.T) {
	withConfig(t, ``)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		logFile LogFile,
		sourceFile SourceFile,
		split SplitPercent,
		style HighlightStyle,
	) {
		if !strings.HasSuffix(string(logFile), filepath.Join("crepe", "crepe.log")) {
			t.Fatalf("got %q", logFile)
		}
		if sourceFile != "" {
			t.Fatalf("got %q", sourceFile)
		}
		if split != 50 {
			t.Fatalf("got %d", split)
		}
		if style != "monokai" {
			t.Fatalf("got %q", style)
		}
	})
}

func TestSchemaRejectsUnknownKey(t *testing.T) {
	withConfig(t, `max_tokens: 42`)
	dscope.New(
		modes.ForTest(t),
		new(Module),
	).Call(func(
		loader configs.Loader,
	) {
		if _, err := loader.Paths(); err == nil {
			t.Fatal("should fail")
		}
	})
}
