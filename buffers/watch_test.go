package buffers

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prog.fr")
	if err := os.WriteFile(path, []byte("main { }"), 0644); err != nil {
		t.Fatal(err)
	}

	changes := make(chan string, 16)
	if err := Watch(t.Context(), path, func(content string) {
		changes <- content
	}, func(err error) {
		t.Log(err)
	}); err != nil {
		t.Fatal(err)
	}

	// unrelated files are ignored
	if err := os.WriteFile(filepath.Join(dir, "other.fr"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("main { afficher(1); }"), 0644); err != nil {
		t.Fatal(err)
	}

	// a truncating write may be observed half way
	timeout := time.After(5 * time.Second)
	for {
		select {
		case content := <-changes:
			if content == "main { afficher(1); }" {
				return
			}
		case <-timeout:
			t.Fatal("no change observed")
		}
	}
}
