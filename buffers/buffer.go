package buffers

import (
	"os"
	"sync"
)

// Buffer holds the program text submitted to every stage.
// Revision grows with every change so callers can tell whether a result is still current.
type Buffer struct {
	mu       sync.RWMutex
	text     string
	revision uint64
}

func New(text string) *Buffer {
	return &Buffer{
		text: text,
	}
}

func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text
}

func (b *Buffer) SetText(text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if text == b.text {
		return
	}
	b.text = text
	b.revision++
}

func (b *Buffer) Revision() uint64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revision
}

// Snapshot returns the text and its revision atomically
func (b *Buffer) Snapshot() (string, uint64) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.text, b.revision
}

func (b *Buffer) Load(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	b.SetText(string(content))
	return nil
}

func (b *Buffer) Save(path string) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, []byte(b.Text()), 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
