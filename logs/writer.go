package logs

import (
	"io"
	"os"
	"path/filepath"
)

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}

// OpenFile opens path for appending, creating parent directories.
// The interactive console logs to a file so records never draw over the screen.
func OpenFile(path string) (Writer, io.Closer, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}
