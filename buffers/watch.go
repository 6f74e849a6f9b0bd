package buffers

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch calls onChange with the new content whenever path is written or replaced.
// The parent directory is watched because editors often save through a rename.
func Watch(
	ctx context.Context,
	path string,
	onChange func(content string),
	onError func(err error),
) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var last string
		for {
			select {

			case <-ctx.Done():
				return

			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				content, err := os.ReadFile(path)
				if err != nil {
					if onError != nil {
						onError(err)
					}
					continue
				}
				// one save may emit several events
				if string(content) == last {
					continue
				}
				last = string(content)
				onChange(last)

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}

			}
		}
	}()

	return nil
}
