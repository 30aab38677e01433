package config

import (
	"context"
	"github.com/ansel1/merry"
	"github.com/fsnotify/fsnotify"
	"github.com/powerman/structlog"
	"path/filepath"
	"time"
)

// Watch reloads the config file on every change and passes the valid result
// to onChange until ctx is done. The directory is watched rather than the file
// so that editors replacing the file are followed.
func Watch(ctx context.Context, filename string, onChange func(Config)) error {
	filename = file(filename).Filename()
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return merry.Wrap(err)
	}
	defer log.ErrIfFail(watcher.Close)

	if err := watcher.Add(filepath.Dir(filename)); err != nil {
		return merry.Append(err, filepath.Dir(filename))
	}
	log.Debug("watch config", "file", filename)

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return merry.New("config watcher closed")
			}
			if filepath.Clean(ev.Name) != filepath.Clean(filename) ||
				!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			// editors may write the file in several steps
			reload = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return merry.New("config watcher closed")
			}
			log.PrintErr(err)
		case <-reload:
			reload = nil
			c, err := Load(filename)
			if err != nil {
				log.PrintErr(merry.Prepend(err, "reload config"))
				continue
			}
			if err := Set(c); err != nil {
				log.PrintErr(merry.Prepend(err, "reload config"))
				continue
			}
			log.Info("config reloaded", "file", filename)
			onChange(c)
		}
	}
}

var (
	debounce = 100 * time.Millisecond
	log      = structlog.New(structlog.KeyUnit, "config")
)
