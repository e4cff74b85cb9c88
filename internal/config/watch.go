package config

import (
	"log/slog"
	"time"

	"github.com/philipparndt/gocad/pkg/watcher"
)

const reloadDebounce = 200 * time.Millisecond

// Watch reloads the config file whenever it changes and hands every valid
// result to apply. Invalid files are logged and ignored, so the previous
// configuration stays active. apply runs on a watcher goroutine.
func Watch(path string, log *slog.Logger, apply func(Config)) (*watcher.Watcher, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	w, err := watcher.New(reloadDebounce, log)
	if err != nil {
		return nil, err
	}

	err = w.Watch(path, func(changed string) {
		cfg, err := Load(changed)
		if err != nil {
			log.Warn("config reload failed, keeping previous config", "path", changed, "err", err)
			return
		}
		log.Info("config reloaded", "path", changed)
		apply(cfg)
	})
	if err != nil {
		w.Close()
		return nil, err
	}

	w.Start()
	return w, nil
}
