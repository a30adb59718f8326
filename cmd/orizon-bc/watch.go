package main

import (
	"log"

	"github.com/fsnotify/fsnotify"
)

// watchAndEmit re-runs emitOnce every time descPath is written, logging
// and continuing past any single emission failure so one bad save
// doesn't kill the watch loop. Grounded on
// internal/runtime/vfs/watch_fsnotify.go's event-channel wrapper around
// fsnotify.Watcher.
func watchAndEmit(descPath, outPath, requireLLVM, targetVer string) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(descPath); err != nil {
		return err
	}

	log.Printf("watching %s for changes", descPath)

	for {
		select {
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}

			if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			if err := emitOnce(descPath, outPath, requireLLVM, targetVer); err != nil {
				log.Printf("orizon-bc: %v", err)
				continue
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}

			log.Printf("orizon-bc: watch error: %v", err)
		}
	}
}
