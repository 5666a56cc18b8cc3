package vault

import (
	"context"
	"fmt"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watcher seals plaintext strategy files as they are written into a
// directory.
type Watcher struct {
	vault *Vault
	dir   string

	// RemovePlain deletes the plaintext file after it has been sealed.
	RemovePlain bool

	log *logrus.Entry
}

// NewWatcher returns a Watcher over dir. Events are logged on logger.
func NewWatcher(v *Vault, dir string, logger *logrus.Logger) *Watcher {
	if logger == nil {
		logger = logrus.StandardLogger()
	}

	return &Watcher{
		vault: v,
		dir:   dir,
		log:   logger.WithField("dir", dir),
	}
}

// Run watches the directory until ctx is cancelled. Individual seal failures
// are logged and do not stop the watch; only watcher-level failures return an
// error.
func (w *Watcher) Run(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", w.dir, err)
	}

	w.log.Info("watching for plaintext strategy files")

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.handle(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.log.WithError(err).Error("watcher error")
		case <-ctx.Done():
			w.log.Info("stopping watch")
			return nil
		}
	}
}

func (w *Watcher) handle(path string) {
	if !w.vault.IsPlain(path) {
		return
	}

	log := w.log.WithField("file", path)

	outPath, err := w.vault.SealFile(path)
	if err != nil {
		log.WithError(err).Error("failed to seal strategy file")
		return
	}
	log.WithField("sealed", outPath).Info("sealed strategy file")

	if w.RemovePlain {
		if err := os.Remove(path); err != nil {
			log.WithError(err).Error("failed to remove plaintext file")
		}
	}
}
