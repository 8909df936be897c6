package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/ephysio/sglxcoords"
	"github.com/ephysio/sglxcoords/pkg/export"
)

var watchSettle time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Watch a directory and convert metadata files as they appear",
	Long: `Watch a directory and convert each SpikeGLX .meta file once the
acquisition finishes writing it. Events are debounced so a file is only
converted after it has settled. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, outType, err := conversionOptions()
		if err != nil {
			return err
		}
		dir := args[0]

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
		if err := watcher.Add(dir); err != nil {
			return err
		}

		deb := newDebouncer(watchSettle)
		defer deb.stop()

		slog.Info("watching", "dir", dir)
		for {
			select {
			case <-ctx.Done():
				return nil

			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
					continue
				}
				path := event.Name
				if !shouldConvert(path, outType) {
					continue
				}
				deb.add(path, func() {
					convertAsync(ctx, path, outType, opts)
				})

			case werr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				slog.Error("watcher error", "error", werr)
			}
		}
	},
}

// shouldConvert filters watcher events down to fresh metadata files.
func shouldConvert(path string, outType export.OutType) bool {
	if !strings.HasSuffix(path, ".meta") {
		return false
	}
	if strings.HasSuffix(path, "_orig.meta") {
		return false
	}
	if outType == export.OutMetaGeom {
		// Augmentation rewrites the .meta in place, which raises another
		// Write event; a file whose backup already exists is done.
		backup := strings.TrimSuffix(path, ".meta") + "_orig.meta"
		if _, err := os.Stat(backup); err == nil {
			return false
		}
	}
	return true
}

// convertAsync runs one conversion as a supervised task so a panic or
// failure on one file never takes down the watch loop.
func convertAsync(ctx context.Context, path string, outType export.OutType, opts []sglxcoords.Option) {
	lifecycle.Go(ctx, func(ctx context.Context) error {
		_, err := sglxcoords.MetaToCoords(path, outType, opts...)
		if err != nil {
			slog.Error("conversion failed", "path", path, "error", err)
		}
		return err
	}, lifecycle.WithErrorHandler(func(err error) {
		slog.Error("conversion task panicked", "path", path, "error", err)
	}))
}

// debouncer delays work per path until events stop arriving for the
// settle window, so half-written files are not converted.
type debouncer struct {
	mu     sync.Mutex
	settle time.Duration
	timers map[string]*time.Timer
}

func newDebouncer(settle time.Duration) *debouncer {
	return &debouncer{settle: settle, timers: make(map[string]*time.Timer)}
}

func (d *debouncer) add(path string, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if t, ok := d.timers[path]; ok {
		t.Stop()
	}
	d.timers[path] = time.AfterFunc(d.settle, func() {
		d.mu.Lock()
		delete(d.timers, path)
		d.mu.Unlock()
		fn()
	})
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for path, t := range d.timers {
		t.Stop()
		delete(d.timers, path)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addConvertFlags(watchCmd)
	watchCmd.Flags().DurationVar(&watchSettle, "settle", 2*time.Second, "Quiet period before converting a changed file")
	watchCmd.SilenceUsage = true
}
