// Package main is the entry point for the luminad menu-bar app.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/spf13/cobra"

	"github.com/lumina-app/lumina/internal/appearance"
	"github.com/lumina-app/lumina/internal/buildinfo"
	"github.com/lumina-app/lumina/internal/config"
	"github.com/lumina-app/lumina/internal/daemon/controller"
	"github.com/lumina-app/lumina/internal/daemon/tray"
	"github.com/lumina-app/lumina/internal/daemon/watcher"
	"github.com/lumina-app/lumina/internal/envutil"
	"github.com/lumina-app/lumina/internal/models"
	"github.com/lumina-app/lumina/internal/notify"
)

var (
	debug        bool
	pollInterval time.Duration
)

var rootCmd = &cobra.Command{
	Use:           "luminad",
	Short:         "Menu-bar switcher for the macOS light/dark appearance",
	Version:       buildinfo.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
	Args:          cobra.NoArgs,
	RunE:          run,
}

func init() {
	rootCmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.Flags().DurationVar(&pollInterval, "poll-interval", 0, "Override the reconciliation interval (e.g. 10s)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "luminad: %v\n", err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	logFile, err := config.SetupLogging(debug || envutil.IsDev())
	if err != nil {
		return err
	}

	notifier := notify.NewDesktop()

	lock, err := config.NewInstanceLock()
	if err != nil {
		logFile.Close()
		return err
	}
	if err := controller.Preflight(runtime.GOOS, lock, notifier); err != nil {
		defer logFile.Close()
		if errors.Is(err, controller.ErrSecondInstance) {
			log.Printf("[INFO] lumina is already running, exiting")
			return nil
		}
		notifier.Wait()
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		log.Printf("[WARN] failed to load settings, using defaults: %v", err)
		settings = models.NewSettings()
	}
	if pollInterval > 0 {
		settings.PollInterval = pollInterval
		settings.Normalize()
	}

	if err := config.SaveInstanceInfo(models.NewInstanceInfo(buildinfo.Version, os.Getpid())); err != nil {
		log.Printf("[WARN] failed to write instance info: %v", err)
	}

	client := appearance.NewClient(nil)
	view := tray.New()
	ctrl := controller.New(controller.Config{
		Reader:   client,
		Writer:   client,
		View:     view,
		Notifier: notifier,
		Settings: settings,
	})

	ctx, cancel := context.WithCancel(context.Background())

	onStart := func() {
		if err := ctrl.Start(ctx); err != nil {
			log.Printf("[ERROR] failed to start controller: %v", err)
			view.Quit()
			return
		}
		log.Printf("[INFO] lumina %s started (PID %d), polling every %s", buildinfo.Version, os.Getpid(), settings.PollInterval)

		go watchSettings(ctx, ctrl)

		// Quit the tray on SIGINT/SIGTERM
		go func() {
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			select {
			case sig := <-sigCh:
				log.Printf("[INFO] received signal %v, shutting down", sig)
				view.Quit()
			case <-ctx.Done():
			}
		}()
	}

	// systray may terminate the process right after onExit, so all cleanup
	// happens here rather than in defers.
	onExit := func() {
		ctrl.Shutdown()
		cancel()
		notifier.Wait()
		shutdown(lock, logFile)
	}

	// This blocks the main goroutine until the tray exits.
	view.Run(ctrl, onStart, onExit)
	return nil
}

func shutdown(lock *config.InstanceLock, logFile io.Closer) {
	if err := config.RemoveInstanceInfo(); err != nil {
		log.Printf("[WARN] failed to remove instance info: %v", err)
	}
	if err := lock.Unlock(); err != nil {
		log.Printf("[WARN] failed to release instance lock: %v", err)
	}
	log.Printf("[INFO] lumina stopped")
	_ = logFile.Close()
}

// watchSettings reapplies settings.yaml whenever it changes.
func watchSettings(ctx context.Context, ctrl *controller.Controller) {
	path, err := config.GlobalSettingsFile()
	if err != nil {
		log.Printf("[WARN] settings reload disabled: %v", err)
		return
	}
	w, err := watcher.New(path, watcher.DefaultDebounce)
	if err != nil {
		log.Printf("[WARN] settings reload disabled: %v", err)
		return
	}
	if err := w.Start(); err != nil {
		log.Printf("[WARN] settings reload disabled: %v", err)
		return
	}
	defer w.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.Changes():
			settings, err := config.LoadSettings()
			if err != nil {
				log.Printf("[WARN] ignoring invalid settings: %v", err)
				continue
			}
			log.Printf("[INFO] settings reloaded")
			ctrl.ApplySettings(settings)
		}
	}
}
