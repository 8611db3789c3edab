package main

import (
	"codeberg.org/miketth/keymapd/pkg/audio"
	"codeberg.org/miketth/keymapd/pkg/config"
	"codeberg.org/miketth/keymapd/pkg/firmware"
	"codeberg.org/miketth/keymapd/pkg/hid/logging"
	"codeberg.org/miketth/keymapd/pkg/hid/uinput"
	"codeberg.org/miketth/keymapd/pkg/keyboards"
	"codeberg.org/miketth/keymapd/pkg/keymapd"
	"codeberg.org/miketth/keymapd/pkg/metrics"
	"codeberg.org/miketth/keymapd/pkg/scanner"
	"context"
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"os"
	"os/signal"
	"sync"
	"syscall"
)

type runOptions struct {
	*globalOptions

	socket      string
	metricsAddr string
	output      string
}

func newRunCmd(global *globalOptions) *cobra.Command {
	opts := &runOptions{globalOptions: global}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Read scanner events and emit the resulting key presses",
		Long: `Connects to the matrix scanner socket, applies every event to the
selected keymap and writes the result to a virtual uinput keyboard.

Settings such as the default layer survive restarts in the configured store.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run()
		},
	}

	cmd.Flags().StringVar(&opts.socket, "socket", "", "scanner socket, overrides the config file")
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	cmd.Flags().StringVar(&opts.output, "output", "", "uinput or log, overrides the config file")

	return cmd
}

func (o *runOptions) run() error {
	cfg, err := o.loadConfig(o.applyFlags)
	if err != nil {
		return err
	}

	log, level, err := newLogger(o.debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return runDaemon(ctx, cfg, log, &level)
}

func (o *runOptions) applyFlags(cfg *config.Config) {
	if o.socket != "" {
		cfg.Scanner.Socket = o.socket
	}
	if o.metricsAddr != "" {
		cfg.MetricsAddr = o.metricsAddr
	}
	if o.output != "" {
		cfg.Output.Device = o.output
	}
}

func runDaemon(ctx context.Context, cfg *config.Config, log *zap.SugaredLogger, level *zap.AtomicLevel) error {
	kb, err := keyboards.Lookup(cfg.Keyboard)
	if err != nil {
		return err
	}

	store, err := openStore(cfg.Store, log.Named("settings"))
	if err != nil {
		return err
	}
	if store.looper == nil {
		defer store.close()
	}

	out, err := openOutput(cfg.Output, log.Named("hid"))
	if err != nil {
		if store.looper != nil {
			store.close()
		}
		return err
	}
	defer out.Close()

	observer := metrics.NewObserver(cfg.Keyboard)

	rt := firmware.New(cfg.Keyboard, kb, out, store, log,
		firmware.WithPlayer(audio.NewLogPlayer(log.Named("audio"))),
		firmware.WithObserver(observer),
		firmware.WithCapabilities(cfg.Capabilities),
		firmware.WithLevel(level),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errChan := make(chan error, 4)
	wg := &sync.WaitGroup{}
	spawn := func(f func(ctx context.Context) error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := f(ctx); err != nil {
				errChan <- err
			}
		}()
	}

	if store.looper != nil {
		spawn(store.looper)
	}

	// the json store owns its file from here on, so any early return has to
	// go through wg.Wait to get the last save in
	err = rt.Boot()
	if err != nil {
		cancel()
		wg.Wait()
		return fmt.Errorf("boot: %w", err)
	}

	client, err := scanner.Connect(cfg.Scanner.Socket)
	if err != nil {
		cancel()
		wg.Wait()
		return fmt.Errorf("connect to scanner: %w", err)
	}
	defer client.Close()

	dispatcher := keymapd.NewDispatcher(client, rt, log.Named("dispatcher"))

	spawn(dispatcher.ProcessLines)
	spawn(systemdNotifyLoop)
	if cfg.MetricsAddr != "" {
		spawn(func(ctx context.Context) error {
			return observer.Serve(ctx, cfg.MetricsAddr, log.Named("metrics"))
		})
	}

	log.Infow("keymapd running", "keyboard", cfg.Keyboard, "output", cfg.Output.Device)

	select {
	case err = <-errChan:
	case <-ctx.Done():
	}

	cancel()
	// closing the connection unblocks the scanner read
	client.Close()
	wg.Wait()

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	log.Info("shutting down")
	return nil
}

type reporter interface {
	firmware.Reporter
	Close() error
}

func openOutput(cfg config.OutputConfig, log *zap.SugaredLogger) (reporter, error) {
	switch cfg.Device {
	case config.OutputUinput:
		kb, err := uinput.NewKeyboard(cfg.Name)
		if err != nil {
			return nil, fmt.Errorf("create uinput device: %w", err)
		}
		return kb, nil
	case config.OutputLog:
		return logging.NewReporter(log), nil
	}

	return nil, fmt.Errorf("unknown output device %q", cfg.Device)
}
