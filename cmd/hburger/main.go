package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gur-shatz/hashburger/internal/cli"
	"github.com/gur-shatz/hashburger/internal/color"
	"github.com/gur-shatz/hashburger/internal/config"
	"github.com/gur-shatz/hashburger/internal/glob"
	"github.com/gur-shatz/hashburger/internal/log"
	"github.com/gur-shatz/hashburger/internal/server"
	"github.com/gur-shatz/hashburger/pkg/hashburger"
)

func main() {
	color.Init()
	if err := run(); err != nil {
		log.Error("%v", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := cli.Parse(os.Args[1:])
	if err != nil {
		return err
	}
	if cfg.Command == cli.CommandNone {
		return nil
	}

	log.Init(cfg.Verbose)

	if cfg.Command == cli.CommandInit {
		return runInit(cfg.ConfigFile)
	}

	settings, used, err := config.Load(cfg.ConfigFile)
	if err != nil {
		return err
	}
	if used != "" {
		log.Verbose("Config: %s", used)
	} else {
		log.Verbose("No %s found, using built-in defaults", config.DefaultFilename)
	}

	settings, err = settings.Apply(cfg.Overrides)
	if err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	switch cfg.Command {
	case cli.CommandHash:
		return runHash(cfg, settings)
	case cli.CommandHashPath:
		return runHashPath(cfg, settings)
	case cli.CommandServe:
		return runServe(settings)
	default:
		return fmt.Errorf("unhandled command %d", cfg.Command)
	}
}

func runInit(configFile string) error {
	if configFile == "" {
		configFile = config.DefaultFilename
	}
	if _, err := os.Stat(configFile); err == nil {
		return fmt.Errorf("%s already exists (remove it first to regenerate)", configFile)
	}

	if err := os.WriteFile(configFile, []byte(config.DefaultConfigYAML), 0644); err != nil {
		return fmt.Errorf("write %s: %w", configFile, err)
	}

	log.Success("Created %s", configFile)
	return nil
}

func runHash(cfg cli.Config, settings config.Settings) error {
	opts, err := settings.Options()
	if err != nil {
		return err
	}
	log.Verbose("Hashburger: %d+%d+%d, algorithm %s, unit %s",
		opts.LeftBunLength, opts.CenterLength, opts.RightBunLength, settings.Burger.Algorithm, opts.Unit)

	inputs, err := cli.ReadInputs(cfg.Inputs, os.Stdin)
	if err != nil {
		return err
	}

	out := bufio.NewWriter(os.Stdout)
	for _, in := range inputs {
		fmt.Fprintln(out, hashburger.Burgerize(in, opts))
	}
	return out.Flush()
}

func runHashPath(cfg cli.Config, settings config.Settings) error {
	opts, err := settings.PathOptions()
	if err != nil {
		return err
	}
	log.Verbose("Keeping %d+%d components, divider %q", opts.StartComponents, opts.EndComponents, opts.Divider)

	inputs, err := cli.ReadInputs(cfg.Inputs, os.Stdin)
	if err != nil {
		return err
	}

	if len(cfg.Globs) > 0 {
		matches, err := glob.Expand(cfg.Root, cfg.Globs)
		if err != nil {
			return err
		}
		log.Verbose("%d paths matched %v under %s", len(matches), cfg.Globs, cfg.Root)
		inputs = append(inputs, matches...)
	}

	// Burgerize everything first: a bad path fails the whole run with no output.
	results := make([]string, len(inputs))
	for i, in := range inputs {
		results[i], err = hashburger.BurgerizePath(in, opts)
		if err != nil {
			return fmt.Errorf("hash-path %q: %w", in, err)
		}
	}

	out := bufio.NewWriter(os.Stdout)
	for _, r := range results {
		fmt.Fprintln(out, r)
	}
	return out.Flush()
}

func runServe(settings config.Settings) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              settings.Serve.Addr,
		Handler:           server.New(settings, log.Default()).Routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	log.Status("Serving on %s", settings.Serve.Addr)

	select {
	case err := <-errCh:
		return fmt.Errorf("serve %s: %w", settings.Serve.Addr, err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	log.Status("Stopped")
	return nil
}
