package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/kite/internal/app"
	"github.com/dshills/kite/internal/config"
	"github.com/dshills/kite/internal/renderer/backend"
)

// ErrNotTerminal is returned when kite is started without a terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal")

type rootFlags struct {
	configFile  string
	writeConfig string
}

func newRootCmd() *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:           "kite [file]",
		Short:         "A small modal text editor",
		Long:          "kite is a modal terminal text editor with vi-style normal, insert and command-line modes.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.configFile, "config", "c", "",
		"config file (default: $XDG_CONFIG_HOME/kite/config.toml or ~/.config/kite/config.toml)")
	cmd.Flags().String("log-file", "", "append diagnostics to this file")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&flags.writeConfig, "write-config", "",
		"write the default configuration to this path (.toml or .yaml) and exit")
	return cmd
}

func run(cmd *cobra.Command, args []string, flags rootFlags) error {
	if flags.writeConfig != "" {
		if err := config.WriteDefault(afero.NewOsFs(), flags.writeConfig); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", flags.writeConfig)
		return nil
	}

	cfg, err := loadConfig(cmd, flags.configFile)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	logger, closer, err := app.NewLogger(cfg.Log)
	if err != nil {
		return fmt.Errorf("log: %w", err)
	}
	defer closer.Close()

	tty, err := backend.NewTerminal(backend.TerminalOptions{
		AltScreen: cfg.UI.AltScreen,
		OnResize:  func() { logger.Debug("window resized") },
	})
	if err != nil {
		return &app.FatalError{Op: "open terminal", Err: err}
	}

	var file string
	if len(args) > 0 {
		file = args[0]
	}
	application, err := app.New(app.Options{
		Config:   cfg,
		FileName: file,
		Backend:  tty,
		Logger:   logger,
		Version:  version,
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(contextOf(cmd), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()
	return application.Run(ctx)
}

// loadConfig resolves settings, with command line flags taking
// precedence over files and the environment.
func loadConfig(cmd *cobra.Command, path string) (config.Config, error) {
	loader := config.NewLoader(config.WithConfigFile(path))
	v := loader.Viper()
	if err := v.BindPFlag("log.file", cmd.Flags().Lookup("log-file")); err != nil {
		return config.Config{}, err
	}
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return config.Config{}, err
	}
	return loader.Load()
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
