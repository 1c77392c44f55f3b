//go:build !tinygo

package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"

	"spincube/app"
	"spincube/hal"
	"spincube/internal/buildinfo"
	"spincube/internal/config"

	"github.com/spf13/cobra"
)

var (
	configFile string
	headless   bool
	terminal   bool
	ticks      uint64
	noWait     bool
	logFile    string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "spincube",
		Short:   "rotating wireframe cube on a double-buffered raster",
		Version: buildinfo.Long(),
		Args:    cobra.NoArgs,
		RunE:    runCube,

		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().BoolVar(&headless, "headless", false, "run without a window or terminal")
	rootCmd.Flags().BoolVar(&terminal, "terminal", false, "render into the terminal")
	rootCmd.Flags().Uint64Var(&ticks, "ticks", 0, "stop after N frames (0 = run until ESC)")
	rootCmd.Flags().BoolVar(&noWait, "no-wait", false, "start animating without waiting for a key")
	rootCmd.Flags().StringVar(&logFile, "log", "", "write log lines to this file instead of stdout")

	rootCmd.AddCommand(tableCommand(), cycleCommand(), configCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.Default(), nil
	}
	return config.Load(configFile)
}

func runCube(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("ticks") {
		cfg.MaxTicks = ticks
	}
	if noWait || headless {
		// Nothing can press a key in headless mode.
		cfg.WaitForKey = false
	}

	hostCfg := hal.HostConfig{Width: cfg.Screen.Width, Height: cfg.Screen.Height}
	if logFile != "" {
		f, err := os.Create(logFile)
		if err != nil {
			return err
		}
		defer f.Close()
		hostCfg.Log = f
	} else if terminal {
		// stdout belongs to the screen.
		hostCfg.Log = io.Discard
	}

	run := func(ctx context.Context, h hal.HAL) error {
		sys, err := app.New(h, cfg)
		if err != nil {
			return err
		}
		return sys.Run(ctx)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	switch {
	case headless:
		err = hal.RunHeadless(ctx, hostCfg, run)
	case terminal:
		err = hal.RunTerminal(ctx, hostCfg, run)
	default:
		err = hal.RunWindow(hostCfg, run)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
