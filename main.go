// Package main provides the entry point for the Know Your Pins application.
package main

import (
	"fmt"
	"log"
	"os"

	"know-your-pins/internal/app"
	"know-your-pins/internal/assets"
	"know-your-pins/internal/config"
	"know-your-pins/internal/pinout"
	"know-your-pins/internal/style"
	"know-your-pins/internal/version"
	"know-your-pins/ui/mainwindow"

	fyneapp "fyne.io/fyne/v2/app"
	"github.com/spf13/cobra"
)

const (
	appTitle = "Know Your Pins"
	appID    = "io.github.knowyourpins"
	iconSize = 256
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var selectID, stylesheet, envFile string

	rootCmd := &cobra.Command{
		Use:          "know-your-pins",
		Short:        "Interactive ESP32 DevKit V1 pinout reference",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(envFile)
			if err != nil {
				log.Printf("Startup failed: %v", err)
				return err
			}
			cfg = cfg.Override(selectID, stylesheet)
			if err := run(cfg); err != nil {
				log.Printf("Startup failed: %v", err)
				return err
			}
			return nil
		},
	}

	rootCmd.Flags().StringVar(&selectID, "select", "", "pin id to show on launch (env "+config.EnvSelect+")")
	rootCmd.Flags().StringVar(&stylesheet, "stylesheet", "", "stylesheet override file (env "+config.EnvStylesheet+")")
	rootCmd.Flags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file read before the environment")

	rootCmd.AddCommand(versionCmd())
	return rootCmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// run loads every startup resource, then blocks in the UI event loop.
func run(cfg config.Config) error {
	log.Printf("Starting %s v%s", appTitle, version.Version)

	catalog := pinout.Default()

	board, err := assets.DevKitBoard()
	if err != nil {
		return err
	}
	if err := board.CheckAligned(catalog.ViewBox()); err != nil {
		return fmt.Errorf("board asset: %w", err)
	}

	styles, err := style.Resolve(cfg.Stylesheet, log.Printf)
	if err != nil {
		return fmt.Errorf("load stylesheet: %w", err)
	}

	icon, err := assets.IconResource(iconSize)
	if err != nil {
		return err
	}

	a := fyneapp.NewWithID(appID)
	a.Settings().SetTheme(app.NewPinoutTheme(styles))
	a.SetIcon(icon)

	state := app.NewState(catalog)
	win := mainwindow.New(a, state, board, styles)
	win.SetIcon(icon)

	if cfg.Select != "" {
		if err := state.SelectPin(cfg.Select); err != nil {
			log.Printf("Ignoring initial selection: %v", err)
		}
	}

	log.Printf("Loaded %d pins for %s", catalog.Len(), catalog.Board())
	win.ShowAndRun()
	return nil
}
