// Package cmd defines the parley CLI.
package cmd

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/app"
	"github.com/parleyhq/parley/internal/config"
	"github.com/parleyhq/parley/internal/conn"
	"github.com/parleyhq/parley/internal/logger"
	"github.com/parleyhq/parley/internal/ui"
)

var (
	debugMode             bool
	quietMode             bool
	serverFlag            string
	nameFlag              string
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

var rootCmd = &cobra.Command{
	Use:   "parley [room]",
	Short: "Terminal chat client",
	Long: `Parley is a terminal chat client. It joins a room on a parley server
and renders the conversation, the user roster, and a message input in a
single full-screen view.`,
	Args:          cobra.MaximumNArgs(1),
	RunE:          runTUI,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging to /tmp/parley-debug.log")
	rootCmd.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to warnings only")
	rootCmd.PersistentFlags().StringVar(&serverFlag, "server", "", "Server URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&nameFlag, "name", "", "Display name (overrides config)")
}

func initLogging() {
	if quietMode {
		logger.SetQuiet()
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("parley %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("parley %s\n", version)
}

// loadProfile loads the config, applies flag overrides, and runs the
// first-run form when no display name is set yet.
func loadProfile() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if serverFlag != "" {
		cfg.SetServer(serverFlag)
	}
	if nameFlag != "" {
		cfg.SetDisplayName(nameFlag)
	}

	if cfg.GetDisplayName() == "" {
		if err := firstRunForm(cfg); err != nil {
			return nil, err
		}
		if err := cfg.Save(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// firstRunForm prompts for a display name and server before the TUI
// takes over the terminal.
func firstRunForm(cfg *config.Config) error {
	name := cfg.GetDisplayName()
	server := cfg.GetServer()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Display name").
				Placeholder("how others see you").
				CharLimit(32).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("display name is required")
					}
					return nil
				}).
				Value(&name),
			huh.NewInput().
				Title("Server").
				Value(&server),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}
	cfg.SetDisplayName(name)
	cfg.SetServer(server)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfile()
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	room := cfg.GetRoom()
	if len(args) > 0 {
		room = args[0]
	}
	if room == "" {
		room = "lobby"
	}
	cfg.SetRoom(room)
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("error saving config: %w", err)
	}

	ui.SetThemeByName(cfg.GetTheme())

	// Ensure logger is closed on exit
	defer logger.Close()

	client, err := conn.Dial(cfg.GetServer(), room, cfg.GetDisplayName())
	if err != nil {
		return fmt.Errorf("error connecting: %w", err)
	}
	defer client.Close()

	m := app.New(cfg, client, room, version)
	p := tea.NewProgram(m)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running app: %w", err)
	}
	return nil
}
