package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/parleyhq/parley/internal/api"
)

var newroomCmd = &cobra.Command{
	Use:   "newroom <name>",
	Short: "Create a room on the server",
	Args:  cobra.ExactArgs(1),
	RunE:  runNewroom,
}

func init() {
	rootCmd.AddCommand(newroomCmd)
}

func runNewroom(cmd *cobra.Command, args []string) error {
	cfg, err := loadProfile()
	if err != nil {
		return fmt.Errorf("error loading profile: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	room, err := api.CreateRoom(ctx, cfg.GetServer(), args[0])
	if err != nil {
		return err
	}
	fmt.Printf("created #%s\n\njoin it with: parley %s\n", room.Name, room.Name)
	return nil
}
