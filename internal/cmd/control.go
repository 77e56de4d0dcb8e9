package cmd

import (
	"fmt"
	"strings"

	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/spf13/cobra"
)

func sendCommand(command string) error {
	response, err := manager.Manage.SendIPCCommand(command)
	if err != nil {
		return fmt.Errorf("%w (is the daemon running? try `brightbar start`)", err)
	}
	fmt.Println(response)
	if strings.HasPrefix(response, "ERR") {
		return fmt.Errorf("daemon rejected %s", command)
	}
	return nil
}

var upCmd = &cobra.Command{
	Use:   "up",
	Short: "Increase brightness by one step",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(manager.CmdUp)
	},
}

var downCmd = &cobra.Command{
	Use:   "down",
	Short: "Decrease brightness by one step",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(manager.CmdDown)
	},
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print brightness, level and label held by the daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return sendCommand(manager.CmdStatus)
	},
}
