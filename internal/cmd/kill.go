package cmd

import (
	"fmt"
	"strings"

	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/spf13/cobra"
)

var killCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemon",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := manager.Manage.SendIPCCommand(manager.CmdStop)
		if err != nil {
			return fmt.Errorf("%w (is the daemon running?)", err)
		}
		if !strings.HasPrefix(response, "OK") {
			return fmt.Errorf("daemon refused to stop: %s", response)
		}
		fmt.Println("brightbar daemon stopped.")
		return nil
	},
}
