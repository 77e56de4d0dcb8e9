package cmd

import (
	"fmt"
	"time"

	"github.com/hoppxi/brightbar/internal/manager"
	"github.com/spf13/cobra"
)

var reloadCmd = &cobra.Command{
	Use:   "reload",
	Short: "Restart the daemon with a fresh config and brightness state",
	RunE: func(cmd *cobra.Command, args []string) error {
		response, err := manager.Manage.SendIPCCommand(manager.CmdStop)
		if err != nil {
			fmt.Printf("Error: %v (Is the daemon running?)\n", err)
		} else {
			fmt.Printf("Server response: %s\n", response)
		}

		// give the old daemon time to release the socket
		for i := 0; i < 20; i++ {
			conn, err := manager.Manage.ConnectIPC()
			if err != nil {
				break
			}
			conn.Close()
			time.Sleep(50 * time.Millisecond)
		}

		return startCmd.RunE(cmd, args) // restart in-place
	},
}
