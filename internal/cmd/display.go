package cmd

import (
	"fmt"

	"github.com/hoppxi/brightbar/pkg/displayinfo"
	"github.com/spf13/cobra"
)

var displayCmd = &cobra.Command{
	Use:   "display",
	Short: "Inspect backlight devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		if list, _ := cmd.Flags().GetBool("list"); list {
			devices, err := displayinfo.Devices()
			if err != nil {
				return err
			}
			for _, d := range devices {
				fmt.Println(d)
			}
			return nil
		}

		device, _ := cmd.Flags().GetString("device")
		info, err := displayinfo.GetDisplayInfoJSON(device)
		if err != nil {
			return err
		}
		fmt.Println(string(info))
		return nil
	},
}

func init() {
	displayCmd.Flags().Bool("info", true, "Output current backlight info in json format")
	displayCmd.Flags().Bool("list", false, "List backlight devices")
	displayCmd.Flags().String("device", "", "Backlight device (default: first found)")
}
