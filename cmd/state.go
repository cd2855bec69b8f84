package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Show application state",
	Long:  "Show window count, the active window id, and a compact per-window summary.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *client.Client) error {
			raw, err := c.Call(protocol.MethodGetAppState, nil)
			if err != nil {
				return err
			}
			return output.PrintRaw(raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(stateCmd)
}
