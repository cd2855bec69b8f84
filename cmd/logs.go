package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Fetch the application's diagnostic log buffer",
	Long:  "Fetch a snapshot of the application's bounded in-memory log buffer, oldest entries first.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *client.Client) error {
			raw, err := c.Call(protocol.MethodGetLogs, nil)
			if err != nil {
				return err
			}
			return output.PrintRaw(raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(logsCmd)
}
