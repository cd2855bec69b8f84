package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var screenshotCmd = &cobra.Command{
	Use:   "screenshot",
	Short: "Request a screenshot (not supported by the server)",
	Long: `Request a screenshot from the application. The server does not capture
rendered frames; the reply is a stable stub with zero dimensions and an
explanatory error field.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *client.Client) error {
			raw, err := c.Call(protocol.MethodTakeScreenshot, nil)
			if err != nil {
				return err
			}
			return output.PrintRaw(raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(screenshotCmd)
}
