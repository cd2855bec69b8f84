package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var clickCmd = &cobra.Command{
	Use:   "click",
	Short: "Click at coordinates in the active window",
	Long:  "Synthesize a mouse click at logical coordinates within the application's active window.",
	RunE:  runClick,
}

func init() {
	rootCmd.AddCommand(clickCmd)
	clickCmd.Flags().Float64("x", 0, "Click at X coordinate")
	clickCmd.Flags().Float64("y", 0, "Click at Y coordinate")
	clickCmd.Flags().String("button", "left", "Mouse button: left, right, middle")
}

func runClick(cmd *cobra.Command, args []string) error {
	x, _ := cmd.Flags().GetFloat64("x")
	y, _ := cmd.Flags().GetFloat64("y")
	button, _ := cmd.Flags().GetString("button")

	return withClient(func(c *client.Client) error {
		raw, err := c.Call(protocol.MethodClickElement, protocol.ClickParams{
			X:      x,
			Y:      y,
			Button: button,
		})
		if err != nil {
			return err
		}
		return output.PrintRaw(raw)
	})
}
