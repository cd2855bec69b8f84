package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var elementCmd = &cobra.Command{
	Use:   "element <element-id>",
	Short: "Look up a single UI element",
	Long: `Look up a UI element by identifier. The query matches a window id, a
composite element id ("window/global.id[0]"), an exact global id, or a
global-id suffix.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *client.Client) error {
			raw, err := c.Call(protocol.MethodGetElement, protocol.GetElementParams{
				ElementID: args[0],
			})
			if err != nil {
				return err
			}
			return output.PrintRaw(raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(elementCmd)
}
