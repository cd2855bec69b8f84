package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect the full UI element tree",
	Long: `Reconstruct the hierarchical UI element tree for every live window and
print the resulting forest under a synthetic application root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return withClient(func(c *client.Client) error {
			raw, err := c.Call(protocol.MethodInspectUITree, nil)
			if err != nil {
				return err
			}
			return output.PrintRaw(raw)
		})
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}
