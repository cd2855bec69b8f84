package cmd

import (
	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Send a key chord to the active window",
	Long: `Send a key with optional modifiers to the application's active window.
Modifiers are applied in a fixed order (ctrl, alt, shift, meta), e.g.
--key s --ctrl --shift sends "ctrl-shift-s".`,
	RunE: runKey,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.Flags().String("key", "", "Key to send (e.g. 's', 'enter', 'tab')")
	keyCmd.Flags().Bool("ctrl", false, "Hold ctrl")
	keyCmd.Flags().Bool("alt", false, "Hold alt")
	keyCmd.Flags().Bool("shift", false, "Hold shift")
	keyCmd.Flags().Bool("meta", false, "Hold meta/cmd")
	keyCmd.MarkFlagRequired("key")
}

func runKey(cmd *cobra.Command, args []string) error {
	key, _ := cmd.Flags().GetString("key")
	ctrl, _ := cmd.Flags().GetBool("ctrl")
	alt, _ := cmd.Flags().GetBool("alt")
	shift, _ := cmd.Flags().GetBool("shift")
	meta, _ := cmd.Flags().GetBool("meta")

	return withClient(func(c *client.Client) error {
		raw, err := c.Call(protocol.MethodSendKey, protocol.KeyParams{
			Key: key,
			Modifiers: protocol.Modifiers{
				Ctrl:  ctrl,
				Alt:   alt,
				Shift: shift,
				Meta:  meta,
			},
		})
		if err != nil {
			return err
		}
		return output.PrintRaw(raw)
	})
}
