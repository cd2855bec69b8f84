package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/uiprobe/uiprobe/internal/client"
	"github.com/uiprobe/uiprobe/internal/output"
	"github.com/uiprobe/uiprobe/internal/protocol"
)

var actionCmd = &cobra.Command{
	Use:   "action <name>",
	Short: "Request a named action (always reports not_implemented)",
	Long: `Ask the application to execute a named action with JSON arguments.
Dynamic action dispatch is not implemented; the server logs the request
and reports not_implemented.`,
	Args: cobra.ExactArgs(1),
	RunE: runAction,
}

func init() {
	rootCmd.AddCommand(actionCmd)
	actionCmd.Flags().String("args", "null", "Action arguments as a JSON value")
}

func runAction(cmd *cobra.Command, args []string) error {
	argsJSON, _ := cmd.Flags().GetString("args")
	if !json.Valid([]byte(argsJSON)) {
		return fmt.Errorf("--args is not valid JSON: %s", argsJSON)
	}

	return withClient(func(c *client.Client) error {
		raw, err := c.Call(protocol.MethodExecuteAction, protocol.ExecuteActionParams{
			Action: args[0],
			Args:   json.RawMessage(argsJSON),
		})
		if err != nil {
			return err
		}
		return output.PrintRaw(raw)
	})
}
