package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/renderer"
)

var clearYes bool

var clearCmd = &cobra.Command{
	Use:   "clear <script.json>",
	Short: "Remove all messages from a script",
	Args:  cobra.ExactArgs(1),
	RunE:  runClear,
}

func init() {
	clearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	if !clearYes {
		fmt.Fprint(cmd.OutOrStdout(), "Clear all messages? [y/N]: ")

		var answer string
		fmt.Scanln(&answer) //nolint:gosec // interactive CLI input, error not actionable

		if !strings.EqualFold(answer, "y") {
			return nil
		}
	}

	svc := newService(&renderer.TextRenderer{})
	if err := svc.Clear(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "All messages removed from %s\n", args[0])
	return nil
}
