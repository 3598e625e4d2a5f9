package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/renderer"
)

var editCmd = &cobra.Command{
	Use:   "edit <script.json> <message-id> <new-text>",
	Short: "Replace the text of one message",
	Long: `Replaces the text of the message with the given id and rewrites the
script file. Unknown ids, empty text and unchanged text leave the
file untouched.`,
	Args: cobra.ExactArgs(3),
	RunE: runEdit,
}

func init() {
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	svc := newService(&renderer.TextRenderer{})

	changed, err := svc.EditText(args[0], args[1], args[2])
	if err != nil {
		return err
	}
	if !changed {
		fmt.Fprintln(cmd.OutOrStdout(), "Nothing to change")
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Message %s updated\n", args[1])
	return nil
}
