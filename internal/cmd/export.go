package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/exporter"
	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/renderer"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <script.json>",
	Short: "Export the full session as JSON",
	Long: `Dumps the contact, all messages and the export date as indented JSON.
The dump is itself a valid chat script.`,
	Args: cobra.ExactArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output file (default: whatsapp-chat-<name>-<date>.json)")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	svc := newService(&renderer.TextRenderer{})

	path := exportOutput
	if path == "" {
		// The script's own contact name wins over the configured default.
		contact, err := svc.Contact(args[0])
		if err != nil {
			return err
		}
		path = exporter.ExportFilename(contact.Name, time.Now())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := svc.Export(args[0], f); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Chat exported to %s\n", path)
	return nil
}
