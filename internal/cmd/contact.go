package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Annamarie223sd/WhatsAppTest/internal/adapter/avatar"
)

var (
	contactName   string
	contactStatus string
	customStatus  string
	avatarPath    string
	myAvatarPath  string
)

var contactCmd = &cobra.Command{
	Use:   "contact",
	Short: "Configure the conversation peer",
	Long: `Stores the default contact settings in the config file. Scripts that
carry their own contact fields override these defaults. Avatar files
are validated as images and embedded as data URIs.`,
	RunE: runContact,
}

func init() {
	contactCmd.Flags().StringVar(&contactName, "name", "", "Contact display name")
	contactCmd.Flags().StringVar(&contactStatus, "status", "", `Presence status (e.g. "online")`)
	contactCmd.Flags().StringVar(&customStatus, "custom-status", "", "Text shown under the contact name")
	contactCmd.Flags().StringVar(&avatarPath, "avatar", "", "Path to the contact avatar image")
	contactCmd.Flags().StringVar(&myAvatarPath, "my-avatar", "", "Path to the own avatar image")
	rootCmd.AddCommand(contactCmd)
}

func runContact(cmd *cobra.Command, _ []string) error {
	if contactName != "" {
		viper.Set("contact.name", contactName)
	}
	if contactStatus != "" {
		viper.Set("contact.status", contactStatus)
	}
	if customStatus != "" {
		viper.Set("contact.custom_status", customStatus)
	}

	if avatarPath != "" {
		uri, err := avatar.DataURI(avatarPath)
		if err != nil {
			return err
		}
		viper.Set("contact.avatar", uri)
	}
	if myAvatarPath != "" {
		uri, err := avatar.DataURI(myAvatarPath)
		if err != nil {
			return err
		}
		viper.Set("my_avatar", uri)
	}

	configPath := filepath.Join(configDir(), "config.json")
	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to %s\n", configPath)
	return nil
}
